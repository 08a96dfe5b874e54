package config

import "github.com/thenoetrevino/obra/internal/config/colors"

// ColorScheme is re-exported so config consumers don't import the colors package directly
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// ForestColorScheme returns a green and timber color scheme
func ForestColorScheme() colors.ColorScheme {
	return *colors.Forest()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
