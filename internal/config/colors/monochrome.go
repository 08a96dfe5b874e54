package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Semantic
		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		// UI elements
		Border: "#808080",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#C0C0C0",

		// Errors
		ErrorFg: "#FFFFFF",
	}
}
