package colors

// Forest returns a green and timber color scheme
func Forest() *ColorScheme {
	return &ColorScheme{
		Preset: "forest",

		// Primary
		Accent: "#87AF5F",

		// Semantic
		Create: "#5FAF5F",
		Edit:   "#5FAFAF",
		Delete: "#D75F5F",

		// UI elements
		Border: "#5F875F",

		// Text
		Title:  "#AFD787",
		Subtle: "#4E4E4E",
		Normal: "#D7D7AF",

		// Errors
		ErrorFg: "#D70000",
	}
}
