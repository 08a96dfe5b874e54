package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Forms
	SaveForm string `yaml:"save_form"`

	// Menu
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		SaveForm: "ctrl+s",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
