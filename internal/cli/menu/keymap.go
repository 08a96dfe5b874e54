package menu

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/obra/internal/config"
)

// CreateKeyMapWithShiftEnter creates a custom keymap that includes
// shift+enter for newlines in text fields, in addition to the default
// alt+enter and ctrl+j, plus the configured save binding as an extra
// submit key for the notes field.
func CreateKeyMapWithShiftEnter(keys config.KeyMappings) *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	// Add shift+enter to the existing newline keys (alt+enter, ctrl+j)
	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)

	if keys.SaveForm != "" {
		keymap.Text.Submit = key.NewBinding(
			key.WithKeys("enter", keys.SaveForm),
			key.WithHelp("enter / "+keys.SaveForm, "submit"),
		)
	}

	return keymap
}

// MenuKeyMap creates the keymap for the main menu select. The configured
// quit key works here because the menu has no text input to swallow it.
func MenuKeyMap(keys config.KeyMappings) *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	quitKeys := []string{"ctrl+c", "esc"}
	if keys.Quit != "" {
		quitKeys = append(quitKeys, keys.Quit)
	}
	keymap.Quit = key.NewBinding(
		key.WithKeys(quitKeys...),
		key.WithHelp(strings.Join(quitKeys, " / "), "quit"),
	)

	return keymap
}
