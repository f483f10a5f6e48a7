package app

import (
	"encoding/json"
	"os"
	"slices"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/composer/internal/compose"
	"github.com/treykane/composer/internal/config"
)

// Actions are the layer between key presses and compose behavior: a key is
// looked up in keyToAction and the action is dispatched in handleComposeKey.
// Default keys live in defaultActionKeys. Users override them with the
// "keybindings" map in config.json or the keymap file
// (default ~/.composer/keymap.json).
const (
	// actionBold wraps the selection in **bold** markers.
	actionBold = "compose.bold"

	// actionItalic wraps the selection in *italic* markers.
	actionItalic = "compose.italic"

	// actionLight wraps the selection in *~*light*~* markers.
	actionLight = "compose.light"

	// actionLink turns the selection into a [label](url) link.
	actionLink = "compose.link"

	// actionInsert opens the insert prompt. The typed syntax goes through the
	// smart insert path, so it is padded from the surrounding words.
	actionInsert = "compose.insert"

	// actionSizeToggle switches between autosize and full-size layout.
	actionSizeToggle = "compose.size.toggle"

	// actionPreview toggles the rendered markdown preview.
	actionPreview = "compose.preview"

	// actionPaste inserts the clipboard text at the cursor.
	actionPaste = "compose.paste"

	// actionCopy copies the whole draft to the clipboard.
	actionCopy = "compose.copy"

	// actionSelectionAnchor drops or clears the selection anchor.
	actionSelectionAnchor = "compose.selection.anchor"

	// actionSend finishes composing and returns the draft.
	actionSend = "compose.send"

	// actionHelp toggles the shortcut reference.
	actionHelp = "compose.help"

	// actionQuit leaves without sending.
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its default keys, in Bubble Tea
// notation ("ctrl+", "alt+", "shift+" prefixes; "esc", "f1" and so on).
var defaultActionKeys = map[string][]string{
	actionBold:            {"ctrl+b"},
	actionItalic:          {"alt+i"},
	actionLight:           {"ctrl+l"},
	actionLink:            {"ctrl+k"},
	actionInsert:          {"ctrl+o"},
	actionSizeToggle:      {"ctrl+e"},
	actionPreview:         {"ctrl+p"},
	actionPaste:           {"ctrl+v"},
	actionCopy:            {"ctrl+y"},
	actionSelectionAnchor: {"alt+s"},
	actionSend:            {"ctrl+s"},
	actionHelp:            {"f1"},
	actionQuit:            {"esc", "ctrl+c"},
}

// formatActions maps the formatting actions to their compose format.
var formatActions = map[string]compose.Format{
	actionBold:   compose.FormatBold,
	actionItalic: compose.FormatItalic,
	actionLight:  compose.FormatLight,
	actionLink:   compose.FormatLink,
}

// loadKeybindings builds the key<->action maps from, in increasing priority:
//
//  1. defaultActionKeys
//  2. cfg.Keybindings from config.json
//  3. the JSON keymap file at cfg.KeymapFile, if it exists
//
// An override replaces the action's whole default key set. Unknown actions
// and key conflicts are logged and ignored.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}

	fileOverrides := loadKeymapFile(cfg.KeymapFile)
	for action, key := range fileOverrides {
		m.applyKeybindingOverride(action, key)
	}

	m.rebuildActionKeyIndex()
}

// loadKeymapFile reads a flat JSON object of action -> key, for example:
//
//	{
//	    "compose.italic": "ctrl+t",
//	    "compose.send": "alt+enter"
//	}
//
// A missing file returns nil silently; read and parse errors are logged.
func loadKeymapFile(path string) map[string]string {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			appLog.Warn("read keymap file", "path", path, "error", err)
		}
		return nil
	}
	overrides := map[string]string{}
	if err := json.Unmarshal(data, &overrides); err != nil {
		appLog.Warn("parse keymap file", "path", path, "error", err)
		return nil
	}
	return overrides
}

func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex builds keyToAction from keyForAction. Actions are
// visited in sorted order, so when two actions claim a key the
// alphabetically first one keeps it and the conflict is logged.
func (m *Model) rebuildActionKeyIndex() {
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	m.keyToAction = map[string]string{}
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString lowercases and trims a key string. A single uppercase
// letter becomes "shift+<letter>" since Bubble Tea reports shifted letters
// as uppercase runes.
//
//	normalizeKeyString("Ctrl+K") → "ctrl+k"
//	normalizeKeyString(" Y ")    → "shift+y"
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

// keyEventFromMsg converts a Bubble Tea key press into the modifier form the
// compose shortcuts understand. Terminals report Meta as alt, so alt maps to
// Meta. An uppercase letter implies Shift.
func keyEventFromMsg(msg tea.KeyMsg) compose.KeyEvent {
	var ev compose.KeyEvent
	key := msg.String()
	for {
		switch {
		case strings.HasPrefix(key, "ctrl+") && len(key) > len("ctrl+"):
			ev.Ctrl = true
			key = strings.TrimPrefix(key, "ctrl+")
			continue
		case strings.HasPrefix(key, "alt+") && len(key) > len("alt+"):
			ev.Meta = true
			key = strings.TrimPrefix(key, "alt+")
			continue
		case strings.HasPrefix(key, "shift+") && len(key) > len("shift+"):
			ev.Shift = true
			key = strings.TrimPrefix(key, "shift+")
			continue
		}
		break
	}
	if runes := []rune(key); len(runes) == 1 && unicode.IsUpper(runes[0]) {
		ev.Shift = true
	}
	ev.Key = key
	return ev
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" {
			continue
		}
		if slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func (m *Model) allActionKeys(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return strings.Join(keys, ", ")
}

var specialKeyLabels = map[string]string{
	"up":        "↑",
	"down":      "↓",
	"left":      "←",
	"right":     "→",
	"enter":     "Enter",
	"esc":       "Esc",
	"tab":       "Tab",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PgUp",
	"pgdown":    "PgDn",
	"space":     "Space",
	"backspace": "Backspace",
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "":
			parts[i] = "+"
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			if label, ok := specialKeyLabels[part]; ok {
				parts[i] = label
				continue
			}
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "+")
}
