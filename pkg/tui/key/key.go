// ABOUTME: Defines the Key type and ParseKey for terminal keyboard input parsing.
// ABOUTME: Handles printable runes, control characters, and delegates escape sequences to legacy/kitty parsers.

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For printable characters
	Kind  Kind // Press, repeat, or release
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events a terminal can deliver.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character (or Ctrl+rune)
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyInsert                   // Insert key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyUnknown                  // Unrecognized input
)

// Kind distinguishes press, repeat, and release events. Legacy terminal
// encodings only ever report presses; the kitty protocol reports all three.
type Kind int

const (
	KindPress Kind = iota
	KindRepeat
	KindRelease
)

// ParseKey parses raw terminal input data into a Key.
// It handles single runes, control characters, and escape sequences.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single-byte fast path
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	// Escape sequence path
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	// Multi-byte UTF-8 rune
	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b == 0x00:
		return Key{Type: KeyRune, Rune: ' ', Ctrl: true} // Ctrl+Space
	case b >= 0x01 && b <= 0x1a:
		return Key{Type: KeyRune, Rune: rune('a' + b - 1), Ctrl: true}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence delegates to kitty and legacy parsers for ESC-prefixed data.
func parseEscapeSequence(data string) Key {
	// Kitty first; it is the only encoding carrying repeat/release kinds.
	if k, ok := ParseKittyKey(data); ok {
		return k
	}

	// Try legacy escape sequences
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Lone ESC
	if len(data) == 1 {
		return Key{Type: KeyEscape}
	}

	// Alt+key: ESC followed by a single printable byte (0x20..0x7e)
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		k := parseSingleByte(data[1])
		k.Alt = true
		return k
	}

	return Key{Type: KeyUnknown}
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	if k.Type == KeyRune {
		return formatRuneKey(k)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

// formatRuneKey builds a display string for printable rune keys with modifiers.
func formatRuneKey(k Key) string {
	s := string(k.Rune)
	if k.Ctrl {
		s = fmt.Sprintf("Ctrl+%s", s)
	}
	if k.Alt {
		s = fmt.Sprintf("Alt+%s", s)
	}
	return s
}
