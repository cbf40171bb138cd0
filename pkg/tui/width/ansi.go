// ABOUTME: ANSI escape sequence stripping and boundary scanning
// ABOUTME: Handles CSI, OSC, charset designation, and DCS/APC/PM sequences

package width

import "strings"

// StripANSI removes every ANSI escape sequence from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = seqEnd(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// seqEnd returns the index just past the escape sequence starting at
// s[i]. A truncated sequence consumes the rest of the string.
func seqEnd(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: parameters and intermediates until a final byte 0x40-0x7E.
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST.
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	case '(':
		// Charset designation: one selector byte.
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	case 'P', '_', '^':
		// DCS, APC, PM: terminated by ST.
		for i++; i < len(s); i++ {
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	default:
		// Two-byte ESC sequence.
		return i + 1
	}
}
