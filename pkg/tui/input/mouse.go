// ABOUTME: SGR (1006) mouse report decoding into structured Mouse values.
// ABOUTME: Handles buttons, wheel, motion/drag, and modifier bits.

package input

import (
	"strconv"
	"strings"
)

// MouseButton identifies which button a mouse report refers to.
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction is the kind of mouse event.
type MouseAction uint8

const (
	MouseActionPress MouseAction = iota
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// Mouse is one decoded mouse report. X and Y are zero-based cell
// coordinates.
type Mouse struct {
	Button MouseButton
	Action MouseAction
	X      int
	Y      int
	Alt    bool
	Ctrl   bool
	Shift  bool
}

// String returns a human-readable button name.
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns a human-readable action name.
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "Unknown"
	}
}

// SGR button code bits.
const (
	sgrBtnMask   = 0x03
	sgrShiftBit  = 0x04
	sgrAltBit    = 0x08
	sgrCtrlBit   = 0x10
	sgrMotionBit = 0x20
	sgrWheelBit  = 0x40
)

// parseSGRMouse decodes the body of an SGR mouse report: the bytes
// between "ESC[<" and the final 'M' (press/motion) or 'm' (release).
// Format: <code>;<col>;<row> with 1-based coordinates.
func parseSGRMouse(body string, final byte) (Mouse, bool) {
	parts := strings.Split(body, ";")
	if len(parts) != 3 {
		return Mouse{}, false
	}

	code, err := strconv.Atoi(parts[0])
	if err != nil || code < 0 {
		return Mouse{}, false
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil || col < 1 {
		return Mouse{}, false
	}
	row, err := strconv.Atoi(parts[2])
	if err != nil || row < 1 {
		return Mouse{}, false
	}

	m := Mouse{
		X:     col - 1,
		Y:     row - 1,
		Shift: code&sgrShiftBit != 0,
		Alt:   code&sgrAltBit != 0,
		Ctrl:  code&sgrCtrlBit != 0,
	}

	switch {
	case code&sgrWheelBit != 0:
		// Wheel events are always presses; bit 0 selects direction.
		if code&sgrBtnMask == 1 {
			m.Button = MouseBtnWheelDown
		} else {
			m.Button = MouseBtnWheelUp
		}
		m.Action = MouseActionPress
	default:
		switch code & sgrBtnMask {
		case 0:
			m.Button = MouseBtnLeft
		case 1:
			m.Button = MouseBtnMiddle
		case 2:
			m.Button = MouseBtnRight
		case 3:
			m.Button = MouseBtnNone
		}
		switch {
		case code&sgrMotionBit != 0 && m.Button == MouseBtnNone:
			m.Action = MouseActionMove
		case code&sgrMotionBit != 0:
			m.Action = MouseActionDrag
		case final == 'm':
			m.Action = MouseActionRelease
		default:
			m.Action = MouseActionPress
		}
	}

	return m, true
}
