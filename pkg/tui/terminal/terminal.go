// ABOUTME: Defines the Terminal interface for raw mode, display modes, size queries, and output.
// ABOUTME: Abstracts terminal control so implementations can target real or virtual terminals.

package terminal

// Terminal abstracts low-level terminal control: raw input mode, the
// alternate screen, cursor visibility, capture modes (mouse, bracketed
// paste, focus reporting), size queries, buffered output, and resize
// notifications.
//
// Mode-changing calls take effect immediately (they flush their escape
// sequences); Write is buffered until Flush.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	IsRawMode() bool

	EnterAltScreen() error
	LeaveAltScreen() error
	ShowCursor() error
	HideCursor() error

	EnableMouse() error
	DisableMouse() error
	EnablePaste() error
	DisablePaste() error
	EnableFocusReporting() error
	DisableFocusReporting() error

	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	Flush() error
	OnResize(fn func(width, height int))
}

// Escape sequences for the display modes Terminal toggles. Mouse capture
// uses SGR (1006) encoding on top of click (1000) and drag (1002) reporting.
const (
	csiAltScreenEnter = "\x1b[?1049h"
	csiAltScreenLeave = "\x1b[?1049l"
	csiCursorShow     = "\x1b[?25h"
	csiCursorHide     = "\x1b[?25l"
	csiMouseOn        = "\x1b[?1000h\x1b[?1002h\x1b[?1006h"
	csiMouseOff       = "\x1b[?1006l\x1b[?1002l\x1b[?1000l"
	csiPasteOn        = "\x1b[?2004h"
	csiPasteOff       = "\x1b[?2004l"
	csiFocusOn        = "\x1b[?1004h"
	csiFocusOff       = "\x1b[?1004l"
)
