// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output, counts every mode transition, and supports scripted failures.

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// Op identifies a Terminal operation for call counting and failure injection.
type Op string

const (
	OpRawEnter     Op = "raw_enter"
	OpRawExit      Op = "raw_exit"
	OpAltEnter     Op = "alt_enter"
	OpAltLeave     Op = "alt_leave"
	OpCursorShow   Op = "cursor_show"
	OpCursorHide   Op = "cursor_hide"
	OpMouseOn      Op = "mouse_on"
	OpMouseOff     Op = "mouse_off"
	OpPasteOn      Op = "paste_on"
	OpPasteOff     Op = "paste_off"
	OpFocusOn      Op = "focus_on"
	OpFocusOff     Op = "focus_off"
	OpFlush        Op = "flush"
)

// VirtualTerminal is a fake Terminal for unit tests. It records written
// output, tracks every mode transition by count, and can be scripted to
// fail specific operations.
type VirtualTerminal struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	width    int
	height   int
	rawMode  bool
	resizeFn func(width, height int)
	calls    map[Op]int
	failures map[Op]error
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:    width,
		height:   height,
		calls:    make(map[Op]int),
		failures: make(map[Op]error),
	}
}

// record counts op and returns its scripted failure, if any.
func (v *VirtualTerminal) record(op Op) error {
	v.calls[op]++
	return v.failures[op]
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.record(OpRawEnter); err != nil {
		return err
	}
	v.rawMode = true
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.record(OpRawExit); err != nil {
		return err
	}
	v.rawMode = false
	return nil
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rawMode
}

// EnterAltScreen records an alternate-screen entry.
func (v *VirtualTerminal) EnterAltScreen() error { return v.recordLocked(OpAltEnter) }

// LeaveAltScreen records an alternate-screen exit.
func (v *VirtualTerminal) LeaveAltScreen() error { return v.recordLocked(OpAltLeave) }

// ShowCursor records a cursor show.
func (v *VirtualTerminal) ShowCursor() error { return v.recordLocked(OpCursorShow) }

// HideCursor records a cursor hide.
func (v *VirtualTerminal) HideCursor() error { return v.recordLocked(OpCursorHide) }

// EnableMouse records a mouse-capture enable.
func (v *VirtualTerminal) EnableMouse() error { return v.recordLocked(OpMouseOn) }

// DisableMouse records a mouse-capture disable.
func (v *VirtualTerminal) DisableMouse() error { return v.recordLocked(OpMouseOff) }

// EnablePaste records a bracketed-paste enable.
func (v *VirtualTerminal) EnablePaste() error { return v.recordLocked(OpPasteOn) }

// DisablePaste records a bracketed-paste disable.
func (v *VirtualTerminal) DisablePaste() error { return v.recordLocked(OpPasteOff) }

// EnableFocusReporting records a focus-reporting enable.
func (v *VirtualTerminal) EnableFocusReporting() error { return v.recordLocked(OpFocusOn) }

// DisableFocusReporting records a focus-reporting disable.
func (v *VirtualTerminal) DisableFocusReporting() error { return v.recordLocked(OpFocusOff) }

func (v *VirtualTerminal) recordLocked(op Op) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.record(op)
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// Flush records a flush; buffered data is already visible via Output.
func (v *VirtualTerminal) Flush() error { return v.recordLocked(OpFlush) }

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// --- Test helpers (not part of Terminal interface) ---

// FailOn scripts err as the result of every subsequent call to op.
func (v *VirtualTerminal) FailOn(op Op, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.failures[op] = err
}

// Calls returns how many times op was invoked.
func (v *VirtualTerminal) Calls(op Op) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.calls[op]
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// SetSize updates the terminal dimensions and, if a resize callback
// is registered, invokes it with the new size.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
}
