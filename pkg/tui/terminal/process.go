// ABOUTME: ProcessTerminal implements Terminal over real file descriptors using golang.org/x/term.
// ABOUTME: Reads from stdin, writes buffered output to stderr, and delegates resize handling to platform code.

package terminal

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal. Input (and raw mode) is bound to one
// file descriptor, output to another. The default binding is stdin/stderr so
// stdout stays free for the hosting process.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	mu       sync.Mutex
	w        *bufio.Writer
	oldState *term.State
	resizeFn func(width, height int)
	resizing bool
}

// NewProcessTerminal returns a ProcessTerminal bound to stdin and stderr.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdin, os.Stderr)
}

// NewFileTerminal returns a ProcessTerminal bound to the given files.
// Useful for driving a pty pair in tests or targeting /dev/tty directly.
func NewFileTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{
		in:  in,
		out: out,
		w:   bufio.NewWriter(out),
	}
}

// EnterRawMode switches the input descriptor to raw mode, saving the
// previous state. Calling it again while raw is a no-op.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its pre-raw state. A no-op when raw
// mode is not active.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// IsRawMode reports whether raw mode is currently active.
func (t *ProcessTerminal) IsRawMode() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.oldState != nil
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ProcessTerminal) EnterAltScreen() error { return t.writeMode(csiAltScreenEnter) }

// LeaveAltScreen returns to the main screen buffer.
func (t *ProcessTerminal) LeaveAltScreen() error { return t.writeMode(csiAltScreenLeave) }

// ShowCursor makes the cursor visible.
func (t *ProcessTerminal) ShowCursor() error { return t.writeMode(csiCursorShow) }

// HideCursor makes the cursor invisible.
func (t *ProcessTerminal) HideCursor() error { return t.writeMode(csiCursorHide) }

// EnableMouse turns on click, drag, and SGR mouse reporting.
func (t *ProcessTerminal) EnableMouse() error { return t.writeMode(csiMouseOn) }

// DisableMouse turns off mouse reporting.
func (t *ProcessTerminal) DisableMouse() error { return t.writeMode(csiMouseOff) }

// EnablePaste turns on bracketed paste.
func (t *ProcessTerminal) EnablePaste() error { return t.writeMode(csiPasteOn) }

// DisablePaste turns off bracketed paste.
func (t *ProcessTerminal) DisablePaste() error { return t.writeMode(csiPasteOff) }

// EnableFocusReporting turns on focus in/out reports.
func (t *ProcessTerminal) EnableFocusReporting() error { return t.writeMode(csiFocusOn) }

// DisableFocusReporting turns off focus in/out reports.
func (t *ProcessTerminal) DisableFocusReporting() error { return t.writeMode(csiFocusOff) }

// writeMode emits an escape sequence and flushes it immediately so mode
// transitions take effect before the caller proceeds.
func (t *ProcessTerminal) writeMode(seq string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.w.WriteString(seq); err != nil {
		return fmt.Errorf("writing mode sequence: %w", err)
	}
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("flushing mode sequence: %w", err)
	}
	return nil
}

// Size returns the current terminal dimensions of the output descriptor.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write buffers p for the output descriptor. Call Flush to emit.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// Flush writes all buffered output to the terminal.
func (t *ProcessTerminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("flushing terminal output: %w", err)
	}
	return nil
}

// OnResize registers a callback invoked when the terminal is resized.
// Platform-specific signal handling is set up by startResizeListener.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	started := t.resizing
	t.resizing = true
	t.mu.Unlock()

	if !started {
		t.startResizeListener()
	}
}
