// ABOUTME: Sealed event union for structured low-level terminal input.
// ABOUTME: Covers keys, mouse, bracketed paste, focus reports, and read errors.

package input

import "github.com/mauromedda/tuicore/pkg/tui/key"

// Event is one structured input item produced by a Reader. The set is
// closed: only the types in this package implement it.
type Event interface {
	isEvent()
}

// KeyEvent carries one parsed keyboard event, including its press,
// repeat, or release kind.
type KeyEvent struct {
	Key key.Key
}

// MouseEvent carries one decoded SGR mouse report.
type MouseEvent struct {
	Mouse Mouse
}

// PasteEvent carries the body of one bracketed paste, markers stripped.
type PasteEvent struct {
	Text string
}

// FocusGainedEvent reports the terminal gaining focus (CSI I).
type FocusGainedEvent struct{}

// FocusLostEvent reports the terminal losing focus (CSI O).
type FocusLostEvent struct{}

// ErrorEvent reports a read failure from the underlying source. The
// stream ends after an ErrorEvent; consumers decide whether that is
// fatal.
type ErrorEvent struct {
	Err error
}

func (KeyEvent) isEvent()         {}
func (MouseEvent) isEvent()       {}
func (PasteEvent) isEvent()       {}
func (FocusGainedEvent) isEvent() {}
func (FocusLostEvent) isEvent()   {}
func (ErrorEvent) isEvent()       {}
