// ABOUTME: Sealed event union delivered by a session's event pump.
// ABOUTME: Covers lifecycle (Init), timers (Tick/Render), input, focus, paste, resize, and errors.

package session

import (
	"github.com/mauromedda/tuicore/pkg/tui/input"
	"github.com/mauromedda/tuicore/pkg/tui/key"
)

// Event is one item delivered by Session.Next. The set is closed: only
// the types in this package implement it, so a type switch over events
// can be exhaustive.
type Event interface {
	isEvent()
}

// InitEvent is always the first event a freshly started pump delivers.
type InitEvent struct{}

// TickEvent fires at the configured tick rate, independent of rendering.
type TickEvent struct{}

// RenderEvent fires at the configured frame rate; consumers typically
// respond by calling Draw.
type RenderEvent struct{}

// KeyEvent carries one key press. Repeat and release events are
// filtered out by the pump before delivery.
type KeyEvent struct {
	Key key.Key
}

// MouseEvent carries one decoded mouse report. Delivered only when
// mouse capture was enabled at Enter.
type MouseEvent struct {
	Mouse input.Mouse
}

// PasteEvent carries the text of one bracketed paste. Delivered only
// when bracketed paste was enabled at Enter.
type PasteEvent struct {
	Text string
}

// FocusGainedEvent reports the terminal gaining focus.
type FocusGainedEvent struct{}

// FocusLostEvent reports the terminal losing focus.
type FocusLostEvent struct{}

// ResizeEvent reports the new terminal dimensions after a size change.
// Intermediate sizes may be coalesced; the latest always arrives.
type ResizeEvent struct {
	Width  int
	Height int
}

// ErrorEvent reports an input-source failure. The session stays usable;
// timers keep firing and the consumer decides whether to exit.
type ErrorEvent struct {
	Err error
}

func (InitEvent) isEvent()        {}
func (TickEvent) isEvent()        {}
func (RenderEvent) isEvent()      {}
func (KeyEvent) isEvent()         {}
func (MouseEvent) isEvent()       {}
func (PasteEvent) isEvent()       {}
func (FocusGainedEvent) isEvent() {}
func (FocusLostEvent) isEvent()   {}
func (ResizeEvent) isEvent()      {}
func (ErrorEvent) isEvent()       {}
