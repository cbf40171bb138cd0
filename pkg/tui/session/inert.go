// ABOUTME: Inert is the headless counterpart to Session: no terminal takeover, no pump.
// ABOUTME: Next always yields Tick immediately; Draw renders into an in-memory 80x25 terminal.

package session

import (
	"context"
	"fmt"

	"github.com/mauromedda/tuicore/pkg/tui"
	"github.com/mauromedda/tuicore/pkg/tui/terminal"
)

// Inert dimensions, fixed.
const (
	inertWidth  = 80
	inertHeight = 25
)

// Inert satisfies the same contract as Session without touching a real
// terminal. Enter and Exit do nothing, Next yields an immediate Tick so
// consumer loops keep advancing, and Draw runs the full render path
// against an in-memory virtual terminal. Useful for headless runs and
// tests of code written against the Driver facade.
type Inert struct {
	term   *terminal.VirtualTerminal
	render *tui.Renderer
}

// NewInert creates an Inert session with an 80x25 virtual terminal.
func NewInert() *Inert {
	vt := terminal.NewVirtualTerminal(inertWidth, inertHeight)
	return &Inert{
		term:   vt,
		render: tui.NewRenderer(vt),
	}
}

// Enter does nothing.
func (i *Inert) Enter() error { return nil }

// Exit does nothing.
func (i *Inert) Exit() error { return nil }

// Next yields a TickEvent immediately, unless ctx is already cancelled.
func (i *Inert) Next(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return TickEvent{}, nil
}

// Draw invokes fn with an 80x25 frame and renders it into the virtual
// terminal, exercising the same diff path as a real session.
func (i *Inert) Draw(fn func(*tui.Frame) error) error {
	w, h, err := i.term.Size()
	if err != nil {
		return fmt.Errorf("querying virtual terminal size: %w", err)
	}

	f := tui.AcquireFrame(w, h)
	defer tui.ReleaseFrame(f)

	if err := fn(f); err != nil {
		return err
	}
	return i.render.Render(f)
}

// Terminal exposes the backing virtual terminal so tests can inspect
// rendered output.
func (i *Inert) Terminal() *terminal.VirtualTerminal {
	return i.term
}
