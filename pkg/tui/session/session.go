// ABOUTME: Session owns the real terminal: mode transitions, event pump, draw path.
// ABOUTME: Pump races cancellation, input, resize, tick, and render; delivery via an unbounded queue.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mauromedda/tuicore/internal/log"
	"github.com/mauromedda/tuicore/pkg/tui"
	"github.com/mauromedda/tuicore/pkg/tui/input"
	"github.com/mauromedda/tuicore/pkg/tui/key"
	"github.com/mauromedda/tuicore/pkg/tui/terminal"
)

// Default pump rates, in events per second.
const (
	DefaultTickRate  = 4.0
	DefaultFrameRate = 60.0
)

// Pump shutdown policy: poll interval, forced-abort threshold, and the
// ceiling past which the pump is logged as stuck and abandoned.
const (
	stopPollInterval = time.Millisecond
	stopKillAfter    = 50 * time.Millisecond
	stopGiveUpAfter  = 100 * time.Millisecond
)

// Session manages a real terminal: raw mode, alternate screen, optional
// mouse capture and bracketed paste, and an event pump multiplexing
// input, resize notifications, and tick/render timers onto a single
// queue consumed via Next.
//
// Output is bound to stderr so stdout stays free for program output.
// Configure with the builder methods before Enter; they are not safe to
// call on an entered session.
type Session struct {
	term   terminal.Terminal
	reader *input.Reader
	queue  *queue
	render *tui.Renderer

	tickRate  float64
	frameRate float64
	mouse     bool
	paste     bool

	// resize carries the latest terminal dimensions into the pump.
	// Buffered 1, latest wins.
	resize chan [2]int

	mu      sync.Mutex
	entered bool
	closed  bool
	cancel  context.CancelFunc
	kill    chan struct{}
	done    chan struct{}
}

// New creates a Session over the process terminal (stdin input, stderr
// output). Fails when the output is not a terminal.
func New() (*Session, error) {
	term := terminal.NewProcessTerminal()
	if _, _, err := term.Size(); err != nil {
		return nil, fmt.Errorf("acquiring terminal: %w", err)
	}
	return NewFrom(term, os.Stdin), nil
}

// NewFrom creates a Session over an explicit terminal and input stream.
// Tests use it with a VirtualTerminal and a pipe.
func NewFrom(term terminal.Terminal, in io.Reader) *Session {
	s := &Session{
		term:      term,
		reader:    input.NewReader(in),
		queue:     newQueue(),
		render:    tui.NewRenderer(term),
		tickRate:  DefaultTickRate,
		frameRate: DefaultFrameRate,
		resize:    make(chan [2]int, 1),
	}
	term.OnResize(s.notifyResize)
	return s
}

// Terminal exposes the underlying terminal, for panic-restore hooks.
func (s *Session) Terminal() terminal.Terminal {
	return s.term
}

// TickRate sets the tick frequency in ticks per second. Values <= 0
// keep the default.
func (s *Session) TickRate(perSecond float64) *Session {
	if perSecond > 0 {
		s.tickRate = perSecond
	}
	return s
}

// FrameRate sets the render frequency in frames per second. Values <= 0
// keep the default.
func (s *Session) FrameRate(perSecond float64) *Session {
	if perSecond > 0 {
		s.frameRate = perSecond
	}
	return s
}

// Mouse enables or disables mouse capture for subsequent Enters.
func (s *Session) Mouse(enabled bool) *Session {
	s.mouse = enabled
	return s
}

// Paste enables or disables bracketed paste for subsequent Enters.
func (s *Session) Paste(enabled bool) *Session {
	s.paste = enabled
	return s
}

// notifyResize publishes the newest dimensions, displacing any pending
// older ones.
func (s *Session) notifyResize(w, h int) {
	for {
		select {
		case s.resize <- [2]int{w, h}:
			return
		default:
			select {
			case <-s.resize:
			default:
			}
		}
	}
}

// Enter takes over the terminal: raw mode, alternate screen, hidden
// cursor, focus reporting, and mouse/paste capture as configured, then
// starts the event pump. Calling Enter on an entered session is a
// no-op. On failure the terminal is restored to its prior state before
// the error is returned.
func (s *Session) Enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("entering session: session closed")
	}
	if s.entered {
		return nil
	}

	type step struct {
		name string
		fn   func() error
	}
	steps := []step{
		{"raw mode", s.term.EnterRawMode},
		{"alternate screen", s.term.EnterAltScreen},
		{"cursor hide", s.term.HideCursor},
		{"focus reporting", s.term.EnableFocusReporting},
	}
	if s.mouse {
		steps = append(steps, step{"mouse capture", s.term.EnableMouse})
	}
	if s.paste {
		steps = append(steps, step{"bracketed paste", s.term.EnablePaste})
	}

	for _, st := range steps {
		if err := st.fn(); err != nil {
			s.restoreModes()
			return fmt.Errorf("entering %s: %w", st.name, err)
		}
	}
	if err := s.term.Flush(); err != nil {
		s.restoreModes()
		return fmt.Errorf("flushing mode transitions: %w", err)
	}

	s.start()
	s.render.Invalidate()
	s.entered = true
	return nil
}

// Exit stops the pump and restores the terminal: capture modes off,
// focus reporting off, alternate screen left, cursor shown, raw mode
// exited. Exiting a session that is not entered is a no-op.
func (s *Session) Exit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitLocked()
}

func (s *Session) exitLocked() error {
	if !s.entered {
		return nil
	}
	s.stop()
	s.entered = false
	return s.restoreModes()
}

// restoreModes undoes the terminal takeover in reverse order. All steps
// run; errors are joined.
func (s *Session) restoreModes() error {
	if !s.term.IsRawMode() {
		return nil
	}

	var errs []error
	if s.paste {
		if err := s.term.DisablePaste(); err != nil {
			errs = append(errs, fmt.Errorf("disabling bracketed paste: %w", err))
		}
	}
	if s.mouse {
		if err := s.term.DisableMouse(); err != nil {
			errs = append(errs, fmt.Errorf("disabling mouse capture: %w", err))
		}
	}
	if err := s.term.DisableFocusReporting(); err != nil {
		errs = append(errs, fmt.Errorf("disabling focus reporting: %w", err))
	}
	if err := s.term.LeaveAltScreen(); err != nil {
		errs = append(errs, fmt.Errorf("leaving alternate screen: %w", err))
	}
	if err := s.term.ShowCursor(); err != nil {
		errs = append(errs, fmt.Errorf("showing cursor: %w", err))
	}
	if err := s.term.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flushing restore sequence: %w", err))
	}
	if err := s.term.ExitRawMode(); err != nil {
		errs = append(errs, fmt.Errorf("exiting raw mode: %w", err))
	}
	return errors.Join(errs...)
}

// start launches a fresh pump. Any previous pump is cancelled and
// abandoned; it is never resumed. Must be called with s.mu held.
func (s *Session) start() {
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.kill = make(chan struct{})
	s.done = make(chan struct{})

	events := s.reader.Start(ctx)
	go s.pump(ctx, s.kill, s.done, events)
}

// stop shuts the pump down: cancel, then poll for completion every
// millisecond; force-abort via the kill channel at 50ms; at 100ms log
// the stuck pump and abandon it. Never returns an error. Must be called
// with s.mu held.
func (s *Session) stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil

	ticker := time.NewTicker(stopPollInterval)
	defer ticker.Stop()

	start := time.Now()
	killed := false
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			elapsed := time.Since(start)
			if !killed && elapsed >= stopKillAfter {
				close(s.kill)
				killed = true
			}
			if elapsed >= stopGiveUpAfter {
				log.Warn("event pump did not stop within %v; abandoning it", stopGiveUpAfter)
				return
			}
		}
	}
}

// Cancel signals the pump to stop without waiting for it or touching
// the terminal.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
}

// Next returns the oldest pending event, waiting until one arrives.
// Returns ctx.Err() on cancellation and ErrQueueClosed after Close.
func (s *Session) Next(ctx context.Context) (Event, error) {
	return s.queue.Pop(ctx)
}

// Draw invokes fn with a frame sized to the current terminal and
// flushes the result as a diff against the previous frame.
func (s *Session) Draw(fn func(*tui.Frame) error) error {
	w, h, err := s.term.Size()
	if err != nil {
		return fmt.Errorf("querying terminal size: %w", err)
	}

	f := tui.AcquireFrame(w, h)
	defer tui.ReleaseFrame(f)

	if err := fn(f); err != nil {
		return err
	}
	return s.render.Render(f)
}

// Suspend restores the terminal and stops the process with SIGTSTP, the
// shell job-control convention. On resume, call Resume.
func (s *Session) Suspend() error {
	if err := s.Exit(); err != nil {
		return fmt.Errorf("suspending session: %w", err)
	}
	if err := terminal.RaiseStop(); err != nil {
		return fmt.Errorf("suspending session: %w", err)
	}
	return nil
}

// Resume re-enters the terminal after a Suspend and forces a full
// redraw on the next Draw.
func (s *Session) Resume() error {
	if err := s.Enter(); err != nil {
		return fmt.Errorf("resuming session: %w", err)
	}
	return nil
}

// Close tears the session down for good: exits if entered and closes
// the event queue. Idempotent; safe to defer right after construction.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	err := s.exitLocked()
	s.queue.Close()
	return err
}

// pump is the session's event goroutine. It emits Init, then races
// cancellation, forced abort, input, resize, tick, and render, pushing
// everything onto the unbounded queue so it never blocks on a consumer.
func (s *Session) pump(ctx context.Context, kill <-chan struct{}, done chan<- struct{}, events <-chan input.Event) {
	defer close(done)

	s.queue.Push(InitEvent{})

	tick := time.NewTicker(rateToInterval(s.tickRate))
	defer tick.Stop()
	render := time.NewTicker(rateToInterval(s.frameRate))
	defer render.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-kill:
			return
		case ev, ok := <-events:
			if !ok {
				// Input stream ended; timers keep the session alive.
				events = nil
				continue
			}
			if out := translate(ev); out != nil {
				s.queue.Push(out)
			}
		case wh := <-s.resize:
			s.queue.Push(ResizeEvent{Width: wh[0], Height: wh[1]})
		case <-tick.C:
			s.queue.Push(TickEvent{})
		case <-render.C:
			s.queue.Push(RenderEvent{})
		}
	}
}

// translate maps a raw input event to a session event, or nil when the
// event is filtered. Key repeats and releases never reach consumers.
func translate(ev input.Event) Event {
	switch e := ev.(type) {
	case input.KeyEvent:
		if e.Key.Kind != key.KindPress {
			return nil
		}
		return KeyEvent{Key: e.Key}
	case input.MouseEvent:
		return MouseEvent{Mouse: e.Mouse}
	case input.PasteEvent:
		return PasteEvent{Text: e.Text}
	case input.FocusGainedEvent:
		return FocusGainedEvent{}
	case input.FocusLostEvent:
		return FocusLostEvent{}
	case input.ErrorEvent:
		return ErrorEvent{Err: e.Err}
	default:
		return nil
	}
}

// rateToInterval converts an events-per-second rate to a tick interval.
func rateToInterval(perSecond float64) time.Duration {
	return time.Duration(float64(time.Second) / perSecond)
}
