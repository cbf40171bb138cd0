// ABOUTME: Reader turns raw bytes from an io.Reader into structured input events.
// ABOUTME: Handles escape sequence buffering, lone-ESC timeout (~50ms), bracketed paste, focus, and SGR mouse.

package input

import (
	"context"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mauromedda/tuicore/pkg/tui/key"
)

const (
	readBufSize  = 256
	maxSeqLen    = 64
	escTimeout   = 50 * time.Millisecond
	bracketStart = "\x1b[200~"
	bracketEnd   = "\x1b[201~"
	focusGained  = "\x1b[I"
	focusLost    = "\x1b[O"
	mousePrefix  = "\x1b[<"
)

// Reader is a restartable source of structured input events over a raw
// byte stream. One persistent goroutine reads bytes; each Start spawns a
// parse pass that delivers events until its context is cancelled or the
// stream ends. Starting again after cancellation resumes parsing from
// whatever bytes are buffered.
type Reader struct {
	reader io.Reader

	mu  sync.Mutex
	buf []byte

	readOnce sync.Once
	raw      chan readResult

	// Serializes parse passes across restarts.
	stopPrev func()
}

// NewReader creates a Reader over r. No goroutines run until Start.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		reader: r,
		buf:    make([]byte, 0, readBufSize),
		raw:    make(chan readResult),
	}
}

// readResult holds the outcome of a single Read call.
type readResult struct {
	data []byte
	err  error
}

// Start begins (or resumes) event delivery and returns the channel events
// arrive on. The channel is closed when ctx is cancelled, the underlying
// reader returns an error (after an ErrorEvent is delivered), or the
// stream ends. A previous Start's parse pass is stopped and drained before
// the new one begins, so at most one pass is ever alive.
func (r *Reader) Start(ctx context.Context) <-chan Event {
	r.readOnce.Do(func() {
		go r.readLoop()
	})

	r.mu.Lock()
	if r.stopPrev != nil {
		r.stopPrev()
	}
	passCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.stopPrev = func() {
		cancel()
		<-done
	}
	r.mu.Unlock()

	out := make(chan Event)
	go func() {
		defer close(done)
		defer close(out)
		r.run(passCtx, out)
	}()
	return out
}

// readLoop continuously reads from the reader and publishes results on
// r.raw. It exits on the first read error; the error itself is published
// so the active parse pass can surface it.
func (r *Reader) readLoop() {
	tmp := make([]byte, readBufSize)
	for {
		n, err := r.reader.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			r.raw <- readResult{data: data}
		}
		if err != nil {
			r.raw <- readResult{err: err}
			close(r.raw)
			return
		}
	}
}

// run is one parse pass: it pulls raw reads, buffers them, and emits
// parsed events until cancellation or stream end.
func (r *Reader) run(ctx context.Context, out chan<- Event) {
	// Drain anything buffered by a previous pass first.
	if !r.dispatch(ctx, out) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case res, ok := <-r.raw:
			if !ok {
				return
			}
			if res.err != nil {
				if res.err != io.EOF {
					emit(ctx, out, ErrorEvent{Err: res.err})
				}
				return
			}
			r.mu.Lock()
			r.buf = append(r.buf, res.data...)
			r.mu.Unlock()
			if !r.dispatch(ctx, out) {
				return
			}
		}
	}
}

// emit sends ev unless ctx is cancelled first. Reports whether the send
// happened.
func emit(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- ev:
		return true
	}
}

// dispatch parses and emits all complete sequences from the buffer.
// Returns false when ctx was cancelled.
func (r *Reader) dispatch(ctx context.Context, out chan<- Event) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		r.mu.Lock()
		if len(r.buf) == 0 {
			r.mu.Unlock()
			return true
		}

		consumed, ev, needsWait := r.tryParse()
		if needsWait {
			before := len(r.buf)
			r.mu.Unlock()
			ok, progressed := r.waitForMore(ctx, out, before)
			if !ok {
				return false
			}
			if !progressed {
				// Nothing more arrived; force progress by consuming one
				// byte and re-parsing the remainder.
				r.mu.Lock()
				if len(r.buf) > 0 {
					wasEsc := r.buf[0] == 0x1b
					r.buf = r.buf[1:]
					r.mu.Unlock()
					if wasEsc && !emit(ctx, out, KeyEvent{Key: key.Key{Type: key.KeyEscape}}) {
						return false
					}
				} else {
					r.mu.Unlock()
				}
			}
			continue
		}

		if consumed > 0 {
			r.buf = r.buf[consumed:]
		}
		r.mu.Unlock()

		if consumed == 0 {
			return true
		}
		if ev != nil && !emit(ctx, out, ev) {
			return false
		}
	}
}

// tryParse attempts to parse one event from the front of r.buf.
// Returns (consumed bytes, event or nil, needs-wait flag).
// Must be called with r.mu held.
func (r *Reader) tryParse() (int, Event, bool) {
	if len(r.buf) == 0 {
		return 0, nil, false
	}

	if r.buf[0] == 0x1b {
		return r.parseEscape()
	}

	// Incomplete UTF-8 rune: wait for more bytes unless the buffer is
	// already long enough to know it is invalid.
	if !utf8.FullRune(r.buf) {
		if len(r.buf) < utf8.UTFMax {
			return 0, nil, true
		}
		return 1, nil, false
	}

	ru, size := utf8.DecodeRune(r.buf)
	if ru == utf8.RuneError {
		return 1, nil, false
	}

	k := key.ParseKey(string(r.buf[:size]))
	return size, KeyEvent{Key: k}, false
}

// parseEscape parses an ESC-prefixed sequence from the front of r.buf.
// Must be called with r.mu held and r.buf[0] == ESC.
func (r *Reader) parseEscape() (int, Event, bool) {
	s := string(r.buf)

	// Lone ESC: might be the key itself or the start of a sequence.
	if len(s) == 1 {
		return 0, nil, true
	}

	if s[1] == '[' {
		return r.parseCSI(s)
	}

	// SS3 sequences are exactly three bytes.
	if s[1] == 'O' {
		if len(s) < 3 {
			return 0, nil, true
		}
		k := key.ParseKey(s[:3])
		if k.Type != key.KeyUnknown {
			return 3, KeyEvent{Key: k}, false
		}
		return 1, KeyEvent{Key: key.Key{Type: key.KeyEscape}}, false
	}

	// Alt+key: ESC followed by one byte.
	k := key.ParseKey(s[:2])
	if k.Type != key.KeyUnknown {
		return 2, KeyEvent{Key: k}, false
	}
	return 1, KeyEvent{Key: key.Key{Type: key.KeyEscape}}, false
}

// parseCSI handles all CSI-introduced input: bracketed paste, focus
// reports, SGR mouse, and keyboard sequences.
// Must be called with r.mu held.
func (r *Reader) parseCSI(s string) (int, Event, bool) {
	// Bracketed paste swallows everything until its end marker.
	if hasPrefixOrIsPrefix(s, bracketStart) {
		if len(s) < len(bracketStart) {
			return 0, nil, true
		}
		end := indexOf(s, bracketEnd, len(bracketStart))
		if end < 0 {
			return 0, nil, true
		}
		text := s[len(bracketStart):end]
		return end + len(bracketEnd), PasteEvent{Text: text}, false
	}

	// Focus reports are exactly three bytes.
	if hasPrefixOrIsPrefix(s, focusGained) {
		if len(s) < len(focusGained) {
			return 0, nil, true
		}
		return len(focusGained), FocusGainedEvent{}, false
	}
	if hasPrefixOrIsPrefix(s, focusLost) {
		if len(s) < len(focusLost) {
			return 0, nil, true
		}
		return len(focusLost), FocusLostEvent{}, false
	}

	// SGR mouse: ESC [ < code ; col ; row (M|m)
	if hasPrefixOrIsPrefix(s, mousePrefix) {
		if len(s) < len(mousePrefix) {
			return 0, nil, true
		}
		for i := len(mousePrefix); i < len(s); i++ {
			if c := s[i]; c == 'M' || c == 'm' {
				if m, ok := parseSGRMouse(s[len(mousePrefix):i], c); ok {
					return i + 1, MouseEvent{Mouse: m}, false
				}
				return i + 1, nil, false
			}
		}
		if len(s) < maxSeqLen {
			return 0, nil, true
		}
		return 1, nil, false
	}

	// Generic CSI: scan for the final byte (0x40..0x7E).
	for i := 2; i < len(s); i++ {
		c := s[i]
		if c < 0x40 || c > 0x7e {
			continue
		}
		seq := s[:i+1]
		k := key.ParseKey(seq)
		if k.Type != key.KeyUnknown {
			return i + 1, KeyEvent{Key: k}, false
		}
		// Recognized CSI shape but an unknown sequence; drop it.
		return i + 1, nil, false
	}

	if len(s) < maxSeqLen {
		return 0, nil, true
	}
	// Oversized garbage; consume the ESC and resync.
	return 1, nil, false
}

// waitForMore pauses briefly to allow more bytes to arrive for sequence
// completion, emitting a lone Escape on timeout when only ESC is pending.
// Returns (ctx still live, buffer grew).
func (r *Reader) waitForMore(ctx context.Context, out chan<- Event, before int) (bool, bool) {
	timer := time.NewTimer(escTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false, false
	case res, ok := <-r.raw:
		if !ok {
			return true, false
		}
		if res.err != nil {
			if res.err != io.EOF {
				emit(ctx, out, ErrorEvent{Err: res.err})
			}
			return false, false
		}
		r.mu.Lock()
		r.buf = append(r.buf, res.data...)
		r.mu.Unlock()
		return true, true
	case <-timer.C:
		r.mu.Lock()
		grown := len(r.buf) > before
		// Timeout with exactly one pending ESC: it was the key itself.
		if !grown && len(r.buf) == 1 && r.buf[0] == 0x1b {
			r.buf = r.buf[:0]
			r.mu.Unlock()
			return emit(ctx, out, KeyEvent{Key: key.Key{Type: key.KeyEscape}}), true
		}
		r.mu.Unlock()
		return true, grown
	}
}

// hasPrefixOrIsPrefix reports whether s begins with prefix, or s is
// itself a leading fragment of prefix (so the caller should wait).
func hasPrefixOrIsPrefix(s, prefix string) bool {
	n := min(len(s), len(prefix))
	return s[:n] == prefix[:n]
}

// indexOf returns the index of sub in s at or after from, or -1.
func indexOf(s, sub string, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
