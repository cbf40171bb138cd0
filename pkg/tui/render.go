// ABOUTME: Renderer flushes Frames to a Terminal with line diffing and absolute cursor addressing.
// ABOUTME: CSI 2026 synchronized output wraps each flush; size changes force a full clear and redraw.

package tui

import (
	"fmt"
	"strings"

	"github.com/mauromedda/tuicore/pkg/tui/terminal"
)

// Renderer writes frames to a terminal's alternate screen. It keeps the
// previously flushed lines and emits only the rows that changed, using
// absolute cursor positioning (1-based CSI row;1H).
type Renderer struct {
	term      terminal.Terminal
	prevLines []string
	prevW     int
	prevH     int
	dirty     bool
}

// NewRenderer creates a Renderer targeting t.
func NewRenderer(t terminal.Terminal) *Renderer {
	return &Renderer{term: t, dirty: true}
}

// Invalidate forces the next Render to clear and redraw everything.
func (r *Renderer) Invalidate() {
	r.dirty = true
	r.prevLines = nil
}

// Render diffs f against the previously rendered frame and writes the
// delta to the terminal, then flushes.
func (r *Renderer) Render(f *Frame) error {
	w, h := f.Size()
	if w <= 0 || h <= 0 {
		return nil
	}

	// Dimension change invalidates the diff baseline.
	if w != r.prevW || h != r.prevH {
		r.Invalidate()
		r.prevW, r.prevH = w, h
	}

	var b strings.Builder

	if r.dirty {
		b.WriteString("\x1b[2J\x1b[H") // clear screen + home
	}

	lines := f.Lines()
	rows := len(lines)
	if n := len(r.prevLines); n > rows {
		rows = n
	}
	if rows > h {
		rows = h
	}

	for row := range rows {
		curr := ""
		if row < len(lines) {
			curr = lines[row]
		}
		prev := ""
		if row < len(r.prevLines) {
			prev = r.prevLines[row]
		}
		if !r.dirty && curr == prev {
			continue
		}
		// Position, erase, rewrite.
		fmt.Fprintf(&b, "\x1b[%d;1H\x1b[2K", row+1)
		b.WriteString(curr)
	}

	if b.Len() > 0 {
		// CSI 2026 synchronized output keeps partial frames off screen.
		out := "\x1b[?2026h" + b.String() + "\x1b[?2026l"
		if _, err := r.term.Write([]byte(out)); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		if err := r.term.Flush(); err != nil {
			return fmt.Errorf("flushing frame: %w", err)
		}
	}

	// Save the flushed lines as the next diff baseline.
	saved := r.prevLines
	if cap(saved) >= len(lines) {
		saved = saved[:len(lines)]
	} else {
		saved = make([]string, len(lines))
	}
	copy(saved, lines)
	r.prevLines = saved
	r.dirty = false

	return nil
}
