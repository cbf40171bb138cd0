// ABOUTME: Frame is the pooled drawing surface handed to draw callbacks.
// ABOUTME: A width/height-bounded line buffer; lines are clamped ANSI-aware to the frame width.

package tui

import (
	"sync"

	"github.com/mauromedda/tuicore/pkg/tui/width"
)

var framePool = sync.Pool{
	New: func() any {
		return &Frame{
			lines: make([]string, 0, 64),
		}
	},
}

// AcquireFrame gets a Frame of the given dimensions from the pool.
func AcquireFrame(w, h int) *Frame {
	f := framePool.Get().(*Frame)
	f.width = w
	f.height = h
	f.lines = f.lines[:0]
	return f
}

// ReleaseFrame returns a Frame to the pool.
func ReleaseFrame(f *Frame) {
	if f == nil {
		return
	}
	f.lines = f.lines[:0]
	framePool.Put(f)
}

// Frame is a drawing surface bounded by the target terminal's dimensions.
// Draw callbacks write lines into it; the renderer diffs it against the
// previous frame. Lines past the frame height are dropped and every line
// is clamped to the frame width, preserving ANSI styling.
type Frame struct {
	width  int
	height int
	lines  []string
}

// NewFrame returns an unpooled Frame, mostly useful in tests.
func NewFrame(w, h int) *Frame {
	return &Frame{width: w, height: h}
}

// Size returns the frame dimensions.
func (f *Frame) Size() (w, h int) {
	return f.width, f.height
}

// WriteLine appends one line, clamped to the frame width. Writes beyond
// the frame height are dropped.
func (f *Frame) WriteLine(line string) {
	if len(f.lines) >= f.height {
		return
	}
	f.lines = append(f.lines, f.clamp(line))
}

// WriteLines appends multiple lines via WriteLine.
func (f *Frame) WriteLines(lines []string) {
	for _, line := range lines {
		f.WriteLine(line)
	}
}

// SetLine overwrites the line at row, extending the frame with blank
// lines as needed. Rows outside the frame height are ignored.
func (f *Frame) SetLine(row int, line string) {
	if row < 0 || row >= f.height {
		return
	}
	for len(f.lines) <= row {
		f.lines = append(f.lines, "")
	}
	f.lines[row] = f.clamp(line)
}

// Line returns the line at row, or "" when the row is blank or out of range.
func (f *Frame) Line(row int) string {
	if row < 0 || row >= len(f.lines) {
		return ""
	}
	return f.lines[row]
}

// Len returns the number of written lines.
func (f *Frame) Len() int {
	return len(f.lines)
}

// Lines returns the written lines. The slice is owned by the frame.
func (f *Frame) Lines() []string {
	return f.lines
}

// Clear drops all written lines.
func (f *Frame) Clear() {
	f.lines = f.lines[:0]
}

// clamp cuts line down to the frame width, ANSI-aware.
func (f *Frame) clamp(line string) string {
	if width.VisibleWidth(line) <= f.width {
		return line
	}
	return width.SliceByColumn(line, 0, f.width)
}
