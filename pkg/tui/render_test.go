// ABOUTME: Tests for the diff renderer: full redraw, line diffing, sync wrapping.

package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/tuicore/pkg/tui/terminal"
)

func renderFrame(t *testing.T, r *Renderer, w, h int, lines ...string) {
	t.Helper()
	f := NewFrame(w, h)
	f.WriteLines(lines)
	if err := r.Render(f); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
}

func TestRenderer_FirstRenderClearsScreen(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	r := NewRenderer(vt)
	renderFrame(t, r, 80, 24, "hello")

	out := vt.Output()
	if !strings.Contains(out, "\x1b[2J") {
		t.Errorf("output %q missing clear-screen", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("output %q missing frame content", out)
	}
	if vt.Calls(terminal.OpFlush) != 1 {
		t.Errorf("Flush calls = %d, want 1", vt.Calls(terminal.OpFlush))
	}
}

func TestRenderer_SynchronizedOutput(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	r := NewRenderer(vt)
	renderFrame(t, r, 80, 24, "x")

	out := vt.Output()
	if !strings.HasPrefix(out, "\x1b[?2026h") {
		t.Errorf("output %q does not start sync", out)
	}
	if !strings.HasSuffix(out, "\x1b[?2026l") {
		t.Errorf("output %q does not end sync", out)
	}
}

func TestRenderer_UnchangedFrameWritesNothing(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	r := NewRenderer(vt)
	renderFrame(t, r, 80, 24, "same", "same")

	vt.Reset()
	renderFrame(t, r, 80, 24, "same", "same")
	if out := vt.Output(); out != "" {
		t.Errorf("identical frame produced output %q", out)
	}
}

func TestRenderer_DiffsChangedLinesOnly(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	r := NewRenderer(vt)
	renderFrame(t, r, 80, 24, "alpha", "beta", "gamma")

	vt.Reset()
	renderFrame(t, r, 80, 24, "alpha", "CHANGED", "gamma")

	out := vt.Output()
	if !strings.Contains(out, "\x1b[2;1H") {
		t.Errorf("output %q missing cursor move to row 2", out)
	}
	if !strings.Contains(out, "CHANGED") {
		t.Errorf("output %q missing changed line", out)
	}
	if strings.Contains(out, "alpha") || strings.Contains(out, "gamma") {
		t.Errorf("output %q rewrote unchanged lines", out)
	}
}

func TestRenderer_ShrinkingFrameErasesStaleLines(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	r := NewRenderer(vt)
	renderFrame(t, r, 80, 24, "one", "two", "three")

	vt.Reset()
	renderFrame(t, r, 80, 24, "one")

	out := vt.Output()
	if !strings.Contains(out, "\x1b[2;1H\x1b[2K") {
		t.Errorf("output %q did not erase row 2", out)
	}
	if !strings.Contains(out, "\x1b[3;1H\x1b[2K") {
		t.Errorf("output %q did not erase row 3", out)
	}
}

func TestRenderer_SizeChangeForcesRedraw(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	r := NewRenderer(vt)
	renderFrame(t, r, 80, 24, "hello")

	vt.Reset()
	renderFrame(t, r, 100, 30, "hello")

	out := vt.Output()
	if !strings.Contains(out, "\x1b[2J") {
		t.Errorf("output %q missing clear after resize", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("output %q missing redrawn content", out)
	}
}

func TestRenderer_InvalidateForcesRedraw(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	r := NewRenderer(vt)
	renderFrame(t, r, 80, 24, "hello")

	vt.Reset()
	r.Invalidate()
	renderFrame(t, r, 80, 24, "hello")

	if out := vt.Output(); !strings.Contains(out, "hello") {
		t.Errorf("output %q missing content after Invalidate", out)
	}
}

func TestRenderer_ZeroSizeFrameIsNoop(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	r := NewRenderer(vt)
	if err := r.Render(NewFrame(0, 0)); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if out := vt.Output(); out != "" {
		t.Errorf("zero-size frame produced output %q", out)
	}
}

func TestRenderer_FlushFailurePropagates(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	vt.FailOn(terminal.OpFlush, errors.New("boom"))
	r := NewRenderer(vt)

	f := NewFrame(80, 24)
	f.WriteLine("x")
	if err := r.Render(f); err == nil {
		t.Fatal("Render() = nil, want flush error")
	}
}
