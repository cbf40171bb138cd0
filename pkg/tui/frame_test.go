// ABOUTME: Tests for the Frame drawing surface: bounds, clamping, pooling.

package tui

import (
	"strings"
	"testing"
)

func TestFrame_WriteLineDropsPastHeight(t *testing.T) {
	t.Parallel()

	f := NewFrame(80, 3)
	for i := 0; i < 5; i++ {
		f.WriteLine("line")
	}
	if got := f.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestFrame_ClampsToWidth(t *testing.T) {
	t.Parallel()

	f := NewFrame(5, 1)
	f.WriteLine("hello world")
	if got := f.Line(0); got != "hello" {
		t.Errorf("Line(0) = %q, want %q", got, "hello")
	}
}

func TestFrame_ClampPreservesANSI(t *testing.T) {
	t.Parallel()

	f := NewFrame(5, 1)
	f.WriteLine("\x1b[31mhello world\x1b[0m")
	got := f.Line(0)
	if !strings.Contains(got, "\x1b[31m") {
		t.Errorf("Line(0) = %q, lost ANSI prefix", got)
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("Line(0) = %q, lost visible text", got)
	}
	if strings.Contains(got, "world") {
		t.Errorf("Line(0) = %q, text past width survived", got)
	}
}

func TestFrame_SetLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		row     int
		wantLen int
	}{
		{name: "extends with blanks", row: 2, wantLen: 3},
		{name: "negative row ignored", row: -1, wantLen: 0},
		{name: "row past height ignored", row: 10, wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewFrame(80, 5)
			f.SetLine(tt.row, "x")
			if got := f.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestFrame_SetLineFillsBlanks(t *testing.T) {
	t.Parallel()

	f := NewFrame(80, 5)
	f.SetLine(2, "third")
	if got := f.Line(0); got != "" {
		t.Errorf("Line(0) = %q, want blank", got)
	}
	if got := f.Line(2); got != "third" {
		t.Errorf("Line(2) = %q, want %q", got, "third")
	}
}

func TestFrame_Clear(t *testing.T) {
	t.Parallel()

	f := NewFrame(80, 5)
	f.WriteLines([]string{"a", "b"})
	f.Clear()
	if got := f.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
}

func TestAcquireFrame_ResetsState(t *testing.T) {
	t.Parallel()

	f := AcquireFrame(10, 2)
	f.WriteLine("stale")
	ReleaseFrame(f)

	g := AcquireFrame(20, 4)
	defer ReleaseFrame(g)
	if got := g.Len(); got != 0 {
		t.Errorf("pooled frame Len() = %d, want 0", got)
	}
	w, h := g.Size()
	if w != 20 || h != 4 {
		t.Errorf("pooled frame Size() = (%d, %d), want (20, 4)", w, h)
	}
}
