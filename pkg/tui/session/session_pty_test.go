// ABOUTME: End-to-end Session test over a real pseudo-terminal pair.
// ABOUTME: Verifies mode sequences reach the pty and typed bytes come back as events.

//go:build unix

package session

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"

	"github.com/mauromedda/tuicore/pkg/tui/terminal"
)

func TestSession_OnRealPty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	if err := pty.Setsize(ptmx, &pty.Winsize{Cols: 80, Rows: 24}); err != nil {
		t.Skipf("cannot set pty size: %v", err)
	}

	s := NewFrom(terminal.NewFileTerminal(tty, tty), tty)
	if err := s.Enter(); err != nil {
		t.Fatalf("Enter() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	// The takeover sequences must arrive on the master side.
	setup := readPty(t, ptmx)
	if !strings.Contains(setup, "\x1b[?1049h") {
		t.Errorf("pty output %q missing alt-screen enter", setup)
	}
	if !strings.Contains(setup, "\x1b[?25l") {
		t.Errorf("pty output %q missing cursor hide", setup)
	}

	// Typing on the master becomes a key event.
	if _, err := ptmx.Write([]byte("x")); err != nil {
		t.Fatalf("writing to pty master: %v", err)
	}
	ev := nextOfType[KeyEvent](t, s)
	if ev.Key.Rune != 'x' {
		t.Errorf("key rune = %q, want 'x'", ev.Key.Rune)
	}

	if err := s.Exit(); err != nil {
		t.Fatalf("Exit() error: %v", err)
	}
	teardown := readPty(t, ptmx)
	if !strings.Contains(teardown, "\x1b[?1049l") {
		t.Errorf("pty output %q missing alt-screen leave", teardown)
	}
}

// readPty drains whatever is currently buffered on the master side.
func readPty(t *testing.T, ptmx *os.File) string {
	t.Helper()

	if err := ptmx.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Skipf("pty does not support read deadlines: %v", err)
	}
	buf := make([]byte, 4096)
	n, err := ptmx.Read(buf)
	if err != nil {
		t.Fatalf("reading pty master: %v", err)
	}
	return string(buf[:n])
}
