// ABOUTME: Tests for RecoverGoroutine panic recovery without os.Exit
// ABOUTME: Verifies goroutine panics are caught and the terminal is restored

package terminal

import "testing"

func TestRecoverGoroutine_CatchesPanic(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	_ = vt.EnterRawMode()
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer RecoverGoroutine(vt)
		panic("test goroutine panic")
	}()

	<-done

	if vt.IsRawMode() {
		t.Error("expected raw mode to be restored on goroutine panic")
	}
	if vt.Calls(OpCursorShow) != 1 {
		t.Errorf("ShowCursor calls = %d, want 1", vt.Calls(OpCursorShow))
	}
	if vt.Calls(OpAltLeave) != 1 {
		t.Errorf("LeaveAltScreen calls = %d, want 1", vt.Calls(OpAltLeave))
	}
}

func TestRecoverGoroutine_NoPanicNoRestore(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	func() {
		defer RecoverGoroutine(vt)
	}()

	if vt.Calls(OpRawExit) != 0 {
		t.Errorf("ExitRawMode calls = %d, want 0", vt.Calls(OpRawExit))
	}
}
