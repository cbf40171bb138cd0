// ABOUTME: Windows stubs for platform-specific ProcessTerminal behavior.
// ABOUTME: Resize polling is not implemented and process suspension is unsupported.

//go:build windows

package terminal

import "errors"

// startResizeListener is a no-op on Windows; there is no SIGWINCH
// equivalent without a console event loop.
func (t *ProcessTerminal) startResizeListener() {}

// RaiseStop is unsupported on Windows: there is no SIGTSTP.
func RaiseStop() error {
	return errors.New("process suspension is not supported on windows")
}
