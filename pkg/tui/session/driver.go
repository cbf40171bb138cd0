// ABOUTME: Driver is the sealed facade over Session and Inert.
// ABOUTME: Pure dispatch; callers hold a Driver and stay agnostic of headless mode.

package session

import (
	"context"

	"github.com/mauromedda/tuicore/pkg/tui"
)

// Driver is the common surface of *Session and *Inert. The interface is
// sealed; no other implementations exist, so code written against it
// covers exactly the real and headless cases.
type Driver interface {
	Enter() error
	Exit() error
	Next(ctx context.Context) (Event, error)
	Draw(fn func(*tui.Frame) error) error

	driver()
}

func (*Session) driver() {}
func (*Inert) driver()   {}

var (
	_ Driver = (*Session)(nil)
	_ Driver = (*Inert)(nil)
)
