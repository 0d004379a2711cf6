// Package native selects the input backend of the host operating system at
// build time and exposes the mouse operations without any setup.
//
// Windows injects through SendInput. macOS is a stub whose events fail with
// mouse.ErrUnsupported, and every other platform has no backend at all.
package native

import (
	"sync"

	"github.com/allape/openmouse/mouse"
)

type Options struct {
	Rounding mouse.Rounding
}

// New opens the backend of the current operating system.
func New(options *Options) (mouse.Driver, error) {
	if options == nil {
		options = &Options{}
	}
	d, err := newDriver(*options)
	if err != nil {
		return nil, err
	}
	if err := d.Open(); err != nil {
		return nil, err
	}
	return d, nil
}

var (
	defaultLocker sync.Locker = &sync.Mutex{}
	defaultDriver mouse.Driver
	newDefault    = func() (mouse.Driver, error) { return New(nil) }
)

// Default returns the driver shared by the package level functions. It is
// built on first use, a failed build is retried by the next call.
func Default() (mouse.Driver, error) {
	defaultLocker.Lock()
	defer defaultLocker.Unlock()

	if defaultDriver != nil {
		return defaultDriver, nil
	}

	d, err := newDefault()
	if err != nil {
		return nil, err
	}
	defaultDriver = d
	return d, nil
}

// MoveMouse moves the cursor to pixel (x, y) of the primary screen.
func MoveMouse(x, y int) error {
	d, err := Default()
	if err != nil {
		return err
	}
	return mouse.Move(d, x, y)
}

func PressMouse(b mouse.Button) error {
	d, err := Default()
	if err != nil {
		return err
	}
	return mouse.Press(d, b)
}

func ReleaseMouse(b mouse.Button) error {
	d, err := Default()
	if err != nil {
		return err
	}
	return mouse.Release(d, b)
}

// MoveClick moves to (x, y) and clicks the left button.
func MoveClick(x, y int) error {
	d, err := Default()
	if err != nil {
		return err
	}
	return mouse.MoveClick(d, x, y)
}
