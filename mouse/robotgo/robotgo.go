//go:build robotgo

// Package robotgo injects events through robotgo, which covers Windows,
// macOS and X11 but needs cgo and the platform headers at build time.
// Build with -tags robotgo to enable it.
package robotgo

import (
	"fmt"

	"github.com/allape/gogger"
	"github.com/allape/openmouse/mouse"
	"github.com/go-vgo/robotgo"
)

var l = gogger.New("mouse.robotgo")

const Available = true

type Driver struct{}

func (d *Driver) Open() error {
	size, err := d.ScreenSize()
	if err != nil {
		return err
	}
	l.Info().Printf("screen is %dx%d", size.Width, size.Height)
	return nil
}

func (d *Driver) Close() error {
	return nil
}

func (d *Driver) ScreenSize() (mouse.Size, error) {
	w, h := robotgo.GetScreenSize()
	size := mouse.Size{Width: w, Height: h}
	if !size.Valid() {
		return size, fmt.Errorf("robotgo: %w: %dx%d", mouse.ErrInvalidScreen, w, h)
	}
	return size, nil
}

func (d *Driver) Send(e mouse.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	l.Verbose().Println("event:", e)

	switch e.Kind {
	case mouse.KindMove:
		robotgo.Move(e.X, e.Y)
		return nil
	case mouse.KindPress, mouse.KindRelease:
		name, err := buttonName(e.Button)
		if err != nil {
			return err
		}
		if e.Kind == mouse.KindPress {
			return robotgo.Toggle(name, "down")
		}
		return robotgo.Toggle(name, "up")
	}
	return fmt.Errorf("%w: %s", mouse.ErrInvalidEvent, e.Kind)
}

func New() (*Driver, error) {
	return &Driver{}, nil
}
