//go:build !windows

package sendinput

import (
	"errors"

	"github.com/allape/openmouse/mouse"
)

type Options struct {
	Rounding mouse.Rounding
}

type Driver struct {
	Options Options
}

func (d *Driver) Open() error                     { return d.unsupported() }
func (d *Driver) Close() error                    { return nil }
func (d *Driver) Send(mouse.Event) error          { return d.unsupported() }
func (d *Driver) ScreenSize() (mouse.Size, error) { return mouse.Size{}, d.unsupported() }

func (d *Driver) unsupported() error {
	return errors.Join(errors.New("SendInput is only available on windows"), mouse.ErrUnsupported)
}

func New(*Options) (*Driver, error) {
	return nil, (&Driver{}).unsupported()
}
