//go:build !robotgo

package robotgo

import (
	"errors"

	"github.com/allape/openmouse/mouse"
)

const Available = false

type Driver struct{}

func (d *Driver) Open() error            { return errNotBuilt }
func (d *Driver) Close() error           { return nil }
func (d *Driver) Send(mouse.Event) error { return errNotBuilt }

var errNotBuilt = errors.Join(errors.New("robotgo driver not built, rebuild with -tags robotgo"), mouse.ErrUnsupported)

func New() (*Driver, error) {
	return nil, errNotBuilt
}
