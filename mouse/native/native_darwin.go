//go:build darwin

package native

import (
	"fmt"

	"github.com/allape/openmouse/mouse"
)

// stub keeps the macOS build green until a Quartz event backend lands.
type stub struct{}

func (stub) Open() error  { return nil }
func (stub) Close() error { return nil }

func (stub) Send(e mouse.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return fmt.Errorf("macos %s: %w", e, mouse.ErrUnsupported)
}

func newDriver(Options) (mouse.Driver, error) {
	return stub{}, nil
}
