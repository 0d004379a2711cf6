//go:build windows

package native

import (
	"github.com/allape/openmouse/mouse"
	"github.com/allape/openmouse/mouse/sendinput"
)

func newDriver(options Options) (mouse.Driver, error) {
	return sendinput.New(&sendinput.Options{Rounding: options.Rounding})
}
