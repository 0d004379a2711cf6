//go:build !windows && !darwin

package native

import (
	"fmt"
	"runtime"

	"github.com/allape/openmouse/mouse"
)

func newDriver(Options) (mouse.Driver, error) {
	return nil, fmt.Errorf("%s: %w", runtime.GOOS, mouse.ErrUnsupported)
}
