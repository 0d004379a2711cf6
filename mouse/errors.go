package mouse

import "errors"

var (
	ErrUnsupported        = errors.New("mouse input is not supported on this platform")
	ErrNoDriver           = errors.New("no mouse driver")
	ErrClosed             = errors.New("mouse driver closed")
	ErrInvalidScreen      = errors.New("invalid screen size")
	ErrInvalidButton      = errors.New("invalid mouse button")
	ErrInvalidEvent       = errors.New("invalid mouse event")
	ErrNegativeCoordinate = errors.New("negative coordinate")
	ErrInputBlocked       = errors.New("input was blocked by the host")
	ErrInvalidCommand     = errors.New("invalid command")
)

// IsInvalid reports whether err was caused by a malformed request rather
// than by the backend.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidButton) ||
		errors.Is(err, ErrInvalidEvent) ||
		errors.Is(err, ErrInvalidCommand) ||
		errors.Is(err, ErrNegativeCoordinate)
}
