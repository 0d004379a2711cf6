package mouse

import (
	"fmt"
	"math"
	"strings"
)

// AbsoluteRange is the size of the normalized absolute coordinate space,
// [0, 65536) on both axes.
const AbsoluteRange = 0x10000

type Rounding string

const (
	RoundTruncate Rounding = "truncate"
	RoundNearest  Rounding = "nearest"
)

func ParseRounding(s string) (Rounding, error) {
	switch Rounding(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoundTruncate:
		return RoundTruncate, nil
	case RoundNearest:
		return RoundNearest, nil
	}
	return "", fmt.Errorf("unknown rounding: %q", s)
}

func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// ToAbsolute maps a pixel position onto the normalized absolute space of a
// screen of the given size. Positions past the screen edge are not clamped,
// and results beyond int32 wrap.
func ToAbsolute(p Point, screen Size, rounding Rounding) (int32, int32, error) {
	if !screen.Valid() {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidScreen, screen.Width, screen.Height)
	}
	if p.X < 0 || p.Y < 0 {
		return 0, 0, fmt.Errorf("%w: (%d, %d)", ErrNegativeCoordinate, p.X, p.Y)
	}
	return scaleAxis(p.X, screen.Width, rounding), scaleAxis(p.Y, screen.Height, rounding), nil
}

func scaleAxis(v, extent int, rounding Rounding) int32 {
	n := uint64(v) * AbsoluteRange
	if rounding == RoundNearest {
		n += uint64(extent) / 2
	}
	return int32(n / uint64(extent))
}

// FromAbsolute is the inverse of ToAbsolute, truncating to whole pixels.
func FromAbsolute(ax, ay int32, screen Size) (Point, error) {
	if !screen.Valid() {
		return Point{}, fmt.Errorf("%w: %dx%d", ErrInvalidScreen, screen.Width, screen.Height)
	}
	return Point{
		X: int(int64(ax) * int64(screen.Width) / AbsoluteRange),
		Y: int(int64(ay) * int64(screen.Height) / AbsoluteRange),
	}, nil
}

// Scaled multiplies the position of every move by XScale and YScale before
// forwarding it. A zero scale leaves the axis untouched.
type Scaled struct {
	Driver
	XScale float64
	YScale float64
}

func NewScaled(d Driver, xScale, yScale float64) Driver {
	if (xScale == 0 || xScale == 1) && (yScale == 0 || yScale == 1) {
		return d
	}
	return &Scaled{Driver: d, XScale: xScale, YScale: yScale}
}

func (s *Scaled) Send(e Event) error {
	if e.Kind == KindMove {
		e.X = scaleBy(e.X, s.XScale)
		e.Y = scaleBy(e.Y, s.YScale)
	}
	return s.Driver.Send(e)
}

func scaleBy(v int, factor float64) int {
	if factor == 0 {
		return v
	}
	return int(math.Round(float64(v) * factor))
}

// Unwrap returns the driver under a Scaled wrapper.
func Unwrap(d Driver) Driver {
	if s, ok := d.(*Scaled); ok {
		return s.Driver
	}
	return d
}
