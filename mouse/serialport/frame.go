package serialport

import (
	"fmt"
	"math"

	"github.com/allape/openmouse/mouse"
)

// PointerEventType is the RFB message type of a pointer event, the bridge
// firmware understands the same six byte layout.
// https://datatracker.ietf.org/doc/html/rfc6143#section-7.5.5
const PointerEventType = 5

type ButtonMask byte

const (
	MaskLeft   ButtonMask = 1 << 0
	MaskMiddle ButtonMask = 1 << 1
	MaskRight  ButtonMask = 1 << 2
)

func MaskOf(b mouse.Button) (ButtonMask, error) {
	switch b {
	case mouse.Left:
		return MaskLeft, nil
	case mouse.Middle:
		return MaskMiddle, nil
	case mouse.Right:
		return MaskRight, nil
	}
	return 0, fmt.Errorf("%w: %q", mouse.ErrInvalidButton, b)
}

// PointerFrame encodes the full pointer state, every frame carries both the
// position and the buttons held down.
func PointerFrame(mask ButtonMask, p mouse.Point) ([]byte, error) {
	if p.X < 0 || p.Y < 0 {
		return nil, fmt.Errorf("%w: (%d, %d)", mouse.ErrNegativeCoordinate, p.X, p.Y)
	}
	if p.X > math.MaxUint16 || p.Y > math.MaxUint16 {
		return nil, fmt.Errorf("%w: (%d, %d) does not fit a pointer frame", mouse.ErrInvalidEvent, p.X, p.Y)
	}
	return []byte{
		PointerEventType,
		byte(mask),
		byte(p.X >> 8), byte(p.X),
		byte(p.Y >> 8), byte(p.Y),
	}, nil
}
