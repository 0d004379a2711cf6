package mouse

import "fmt"

type Kind uint8

const (
	KindMove Kind = iota + 1
	KindPress
	KindRelease
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindPress:
		return "press"
	case KindRelease:
		return "release"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Event is one synthetic input transition. Move events carry a position,
// press and release events carry a button and act at the current position.
type Event struct {
	Kind   Kind
	Button Button
	Point
}

func MoveEvent(x, y int) Event {
	return Event{Kind: KindMove, Point: Point{X: x, Y: y}}
}

func PressEvent(b Button) Event {
	return Event{Kind: KindPress, Button: b}
}

func ReleaseEvent(b Button) Event {
	return Event{Kind: KindRelease, Button: b}
}

func (e Event) Validate() error {
	switch e.Kind {
	case KindMove:
		if e.Button != "" {
			return fmt.Errorf("%w: move carries button %q", ErrInvalidEvent, e.Button)
		}
		if e.X < 0 || e.Y < 0 {
			return fmt.Errorf("%w: (%d, %d)", ErrNegativeCoordinate, e.X, e.Y)
		}
	case KindPress, KindRelease:
		if !e.Button.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidButton, e.Button)
		}
		if e.X != 0 || e.Y != 0 {
			return fmt.Errorf("%w: %s carries a position", ErrInvalidEvent, e.Kind)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidEvent, e.Kind)
	}
	return nil
}

func (e Event) String() string {
	if e.Kind == KindMove {
		return fmt.Sprintf("move(%d, %d)", e.X, e.Y)
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Button)
}

// Summary counts events by kind, e.g. "3 events: 1 move, 1 press, 1 release".
func Summary(events []Event) string {
	var moves, presses, releases int
	for _, e := range events {
		switch e.Kind {
		case KindMove:
			moves++
		case KindPress:
			presses++
		case KindRelease:
			releases++
		}
	}
	return fmt.Sprintf("%d events: %d move, %d press, %d release", len(events), moves, presses, releases)
}
