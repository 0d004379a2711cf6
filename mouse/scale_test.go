package mouse

import (
	"errors"
	"testing"
)

func TestToAbsoluteOrigin(t *testing.T) {
	for _, r := range []Rounding{RoundTruncate, RoundNearest} {
		ax, ay, err := ToAbsolute(Point{}, Size{Width: 1920, Height: 1080}, r)
		if err != nil {
			t.Fatal(err)
		}
		if ax != 0 || ay != 0 {
			t.Fatalf("%s: expected (0, 0), got (%d, %d)", r, ax, ay)
		}
	}
}

func TestToAbsoluteTruncates(t *testing.T) {
	// 640 * 65536 / 1920 = 21845.33, 480 * 65536 / 1080 = 29127.11
	ax, ay, err := ToAbsolute(Point{X: 640, Y: 480}, Size{Width: 1920, Height: 1080}, RoundTruncate)
	if err != nil {
		t.Fatal(err)
	}
	if ax != 21845 || ay != 29127 {
		t.Fatalf("expected (21845, 29127), got (%d, %d)", ax, ay)
	}

	// 1 * 65536 / 3 = 21845.33 truncates, 2 * 65536 / 3 = 43690.67 rounds up
	ax, ay, err = ToAbsolute(Point{X: 1, Y: 2}, Size{Width: 3, Height: 3}, RoundNearest)
	if err != nil {
		t.Fatal(err)
	}
	if ax != 21845 || ay != 43691 {
		t.Fatalf("expected (21845, 43691), got (%d, %d)", ax, ay)
	}
}

func TestToAbsoluteWithinOnePixel(t *testing.T) {
	screens := []Size{
		{Width: 1920, Height: 1080},
		{Width: 1366, Height: 768},
		{Width: 3840, Height: 2160},
		{Width: 7, Height: 3},
	}
	for _, screen := range screens {
		for _, r := range []Rounding{RoundTruncate, RoundNearest} {
			for x := 0; x < screen.Width; x += 1 + screen.Width/97 {
				y := x * screen.Height / screen.Width
				ax, ay, err := ToAbsolute(Point{X: x, Y: y}, screen, r)
				if err != nil {
					t.Fatal(err)
				}
				if ax < 0 || ax >= AbsoluteRange || ay < 0 || ay >= AbsoluteRange {
					t.Fatalf("%v %s: (%d, %d) out of range", screen, r, ax, ay)
				}
				back, err := FromAbsolute(ax, ay, screen)
				if err != nil {
					t.Fatal(err)
				}
				if abs(back.X-x) > 1 || abs(back.Y-y) > 1 {
					t.Fatalf("%v %s: (%d, %d) came back as %v", screen, r, x, y, back)
				}
			}
		}
	}
}

func TestToAbsoluteZeroScreen(t *testing.T) {
	for _, screen := range []Size{{}, {Width: 1920}, {Height: 1080}, {Width: -1, Height: 10}} {
		_, _, err := ToAbsolute(Point{X: 10, Y: 10}, screen, RoundTruncate)
		if !errors.Is(err, ErrInvalidScreen) {
			t.Fatalf("%v: expected invalid screen, got %v", screen, err)
		}
	}
}

func TestToAbsoluteNegative(t *testing.T) {
	_, _, err := ToAbsolute(Point{X: -1}, Size{Width: 10, Height: 10}, RoundTruncate)
	if !errors.Is(err, ErrNegativeCoordinate) {
		t.Fatalf("expected negative coordinate, got %v", err)
	}
}

func TestParseRounding(t *testing.T) {
	for in, want := range map[string]Rounding{"": RoundTruncate, "truncate": RoundTruncate, "Nearest": RoundNearest} {
		got, err := ParseRounding(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseRounding("ceil"); err == nil {
		t.Fatal("expected error for ceil")
	}
}

type recorder struct {
	events []Event
}

func (r *recorder) Open() error  { return nil }
func (r *recorder) Close() error { return nil }
func (r *recorder) Send(e Event) error {
	r.events = append(r.events, e)
	return nil
}

func TestScaled(t *testing.T) {
	r := &recorder{}
	if d := NewScaled(r, 1, 0); d != Driver(r) {
		t.Fatal("expected identity scale to return the driver itself")
	}

	d := NewScaled(r, 0.5, 2)
	if err := Move(d, 101, 10); err != nil {
		t.Fatal(err)
	}
	if err := Press(d, Right); err != nil {
		t.Fatal(err)
	}

	if len(r.events) != 2 {
		t.Fatalf("expected 2 events, got %v", r.events)
	}
	if got := r.events[0].Point; got != (Point{X: 51, Y: 20}) {
		t.Fatalf("expected (51, 20), got %v", got)
	}
	if r.events[1] != PressEvent(Right) {
		t.Fatalf("expected press(right), got %v", r.events[1])
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
