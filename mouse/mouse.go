// Package mouse describes synthetic mouse input in platform-neutral terms.
//
// A Driver injects fully-specified events into some host: the local
// operating system, a USB HID bridge on a serial port, or an in-memory
// recorder. The package-level helpers build an event, validate it and
// hand it to the driver in a single call.
package mouse

import (
	"fmt"
	"io"
	"strings"
)

type Button string

const (
	Left   Button = "left"
	Right  Button = "right"
	Middle Button = "middle"
)

var Buttons = []Button{Left, Right, Middle}

func (b Button) Valid() bool {
	switch b {
	case Left, Right, Middle:
		return true
	}
	return false
}

// ParseButton accepts the canonical names plus the short forms browsers and
// humans tend to send.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "middle", "center", "m":
		return Middle, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidButton, s)
}

type Point struct {
	X int
	Y int
}

type Size struct {
	Width  int
	Height int
}

// Driver is the input injection capability of one backend.
type Driver interface {
	io.Closer
	Open() error
	Send(e Event) error
}

// ScreenSizer is implemented by drivers that can report the dimensions of
// the surface they inject into.
type ScreenSizer interface {
	ScreenSize() (Size, error)
}

func send(d Driver, e Event) error {
	if d == nil {
		return ErrNoDriver
	}
	if err := e.Validate(); err != nil {
		return err
	}
	return d.Send(e)
}

// Move moves the cursor to the absolute pixel position (x, y).
func Move(d Driver, x, y int) error {
	return send(d, MoveEvent(x, y))
}

// Press registers a button-down at the current cursor position.
func Press(d Driver, b Button) error {
	return send(d, PressEvent(b))
}

// Release registers a button-up at the current cursor position.
// Pairing it with an earlier Press is up to the caller.
func Release(d Driver, b Button) error {
	return send(d, ReleaseEvent(b))
}

// MoveClick moves to (x, y) then presses and releases the left button,
// stopping at the first failed step.
func MoveClick(d Driver, x, y int) error {
	if err := Move(d, x, y); err != nil {
		return fmt.Errorf("move: %w", err)
	}
	if err := Press(d, Left); err != nil {
		return fmt.Errorf("press: %w", err)
	}
	if err := Release(d, Left); err != nil {
		return fmt.Errorf("release: %w", err)
	}
	return nil
}
