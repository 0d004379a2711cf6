package mouse

import (
	"fmt"
	"strconv"
	"strings"
)

type Op string

const (
	OpMove    Op = "move"
	OpPress   Op = "press"
	OpRelease Op = "release"
	OpClick   Op = "click"
	OpTap     Op = "tap"
)

// Command is a textual or JSON request for one of the mouse operations.
//
//	move X Y
//	press [BUTTON]
//	release [BUTTON]
//	click X Y      move, then press and release left
//	tap [BUTTON]   press and release at the current position
type Command struct {
	Op     Op     `json:"type"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Button Button `json:"button,omitempty"`
}

// Request is the JSON form of a Command. Coordinates are pointers so that a
// move or click without them is rejected instead of landing on (0, 0).
type Request struct {
	Op     Op     `json:"type"`
	X      *int   `json:"x"`
	Y      *int   `json:"y"`
	Button string `json:"button"`
}

func (r Request) Command() (Command, error) {
	c := Command{Op: Op(strings.ToLower(strings.TrimSpace(string(r.Op))))}

	switch c.Op {
	case OpMove, OpClick:
		if r.X == nil || r.Y == nil {
			return Command{}, fmt.Errorf("%w: %s takes x and y", ErrInvalidCommand, c.Op)
		}
		c.X, c.Y = *r.X, *r.Y
	case OpPress, OpRelease, OpTap:
		c.Button = Left
		if r.Button != "" {
			b, err := ParseButton(r.Button)
			if err != nil {
				return Command{}, err
			}
			c.Button = b
		}
	default:
		return Command{}, fmt.Errorf("%w: unknown op %q", ErrInvalidCommand, r.Op)
	}

	return c, nil
}

func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty", ErrInvalidCommand)
	}

	c := Command{Op: Op(strings.ToLower(fields[0]))}
	args := fields[1:]

	switch c.Op {
	case OpMove, OpClick:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: %s takes X Y", ErrInvalidCommand, c.Op)
		}
		var err error
		if c.X, err = strconv.Atoi(args[0]); err != nil {
			return Command{}, fmt.Errorf("%w: x: %v", ErrInvalidCommand, err)
		}
		if c.Y, err = strconv.Atoi(args[1]); err != nil {
			return Command{}, fmt.Errorf("%w: y: %v", ErrInvalidCommand, err)
		}
	case OpPress, OpRelease, OpTap:
		if len(args) > 1 {
			return Command{}, fmt.Errorf("%w: %s takes at most one button", ErrInvalidCommand, c.Op)
		}
		c.Button = Left
		if len(args) == 1 {
			b, err := ParseButton(args[0])
			if err != nil {
				return Command{}, err
			}
			c.Button = b
		}
	default:
		return Command{}, fmt.Errorf("%w: unknown op %q", ErrInvalidCommand, fields[0])
	}

	return c, nil
}

func (c Command) Apply(d Driver) error {
	button := c.Button
	if button == "" {
		button = Left
	}

	switch c.Op {
	case OpMove:
		return Move(d, c.X, c.Y)
	case OpPress:
		return Press(d, button)
	case OpRelease:
		return Release(d, button)
	case OpClick:
		return MoveClick(d, c.X, c.Y)
	case OpTap:
		if err := Press(d, button); err != nil {
			return err
		}
		return Release(d, button)
	}
	return fmt.Errorf("%w: unknown op %q", ErrInvalidCommand, c.Op)
}

func (c Command) String() string {
	switch c.Op {
	case OpMove, OpClick:
		return fmt.Sprintf("%s %d %d", c.Op, c.X, c.Y)
	}
	if c.Button == "" {
		return string(c.Op)
	}
	return fmt.Sprintf("%s %s", c.Op, c.Button)
}
