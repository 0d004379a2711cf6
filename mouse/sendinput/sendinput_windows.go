//go:build windows

// Package sendinput injects mouse events through the Win32 SendInput call.
package sendinput

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/allape/gogger"
	"github.com/allape/openmouse/mouse"
	"github.com/lxn/win"
)

var l = gogger.New("mouse.sendinput")

type Options struct {
	Rounding mouse.Rounding
}

type Driver struct {
	Options Options

	metrics func(index int32) int32
	send    func(in *win.MOUSE_INPUT) (uint32, error)
}

func (d *Driver) Open() error {
	size, err := d.ScreenSize()
	if err != nil {
		return err
	}
	l.Info().Printf("primary screen is %dx%d", size.Width, size.Height)
	return nil
}

func (d *Driver) Close() error {
	return nil
}

// ScreenSize queries the primary screen every time, the resolution may
// change between calls.
func (d *Driver) ScreenSize() (mouse.Size, error) {
	size := mouse.Size{
		Width:  int(d.metrics(win.SM_CXSCREEN)),
		Height: int(d.metrics(win.SM_CYSCREEN)),
	}
	if !size.Valid() {
		return size, fmt.Errorf("GetSystemMetrics: %w: %dx%d", mouse.ErrInvalidScreen, size.Width, size.Height)
	}
	return size, nil
}

func (d *Driver) Send(e mouse.Event) error {
	in, err := d.Input(e)
	if err != nil {
		return err
	}

	l.Verbose().Printf("%s: flags=%#04x dx=%d dy=%d", e, in.Mi.DwFlags, in.Mi.Dx, in.Mi.Dy)

	n, err := d.send(&in)
	if n == 1 {
		return nil
	}
	if err != nil {
		return fmt.Errorf("SendInput %s: %w", e, err)
	}
	return fmt.Errorf("SendInput %s: %w", e, mouse.ErrInputBlocked)
}

// Input builds the fully populated native structure for e.
func (d *Driver) Input(e mouse.Event) (win.MOUSE_INPUT, error) {
	if err := e.Validate(); err != nil {
		return win.MOUSE_INPUT{}, err
	}

	in := win.MOUSE_INPUT{Type: win.INPUT_MOUSE}

	switch e.Kind {
	case mouse.KindMove:
		size, err := d.ScreenSize()
		if err != nil {
			return in, err
		}
		dx, dy, err := mouse.ToAbsolute(e.Point, size, d.Options.Rounding)
		if err != nil {
			return in, err
		}
		in.Mi.Dx, in.Mi.Dy = dx, dy
		in.Mi.DwFlags = win.MOUSEEVENTF_ABSOLUTE | win.MOUSEEVENTF_MOVE
	case mouse.KindPress, mouse.KindRelease:
		flag, err := ButtonFlag(e.Kind, e.Button)
		if err != nil {
			return in, err
		}
		in.Mi.DwFlags = flag
	}

	return in, nil
}

func ButtonFlag(kind mouse.Kind, b mouse.Button) (uint32, error) {
	down := kind == mouse.KindPress
	switch b {
	case mouse.Left:
		if down {
			return win.MOUSEEVENTF_LEFTDOWN, nil
		}
		return win.MOUSEEVENTF_LEFTUP, nil
	case mouse.Right:
		if down {
			return win.MOUSEEVENTF_RIGHTDOWN, nil
		}
		return win.MOUSEEVENTF_RIGHTUP, nil
	case mouse.Middle:
		if down {
			return win.MOUSEEVENTF_MIDDLEDOWN, nil
		}
		return win.MOUSEEVENTF_MIDDLEUP, nil
	}
	return 0, fmt.Errorf("%w: %q", mouse.ErrInvalidButton, b)
}

func sendInput(in *win.MOUSE_INPUT) (uint32, error) {
	n := win.SendInput(1, unsafe.Pointer(in), int32(unsafe.Sizeof(*in)))
	if n == 1 {
		return n, nil
	}
	if errno := win.GetLastError(); errno != 0 {
		return n, syscall.Errno(errno)
	}
	return n, nil
}

func New(options *Options) (*Driver, error) {
	d := &Driver{
		metrics: win.GetSystemMetrics,
		send:    sendInput,
	}
	if options != nil {
		d.Options = *options
	}
	return d, nil
}
