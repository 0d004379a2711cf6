package dummy

import (
	"slices"
	"sync"

	"github.com/allape/gogger"
	"github.com/allape/openmouse/mouse"
)

var l = gogger.New("mouse.dummy")

// Driver records every event it receives and tracks the cursor and button
// state the events would leave on a real host.
type Driver struct {
	locker sync.Locker

	screen mouse.Size
	closed bool

	events   []mouse.Event
	position mouse.Point
	held     map[mouse.Button]bool
}

func (d *Driver) Open() error {
	d.locker.Lock()
	defer d.locker.Unlock()
	d.closed = false
	return nil
}

func (d *Driver) Close() error {
	d.locker.Lock()
	defer d.locker.Unlock()
	d.closed = true
	return nil
}

func (d *Driver) Send(e mouse.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	d.locker.Lock()
	defer d.locker.Unlock()

	if d.closed {
		return mouse.ErrClosed
	}

	l.Verbose().Println("event:", e)

	d.events = append(d.events, e)
	switch e.Kind {
	case mouse.KindMove:
		d.position = e.Point
	case mouse.KindPress:
		d.held[e.Button] = true
	case mouse.KindRelease:
		delete(d.held, e.Button)
	}

	return nil
}

func (d *Driver) ScreenSize() (mouse.Size, error) {
	if !d.screen.Valid() {
		return d.screen, mouse.ErrInvalidScreen
	}
	return d.screen, nil
}

func (d *Driver) Events() []mouse.Event {
	d.locker.Lock()
	defer d.locker.Unlock()
	return slices.Clone(d.events)
}

func (d *Driver) Position() mouse.Point {
	d.locker.Lock()
	defer d.locker.Unlock()
	return d.position
}

// Held returns the buttons that were pressed and not released yet.
func (d *Driver) Held() []mouse.Button {
	d.locker.Lock()
	defer d.locker.Unlock()

	var held []mouse.Button
	for _, b := range mouse.Buttons {
		if d.held[b] {
			held = append(held, b)
		}
	}
	return held
}

func (d *Driver) Reset() {
	d.locker.Lock()
	defer d.locker.Unlock()
	d.events = nil
	d.position = mouse.Point{}
	clear(d.held)
}

func New(screen mouse.Size) *Driver {
	return &Driver{
		locker: &sync.Mutex{},
		screen: screen,
		held:   make(map[mouse.Button]bool),
	}
}
