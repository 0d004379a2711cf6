// Package serialport drives a microcontroller that enumerates as a USB mouse
// on the target machine and replays pointer frames received over a serial line.
package serialport

import (
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/allape/gogger"
	"github.com/allape/openmouse/mouse"
	"go.bug.st/serial"
)

var l = gogger.New("mouse.serialport")

const (
	MagicWord     = "open-kvm"
	DefaultBaud   = 9600
	DefaultSettle = 3 * time.Second
)

type Opener func(name string, baud int) (io.ReadWriteCloser, error)

func OpenSerial(name string, baud int) (io.ReadWriteCloser, error) {
	return serial.Open(name, &serial.Mode{BaudRate: baud})
}

type Options struct {
	Baud int
	// Settle is how long to wait after the handshake, most boards reset
	// when the port opens. Negative skips the wait.
	Settle time.Duration
	Opener Opener
}

type Driver struct {
	openLocker  sync.Locker
	writeLocker sync.Locker
	stateLocker sync.Locker

	Port io.ReadWriteCloser

	Name    string
	Options Options

	mask     ButtonMask
	position mouse.Point
}

func (d *Driver) Open() error {
	d.openLocker.Lock()
	defer d.openLocker.Unlock()

	if d.Port != nil {
		return nil
	}

	port, err := d.Options.Opener(d.Name, d.Options.Baud)
	if err != nil {
		return err
	}
	d.Port = port

	go d.readLoop(port)

	_, err = port.Write([]byte(MagicWord))
	if err != nil {
		d.Port = nil
		_ = port.Close()
		return err
	}

	if d.Options.Settle > 0 {
		time.Sleep(d.Options.Settle)
	}

	l.Info().Println("opened", d.Name, "at", d.Options.Baud)

	return nil
}

func (d *Driver) readLoop(port io.Reader) {
	buf := make([]byte, 1024)
	unfinishedLine := ""
	for {
		n, err := port.Read(buf)
		if n > 0 {
			lines := strings.Split(unfinishedLine+string(buf[:n]), "\n")
			for i := 0; i < len(lines)-1; i++ {
				l.Verbose().Println(">", lines[i])
			}
			unfinishedLine = lines[len(lines)-1]
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) {
				l.Error().Println("read error:", err)
			}
			return
		}
		if n == 0 {
			l.Warn().Println("EOF")
			return
		}
	}
}

func (d *Driver) Close() error {
	d.openLocker.Lock()
	defer d.openLocker.Unlock()

	if d.Port == nil {
		return nil
	}

	err := d.Port.Close()
	d.Port = nil
	return err
}

func (d *Driver) port() io.ReadWriteCloser {
	d.openLocker.Lock()
	defer d.openLocker.Unlock()
	return d.Port
}

// Write sends raw bytes to the bridge, opening the port on demand. The port
// is dropped after a failed write so the next call reconnects.
func (d *Driver) Write(data []byte) (int, error) {
	err := d.Open()
	if err != nil {
		return 0, err
	}

	d.writeLocker.Lock()
	defer d.writeLocker.Unlock()

	port := d.port()
	if port == nil {
		return 0, mouse.ErrClosed
	}

	n, err := port.Write(data)
	if err != nil {
		_ = d.Close()
		return n, err
	}

	return n, nil
}

func (d *Driver) Send(e mouse.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	d.stateLocker.Lock()
	defer d.stateLocker.Unlock()

	mask, position := d.mask, d.position
	switch e.Kind {
	case mouse.KindMove:
		position = e.Point
	case mouse.KindPress, mouse.KindRelease:
		bit, err := MaskOf(e.Button)
		if err != nil {
			return err
		}
		if e.Kind == mouse.KindPress {
			mask |= bit
		} else {
			mask &^= bit
		}
	}

	frame, err := PointerFrame(mask, position)
	if err != nil {
		return err
	}

	l.Verbose().Printf("%s: % x", e, frame)

	if _, err := d.Write(frame); err != nil {
		return err
	}

	d.mask, d.position = mask, position
	return nil
}

func New(name string, options *Options) *Driver {
	d := &Driver{
		openLocker:  &sync.Mutex{},
		writeLocker: &sync.Mutex{},
		stateLocker: &sync.Mutex{},
		Name:        name,
		Options: Options{
			Baud:   DefaultBaud,
			Settle: DefaultSettle,
			Opener: OpenSerial,
		},
	}
	if options != nil {
		if options.Baud > 0 {
			d.Options.Baud = options.Baud
		}
		if options.Settle != 0 {
			d.Options.Settle = options.Settle
		}
		if options.Opener != nil {
			d.Options.Opener = options.Opener
		}
	}
	return d
}
