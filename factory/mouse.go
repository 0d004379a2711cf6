package factory

import (
	"fmt"

	"github.com/allape/gogger"
	"github.com/allape/openmouse/config"
	"github.com/allape/openmouse/mouse"
	"github.com/allape/openmouse/mouse/dummy"
	"github.com/allape/openmouse/mouse/native"
	"github.com/allape/openmouse/mouse/robotgo"
	"github.com/allape/openmouse/mouse/serialport"
)

var l = gogger.New("factory")

// MouseFromConfig builds and opens the configured driver. A nil driver with
// a nil error means mouse output is disabled.
func MouseFromConfig(conf config.Config) (md mouse.Driver, err error) {
	rounding, err := mouse.ParseRounding(conf.Mouse.Rounding)
	if err != nil {
		return nil, err
	}

	switch conf.Mouse.Type {
	case config.MouseNone, "":
		l.Warn().Println("mouse driver is none, no mouse output")
		return nil, nil
	case config.MouseNative:
		l.Info().Println("mouse driver is native, rounding:", rounding)
		md, err = native.New(&native.Options{Rounding: rounding})
		if err != nil {
			return nil, err
		}
	case config.MouseSerialPort:
		l.Info().Println("mouse driver is serial port:", conf.Mouse.Src)
		options, err := SerialPortOptions(conf.Mouse.Ext)
		if err != nil {
			return nil, err
		}
		sp := serialport.New(conf.Mouse.Src, options)
		err = sp.Open()
		if err != nil {
			// the port is reopened on the next write
			l.Error().Println("open mouse driver:", err)
		}
		md = sp
	case config.MouseRobotgo:
		l.Info().Println("mouse driver is robotgo")
		rd, err := robotgo.New()
		if err != nil {
			return nil, err
		}
		err = rd.Open()
		if err != nil {
			return nil, err
		}
		md = rd
	case config.MouseDummy:
		l.Info().Printf("mouse driver is dummy, screen %dx%d", conf.Trace.Width, conf.Trace.Height)
		md = dummy.New(mouse.Size{Width: conf.Trace.Width, Height: conf.Trace.Height})
	default:
		return nil, fmt.Errorf("unknown mouse driver: %s", conf.Mouse.Type)
	}

	return mouse.NewScaled(md, conf.Mouse.CursorXScale, conf.Mouse.CursorYScale), nil
}

func SerialPortOptions(ext config.TagString) (*serialport.Options, error) {
	baud, err := ext.GetInt("baud", serialport.DefaultBaud)
	if err != nil {
		return nil, fmt.Errorf("baud: %w", err)
	}
	settle, err := ext.GetDuration("settle", serialport.DefaultSettle)
	if err != nil {
		return nil, fmt.Errorf("settle: %w", err)
	}
	return &serialport.Options{Baud: baud, Settle: settle}, nil
}
