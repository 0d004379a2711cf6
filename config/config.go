package config

import (
	"os"

	"github.com/allape/openmouse/logger"
	"github.com/pelletier/go-toml/v2"
)

var log = logger.New("[config]")

const DefaultConfigPath = "mouse.toml"

type MouseDriverType string

const (
	MouseNone       MouseDriverType = "none"
	MouseNative     MouseDriverType = "native"
	MouseSerialPort MouseDriverType = "serialport"
	MouseRobotgo    MouseDriverType = "robotgo"
	MouseDummy      MouseDriverType = "dummy"
)

type HTTP struct {
	Addr   string `toml:"addr"`
	WSPath string `toml:"ws_path"`
	Cors   bool   `toml:"cors"`
}

type Mouse struct {
	Type MouseDriverType `toml:"type"`
	// Src is the serial device of the serialport driver, e.g. /dev/ttyACM0 or COM3
	Src string `toml:"src"`
	// Ext extra driver options, e.g. baud:"115200" settle:"3s"
	Ext TagString `toml:"ext"`

	// Rounding of the absolute coordinate conversion: truncate or nearest
	Rounding string `toml:"rounding"`

	// CursorXScale
	// A factor to adjust the cursor position when the client surface is scaled.
	// Example:
	//  If the client moves to x=100 and CursorXScale is 0.5, the cursor moves to x=50.
	CursorXScale float64 `toml:"cursor_x_scale"`
	// CursorYScale: see CursorXScale
	CursorYScale float64 `toml:"cursor_y_scale"`
}

// Trace sizes the screen of the dummy driver and the image rendered from
// the events it recorded.
type Trace struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Config struct {
	HTTP  HTTP  `toml:"http"`
	Mouse Mouse `toml:"mouse"`
	Trace Trace `toml:"trace"`
}

func Default() Config {
	return Config{
		HTTP: HTTP{
			Addr:   ":8080",
			WSPath: "/websockify",
		},
		Mouse: Mouse{
			Type:     MouseNative,
			Rounding: "truncate",
		},
		Trace: Trace{
			Width:  1920,
			Height: 1080,
		},
	}
}

// Load decodes the file at path on top of Default.
func Load(path string) (Config, error) {
	config := Default()

	_, err := os.Stat(path)
	if err != nil {
		return config, err
	}

	configData, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	err = toml.Unmarshal(configData, &config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func GetConfig() (Config, error) {
	configFile := DefaultConfigPath
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	log.Println("reading config file:", configFile)

	config, err := Load(configFile)
	if err != nil {
		return config, err
	}

	log.Println("use config:", config)

	return config, nil
}
