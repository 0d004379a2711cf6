package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const TestConfig = `
[http]
addr = "127.0.0.1:9090"
cors = true

[mouse]
type = "serialport"
src = "/dev/ttyACM0"
ext = 'baud:"115200" settle:"500ms"'
rounding = "nearest"
cursor_x_scale = 0.5
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mouse.toml")
	err := os.WriteFile(path, []byte(TestConfig), 0644)
	if err != nil {
		t.Fatal(err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if conf.HTTP.Addr != "127.0.0.1:9090" || !conf.HTTP.Cors {
		t.Fatalf("unexpected http config: %+v", conf.HTTP)
	}
	// untouched keys keep their defaults
	if conf.HTTP.WSPath != "/websockify" {
		t.Fatalf("expected default ws path, got %q", conf.HTTP.WSPath)
	}
	if conf.Trace.Width != 1920 || conf.Trace.Height != 1080 {
		t.Fatalf("expected default trace size, got %+v", conf.Trace)
	}

	if conf.Mouse.Type != MouseSerialPort || conf.Mouse.Src != "/dev/ttyACM0" {
		t.Fatalf("unexpected mouse config: %+v", conf.Mouse)
	}
	if conf.Mouse.Rounding != "nearest" || conf.Mouse.CursorXScale != 0.5 || conf.Mouse.CursorYScale != 0 {
		t.Fatalf("unexpected mouse config: %+v", conf.Mouse)
	}

	baud, err := conf.Mouse.Ext.GetInt("baud", 9600)
	if err != nil {
		t.Fatal(err)
	}
	if baud != 115200 {
		t.Fatalf("expected 115200, got %d", baud)
	}

	settle, err := conf.Mouse.Ext.GetDuration("settle", time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if settle != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %s", settle)
	}
}

func TestLoadMissing(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
	if conf.Mouse.Type != MouseNative {
		t.Fatalf("expected defaults alongside the error, got %+v", conf.Mouse)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mouse.toml")
	err := os.WriteFile(path, []byte("[mouse\ntype = "), 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestTagString(t *testing.T) {
	ext := TagString(`baud:"abc"`)

	if _, err := ext.GetInt("baud", 9600); err == nil {
		t.Fatal("expected error for a non numeric baud")
	}
	if v, err := ext.GetInt("missing", 42); err != nil || v != 42 {
		t.Fatalf("expected default 42, got %d %v", v, err)
	}
	if v, err := ext.GetDuration("missing", time.Second); err != nil || v != time.Second {
		t.Fatalf("expected default 1s, got %s %v", v, err)
	}
	if ext.Get("baud") != "abc" {
		t.Fatalf("expected abc, got %q", ext.Get("baud"))
	}
}
