package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/allape/openmouse/mouse"
	"github.com/allape/openmouse/mouse/dummy"
	"github.com/allape/openmouse/mouse/serialport"
)

func TestBitsString2Bytes(t *testing.T) {
	for range 10_000 + rand.Intn(10_000) {
		arrLen := rand.Intn(100)
		if arrLen == 0 {
			arrLen = 1
		}

		var oldBytes []byte
		bitsStr := ""
		for range arrLen {
			randByte := byte(rand.Intn(256))
			bitsStr += fmt.Sprintf("%08b", randByte)
			oldBytes = append(oldBytes, randByte)
		}

		bs, err := BitsString2Bytes(bitsStr)
		if err != nil {
			t.Fatal(err, bitsStr)
		}
		if !slices.Equal(bs, oldBytes) {
			t.Fatalf("expected %v, got %v", oldBytes, bs)
		}
	}

	if _, err := BitsString2Bytes("0000000"); err == nil {
		t.Fatal("expected error for a partial byte")
	}
	if _, err := BitsString2Bytes("0000000x"); err == nil {
		t.Fatal("expected error for a non binary digit")
	}
}

func TestParseRaw(t *testing.T) {
	hexFrame, err := ParseRaw("0x05 01 0078 001e")
	if err != nil {
		t.Fatal(err)
	}
	binFrame, err := ParseRaw("0b00000101 00000001 00000000 01111000 00000000 00011110")
	if err != nil {
		t.Fatal(err)
	}
	want, err := serialport.PointerFrame(serialport.MaskLeft, mouse.Point{X: 120, Y: 30})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(hexFrame, want) || !bytes.Equal(binFrame, want) {
		t.Fatalf("expected % x, got % x and % x", want, hexFrame, binFrame)
	}
}

func TestRun(t *testing.T) {
	d := dummy.New(mouse.Size{Width: 800, Height: 600})

	in := strings.NewReader("click 1 2\n\npress right\nbogus\nrelease right")
	var out bytes.Buffer
	err := Run(in, &out, d)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 || lines[0] != "ok" || lines[1] != "ok" || !strings.HasPrefix(lines[2], "error:") || lines[3] != "ok" {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if len(d.Events()) != 5 {
		t.Fatalf("expected 5 events, got %v", d.Events())
	}
	if len(d.Held()) != 0 {
		t.Fatalf("expected nothing held, got %v", d.Held())
	}
}

func TestRawFrame(t *testing.T) {
	var written bytes.Buffer
	port := struct {
		io.Reader
		io.Writer
		io.Closer
	}{strings.NewReader(""), &written, io.NopCloser(nil)}

	sp := serialport.New("test", &serialport.Options{
		Settle: -1,
		Opener: func(string, int) (io.ReadWriteCloser, error) { return port, nil },
	})

	var out bytes.Buffer
	if err := Exec("0x0500000a000b", &out, sp); err != nil {
		t.Fatal(err)
	}
	want := append([]byte(serialport.MagicWord), 0x05, 0x00, 0x00, 0x0a, 0x00, 0x0b)
	if !bytes.Equal(written.Bytes(), want) {
		t.Fatalf("expected % x, got % x", want, written.Bytes())
	}

	d := dummy.New(mouse.Size{Width: 1, Height: 1})
	if err := Exec("0x05", &out, d); err == nil {
		t.Fatal("expected error for a driver without raw frames")
	}
}
