package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/allape/openmouse/config"
	"github.com/allape/openmouse/factory"
	"github.com/allape/openmouse/logger"
	"github.com/allape/openmouse/mouse"
	"go.bug.st/serial"
)

// https://datatracker.ietf.org/doc/html/rfc6143#section-7.5.5
// left button down at 120, 30
// 0x05 01 0078 001e
// 0b00000101 00000001 00000000 01111000 00000000 00011110

var log = logger.NewWriter("[km]", os.Stderr)

var verbose = logger.NewVerboseLogger("[km]")

func main() {
	conf, err := config.GetConfig()
	if err != nil {
		log.Fatalln("get config:", err)
	}

	m, err := factory.MouseFromConfig(conf)
	if err != nil {
		log.Fatalln("mouse from config:", err)
	}

	go func() {
		err := Run(os.Stdin, os.Stdout, m)
		if err != nil {
			log.Fatalln("fail to read from stdin:", err)
		}
		log.Println("EOF")
		os.Exit(0)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	log.Println("awaiting commands")
	sig := <-sigs
	log.Println("exiting with", sig)

	if m != nil {
		_ = m.Close()
	}
}

// Run executes one line of in per command and reports to out, until in is
// exhausted. Raw 0x/0b frames are written to drivers that accept bytes.
func Run(in io.Reader, out io.Writer, m mouse.Driver) error {
	reader := bufio.NewReader(in)
	for {
		text, err := reader.ReadString('\n')
		if text = strings.TrimSpace(text); text != "" {
			verbose.Println(">", text)
			if err := Exec(text, out, m); err != nil {
				_, _ = fmt.Fprintln(out, "error:", err)
			} else {
				_, _ = fmt.Fprintln(out, "ok")
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func Exec(text string, out io.Writer, m mouse.Driver) error {
	if text == "ports" {
		ports, err := serial.GetPortsList()
		if err != nil {
			return err
		}
		for _, port := range ports {
			_, _ = fmt.Fprintln(out, port)
		}
		return nil
	}

	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0b") {
		raw, err := ParseRaw(text)
		if err != nil {
			return err
		}
		w, ok := mouse.Unwrap(m).(io.Writer)
		if !ok {
			return fmt.Errorf("driver %T does not accept raw frames", m)
		}
		verbose.Println("> 0x", hex.EncodeToString(raw))
		_, err = w.Write(raw)
		return err
	}

	cmd, err := mouse.ParseCommand(text)
	if err != nil {
		return err
	}
	return cmd.Apply(m)
}

func ParseRaw(text string) ([]byte, error) {
	text = strings.ReplaceAll(text, " ", "")
	switch {
	case strings.HasPrefix(text, "0x"):
		raw, err := hex.DecodeString(text[2:])
		if err != nil {
			return nil, fmt.Errorf("invalid hex string: %w", err)
		}
		return raw, nil
	case strings.HasPrefix(text, "0b"):
		return BitsString2Bytes(text[2:])
	}
	return nil, errors.New("raw frames start with 0x or 0b")
}

func BitsString2Bytes(bitsStr string) ([]byte, error) {
	bits := []byte(bitsStr)
	if len(bits)%8 != 0 {
		return nil, errors.New("invalid binary string")
	}
	bs := make([]byte, len(bits)/8)
	for i := 0; i < len(bits); i++ {
		byteIndex := i / 8
		switch bits[i] {
		case '1':
			bs[byteIndex] = bs[byteIndex]<<1 | 1
		case '0':
			bs[byteIndex] = bs[byteIndex] << 1
		default:
			return nil, fmt.Errorf("invalid bit %q at %d", bits[i], i)
		}
	}
	return bs, nil
}
