package logger

import (
	"io"
	"log"
	"os"

	"github.com/allape/openmouse/envar"
)

var verbose = envar.Getenv(envar.OpenmouseVerbose, "") != ""

func init() {
	if verbose {
		log.Println("[logger] verbose mode enabled")
	}
}

func Verbose() bool {
	return verbose
}

func New(prefix string) *log.Logger {
	return NewWriter(prefix, os.Stdout)
}

// NewWriter is New with a custom destination, km keeps stdout for replies
// and logs to stderr.
func NewWriter(prefix string, w io.Writer) *log.Logger {
	return log.New(w, prefix+" ", log.LstdFlags)
}

func NewVerboseLogger(prefix string) *log.Logger {
	if verbose {
		return New(prefix)
	}
	return log.New(io.Discard, "", 0)
}
