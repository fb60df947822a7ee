package config

import (
	"fmt"
	"io"
	"os"
)

// TerminalIO holds the streams czconfig reads from and writes to. Tests
// substitute buffers.
type TerminalIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultTermIO is the process's standard streams.
var DefaultTermIO = TerminalIO{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}

// Output is the command-line output of czconfig. Quiet silences Printf and
// Debugf; Debugf additionally requires Verbose.
type Output struct {
	Verbose bool
	Quiet   bool
	Term    TerminalIO
}

// NewOutput returns an Output writing to termio, or to DefaultTermIO when
// termio is nil.
func NewOutput(termio *TerminalIO) Output {
	if termio == nil {
		termio = &DefaultTermIO
	}
	return Output{Term: *termio}
}

func (o Output) Printf(msg string, args ...interface{}) {
	if o.Quiet {
		return
	}
	fmt.Fprintf(o.Term.Stdout, msg+"\n", args...)
}

func (o Output) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(o.Term.Stderr, msg+"\n", args...)
}

func (o Output) Debugf(msg string, args ...interface{}) {
	if !o.Verbose {
		return
	}
	o.Printf(msg, args...)
}
