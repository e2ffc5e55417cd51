// internal/logging/logging.go
//
// One sink for everything the tool says. Lines go to the console and,
// when a log file is attached, to that file as well. The sink is handed
// to every component explicitly; nothing logs through package globals.

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Sink fans output out to stdout/stderr and an optional append-mode
// log file. The file is attached with OpenFile and released with Close.
type Sink struct {
	stdout io.Writer
	stderr io.Writer
	file   *os.File
}

// New returns a console-only sink bound to the process stdout/stderr.
func New() *Sink {
	return &Sink{stdout: os.Stdout, stderr: os.Stderr}
}

// NewWithWriters returns a sink bound to arbitrary writers. Used by tests.
func NewWithWriters(stdout, stderr io.Writer) *Sink {
	return &Sink{stdout: stdout, stderr: stderr}
}

// OpenFile attaches path in append mode and writes a session header so
// consecutive runs are easy to tell apart in the file.
func (s *Sink) OpenFile(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file %q: %w", path, err)
	}
	s.file = f
	fmt.Fprintf(f, "\n\nnew log %s\n\n", time.Now().Format(time.ANSIC))
	return nil
}

// Close releases the attached log file, if any. Safe to call when no
// file was ever attached.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Printf writes one line to stdout and the log file.
func (s *Sink) Printf(format string, args ...any) {
	s.emit(s.stdout, fmt.Sprintf(format, args...))
}

// Errorf writes one line to stderr and the log file.
func (s *Sink) Errorf(format string, args ...any) {
	s.emit(s.stderr, fmt.Sprintf(format, args...))
}

// Tagged writes text with every line prefixed by "[tag]: ". Used for
// relaying captured subprocess output so its origin stays obvious.
func (s *Sink) Tagged(tag, text string) {
	prefix := "[" + tag + "]: "
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	s.emit(s.stdout, prefix+strings.Join(lines, "\n"+prefix))
}

func (s *Sink) emit(console io.Writer, line string) {
	fmt.Fprintln(console, line)
	if s.file != nil {
		fmt.Fprintln(s.file, line)
	}
}
