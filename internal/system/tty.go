package system

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	csiClear      = "\x1b[2J\x1b[H"
	csiCursorHide = "\x1b[?25l"
	csiCursorShow = "\x1b[?25h"
)

// IsTerminal reports whether f is attached to a terminal (including Cygwin/MSYS ptys).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// HideCursor writes the ANSI escape to hide the cursor.
func HideCursor(w io.Writer) error { return writeSeq(w, csiCursorHide) }

// ShowCursor writes the ANSI escape to show the cursor.
func ShowCursor(w io.Writer) error { return writeSeq(w, csiCursorShow) }

// Logging wrappers
type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

func HideCursorWithLog(w io.Writer, l logger) error {
	err := HideCursor(w)
	logResult(l, err, "cursor hidden", "hide cursor failed")
	return err
}

func ShowCursorWithLog(w io.Writer, l logger) error {
	err := ShowCursor(w)
	logResult(l, err, "cursor shown", "show cursor failed")
	return err
}

func logResult(l logger, err error, ok, failed string) {
	if l == nil {
		return
	}
	if err != nil {
		l.Errorf("tty", "%s: %v", failed, err)
		return
	}
	l.Infof("tty", "%s", ok)
}

func writeSeq(w io.Writer, s string) error {
	if w == nil {
		return fmt.Errorf("write tty: no writer")
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write tty: %w", err)
	}
	return nil
}
