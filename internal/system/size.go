package system

import (
	"os"

	"golang.org/x/term"
)

// Fallback grid used when no terminal size can be read.
const (
	FallbackColumns = 80
	FallbackRows    = 24
)

// SizeProbe reports the terminal's character grid.
type SizeProbe interface {
	Size() (columns, rows int)
}

// TerminalProbe reads the grid of the terminal behind File, then of the
// controlling terminal, then falls back to 80x24.
type TerminalProbe struct {
	File *os.File
}

func NewTerminalProbe() TerminalProbe { return TerminalProbe{File: os.Stdout} }

func (p TerminalProbe) Size() (int, int) {
	if p.File != nil {
		if cols, rows, err := term.GetSize(int(p.File.Fd())); err == nil && cols > 0 && rows > 0 {
			return cols, rows
		}
	}
	if cols, rows, err := controllingTTYSize(); err == nil && cols > 0 && rows > 0 {
		return cols, rows
	}
	return FallbackColumns, FallbackRows
}

// StaticProbe always reports the same grid.
type StaticProbe struct {
	Columns int
	Rows    int
}

func (p StaticProbe) Size() (int, int) { return p.Columns, p.Rows }
