package render

import (
	"io"
	"os"

	"github.com/rook-computer/gifterm/internal/system"
)

// Display is the surface rendered frames are written to.
type Display interface {
	Start() error
	Stop() error
	Clear() error
	Show(frame Rendered) error
}

// Stub implementations
type NoopDisplay struct{}

func (NoopDisplay) Start() error        { return nil }
func (NoopDisplay) Stop() error         { return nil }
func (NoopDisplay) Clear() error        { return nil }
func (NoopDisplay) Show(Rendered) error { return nil }

// TerminalDisplay writes frames verbatim to Out and clears with the
// platform's native mechanism. Cursor control is only issued when
// Interactive is set.
type TerminalDisplay struct {
	Out         io.Writer
	Clearer     system.Clearer
	Interactive bool
	Logger      interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewTerminalDisplay(f *os.File) *TerminalDisplay {
	return &TerminalDisplay{
		Out:         f,
		Clearer:     system.NativeClearer(f),
		Interactive: system.IsTerminal(f),
	}
}

func (d *TerminalDisplay) Start() error {
	if !d.Interactive {
		return nil
	}
	return system.HideCursorWithLog(d.Out, d.Logger)
}

func (d *TerminalDisplay) Stop() error {
	if !d.Interactive {
		return nil
	}
	return system.ShowCursorWithLog(d.Out, d.Logger)
}

func (d *TerminalDisplay) Clear() error {
	if d.Clearer == nil {
		return nil
	}
	return d.Clearer.Clear()
}

func (d *TerminalDisplay) Show(frame Rendered) error {
	_, err := io.WriteString(d.Out, string(frame))
	return err
}
