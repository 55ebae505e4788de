package system

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Clearer wipes the display surface.
type Clearer interface {
	Clear() error
}

// ClearFunc adapts a function to Clearer.
type ClearFunc func() error

func (f ClearFunc) Clear() error { return f() }

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, cmd string, args ...string) (stdout, stderr string, err error)
}

// ConsoleRunner executes commands with stdout wired to Stdout (so console
// control programs act on the real console). When Stdout is nil the output
// is captured and returned instead.
type ConsoleRunner struct {
	Stdout io.Writer
}

func (r ConsoleRunner) Run(ctx context.Context, cmd string, args ...string) (string, string, error) {
	c := exec.CommandContext(ctx, cmd, args...)
	var outBuf, errBuf bytes.Buffer
	if r.Stdout != nil {
		c.Stdout = r.Stdout
	} else {
		c.Stdout = &outBuf
	}
	c.Stderr = &errBuf
	err := c.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return outBuf.String(), errBuf.String(), fmt.Errorf("exit %d: %w", exitErr.ExitCode(), err)
		}
		return outBuf.String(), errBuf.String(), err
	}
	return outBuf.String(), errBuf.String(), nil
}
