//go:build windows

package system

import (
	"context"
	"io"
)

// NativeClearer returns the platform's screen clear mechanism: cmd's cls.
func NativeClearer(w io.Writer) Clearer {
	runner := ConsoleRunner{Stdout: w}
	return ClearFunc(func() error {
		_, _, err := runner.Run(context.Background(), "cmd", "/c", "cls")
		return err
	})
}
