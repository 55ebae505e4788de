//go:build unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// redirectStderr points the stderr descriptor at path so runtime panics land
// in the file. Stdout stays on the terminal; it carries the frames.
func redirectStderr(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open stderr log: %w", err)
	}
	defer f.Close()

	if err := unix.Dup2(int(f.Fd()), int(os.Stderr.Fd())); err != nil {
		return fmt.Errorf("dup2 onto stderr: %w", err)
	}
	return nil
}
