//go:build !unix

package main

import (
	"fmt"
	"os"
)

// redirectStderr swaps the os.Stderr handle. Runtime-level output such as
// panics still reaches the original descriptor on these platforms.
func redirectStderr(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open stderr log: %w", err)
	}
	os.Stderr = f
	return nil
}
