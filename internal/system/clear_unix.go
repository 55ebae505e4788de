//go:build !windows

package system

import "io"

// NativeClearer returns the platform's screen clear mechanism. Unix terminals
// take the same sequence clear(1) would emit.
func NativeClearer(w io.Writer) Clearer {
	return ClearFunc(func() error { return writeSeq(w, csiClear) })
}
