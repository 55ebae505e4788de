//go:build unix

package system

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// controllingTTYSize asks /dev/tty for its window size, which still works
// when stdout is redirected.
func controllingTTYSize() (int, int, error) {
	fd, err := unix.Open("/dev/tty", unix.O_RDONLY|unix.O_NOCTTY, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("open /dev/tty: %w", err)
	}
	defer unix.Close(fd)
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("TIOCGWINSZ on /dev/tty: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
