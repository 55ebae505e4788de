//go:build !unix

package system

import "errors"

func controllingTTYSize() (int, int, error) {
	return 0, 0, errors.New("no controlling tty probe on this platform")
}
