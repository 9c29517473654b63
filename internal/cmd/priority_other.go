//go:build !(linux || darwin || freebsd)

package cmd

import "errors"

func setPriority(int) error {
	return errors.New("setting the scheduling priority is not supported on this platform")
}
