//go:build linux || darwin || freebsd

package cmd

import "golang.org/x/sys/unix"

func setPriority(nice int) error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, nice)
}
