//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group of pid, which takes
// down the browser and its renderer children.
func KillProcessGroup(pid int) {
	// Best effort; the launcher's own Kill runs afterwards.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
