//go:build !windows

package process

import "syscall"

// KillTree sends SIGKILL to the process group led by pid.
// Errors are ignored: the group is usually gone already after a clean close.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
