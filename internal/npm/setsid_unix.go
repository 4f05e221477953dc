//go:build !windows

package npm

import "syscall"

// sessionAttr returns SysProcAttr that places the subprocess in its own
// session, so a detached global install outlives the scaffolder.
func sessionAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
