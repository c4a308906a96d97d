package main

import (
	"fmt"
	"os"
	"os/exec"

	"goruler/ruler"
)

// duplicateCommand re-runs exe with info's placement followed by extra
// flags forwarded from this process.
func duplicateCommand(exe string, info ruler.Info, extra []string) *exec.Cmd {
	args := append(info.Args(), extra...)
	cmd := exec.Command(exe, args...)
	cmd.SysProcAttr = detachedSysProcAttr()
	return cmd
}

// duplicate starts an independent copy of the ruler. The child is released
// so it outlives this window.
func duplicate(info ruler.Info, extra []string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("duplicate: locate executable: %w", err)
	}
	cmd := duplicateCommand(exe, info, extra)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("duplicate: start %v: %w", exe, err)
	}
	logDebug("duplicate: started pid %d with %q", cmd.Process.Pid, cmd.Args[1:])
	return cmd.Process.Release()
}
