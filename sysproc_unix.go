//go:build unix

package main

import "syscall"

// detachedSysProcAttr puts the child in its own session so closing this
// ruler's terminal does not take the duplicate with it.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
