//go:build windows

package main

import (
	"fmt"
	"syscall"
	"unsafe"
)

var (
	user32              = syscall.NewLazyDLL("user32.dll")
	getForegroundWindow = user32.NewProc("GetForegroundWindow")
	setForegroundWindow = user32.NewProc("SetForegroundWindow")
	getWindowTextW      = user32.NewProc("GetWindowTextW")
)

type win32Window struct {
	hwnd uintptr
}

// activeForeignWindow returns the currently focused top-level window, or nil
// when the desktop has no foreground window.
func activeForeignWindow() foreignWindow {
	h, _, _ := getForegroundWindow.Call()
	if h == 0 {
		return nil
	}
	return win32Window{hwnd: h}
}

func (w win32Window) Title() string {
	buf := make([]uint16, 256)
	getWindowTextW.Call(w.hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return syscall.UTF16ToString(buf)
}

func (w win32Window) Activate() error {
	r, _, _ := setForegroundWindow.Call(w.hwnd)
	if r == 0 {
		return fmt.Errorf("SetForegroundWindow refused for hwnd %#x", w.hwnd)
	}
	return nil
}
