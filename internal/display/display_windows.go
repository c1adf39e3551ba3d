// SPDX-License-Identifier: Unlicense OR MIT

package display

import (
	syscall "golang.org/x/sys/windows"
)

var (
	user32              = syscall.NewLazySystemDLL("user32.dll")
	_GetSystemMetrics   = user32.NewProc("GetSystemMetrics")
	_SetProcessDPIAware = user32.NewProc("SetProcessDPIAware")
)

const (
	_SM_CXSCREEN = 0
	_SM_CYSCREEN = 1
)

func query() (float32, float32, bool) {
	// Without DPI awareness the metrics are virtualized to 96 dpi.
	_SetProcessDPIAware.Call()
	w, _, _ := _GetSystemMetrics.Call(uintptr(_SM_CXSCREEN))
	h, _, _ := _GetSystemMetrics.Call(uintptr(_SM_CYSCREEN))
	if w == 0 || h == 0 {
		return 0, 0, false
	}
	return float32(w), float32(h), true
}
