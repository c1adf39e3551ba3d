// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows

package display

// Querying the display on these platforms needs a windowing
// connection the library must not own; callers configure the size
// explicitly instead.
func query() (float32, float32, bool) {
	return 0, 0, false
}
