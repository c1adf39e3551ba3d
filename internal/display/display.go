// SPDX-License-Identifier: Unlicense OR MIT

// Package display queries the extent of the primary display, used as
// the default current size when no explicit size is configured.
package display

import "sync"

var cached struct {
	once sync.Once
	w, h float32
	ok   bool
}

// Size returns the extent of the primary display in the platform's
// logical coordinates. The query runs once per process; later calls
// return the cached result. ok is false on platforms without a query
// or when the query fails.
func Size() (w, h float32, ok bool) {
	cached.once.Do(func() {
		cached.w, cached.h, cached.ok = query()
	})
	return cached.w, cached.h, cached.ok
}
