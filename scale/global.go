// SPDX-License-Identifier: Unlicense OR MIT

package scale

import (
	"sync"

	"scaleui.org/internal/display"
)

// Default reference design size for full-display designs.
const (
	DefaultReferenceWidth  = 430
	DefaultReferenceHeight = 932
)

var global struct {
	mu     sync.Mutex
	once   sync.Once
	metric Metric
}

// Option alters the process-wide Metric during Init.
type Option func(*Metric)

// CurrentWidth sets the width of the display being rendered to.
func CurrentWidth(w float32) Option {
	return func(m *Metric) {
		m.CurrentWidth = w
	}
}

// CurrentHeight sets the height of the display being rendered to.
func CurrentHeight(h float32) Option {
	return func(m *Metric) {
		m.CurrentHeight = h
	}
}

// CurrentSize sets both dimensions of the display being rendered to.
func CurrentSize(w, h float32) Option {
	return func(m *Metric) {
		m.CurrentWidth = w
		m.CurrentHeight = h
	}
}

// ReferenceSize sets the reference design size. Without this option,
// Init resets the reference pair to DefaultReferenceWidth by
// DefaultReferenceHeight.
func ReferenceSize(w, h float32) Option {
	return func(m *Metric) {
		m.ReferenceWidth = w
		m.ReferenceHeight = h
	}
}

// Init configures the process-wide Metric. The current dimensions keep
// their previous values unless overridden with CurrentWidth,
// CurrentHeight or CurrentSize; the reference pair is always reset, to
// the ReferenceSize option if given and to the defaults otherwise.
//
// Init and the functions reading the process-wide Metric serialize on
// a single lock, so a reader never observes a half-applied update.
func Init(opts ...Option) {
	global.mu.Lock()
	defer global.mu.Unlock()
	m := defaultMetric()
	m.ReferenceWidth = DefaultReferenceWidth
	m.ReferenceHeight = DefaultReferenceHeight
	for _, opt := range opts {
		opt(&m)
	}
	global.metric = m
}

// InitPreset configures the process-wide Metric with the display size
// and a preset reference frame.
func InitPreset(currentWidth, currentHeight float32, p Preset) {
	w, h := p.Size()
	Init(CurrentSize(currentWidth, currentHeight), ReferenceSize(w, h))
}

// Current returns a snapshot of the process-wide Metric.
func Current() Metric {
	global.mu.Lock()
	defer global.mu.Unlock()
	return defaultMetric()
}

// defaultMetric returns the process-wide metric, resolving the display
// size on first use. Callers hold global.mu.
func defaultMetric() Metric {
	global.once.Do(func() {
		m := &global.metric
		if m.ReferenceWidth == 0 {
			m.ReferenceWidth = DefaultReferenceWidth
			m.ReferenceHeight = DefaultReferenceHeight
		}
		if m.CurrentWidth == 0 {
			if w, h, ok := display.Size(); ok {
				m.CurrentWidth = w
				m.CurrentHeight = h
			} else {
				m.CurrentWidth = m.ReferenceWidth
				m.CurrentHeight = m.ReferenceHeight
			}
		}
	})
	return global.metric
}

// For scales v along a using the process-wide Metric.
func For(a Axis, v float32) float32 {
	return Current().Scale(a, v)
}

// ForWidth scales v along the horizontal axis using the process-wide
// Metric.
func ForWidth(v float32) float32 {
	return For(Horizontal, v)
}

// ForHeight scales v along the vertical axis using the process-wide
// Metric.
func ForHeight(v float32) float32 {
	return For(Vertical, v)
}

// Scaled scales v along a using the process-wide Metric.
//
// Deprecated: Use For instead.
func Scaled(a Axis, v float32) float32 {
	return For(a, v)
}
