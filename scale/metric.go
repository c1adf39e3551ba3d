// SPDX-License-Identifier: Unlicense OR MIT

/*

Package scale adapts fixed design measurements to the display they are
rendered on.

A design is authored against a reference size, such as 430x932. When the
interface runs on a display of a different size, every fixed measurement
(spacing, font size, padding, frame dimensions) is multiplied by the
ratio of the current dimension to the reference dimension along a chosen
axis.

A Metric carries both size pairs explicitly and is the preferred way to
scale: it is a plain value, safe to copy and share. The process-wide
default configured with Init exists for call sites that cannot thread a
Metric through.

Values are computed in float32 with no rounding or validation; a
reference dimension of zero propagates as an infinity or NaN in the
usual floating point manner.

*/
package scale

// Axis selects which dimension pair of a Metric a scaling
// operation uses.
type Axis uint8

const (
	// Horizontal scales along the width pair.
	Horizontal Axis = iota
	// Vertical scales along the height pair.
	Vertical
)

// Metric is a pair of display sizes: the extent of the display being
// rendered to and the reference extent the design was authored
// against.
type Metric struct {
	CurrentWidth, CurrentHeight     float32
	ReferenceWidth, ReferenceHeight float32
}

// Scale returns v multiplied by the ratio of the current to the
// reference dimension along a.
func (m Metric) Scale(a Axis, v float32) float32 {
	return v * m.Ratio(a)
}

// Width returns v scaled along the horizontal axis.
func (m Metric) Width(v float32) float32 {
	return m.Scale(Horizontal, v)
}

// Height returns v scaled along the vertical axis.
func (m Metric) Height(v float32) float32 {
	return m.Scale(Vertical, v)
}

// Ratio returns the scaling factor along a.
func (m Metric) Ratio(a Axis) float32 {
	switch a {
	case Horizontal:
		return m.CurrentWidth / m.ReferenceWidth
	case Vertical:
		return m.CurrentHeight / m.ReferenceHeight
	default:
		panic("unknown axis")
	}
}

// ScaleWidth scales v by current/reference without a Metric.
func ScaleWidth(v, current, reference float32) float32 {
	return v * current / reference
}

// ScaleHeight scales v by current/reference without a Metric.
func ScaleHeight(v, current, reference float32) float32 {
	return v * current / reference
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
