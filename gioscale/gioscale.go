// SPDX-License-Identifier: Unlicense OR MIT

/*

Package gioscale applies proportional design scaling to Gio layout
values.

The helpers treat their arguments as dp authored at the reference
design size of the given Metric and return dp proportional to the
current display. Conversion from dp to pixels stays with Gio.

*/
package gioscale

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"golang.org/x/image/math/fixed"

	"scaleui.org/scale"
)

// Inset returns an inset with every edge scaled along its axis: top
// and bottom track the display height, left and right the width.
func Inset(m scale.Metric, top, right, bottom, left float32) layout.Inset {
	return layout.Inset{
		Top:    unit.Dp(m.Height(top)),
		Right:  unit.Dp(m.Width(right)),
		Bottom: unit.Dp(m.Height(bottom)),
		Left:   unit.Dp(m.Width(left)),
	}
}

// UniformInset returns an inset with the same design value applied to
// all edges, each scaled along its axis.
func UniformInset(m scale.Metric, v float32) layout.Inset {
	return Inset(m, v, v, v, v)
}

// Spacer returns a spacer of the scaled design size.
func Spacer(m scale.Metric, w, h float32) layout.Spacer {
	return layout.Spacer{
		Width:  unit.Dp(m.Width(w)),
		Height: unit.Dp(m.Height(h)),
	}
}

// Size scales a design frame to the current display.
func Size(m scale.Metric, w, h float32) (unit.Dp, unit.Dp) {
	return unit.Dp(m.Width(w)), unit.Dp(m.Height(h))
}

// TextSize scales a design font size. Font sizes track the display
// height.
func TextSize(m scale.Metric, s float32) unit.Sp {
	return unit.Sp(m.Height(s))
}

// FontFixed returns the scaled font size in 26.6 fixed point, for
// call sites that feed a shaper directly.
func FontFixed(m scale.Metric, s float32) fixed.Int26_6 {
	return fixed.Int26_6(m.Height(s) * 64)
}
