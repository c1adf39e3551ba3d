// SPDX-License-Identifier: Unlicense OR MIT

/*

Package ebitenscale applies proportional design scaling to Ebitengine
games.

Games draw in a logical coordinate space; when assets and positions are
authored against a fixed design size, GeoM and Frame adapt them to the
size the game actually runs at.

*/
package ebitenscale

import (
	"github.com/hajimehoshi/ebiten/v2"

	"scaleui.org/scale"
)

// Frame scales a design frame to the current display.
func Frame(m scale.Metric, w, h float64) (float64, float64) {
	return float64(m.Width(float32(w))), float64(m.Height(float32(h)))
}

// GeoM returns a transform scaling geometry authored at the reference
// size to the current display.
func GeoM(m scale.Metric) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(float64(m.Ratio(scale.Horizontal)), float64(m.Ratio(scale.Vertical)))
	return g
}

// CurrentFromMonitor is an Init option setting the current size from
// the primary monitor. Ebitengine resolves the monitor lazily, so the
// option is safe to use before RunGame.
func CurrentFromMonitor() scale.Option {
	return func(m *scale.Metric) {
		w, h := ebiten.Monitor().Size()
		if w == 0 || h == 0 {
			return
		}
		m.CurrentWidth = float32(w)
		m.CurrentHeight = float32(h)
	}
}
