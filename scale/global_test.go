// SPDX-License-Identifier: Unlicense OR MIT

package scale_test

import (
	"math/rand"
	"sync"
	"testing"

	"scaleui.org/scale"
)

func TestInit_CurrentOverride(t *testing.T) {
	scale.Init(scale.CurrentSize(430, 932), scale.ReferenceSize(100, 200))

	// Overriding only the width keeps the previous height and resets
	// the reference pair to the defaults.
	scale.Init(scale.CurrentWidth(500))

	m := scale.Current()
	want := scale.Metric{
		CurrentWidth:    500,
		CurrentHeight:   932,
		ReferenceWidth:  scale.DefaultReferenceWidth,
		ReferenceHeight: scale.DefaultReferenceHeight,
	}
	if m != want {
		t.Errorf("Current() = %+v, want %+v", m, want)
	}
}

func TestInitPreset(t *testing.T) {
	scale.InitPreset(100, 100, scale.Small)
	got := scale.Current()

	scale.Init(scale.CurrentSize(100, 100), scale.ReferenceSize(170, 170))
	want := scale.Current()

	if got != want {
		t.Errorf("InitPreset(100, 100, Small) = %+v, want %+v", got, want)
	}
}

func TestFor(t *testing.T) {
	scale.Init(scale.CurrentSize(860, 1864))

	if got := scale.ForHeight(24); got != 48 {
		t.Errorf("ForHeight(24) = %v, want 48", got)
	}
	if got := scale.ForWidth(16); got != 32 {
		t.Errorf("ForWidth(16) = %v, want 32", got)
	}
	if got, want := scale.For(scale.Vertical, 24), scale.Current().Height(24); got != want {
		t.Errorf("For(Vertical, 24) = %v, want %v", got, want)
	}
}

func TestScaledAlias(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		scale.Init(
			scale.CurrentSize(rnd.Float32()*2000+1, rnd.Float32()*2000+1),
			scale.ReferenceSize(rnd.Float32()*2000+1, rnd.Float32()*2000+1),
		)
		a := scale.Axis(rnd.Intn(2))
		v := rnd.Float32()*2000 - 1000
		if got, want := scale.Scaled(a, v), scale.For(a, v); got != want {
			t.Errorf("Scaled(%v, %v) = %v, For = %v", a, v, got, want)
		}
	}
}

func TestInitConcurrent(t *testing.T) {
	a := scale.Metric{
		CurrentWidth: 430, CurrentHeight: 932,
		ReferenceWidth: scale.DefaultReferenceWidth, ReferenceHeight: scale.DefaultReferenceHeight,
	}
	b := scale.Metric{
		CurrentWidth: 860, CurrentHeight: 1864,
		ReferenceWidth: scale.DefaultReferenceWidth, ReferenceHeight: scale.DefaultReferenceHeight,
	}
	scale.Init(scale.CurrentSize(a.CurrentWidth, a.CurrentHeight))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(m scale.Metric) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				scale.Init(scale.CurrentSize(m.CurrentWidth, m.CurrentHeight))
			}
		}([]scale.Metric{a, b}[i%2])
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if m := scale.Current(); m != a && m != b {
					t.Errorf("observed torn metric %+v", m)
					return
				}
			}
		}()
	}
	wg.Wait()
}
