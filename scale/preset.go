// SPDX-License-Identifier: Unlicense OR MIT

package scale

// Preset names a fixed-size reference frame, used when the design
// targets an embedded container of a known size rather than a full
// display.
type Preset uint8

const (
	Small Preset = iota
	Medium
	Large
)

// Size returns the reference frame for the preset.
func (p Preset) Size() (w, h float32) {
	switch p {
	case Small:
		return 170, 170
	case Medium:
		return 364, 170
	case Large:
		return 364, 382
	default:
		panic("unknown preset")
	}
}

func (p Preset) String() string {
	switch p {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		panic("unreachable")
	}
}
