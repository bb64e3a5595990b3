// Package imop implements the Porter-Duff composition operations and the
// separable blend modes used for layering the strokes of a glyph preview.
// The image/draw core package implements only the source-over-destination
// and source operations; this package fills in the rest.
package imop

import "github.com/esimov/tegaki/utils"

// BlendMode mixes the colour of a layer with its backdrop before composition.
type BlendMode string

const (
	Normal   BlendMode = ""
	Darken   BlendMode = "darken"
	Lighten  BlendMode = "lighten"
	Multiply BlendMode = "multiply"
	Screen   BlendMode = "screen"
	Overlay  BlendMode = "overlay"
)

// Valid reports whether the blend mode is supported.
func (m BlendMode) Valid() bool {
	switch m {
	case Normal, Darken, Lighten, Multiply, Screen, Overlay:
		return true
	}
	return false
}

// mix returns the blended value of the source channel cs over the backdrop channel cb.
// Both are normalized to [0, 1].
func (m BlendMode) mix(cb, cs float64) float64 {
	switch m {
	case Darken:
		return utils.Min(cb, cs)
	case Lighten:
		return utils.Max(cb, cs)
	case Multiply:
		return cb * cs
	case Screen:
		return cb + cs - cb*cs
	case Overlay:
		if cb <= 0.5 {
			return 2 * cb * cs
		}
		return 1 - 2*(1-cb)*(1-cs)
	}
	return cs
}
