package imop

import (
	"image"
	"image/color"

	"github.com/esimov/tegaki/utils"
)

// Op is a Porter-Duff composition operator.
type Op string

const (
	Copy    Op = "copy"
	SrcOver Op = "src_over"
	DstOver Op = "dst_over"
	SrcIn   Op = "src_in"
	DstIn   Op = "dst_in"
	SrcOut  Op = "src_out"
	DstOut  Op = "dst_out"
	SrcAtop Op = "src_atop"
	DstAtop Op = "dst_atop"
	Xor     Op = "xor"
)

// factors returns the Porter-Duff coefficients applied to the source and
// the backdrop for the given alpha values.
func (op Op) factors(as, ab float64) (fs, fb float64) {
	switch op {
	case Copy:
		return 1, 0
	case SrcOver:
		return 1, 1 - as
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	}
	return 1, 1 - as
}

// Composite draws a layer onto a backdrop with a composition operator and a blend mode.
type Composite struct {
	Op    Op
	Blend BlendMode
}

// Draw composes src onto dst in place, over the intersection of their bounds.
func (c Composite) Draw(dst, src *image.NRGBA) {
	r := dst.Bounds().Intersect(src.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetNRGBA(x, y, c.pixel(src.NRGBAAt(x, y), dst.NRGBAAt(x, y)))
		}
	}
}

// pixel applies the W3C compositing formula on a single pair of colours.
func (c Composite) pixel(s, b color.NRGBA) color.NRGBA {
	as, ab := float64(s.A)/255, float64(b.A)/255
	fs, fb := c.Op.factors(as, ab)

	ao := as*fs + ab*fb
	if ao == 0 {
		return color.NRGBA{}
	}

	channel := func(cs, cb uint8) uint8 {
		sn, bn := float64(cs)/255, float64(cb)/255
		// The blended colour only shows where the backdrop is opaque.
		sn = (1-ab)*sn + ab*c.Blend.mix(bn, sn)
		co := (as*fs*sn + ab*fb*bn) / ao
		return uint8(utils.Clamp(co, 0, 1)*255 + 0.5)
	}

	return color.NRGBA{
		R: channel(s.R, b.R),
		G: channel(s.G, b.G),
		B: channel(s.B, b.B),
		A: uint8(utils.Clamp(ao, 0, 1)*255 + 0.5),
	}
}
