package tegaki

import "github.com/golang/geo/r1"

// canvasSize is the side length of the KAGE coordinate box.
const canvasSize = 200.0

// placement positions the strokes of a referenced component inside the
// rectangle topLft-btmRgt of its parent. src and pivot optionally describe a
// non-uniform stretch applied before the rectangle mapping.
type placement struct {
	src    Point
	topLft Point
	btmRgt Point
	pivot  Point
}

func (pl placement) apply(strokes []Stroke) []Stroke {
	stretch := pl.stretcher(strokes)

	out := make([]Stroke, len(strokes))
	for i, s := range strokes {
		ps := make(Stroke, len(s))
		for j, p := range s {
			if stretch != nil {
				p = stretch(p)
			}
			ps[j] = pl.toRect(p)
		}
		out[i] = ps
	}
	return out
}

// toRect maps a point of the full canvas into the destination rectangle.
func (pl placement) toRect(p Point) Point {
	return Point{
		X: p.X*(pl.btmRgt.X-pl.topLft.X)/canvasSize + pl.topLft.X,
		Y: p.Y*(pl.btmRgt.Y-pl.topLft.Y)/canvasSize + pl.topLft.Y,
	}
}

// stretcher returns the partial stretch transform for the strokes, or nil
// when the reference does not ask for one.
//
// A source x of at most 100 selects the short encoding: the x coordinate is
// taken as is and the pivot is the origin. Otherwise the source x carries a
// +200 offset and the pivot is read from the reference.
func (pl placement) stretcher(strokes []Stroke) func(Point) Point {
	dst, pivot := pl.src, pl.pivot
	if dst.X <= 100 {
		pivot = Point{}
	} else {
		dst.X -= 200
	}
	if dst == pivot {
		return nil
	}

	bounds := Bounds(strokes)
	return func(p Point) Point {
		return Point{
			X: stretch(dst.X, pivot.X, p.X, bounds.X.Lo, bounds.X.Hi),
			Y: stretch(dst.Y, pivot.Y, p.Y, bounds.Y.Lo, bounds.Y.Hi),
		}
	}
}

// stretch remaps p along one axis with two linear pieces joined at sp+100,
// which moves to dp+100 while lo and hi stay in place.
func stretch(dp, sp, p, lo, hi float64) float64 {
	from := r1.Interval{Lo: lo, Hi: sp + 100}
	to := r1.Interval{Lo: lo, Hi: dp + 100}
	if p >= sp+100 {
		from = r1.Interval{Lo: sp + 100, Hi: hi}
		to = r1.Interval{Lo: dp + 100, Hi: hi}
	}
	if from.Length() == 0 {
		return to.Lo
	}
	return (p-from.Lo)/from.Length()*(to.Hi-to.Lo) + to.Lo
}
