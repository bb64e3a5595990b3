package tegaki

import (
	"github.com/esimov/tegaki/utils"
	"github.com/golang/geo/r2"
)

// SummaryThreshold is the minimum distance, in canvas units, a point has to keep
// from the start-end line to be picked as the bend of a stroke.
const SummaryThreshold = 7.0

// Point is a position on the 200x200 KAGE canvas.
type Point = r2.Point

// Stroke is one continuous pen movement.
type Stroke []Point

// Summary reduces the stroke to three points: its start, its most prominent
// bend and its end. The bend is the first point with the largest distance
// from the start-end line, or the midpoint of start and end when that distance
// does not exceed SummaryThreshold.
func (s Stroke) Summary() (start, mid, end Point) {
	start, end = s[0], s[len(s)-1]

	dir := end.Sub(start)
	length := dir.Norm()
	distance := func(p Point) float64 {
		if length == 0 {
			return p.Sub(start).Norm()
		}
		return utils.Abs(dir.Cross(p.Sub(start))) / length
	}

	best, bestDist := s[0], distance(s[0])
	for _, p := range s[1:] {
		if d := distance(p); d > bestDist {
			best, bestDist = p, d
		}
	}

	if bestDist > SummaryThreshold {
		return start, best, end
	}
	return start, Point{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2}, end
}

// Bounds returns the bounding box of every point of the strokes.
func Bounds(strokes []Stroke) r2.Rect {
	rect := r2.EmptyRect()
	for _, s := range strokes {
		for _, p := range s {
			rect = rect.AddPoint(p)
		}
	}
	return rect
}
