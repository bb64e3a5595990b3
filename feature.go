package tegaki

import "math"

// ModelVersion identifies the layout of the feature vectors. It changes whenever
// vectors built by different versions can no longer be compared.
const ModelVersion = "2"

// Bin counts of the two feature spaces.
var (
	// AbsDims bins the start and end positions of a segment: x1, y1, x2, y2.
	AbsDims = Dims{2, 2, 2, 2}
	// RelDims bins the midpoint, length and direction of a segment.
	RelDims = Dims{3, 3, 6, 7}
)

// ColSize is the length of every feature vector.
const ColSize = 2*2*2*2 + 3*3*6*7

// Segment weights of the stroke summary.
const (
	chordWeight = 1.0
	bendWeight  = 0.4
)

// Feature encodes the strokes of a glyph into a vector of ColSize values.
// Each stroke is reduced to its summary points, whose three segments are
// soft-binned into an absolute position space and a relative shape space.
func Feature(strokes []Stroke) []float64 {
	abs := make([]Element[float64], 0, 3*len(strokes))
	rel := make([]Element[float64], 0, 3*len(strokes))

	addSegment := func(p, q Point, weight float64) {
		abs = append(abs, Element[float64]{
			Index: []float64{p.X / canvasSize, p.Y / canvasSize, q.X / canvasSize, q.Y / canvasSize},
			Value: weight,
		})

		d := q.Sub(p)
		length := d.Norm()
		// The angle is measured from the y axis: an upward segment is ±π.
		angle := math.Atan2(d.X, d.Y)
		rel = append(rel, Element[float64]{
			Index: []float64{
				(p.X + q.X) / 400,
				(p.Y + q.Y) / 400,
				length / 250,
				(angle/math.Pi + 0.5) / 1.5,
			},
			Value: weight * (0.5 + length/400) * 1.3,
		})
	}

	for _, s := range strokes {
		start, mid, end := s.Summary()
		addSegment(start, end, chordWeight)
		addSegment(start, mid, bendWeight)
		addSegment(mid, end, bendWeight)
	}

	feature := make([]float64, 0, ColSize)
	feature = append(feature, SoftHistogram(AbsDims, abs)...)
	feature = append(feature, SoftHistogram(RelDims, rel)...)
	return feature
}
