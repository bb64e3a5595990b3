package tegaki

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeature_Size(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(394, ColSize)
	assert.Equal(ColSize, AbsDims.Size()+RelDims.Size())

	empty := Feature(nil)
	assert.Len(empty, ColSize)
	for _, v := range empty {
		assert.Zero(v)
	}

	assert.Len(Feature([]Stroke{{{X: 0, Y: 0}, {X: 10, Y: 10}}}), ColSize)
}

func TestFeature_AbsolutePart(t *testing.T) {
	// A vertical stroke along the left edge: chord (0,0)-(0,200), bends through (0,100).
	feature := Feature([]Stroke{{{X: 0, Y: 0}, {X: 0, Y: 200}}})

	// Cell (0,0,0,1) receives the whole chord and both bends at a quarter cell away.
	assert.InDelta(t, 1+0.8*math.Exp(-0.25), feature[1], 1e-12)
}

func TestFeature_IsDeterministic(t *testing.T) {
	l := MapLookup{
		"u4e00": "1:0:0:20:100:180:100",
		"u4e8c": "1:0:0:40:60:160:60$1:0:0:20:140:180:140",
		"u4e09": "99:0:0:0:0:200:130:u4e8c$1:0:0:20:170:180:170",
	}
	strokes := Expand(l["u4e09"], l)

	assert.Equal(t, Feature(strokes), Feature(strokes))
}

func TestFeature_DistinguishesGlyphs(t *testing.T) {
	horizontal := Feature([]Stroke{{{X: 20, Y: 100}, {X: 180, Y: 100}}})
	vertical := Feature([]Stroke{{{X: 100, Y: 20}, {X: 100, Y: 180}}})
	shifted := Feature([]Stroke{{{X: 20, Y: 30}, {X: 180, Y: 30}}})

	assert.NotEqual(t, horizontal, vertical)
	assert.NotEqual(t, horizontal, shifted)
}

func TestFeature_StrokeOrderDoesNotMatter(t *testing.T) {
	a := Stroke{{X: 20, Y: 100}, {X: 180, Y: 100}}
	b := Stroke{{X: 100, Y: 20}, {X: 100, Y: 180}}

	ab, ba := Feature([]Stroke{a, b}), Feature([]Stroke{b, a})
	for i := range ab {
		assert.InDelta(t, ab[i], ba[i], 1e-12)
	}
}

// relativeBlock recomputes the shape space of a single stroke cell by cell.
func relativeBlock(s Stroke) []float64 {
	start, mid, end := s.Summary()
	type segment struct {
		p, q   Point
		weight float64
	}
	segments := []segment{{start, end, 1.0}, {start, mid, 0.4}, {mid, end, 0.4}}

	out := make([]float64, 0, 3*3*6*7)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for l := 0; l < 6; l++ {
				for a := 0; a < 7; a++ {
					var sum float64
					for _, sg := range segments {
						dx, dy := sg.q.X-sg.p.X, sg.q.Y-sg.p.Y
						length := math.Hypot(dx, dy)
						clamp := func(v float64) float64 { return math.Min(math.Max(v, 0), 1) }
						idx := [4]float64{
							clamp((sg.p.X+sg.q.X)/400) * 2,
							clamp((sg.p.Y+sg.q.Y)/400) * 2,
							clamp(length/250) * 5,
							clamp((math.Atan2(dx, dy)/math.Pi+0.5)/1.5) * 6,
						}
						cell := [4]float64{float64(x), float64(y), float64(l), float64(a)}
						w := sg.weight * (0.5 + length/400) * 1.3
						for i := range idx {
							d := idx[i] - cell[i]
							w *= math.Exp(-d * d)
						}
						sum += w
					}
					out = append(out, sum)
				}
			}
		}
	}
	return out
}

func TestFeature_RelativePart(t *testing.T) {
	assert := assert.New(t)

	bent := Stroke{{X: 20, Y: 30}, {X: 90, Y: 150}, {X: 170, Y: 60}}
	feature := Feature([]Stroke{bent})
	want := relativeBlock(bent)

	rel := feature[AbsDims.Size():]
	if assert.Len(rel, len(want)) {
		for i := range want {
			assert.InDelta(want[i], rel[i], 1e-12, "cell %d", i)
		}
	}
}

func TestFeature_UpwardSegment(t *testing.T) {
	// An upward stroke has the angle ±π, the last bin of the angle axis.
	// Chord: midpoint (100,100), length 160, value 1*(0.5+160/400)*1.3.
	// Bends: length 80, midpoints a fifth of a bin away on y, value 0.4*(0.5+80/400)*1.3.
	feature := Feature([]Stroke{{{X: 100, Y: 180}, {X: 100, Y: 20}}})

	// Cell (1, 1, 3, 6) of the shape space.
	cell := AbsDims.Size() + ((1*3+1)*6+3)*7 + 6
	want := 1.17*math.Exp(-0.04) + 2*0.364*math.Exp(-(0.16+1.96))
	assert.InDelta(t, want, feature[cell], 1e-12)

	// The neighbouring angle bin is one bin further away for all three segments.
	assert.InDelta(t, want*math.Exp(-1), feature[cell-1], 1e-12)
}
