package tegaki

import (
	"strconv"
	"strings"
)

// KAGE stroke command codes understood by the Expander.
const (
	cmdLine      = 1
	cmdQuadratic = 2
	cmdBend      = 3
	cmdBendAlt   = 4
	cmdCubic     = 6
	cmdSlash     = 7
	cmdComponent = 99
)

const (
	// numFields is the number of numeric fields read from every descriptor line.
	numFields = 11
	// curveSamples is the number of interior points sampled on every curve.
	curveSamples = 4
	// aliasPrefix marks a descriptor that only redirects to another glyph.
	aliasPrefix = "99:0:0:0:0:200:200:"
)

// Lookup resolves a glyph name to its KAGE descriptor.
type Lookup interface {
	Get(name string) (string, bool)
}

// LookupFunc adapts an ordinary function to the Lookup interface.
type LookupFunc func(name string) (string, bool)

// Get calls f(name).
func (f LookupFunc) Get(name string) (string, bool) { return f(name) }

// MapLookup is a Lookup backed by a plain map.
type MapLookup map[string]string

// Get returns the descriptor stored under name.
func (m MapLookup) Get(name string) (string, bool) {
	data, ok := m[name]
	return data, ok
}

// IsAlias reports whether the descriptor is a single full-canvas reference
// to another glyph. Such glyphs duplicate their target and are not indexed.
func IsAlias(data string) bool {
	return !strings.Contains(data, "$") && strings.HasPrefix(data, aliasPrefix)
}

// Expander turns KAGE descriptors into strokes, resolving component
// references through a Lookup. An Expander is not safe for concurrent use;
// create one per goroutine.
type Expander struct {
	lookup Lookup
	stack  []string
}

// NewExpander returns an Expander resolving components through l.
func NewExpander(l Lookup) *Expander {
	return &Expander{lookup: l}
}

// Expand is a shorthand for NewExpander(l).Expand(data).
func Expand(data string, l Lookup) []Stroke {
	return NewExpander(l).Expand(data)
}

// Expand returns every stroke described by data. Malformed lines, unknown
// commands, missing components and recursive references contribute nothing.
func (e *Expander) Expand(data string) []Stroke {
	var strokes []Stroke
	for _, line := range strings.Split(data, "$") {
		strokes = append(strokes, e.expandLine(line)...)
	}
	return strokes
}

func (e *Expander) expandLine(line string) []Stroke {
	cells := strings.Split(line, ":")

	var f [numFields]float64
	for i := 0; i < numFields && i < len(cells); i++ {
		f[i] = parseCell(cells[i])
	}
	pt := func(i int) Point { return Point{X: f[i], Y: f[i+1]} }

	code, err := strconv.Atoi(cells[0])
	if err != nil {
		return nil
	}

	switch code {
	case cmdLine:
		return []Stroke{lineStroke(pt(3), pt(5))}
	case cmdQuadratic:
		return []Stroke{quadraticStroke(pt(3), pt(5), pt(7))}
	case cmdBend, cmdBendAlt:
		return []Stroke{{pt(3), pt(5), pt(7)}}
	case cmdCubic:
		return []Stroke{cubicStroke(pt(3), pt(5), pt(7), pt(9))}
	case cmdSlash:
		return []Stroke{slashStroke(pt(3), pt(5), pt(7), pt(9))}
	case cmdComponent:
		if len(cells) <= 7 {
			return nil
		}
		name, _, _ := strings.Cut(cells[7], "@")
		strokes := e.component(name)
		if len(strokes) == 0 {
			return nil
		}
		pl := placement{
			src:    pt(1),
			topLft: pt(3),
			btmRgt: pt(5),
			pivot:  pt(9),
		}
		return pl.apply(strokes)
	}
	return nil
}

// component expands the named glyph unless it is unknown or already being expanded.
func (e *Expander) component(name string) []Stroke {
	data, ok := e.lookup.Get(name)
	if !ok {
		return nil
	}
	for _, n := range e.stack {
		if n == name {
			return nil
		}
	}

	e.stack = append(e.stack, name)
	defer func() { e.stack = e.stack[:len(e.stack)-1] }()

	return e.Expand(data)
}

// parseCell parses a numeric descriptor field, falling back to 0.
func parseCell(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func lineStroke(start, end Point) Stroke {
	return Stroke{start, end}
}

// quadraticStroke samples the quadratic Bézier curve start-ctrl-end.
func quadraticStroke(start, ctrl, end Point) Stroke {
	s := make(Stroke, 0, curveSamples+2)
	s = append(s, start)
	for i := 1; i <= curveSamples; i++ {
		t := float64(i) / float64(curveSamples+1)
		u := 1 - t
		s = append(s, Point{
			X: u*u*start.X + 2*u*t*ctrl.X + t*t*end.X,
			Y: u*u*start.Y + 2*u*t*ctrl.Y + t*t*end.Y,
		})
	}
	return append(s, end)
}

// cubicStroke samples the cubic Bézier curve start-c1-c2-end.
func cubicStroke(start, c1, c2, end Point) Stroke {
	s := make(Stroke, 0, curveSamples+2)
	s = append(s, start)
	for i := 1; i <= curveSamples; i++ {
		t := float64(i) / float64(curveSamples+1)
		u := 1 - t
		s = append(s, Point{
			X: u*u*u*start.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*end.X,
			Y: u*u*u*start.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*end.Y,
		})
	}
	return append(s, end)
}

// slashStroke is a straight line a-b continued by the quadratic curve b-ctrl-c.
func slashStroke(a, b, ctrl, c Point) Stroke {
	curve := quadraticStroke(b, ctrl, c)
	return append(lineStroke(a, b), curve[1:]...)
}
