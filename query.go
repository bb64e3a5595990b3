package tegaki

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadStrokes decodes hand-drawn strokes in the form [[[x,y],...],...],
// expressed in the 200x200 canvas coordinate system. Empty strokes are dropped.
func ReadStrokes(r io.Reader) ([]Stroke, error) {
	var raw [][][]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("unable to decode strokes: %w", err)
	}

	strokes := make([]Stroke, 0, len(raw))
	for i, rs := range raw {
		if len(rs) == 0 {
			continue
		}
		s := make(Stroke, len(rs))
		for j, p := range rs {
			if len(p) != 2 {
				return nil, fmt.Errorf("stroke %d, point %d: expected 2 coordinates, got %d", i, j, len(p))
			}
			s[j] = Point{X: p[0], Y: p[1]}
		}
		strokes = append(strokes, s)
	}
	return strokes, nil
}
