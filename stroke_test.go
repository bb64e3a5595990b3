package tegaki

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStroke_SummaryOfStraightLine(t *testing.T) {
	assert := assert.New(t)

	s := Stroke{{X: 0, Y: 0}, {X: 25, Y: 25}, {X: 100, Y: 100}}
	start, mid, end := s.Summary()

	assert.Equal(Point{X: 0, Y: 0}, start)
	assert.Equal(Point{X: 50, Y: 50}, mid)
	assert.Equal(Point{X: 100, Y: 100}, end)
}

func TestStroke_SummaryPicksBend(t *testing.T) {
	assert := assert.New(t)

	s := Stroke{{X: 0, Y: 0}, {X: 40, Y: 10}, {X: 50, Y: 30}, {X: 100, Y: 0}}
	start, mid, end := s.Summary()

	assert.Equal(Point{X: 0, Y: 0}, start)
	assert.Equal(Point{X: 50, Y: 30}, mid)
	assert.Equal(Point{X: 100, Y: 0}, end)
}

func TestStroke_SummaryThreshold(t *testing.T) {
	assert := assert.New(t)

	// A bend of exactly the threshold is not prominent enough.
	s := Stroke{{X: 0, Y: 0}, {X: 50, Y: SummaryThreshold}, {X: 100, Y: 0}}
	_, mid, _ := s.Summary()
	assert.Equal(Point{X: 50, Y: 0}, mid)

	s = Stroke{{X: 0, Y: 0}, {X: 30, Y: SummaryThreshold + 0.5}, {X: 100, Y: 0}}
	_, mid, _ = s.Summary()
	assert.Equal(Point{X: 30, Y: SummaryThreshold + 0.5}, mid)
}

func TestStroke_SummaryTieKeepsFirst(t *testing.T) {
	s := Stroke{{X: 0, Y: 0}, {X: 30, Y: 20}, {X: 70, Y: -20}, {X: 100, Y: 0}}
	_, mid, _ := s.Summary()
	assert.Equal(t, Point{X: 30, Y: 20}, mid)
}

func TestStroke_SummaryOfClosedStroke(t *testing.T) {
	assert := assert.New(t)

	// With start == end the distance falls back to the distance from start.
	s := Stroke{{X: 10, Y: 10}, {X: 13, Y: 14}, {X: 10, Y: 10}}
	_, mid, _ := s.Summary()
	assert.Equal(Point{X: 10, Y: 10}, mid)

	s = Stroke{{X: 10, Y: 10}, {X: 10, Y: 30}, {X: 10, Y: 40}, {X: 10, Y: 10}}
	_, mid, _ = s.Summary()
	assert.Equal(Point{X: 10, Y: 40}, mid)
}

func TestStroke_SummaryOfSinglePoint(t *testing.T) {
	start, mid, end := Stroke{{X: 5, Y: 7}}.Summary()

	assert.Equal(t, Point{X: 5, Y: 7}, start)
	assert.Equal(t, Point{X: 5, Y: 7}, mid)
	assert.Equal(t, Point{X: 5, Y: 7}, end)
}

func TestStroke_Bounds(t *testing.T) {
	assert := assert.New(t)

	rect := Bounds([]Stroke{
		{{X: 10, Y: 50}, {X: 120, Y: 60}},
		{{X: 40, Y: 20}, {X: 30, Y: 180}},
	})
	assert.Equal(10.0, rect.X.Lo)
	assert.Equal(120.0, rect.X.Hi)
	assert.Equal(20.0, rect.Y.Lo)
	assert.Equal(180.0, rect.Y.Hi)

	assert.True(Bounds(nil).IsEmpty())
}
