package tegaki

import (
	"math"

	"github.com/esimov/tegaki/utils"
	"golang.org/x/exp/constraints"
)

// Dims holds the number of bins along every axis of an indexed feature space.
type Dims []int

// Size returns the number of cells of the full grid.
func (d Dims) Size() int {
	size := 1
	for _, n := range d {
		size *= n
	}
	return size
}

// Element is a weighted sample of an indexed feature space.
// Index holds one coordinate in [0, 1] per axis; values outside are clamped.
type Element[T constraints.Float] struct {
	Index []T
	Value T
}

// SoftHistogram accumulates the elements into a Gaussian-smoothed histogram over
// the grid described by dims. Every element contributes to every cell with
// weight Value * exp(-d²) per axis, d being its distance to the cell in bins.
// Cells are laid out in row-major order, the last axis varying fastest.
func SoftHistogram[T constraints.Float](dims Dims, elems []Element[T]) []T {
	// weights[e][axis][bin] holds the kernel value of element e on the given bin.
	weights := make([][][]T, len(elems))
	for e, el := range elems {
		weights[e] = make([][]T, len(dims))
		for axis, n := range dims {
			pos := float64(utils.Clamp(el.Index[axis], 0, 1)) * float64(n-1)
			w := make([]T, n)
			for bin := range w {
				d := pos - float64(bin)
				w[bin] = T(math.Exp(-d * d))
			}
			weights[e][axis] = w
		}
	}

	hist := make([]T, dims.Size())
	cell := make([]int, len(dims))
	for i := range hist {
		var sum T
		for e, el := range elems {
			prod := T(1)
			for axis, bin := range cell {
				prod *= weights[e][axis][bin]
			}
			sum += el.Value * prod
		}
		hist[i] = sum

		// Advance the cell index, last axis first.
		for axis := len(cell) - 1; axis >= 0; axis-- {
			cell[axis]++
			if cell[axis] < dims[axis] {
				break
			}
			cell[axis] = 0
		}
	}
	return hist
}
