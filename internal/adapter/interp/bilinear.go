// Package interp resamples 2D image grids with bilinear interpolation.
package interp

import (
	"fmt"
	"math"
)

// Cell holds the four corner values of a unit grid cell.
type Cell struct {
	// V00: value at (0, 0).
	// V10: value at (1, 0).
	// V01: value at (0, 1).
	// V11: value at (1, 1).
	V00, V10, V01, V11 float64
}

// Bilinear interpolates within a unit cell at fractional offsets t, u in
// [0, 1]:
//
//	f(t,u) = (1-t)(1-u)V00 + t(1-u)V10 + (1-t)u*V01 + tu*V11
func Bilinear(cell Cell, t, u float64) float64 {
	// Clamp to [0, 1] to handle floating point edge cases.
	t = math.Max(0, math.Min(1, t))
	u = math.Max(0, math.Min(1, u))

	return (1-t)*(1-u)*cell.V00 +
		t*(1-u)*cell.V10 +
		(1-t)*u*cell.V01 +
		t*u*cell.V11
}

// Resample rescales a rectangular 2D array to outRows x outCols using
// bilinear interpolation in pixel-index space. The corner pixels of the
// output map exactly onto the corner pixels of the input.
func Resample(values [][]float64, outRows, outCols int) ([][]float64, error) {
	inRows := len(values)
	if inRows < 2 || len(values[0]) < 2 {
		return nil, fmt.Errorf("input grid must be at least 2x2")
	}
	inCols := len(values[0])
	for i, row := range values {
		if len(row) != inCols {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), inCols)
		}
	}
	if outRows < 2 || outCols < 2 {
		return nil, fmt.Errorf("output size must be at least 2x2, got %dx%d", outRows, outCols)
	}

	rowScale := float64(inRows-1) / float64(outRows-1)
	colScale := float64(inCols-1) / float64(outCols-1)

	out := make([][]float64, outRows)
	for i := 0; i < outRows; i++ {
		out[i] = make([]float64, outCols)

		y := float64(i) * rowScale
		yIdx := int(y)
		if yIdx >= inRows-1 {
			yIdx = inRows - 2
		}
		u := y - float64(yIdx)

		for j := 0; j < outCols; j++ {
			x := float64(j) * colScale
			xIdx := int(x)
			if xIdx >= inCols-1 {
				xIdx = inCols - 2
			}
			t := x - float64(xIdx)

			cell := Cell{
				V00: values[yIdx][xIdx],
				V10: values[yIdx][xIdx+1],
				V01: values[yIdx+1][xIdx],
				V11: values[yIdx+1][xIdx+1],
			}
			out[i][j] = Bilinear(cell, t, u)
		}
	}

	return out, nil
}
