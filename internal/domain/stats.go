package domain

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// StatsOptions selects the descriptive statistics to compute over an image.
// SampleSize > 0 restricts the computation to a random subset of pixels,
// sampled independently per axis.
type StatsOptions struct {
	Min    bool
	Max    bool
	Mean   bool
	Median bool
	Std    bool

	SampleSize      int
	WithReplacement bool
}

// DefaultStatsOptions enables every statistic over the whole array.
func DefaultStatsOptions() StatsOptions {
	return StatsOptions{Min: true, Max: true, Mean: true, Median: true, Std: true}
}

// ImageStats computes descriptive statistics over a 2D image array.
// The result maps statistic name ("min", "max", "mean", "median", "std") to
// its value; disabled statistics are omitted. The standard deviation is the
// population deviation, the median averages the two middle samples for an
// even count.
func ImageStats(array [][]float64, opts StatsOptions) (map[string]float64, error) {
	var (
		flat []float64
		err  error
	)
	if opts.SampleSize > 0 {
		flat, err = RandomSubset2D(array, opts.SampleSize, opts.WithReplacement)
		if err != nil {
			return nil, err
		}
	} else {
		flat, err = flatten2D(array)
		if err != nil {
			return nil, err
		}
	}

	result := make(map[string]float64)

	if opts.Min {
		result["min"] = floats.Min(flat)
	}
	if opts.Max {
		result["max"] = floats.Max(flat)
	}
	if opts.Mean {
		result["mean"] = stat.Mean(flat, nil)
	}
	if opts.Median {
		result["median"] = median(flat)
	}
	if opts.Std {
		result["std"] = stat.PopStdDev(flat, nil)
	}

	return result, nil
}

// median returns the middle sample, averaging the two middle samples for
// an even count.
func median(x []float64) float64 {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// RandomSubset2D draws size pixels from a 2D array by sampling row and
// column indices independently, with or without replacement. Sampling
// without replacement requires size to be at most each axis length.
func RandomSubset2D(array [][]float64, size int, replace bool) ([]float64, error) {
	if len(array) == 0 || len(array[0]) == 0 {
		return nil, fmt.Errorf("cannot sample from an empty array")
	}
	if size <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", size)
	}

	rows, err := randomIndices(len(array), size, replace)
	if err != nil {
		return nil, err
	}
	cols, err := randomIndices(len(array[0]), size, replace)
	if err != nil {
		return nil, err
	}

	subset := make([]float64, size)
	for i := range subset {
		subset[i] = array[rows[i]][cols[i]]
	}
	return subset, nil
}

// randomIndices samples size indices from [0, n).
func randomIndices(n, size int, replace bool) ([]int, error) {
	if replace {
		idx := make([]int, size)
		for i := range idx {
			idx[i] = rand.IntN(n)
		}
		return idx, nil
	}
	if size > n {
		return nil, fmt.Errorf("cannot sample %d indices from %d without replacement", size, n)
	}
	return rand.Perm(n)[:size], nil
}

// flatten2D flattens a rectangular 2D array into a single slice.
func flatten2D(array [][]float64) ([]float64, error) {
	if len(array) == 0 || len(array[0]) == 0 {
		return nil, fmt.Errorf("array is empty")
	}
	ncols := len(array[0])
	flat := make([]float64, 0, len(array)*ncols)
	for i, row := range array {
		if len(row) != ncols {
			return nil, fmt.Errorf("ragged array: row %d has %d columns, expected %d", i, len(row), ncols)
		}
		flat = append(flat, row...)
	}
	return flat, nil
}
