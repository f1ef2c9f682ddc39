// Package stats reduces per-trial measurements to summary statistics.
package stats

import (
	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// quantileAccuracy is the relative accuracy of Quantile.
const quantileAccuracy = 0.01

// Mean returns arithmetic mean of xs or 0 if xs is empty.
func Mean(xs []float64) float64 {
	mean, err := stats.Mean(xs)
	if err != nil {
		// Only empty input fails.
		return 0
	}
	return mean
}

// Stdev returns sample standard deviation of xs (n-1 in the denominator)
// or 0 if xs has fewer than two elements.
func Stdev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	stdev, err := stats.StandardDeviationSample(xs)
	if err == stats.EmptyInputErr {
		return 0
	}
	return stdev
}

// Quantile returns approximate q-quantile of non-negative xs or 0 if xs is empty.
func Quantile(xs []float64, q float64) (float64, error) {
	if len(xs) == 0 {
		return 0, nil
	}
	sketch, err := ddsketch.NewDefaultDDSketch(quantileAccuracy)
	if err != nil {
		return 0, errors.Wrap(err, "cannot create sketch")
	}
	for _, x := range xs {
		if err := sketch.Add(x); err != nil {
			return 0, errors.Wrapf(err, "cannot add %v to sketch", x)
		}
	}
	value, err := sketch.GetValueAtQuantile(q)
	return value, errors.Wrapf(err, "cannot compute %v quantile", q)
}

// Ints converts integers to floats.
func Ints(xs []int) []float64 {
	floats := make([]float64, len(xs))
	for i, x := range xs {
		floats[i] = float64(x)
	}
	return floats
}

// Int64s converts 64 bit integers to floats.
func Int64s(xs []int64) []float64 {
	floats := make([]float64, len(xs))
	for i, x := range xs {
		floats[i] = float64(x)
	}
	return floats
}
