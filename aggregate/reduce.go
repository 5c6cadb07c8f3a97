// SPDX-License-Identifier: MIT

package aggregate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrUnknownReducer indicates a reducer value or suffix outside the known set.
	ErrUnknownReducer = errors.New("aggregate: unknown reducer")
	// ErrWeightsLength indicates weights and values of different lengths.
	ErrWeightsLength = errors.New("aggregate: weights and values differ in length")
)

// Reducer selects a distribution statistic.
type Reducer int

// Reducers, in FRAGSTATS suffix order.
const (
	Mean Reducer = iota
	AreaWeightedMean
	Median
	Range
	StdDev
	CV
)

var suffixes = [...]string{
	Mean:             "_mn",
	AreaWeightedMean: "_am",
	Median:           "_md",
	Range:            "_ra",
	StdDev:           "_sd",
	CV:               "_cv",
}

// Reducers returns every reducer in suffix order (_mn, _am, _md, _ra, _sd, _cv).
func Reducers() []Reducer {
	return []Reducer{Mean, AreaWeightedMean, Median, Range, StdDev, CV}
}

// Valid reports whether r is a known reducer.
func (r Reducer) Valid() bool {
	return r >= Mean && r <= CV
}

// Suffix returns the metric-name suffix, e.g. "_am".
func (r Reducer) Suffix() string {
	if !r.Valid() {
		return ""
	}
	return suffixes[r]
}

// String returns the suffix without its underscore, e.g. "am".
func (r Reducer) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Reducer(%d)", int(r))
	}
	return suffixes[r][1:]
}

// ParseReducer maps "_mn" or "mn" to Mean, and so on.
func ParseReducer(s string) (Reducer, error) {
	for _, r := range Reducers() {
		if s == r.Suffix() || s == r.String() {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReducer, s)
}

// NeedsWeights reports whether the reducer reads the weights argument.
func (r Reducer) NeedsWeights() bool {
	return r == AreaWeightedMean
}

// Reduce applies r to values. weights are read only by AreaWeightedMean and
// must then have the same length as values. percent scales CV by 100.
// An empty values slice yields NaN.
func Reduce(r Reducer, values, weights []float64, percent bool) (float64, error) {
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownReducer, int(r))
	}
	if r.NeedsWeights() && len(weights) != len(values) {
		return 0, ErrWeightsLength
	}
	if len(values) == 0 {
		return math.NaN(), nil
	}

	switch r {
	case Mean:
		return stat.Mean(values, nil), nil
	case AreaWeightedMean:
		return stat.Mean(values, weights), nil
	case Median:
		return median(values), nil
	case Range:
		return floats.Max(values) - floats.Min(values), nil
	case StdDev:
		return stat.PopStdDev(values, nil), nil
	default:
		cv := stat.PopStdDev(values, nil) / stat.Mean(values, nil)
		if percent {
			cv *= 100
		}
		return cv, nil
	}
}

// median sorts a copy of x and averages the two middle values for even n.
func median(x []float64) float64 {
	s := make([]float64, len(x))
	copy(s, x)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
