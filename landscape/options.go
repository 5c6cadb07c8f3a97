// SPDX-License-Identifier: MIT

package landscape

import (
	"strconv"

	"github.com/katalvlaran/landstats/label"
)

// ---------- Construction options ----------

// Option configures a Landscape at construction.
type Option func(*config)

type config struct {
	cache bool
	conn  label.Connectivity
}

func defaultConfig() config {
	return config{cache: true, conn: label.Conn8}
}

// WithoutCache recomputes class masks and labelings on every request instead
// of memoizing them. Results are identical; only speed differs.
func WithoutCache() Option {
	return func(c *config) { c.cache = false }
}

// WithConnectivity selects the patch neighbourhood. The default, Conn8, is
// the FRAGSTATS eight-neighbour rule.
func WithConnectivity(conn label.Connectivity) Option {
	return func(c *config) { c.conn = conn }
}

// ---------- Per-call options ----------

// DEFAULTS - FRAGSTATS conventions.
const (
	// DefaultHectares reports areas in hectares (m² / 10000).
	DefaultHectares = true
	// DefaultPercent reports proportions as percentages.
	DefaultPercent = true
	// DefaultCountBoundary excludes the landscape border and nodata from edge totals.
	DefaultCountBoundary = false
)

// Options parameterizes metric evaluation. Each metric reads only the
// fields listed in its documentation:
//
//   - Hectares: area, perimeter-area ratio, total area, patch density,
//     edge density.
//   - Percent: proportion of landscape, patch density, largest patch index,
//     coefficient of variation.
//   - CountBoundary: total edge, edge density.
type Options struct {
	Hectares      bool
	Percent       bool
	CountBoundary bool
}

// DefaultOptions returns Options with the FRAGSTATS defaults:
// Hectares=true, Percent=true, CountBoundary=false.
func DefaultOptions() Options {
	return Options{
		Hectares:      DefaultHectares,
		Percent:       DefaultPercent,
		CountBoundary: DefaultCountBoundary,
	}
}

// ---------- Class selection ----------

// ClassFilter restricts a metric to one class code. The zero value,
// AllClasses, selects every class (patch metrics) or the whole landscape
// (class/landscape metrics).
type ClassFilter struct {
	value float64
	set   bool
}

// AllClasses selects every class.
var AllClasses = ClassFilter{}

// Class selects the patches of class code v only.
func Class(v float64) ClassFilter {
	return ClassFilter{value: v, set: true}
}

// Value returns the selected class code and whether one is set.
func (f ClassFilter) Value() (float64, bool) {
	return f.value, f.set
}

// IsAll reports whether f selects every class.
func (f ClassFilter) IsAll() bool {
	return !f.set
}

// String returns "all" or the class code.
func (f ClassFilter) String() string {
	if !f.set {
		return "all"
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

func (f ClassFilter) match(class float64) bool {
	return !f.set || class == f.value
}
