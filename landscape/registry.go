// SPDX-License-Identifier: MIT

package landscape

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/landstats/aggregate"
)

// scalarFunc evaluates a class- or landscape-level metric.
type scalarFunc func(l *Landscape, f ClassFilter, o Options) (float64, error)

// scalarMetric is one registry entry. class/landscape tell the levels the
// metric is defined at.
type scalarMetric struct {
	name      string
	class     bool
	landscape bool
	fn        scalarFunc
}

// distributed lists the patch metrics with _mn … _cv variants.
var distributed = []PatchMetric{PatchArea, PatchPerimeterAreaRatio, PatchShapeIndex, PatchFractalDimension}

var (
	scalarMetrics = buildScalarMetrics()
	scalarIndex   = indexScalarMetrics(scalarMetrics)
)

func buildScalarMetrics() []scalarMetric {
	plain := func(fn func(l *Landscape, f ClassFilter, o Options) float64) scalarFunc {
		return func(l *Landscape, f ClassFilter, o Options) (float64, error) {
			return fn(l, f, o), nil
		}
	}
	out := []scalarMetric{
		{"total_area", true, true, plain((*Landscape).TotalArea)},
		{"proportion_of_landscape", true, false, (*Landscape).ProportionOfLandscape},
		{"number_of_patches", true, true, plain(func(l *Landscape, f ClassFilter, _ Options) float64 {
			return float64(l.NumberOfPatches(f))
		})},
		{"patch_density", true, true, plain((*Landscape).PatchDensity)},
		{"largest_patch_index", true, true, plain((*Landscape).LargestPatchIndex)},
		{"total_edge", true, true, plain((*Landscape).TotalEdge)},
		{"edge_density", true, true, plain((*Landscape).EdgeDensity)},
		{"landscape_shape_index", true, true, plain(func(l *Landscape, f ClassFilter, _ Options) float64 {
			return l.LandscapeShapeIndex(f)
		})},
	}
	for _, m := range distributed {
		for _, r := range aggregate.Reducers() {
			out = append(out, scalarMetric{
				name:      DistributionName(m, r),
				class:     true,
				landscape: true,
				fn: func(l *Landscape, f ClassFilter, o Options) (float64, error) {
					return l.Distribution(m, r, f, o)
				},
			})
		}
	}
	return out
}

func indexScalarMetrics(ms []scalarMetric) map[string]int {
	idx := make(map[string]int, len(ms))
	for i, m := range ms {
		idx[m.name] = i
	}
	return idx
}

// PatchMetricNames returns the implemented patch-level metric names.
func PatchMetricNames() []string {
	out := make([]string, 0, len(patchMetricNames))
	for _, m := range PatchMetrics() {
		out = append(out, m.Name())
	}
	return out
}

// ClassMetricNames returns the implemented class-level metric names.
func ClassMetricNames() []string {
	var out []string
	for _, m := range scalarMetrics {
		if m.class {
			out = append(out, m.name)
		}
	}
	return out
}

// LandscapeMetricNames returns the implemented landscape-level metric names.
func LandscapeMetricNames() []string {
	var out []string
	for _, m := range scalarMetrics {
		if m.landscape {
			out = append(out, m.name)
		}
	}
	return out
}

// isUnimplemented reports whether name belongs to a recognised but
// unimplemented metric at level.
func isUnimplemented(name string, level Level) bool {
	switch level {
	case PatchLevel:
		return slices.Contains(unimplementedPatch, name)
	case LandscapeLevel:
		if slices.Contains(unimplementedLandscape, name) {
			return true
		}
	}
	if slices.Contains(unimplementedClass, name) {
		return true
	}
	for _, base := range unimplementedPatch {
		for _, r := range aggregate.Reducers() {
			if name == base+r.Suffix() {
				return true
			}
		}
	}
	return false
}

// knownAnywhere reports whether name is recognised at any level.
func knownAnywhere(name string) bool {
	if _, ok := scalarIndex[name]; ok {
		return true
	}
	if _, err := ParsePatchMetric(name); err == nil {
		return true
	}
	for _, lv := range []Level{PatchLevel, ClassLevel, LandscapeLevel} {
		if isUnimplemented(name, lv) {
			return true
		}
	}
	return false
}

// resolveError classifies a name that is not implemented at level.
func resolveError(name string, level Level) error {
	switch {
	case isUnimplemented(name, level):
		return fmt.Errorf("%w: %q", ErrNotImplemented, name)
	case knownAnywhere(name):
		return fmt.Errorf("%w: %q at %s level", ErrUnsupportedLevel, name, level)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

func lookupScalar(name string, level Level) (scalarMetric, error) {
	if i, ok := scalarIndex[name]; ok {
		m := scalarMetrics[i]
		if (level == ClassLevel && m.class) || (level == LandscapeLevel && m.landscape) {
			return m, nil
		}
	}
	return scalarMetric{}, resolveError(name, level)
}

// ClassMetric evaluates a class-level metric by name for the selected
// class, or the landscape-level metric of the same name for AllClasses.
//
// Errors:
//   - ErrUnknownMetric for names outside the registry.
//   - ErrUnsupportedLevel for e.g. "proportion_of_landscape" with AllClasses.
//   - ErrNotImplemented for distance and diversity metrics.
func (l *Landscape) ClassMetric(name string, f ClassFilter, o Options) (float64, error) {
	level := ClassLevel
	if f.IsAll() {
		level = LandscapeLevel
	}
	m, err := lookupScalar(name, level)
	if err != nil {
		return 0, landscapeErrorf("ClassMetric", err)
	}
	return m.fn(l, f, o)
}

// ByClass evaluates a class-level metric for every class of the landscape.
func (l *Landscape) ByClass(name string, o Options) (ClassSeries, error) {
	m, err := lookupScalar(name, ClassLevel)
	if err != nil {
		return nil, landscapeErrorf("ByClass", err)
	}
	classes := l.grid.Classes()
	out := make(ClassSeries, 0, len(classes))
	for _, c := range classes {
		v, err := m.fn(l, Class(c), o)
		if err != nil {
			return nil, landscapeErrorf("ByClass", err)
		}
		out = append(out, ClassValue{Class: c, Value: v})
	}
	return out, nil
}
