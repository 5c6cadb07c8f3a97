// SPDX-License-Identifier: MIT

package landscape

import (
	"fmt"
	"math"

	"github.com/katalvlaran/landstats/geom"
)

// PatchMetric enumerates the implemented patch-level metrics.
type PatchMetric int

const (
	// PatchArea is the patch area (hectares unless Options.Hectares is false).
	PatchArea PatchMetric = iota
	// PatchPerimeter is the patch perimeter in real units.
	PatchPerimeter
	// PatchPerimeterAreaRatio is perimeter / area.
	PatchPerimeterAreaRatio
	// PatchShapeIndex is perimeter over the minimum perimeter for the area.
	PatchShapeIndex
	// PatchFractalDimension is 2·ln(0.25·perimeter) / ln(area).
	PatchFractalDimension
)

var patchMetricNames = [...]string{
	PatchArea:               "area",
	PatchPerimeter:          "perimeter",
	PatchPerimeterAreaRatio: "perimeter_area_ratio",
	PatchShapeIndex:         "shape_index",
	PatchFractalDimension:   "fractal_dimension",
}

// PatchMetrics returns every patch metric in canonical order.
func PatchMetrics() []PatchMetric {
	return []PatchMetric{PatchArea, PatchPerimeter, PatchPerimeterAreaRatio, PatchShapeIndex, PatchFractalDimension}
}

// Valid reports whether m is a known patch metric.
func (m PatchMetric) Valid() bool {
	return m >= PatchArea && m <= PatchFractalDimension
}

// Name returns the FRAGSTATS-style metric name, e.g. "shape_index".
func (m PatchMetric) Name() string {
	if !m.Valid() {
		return fmt.Sprintf("PatchMetric(%d)", int(m))
	}
	return patchMetricNames[m]
}

// String implements fmt.Stringer.
func (m PatchMetric) String() string {
	return m.Name()
}

// ParsePatchMetric maps a metric name such as "area" to its PatchMetric.
func ParsePatchMetric(name string) (PatchMetric, error) {
	for _, m := range PatchMetrics() {
		if patchMetricNames[m] == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// patchFunc computes one value per selected patch.
type patchFunc func(l *Landscape, f ClassFilter, o Options) PatchSeries

var patchFuncs = [...]patchFunc{
	PatchArea:               (*Landscape).patchAreas,
	PatchPerimeter:          (*Landscape).perimeters,
	PatchPerimeterAreaRatio: (*Landscape).perimeterAreaRatio,
	PatchShapeIndex:         (*Landscape).shapeIndex,
	PatchFractalDimension:   (*Landscape).fractalDimension,
}

// Patch evaluates a patch-level metric for the patches selected by f.
// The result is a new slice; callers may modify it freely.
func (l *Landscape) Patch(m PatchMetric, f ClassFilter, o Options) (PatchSeries, error) {
	if !m.Valid() {
		return nil, landscapeErrorf("Patch", fmt.Errorf("%w: %s", ErrUnknownMetric, m))
	}
	return patchFuncs[m](l, f, o), nil
}

// PatchAreas returns the area of every selected patch.
// Reads Options.Hectares. area > 0, without limit.
func (l *Landscape) PatchAreas(f ClassFilter, o Options) PatchSeries {
	return l.patchAreas(f, o)
}

// Perimeters returns the perimeter of every selected patch, real units.
// perim > 0, without limit.
func (l *Landscape) Perimeters(f ClassFilter) PatchSeries {
	return l.perimeters(f, Options{})
}

// PerimeterAreaRatio returns perimeter / area for every selected patch.
// Reads Options.Hectares for the area unit. para > 0, without limit.
func (l *Landscape) PerimeterAreaRatio(f ClassFilter, o Options) PatchSeries {
	return l.perimeterAreaRatio(f, o)
}

// ShapeIndex returns each selected patch's perimeter over the minimum
// perimeter achievable by its number of cells. shape >= 1; it equals 1 for
// a maximally compact patch.
//
// With non-square cells the square-grid minimum is undefined and the
// plain 0.25·perimeter/√area form (real units) is used instead.
func (l *Landscape) ShapeIndex(f ClassFilter) PatchSeries {
	return l.shapeIndex(f, Options{})
}

// FractalDimension returns 2·ln(0.25·perimeter)/ln(area), real units, for
// every selected patch. 1 <= frac <= 2; it approaches 1 for simple shapes
// and 2 for plane-filling ones. Patches of exactly one square unit of area
// make the denominator zero and yield NaN or ±Inf.
func (l *Landscape) FractalDimension(f ClassFilter) PatchSeries {
	return l.fractalDimension(f, Options{})
}

func (l *Landscape) patchAreas(f ClassFilter, o Options) PatchSeries {
	scale := 1.0
	if o.Hectares {
		scale = hectare
	}
	return l.patchScalar(f, func(t *patchTable, i int) float64 {
		return l.patchArea(t, i) / scale
	})
}

func (l *Landscape) perimeters(f ClassFilter, _ Options) PatchSeries {
	return l.patchScalar(f, l.patchPerimeter)
}

func (l *Landscape) perimeterAreaRatio(f ClassFilter, o Options) PatchSeries {
	scale := 1.0
	if o.Hectares {
		scale = hectare
	}
	return l.patchScalar(f, func(t *patchTable, i int) float64 {
		return l.patchPerimeter(t, i) / (l.patchArea(t, i) / scale)
	})
}

func (l *Landscape) shapeIndex(f ClassFilter, _ Options) PatchSeries {
	if !l.grid.Resolution.IsSquare() {
		return l.patchScalar(f, func(t *patchTable, i int) float64 {
			return 0.25 * l.patchPerimeter(t, i) / math.Sqrt(l.patchArea(t, i))
		})
	}
	return l.patchScalar(f, func(t *patchTable, i int) float64 {
		return geom.ShapeIndex(float64(t.cells[i]), float64(t.edges[i].Total()))
	})
}

func (l *Landscape) fractalDimension(f ClassFilter, _ Options) PatchSeries {
	return l.patchScalar(f, func(t *patchTable, i int) float64 {
		return 2 * math.Log(0.25*l.patchPerimeter(t, i)) / math.Log(l.patchArea(t, i))
	})
}
