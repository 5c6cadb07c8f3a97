// SPDX-License-Identifier: MIT

package landscape

import (
	"fmt"
	"math"
)

// PatchValue is one patch-level metric value.
// PatchID is the zero-based row of the patch in the full patch table and is
// stable across class filters.
type PatchValue struct {
	PatchID int
	Class   float64
	Value   float64
}

// PatchSeries is the result of a patch-level metric, in patch-table order.
type PatchSeries []PatchValue

// Values returns the metric values only.
func (s PatchSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// ClassValue is one class-level metric value.
type ClassValue struct {
	Class float64
	Value float64
}

// ClassSeries is a class-level metric evaluated for every class, in sorted
// class order.
type ClassSeries []ClassValue

// Values returns the metric values only.
func (s ClassSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Value
	}
	return out
}

// Level identifies the granularity of a result table.
type Level int

const (
	// PatchLevel tables have one row per patch, indexed by patch_id.
	PatchLevel Level = iota
	// ClassLevel tables have one row per class, indexed by class_val.
	ClassLevel
	// LandscapeLevel tables have a single row.
	LandscapeLevel
)

// String returns "patch", "class" or "landscape".
func (l Level) String() string {
	switch l {
	case PatchLevel:
		return "patch"
	case ClassLevel:
		return "class"
	case LandscapeLevel:
		return "landscape"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// IndexName returns the name of the row index column.
func (l Level) IndexName() string {
	switch l {
	case PatchLevel:
		return "patch_id"
	case ClassLevel:
		return "class_val"
	default:
		return ""
	}
}

// Row is one table row. PatchID is -1 outside patch tables and Class is NaN
// in landscape tables.
type Row struct {
	PatchID int
	Class   float64
	Values  []float64
}

// Table is a metric result table: Values[j] of every row belongs to Columns[j].
type Table struct {
	Level   Level
	Columns []string
	Rows    []Row
}

// Column returns the values of the named column, in row order.
func (t *Table) Column(name string) ([]float64, error) {
	for j, c := range t.Columns {
		if c != name {
			continue
		}
		out := make([]float64, len(t.Rows))
		for i, r := range t.Rows {
			out[i] = r.Values[j]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: no column %q", ErrUnknownMetric, name)
}

// Classes returns the class_val column.
func (t *Table) Classes() []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Class
	}
	return out
}

func newRow(patchID int, class float64, n int) Row {
	return Row{PatchID: patchID, Class: class, Values: make([]float64, n)}
}

func landscapeRow(n int) Row {
	return newRow(-1, math.NaN(), n)
}
