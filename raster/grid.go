// SPDX-License-Identifier: MIT

package raster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of class
// codes. values[y][x] is the code of the cell in row y, column x.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrBadResolution if the
// cell size is not finite and positive.
// Complexity: O(W×H log C) time, O(W×H) memory.
func NewGrid[T Number](values [][]T, res Resolution, nodata float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if err := validateResolution(res); err != nil {
		return nil, err
	}
	cells := make([]float64, 0, w*h)
	for _, row := range values {
		for _, v := range row {
			cells = append(cells, float64(v))
		}
	}

	return build(w, h, cells, res, nodata), nil
}

// FromMatrix constructs a Grid from a gonum matrix: row i of m becomes grid
// row y=i. The matrix is copied.
func FromMatrix(m mat.Matrix, res Resolution, nodata float64) (*Grid, error) {
	if m == nil {
		return nil, ErrEmptyGrid
	}
	h, w := m.Dims()
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}
	if err := validateResolution(res); err != nil {
		return nil, err
	}
	cells := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells[y*w+x] = m.At(y, x)
		}
	}

	return build(w, h, cells, res, nodata), nil
}

func validateResolution(res Resolution) error {
	for _, v := range [...]float64{res.CellWidth, res.CellHeight} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return ErrBadResolution
		}
	}
	return nil
}

// build takes ownership of cells and derives the class set and valid count.
func build(w, h int, cells []float64, res Resolution, nodata float64) *Grid {
	g := &Grid{
		Width:      w,
		Height:     h,
		Resolution: res,
		Nodata:     nodata,
		cells:      cells,
	}
	seen := make(map[float64]struct{})
	for _, v := range cells {
		if g.IsNodata(v) {
			continue
		}
		g.valid++
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			g.classes = append(g.classes, v)
		}
	}
	sort.Float64s(g.classes)

	return g
}

// IsNodata reports whether v marks a cell without valid classification.
// NaN and ±Inf cells are always no-data; a NaN Nodata therefore matches
// NaN cells too.
func (g *Grid) IsNodata(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0) || v == g.Nodata
}

// Classes returns a copy of the sorted class codes present in the grid.
func (g *Grid) Classes() []float64 {
	out := make([]float64, len(g.classes))
	copy(out, g.classes)
	return out
}

// HasClass reports whether c belongs to the class set.
func (g *Grid) HasClass(c float64) bool {
	i := sort.SearchFloat64s(g.classes, c)
	return i < len(g.classes) && g.classes[i] == c
}

// CellArea returns the real-world area of one cell.
func (g *Grid) CellArea() float64 {
	return g.Resolution.CellArea()
}

// ValidCount returns the number of non-nodata cells.
func (g *Grid) ValidCount() int {
	return g.valid
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the code of cell (x,y). It panics when (x,y) is out of bounds.
func (g *Grid) At(x, y int) float64 {
	return g.cells[g.Index(x, y)]
}

// IsValid reports whether (x,y) is inside the grid and not nodata.
func (g *Grid) IsValid(x, y int) bool {
	return g.InBounds(x, y) && !g.IsNodata(g.cells[g.Index(x, y)])
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// ClassMask returns the class membership grid: true where the cell equals c.
// Codes outside the class set (nodata, NaN, absent codes) give an all-false
// mask.
// Complexity: O(W×H).
func (g *Grid) ClassMask(c float64) *Mask {
	m := NewMask(g.Width, g.Height)
	if !g.HasClass(c) {
		return m
	}
	for i, v := range g.cells {
		m.Cells[i] = v == c
	}
	return m
}

// ValidMask returns true for every non-nodata cell.
// Complexity: O(W×H).
func (g *Grid) ValidMask() *Mask {
	m := NewMask(g.Width, g.Height)
	for i, v := range g.cells {
		m.Cells[i] = !g.IsNodata(v)
	}
	return m
}
