// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/katalvlaran/landstats/raster"
)

// EdgeCount holds edge totals in cell units, split by orientation.
type EdgeCount struct {
	Row int // edges between vertically adjacent cells (length CellWidth)
	Col int // edges between horizontally adjacent cells (length CellHeight)
}

// Total returns Row + Col.
func (e EdgeCount) Total() int {
	return e.Row + e.Col
}

// Length converts the counts to real units.
func (e EdgeCount) Length(res raster.Resolution) float64 {
	return float64(e.Row)*res.CellWidth + float64(e.Col)*res.CellHeight
}

// Area returns the number of true cells of m, multiplied by cellArea unless
// cellCounts is set.
func Area(m *raster.Mask, cellArea float64, cellCounts bool) float64 {
	n := float64(m.Count())
	if cellCounts {
		return n
	}
	return n * cellArea
}

// PerimeterCells counts the sides of true cells that face a false cell, with
// the mask padded by one false cell on every side.
// Complexity: O(W×H).
func PerimeterCells(m *raster.Mask) EdgeCount {
	var e EdgeCount
	for y := -1; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) != m.At(x, y+1) {
				e.Row++
			}
		}
	}
	for y := 0; y < m.Height; y++ {
		for x := -1; x < m.Width; x++ {
			if m.At(x, y) != m.At(x+1, y) {
				e.Col++
			}
		}
	}
	return e
}

// Perimeter returns the edge length of the true cells of m in real units.
func Perimeter(m *raster.Mask, res raster.Resolution) float64 {
	return PerimeterCells(m).Length(res)
}

// ClassEdgeCells counts the sides of class cells that are class edges.
//
// A side facing a valid cell outside the class always counts. A side facing
// the grid border or an invalid (nodata) cell counts only when
// countBoundary is true. class and valid must have the same shape.
// Complexity: O(W×H).
func ClassEdgeCells(class, valid *raster.Mask, countBoundary bool) EdgeCount {
	var e EdgeCount
	side := func(x, y int) bool {
		if !valid.At(x, y) {
			return countBoundary
		}
		return !class.At(x, y)
	}
	for y := 0; y < class.Height; y++ {
		for x := 0; x < class.Width; x++ {
			if !class.At(x, y) {
				continue
			}
			if side(x, y-1) {
				e.Row++
			}
			if side(x, y+1) {
				e.Row++
			}
			if side(x-1, y) {
				e.Col++
			}
			if side(x+1, y) {
				e.Col++
			}
		}
	}
	return e
}

// LandscapeEdgeCells counts every edge of the landscape once.
//
// A side shared by two valid cells of different classes always counts. A
// side between a valid cell and a nodata cell or the grid border counts
// only when countBoundary is true; sides between two invalid cells never
// count.
// Complexity: O(W×H).
func LandscapeEdgeCells(g *raster.Grid, countBoundary bool) EdgeCount {
	var e EdgeCount
	edge := func(ax, ay, bx, by int) bool {
		av, bv := g.IsValid(ax, ay), g.IsValid(bx, by)
		switch {
		case av && bv:
			return g.At(ax, ay) != g.At(bx, by)
		case av || bv:
			return countBoundary
		default:
			return false
		}
	}
	for y := -1; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if edge(x, y, x, y+1) {
				e.Row++
			}
		}
	}
	for y := 0; y < g.Height; y++ {
		for x := -1; x < g.Width; x++ {
			if edge(x, y, x+1, y) {
				e.Col++
			}
		}
	}
	return e
}

// MinPerimeter returns the smallest perimeter, in cell sides, of any shape
// made of areaCells square cells: with n = ⌊√a⌋ it is 4n when a = n²,
// 4n+2 when n² < a ≤ n(n+1), and 4n+4 otherwise.
func MinPerimeter(areaCells float64) float64 {
	n := math.Floor(math.Sqrt(areaCells))
	switch {
	case areaCells-n*n == 0:
		return 4 * n
	case areaCells <= n*(n+1):
		return 4*n + 2
	default:
		return 4*n + 4
	}
}

// ShapeIndex returns perimeterCells / MinPerimeter(areaCells). It is 1 for a
// maximally compact shape and grows as the shape gets more irregular.
func ShapeIndex(areaCells, perimeterCells float64) float64 {
	return perimeterCells / MinPerimeter(areaCells)
}
