// SPDX-License-Identifier: MIT

package raster

// Number is the set of element types accepted for raw class codes.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Resolution is the real-world size of one cell edge.
// CellWidth is measured along a row (x), CellHeight along a column (y).
type Resolution struct {
	CellWidth  float64
	CellHeight float64
}

// Square returns a Resolution with equal width and height.
func Square(size float64) Resolution {
	return Resolution{CellWidth: size, CellHeight: size}
}

// CellArea returns CellWidth × CellHeight.
func (r Resolution) CellArea() float64 {
	return r.CellWidth * r.CellHeight
}

// IsSquare reports whether cells are square.
func (r Resolution) IsSquare() bool {
	return r.CellWidth == r.CellHeight
}

// Rect is a half-open cell rectangle [X0,X1)×[Y0,Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Dx returns the rectangle width in cells.
func (r Rect) Dx() int { return r.X1 - r.X0 }

// Dy returns the rectangle height in cells.
func (r Rect) Dy() int { return r.Y1 - r.Y0 }

// Empty reports whether the rectangle contains no cells.
func (r Rect) Empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

// Grid is an immutable categorical raster.
//
// Cells are stored row-major: the code of cell (x,y) is cells[y*Width+x].
// Classes is computed once by the constructor and never changes.
type Grid struct {
	Width, Height int
	Resolution    Resolution
	Nodata        float64

	cells   []float64
	classes []float64
	valid   int
}
