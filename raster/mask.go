// SPDX-License-Identifier: MIT

package raster

// Mask is a boolean grid with the same row-major layout as Grid.
type Mask struct {
	Width, Height int
	Cells         []bool
}

// NewMask allocates an all-false w×h mask.
func NewMask(w, h int) *Mask {
	return &Mask{Width: w, Height: h, Cells: make([]bool, w*h)}
}

// MaskFrom2D builds a mask from rows of booleans; rows[y][x] is cell (x,y).
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
func MaskFrom2D(rows [][]bool) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	m := NewMask(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(m.Cells[y*w:(y+1)*w], row)
	}
	return m, nil
}

// At reports the value of cell (x,y); cells outside the mask are false.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Cells[y*m.Width+x]
}

// Set assigns cell (x,y). It panics when (x,y) is out of bounds.
func (m *Mask) Set(x, y int, v bool) {
	m.Cells[y*m.Width+x] = v
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Cells {
		if v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of m.
func (m *Mask) Clone() *Mask {
	c := NewMask(m.Width, m.Height)
	copy(c.Cells, m.Cells)
	return c
}

// Sub returns a copy of the cells inside r, clipped to the mask bounds.
func (m *Mask) Sub(r Rect) *Mask {
	r = m.clip(r)
	out := NewMask(r.Dx(), r.Dy())
	for y := r.Y0; y < r.Y1; y++ {
		copy(out.Cells[(y-r.Y0)*out.Width:(y-r.Y0+1)*out.Width], m.Cells[y*m.Width+r.X0:y*m.Width+r.X1])
	}
	return out
}

func (m *Mask) clip(r Rect) Rect {
	r.X0, r.Y0 = max(r.X0, 0), max(r.Y0, 0)
	r.X1, r.Y1 = min(r.X1, m.Width), min(r.Y1, m.Height)
	if r.Empty() {
		return Rect{}
	}
	return r
}
