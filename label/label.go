// SPDX-License-Identifier: MIT

package label

import "github.com/katalvlaran/landstats/raster"

// Label finds all connected regions of true cells in m according to conn.
// Components are numbered 1..K in the order their first cell is met by a
// row-major scan; K = 0 when m has no true cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and the BFS queue.
func Label(m *raster.Mask, conn Connectivity) *Labeling {
	w, h := m.Width, m.Height
	lb := &Labeling{Width: w, Height: h, Labels: make([]int, w*h)}
	offsets := conn.Offsets()
	queue := make([]int, 0, 64)

	for i0, in := range m.Cells {
		if !in || lb.Labels[i0] != 0 {
			continue
		}
		lb.Count++
		id := lb.Count
		// BFS to flood the component
		queue = append(queue[:0], i0)
		lb.Labels[i0] = id
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := u%w, u/w
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if vx < 0 || vx >= w || vy < 0 || vy >= h {
					continue
				}
				vi := vy*w + vx
				if m.Cells[vi] && lb.Labels[vi] == 0 {
					lb.Labels[vi] = id
					queue = append(queue, vi)
				}
			}
		}
	}

	return lb
}

// At returns the label of cell (x,y), 0 outside the grid.
func (lb *Labeling) At(x, y int) int {
	if x < 0 || x >= lb.Width || y < 0 || y >= lb.Height {
		return 0
	}
	return lb.Labels[y*lb.Width+x]
}

// Sizes returns the cell count of every patch; Sizes()[i] belongs to label i+1.
// One pass over the labels instead of one mask per patch.
func (lb *Labeling) Sizes() []int {
	sizes := make([]int, lb.Count)
	for _, id := range lb.Labels {
		if id > 0 {
			sizes[id-1]++
		}
	}
	return sizes
}

// Bounds returns the bounding rectangle of every patch; Bounds()[i] belongs
// to label i+1.
func (lb *Labeling) Bounds() []raster.Rect {
	bounds := make([]raster.Rect, lb.Count)
	for i := range bounds {
		bounds[i] = raster.Rect{X0: lb.Width, Y0: lb.Height}
	}
	for idx, id := range lb.Labels {
		if id == 0 {
			continue
		}
		x, y := idx%lb.Width, idx/lb.Width
		r := &bounds[id-1]
		r.X0, r.Y0 = min(r.X0, x), min(r.Y0, y)
		r.X1, r.Y1 = max(r.X1, x+1), max(r.Y1, y+1)
	}
	return bounds
}

// PatchMask returns the cells of patch id inside rect, true only where the
// label equals id. rect normally comes from Bounds; other patches sharing the
// bounding box are masked out.
func (lb *Labeling) PatchMask(id int, rect raster.Rect) *raster.Mask {
	m := raster.NewMask(rect.Dx(), rect.Dy())
	for y := rect.Y0; y < rect.Y1; y++ {
		for x := rect.X0; x < rect.X1; x++ {
			if lb.At(x, y) == id {
				m.Set(x-rect.X0, y-rect.Y0, true)
			}
		}
	}
	return m
}

// Patches returns one bounding-box mask per patch, in label order.
func (lb *Labeling) Patches() []*raster.Mask {
	bounds := lb.Bounds()
	out := make([]*raster.Mask, lb.Count)
	for i, r := range bounds {
		out[i] = lb.PatchMask(i+1, r)
	}
	return out
}
