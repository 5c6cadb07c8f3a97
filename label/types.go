// SPDX-License-Identifier: MIT

package label

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

var (
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// String returns "conn8" or "conn4".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// Offsets returns the (dx,dy) neighbour offsets for c.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn4 {
		return offsets4
	}
	return offsets8
}

// Labeling is the connected-component labelling of one mask.
//
// Labels[y*Width+x] is 0 for background cells and 1..Count for patch cells.
type Labeling struct {
	Width, Height int
	Labels        []int
	Count         int
}
