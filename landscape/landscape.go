// SPDX-License-Identifier: MIT

package landscape

import (
	"sync"

	"github.com/katalvlaran/landstats/label"
	"github.com/katalvlaran/landstats/raster"
)

// hectare is the number of square metres in one hectare.
const hectare = 10000

// Landscape evaluates metrics on one Grid.
//
// The class mask/labelling cache and the patch table are filled on first use
// and live as long as the Landscape. All methods are safe for concurrent use
// and never modify the Grid.
type Landscape struct {
	grid  *raster.Grid
	cache *label.Cache

	validOnce sync.Once
	valid     *raster.Mask

	patchOnce sync.Once
	patches   *patchTable
}

// New wraps g for metric evaluation.
// Returns ErrNilGrid if g is nil.
func New(g *raster.Grid, opts ...Option) (*Landscape, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cacheOpts := []label.CacheOption{
		label.WithConnectivity(cfg.conn),
		label.WithOnMiss(func(class float64, kind label.Kind) {
			Logger().Debug("landscape: computing", "kind", kind.String(), "class", class)
		}),
	}
	if !cfg.cache {
		cacheOpts = append(cacheOpts, label.WithoutMemo())
	}

	return &Landscape{
		grid:  g,
		cache: label.NewCache(g.ClassMask, cacheOpts...),
	}, nil
}

// Grid returns the underlying grid.
func (l *Landscape) Grid() *raster.Grid {
	return l.grid
}

// Classes returns a copy of the sorted class codes.
func (l *Landscape) Classes() []float64 {
	return l.grid.Classes()
}

// CellArea returns the real-world area of one cell.
func (l *Landscape) CellArea() float64 {
	return l.grid.CellArea()
}

// Area returns the landscape area in real units: the number of
// non-nodata cells times the cell area.
func (l *Landscape) Area() float64 {
	return float64(l.grid.ValidCount()) * l.grid.CellArea()
}

// Connectivity returns the patch neighbourhood in use.
func (l *Landscape) Connectivity() label.Connectivity {
	return l.cache.Connectivity()
}

// CacheStats reports mask/labelling lookups served from memory and computed.
func (l *Landscape) CacheStats() (hits, misses int64) {
	return l.cache.Stats()
}

// classMask, labeling and numPatches answer codes outside the class set
// (nodata, NaN, absent codes) with an empty result and keep them out of the
// cache; NaN keys would otherwise add a new entry on every lookup.

func (l *Landscape) classMask(class float64) *raster.Mask {
	if !l.grid.HasClass(class) {
		return raster.NewMask(l.grid.Width, l.grid.Height)
	}
	return l.cache.Mask(class)
}

func (l *Landscape) labeling(class float64) *label.Labeling {
	if !l.grid.HasClass(class) {
		return label.Label(l.classMask(class), l.cache.Connectivity())
	}
	return l.cache.Labeling(class)
}

func (l *Landscape) numPatches(class float64) int {
	if !l.grid.HasClass(class) {
		return 0
	}
	return l.cache.NumPatches(class)
}

func (l *Landscape) validMask() *raster.Mask {
	l.validOnce.Do(func() {
		l.valid = l.grid.ValidMask()
	})
	return l.valid
}
