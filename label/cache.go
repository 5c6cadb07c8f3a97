// SPDX-License-Identifier: MIT

package label

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/landstats/raster"
)

// Kind tells a cache hook which artefact was computed.
type Kind int

const (
	// KindMask is a class membership mask.
	KindMask Kind = iota
	// KindLabeling is the labelling of a class mask.
	KindLabeling
)

// String returns "mask" or "labeling".
func (k Kind) String() string {
	if k == KindLabeling {
		return "labeling"
	}
	return "mask"
}

// MaskFunc produces the membership mask of one class code.
type MaskFunc func(class float64) *raster.Mask

// CacheOption configures a Cache via functional arguments.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	disabled bool
	conn     Connectivity
	onMiss   func(class float64, kind Kind)
}

// WithoutMemo makes every lookup recompute its result.
func WithoutMemo() CacheOption {
	return func(o *cacheOptions) { o.disabled = true }
}

// WithConnectivity selects the neighbourhood used for labelling (default Conn8).
func WithConnectivity(c Connectivity) CacheOption {
	return func(o *cacheOptions) { o.conn = c }
}

// WithOnMiss registers a callback run each time a mask or labelling is
// actually computed.
func WithOnMiss(fn func(class float64, kind Kind)) CacheOption {
	return func(o *cacheOptions) {
		if fn != nil {
			o.onMiss = fn
		}
	}
}

// Cache memoizes class masks and their labelings, keyed by class code.
//
// The table starts empty and is filled on first access. Each class has its
// own entry so concurrent callers asking for different classes do not wait
// on each other, and callers asking for the same class compute it once.
type Cache struct {
	source MaskFunc
	opts   cacheOptions

	mu      sync.Mutex
	entries map[float64]*entry

	hits, misses atomic.Int64
}

type entry struct {
	maskOnce  sync.Once
	mask      *raster.Mask
	labelOnce sync.Once
	labeling  *Labeling
}

// NewCache returns an empty cache that derives masks with source.
func NewCache(source MaskFunc, opts ...CacheOption) *Cache {
	o := cacheOptions{conn: Conn8, onMiss: func(float64, Kind) {}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache{
		source:  source,
		opts:    o,
		entries: make(map[float64]*entry),
	}
}

// Connectivity returns the neighbourhood used for labelling.
func (c *Cache) Connectivity() Connectivity {
	return c.opts.conn
}

// Enabled reports whether results are memoized.
func (c *Cache) Enabled() bool {
	return !c.opts.disabled
}

// Mask returns the membership mask for class. Callers must not modify it.
func (c *Cache) Mask(class float64) *raster.Mask {
	if c.opts.disabled {
		return c.computeMask(class)
	}
	e := c.entry(class)
	hit := true
	e.maskOnce.Do(func() {
		hit = false
		e.mask = c.computeMask(class)
	})
	c.count(hit)
	return e.mask
}

// Labeling returns the labelling of the class mask. Callers must not modify it.
func (c *Cache) Labeling(class float64) *Labeling {
	if c.opts.disabled {
		return c.computeLabeling(c.computeMask(class), class)
	}
	e := c.entry(class)
	hit := true
	e.labelOnce.Do(func() {
		hit = false
		e.labeling = c.computeLabeling(c.Mask(class), class)
	})
	c.count(hit)
	return e.labeling
}

// NumPatches returns the number of patches of class.
func (c *Cache) NumPatches(class float64) int {
	return c.Labeling(class).Count
}

// Len returns the number of class entries held.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the number of lookups served from memory and computed.
// Mask and labelling lookups are counted separately, and a labelling miss
// looks the mask up too: the first Labeling of a class records two misses,
// later ones one hit. A disabled cache counts nothing.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *Cache) entry(class float64) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[class]
	if !ok {
		e = &entry{}
		c.entries[class] = e
	}
	return e
}

func (c *Cache) computeMask(class float64) *raster.Mask {
	c.opts.onMiss(class, KindMask)
	return c.source(class)
}

func (c *Cache) computeLabeling(m *raster.Mask, class float64) *Labeling {
	c.opts.onMiss(class, KindLabeling)
	return Label(m, c.opts.conn)
}

func (c *Cache) count(hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
}
