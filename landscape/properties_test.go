// SPDX-License-Identifier: MIT

package landscape_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/landstats/landscape"
	"github.com/katalvlaran/landstats/raster"
)

// propertyLandscapes returns the fixtures every range property is checked on.
func propertyLandscapes(t *testing.T) map[string]*landscape.Landscape {
	return map[string]*landscape.Landscape{
		"ring":  ringLandscape(t, raster.Square(10)),
		"mixed": mixedLandscape(t),
	}
}

func TestProperties_PatchRanges(t *testing.T) {
	for name, l := range propertyLandscapes(t) {
		t.Run(name, func(t *testing.T) {
			o := landscape.DefaultOptions()
			for _, v := range l.PatchAreas(landscape.AllClasses, o).Values() {
				assert.Positive(t, v)
			}
			for _, v := range l.Perimeters(landscape.AllClasses).Values() {
				assert.Positive(t, v)
			}
			for _, v := range l.ShapeIndex(landscape.AllClasses).Values() {
				assert.GreaterOrEqual(t, v, 1.0)
			}
			for _, v := range l.FractalDimension(landscape.AllClasses).Values() {
				// Compact single cells sit on 1 up to rounding.
				assert.GreaterOrEqual(t, v, 1-eps)
				assert.LessOrEqual(t, v, 2.0)
			}
		})
	}
}

func TestProperties_ClassRanges(t *testing.T) {
	for name, l := range propertyLandscapes(t) {
		t.Run(name, func(t *testing.T) {
			o := landscape.DefaultOptions()
			var plandSum float64
			for _, c := range l.Classes() {
				f := landscape.Class(c)

				assert.GreaterOrEqual(t, l.LandscapeShapeIndex(f), 1.0, "class %v", c)

				pland, err := l.ProportionOfLandscape(f, o)
				require.NoError(t, err)
				assert.Positive(t, pland)
				assert.LessOrEqual(t, pland, 100.0)
				plandSum += pland

				lpi := l.LargestPatchIndex(f, o)
				assert.Positive(t, lpi)
				assert.LessOrEqual(t, lpi, 100.0)
				ha := landscape.Options{Hectares: true}
				assert.LessOrEqual(t, lpi/100*l.TotalArea(landscape.AllClasses, ha), l.TotalArea(f, ha)+eps)

				assert.Positive(t, l.PatchDensity(f, o))
			}
			// Landscape area only counts valid cells, so proportions always
			// cover it completely.
			assert.InDelta(t, 100, plandSum, 1e-6)
		})
	}
}

func TestProperties_BoundaryExclusion(t *testing.T) {
	for name, l := range propertyLandscapes(t) {
		t.Run(name, func(t *testing.T) {
			without := landscape.Options{CountBoundary: false}
			with := landscape.Options{CountBoundary: true}
			for _, c := range l.Classes() {
				f := landscape.Class(c)
				assert.LessOrEqual(t, l.TotalEdge(f, without), l.TotalEdge(f, with), "class %v", c)
			}
			assert.LessOrEqual(t, l.TotalEdge(landscape.AllClasses, without), l.TotalEdge(landscape.AllClasses, with))
		})
	}

	// The ring centre never touches the border or nodata: both agree. The
	// ring itself does: they differ.
	l := ringLandscape(t, raster.Square(10))
	assert.Equal(t,
		l.TotalEdge(landscape.Class(2), landscape.Options{}),
		l.TotalEdge(landscape.Class(2), landscape.Options{CountBoundary: true}))
	assert.Less(t,
		l.TotalEdge(landscape.Class(1), landscape.Options{}),
		l.TotalEdge(landscape.Class(1), landscape.Options{CountBoundary: true}))
}

func TestProperties_AggregatorConsistency(t *testing.T) {
	l := mixedLandscape(t)
	o := landscape.DefaultOptions()
	for _, m := range []string{"area", "perimeter_area_ratio", "shape_index"} {
		t.Run(m, func(t *testing.T) {
			kind, err := landscape.ParsePatchMetric(m)
			require.NoError(t, err)
			series, err := l.Patch(kind, landscape.AllClasses, o)
			require.NoError(t, err)
			vals := series.Values()

			ra, err := l.ClassMetric(m+"_ra", landscape.AllClasses, o)
			require.NoError(t, err)
			sd, err := l.ClassMetric(m+"_sd", landscape.AllClasses, o)
			require.NoError(t, err)
			mn, err := l.ClassMetric(m+"_mn", landscape.AllClasses, o)
			require.NoError(t, err)
			cv, err := l.ClassMetric(m+"_cv", landscape.AllClasses, o)
			require.NoError(t, err)

			assert.InDelta(t, floats.Max(vals)-floats.Min(vals), ra, eps)
			assert.GreaterOrEqual(t, ra, 0.0)
			assert.GreaterOrEqual(t, sd, 0.0)
			assert.InDelta(t, sd/mn*100, cv, 1e-9*cv+eps)
		})
	}
}

// TestDistribution_Ring checks every reducer on the two ring patches
// (0.07 ha and 0.01 ha).
func TestDistribution_Ring(t *testing.T) {
	l := ringLandscape(t, raster.Square(10))
	o := landscape.DefaultOptions()
	cases := map[string]float64{
		"area_mn": 0.04,
		"area_am": (0.07*0.07 + 0.01*0.01) / 0.08,
		"area_md": 0.04,
		"area_ra": 0.06,
		"area_sd": 0.03,
		"area_cv": 75,
	}
	for name, want := range cases {
		got, err := l.ClassMetric(name, landscape.AllClasses, o)
		require.NoError(t, err, name)
		assert.InDelta(t, want, got, 1e-9, name)
	}

	// A class filter reduces that class only.
	got, err := l.ClassMetric("area_mn", landscape.Class(2), o)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, got, eps)
}

// TestDistribution_PooledNotAveraged pins that AllClasses pools the patches
// instead of averaging per-class means.
func TestDistribution_PooledNotAveraged(t *testing.T) {
	g, err := raster.NewGrid([][]int{
		{1, 0, 2, 2},
		{0, 0, 2, 2},
		{1, 0, 0, 0},
	}, raster.Square(100), 0)
	require.NoError(t, err)
	l, err := landscape.New(g)
	require.NoError(t, err)
	o := landscape.DefaultOptions()

	// Class 1: two single-cell patches of 1 ha. Class 2: one 4 ha patch.
	pooled, err := l.ClassMetric("area_mn", landscape.AllClasses, o)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, pooled, eps)

	byClass, err := l.ByClass("area_mn", o)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 4}, byClass.Values(), eps)
	assert.NotEqual(t, floats.Sum(byClass.Values())/2, pooled)
}

func TestIdempotence(t *testing.T) {
	l := mixedLandscape(t)
	o := landscape.DefaultOptions()
	for _, build := range []func() (*landscape.Table, error){
		func() (*landscape.Table, error) { return l.PatchMetricsTable(o) },
		func() (*landscape.Table, error) { return l.ClassMetricsTable(o) },
		func() (*landscape.Table, error) { return l.LandscapeMetricsTable(o) },
	} {
		first, err := build()
		require.NoError(t, err)
		second, err := build()
		require.NoError(t, err)
		if diff := cmp.Diff(first, second, cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("second evaluation differs (-first +second):\n%s", diff)
		}
	}
}

func TestNonMutation(t *testing.T) {
	l := ringLandscape(t, raster.Square(10))
	o := landscape.DefaultOptions()

	first := l.PatchAreas(landscape.AllClasses, o)
	want := append(landscape.PatchSeries(nil), first...)
	for i := range first {
		first[i].Value = -1
		first[i].Class = 99
	}
	vals := l.PatchAreas(landscape.AllClasses, o).Values()
	vals[0] = -1

	assert.Equal(t, want, l.PatchAreas(landscape.AllClasses, o))

	classes := l.Classes()
	classes[0] = 42
	assert.Equal(t, []float64{1, 2}, l.Classes())
}

func TestWithoutCache_SameResults(t *testing.T) {
	cached := mixedLandscape(t)
	uncached := mixedLandscape(t, landscape.WithoutCache())
	o := landscape.DefaultOptions()

	type tableFn func(*landscape.Landscape) (*landscape.Table, error)
	for name, fn := range map[string]tableFn{
		"patch":     func(l *landscape.Landscape) (*landscape.Table, error) { return l.PatchMetricsTable(o) },
		"class":     func(l *landscape.Landscape) (*landscape.Table, error) { return l.ClassMetricsTable(o) },
		"landscape": func(l *landscape.Landscape) (*landscape.Table, error) { return l.LandscapeMetricsTable(o) },
	} {
		t.Run(name, func(t *testing.T) {
			want, err := fn(cached)
			require.NoError(t, err)
			got, err := fn(uncached)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("uncached table differs (-cached +uncached):\n%s", diff)
			}
		})
	}

	hits, misses := uncached.CacheStats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}

func TestConcurrentEvaluation(t *testing.T) {
	l := mixedLandscape(t)
	o := landscape.DefaultOptions()
	want, err := mixedLandscape(t).ClassMetricsTable(o)
	require.NoError(t, err)

	const workers = 8
	results := make([]*landscape.Table, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tbl, err := l.ClassMetricsTable(o)
			if err == nil {
				results[i] = tbl
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.NotNil(t, got, "worker %d", i)
		if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("worker %d differs:\n%s", i, diff)
		}
	}
}
