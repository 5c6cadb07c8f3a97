// SPDX-License-Identifier: MIT

package landscape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landstats/landscape"
	"github.com/katalvlaran/landstats/raster"
)

func TestMetricNames(t *testing.T) {
	assert.Equal(t,
		[]string{"area", "perimeter", "perimeter_area_ratio", "shape_index", "fractal_dimension"},
		landscape.PatchMetricNames())

	class := landscape.ClassMetricNames()
	land := landscape.LandscapeMetricNames()
	// 8 base metrics plus 4 distributed patch metrics × 6 reducers.
	assert.Len(t, class, 32)
	assert.Len(t, land, 31)
	assert.Contains(t, class, "proportion_of_landscape")
	assert.NotContains(t, land, "proportion_of_landscape")
	assert.Contains(t, land, "fractal_dimension_cv")
	assert.Contains(t, class, "shape_index_am")
}

func TestPatchMetricsTable(t *testing.T) {
	l := ringLandscape(t, raster.Square(10))
	tbl, err := l.PatchMetricsTable(landscape.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, landscape.PatchLevel, tbl.Level)
	assert.Equal(t, "patch_id", tbl.Level.IndexName())
	assert.Equal(t, landscape.PatchMetricNames(), tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, 0, tbl.Rows[0].PatchID)
	assert.Equal(t, 1, tbl.Rows[1].PatchID)
	assert.Equal(t, []float64{1, 2}, tbl.Classes())

	area, err := tbl.Column("area")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.07, 0.01}, area, eps)

	perim, err := tbl.Column("perimeter")
	require.NoError(t, err)
	assert.Equal(t, []float64{160, 40}, perim)
}

func TestPatchMetricsTable_Subset(t *testing.T) {
	l := ringLandscape(t, raster.Square(10))
	tbl, err := l.PatchMetricsTable(landscape.Options{}, "shape_index", "area")
	require.NoError(t, err)

	assert.Equal(t, []string{"shape_index", "area"}, tbl.Columns)
	assert.Equal(t, []float64{16.0 / 12.0, 700}, tbl.Rows[0].Values)
}

func TestClassMetricsTable(t *testing.T) {
	l := ringLandscape(t, raster.Square(10))
	tbl, err := l.ClassMetricsTable(landscape.DefaultOptions(), "proportion_of_landscape", "number_of_patches", "total_edge")
	require.NoError(t, err)

	assert.Equal(t, landscape.ClassLevel, tbl.Level)
	assert.Equal(t, "class_val", tbl.Level.IndexName())
	assert.Equal(t, []float64{1, 2}, tbl.Classes())
	assert.InDeltaSlice(t, []float64{87.5, 1, 40}, tbl.Rows[0].Values, eps)
	assert.InDeltaSlice(t, []float64{12.5, 1, 40}, tbl.Rows[1].Values, eps)
	assert.Equal(t, -1, tbl.Rows[0].PatchID)
}

func TestClassMetricsTable_AllColumns(t *testing.T) {
	l := mixedLandscape(t)
	tbl, err := l.ClassMetricsTable(landscape.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, landscape.ClassMetricNames(), tbl.Columns)
	assert.Len(t, tbl.Rows, 3)

	byClass, err := l.ByClass("edge_density", landscape.DefaultOptions())
	require.NoError(t, err)
	col, err := tbl.Column("edge_density")
	require.NoError(t, err)
	assert.Equal(t, byClass.Values(), col)
}

func TestLandscapeMetricsTable(t *testing.T) {
	l := ringLandscape(t, raster.Square(10))
	tbl, err := l.LandscapeMetricsTable(landscape.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, landscape.LandscapeLevel, tbl.Level)
	assert.Empty(t, tbl.Level.IndexName())
	require.Len(t, tbl.Rows, 1)
	assert.True(t, math.IsNaN(tbl.Rows[0].Class))
	assert.Equal(t, -1, tbl.Rows[0].PatchID)

	ta, err := tbl.Column("total_area")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.08}, ta, eps)

	np, err := tbl.Column("number_of_patches")
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, np)

	_, err = tbl.Column("proportion_of_landscape")
	assert.ErrorIs(t, err, landscape.ErrUnknownMetric)
}

func TestMetricErrors(t *testing.T) {
	l := ringLandscape(t, raster.Square(10))
	o := landscape.DefaultOptions()

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"unknown patch", func() error {
			_, err := l.PatchMetricsTable(o, "area", "bogus")
			return err
		}, landscape.ErrUnknownMetric},
		{"class metric in patch table", func() error {
			_, err := l.PatchMetricsTable(o, "total_area")
			return err
		}, landscape.ErrUnsupportedLevel},
		{"patch metric in class table", func() error {
			_, err := l.ClassMetricsTable(o, "perimeter")
			return err
		}, landscape.ErrUnsupportedLevel},
		{"class-only in landscape table", func() error {
			_, err := l.LandscapeMetricsTable(o, "proportion_of_landscape")
			return err
		}, landscape.ErrUnsupportedLevel},
		{"landscape-only for a class", func() error {
			_, err := l.ClassMetric("contagion", landscape.Class(1), o)
			return err
		}, landscape.ErrUnsupportedLevel},
		{"unknown scalar", func() error {
			_, err := l.ClassMetric("nope", landscape.AllClasses, o)
			return err
		}, landscape.ErrUnknownMetric},
		{"unknown ByClass", func() error {
			_, err := l.ByClass("nope", o)
			return err
		}, landscape.ErrUnknownMetric},
		{"nearest neighbour", func() error {
			_, err := l.PatchMetricsTable(o, "euclidean_nearest_neighbor")
			return err
		}, landscape.ErrNotImplemented},
		{"proximity_mn", func() error {
			_, err := l.ClassMetricsTable(o, "proximity_mn")
			return err
		}, landscape.ErrNotImplemented},
		{"interspersion", func() error {
			_, err := l.ClassMetric("interspersion_juxtaposition_index", landscape.Class(1), o)
			return err
		}, landscape.ErrNotImplemented},
		{"contagion", func() error {
			_, err := l.LandscapeMetricsTable(o, "contagion")
			return err
		}, landscape.ErrNotImplemented},
		{"shannon", func() error {
			_, err := l.ClassMetric("shannon_diversity_index", landscape.AllClasses, o)
			return err
		}, landscape.ErrNotImplemented},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.call(), tc.want)
		})
	}
}

func TestUnimplementedMethods(t *testing.T) {
	l := ringLandscape(t, raster.Square(10))
	o := landscape.DefaultOptions()

	_, err := l.ContiguityIndex(landscape.AllClasses)
	assert.ErrorIs(t, err, landscape.ErrNotImplemented)
	_, err = l.EuclideanNearestNeighbor(landscape.Class(1))
	assert.ErrorIs(t, err, landscape.ErrNotImplemented)
	_, err = l.Proximity(landscape.Class(1))
	assert.ErrorIs(t, err, landscape.ErrNotImplemented)
	_, err = l.InterspersionJuxtapositionIndex(landscape.Class(1), o)
	assert.ErrorIs(t, err, landscape.ErrNotImplemented)
	_, err = l.Contagion(o)
	assert.ErrorIs(t, err, landscape.ErrNotImplemented)
	_, err = l.ShannonDiversityIndex()
	assert.ErrorIs(t, err, landscape.ErrNotImplemented)
}

func TestParsePatchMetric(t *testing.T) {
	for _, m := range landscape.PatchMetrics() {
		got, err := landscape.ParsePatchMetric(m.Name())
		require.NoError(t, err)
		assert.Equal(t, m, got)
		assert.Equal(t, m.Name(), m.String())
	}
	_, err := landscape.ParsePatchMetric("area_mn")
	assert.ErrorIs(t, err, landscape.ErrUnknownMetric)
	assert.Equal(t, "PatchMetric(9)", landscape.PatchMetric(9).Name())
}
