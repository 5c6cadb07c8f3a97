// SPDX-License-Identifier: MIT

// Package landscape computes FRAGSTATS patch-, class- and landscape-level
// metrics on a raster.Grid.
//
// What:
//
//   - Landscape owns a Grid, the per-class mask/labelling cache and the
//     lazily built patch table (one row per patch, all classes, sorted
//     class order).
//   - Patch-level metrics (area, perimeter, perimeter-area ratio, shape
//     index, fractal dimension) return a PatchSeries.
//   - Class/landscape metrics (total area, proportion of landscape, number
//     of patches, patch density, largest patch index, total edge, edge
//     density, landscape shape index) return a scalar; ByClass evaluates
//     them for every class.
//   - Distribution metrics (area_mn, shape_index_cv, …) apply an
//     aggregate.Reducer to a patch metric, pooling every patch when no
//     class is selected.
//   - PatchMetricsTable, ClassMetricsTable and LandscapeMetricsTable build
//     whole result tables from metric names.
//
// Configuration:
//
//   - ClassFilter: AllClasses (zero value) or Class(code).
//   - Options: Hectares, Percent, CountBoundary; see DefaultOptions.
//   - Construction options: WithoutCache, WithConnectivity.
//
// Errors:
//
//   - ErrNilGrid: New was given a nil grid.
//   - ErrUnknownMetric: a metric name is not recognised.
//   - ErrUnsupportedLevel: a metric exists but not at the requested level.
//   - ErrClassRequired: a class-only metric was asked for every class at once.
//   - ErrNotImplemented: distance and diversity metrics (contiguity,
//     nearest neighbour, proximity, interspersion, contagion, Shannon).
//
// Zero patches is not an error: series are empty and reducers yield NaN.
// A landscape without valid cells has zero area; density and proportion
// metrics then divide by zero and the caller must avoid that case.
//
// Logging is silent until SetLogger is called.
package landscape
