// SPDX-License-Identifier: MIT

// Package landstats computes landscape-ecology metrics on categorical
// rasters, following the FRAGSTATS definitions.
//
// A landscape is a grid of class codes (land-cover categories) with a cell
// size and a nodata value. Patches are maximal 8-connected regions of one
// class. Metrics are reported at three levels:
//
//	patch      one value per patch (area, perimeter, shape index, …)
//	class      one value per class (proportion of landscape, edge density, …)
//	landscape  one value for the whole grid
//
// Packages:
//
//	raster/    Grid (class codes + resolution + nodata) and boolean Mask
//	label/     connected-component labelling and the per-class cache
//	geom/      area, perimeter, edge counting and the shape-index minimum
//	aggregate/ distribution reducers (_mn, _am, _md, _ra, _sd, _cv)
//	landscape/ the metric engine, name registry and result tables
//
// Quick start:
//
//	g, _ := raster.NewGrid(codes, raster.Square(30), 0)
//	l, _ := landscape.New(g)
//	tbl, _ := l.ClassMetricsTable(landscape.DefaultOptions())
//
// Reading rasters from disk and plotting are left to the caller.
//
//	go get github.com/katalvlaran/landstats
package landstats
