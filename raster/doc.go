// SPDX-License-Identifier: MIT

// Package raster holds the in-memory categorical grid that every landscape
// metric is computed from.
//
// What:
//
//   - Grid wraps a rectangular raster of class codes with its cell
//     geometry (CellWidth, CellHeight) and a nodata sentinel.
//   - Classes lists the sorted, distinct, finite class codes present,
//     excluding nodata, NaN and ±Inf. It is computed once at construction.
//   - Mask is a boolean grid (class membership, validity, single patch).
//
// Why:
//
//   - Land-cover maps: one code per land-use category, nodata outside the
//     study area.
//   - Every component downstream (labelling, edge counting, metrics) needs
//     the same immutable view of the raster.
//
// Complexity:
//
//   - NewGrid:   O(W×H log C) time (C = number of classes), O(W×H) memory.
//   - ClassMask: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadResolution: cell width or height is not a finite positive number.
//
// File I/O is deliberately absent: callers read their raster with whatever
// GIS library they already use and hand the decoded rows to NewGrid or
// FromMatrix.
package raster
