// SPDX-License-Identifier: MIT

// Package geom measures areas and edge lengths on raster masks and carries
// the FRAGSTATS minimum-perimeter shape formula.
//
// Edges are counted in cell units and split by orientation:
//
//   - row edges separate two vertically adjacent cells; each is one cell
//     width long.
//   - column edges separate two horizontally adjacent cells; each is one
//     cell height long.
//
// A lone cell therefore has 2 row edges and 2 column edges, a perimeter of
// 2·CellWidth + 2·CellHeight.
//
// Boundary policy:
//
//   - Perimeter and PerimeterCells always treat the outside of the mask as
//     absent, so every side of a patch touching the border counts.
//   - ClassEdgeCells and LandscapeEdgeCells take countBoundary; when false,
//     sides facing the grid border or a nodata cell are dropped and only
//     sides separating two valid, different classes remain.
package geom
