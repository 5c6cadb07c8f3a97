// SPDX-License-Identifier: MIT

// Package label finds patches: maximal connected regions of true cells in a
// raster.Mask.
//
// What:
//
//   - Label assigns 1..K to the K connected components of a mask, 0 to
//     background, scanning row-major so labels are deterministic.
//   - Labeling exposes per-label sizes, bounding boxes and single-patch
//     masks, the building blocks of patch area and perimeter.
//   - Cache memoizes class masks and their labelings by class code.
//
// Options:
//
//   - Conn8 (Moore neighbourhood, the FRAGSTATS default) or Conn4.
//
// Complexity:
//
//   - Label:    O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//   - Sizes:    O(W×H).
//   - Bounds:   O(W×H).
package label
