// SPDX-License-Identifier: MIT

package raster

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrBadResolution indicates a non-positive or non-finite cell size.
	ErrBadResolution = errors.New("raster: cell width and height must be finite and > 0")
)
