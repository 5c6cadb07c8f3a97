// SPDX-License-Identifier: MIT

package landscape

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("landscape: grid is nil")

	// ErrUnknownMetric indicates a metric name outside the registry.
	ErrUnknownMetric = errors.New("landscape: unknown metric")

	// ErrUnsupportedLevel indicates a known metric requested at a level it
	// does not exist at (e.g. a patch metric in a class table).
	ErrUnsupportedLevel = errors.New("landscape: metric not available at this level")

	// ErrClassRequired indicates a class-only metric called with AllClasses.
	ErrClassRequired = errors.New("landscape: metric requires a class filter")

	// ErrNotImplemented marks metrics that are recognised but intentionally
	// not computed (distance-based and diversity families).
	ErrNotImplemented = errors.New("landscape: metric not implemented")
)

// landscapeErrorf prefixes err with the failing operation name.
func landscapeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
