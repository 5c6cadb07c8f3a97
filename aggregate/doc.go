// SPDX-License-Identifier: MIT

// Package aggregate reduces per-patch metric values to a single class- or
// landscape-level figure.
//
// Reducers and their FRAGSTATS suffixes:
//
//   - Mean             _mn  arithmetic mean
//   - AreaWeightedMean _am  mean weighted by patch area
//   - Median           _md  middle value (mean of the two middles for even n)
//   - Range            _ra  max − min
//   - StdDev           _sd  population standard deviation
//   - CV               _cv  StdDev / Mean, ×100 when percent is set
//
// An empty value set reduces to NaN rather than an error: a class with no
// patches has an undefined distribution, not a failing one.
package aggregate
