// SPDX-License-Identifier: MIT

package landscape

// The distance-based and diversity families of FRAGSTATS are recognised by
// name but not computed. Every entry point below fails with
// ErrNotImplemented and never returns a placeholder value.

// unimplementedPatch lists patch-level metrics without an implementation;
// their distribution variants (_mn … _cv) are unimplemented too.
var unimplementedPatch = []string{
	"contiguity_index",
	"euclidean_nearest_neighbor",
	"proximity",
}

// unimplementedClass lists class- and landscape-level metrics without an
// implementation.
var unimplementedClass = []string{
	"interspersion_juxtaposition_index",
}

// unimplementedLandscape lists landscape-only metrics without an implementation.
var unimplementedLandscape = []string{
	"contagion",
	"shannon_diversity_index",
}

// ContiguityIndex always returns ErrNotImplemented.
func (l *Landscape) ContiguityIndex(ClassFilter) (PatchSeries, error) {
	return nil, landscapeErrorf("ContiguityIndex", ErrNotImplemented)
}

// EuclideanNearestNeighbor always returns ErrNotImplemented.
func (l *Landscape) EuclideanNearestNeighbor(ClassFilter) (PatchSeries, error) {
	return nil, landscapeErrorf("EuclideanNearestNeighbor", ErrNotImplemented)
}

// Proximity always returns ErrNotImplemented.
func (l *Landscape) Proximity(ClassFilter) (PatchSeries, error) {
	return nil, landscapeErrorf("Proximity", ErrNotImplemented)
}

// InterspersionJuxtapositionIndex always returns ErrNotImplemented.
func (l *Landscape) InterspersionJuxtapositionIndex(ClassFilter, Options) (float64, error) {
	return 0, landscapeErrorf("InterspersionJuxtapositionIndex", ErrNotImplemented)
}

// Contagion always returns ErrNotImplemented.
func (l *Landscape) Contagion(Options) (float64, error) {
	return 0, landscapeErrorf("Contagion", ErrNotImplemented)
}

// ShannonDiversityIndex always returns ErrNotImplemented.
func (l *Landscape) ShannonDiversityIndex() (float64, error) {
	return 0, landscapeErrorf("ShannonDiversityIndex", ErrNotImplemented)
}
