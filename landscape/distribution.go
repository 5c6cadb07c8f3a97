// SPDX-License-Identifier: MIT

package landscape

import (
	"github.com/katalvlaran/landstats/aggregate"
)

// Distribution reduces a patch metric over the selected patches.
//
// With AllClasses every patch of the landscape is pooled into one sample;
// the result is not an average of per-class results. AreaWeightedMean
// weighs each patch by its area in hectares; CV reads Options.Percent. The
// patch metric itself reads o as documented on Patch. An empty selection
// yields NaN.
func (l *Landscape) Distribution(m PatchMetric, r aggregate.Reducer, f ClassFilter, o Options) (float64, error) {
	values, err := l.Patch(m, f, o)
	if err != nil {
		return 0, landscapeErrorf("Distribution", err)
	}
	var weights []float64
	if r.NeedsWeights() {
		weights = l.patchAreas(f, Options{Hectares: true}).Values()
	}
	v, err := aggregate.Reduce(r, values.Values(), weights, o.Percent)
	if err != nil {
		return 0, landscapeErrorf("Distribution", err)
	}
	return v, nil
}

// DistributionName returns the metric name of a patch metric/reducer pair,
// e.g. "shape_index_am".
func DistributionName(m PatchMetric, r aggregate.Reducer) string {
	return m.Name() + r.Suffix()
}
