// SPDX-License-Identifier: MIT

package landscape

// PatchMetricsTable builds a patch-level table: one row per patch (indexed by
// PatchID, tagged with its class) and one column per metric. With no names
// every implemented patch metric is included.
//
// All names are validated before anything is computed; see ClassMetric for
// the error set.
func (l *Landscape) PatchMetricsTable(o Options, names ...string) (*Table, error) {
	if len(names) == 0 {
		names = PatchMetricNames()
	}
	kinds := make([]PatchMetric, len(names))
	for j, name := range names {
		m, err := ParsePatchMetric(name)
		if err != nil {
			return nil, landscapeErrorf("PatchMetricsTable", resolveError(name, PatchLevel))
		}
		kinds[j] = m
	}

	t := &Table{Level: PatchLevel, Columns: append([]string(nil), names...)}
	for j, m := range kinds {
		series, err := l.Patch(m, AllClasses, o)
		if err != nil {
			return nil, landscapeErrorf("PatchMetricsTable", err)
		}
		if j == 0 {
			t.Rows = make([]Row, len(series))
			for i, p := range series {
				t.Rows[i] = newRow(p.PatchID, p.Class, len(kinds))
			}
		}
		for i, p := range series {
			t.Rows[i].Values[j] = p.Value
		}
	}
	return t, nil
}

// ClassMetricsTable builds a class-level table: one row per class (sorted)
// and one column per metric. With no names every implemented class metric
// is included.
func (l *Landscape) ClassMetricsTable(o Options, names ...string) (*Table, error) {
	if len(names) == 0 {
		names = ClassMetricNames()
	}
	metrics, err := lookupAll(names, ClassLevel)
	if err != nil {
		return nil, landscapeErrorf("ClassMetricsTable", err)
	}

	classes := l.grid.Classes()
	t := &Table{Level: ClassLevel, Columns: append([]string(nil), names...), Rows: make([]Row, len(classes))}
	for i, c := range classes {
		t.Rows[i] = newRow(-1, c, len(metrics))
		for j, m := range metrics {
			v, err := m.fn(l, Class(c), o)
			if err != nil {
				return nil, landscapeErrorf("ClassMetricsTable", err)
			}
			t.Rows[i].Values[j] = v
		}
	}
	return t, nil
}

// LandscapeMetricsTable builds a single-row landscape-level table with one
// column per metric. With no names every implemented landscape metric is
// included.
func (l *Landscape) LandscapeMetricsTable(o Options, names ...string) (*Table, error) {
	if len(names) == 0 {
		names = LandscapeMetricNames()
	}
	metrics, err := lookupAll(names, LandscapeLevel)
	if err != nil {
		return nil, landscapeErrorf("LandscapeMetricsTable", err)
	}

	row := landscapeRow(len(metrics))
	for j, m := range metrics {
		v, err := m.fn(l, AllClasses, o)
		if err != nil {
			return nil, landscapeErrorf("LandscapeMetricsTable", err)
		}
		row.Values[j] = v
	}
	return &Table{Level: LandscapeLevel, Columns: append([]string(nil), names...), Rows: []Row{row}}, nil
}

func lookupAll(names []string, level Level) ([]scalarMetric, error) {
	out := make([]scalarMetric, len(names))
	for j, name := range names {
		m, err := lookupScalar(name, level)
		if err != nil {
			return nil, err
		}
		out[j] = m
	}
	return out, nil
}
