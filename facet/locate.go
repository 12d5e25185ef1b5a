package facet

import (
	"fmt"

	"github.com/relias08/ggplot2/data"
)

// Locate assigns every record of d to its panels. The result has one
// entry per record holding the panel IDs the record is shown in: the
// panel matching its row and column values, plus, with margins enabled,
// the margin panels matching only its column values, only its row
// values, and the grand margin — up to four IDs per record.
//
// A record whose value combination does not appear in the layout gets
// no assignment. This is deliberate: absent combinations produce empty
// panels, not errors. A faceting variable missing from d entirely is a
// configuration error.
func (l *Layout) Locate(d data.Source) ([][]int, error) {
	for _, v := range append(append([]string{}, l.RowVars...), l.ColVars...) {
		if d.Len() > 0 {
			if _, ok := d.Value(v, 0); !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, v)
			}
		}
	}

	out := make([][]int, d.Len())
	for i := 0; i < d.Len(); i++ {
		rt, ok := l.rowTupleOf(d, i)
		if !ok {
			continue
		}
		ct, ok := l.colTupleOf(d, i)
		if !ok {
			continue
		}
		id, ok := l.realByKey[tupleKey(rt)+"\x1e"+tupleKey(ct)]
		if !ok {
			// Value combination unknown to the layout: dropped.
			continue
		}
		ids := []int{id}
		if mid, ok := l.marginRowByCol[tupleKey(ct)]; ok {
			ids = append(ids, mid)
		}
		if mid, ok := l.marginColByRow[tupleKey(rt)]; ok {
			ids = append(ids, mid)
		}
		if l.grandID != 0 {
			ids = append(ids, l.grandID)
		}
		out[i] = ids
	}
	return out, nil
}
