package optimizer

import (
	"math"
	"sort"

	"github.com/serdarekici/inventory-management/internal/domain"
)

// ValueRow is one (part, value contribution) input row. A part may appear
// in any number of rows; contributions are summed before ranking.
type ValueRow struct {
	PartNum string
	Value   float64
}

// ABCThresholds are the cumulative-percentage boundaries of the A and B
// categories. Anything beyond BCutoffPct is C.
type ABCThresholds struct {
	ACutoffPct float64
	BCutoffPct float64
}

// DefaultABCThresholds returns the standard 75/95 Pareto boundaries.
func DefaultABCThresholds() ABCThresholds {
	return ABCThresholds{ACutoffPct: 75.0, BCutoffPct: 95.0}
}

// ClassifyValue ranks parts by aggregated value contribution and assigns
// A/B/C categories by cumulative share of the grand total. Ranking ties are
// broken by first appearance in the input, then by PartNum, so the result
// is deterministic for a given input. Every part appears exactly once in
// the output even when duplicated in the input.
func ClassifyValue(rows []ValueRow, thresholds ABCThresholds) []domain.ValueSegment {
	type partValue struct {
		partNum  string
		value    float64
		firstIdx int
	}

	agg := make(map[string]*partValue, len(rows))
	order := make([]*partValue, 0, len(rows))
	for i, row := range rows {
		v := row.Value
		if math.IsNaN(v) {
			v = 0
		}
		if pv, ok := agg[row.PartNum]; ok {
			pv.value += v
			continue
		}
		pv := &partValue{partNum: row.PartNum, value: v, firstIdx: i}
		agg[row.PartNum] = pv
		order = append(order, pv)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].value != order[j].value {
			return order[i].value > order[j].value
		}
		if order[i].firstIdx != order[j].firstIdx {
			return order[i].firstIdx < order[j].firstIdx
		}
		return order[i].partNum < order[j].partNum
	})

	var total float64
	for _, pv := range order {
		total += pv.value
	}
	if total == 0 {
		// Keep the cumulative share defined when nothing was sold.
		total = 1
	}

	segments := make([]domain.ValueSegment, 0, len(order))
	var running float64
	for _, pv := range order {
		running += pv.value
		cumPct := 100.0 * running / total

		category := "C"
		switch {
		case cumPct <= thresholds.ACutoffPct:
			category = "A"
		case cumPct <= thresholds.BCutoffPct:
			category = "B"
		}

		segments = append(segments, domain.ValueSegment{
			PartNum:       pv.partNum,
			TotalValue:    pv.value,
			CumulativePct: cumPct,
			Category:      category,
		})
	}

	return segments
}
