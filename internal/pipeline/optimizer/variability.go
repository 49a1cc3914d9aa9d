package optimizer

import (
	"math"
	"sort"
	"time"

	"github.com/serdarekici/inventory-management/internal/domain"
)

// VariabilityConfig holds the settings of the demand-variability classifier.
// Now is an injectable clock anchoring the trailing window; the zero value
// falls back to time.Now.
type VariabilityConfig struct {
	WindowMonths    int
	LowThreshold    float64
	HighThreshold   float64
	MinTransactions int
	Now             func() time.Time
}

// DefaultVariabilityConfig returns the standard 36-month window with the
// 2.0/4.0 vod boundaries and a minimum of 3 transactions.
func DefaultVariabilityConfig() VariabilityConfig {
	return VariabilityConfig{
		WindowMonths:    36,
		LowThreshold:    2.0,
		HighThreshold:   4.0,
		MinTransactions: 3,
	}
}

// monthIndex maps a timestamp to its calendar month ordinal so window
// arithmetic is plain integer math.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// ClassifyVariability computes per-part monthly demand statistics over a
// complete trailing calendar (months absent from the input count as zero
// demand) and classifies each part as L, M or H by coefficient of
// variation. Parts with fewer raw transactions in the window than the
// minimum threshold are forced to H regardless of their vod. Only parts
// with at least one observation inside the window are returned; results
// are sorted by PartNum.
func ClassifyVariability(observations []domain.DemandObservation, cfg VariabilityConfig) []domain.VariabilitySegment {
	months := cfg.WindowMonths
	if months < 1 {
		months = 1
	}
	now := time.Now()
	if cfg.Now != nil {
		now = cfg.Now()
	}

	// The window spans the current calendar month and the months-1 months
	// preceding it.
	endIdx := monthIndex(now)
	startIdx := endIdx - (months - 1)

	buckets := make(map[string][]float64)
	txns := make(map[string]int)
	for _, obs := range observations {
		idx := monthIndex(obs.Date)
		if idx < startIdx || idx > endIdx {
			continue
		}
		monthly, ok := buckets[obs.PartNum]
		if !ok {
			monthly = make([]float64, months)
			buckets[obs.PartNum] = monthly
		}
		monthly[idx-startIdx] += float64(obs.TotalDemand)
		txns[obs.PartNum]++
	}

	partNums := make([]string, 0, len(buckets))
	for partNum := range buckets {
		partNums = append(partNums, partNum)
	}
	sort.Strings(partNums)

	segments := make([]domain.VariabilitySegment, 0, len(partNums))
	for _, partNum := range partNums {
		monthly := buckets[partNum]

		var sum float64
		for _, v := range monthly {
			sum += v
		}
		mean := sum / float64(months)

		// Sample standard deviation (n-1); undefined below two months.
		std := 0.0
		if months >= 2 {
			var sq float64
			for _, v := range monthly {
				d := v - mean
				sq += d * d
			}
			std = math.Sqrt(sq / float64(months-1))
		}

		vod := 0.0
		if mean != 0 {
			vod = std / mean
		}

		sufficient := txns[partNum] >= cfg.MinTransactions

		class := "H"
		switch {
		case !sufficient:
			// Insufficient history is treated as maximally volatile.
		case vod <= cfg.LowThreshold:
			class = "L"
		case vod <= cfg.HighThreshold:
			class = "M"
		}

		segments = append(segments, domain.VariabilitySegment{
			PartNum:           partNum,
			AvgMonthlyDemand:  mean,
			StdMonthlyDemand:  std,
			Vod:               vod,
			Class:             class,
			HasSufficientData: sufficient,
		})
	}

	return segments
}
