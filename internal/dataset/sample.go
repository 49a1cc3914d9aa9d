package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/serdarekici/inventory-management/internal/domain"
)

// SampleConfig controls the synthetic data generator. The generator is
// fully deterministic for a given seed and clock, so regenerated fixtures
// stay diffable.
type SampleConfig struct {
	Parts  int
	Months int
	Seed   int64
	Now    func() time.Time
}

// DefaultSampleConfig mirrors the standard demo dataset: 200 parts over a
// 36 month history.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{Parts: 200, Months: 36, Seed: 7}
}

// GenerateParts builds a synthetic part catalog.
func GenerateParts(cfg SampleConfig) []domain.Part {
	rng := rand.New(rand.NewSource(cfg.Seed))

	parts := make([]domain.Part, 0, cfg.Parts)
	for i := 0; i < cfg.Parts; i++ {
		unitCost := math.Round((5+rng.Float64()*495)*100) / 100
		parts = append(parts, domain.Part{
			PartNum:      fmt.Sprintf("SP-%d", 10000+i),
			Description:  fmt.Sprintf("Sample Part %d", i),
			OnHandQty:    rng.Intn(50),
			UnitCost:     unitCost,
			LeadTimeDays: 7 + rng.Intn(113),
			MinOrderQty:  rng.Intn(10),
			TotalPOQty:   rng.Intn(20),
		})
	}
	return parts
}

// GenerateDemandHistory builds one demand row per part per month across the
// trailing window ending at the current month. Cheap parts move faster than
// expensive ones, and roughly a third of the months are zero-demand so the
// variability classifier has something to chew on.
func GenerateDemandHistory(parts []domain.Part, cfg SampleConfig) []domain.DemandObservation {
	rng := rand.New(rand.NewSource(cfg.Seed))
	now := time.Now()
	if cfg.Now != nil {
		now = cfg.Now()
	}

	months := cfg.Months
	if months < 1 {
		months = 1
	}

	// Month-end dates for the window, oldest first.
	monthEnds := make([]time.Time, months)
	for i := 0; i < months; i++ {
		offset := months - 1 - i
		monthEnds[i] = time.Date(now.Year(), now.Month()-time.Month(offset)+1, 0, 0, 0, 0, 0, time.UTC)
	}

	observations := make([]domain.DemandObservation, 0, len(parts)*months)
	for _, part := range parts {
		lambda := 300.0 / (part.UnitCost + 1.0)
		if lambda < 0.2 {
			lambda = 0.2
		} else if lambda > 10.0 {
			lambda = 10.0
		}

		for _, date := range monthEnds {
			qty := poisson(rng, lambda)
			if rng.Float64() < 0.35 {
				qty = 0
			}
			unitPrice := math.Round(part.UnitCost*(1.2+rng.Float64()*0.8)*100) / 100
			observations = append(observations, domain.DemandObservation{
				PartNum:     part.PartNum,
				Date:        date,
				TotalDemand: qty,
				UnitPrice:   unitPrice,
				TotalValue:  float64(qty) * unitPrice,
			})
		}
	}

	return observations
}

// poisson draws a Poisson variate by Knuth's method; fine for the small
// lambdas used here.
func poisson(rng *rand.Rand, lambda float64) int {
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= l {
			return k
		}
		k++
	}
}

// WriteParts writes a part catalog CSV consumable by LoadParts.
func WriteParts(path string, parts []domain.Part) error {
	headers := []string{"PartNum", "Description", "OnHandQty", "UnitCost", "LeadTimeDays", "MinOrderQty", "TotalPOQty"}
	records := make([][]string, 0, len(parts))
	for _, p := range parts {
		records = append(records, []string{
			p.PartNum,
			p.Description,
			strconv.Itoa(p.OnHandQty),
			formatFloat(p.UnitCost),
			strconv.Itoa(p.LeadTimeDays),
			strconv.Itoa(p.MinOrderQty),
			strconv.Itoa(p.TotalPOQty),
		})
	}
	return writeCSV(path, headers, records)
}

// WriteDemandHistory writes a demand history CSV consumable by
// LoadDemandHistory.
func WriteDemandHistory(path string, observations []domain.DemandObservation) error {
	headers := []string{"PartNum", "Date", "TotalDemand", "UnitPrice", "TotalValue"}
	records := make([][]string, 0, len(observations))
	for _, obs := range observations {
		records = append(records, []string{
			obs.PartNum,
			obs.Date.Format("2006-01-02"),
			strconv.Itoa(obs.TotalDemand),
			formatFloat(obs.UnitPrice),
			formatFloat(obs.TotalValue),
		})
	}
	return writeCSV(path, headers, records)
}
