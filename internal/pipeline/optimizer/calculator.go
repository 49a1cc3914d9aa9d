package optimizer

import "math"

// Calculator computes stocking policy quantities for a single part. All
// results are integer unit counts, rounded half away from zero; a non-finite
// or negative intermediate clamps to 0 so numeric corruption never reaches
// the output tables.
type Calculator struct {
	orderingCost float64
	holdingRate  float64
}

// NewCalculator creates a calculator with the given fixed per-order cost
// and annual holding rate (fraction of unit cost).
func NewCalculator(orderingCost, holdingRate float64) *Calculator {
	return &Calculator{orderingCost: orderingCost, holdingRate: holdingRate}
}

// leadTimeMonths converts lead time days to months by dividing by 30. The
// downstream formulas are calibrated to this approximation; do not replace
// it with calendar-accurate math.
func leadTimeMonths(leadTimeDays float64) float64 {
	return math.Max(leadTimeDays/30.0, 0)
}

// clampUnits rounds to whole units, mapping non-finite or negative values
// to 0.
func clampUnits(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return int(math.Round(v))
}

// SafetyStock is z × monthly demand std × sqrt(lead time in months).
func (c *Calculator) SafetyStock(stdMonthly, leadTimeDays, z float64) int {
	ss := z * stdMonthly * math.Sqrt(leadTimeMonths(leadTimeDays))
	return clampUnits(ss)
}

// ReorderPoint is expected demand over the lead time plus safety stock.
func (c *Calculator) ReorderPoint(avgMonthly, leadTimeDays float64, safetyStock int) int {
	rop := avgMonthly*leadTimeMonths(leadTimeDays) + float64(safetyStock)
	return clampUnits(rop)
}

// EOQ is the economic order quantity sqrt(2·D·S / H) with H = unit cost ×
// holding rate. Zero when any of demand, ordering cost or holding cost is
// not positive.
func (c *Calculator) EOQ(annualDemand, unitCost float64) int {
	h := unitCost * c.holdingRate
	if h <= 0 || annualDemand <= 0 || c.orderingCost <= 0 {
		return 0
	}
	q := math.Sqrt(2 * annualDemand * c.orderingCost / h)
	return clampUnits(q)
}
