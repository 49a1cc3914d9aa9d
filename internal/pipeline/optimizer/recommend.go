package optimizer

import (
	"math"

	"github.com/serdarekici/inventory-management/internal/domain"
)

// Recommend turns a part's inventory position into a stocking action. The
// rules are evaluated in order and are mutually exclusive:
//
//	position < reorder point          → Order the EOQ
//	position > reorder point + EOQ    → Reduce Stock by the excess
//	otherwise                         → No Action
//
// ChangeValue is the absolute monetary magnitude of the change. The input
// row is copied, never mutated.
func Recommend(params domain.InventoryParams) domain.Recommendation {
	rec := domain.Recommendation{
		InventoryParams: params,
		TotalInv:        params.OnHandQty + params.TotalPOQty,
		Action:          domain.ActionNoAction,
	}

	switch {
	case rec.TotalInv < params.ReorderPoint:
		rec.Action = domain.ActionOrder
		rec.CalculatedQty = params.EOQ
	case rec.TotalInv > params.ReorderPoint+params.EOQ:
		rec.Action = domain.ActionReduce
		rec.CalculatedQty = rec.TotalInv - (params.ReorderPoint + params.EOQ)
	}

	rec.ChangeValue = math.Abs(float64(rec.CalculatedQty) * params.UnitCost)

	return rec
}
