package domain

import "time"

// Part represents one row of the part catalog.
type Part struct {
	PartNum      string  `json:"part_num"`
	Description  string  `json:"description"`
	OnHandQty    int     `json:"on_hand_qty"`
	UnitCost     float64 `json:"unit_cost"`
	LeadTimeDays int     `json:"lead_time_days"`
	MinOrderQty  int     `json:"min_order_qty"`
	TotalPOQty   int     `json:"total_po_qty"`
}

// DemandObservation is one demand history row for a part. TotalValue is the
// monetary value of the observation; when the input table does not carry it,
// it is derived as TotalDemand × UnitPrice.
type DemandObservation struct {
	PartNum     string    `json:"part_num"`
	Date        time.Time `json:"date"`
	TotalDemand int       `json:"total_demand"`
	UnitPrice   float64   `json:"unit_price"`
	TotalValue  float64   `json:"total_value"`
}

// ValueSegment is the ABC classification result for a part.
type ValueSegment struct {
	PartNum       string  `json:"part_num"`
	TotalValue    float64 `json:"total_value"`
	CumulativePct float64 `json:"cumulative_pct"`
	Category      string  `json:"category"`
}

// VariabilitySegment is the demand-variability (LMH) result for a part.
// Vod is the coefficient of variation of monthly demand over the trailing
// window (std / mean, 0 when the mean is 0).
type VariabilitySegment struct {
	PartNum           string  `json:"part_num"`
	AvgMonthlyDemand  float64 `json:"avg_monthly_demand"`
	StdMonthlyDemand  float64 `json:"std_monthly_demand"`
	Vod               float64 `json:"vod"`
	Class             string  `json:"lmh"`
	HasSufficientData bool    `json:"has_sufficient_data"`
}

// InventoryParams is one row of the inventory_params output table.
// TotalValue here is the current stock value (OnHandQty × UnitCost).
type InventoryParams struct {
	PartNum          string  `json:"part_num"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	LMH              string  `json:"lmh"`
	NineBox          string  `json:"nine_box"`
	Vod              float64 `json:"vod"`
	AvgMonthlyDemand float64 `json:"avg_monthly_demand"`
	StdMonthlyDemand float64 `json:"std_monthly_demand"`
	LeadTimeDays     int     `json:"lead_time_days"`
	SafetyStock      int     `json:"safety_stock"`
	ReorderPoint     int     `json:"reorder_point"`
	EOQ              int     `json:"eoq"`
	OnHandQty        int     `json:"on_hand_qty"`
	TotalPOQty       int     `json:"total_po_qty"`
	MinOrderQty      int     `json:"min_order_qty"`
	UnitCost         float64 `json:"unit_cost"`
	TotalValue       float64 `json:"total_value"`
	ServiceLevel     float64 `json:"service_level"`
}

// Recommendation is one row of the recommendations output table: the part's
// policy params plus the stocking action. ChangeValue is always the absolute
// monetary magnitude of the change; the direction is carried by Action.
type Recommendation struct {
	InventoryParams
	TotalInv      int     `json:"total_inv"`
	Action        Action  `json:"action"`
	CalculatedQty int     `json:"calculated_quantity"`
	ChangeValue   float64 `json:"change_value"`
}
