package domain

// ActionCategoryCount is one cell of the action × category breakdown.
type ActionCategoryCount struct {
	Action   Action `json:"action"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// PortfolioSummary aggregates the output tables for the dashboard landing
// view. ProjectedInventoryValue is the current value plus pending orders
// minus recommended reductions.
type PortfolioSummary struct {
	CurrentInventoryValue   float64               `json:"current_inventory_value"`
	ProjectedInventoryValue float64               `json:"projected_inventory_value"`
	OrdersTotal             float64               `json:"orders_total"`
	ReduceTotal             float64               `json:"reduce_total"`
	CategoryCounts          map[string]int        `json:"category_counts"`
	NineBoxCounts           map[string]int        `json:"nine_box_counts"`
	ActionBreakdown         []ActionCategoryCount `json:"action_breakdown"`
}

// PartDetail is the per-part drill-down: the part's policy params and its
// recommendation when one exists.
type PartDetail struct {
	Params         InventoryParams `json:"params"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}
