package dataset

import (
	"path/filepath"

	"github.com/serdarekici/inventory-management/internal/domain"
)

const (
	// InventoryParamsFile is the file name of the params output table.
	InventoryParamsFile = "inventory_params.csv"
	// RecommendationsFile is the file name of the recommendations output table.
	RecommendationsFile = "recommendations.csv"
)

// Tables exposes a directory of pipeline output files as the flat-table
// store the dashboard reads from.
type Tables struct {
	Dir string
}

// NewTables points at a directory holding the two output CSVs.
func NewTables(dir string) *Tables {
	return &Tables{Dir: dir}
}

// InventoryParams loads the params table.
func (t *Tables) InventoryParams() ([]domain.InventoryParams, error) {
	return LoadInventoryParams(filepath.Join(t.Dir, InventoryParamsFile))
}

// Recommendations loads the recommendations table.
func (t *Tables) Recommendations() ([]domain.Recommendation, error) {
	return LoadRecommendations(filepath.Join(t.Dir, RecommendationsFile))
}
