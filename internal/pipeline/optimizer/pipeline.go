package optimizer

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/serdarekici/inventory-management/internal/domain"
)

// Config collects every tunable of a pipeline run.
type Config struct {
	ABC                  ABCThresholds
	Variability          VariabilityConfig
	ServiceLevels        map[string]float64
	FallbackServiceLevel float64
	OrderingCost         float64
	HoldingRate          float64

	// Workers bounds the per-part fan-out; defaults to GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the standard tuning for every knob.
func DefaultConfig() Config {
	policy := DefaultPolicyTable()
	return Config{
		ABC:                  DefaultABCThresholds(),
		Variability:          DefaultVariabilityConfig(),
		ServiceLevels:        policy.levels,
		FallbackServiceLevel: policy.fallback,
		OrderingCost:         50.0,
		HoldingRate:          0.2,
	}
}

// Result holds the two output tables of a run, ordered like the input part
// catalog.
type Result struct {
	Params          []domain.InventoryParams
	Recommendations []domain.Recommendation
}

// Pipeline runs the full classification-and-policy computation: ABC and
// variability classification over the demand history, nine-box
// cross-segmentation, policy parameters, and a stocking recommendation per
// part.
type Pipeline struct {
	config Config
	policy *PolicyTable
	calc   *Calculator
}

// NewPipeline creates a pipeline from its configuration.
func NewPipeline(cfg Config) *Pipeline {
	if cfg.Workers < 1 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{
		config: cfg,
		policy: NewPolicyTable(cfg.ServiceLevels, cfg.FallbackServiceLevel),
		calc:   NewCalculator(cfg.OrderingCost, cfg.HoldingRate),
	}
}

// Run executes one batch over the part catalog and its demand history.
// The cross-part ranking phases run first; per-part work then fans out
// across workers writing to disjoint output slots, so the result is
// deterministic for a given input. Parts with a structurally invalid
// record (non-positive unit cost, negative quantities) fail the run with
// an error naming the part.
func (p *Pipeline) Run(ctx context.Context, parts []domain.Part, history []domain.DemandObservation) (*Result, error) {
	for _, part := range parts {
		if err := validatePart(part); err != nil {
			return nil, err
		}
	}

	// Phase 1: whole-catalog ranking and windowed statistics. These are the
	// only cross-part dependencies; everything after reads from the lookup
	// structures without coordination.
	valueRows := make([]ValueRow, 0, len(history))
	for _, obs := range history {
		valueRows = append(valueRows, ValueRow{PartNum: obs.PartNum, Value: obs.TotalValue})
	}
	values := ClassifyValue(valueRows, p.config.ABC)
	variability := ClassifyVariability(history, p.config.Variability)

	grid := NewSegmentGrid(values, variability)
	statsByPart := make(map[string]domain.VariabilitySegment, len(variability))
	for _, seg := range variability {
		statsByPart[seg.PartNum] = seg
	}

	// Phase 2: embarrassingly parallel per-part computation.
	result := &Result{
		Params:          make([]domain.InventoryParams, len(parts)),
		Recommendations: make([]domain.Recommendation, len(parts)),
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Workers)
	for i, part := range parts {
		g.Go(func() error {
			params := p.computeParams(part, grid, statsByPart)
			result.Params[i] = params
			result.Recommendations[i] = Recommend(params)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// computeParams derives one inventory_params row from a part's segment and
// trailing demand statistics.
func (p *Pipeline) computeParams(part domain.Part, grid *SegmentGrid, stats map[string]domain.VariabilitySegment) domain.InventoryParams {
	segment := grid.Segment(part.PartNum)
	st := stats[part.PartNum] // zero stats for parts never sold in the window

	serviceLevel := p.policy.ServiceLevel(segment.Code)
	z := p.policy.Z(segment.Code)

	leadTime := float64(part.LeadTimeDays)
	safetyStock := p.calc.SafetyStock(st.StdMonthlyDemand, leadTime, z)
	reorderPoint := p.calc.ReorderPoint(st.AvgMonthlyDemand, leadTime, safetyStock)
	eoq := p.calc.EOQ(st.AvgMonthlyDemand*12.0, part.UnitCost)

	return domain.InventoryParams{
		PartNum:          part.PartNum,
		Description:      part.Description,
		Category:         segment.Category,
		LMH:              segment.Class,
		NineBox:          segment.Code,
		Vod:              st.Vod,
		AvgMonthlyDemand: st.AvgMonthlyDemand,
		StdMonthlyDemand: st.StdMonthlyDemand,
		LeadTimeDays:     part.LeadTimeDays,
		SafetyStock:      safetyStock,
		ReorderPoint:     reorderPoint,
		EOQ:              eoq,
		OnHandQty:        part.OnHandQty,
		TotalPOQty:       part.TotalPOQty,
		MinOrderQty:      part.MinOrderQty,
		UnitCost:         part.UnitCost,
		TotalValue:       float64(part.OnHandQty) * part.UnitCost,
		ServiceLevel:     serviceLevel,
	}
}

func validatePart(part domain.Part) error {
	switch {
	case part.PartNum == "":
		return fmt.Errorf("part catalog row has empty PartNum")
	case part.UnitCost <= 0:
		return fmt.Errorf("part %s: unit cost must be positive, got %v", part.PartNum, part.UnitCost)
	case part.OnHandQty < 0:
		return fmt.Errorf("part %s: on-hand quantity must not be negative, got %d", part.PartNum, part.OnHandQty)
	case part.TotalPOQty < 0:
		return fmt.Errorf("part %s: open PO quantity must not be negative, got %d", part.PartNum, part.TotalPOQty)
	case part.LeadTimeDays < 0:
		return fmt.Errorf("part %s: lead time must not be negative, got %d", part.PartNum, part.LeadTimeDays)
	case part.MinOrderQty < 0:
		return fmt.Errorf("part %s: minimum order quantity must not be negative, got %d", part.PartNum, part.MinOrderQty)
	}
	return nil
}
