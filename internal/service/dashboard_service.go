package service

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/serdarekici/inventory-management/internal/cache"
	"github.com/serdarekici/inventory-management/internal/domain"
)

// ErrPartNotFound is returned when a lookup references a PartNum absent
// from the output tables. Unknown keys are an integration error and are
// surfaced, never masked.
var ErrPartNotFound = errors.New("part not found")

// TableRepository abstracts where the pipeline's output tables live.
type TableRepository interface {
	InventoryParams() ([]domain.InventoryParams, error)
	Recommendations() ([]domain.Recommendation, error)
}

// DashboardService serves read-only views over the pipeline output tables.
type DashboardService struct {
	repo  TableRepository
	cache cache.DashboardCache
}

// RecommendationFilter narrows the recommendation listing.
type RecommendationFilter struct {
	Action   string
	Category string
	Limit    int
}

// NewDashboardService wires the service; a nil cache degrades to noop.
func NewDashboardService(repo TableRepository, cacheImpl cache.DashboardCache) *DashboardService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopDashboardCache()
	}
	return &DashboardService{repo: repo, cache: cacheImpl}
}

// Summary aggregates both output tables into the portfolio summary,
// cache-aside.
func (s *DashboardService) Summary(ctx context.Context) (*domain.PortfolioSummary, error) {
	if summary, ok, err := s.cache.GetSummary(ctx); err == nil && ok {
		return summary, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("dashboard: cache get summary failed")
	}

	params, err := s.repo.InventoryParams()
	if err != nil {
		return nil, err
	}
	recommendations, err := s.repo.Recommendations()
	if err != nil {
		return nil, err
	}

	summary := buildSummary(params, recommendations)

	if err := s.cache.SetSummary(ctx, summary); err != nil {
		log.Warn().Err(err).Msg("dashboard: cache set summary failed")
	}

	return summary, nil
}

func buildSummary(params []domain.InventoryParams, recommendations []domain.Recommendation) *domain.PortfolioSummary {
	summary := &domain.PortfolioSummary{
		CategoryCounts: make(map[string]int),
		NineBoxCounts:  make(map[string]int),
	}

	for _, p := range params {
		summary.CurrentInventoryValue += float64(p.OnHandQty) * p.UnitCost
		summary.CategoryCounts[p.Category]++
		summary.NineBoxCounts[p.NineBox]++
	}

	breakdown := make(map[domain.ActionCategoryCount]int)
	for _, r := range recommendations {
		switch r.Action {
		case domain.ActionOrder:
			summary.OrdersTotal += r.ChangeValue
		case domain.ActionReduce:
			summary.ReduceTotal += r.ChangeValue
		}
		breakdown[domain.ActionCategoryCount{Action: r.Action, Category: r.Category}]++
	}
	summary.ProjectedInventoryValue = summary.CurrentInventoryValue + summary.OrdersTotal - summary.ReduceTotal

	for key, count := range breakdown {
		key.Count = count
		summary.ActionBreakdown = append(summary.ActionBreakdown, key)
	}
	sort.Slice(summary.ActionBreakdown, func(i, j int) bool {
		a, b := summary.ActionBreakdown[i], summary.ActionBreakdown[j]
		if a.Action != b.Action {
			return a.Action < b.Action
		}
		return a.Category < b.Category
	})

	return summary
}

// Recommendations lists recommendation rows, optionally filtered by action
// and category, ordered by action then descending monetary impact.
func (s *DashboardService) Recommendations(ctx context.Context, filter RecommendationFilter) ([]domain.Recommendation, error) {
	rows, err := s.repo.Recommendations()
	if err != nil {
		return nil, err
	}

	var action domain.Action
	if filter.Action != "" {
		parsed, ok := domain.ParseAction(filter.Action)
		if !ok {
			return nil, errors.New("unknown action filter: " + filter.Action)
		}
		action = parsed
	}

	filtered := make([]domain.Recommendation, 0, len(rows))
	for _, row := range rows {
		if action != "" && row.Action != action {
			continue
		}
		if filter.Category != "" && row.Category != filter.Category {
			continue
		}
		filtered = append(filtered, row)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Action != filtered[j].Action {
			return filtered[i].Action < filtered[j].Action
		}
		return filtered[i].ChangeValue > filtered[j].ChangeValue
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return filtered, nil
}

// Part returns the drill-down for one part, or ErrPartNotFound.
func (s *DashboardService) Part(ctx context.Context, partNum string) (*domain.PartDetail, error) {
	params, err := s.repo.InventoryParams()
	if err != nil {
		return nil, err
	}

	detail := &domain.PartDetail{}
	found := false
	for _, p := range params {
		if p.PartNum == partNum {
			detail.Params = p
			found = true
			break
		}
	}
	if !found {
		return nil, ErrPartNotFound
	}

	recommendations, err := s.repo.Recommendations()
	if err != nil {
		return nil, err
	}
	for _, r := range recommendations {
		if r.PartNum == partNum {
			rec := r
			detail.Recommendation = &rec
			break
		}
	}

	return detail, nil
}

// InvalidateCache drops cached aggregates after a new pipeline run
// replaces the output tables.
func (s *DashboardService) InvalidateCache(ctx context.Context) error {
	return s.cache.InvalidateAll(ctx)
}
