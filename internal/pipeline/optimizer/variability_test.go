package optimizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serdarekici/inventory-management/internal/domain"
)

// fixedJune2025 pins the trailing window so fixtures do not rot.
func fixedJune2025() time.Time {
	return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func testVariabilityConfig() VariabilityConfig {
	cfg := DefaultVariabilityConfig()
	cfg.Now = fixedJune2025
	return cfg
}

// monthEnd returns the last day of the month `offset` months before the
// fixed clock's month.
func monthEnd(offset int) time.Time {
	now := fixedJune2025()
	return time.Date(now.Year(), now.Month()-time.Month(offset)+1, 0, 0, 0, 0, 0, time.UTC)
}

func obsEveryMonth(partNum string, months, demand int) []domain.DemandObservation {
	out := make([]domain.DemandObservation, 0, months)
	for i := 0; i < months; i++ {
		out = append(out, domain.DemandObservation{
			PartNum:     partNum,
			Date:        monthEnd(i),
			TotalDemand: demand,
		})
	}
	return out
}

func findSegment(t *testing.T, segments []domain.VariabilitySegment, partNum string) domain.VariabilitySegment {
	t.Helper()
	for _, seg := range segments {
		if seg.PartNum == partNum {
			return seg
		}
	}
	t.Fatalf("no variability segment for %s", partNum)
	return domain.VariabilitySegment{}
}

func TestClassifyVariabilityConstantDemandIsLow(t *testing.T) {
	observations := obsEveryMonth("P1", 36, 5)

	segments := ClassifyVariability(observations, testVariabilityConfig())
	seg := findSegment(t, segments, "P1")

	assert.InDelta(t, 5.0, seg.AvgMonthlyDemand, 1e-9)
	assert.InDelta(t, 0.0, seg.StdMonthlyDemand, 1e-9)
	assert.InDelta(t, 0.0, seg.Vod, 1e-9)
	assert.Equal(t, "L", seg.Class)
	assert.True(t, seg.HasSufficientData)
}

func TestClassifyVariabilityZeroFillsMissingMonths(t *testing.T) {
	// Three transactions inside a 36-month window: 12, 6, 6 units.
	// mean = 24/36, sample std over the zero-filled calendar puts the
	// vod between the 2.0 and 4.0 boundaries.
	observations := []domain.DemandObservation{
		{PartNum: "P1", Date: monthEnd(0), TotalDemand: 12},
		{PartNum: "P1", Date: monthEnd(5), TotalDemand: 6},
		{PartNum: "P1", Date: monthEnd(11), TotalDemand: 6},
	}

	segments := ClassifyVariability(observations, testVariabilityConfig())
	seg := findSegment(t, segments, "P1")

	assert.InDelta(t, 24.0/36.0, seg.AvgMonthlyDemand, 1e-9)
	assert.InDelta(t, 2.3904572, seg.StdMonthlyDemand, 1e-6)
	assert.InDelta(t, 3.5856858, seg.Vod, 1e-6)
	assert.Equal(t, "M", seg.Class)
	assert.True(t, seg.HasSufficientData)
}

func TestClassifyVariabilityInsufficientHistoryForcesHigh(t *testing.T) {
	// Two raw transactions, both perfectly steady: the vod alone would say
	// L but the sufficiency override wins.
	observations := []domain.DemandObservation{
		{PartNum: "P1", Date: monthEnd(0), TotalDemand: 5},
		{PartNum: "P1", Date: monthEnd(1), TotalDemand: 5},
	}

	segments := ClassifyVariability(observations, testVariabilityConfig())
	seg := findSegment(t, segments, "P1")

	assert.Equal(t, "H", seg.Class)
	assert.False(t, seg.HasSufficientData)
}

func TestClassifyVariabilityZeroDemandRowsCountAsTransactions(t *testing.T) {
	observations := []domain.DemandObservation{
		{PartNum: "P1", Date: monthEnd(0), TotalDemand: 5},
		{PartNum: "P1", Date: monthEnd(1), TotalDemand: 0},
		{PartNum: "P1", Date: monthEnd(2), TotalDemand: 0},
	}

	segments := ClassifyVariability(observations, testVariabilityConfig())
	seg := findSegment(t, segments, "P1")

	assert.True(t, seg.HasSufficientData)
}

func TestClassifyVariabilityIgnoresObservationsOutsideWindow(t *testing.T) {
	old := time.Date(2021, time.January, 31, 0, 0, 0, 0, time.UTC)
	observations := append(obsEveryMonth("P1", 36, 5),
		domain.DemandObservation{PartNum: "P1", Date: old, TotalDemand: 10000},
		domain.DemandObservation{PartNum: "P2", Date: old, TotalDemand: 7},
	)

	segments := ClassifyVariability(observations, testVariabilityConfig())
	seg := findSegment(t, segments, "P1")
	assert.InDelta(t, 5.0, seg.AvgMonthlyDemand, 1e-9)

	// P2 only exists outside the window: no record at all.
	for _, s := range segments {
		assert.NotEqual(t, "P2", s.PartNum)
	}
}

func TestClassifyVariabilityZeroMeanHasZeroVod(t *testing.T) {
	observations := []domain.DemandObservation{
		{PartNum: "P1", Date: monthEnd(0), TotalDemand: 0},
		{PartNum: "P1", Date: monthEnd(1), TotalDemand: 0},
		{PartNum: "P1", Date: monthEnd(2), TotalDemand: 0},
	}

	segments := ClassifyVariability(observations, testVariabilityConfig())
	seg := findSegment(t, segments, "P1")

	assert.Zero(t, seg.Vod)
	assert.Zero(t, seg.AvgMonthlyDemand)
	assert.Equal(t, "L", seg.Class)
}

func TestClassifyVariabilityResultsSortedByPartNum(t *testing.T) {
	observations := append(obsEveryMonth("B", 6, 3), obsEveryMonth("A", 6, 3)...)

	segments := ClassifyVariability(observations, testVariabilityConfig())
	require.Len(t, segments, 2)
	assert.Equal(t, "A", segments[0].PartNum)
	assert.Equal(t, "B", segments[1].PartNum)
}

func TestClassifyVariabilitySingleMonthWindow(t *testing.T) {
	cfg := testVariabilityConfig()
	cfg.WindowMonths = 1
	cfg.MinTransactions = 1

	observations := []domain.DemandObservation{
		{PartNum: "P1", Date: monthEnd(0), TotalDemand: 9},
	}

	segments := ClassifyVariability(observations, cfg)
	seg := findSegment(t, segments, "P1")

	// Sample std is undefined below two months.
	assert.InDelta(t, 9.0, seg.AvgMonthlyDemand, 1e-9)
	assert.Zero(t, seg.StdMonthlyDemand)
	assert.Equal(t, "L", seg.Class)
}
