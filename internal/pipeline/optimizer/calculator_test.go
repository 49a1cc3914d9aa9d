package optimizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafetyStock(t *testing.T) {
	calc := NewCalculator(50, 0.2)

	// z=2, std=3, 30-day lead time: 2·3·sqrt(1) = 6.
	assert.Equal(t, 6, calc.SafetyStock(3, 30, 2))

	// Four-month lead time doubles the sqrt term.
	assert.Equal(t, 12, calc.SafetyStock(3, 120, 2))

	assert.Equal(t, 0, calc.SafetyStock(0, 30, 2))
	assert.Equal(t, 0, calc.SafetyStock(3, 0, 2))
	assert.Equal(t, 0, calc.SafetyStock(3, -10, 2))
}

func TestSafetyStockRoundsHalfAwayFromZero(t *testing.T) {
	calc := NewCalculator(50, 0.2)

	// 1·2.5·sqrt(1) = 2.5 → 3
	assert.Equal(t, 3, calc.SafetyStock(2.5, 30, 1))
	// 1·2.4·sqrt(1) = 2.4 → 2
	assert.Equal(t, 2, calc.SafetyStock(2.4, 30, 1))
}

func TestSafetyStockClampsNonFinite(t *testing.T) {
	calc := NewCalculator(50, 0.2)

	assert.Equal(t, 0, calc.SafetyStock(math.NaN(), 30, 2))
	assert.Equal(t, 0, calc.SafetyStock(math.Inf(1), 30, 2))
	assert.Equal(t, 0, calc.SafetyStock(3, 30, -2))
}

func TestReorderPoint(t *testing.T) {
	calc := NewCalculator(50, 0.2)

	// 10/month over a 2-month lead time plus 6 safety stock.
	assert.Equal(t, 26, calc.ReorderPoint(10, 60, 6))
	assert.Equal(t, 6, calc.ReorderPoint(0, 60, 6))
	assert.Equal(t, 0, calc.ReorderPoint(0, 0, 0))
}

func TestEOQ(t *testing.T) {
	calc := NewCalculator(50, 0.2)

	// sqrt(2·1200·50 / (10·0.2)) = sqrt(60000) ≈ 244.95 → 245
	assert.Equal(t, 245, calc.EOQ(1200, 10))

	// sqrt(2·100·50 / (5·0.2)) = sqrt(10000) = 100
	assert.Equal(t, 100, calc.EOQ(100, 5))
}

func TestEOQZeroWhenAnyInputNotPositive(t *testing.T) {
	calc := NewCalculator(50, 0.2)
	assert.Equal(t, 0, calc.EOQ(0, 10))
	assert.Equal(t, 0, calc.EOQ(-5, 10))
	assert.Equal(t, 0, calc.EOQ(1200, 0))

	noOrderCost := NewCalculator(0, 0.2)
	assert.Equal(t, 0, noOrderCost.EOQ(1200, 10))

	noHolding := NewCalculator(50, 0)
	assert.Equal(t, 0, noHolding.EOQ(1200, 10))
}
