package allocator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalloway/tripflow/internal/common"
	"github.com/jhalloway/tripflow/internal/model"
)

func TestAllocator_ApplyStrategy_UnknownStrategy(t *testing.T) {
	a := New(testTables(t))

	_, err := a.ApplyStrategy(model.TripBudget{}, model.OptimizationStrategy("yolo"))
	assert.ErrorIs(t, err, common.ErrUnknownStrategy)
}

func TestAllocator_ApplyStrategy_PreservesTotal(t *testing.T) {
	a := New(testTables(t))

	budget := model.TripBudget{
		model.CategoryFlights:       decimal.NewFromInt(1400),
		model.CategoryAccommodation: decimal.NewFromInt(1000),
		model.CategoryActivities:    decimal.NewFromInt(800),
		model.CategoryFood:          decimal.NewFromInt(600),
		model.CategoryTransport:     decimal.NewFromInt(120),
		model.CategoryContingency:   decimal.NewFromInt(200),
	}
	total := budget.Total()

	for _, strategy := range model.AllStrategies() {
		t.Run(string(strategy), func(t *testing.T) {
			out, err := a.ApplyStrategy(budget, strategy)
			require.NoError(t, err)
			assert.True(t, out.Total().Equal(total),
				"redistribution must not change the total: got %s, want %s", out.Total(), total)
		})
	}
}

func TestAllocator_ApplyStrategy_DoesNotMutateInput(t *testing.T) {
	a := New(testTables(t))

	budget := model.TripBudget{
		model.CategoryAccommodation: decimal.NewFromInt(1000),
		model.CategoryContingency:   decimal.NewFromInt(200),
	}

	_, err := a.ApplyStrategy(budget, model.StrategyLuxuryFocus)
	require.NoError(t, err)

	assert.True(t, budget.Get(model.CategoryAccommodation).Equal(decimal.NewFromInt(1000)))
	assert.True(t, budget.Get(model.CategoryContingency).Equal(decimal.NewFromInt(200)))
}

func TestAllocator_ApplyStrategy_MinimizeCost(t *testing.T) {
	a := New(testTables(t))

	budget := model.TripBudget{
		model.CategoryAccommodation: decimal.NewFromInt(1000),
		model.CategoryActivities:    decimal.NewFromInt(500),
		model.CategoryFood:          decimal.NewFromInt(300),
		model.CategoryContingency:   decimal.NewFromInt(50),
	}

	out, err := a.ApplyStrategy(budget, model.StrategyMinimizeCost)
	require.NoError(t, err)

	assert.True(t, out.Get(model.CategoryAccommodation).Equal(d(t, "900")))
	assert.True(t, out.Get(model.CategoryActivities).Equal(d(t, "450")))
	assert.True(t, out.Get(model.CategoryFood).Equal(d(t, "270")))
	assert.True(t, out.Get(model.CategoryContingency).Equal(d(t, "230")), "contingency absorbs all three reductions")
}

func TestAllocator_ApplyStrategy_MaximizeValue(t *testing.T) {
	a := New(testTables(t))

	t.Run("surplus contingency is halved into lodging and activities", func(t *testing.T) {
		budget := model.TripBudget{
			model.CategoryAccommodation: decimal.NewFromInt(1000),
			model.CategoryActivities:    decimal.NewFromInt(500),
			model.CategoryContingency:   decimal.NewFromInt(200),
		}

		out, err := a.ApplyStrategy(budget, model.StrategyMaximizeValue)
		require.NoError(t, err)

		assert.True(t, out.Get(model.CategoryContingency).Equal(d(t, "100")))
		assert.True(t, out.Get(model.CategoryAccommodation).Equal(d(t, "1060")))
		assert.True(t, out.Get(model.CategoryActivities).Equal(d(t, "540")))
	})

	t.Run("contingency at the floor is untouched", func(t *testing.T) {
		budget := model.TripBudget{
			model.CategoryAccommodation: decimal.NewFromInt(1000),
			model.CategoryContingency:   decimal.NewFromInt(100),
		}

		out, err := a.ApplyStrategy(budget, model.StrategyMaximizeValue)
		require.NoError(t, err)

		assert.True(t, out.Get(model.CategoryContingency).Equal(d(t, "100")))
		assert.True(t, out.Get(model.CategoryAccommodation).Equal(d(t, "1000")))
	})
}

func TestAllocator_ApplyStrategy_BalanceComfort(t *testing.T) {
	a := New(testTables(t))

	budget := model.TripBudget{
		model.CategoryAccommodation: decimal.NewFromInt(1000),
		model.CategoryContingency:   decimal.NewFromInt(200),
	}

	out, err := a.ApplyStrategy(budget, model.StrategyBalanceComfort)
	require.NoError(t, err)

	for category, amount := range budget {
		assert.True(t, out.Get(category).Equal(amount), "category %s", category)
	}
}

func TestAllocator_ApplyStrategy_StrictBudget(t *testing.T) {
	a := New(testTables(t))

	budget := model.TripBudget{
		model.CategoryFlights:       decimal.NewFromInt(1400),
		model.CategoryAccommodation: decimal.NewFromInt(800),
		model.CategoryActivities:    decimal.NewFromInt(800),
		model.CategoryFood:          decimal.NewFromInt(600),
		model.CategoryTransport:     decimal.NewFromInt(120),
		model.CategoryContingency:   decimal.NewFromInt(80),
	}

	out, err := a.ApplyStrategy(budget, model.StrategyStrictBudget)
	require.NoError(t, err)

	assert.True(t, out.Get(model.CategoryFlights).Equal(d(t, "1330")))
	assert.True(t, out.Get(model.CategoryAccommodation).Equal(d(t, "760")))
	assert.True(t, out.Get(model.CategoryActivities).Equal(d(t, "760")))
	assert.True(t, out.Get(model.CategoryFood).Equal(d(t, "570")))
	assert.True(t, out.Get(model.CategoryTransport).Equal(d(t, "114")))
	assert.True(t, out.Get(model.CategoryContingency).Equal(d(t, "266")), "contingency banks every shaved amount")
}

func TestAllocator_ApplyStrategy_LuxuryFocus(t *testing.T) {
	a := New(testTables(t))

	budget := model.TripBudget{
		model.CategoryAccommodation: decimal.NewFromInt(1000),
		model.CategoryFood:          decimal.NewFromInt(400),
		model.CategoryContingency:   decimal.NewFromInt(200),
	}

	out, err := a.ApplyStrategy(budget, model.StrategyLuxuryFocus)
	require.NoError(t, err)

	assert.True(t, out.Get(model.CategoryContingency).Equal(d(t, "40")))
	assert.True(t, out.Get(model.CategoryAccommodation).Equal(d(t, "1112")))
	assert.True(t, out.Get(model.CategoryFood).Equal(d(t, "448")))
}
