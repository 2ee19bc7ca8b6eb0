package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalloway/tripflow/internal/common"
	"github.com/jhalloway/tripflow/internal/config"
	"github.com/jhalloway/tripflow/internal/model"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	tables, err := config.Load(viper.New())
	require.NoError(t, err)
	return New(tables)
}

func TestEngine_Plan_StrictBudgetWithConstraints(t *testing.T) {
	e := testEngine(t)

	maxAcc := decimal.NewFromInt(800)
	minAct := decimal.NewFromInt(500)
	req := &model.TripRequest{
		Budget:         decimal.NewFromInt(4000),
		DurationDays:   5,
		PassengerCount: 4,
		Origin:         "SFO",
		Destinations:   []string{"LAX"},
		StartDate:      "2026-09-01",
	}
	constraints := []model.BudgetConstraint{
		{Category: model.CategoryAccommodation, MaxAmount: &maxAcc},
		{Category: model.CategoryActivities, MinAmount: &minAct},
	}

	itinerary, err := e.Plan(context.Background(), req, constraints, model.StrategyStrictBudget)
	require.NoError(t, err)

	assert.Equal(t, model.TripFamilyVacation, itinerary.TripType)
	assert.True(t, itinerary.Budget.Get(model.CategoryAccommodation).LessThanOrEqual(maxAcc))
	assert.True(t, itinerary.TotalCost.LessThanOrEqual(itinerary.TotalBudget))

	// 5 mid-range airbnb nights, food for four, rideshare, a car rental,
	// strict-budget flight shave, and the banked contingency.
	assert.True(t, itinerary.TotalCost.Equal(decimal.NewFromInt(3796)), "got %s", itinerary.TotalCost)
	assert.True(t, itinerary.Budget.Get(model.CategoryAccommodation).Equal(decimal.NewFromInt(600)))
	assert.True(t, itinerary.Savings.Equal(decimal.NewFromInt(204)))

	// The accommodation cap holds; the activities floor does not survive
	// cost actualization.
	assert.Equal(t, 1, itinerary.ConstraintsMet)
	assert.Equal(t, 2, itinerary.TotalConstraints)

	assert.Equal(t, 5, itinerary.TotalDurationDays)
	require.Len(t, itinerary.Segments, 1)
	assert.NotEmpty(t, itinerary.Alternatives)
	assert.Positive(t, itinerary.OptimizationScore)
}

func TestEngine_Plan_PetTrip(t *testing.T) {
	e := testEngine(t)

	req := &model.TripRequest{
		Budget:         decimal.NewFromInt(12000),
		DurationDays:   14,
		PassengerCount: 2,
		Origin:         "SEA",
		Destinations:   []string{"Portland"},
		StartDate:      "2026-09-01",
		Purposes:       []string{"traveling with our dog"},
		HasPets:        true,
	}

	itinerary, err := e.Plan(context.Background(), req, nil, model.StrategyBalanceComfort)
	require.NoError(t, err)

	// One-time fees plus 14 days of insurance, food, and lodging surcharge.
	assert.True(t, itinerary.Budget.Get(model.CategoryPetCosts).Equal(decimal.NewFromInt(1195)),
		"got %s", itinerary.Budget.Get(model.CategoryPetCosts))
	assert.True(t, itinerary.CostBreakdown["pet_costs"].Equal(decimal.NewFromInt(1195)))
	assert.True(t, itinerary.CostBreakdown["requirement_pet_travel"].Equal(decimal.NewFromInt(405)))

	require.Len(t, itinerary.Segments, 1)
	assert.Equal(t, model.AccommodationPetFriendly, itinerary.Segments[0].AccommodationType)

	// Well under the 15% share on this budget.
	assert.NotContains(t, itinerary.Warnings, "Pet travel costs are significant - verify all requirements and fees")
	assert.Contains(t, itinerary.Recommendations, "Book pet-friendly accommodations early for better rates")
}

func TestEngine_Plan_BusinessTrip(t *testing.T) {
	e := testEngine(t)

	req := &model.TripRequest{
		Budget:          decimal.NewFromInt(5000),
		DurationDays:    4,
		PassengerCount:  1,
		Origin:          "SFO",
		Destinations:    []string{"Austin"},
		StartDate:       "2026-09-01",
		Purposes:        []string{"tech conference"},
		HasBusiness:     true,
		BusinessPortion: 0.5,
	}

	itinerary, err := e.Plan(context.Background(), req, nil, model.StrategyBalanceComfort)
	require.NoError(t, err)

	assert.Equal(t, model.TripBusiness, itinerary.TripType)
	require.Len(t, itinerary.Segments, 1)
	assert.True(t, itinerary.Segments[0].IsBusiness)

	assert.True(t, itinerary.TaxSavings.IsPositive())
	assert.Positive(t, itinerary.BusinessPercentage)
	assert.True(t, itinerary.CostBreakdown["activity_conference"].Equal(decimal.NewFromInt(500)))
	_, ok := itinerary.CostBreakdown["requirement_tax_deduction"]
	assert.True(t, ok, "tax documentation requirement must appear in the breakdown")
}

func TestEngine_Plan_DefaultBudgetSubstitution(t *testing.T) {
	e := testEngine(t)

	req := &model.TripRequest{
		DurationDays:   3,
		PassengerCount: 2,
		Destinations:   []string{"Denver"},
		StartDate:      "2026-09-01",
	}

	itinerary, err := e.Plan(context.Background(), req, nil, model.StrategyBalanceComfort)
	require.NoError(t, err)

	assert.True(t, itinerary.TotalBudget.Equal(decimal.NewFromInt(6000)))
}

func TestEngine_Plan_NeverExceedsBudget(t *testing.T) {
	e := testEngine(t)

	req := &model.TripRequest{
		Budget:         decimal.NewFromInt(2500),
		DurationDays:   7,
		PassengerCount: 4,
		Origin:         "ATL",
		Destinations:   []string{"Orlando", "Miami"},
		StartDate:      "2026-09-01",
	}

	for _, strategy := range model.AllStrategies() {
		t.Run(string(strategy), func(t *testing.T) {
			itinerary, err := e.Plan(context.Background(), req, nil, strategy)
			require.NoError(t, err)
			assert.True(t, itinerary.TotalCost.LessThanOrEqual(itinerary.TotalBudget),
				"cost %s over budget %s", itinerary.TotalCost, itinerary.TotalBudget)
		})
	}
}

func TestEngine_Plan_Deterministic(t *testing.T) {
	e := testEngine(t)

	maxAcc := decimal.NewFromInt(900)
	req := &model.TripRequest{
		Budget:         decimal.NewFromInt(5500),
		DurationDays:   6,
		PassengerCount: 3,
		Origin:         "BOS",
		Destinations:   []string{"Chicago", "Denver"},
		StartDate:      "2026-09-01",
	}
	constraints := []model.BudgetConstraint{
		{Category: model.CategoryAccommodation, MaxAmount: &maxAcc},
	}

	first, err := e.Plan(context.Background(), req, constraints, model.StrategyMaximizeValue)
	require.NoError(t, err)
	second, err := e.Plan(context.Background(), req, constraints, model.StrategyMaximizeValue)
	require.NoError(t, err)

	assert.Equal(t, first.TripID, second.TripID)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON), "identical inputs must produce identical itineraries")
}

func TestEngine_Plan_TripIDChangesWithInput(t *testing.T) {
	e := testEngine(t)

	req := &model.TripRequest{
		Budget:         decimal.NewFromInt(4000),
		DurationDays:   5,
		PassengerCount: 2,
		Destinations:   []string{"LAX"},
		StartDate:      "2026-09-01",
	}

	base, err := e.Plan(context.Background(), req, nil, model.StrategyBalanceComfort)
	require.NoError(t, err)
	other, err := e.Plan(context.Background(), req, nil, model.StrategyMinimizeCost)
	require.NoError(t, err)

	assert.NotEqual(t, base.TripID, other.TripID, "strategy is part of the identity")
}

func TestEngine_Plan_InvalidInputs(t *testing.T) {
	e := testEngine(t)

	valid := func() *model.TripRequest {
		return &model.TripRequest{
			Budget:         decimal.NewFromInt(4000),
			DurationDays:   5,
			PassengerCount: 2,
			Destinations:   []string{"LAX"},
			StartDate:      "2026-09-01",
		}
	}

	tests := []struct {
		mutate  func(*model.TripRequest)
		wantErr error
		name    string
	}{
		{
			name:    "no destinations",
			mutate:  func(r *model.TripRequest) { r.Destinations = nil },
			wantErr: common.ErrEmptyDestinations,
		},
		{
			name:    "zero duration",
			mutate:  func(r *model.TripRequest) { r.DurationDays = 0 },
			wantErr: common.ErrInvalidDuration,
		},
		{
			name:    "no passengers",
			mutate:  func(r *model.TripRequest) { r.PassengerCount = 0 },
			wantErr: common.ErrInvalidPassengers,
		},
		{
			name:    "business portion above one",
			mutate:  func(r *model.TripRequest) { r.BusinessPortion = 1.5 },
			wantErr: common.ErrInvalidPortion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := e.Plan(context.Background(), req, nil, model.StrategyBalanceComfort)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed start date", func(t *testing.T) {
		req := valid()
		req.StartDate = "next tuesday"
		_, err := e.Plan(context.Background(), req, nil, model.StrategyBalanceComfort)
		assert.Error(t, err)
	})

	t.Run("contradictory constraint", func(t *testing.T) {
		min := decimal.NewFromInt(900)
		max := decimal.NewFromInt(300)
		_, err := e.Plan(context.Background(), valid(), []model.BudgetConstraint{
			{Category: model.CategoryFood, MinAmount: &min, MaxAmount: &max},
		}, model.StrategyBalanceComfort)
		assert.ErrorIs(t, err, common.ErrInvalidConstraint)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := e.Plan(context.Background(), valid(), nil, model.OptimizationStrategy("vibes"))
		assert.ErrorIs(t, err, common.ErrUnknownStrategy)
	})
}
