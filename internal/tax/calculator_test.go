package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalloway/tripflow/internal/config"
	"github.com/jhalloway/tripflow/internal/model"
)

func testTables(t *testing.T) *config.Tables {
	t.Helper()
	tables, err := config.Load(viper.New())
	require.NoError(t, err)
	return tables
}

func TestCalculator_Calculate_ActivityDeductions(t *testing.T) {
	c := New(testTables(t))

	activities := []model.Activity{
		{Name: "Conference Registration", Category: "conference", Cost: decimal.NewFromInt(500), IsBusiness: true},
		{Name: "Business Networking Dinner", Category: "business_meal", Cost: decimal.NewFromInt(80), IsBusiness: true},
		{Name: "Park Admission", Category: "theme_park", Cost: decimal.NewFromInt(560)},
	}

	benefit := c.Calculate(activities, nil, model.TripBudget{}, decimal.NewFromInt(6000))

	// Conference is fully deductible, the meal at half rate, and the
	// personal admission not at all: 0.25 * (500 + 40) = 135.
	assert.True(t, benefit.TotalDeductible.Equal(decimal.NewFromInt(540)), "got %s", benefit.TotalDeductible)
	assert.True(t, benefit.TaxSavings.Equal(decimal.NewFromInt(135)), "got %s", benefit.TaxSavings)
	assert.InDelta(t, 9.666, benefit.BusinessPercentage, 0.01, "580 of 6000")
}

func TestCalculator_Calculate_BusinessSegmentShare(t *testing.T) {
	c := New(testTables(t))

	budget := model.TripBudget{
		model.CategoryAccommodation: decimal.NewFromInt(1200),
		model.CategoryTransport:     decimal.NewFromInt(400),
	}
	segments := []model.TripSegment{{IsBusiness: true}}

	benefit := c.Calculate(nil, segments, budget, decimal.NewFromInt(6000))

	// Half of accommodation and transport counts as business use, both
	// fully deductible: 600 + 200 = 800, saving 200 at the marginal rate.
	assert.True(t, benefit.TotalDeductible.Equal(decimal.NewFromInt(800)), "got %s", benefit.TotalDeductible)
	assert.True(t, benefit.TaxSavings.Equal(decimal.NewFromInt(200)), "got %s", benefit.TaxSavings)
}

func TestCalculator_Calculate_NoBusinessComponent(t *testing.T) {
	c := New(testTables(t))

	activities := []model.Activity{
		{Name: "Park Admission", Category: "theme_park", Cost: decimal.NewFromInt(560)},
	}
	segments := []model.TripSegment{{IsBusiness: false}}

	benefit := c.Calculate(activities, segments, model.TripBudget{}, decimal.NewFromInt(4000))

	assert.True(t, benefit.TotalDeductible.IsZero())
	assert.True(t, benefit.TaxSavings.IsZero())
	assert.Zero(t, benefit.BusinessPercentage)
}

func TestCalculator_Calculate_ZeroBudget(t *testing.T) {
	c := New(testTables(t))

	activities := []model.Activity{
		{Category: "conference", Cost: decimal.NewFromInt(500), IsBusiness: true},
	}

	benefit := c.Calculate(activities, nil, model.TripBudget{}, decimal.Zero)

	assert.True(t, benefit.TaxSavings.Equal(decimal.NewFromInt(125)))
	assert.Zero(t, benefit.BusinessPercentage, "percentage is skipped rather than dividing by zero")
}

func TestCalculator_DeductionRates(t *testing.T) {
	c := New(testTables(t))

	tests := []struct {
		category string
		want     string
	}{
		{"conference", "1"},
		{"business_meal", "0.5"},
		{"dining", "0.5"},
		{"entertainment", "0.5"},
		{"transport", "1"},
		{"something_else", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.True(t, c.deductionRate(tt.category).Equal(decimal.RequireFromString(tt.want)))
		})
	}
}
