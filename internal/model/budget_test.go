package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripBudget_Clone(t *testing.T) {
	original := TripBudget{
		CategoryFlights: decimal.NewFromInt(1400),
		CategoryFood:    decimal.NewFromInt(600),
	}

	clone := original.Clone()
	clone[CategoryFood] = decimal.NewFromInt(999)
	clone[CategoryTransport] = decimal.NewFromInt(100)

	assert.True(t, original.Get(CategoryFood).Equal(decimal.NewFromInt(600)))
	_, ok := original[CategoryTransport]
	assert.False(t, ok)
}

func TestTripBudget_Get(t *testing.T) {
	budget := TripBudget{CategoryFlights: decimal.NewFromInt(100)}

	assert.True(t, budget.Get(CategoryFlights).Equal(decimal.NewFromInt(100)))
	assert.True(t, budget.Get(CategoryContingency).IsZero(), "missing categories read as zero")
}

func TestTripBudget_Total(t *testing.T) {
	budget := TripBudget{
		CategoryFlights:       decimal.NewFromInt(1400),
		CategoryAccommodation: decimal.RequireFromString("599.99"),
		CategoryContingency:   decimal.RequireFromString("0.01"),
	}

	assert.True(t, budget.Total().Equal(decimal.NewFromInt(2000)))
	assert.True(t, TripBudget{}.Total().IsZero())
}

func TestTripBudget_Round(t *testing.T) {
	budget := TripBudget{
		CategoryFood: decimal.RequireFromString("123.456"),
	}

	rounded := budget.Round(2)
	assert.True(t, rounded.Get(CategoryFood).Equal(decimal.RequireFromString("123.46")))
	assert.True(t, budget.Get(CategoryFood).Equal(decimal.RequireFromString("123.456")), "input untouched")
}

func TestTripBudget_CategoriesAreSorted(t *testing.T) {
	budget := TripBudget{
		CategoryTransport:     decimal.NewFromInt(1),
		CategoryAccommodation: decimal.NewFromInt(1),
		CategoryFlights:       decimal.NewFromInt(1),
	}

	categories := budget.Categories()
	require.Len(t, categories, 3)
	assert.Equal(t, []BudgetCategory{CategoryAccommodation, CategoryFlights, CategoryTransport}, categories)
}

func TestBudgetCategory_Valid(t *testing.T) {
	for _, category := range AllCategories() {
		assert.True(t, category.Valid(), "category %s", category)
	}
	assert.False(t, BudgetCategory("jetpacks").Valid())
}

func TestParseStrategy(t *testing.T) {
	for _, strategy := range AllStrategies() {
		parsed, err := ParseStrategy(string(strategy))
		require.NoError(t, err)
		assert.Equal(t, strategy, parsed)
	}

	_, err := ParseStrategy("fastest")
	assert.Error(t, err)
}
