package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TripBudget maps each budget category to an allocated amount. Pipeline
// stages never mutate a budget in place; they clone, adjust, and return the
// copy.
type TripBudget map[BudgetCategory]decimal.Decimal

// Clone returns an independent copy of the budget.
func (b TripBudget) Clone() TripBudget {
	out := make(TripBudget, len(b))
	for category, amount := range b {
		out[category] = amount
	}
	return out
}

// Get returns the amount for a category, or zero if it is unallocated.
func (b TripBudget) Get(category BudgetCategory) decimal.Decimal {
	if amount, ok := b[category]; ok {
		return amount
	}
	return decimal.Zero
}

// Total sums every category amount.
func (b TripBudget) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range b {
		total = total.Add(amount)
	}
	return total
}

// Round returns a copy with every amount rounded to the given number of
// decimal places.
func (b TripBudget) Round(places int32) TripBudget {
	out := make(TripBudget, len(b))
	for category, amount := range b {
		out[category] = amount.Round(places)
	}
	return out
}

// Categories returns the allocated categories in a stable order.
func (b TripBudget) Categories() []BudgetCategory {
	categories := make([]BudgetCategory, 0, len(b))
	for category := range b {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}

// BudgetConstraint is a caller-supplied bound on one category's final
// amount. Absolute and percentage bounds apply independently.
type BudgetConstraint struct {
	MinAmount     *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount     *decimal.Decimal `json:"max_amount,omitempty"`
	PercentageMin *float64         `json:"percentage_min,omitempty"`
	PercentageMax *float64         `json:"percentage_max,omitempty"`
	Category      BudgetCategory   `json:"category"`
	Priority      int              `json:"priority"`
	Flexible      bool             `json:"flexible"`
}

// AlternativeAllocation is a lightweight comparison allocation produced
// without re-running the optimization pipeline.
type AlternativeAllocation struct {
	Allocation  TripBudget      `json:"allocation"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Savings     decimal.Decimal `json:"savings"`
	Efficiency  float64         `json:"efficiency"`
}
