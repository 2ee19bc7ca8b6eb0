package allocator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/common"
	"github.com/jhalloway/tripflow/internal/model"
)

// strategyFunc transforms an allocation after constraint clamping. Each
// handler works on its own clone and must not read the original.
type strategyFunc func(*Allocator, model.TripBudget) model.TripBudget

// strategyHandlers is the closed dispatch table: every strategy has exactly
// one pure handler.
var strategyHandlers = map[model.OptimizationStrategy]strategyFunc{
	model.StrategyMinimizeCost:   (*Allocator).applyMinimizeCost,
	model.StrategyMaximizeValue:  (*Allocator).applyMaximizeValue,
	model.StrategyBalanceComfort: (*Allocator).applyBalanceComfort,
	model.StrategyStrictBudget:   (*Allocator).applyStrictBudget,
	model.StrategyLuxuryFocus:    (*Allocator).applyLuxuryFocus,
}

// Redistribution multipliers.
var (
	tenPercent    = decimal.NewFromFloat(0.10)
	fivePercent   = decimal.NewFromFloat(0.05)
	half          = decimal.NewFromFloat(0.50)
	sixtyPercent  = decimal.NewFromFloat(0.60)
	fortyPercent  = decimal.NewFromFloat(0.40)
	eightyPercent = decimal.NewFromFloat(0.80)
	seventyPct    = decimal.NewFromFloat(0.70)
	thirtyPercent = decimal.NewFromFloat(0.30)
)

// ApplyStrategy runs the redistribution handler for the given strategy.
func (a *Allocator) ApplyStrategy(budget model.TripBudget, strategy model.OptimizationStrategy) (model.TripBudget, error) {
	handler, ok := strategyHandlers[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownStrategy, strategy)
	}
	return handler(a, budget.Clone()), nil
}

// applyMinimizeCost trims accommodation, activities, and food by 10% each
// and moves the sum into contingency.
func (a *Allocator) applyMinimizeCost(budget model.TripBudget) model.TripBudget {
	totalReduction := decimal.Zero
	for _, category := range []model.BudgetCategory{
		model.CategoryAccommodation, model.CategoryActivities, model.CategoryFood,
	} {
		amount, ok := budget[category]
		if !ok {
			continue
		}
		reduction := amount.Mul(tenPercent)
		budget[category] = amount.Sub(reduction)
		totalReduction = totalReduction.Add(reduction)
	}
	budget[model.CategoryContingency] = budget.Get(model.CategoryContingency).Add(totalReduction)
	return budget
}

// applyMaximizeValue halves an over-floor contingency and spends the freed
// half on accommodation (60%) and activities (40%).
func (a *Allocator) applyMaximizeValue(budget model.TripBudget) model.TripBudget {
	contingency := budget.Get(model.CategoryContingency)
	if !contingency.GreaterThan(a.tables.ValueFloor) {
		return budget
	}

	freed := contingency.Mul(half)
	budget[model.CategoryContingency] = contingency.Sub(freed)
	budget[model.CategoryAccommodation] = budget.Get(model.CategoryAccommodation).Add(freed.Mul(sixtyPercent))
	budget[model.CategoryActivities] = budget.Get(model.CategoryActivities).Add(freed.Mul(fortyPercent))
	return budget
}

// applyBalanceComfort is an explicit pass-through: the constrained
// allocation already balances cost and comfort, so no redistribution is
// applied.
func (a *Allocator) applyBalanceComfort(budget model.TripBudget) model.TripBudget {
	return budget
}

// applyStrictBudget shaves 5% off every non-contingency category and banks
// the total reduction as a contingency safety margin.
func (a *Allocator) applyStrictBudget(budget model.TripBudget) model.TripBudget {
	totalReduction := decimal.Zero
	for _, category := range budget.Categories() {
		if category == model.CategoryContingency {
			continue
		}
		reduction := budget[category].Mul(fivePercent)
		budget[category] = budget[category].Sub(reduction)
		totalReduction = totalReduction.Add(reduction)
	}
	budget[model.CategoryContingency] = budget.Get(model.CategoryContingency).Add(totalReduction)
	return budget
}

// applyLuxuryFocus moves 80% of contingency into accommodation (70% of the
// boost) and food (30%).
func (a *Allocator) applyLuxuryFocus(budget model.TripBudget) model.TripBudget {
	contingency, ok := budget[model.CategoryContingency]
	if !ok {
		return budget
	}

	boost := contingency.Mul(eightyPercent)
	budget[model.CategoryContingency] = contingency.Sub(boost)
	budget[model.CategoryAccommodation] = budget.Get(model.CategoryAccommodation).Add(boost.Mul(seventyPct))
	budget[model.CategoryFood] = budget.Get(model.CategoryFood).Add(boost.Mul(thirtyPercent))
	return budget
}
