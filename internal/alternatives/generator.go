// Package alternatives produces named comparison allocations. Generation is
// deliberately non-recursive: alternatives are fixed percentage projections
// with static efficiency estimates, never re-entries into the optimization
// pipeline.
package alternatives

import (
	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/config"
	"github.com/jhalloway/tripflow/internal/model"
)

// Generator projects comparison allocations from a total budget.
type Generator struct {
	tables *config.Tables
}

// New creates a generator backed by the given cost tables.
func New(tables *config.Tables) *Generator {
	return &Generator{tables: tables}
}

// Generate returns a budget-conscious projection and, when the budget
// clears the configured floor, a luxury projection.
func (g *Generator) Generate(totalBudget decimal.Decimal) []model.AlternativeAllocation {
	alternatives := []model.AlternativeAllocation{
		g.project(
			"Budget-Conscious Option",
			"Minimize costs while maintaining essential experiences",
			g.tables.Alternatives.BudgetSplit,
			g.tables.Alternatives.BudgetEfficiency,
			totalBudget,
		),
	}

	if totalBudget.GreaterThan(g.tables.Alternatives.LuxuryFloor) {
		alternatives = append(alternatives, g.project(
			"Luxury Option",
			"Premium accommodations and experiences",
			g.tables.Alternatives.LuxurySplit,
			g.tables.Alternatives.LuxuryEfficiency,
			totalBudget,
		))
	}

	return alternatives
}

func (g *Generator) project(name, description string, split map[model.BudgetCategory]float64, efficiency float64, totalBudget decimal.Decimal) model.AlternativeAllocation {
	allocation := make(model.TripBudget, len(split))
	for category, fraction := range split {
		allocation[category] = totalBudget.Mul(decimal.NewFromFloat(fraction)).Round(2)
	}

	return model.AlternativeAllocation{
		Name:        name,
		Description: description,
		Allocation:  allocation,
		Savings:     totalBudget.Sub(allocation.Total()),
		Efficiency:  efficiency,
	}
}
