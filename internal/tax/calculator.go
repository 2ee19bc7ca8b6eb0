// Package tax estimates business deductions and tax savings for trips with
// a business component.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/config"
	"github.com/jhalloway/tripflow/internal/model"
)

// Calculator computes deductible spend from business-flagged activities and
// segments.
type Calculator struct {
	tables *config.Tables
}

// New creates a calculator backed by the given cost tables.
func New(tables *config.Tables) *Calculator {
	return &Calculator{tables: tables}
}

// Benefit is the outcome of a tax estimate.
type Benefit struct {
	// TotalDeductible is the business spend eligible for deduction.
	TotalDeductible decimal.Decimal
	// TaxSavings is TotalDeductible multiplied by the assumed marginal rate.
	TaxSavings decimal.Decimal
	// BusinessPercentage is total business-attributable spend over the trip
	// budget, as a percentage. Reporting only.
	BusinessPercentage float64
}

// Calculate applies per-category deduction rates to business activities,
// adds an assumed business-use share of accommodation and transport when
// any segment is business, and converts the deductible total into estimated
// tax savings.
func (c *Calculator) Calculate(activities []model.Activity, segments []model.TripSegment, budget model.TripBudget, totalBudget decimal.Decimal) Benefit {
	businessCost := decimal.Zero
	deductible := decimal.Zero

	for i := range activities {
		activity := &activities[i]
		if !activity.IsBusiness {
			continue
		}
		rate := c.deductionRate(activity.Category)
		businessCost = businessCost.Add(activity.Cost)
		deductible = deductible.Add(activity.Cost.Mul(rate))
	}

	if anyBusinessSegment(segments) {
		share := c.tables.BusinessUseShare
		businessAccommodation := budget.Get(model.CategoryAccommodation).Mul(share)
		businessTransport := budget.Get(model.CategoryTransport).Mul(share)

		businessCost = businessCost.Add(businessAccommodation).Add(businessTransport)
		deductible = deductible.
			Add(businessAccommodation.Mul(decimal.NewFromFloat(c.tables.DeductionRates["accommodation"]))).
			Add(businessTransport.Mul(decimal.NewFromFloat(c.tables.DeductionRates["transport"])))
	}

	savings := deductible.Mul(c.tables.MarginalTaxRate)

	businessPct := 0.0
	if totalBudget.IsPositive() {
		pct, _ := businessCost.Div(totalBudget).Mul(decimal.NewFromInt(100)).Float64()
		businessPct = pct
	}

	return Benefit{
		TotalDeductible:    deductible,
		TaxSavings:         savings,
		BusinessPercentage: businessPct,
	}
}

// deductionRate maps an activity category to its deduction rate. Meal and
// entertainment categories are partially deductible; everything else is
// treated as fully deductible transport-class spend.
func (c *Calculator) deductionRate(category string) decimal.Decimal {
	switch category {
	case "conference":
		return decimal.NewFromFloat(c.tables.DeductionRates["conference"])
	case "business_meal", "dining":
		return decimal.NewFromFloat(c.tables.DeductionRates["meals"])
	case "entertainment":
		return decimal.NewFromFloat(c.tables.DeductionRates["entertainment"])
	default:
		return decimal.NewFromFloat(c.tables.DeductionRates["transport"])
	}
}

func anyBusinessSegment(segments []model.TripSegment) bool {
	for i := range segments {
		if segments[i].IsBusiness {
			return true
		}
	}
	return false
}
