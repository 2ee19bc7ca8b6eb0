package engine

import (
	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/model"
	"github.com/jhalloway/tripflow/internal/tax"
)

// BudgetAllocator produces and reshapes category-level allocations.
type BudgetAllocator interface {
	Classify(req *model.TripRequest) model.TripType
	BaseAllocation(tripType model.TripType, total decimal.Decimal) model.TripBudget
	ApplyConstraints(budget model.TripBudget, constraints []model.BudgetConstraint) model.TripBudget
	ApplyStrategy(budget model.TripBudget, strategy model.OptimizationStrategy) (model.TripBudget, error)
	ActualizeCosts(budget model.TripBudget, req *model.TripRequest, segments []model.TripSegment, activityTotal decimal.Decimal) model.TripBudget
	Rebalance(budget model.TripBudget, target decimal.Decimal, strategy model.OptimizationStrategy) model.TripBudget
	Compliance(budget model.TripBudget, constraints []model.BudgetConstraint) (met, total int)
}

// ItineraryPlanner builds segments, activities, and requirement records.
type ItineraryPlanner interface {
	PlanSegments(req *model.TripRequest, totalBudget decimal.Decimal) ([]model.TripSegment, error)
	PlanActivities(req *model.TripRequest, segments []model.TripSegment) []model.Activity
	Requirements(req *model.TripRequest) []model.SpecialRequirement
}

// TaxCalculator estimates business deductions.
type TaxCalculator interface {
	Calculate(activities []model.Activity, segments []model.TripSegment, budget model.TripBudget, totalBudget decimal.Decimal) tax.Benefit
}

// Scorer rates allocations and produces advice.
type Scorer interface {
	EfficiencyScore(costs model.TripBudget, req *model.TripRequest) float64
	OptimizationScore(req *model.TripRequest, totalBudget, totalCost decimal.Decimal, breakdown map[string]decimal.Decimal, budget model.TripBudget) float64
	Recommendations(costs model.TripBudget, req *model.TripRequest) []string
	Warnings(costs model.TripBudget, req *model.TripRequest, totalBudget decimal.Decimal) []string
}

// AlternativesGenerator projects comparison allocations.
type AlternativesGenerator interface {
	Generate(totalBudget decimal.Decimal) []model.AlternativeAllocation
}
