// Package engine orchestrates the trip planning pipeline: budget
// allocation, itinerary planning, tax estimation, scoring, and alternative
// generation. Every stage is a pure function over immutable inputs, so the
// engine is safe for concurrent use across independent requests.
package engine

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/allocator"
	"github.com/jhalloway/tripflow/internal/alternatives"
	"github.com/jhalloway/tripflow/internal/common"
	"github.com/jhalloway/tripflow/internal/config"
	"github.com/jhalloway/tripflow/internal/model"
	"github.com/jhalloway/tripflow/internal/planner"
	"github.com/jhalloway/tripflow/internal/scoring"
	"github.com/jhalloway/tripflow/internal/tax"
)

// Engine runs the full planning pipeline.
type Engine struct {
	allocator     BudgetAllocator
	planner       ItineraryPlanner
	tax           TaxCalculator
	scorer        Scorer
	alternatives  AlternativesGenerator
	defaultBudget decimal.Decimal
}

// New wires the engine from a single set of cost tables.
func New(tables *config.Tables) *Engine {
	return NewWithComponents(
		allocator.New(tables),
		planner.New(tables),
		tax.New(tables),
		scoring.New(tables),
		alternatives.New(tables),
		tables.DefaultBudget,
	)
}

// NewWithComponents wires the engine from explicit components.
func NewWithComponents(a BudgetAllocator, p ItineraryPlanner, t TaxCalculator, s Scorer, g AlternativesGenerator, defaultBudget decimal.Decimal) *Engine {
	return &Engine{
		allocator:     a,
		planner:       p,
		tax:           t,
		scorer:        s,
		alternatives:  g,
		defaultBudget: defaultBudget,
	}
}

// Plan turns a trip request into a complete itinerary with an optimized
// budget. The returned itinerary is freshly built and never shared.
func (e *Engine) Plan(ctx context.Context, req *model.TripRequest, constraints []model.BudgetConstraint, strategy model.OptimizationStrategy) (*model.TripItinerary, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	if err := allocator.ValidateConstraints(constraints); err != nil {
		return nil, err
	}

	total := req.Budget
	if !total.IsPositive() {
		slog.InfoContext(ctx, "no usable budget on request, substituting default",
			"requested", req.Budget, "default", e.defaultBudget)
		total = e.defaultBudget
	}

	tripType := e.allocator.Classify(req)
	slog.InfoContext(ctx, "planning trip",
		"trip_type", tripType, "strategy", strategy,
		"budget", total, "destinations", len(req.Destinations))

	base := e.allocator.BaseAllocation(tripType, total)
	constrained := e.allocator.ApplyConstraints(base, constraints)
	target, err := e.allocator.ApplyStrategy(constrained, strategy)
	if err != nil {
		return nil, err
	}

	segments, err := e.planner.PlanSegments(req, total)
	if err != nil {
		return nil, err
	}
	activities := e.planner.PlanActivities(req, segments)
	requirements := e.planner.Requirements(req)

	final := e.allocator.ActualizeCosts(target, req, segments, planner.ActivityTotal(activities)).Round(2)
	if final.Total().GreaterThan(total) {
		final = e.allocator.Rebalance(final, total, strategy)
	}

	totalCost := final.Total()
	benefit := e.tax.Calculate(activities, segments, final, total)
	breakdown := costBreakdown(final, activities, requirements)
	met, totalConstraints := e.allocator.Compliance(final, constraints)

	itinerary := &model.TripItinerary{
		TripID:             tripID(req, constraints, strategy),
		TripType:           tripType,
		TotalDurationDays:  planner.Duration(segments),
		Segments:           segments,
		Activities:         activities,
		Requirements:       requirements,
		Budget:             final,
		CostBreakdown:      breakdown,
		TotalBudget:        total,
		TotalCost:          totalCost,
		Savings:            total.Sub(totalCost),
		TaxSavings:         benefit.TaxSavings.Round(2),
		BusinessPercentage: benefit.BusinessPercentage,
		EfficiencyScore:    e.scorer.EfficiencyScore(final, req),
		OptimizationScore:  e.scorer.OptimizationScore(req, total, totalCost, breakdown, final),
		Recommendations:    e.scorer.Recommendations(final, req),
		Warnings:           e.scorer.Warnings(final, req, total),
		ConstraintsMet:     met,
		TotalConstraints:   totalConstraints,
		Alternatives:       e.alternatives.Generate(total),
	}

	slog.InfoContext(ctx, "trip planned",
		"trip_id", itinerary.TripID,
		"total_cost", itinerary.TotalCost,
		"savings", itinerary.Savings,
		"efficiency", itinerary.EfficiencyScore,
		"constraints_met", fmt.Sprintf("%d/%d", met, totalConstraints))

	return itinerary, nil
}

// ValidateRequest enforces the pipeline's preconditions.
func ValidateRequest(req *model.TripRequest) error {
	if len(req.Destinations) == 0 {
		return common.ErrEmptyDestinations
	}
	if req.DurationDays < 1 {
		return common.ErrInvalidDuration
	}
	if req.PassengerCount < 1 {
		return common.ErrInvalidPassengers
	}
	if req.BusinessPortion < 0 || req.BusinessPortion > 1 {
		return common.ErrInvalidPortion
	}
	if _, err := req.Start(); err != nil {
		return err
	}
	return nil
}

// costBreakdown merges the final allocation with synthetic per-activity and
// per-requirement detail lines, everything rounded to cents.
func costBreakdown(budget model.TripBudget, activities []model.Activity, requirements []model.SpecialRequirement) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal, len(budget)+len(activities)+len(requirements))

	for category, amount := range budget {
		breakdown[string(category)] = amount.Round(2)
	}

	for i := range activities {
		key := "activity_" + activities[i].Category
		breakdown[key] = breakdown[key].Add(activities[i].Cost.Round(2))
	}

	for i := range requirements {
		key := "requirement_" + string(requirements[i].Type)
		breakdown[key] = requirements[i].CostImpact.Round(2)
	}

	return breakdown
}

// tripID derives a stable identifier from the full planning input so
// identical requests always produce identical itineraries.
func tripID(req *model.TripRequest, constraints []model.BudgetConstraint, strategy model.OptimizationStrategy) string {
	payload, err := json.Marshal(struct {
		Request     *model.TripRequest         `json:"request"`
		Constraints []model.BudgetConstraint   `json:"constraints"`
		Strategy    model.OptimizationStrategy `json:"strategy"`
	}{req, constraints, strategy})
	if err != nil {
		payload = []byte(fmt.Sprintf("%+v/%+v/%s", req, constraints, strategy))
	}

	hash := sha256.Sum256(payload)
	return fmt.Sprintf("trip_%x", hash[:8])
}
