// Package scoring computes the allocator-level efficiency score, the
// orchestration-level optimization score, and the recommendation and
// warning lists.
package scoring

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/config"
	"github.com/jhalloway/tripflow/internal/model"
)

// Scorer evaluates allocations against the configured quality thresholds.
type Scorer struct {
	tables *config.Tables
}

// New creates a scorer backed by the given cost tables.
func New(tables *config.Tables) *Scorer {
	return &Scorer{tables: tables}
}

// EfficiencyScore rates an allocation between 0 and 1. Weights:
// accommodation ratio 30%, activities ratio 25%, contingency ratio 20%,
// and up to 25% bonus for correctly handled pet and business requirements.
func (s *Scorer) EfficiencyScore(costs model.TripBudget, req *model.TripRequest) float64 {
	total := costs.Total()
	if total.IsZero() {
		return 0
	}

	t := s.tables.Scoring
	score := 0.0

	accRatio := ratio(costs.Get(model.CategoryAccommodation), total)
	accMid := (t.AccommodationRatioLow + t.AccommodationRatioHigh) / 2
	if accRatio >= t.AccommodationRatioLow && accRatio <= t.AccommodationRatioHigh {
		score += 0.30
	} else {
		score += 0.30 * (1 - math.Abs(accRatio-accMid)/accMid)
	}

	actRatio := ratio(costs.Get(model.CategoryActivities), total)
	if actRatio >= t.ActivitiesRatioTarget {
		score += 0.25
	} else {
		score += 0.25 * (actRatio / t.ActivitiesRatioTarget)
	}

	contRatio := ratio(costs.Get(model.CategoryContingency), total)
	contMid := (t.ContingencyRatioLow + t.ContingencyRatioHigh) / 2
	if contRatio >= t.ContingencyRatioLow && contRatio <= t.ContingencyRatioHigh {
		score += 0.20
	} else {
		score += 0.20 * math.Max(0, 1-math.Abs(contRatio-contMid)/contMid)
	}

	if req.HasPets {
		if _, ok := costs[model.CategoryPetCosts]; ok {
			score += 0.125
		}
	}
	if req.BusinessPortion > 0 {
		score += 0.125
	}

	return math.Min(score, 1.0)
}

// OptimizationScore rates the orchestrated result: budget adherence 40%,
// special-requirement fulfillment 30%, allocation quality 30%.
func (s *Scorer) OptimizationScore(req *model.TripRequest, totalBudget, totalCost decimal.Decimal, breakdown map[string]decimal.Decimal, budget model.TripBudget) float64 {
	score := 0.0

	adherence := 1.0
	if totalCost.GreaterThan(totalBudget) {
		adherence = ratio(totalBudget, totalCost)
	}
	score += adherence * 0.4

	met, applicable := 0, 0
	if req.HasPets {
		applicable++
		if _, ok := breakdown["requirement_"+string(model.RequirementPetTravel)]; ok {
			met++
		}
	}
	if req.HasBusiness {
		applicable++
		if _, ok := breakdown["requirement_"+string(model.RequirementTaxDeduction)]; ok {
			met++
		}
	}
	fulfillment := 1.0
	if applicable > 0 {
		fulfillment = float64(met) / float64(applicable)
	}
	score += fulfillment * 0.3

	quality := 0.8
	if budget.Get(model.CategoryContingency).IsPositive() {
		quality += 0.1
	}
	if req.HasPets && budget.Get(model.CategoryPetCosts).IsPositive() {
		quality += 0.1
	}
	score += math.Min(quality, 1.0) * 0.3

	return math.Min(score, 1.0)
}

func ratio(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	r, _ := part.Div(whole).Float64()
	return r
}
