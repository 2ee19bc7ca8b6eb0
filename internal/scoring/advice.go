package scoring

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/model"
)

// Recommendations generates ordered advice from the final allocation's
// category ratios and the trip's characteristics.
func (s *Scorer) Recommendations(costs model.TripBudget, req *model.TripRequest) []string {
	var recommendations []string
	total := costs.Total()
	if total.IsZero() {
		return recommendations
	}

	t := s.tables.Scoring

	accRatio := ratio(costs.Get(model.CategoryAccommodation), total)
	if accRatio > t.RecAccommodationHigh {
		recommendations = append(recommendations, "Consider vacation rentals or family hosting to reduce accommodation costs")
	} else if accRatio < t.RecAccommodationLow {
		recommendations = append(recommendations, "Consider upgrading accommodation for better comfort")
	}

	if ratio(costs.Get(model.CategoryActivities), total) < t.RecActivitiesLow {
		recommendations = append(recommendations, "Allocate more budget to activities for a richer experience")
	}

	if ratio(costs.Get(model.CategoryFood), total) > t.RecFoodHigh {
		recommendations = append(recommendations, "Look for accommodation with kitchen facilities to save on dining costs")
	}

	if len(req.Destinations) > 1 {
		recommendations = append(recommendations, "Consider train or bus travel between cities to save on transport costs")
	}

	if req.BusinessPortion > 0 {
		recommendations = append(recommendations,
			"Ensure proper documentation for business expense deductions",
			"Schedule business activities early in the trip for better tax benefits")
	}

	if req.HasPets {
		recommendations = append(recommendations,
			"Book pet-friendly accommodations early for better rates",
			"Consider pet insurance for longer trips")
	}

	return recommendations
}

// Warnings generates ordered budget warnings.
func (s *Scorer) Warnings(costs model.TripBudget, req *model.TripRequest, totalBudget decimal.Decimal) []string {
	var warnings []string
	total := costs.Total()
	if total.IsZero() {
		return warnings
	}

	t := s.tables.Scoring

	if total.GreaterThan(totalBudget) {
		warnings = append(warnings, fmt.Sprintf("Budget exceeded by $%s", total.Sub(totalBudget).StringFixed(2)))
	}

	if ratio(costs.Get(model.CategoryContingency), total) < t.WarnContingencyRatio {
		warnings = append(warnings, "Very low contingency budget - consider increasing for unexpected expenses")
	}

	if ratio(costs.Get(model.CategoryAccommodation), total) > t.WarnAccommodationRatio {
		warnings = append(warnings, "Accommodation costs are very high - consider alternative options")
	}

	if req.HasPets {
		petShare := totalBudget.Mul(decimal.NewFromFloat(t.WarnPetShare))
		if costs.Get(model.CategoryPetCosts).GreaterThan(petShare) {
			warnings = append(warnings, "Pet travel costs are significant - verify all requirements and fees")
		}
	}

	if req.DurationDays > t.WarnLongTripDays {
		warnings = append(warnings, "Extended trip - consider mid-trip accommodation changes to optimize costs")
	}

	return warnings
}
