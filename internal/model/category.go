package model

import "fmt"

// BudgetCategory is one of the fixed set of spend buckets a trip budget is
// split across.
type BudgetCategory string

const (
	// CategoryFlights covers air travel between origin and destinations.
	CategoryFlights BudgetCategory = "flights"
	// CategoryAccommodation covers lodging for every segment.
	CategoryAccommodation BudgetCategory = "accommodation"
	// CategoryActivities covers admissions, dining experiences, and rentals.
	CategoryActivities BudgetCategory = "activities"
	// CategoryFood covers day-to-day meals.
	CategoryFood BudgetCategory = "food"
	// CategoryTransport covers local ground transport.
	CategoryTransport BudgetCategory = "transport"
	// CategoryPetCosts covers fees and surcharges for traveling pets.
	CategoryPetCosts BudgetCategory = "pet_costs"
	// CategoryBusiness covers business-specific spend such as event fees.
	CategoryBusiness BudgetCategory = "business"
	// CategoryContingency is the unallocated safety margin.
	CategoryContingency BudgetCategory = "contingency"
	// CategoryShopping covers discretionary purchases.
	CategoryShopping BudgetCategory = "shopping"
	// CategoryInsurance covers travel insurance.
	CategoryInsurance BudgetCategory = "insurance"
)

// AllCategories lists every valid budget category.
func AllCategories() []BudgetCategory {
	return []BudgetCategory{
		CategoryFlights,
		CategoryAccommodation,
		CategoryActivities,
		CategoryFood,
		CategoryTransport,
		CategoryPetCosts,
		CategoryBusiness,
		CategoryContingency,
		CategoryShopping,
		CategoryInsurance,
	}
}

// Valid reports whether the category is one of the known variants.
func (c BudgetCategory) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// OptimizationStrategy is a named redistribution policy applied once after
// constraint clamping.
type OptimizationStrategy string

const (
	// StrategyMinimizeCost trims comfort categories into contingency.
	StrategyMinimizeCost OptimizationStrategy = "minimize_cost"
	// StrategyMaximizeValue spends surplus contingency on lodging and activities.
	StrategyMaximizeValue OptimizationStrategy = "maximize_value"
	// StrategyBalanceComfort keeps the constrained allocation as-is.
	StrategyBalanceComfort OptimizationStrategy = "balance_comfort"
	// StrategyStrictBudget shaves every category for a safety margin.
	StrategyStrictBudget OptimizationStrategy = "strict_budget"
	// StrategyLuxuryFocus moves contingency into lodging and food.
	StrategyLuxuryFocus OptimizationStrategy = "luxury_focus"
)

// AllStrategies lists every valid optimization strategy.
func AllStrategies() []OptimizationStrategy {
	return []OptimizationStrategy{
		StrategyMinimizeCost,
		StrategyMaximizeValue,
		StrategyBalanceComfort,
		StrategyStrictBudget,
		StrategyLuxuryFocus,
	}
}

// ParseStrategy converts a string into an OptimizationStrategy.
func ParseStrategy(s string) (OptimizationStrategy, error) {
	for _, known := range AllStrategies() {
		if OptimizationStrategy(s) == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown optimization strategy %q", s)
}

// TripType classifies a trip for base budget allocation purposes.
type TripType string

const (
	// TripFamilyVacation is the default archetype for leisure travel.
	TripFamilyVacation TripType = "family_vacation"
	// TripBusiness is a trip driven primarily by business purposes.
	TripBusiness TripType = "business_trip"
	// TripMixedBusinessPersonal combines business and family purposes.
	TripMixedBusinessPersonal TripType = "mixed_business_personal"
	// TripMultiCity visits more than one destination.
	TripMultiCity TripType = "multi_city"
	// TripExtendedStay runs longer than two weeks.
	TripExtendedStay TripType = "extended_stay"
)

// AccommodationType is the lodging arrangement chosen for a segment.
type AccommodationType string

const (
	// AccommodationHotel is standard hotel lodging.
	AccommodationHotel AccommodationType = "hotel"
	// AccommodationAirbnb is a vacation rental.
	AccommodationAirbnb AccommodationType = "airbnb"
	// AccommodationFamilyHosting is staying with family or friends.
	AccommodationFamilyHosting AccommodationType = "family_hosting"
	// AccommodationPetFriendly is lodging that accepts pets.
	AccommodationPetFriendly AccommodationType = "pet_friendly"
)

// RequirementType identifies a special requirement attached to a trip.
type RequirementType string

const (
	// RequirementPetTravel covers traveling with pets.
	RequirementPetTravel RequirementType = "pet_travel"
	// RequirementBusinessEvent covers attending a business event.
	RequirementBusinessEvent RequirementType = "business_event"
	// RequirementFamilyHosting covers coordinating a family-hosted stay.
	RequirementFamilyHosting RequirementType = "family_hosting"
	// RequirementTaxDeduction covers business expense documentation.
	RequirementTaxDeduction RequirementType = "tax_deduction"
	// RequirementAccessibility covers accessibility arrangements.
	RequirementAccessibility RequirementType = "accessibility"
	// RequirementDietary covers dietary restrictions.
	RequirementDietary RequirementType = "dietary"
	// RequirementConference covers conference attendance.
	RequirementConference RequirementType = "conference"
)
