// Package allocator implements the budget allocation engine: archetype
// classification, base percentage splits, constraint clamping, strategy
// redistribution, bottom-up cost actualization, and overflow rebalancing.
package allocator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/common"
	"github.com/jhalloway/tripflow/internal/config"
	"github.com/jhalloway/tripflow/internal/model"
)

// Markers used for trip archetype classification.
var (
	businessMarkers = []string{"conference", "business", "work", "meeting"}
	familyMarkers   = []string{"family", "kids", "children", "disneyland", "theme park"}
)

// Allocator produces category-level budget allocations from a trip request.
type Allocator struct {
	tables *config.Tables
}

// New creates an allocator backed by the given cost tables.
func New(tables *config.Tables) *Allocator {
	return &Allocator{tables: tables}
}

// Classify determines the trip archetype. The rules form a priority
// cascade; the first match wins.
func (a *Allocator) Classify(req *model.TripRequest) model.TripType {
	text := strings.ToLower(strings.Join(append(append([]string{}, req.Purposes...), req.Activities...), " "))

	hasBusiness := containsAny(text, businessMarkers)
	hasFamily := containsAny(text, familyMarkers)

	switch {
	case hasBusiness && hasFamily:
		return model.TripMixedBusinessPersonal
	case hasBusiness:
		return model.TripBusiness
	case hasFamily:
		return model.TripFamilyVacation
	case len(req.Destinations) > 1:
		return model.TripMultiCity
	case req.DurationDays > 14:
		return model.TripExtendedStay
	default:
		return model.TripFamilyVacation
	}
}

// BaseAllocation multiplies the archetype's percentage table by the total
// budget.
func (a *Allocator) BaseAllocation(tripType model.TripType, total decimal.Decimal) model.TripBudget {
	split, ok := a.tables.Allocations[tripType]
	if !ok {
		split = a.tables.Allocations[model.TripFamilyVacation]
	}

	allocation := make(model.TripBudget, len(split))
	for category, fraction := range split {
		allocation[category] = total.Mul(decimal.NewFromFloat(fraction))
	}
	return allocation
}

// ValidateConstraints fails fast on internally inconsistent constraints so
// the engine never produces an allocation that cannot satisfy its own
// inputs.
func ValidateConstraints(constraints []model.BudgetConstraint) error {
	for i, c := range constraints {
		if !c.Category.Valid() {
			return fmt.Errorf("constraint %d: %w: %q", i, common.ErrUnknownCategory, c.Category)
		}
		if c.MinAmount != nil && c.MinAmount.IsNegative() {
			return fmt.Errorf("constraint %d (%s): %w: negative minimum", i, c.Category, common.ErrInvalidConstraint)
		}
		if c.MinAmount != nil && c.MaxAmount != nil && c.MinAmount.GreaterThan(*c.MaxAmount) {
			return fmt.Errorf("constraint %d (%s): %w", i, c.Category, common.ErrInvalidConstraint)
		}
		if c.PercentageMin != nil && c.PercentageMax != nil && *c.PercentageMin > *c.PercentageMax {
			return fmt.Errorf("constraint %d (%s): %w: percentage bounds", i, c.Category, common.ErrInvalidConstraint)
		}
	}
	return nil
}

// ApplyConstraints clamps each constrained category into its bounds, in
// input order. Later constraints may override earlier ones for the same
// category; bounds are applied literally.
func (a *Allocator) ApplyConstraints(budget model.TripBudget, constraints []model.BudgetConstraint) model.TripBudget {
	out := budget.Clone()
	total := budget.Total()

	for _, c := range constraints {
		amount := out.Get(c.Category)

		if c.MinAmount != nil && amount.LessThan(*c.MinAmount) {
			amount = *c.MinAmount
		}
		if c.MaxAmount != nil && amount.GreaterThan(*c.MaxAmount) {
			amount = *c.MaxAmount
		}

		if c.PercentageMin != nil {
			floor := total.Mul(decimal.NewFromFloat(*c.PercentageMin))
			if amount.LessThan(floor) {
				amount = floor
			}
		}
		if c.PercentageMax != nil {
			ceiling := total.Mul(decimal.NewFromFloat(*c.PercentageMax))
			if amount.GreaterThan(ceiling) {
				amount = ceiling
			}
		}

		out[c.Category] = amount
	}

	return out
}

// ActualizeCosts replaces percentage-derived targets with real unit costs:
// nightly rates across segments, per-person food, per-day transport, the
// planner's activity totals, and pet fees.
func (a *Allocator) ActualizeCosts(budget model.TripBudget, req *model.TripRequest, segments []model.TripSegment, activityTotal decimal.Decimal) model.TripBudget {
	out := budget.Clone()
	days := decimal.NewFromInt(int64(req.DurationDays))

	out[model.CategoryAccommodation] = a.accommodationCost(req, segments)
	out[model.CategoryFood] = a.tables.FoodPerPersonDay[foodTier(req)].
		Mul(decimal.NewFromInt(int64(req.PassengerCount))).
		Mul(days)
	out[model.CategoryTransport] = a.tables.TransportPerDay[transportMode(req)].Mul(days)
	out[model.CategoryActivities] = activityTotal

	if req.HasPets {
		out[model.CategoryPetCosts] = a.petCosts(req)
	}

	return out
}

// accommodationCost prices lodging for the whole trip. Family-hosted trips
// split nights into a free hosted half and a host-gift rate for the rest;
// otherwise each segment is priced at its accommodation type's nightly
// rate.
func (a *Allocator) accommodationCost(req *model.TripRequest, segments []model.TripSegment) decimal.Decimal {
	tier := accommodationTier(req)

	if hasPreference(req, string(model.AccommodationFamilyHosting)) {
		giftNights := req.DurationDays - req.DurationDays/2
		return a.tables.HostGiftPerNight.Mul(decimal.NewFromInt(int64(giftNights)))
	}

	if len(segments) == 0 {
		return a.tables.NightlyRates[model.AccommodationAirbnb][tier].
			Mul(decimal.NewFromInt(int64(req.DurationDays)))
	}

	total := decimal.Zero
	for i := range segments {
		seg := &segments[i]
		nights := decimal.NewFromInt(int64(seg.Days()))
		if seg.AccommodationType == model.AccommodationFamilyHosting {
			total = total.Add(a.tables.HostGiftPerNight.Mul(nights))
			continue
		}
		rates, ok := a.tables.NightlyRates[seg.AccommodationType]
		if !ok {
			rates = a.tables.NightlyRates[model.AccommodationAirbnb]
		}
		total = total.Add(rates[tier].Mul(nights))
	}
	return total
}

// petCosts totals one-time fees, per-day recurring fees, and the nightly
// accommodation surcharge.
func (a *Allocator) petCosts(req *model.TripRequest) decimal.Decimal {
	days := decimal.NewFromInt(int64(req.DurationDays))
	pets := decimal.NewFromInt(int64(req.Pets()))

	oneTime := a.tables.Pet.AirlineFeePerPet.Mul(pets).
		Add(a.tables.Pet.Carrier).
		Add(a.tables.Pet.HealthCertificate)
	recurring := a.tables.Pet.InsurancePerDay.Add(a.tables.Pet.FoodPerDay).Mul(days)
	surcharge := a.tables.Pet.SurchargePerNight.Mul(days)

	return oneTime.Add(recurring).Add(surcharge)
}

// Rebalance reduces categories in a strategy-dependent priority order, each
// by at most the configured cap, until the budget excess is absorbed. Any
// remaining excess is removed by uniform scaling so the final total equals
// the target exactly.
func (a *Allocator) Rebalance(budget model.TripBudget, target decimal.Decimal, strategy model.OptimizationStrategy) model.TripBudget {
	out := budget.Clone()
	excess := out.Total().Sub(target)
	if excess.Sign() <= 0 {
		return out
	}

	for _, category := range a.reductionOrder(strategy) {
		amount, ok := out[category]
		if !ok {
			continue
		}
		maxReduction := amount.Mul(a.tables.RebalanceCap).Round(2)
		reduction := decimal.Min(maxReduction, excess)
		out[category] = amount.Sub(reduction)
		excess = excess.Sub(reduction)
		if excess.Sign() <= 0 {
			break
		}
	}

	if excess.Sign() > 0 {
		scale := target.Div(out.Total())
		for category, amount := range out {
			out[category] = amount.Mul(scale).RoundDown(2)
		}
		// Division leaves a sub-cent residue; park it in the largest
		// category so the total lands exactly on the target.
		residual := target.Sub(out.Total())
		out[largestCategory(out)] = out.Get(largestCategory(out)).Add(residual)
	}

	return out
}

// reductionOrder returns the category priority list for overflow
// rebalancing under the given strategy.
func (a *Allocator) reductionOrder(strategy model.OptimizationStrategy) []model.BudgetCategory {
	switch strategy {
	case model.StrategyMinimizeCost:
		return []model.BudgetCategory{
			model.CategoryActivities, model.CategoryFood,
			model.CategoryAccommodation, model.CategoryTransport,
		}
	case model.StrategyLuxuryFocus:
		return []model.BudgetCategory{
			model.CategoryTransport, model.CategoryContingency,
			model.CategoryActivities, model.CategoryFood,
		}
	default:
		return []model.BudgetCategory{
			model.CategoryContingency, model.CategoryActivities,
			model.CategoryFood, model.CategoryTransport,
		}
	}
}

// Compliance re-evaluates every constraint against the final allocation and
// reports how many are satisfied. This is the only feasibility signal
// surfaced to the caller.
func (a *Allocator) Compliance(budget model.TripBudget, constraints []model.BudgetConstraint) (met, total int) {
	allocated := budget.Total()

	for _, c := range constraints {
		amount := budget.Get(c.Category)
		satisfied := true

		if c.MinAmount != nil && amount.LessThan(*c.MinAmount) {
			satisfied = false
		}
		if c.MaxAmount != nil && amount.GreaterThan(*c.MaxAmount) {
			satisfied = false
		}
		if c.PercentageMin != nil && amount.LessThan(allocated.Mul(decimal.NewFromFloat(*c.PercentageMin))) {
			satisfied = false
		}
		if c.PercentageMax != nil && amount.GreaterThan(allocated.Mul(decimal.NewFromFloat(*c.PercentageMax))) {
			satisfied = false
		}

		if satisfied {
			met++
		}
	}

	return met, len(constraints)
}

func largestCategory(budget model.TripBudget) model.BudgetCategory {
	var largest model.BudgetCategory
	max := decimal.NewFromInt(-1)
	for _, category := range budget.Categories() {
		if budget[category].GreaterThan(max) {
			max = budget[category]
			largest = category
		}
	}
	return largest
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func hasPreference(req *model.TripRequest, pref string) bool {
	for _, p := range req.AccommodationPreferences {
		if strings.EqualFold(p, pref) {
			return true
		}
	}
	return false
}

// accommodationTier picks the nightly rate tier from the request's
// preferences and budget flags.
func accommodationTier(req *model.TripRequest) config.Tier {
	switch {
	case req.LuxuryPreferred || hasPreference(req, "luxury"):
		return config.TierLuxury
	case req.BudgetConscious || hasPreference(req, "budget"):
		return config.TierBudget
	default:
		return config.TierMidRange
	}
}

func foodTier(req *model.TripRequest) config.Tier {
	switch {
	case req.LuxuryPreferred:
		return config.TierLuxury
	case req.BudgetConscious:
		return config.TierBudget
	default:
		return config.TierMidRange
	}
}

func transportMode(req *model.TripRequest) config.TransportMode {
	switch {
	case req.BudgetConscious:
		return config.TransportPublic
	case req.LuxuryPreferred:
		return config.TransportLuxury
	default:
		return config.TransportRideshare
	}
}
