// Package config loads the tunable cost tables and thresholds that drive
// budget allocation, so deployments can adjust rates without touching
// algorithm code.
package config

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jhalloway/tripflow/internal/common"
	"github.com/jhalloway/tripflow/internal/model"
)

// Tier is a quality level used by the nightly, food, and transport rate
// tables.
type Tier string

const (
	// TierBudget is the lowest-cost tier.
	TierBudget Tier = "budget"
	// TierMidRange is the default tier.
	TierMidRange Tier = "mid_range"
	// TierLuxury is the premium tier.
	TierLuxury Tier = "luxury"
)

// TransportMode selects the per-day local transport rate.
type TransportMode string

const (
	// TransportPublic is public transit.
	TransportPublic TransportMode = "public"
	// TransportRideshare is rideshare services.
	TransportRideshare TransportMode = "rideshare"
	// TransportRentalCar is a rental car.
	TransportRentalCar TransportMode = "rental_car"
	// TransportLuxury is private or luxury transport.
	TransportLuxury TransportMode = "luxury_transport"
)

// ActivityRates holds the flat rates used when pricing generated activities.
type ActivityRates struct {
	ThemeParkAdult         decimal.Decimal
	ThemeParkChild         decimal.Decimal
	FineDiningAdult        decimal.Decimal
	FineDiningChild        decimal.Decimal
	CasualDiningAdult      decimal.Decimal
	CasualDiningChild      decimal.Decimal
	ConferenceRegistration decimal.Decimal
	CarRentalPerDay        decimal.Decimal
	PetDaycarePerDay       decimal.Decimal
}

// PetFees holds the one-time and recurring fees for traveling pets.
type PetFees struct {
	AirlineFeePerPet  decimal.Decimal
	Carrier           decimal.Decimal
	HealthCertificate decimal.Decimal
	Insurance         decimal.Decimal
	InsurancePerDay   decimal.Decimal
	FoodPerDay        decimal.Decimal
	SurchargePerNight decimal.Decimal
}

// AlternativeTables configures the comparison allocations.
type AlternativeTables struct {
	BudgetSplit      map[model.BudgetCategory]float64
	LuxurySplit      map[model.BudgetCategory]float64
	LuxuryFloor      decimal.Decimal
	BudgetEfficiency float64
	LuxuryEfficiency float64
}

// ScoringThresholds holds the ratio boundaries used by the scoring engine
// and its recommendation and warning rules.
type ScoringThresholds struct {
	AccommodationRatioLow  float64
	AccommodationRatioHigh float64
	ActivitiesRatioTarget  float64
	ContingencyRatioLow    float64
	ContingencyRatioHigh   float64
	RecAccommodationHigh   float64
	RecAccommodationLow    float64
	RecActivitiesLow       float64
	RecFoodHigh            float64
	WarnAccommodationRatio float64
	WarnContingencyRatio   float64
	WarnPetShare           float64
	WarnLongTripDays       int
}

// Tables is the full set of externally supplied cost data consumed by the
// planning pipeline.
type Tables struct {
	NightlyRates     map[model.AccommodationType]map[Tier]decimal.Decimal
	FoodPerPersonDay map[Tier]decimal.Decimal
	TransportPerDay  map[TransportMode]decimal.Decimal
	Allocations      map[model.TripType]map[model.BudgetCategory]float64
	DeductionRates   map[string]float64
	Activity         ActivityRates
	Pet              PetFees
	Alternatives     AlternativeTables
	Scoring          ScoringThresholds
	HostGiftPerNight decimal.Decimal
	HostGiftFlat     decimal.Decimal
	MarginalTaxRate  decimal.Decimal
	BusinessUseShare decimal.Decimal
	DefaultBudget    decimal.Decimal
	RebalanceCap     decimal.Decimal
	ValueFloor       decimal.Decimal
	ThemeParkMarkers []string
}

// Load builds the cost tables from viper, applying registered defaults for
// any key the deployment does not override.
func Load(v *viper.Viper) (*Tables, error) {
	SetDefaults(v)

	dec := func(key string) decimal.Decimal {
		return decimal.NewFromFloat(v.GetFloat64(key))
	}

	t := &Tables{
		NightlyRates:     make(map[model.AccommodationType]map[Tier]decimal.Decimal),
		FoodPerPersonDay: make(map[Tier]decimal.Decimal),
		TransportPerDay:  make(map[TransportMode]decimal.Decimal),
		Allocations:      make(map[model.TripType]map[model.BudgetCategory]float64),
		DeductionRates:   make(map[string]float64),
		HostGiftPerNight: dec("costs.accommodation.host_gift_per_night"),
		HostGiftFlat:     dec("costs.hosting.host_gift"),
		MarginalTaxRate:  dec("tax.marginal_rate"),
		BusinessUseShare: dec("tax.business_use_share"),
		DefaultBudget:    dec("budget.default"),
		RebalanceCap:     dec("budget.rebalance_reduction_cap"),
		ValueFloor:       dec("budget.value_contingency_floor"),
		ThemeParkMarkers: v.GetStringSlice("planner.theme_park_markers"),
	}

	for _, at := range []model.AccommodationType{
		model.AccommodationHotel,
		model.AccommodationAirbnb,
		model.AccommodationPetFriendly,
	} {
		t.NightlyRates[at] = map[Tier]decimal.Decimal{
			TierBudget:   dec(fmt.Sprintf("costs.accommodation.%s.budget", at)),
			TierMidRange: dec(fmt.Sprintf("costs.accommodation.%s.mid_range", at)),
			TierLuxury:   dec(fmt.Sprintf("costs.accommodation.%s.luxury", at)),
		}
	}

	for _, tier := range []Tier{TierBudget, TierMidRange, TierLuxury} {
		t.FoodPerPersonDay[tier] = dec(fmt.Sprintf("costs.food.%s", tier))
	}

	for _, mode := range []TransportMode{TransportPublic, TransportRideshare, TransportRentalCar, TransportLuxury} {
		t.TransportPerDay[mode] = dec(fmt.Sprintf("costs.transport.%s", mode))
	}

	t.Activity = ActivityRates{
		ThemeParkAdult:         dec("costs.activity.theme_park_adult"),
		ThemeParkChild:         dec("costs.activity.theme_park_child"),
		FineDiningAdult:        dec("costs.activity.fine_dining_adult"),
		FineDiningChild:        dec("costs.activity.fine_dining_child"),
		CasualDiningAdult:      dec("costs.activity.casual_dining_adult"),
		CasualDiningChild:      dec("costs.activity.casual_dining_child"),
		ConferenceRegistration: dec("costs.activity.conference_registration"),
		CarRentalPerDay:        dec("costs.activity.car_rental_per_day"),
		PetDaycarePerDay:       dec("costs.activity.pet_daycare_per_day"),
	}

	t.Pet = PetFees{
		AirlineFeePerPet:  dec("costs.pet.airline_fee"),
		Carrier:           dec("costs.pet.carrier"),
		HealthCertificate: dec("costs.pet.health_certificate"),
		Insurance:         dec("costs.pet.insurance"),
		InsurancePerDay:   dec("costs.pet.insurance_per_day"),
		FoodPerDay:        dec("costs.pet.food_per_day"),
		SurchargePerNight: dec("costs.pet.accommodation_surcharge_per_night"),
	}

	for _, rate := range []string{"conference", "transport", "accommodation", "flights", "meals", "entertainment"} {
		t.DeductionRates[rate] = v.GetFloat64("tax.deduction_rates." + rate)
	}

	for _, tt := range []model.TripType{
		model.TripFamilyVacation,
		model.TripBusiness,
		model.TripMixedBusinessPersonal,
		model.TripMultiCity,
		model.TripExtendedStay,
	} {
		row, err := loadSplit(v, "allocations."+string(tt))
		if err != nil {
			return nil, fmt.Errorf("allocation table %s: %w", tt, err)
		}
		t.Allocations[tt] = row
	}

	budgetSplit, err := loadSplit(v, "alternatives.budget_conscious.split")
	if err != nil {
		return nil, fmt.Errorf("budget-conscious alternative: %w", err)
	}
	luxurySplit, err := loadSplit(v, "alternatives.luxury.split")
	if err != nil {
		return nil, fmt.Errorf("luxury alternative: %w", err)
	}
	t.Alternatives = AlternativeTables{
		BudgetSplit:      budgetSplit,
		LuxurySplit:      luxurySplit,
		LuxuryFloor:      dec("alternatives.luxury.floor"),
		BudgetEfficiency: v.GetFloat64("alternatives.budget_conscious.efficiency"),
		LuxuryEfficiency: v.GetFloat64("alternatives.luxury.efficiency"),
	}

	t.Scoring = ScoringThresholds{
		AccommodationRatioLow:  v.GetFloat64("scoring.accommodation_ratio_low"),
		AccommodationRatioHigh: v.GetFloat64("scoring.accommodation_ratio_high"),
		ActivitiesRatioTarget:  v.GetFloat64("scoring.activities_ratio_target"),
		ContingencyRatioLow:    v.GetFloat64("scoring.contingency_ratio_low"),
		ContingencyRatioHigh:   v.GetFloat64("scoring.contingency_ratio_high"),
		RecAccommodationHigh:   v.GetFloat64("scoring.rec_accommodation_high"),
		RecAccommodationLow:    v.GetFloat64("scoring.rec_accommodation_low"),
		RecActivitiesLow:       v.GetFloat64("scoring.rec_activities_low"),
		RecFoodHigh:            v.GetFloat64("scoring.rec_food_high"),
		WarnAccommodationRatio: v.GetFloat64("scoring.warn_accommodation_ratio"),
		WarnContingencyRatio:   v.GetFloat64("scoring.warn_contingency_ratio"),
		WarnPetShare:           v.GetFloat64("scoring.warn_pet_share"),
		WarnLongTripDays:       v.GetInt("scoring.warn_long_trip_days"),
	}

	if !t.DefaultBudget.IsPositive() {
		return nil, fmt.Errorf("%w: default budget must be positive", common.ErrInvalidConfig)
	}

	return t, nil
}

// loadSplit reads a category→fraction map and checks it sums to 100%.
func loadSplit(v *viper.Viper, prefix string) (map[model.BudgetCategory]float64, error) {
	raw := v.GetStringMap(prefix)
	if len(raw) == 0 {
		return nil, common.ErrMissingConfig
	}

	split := make(map[model.BudgetCategory]float64, len(raw))
	sum := 0.0
	for key := range raw {
		category := model.BudgetCategory(key)
		if !category.Valid() {
			return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, key)
		}
		fraction := v.GetFloat64(prefix + "." + key)
		if fraction < 0 {
			return nil, fmt.Errorf("%w: negative share for %s", common.ErrInvalidConfig, key)
		}
		split[category] = fraction
		sum += fraction
	}

	if math.Abs(sum-1.0) > 1e-9 {
		return nil, fmt.Errorf("%w: shares sum to %.4f, want 1.0", common.ErrInvalidConfig, sum)
	}

	return split, nil
}
