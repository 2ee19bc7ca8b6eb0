package config

import "github.com/spf13/viper"

// SetDefaults registers the default cost tables so the pipeline works out of
// the box. Every key can be overridden per deployment through the config
// file or TRIPFLOW_* environment variables.
func SetDefaults(v *viper.Viper) {
	// Nightly accommodation rates by type and tier.
	v.SetDefault("costs.accommodation.hotel.budget", 80)
	v.SetDefault("costs.accommodation.hotel.mid_range", 150)
	v.SetDefault("costs.accommodation.hotel.luxury", 300)
	v.SetDefault("costs.accommodation.airbnb.budget", 60)
	v.SetDefault("costs.accommodation.airbnb.mid_range", 120)
	v.SetDefault("costs.accommodation.airbnb.luxury", 250)
	v.SetDefault("costs.accommodation.pet_friendly.budget", 100)
	v.SetDefault("costs.accommodation.pet_friendly.mid_range", 180)
	v.SetDefault("costs.accommodation.pet_friendly.luxury", 350)
	v.SetDefault("costs.accommodation.host_gift_per_night", 25)
	v.SetDefault("costs.hosting.host_gift", 50)

	// Food, per person per day.
	v.SetDefault("costs.food.budget", 30)
	v.SetDefault("costs.food.mid_range", 60)
	v.SetDefault("costs.food.luxury", 120)

	// Local transport, per day.
	v.SetDefault("costs.transport.public", 15)
	v.SetDefault("costs.transport.rideshare", 35)
	v.SetDefault("costs.transport.rental_car", 45)
	v.SetDefault("costs.transport.luxury_transport", 100)

	// Flat activity rates.
	v.SetDefault("costs.activity.theme_park_adult", 120)
	v.SetDefault("costs.activity.theme_park_child", 100)
	v.SetDefault("costs.activity.fine_dining_adult", 80)
	v.SetDefault("costs.activity.fine_dining_child", 40)
	v.SetDefault("costs.activity.casual_dining_adult", 25)
	v.SetDefault("costs.activity.casual_dining_child", 15)
	v.SetDefault("costs.activity.conference_registration", 500)
	v.SetDefault("costs.activity.car_rental_per_day", 45)
	v.SetDefault("costs.activity.pet_daycare_per_day", 35)

	// Pet travel fees. The first four are the one-time fees summed into the
	// pet_travel requirement; the rest feed the pet_costs category.
	v.SetDefault("costs.pet.airline_fee", 125)
	v.SetDefault("costs.pet.carrier", 80)
	v.SetDefault("costs.pet.health_certificate", 150)
	v.SetDefault("costs.pet.insurance", 50)
	v.SetDefault("costs.pet.insurance_per_day", 15)
	v.SetDefault("costs.pet.food_per_day", 20)
	v.SetDefault("costs.pet.accommodation_surcharge_per_night", 25)

	// Business tax assumptions.
	v.SetDefault("tax.marginal_rate", 0.25)
	v.SetDefault("tax.business_use_share", 0.5)
	v.SetDefault("tax.deduction_rates.conference", 1.0)
	v.SetDefault("tax.deduction_rates.transport", 1.0)
	v.SetDefault("tax.deduction_rates.accommodation", 1.0)
	v.SetDefault("tax.deduction_rates.flights", 1.0)
	v.SetDefault("tax.deduction_rates.meals", 0.5)
	v.SetDefault("tax.deduction_rates.entertainment", 0.5)

	// Base allocation splits per trip archetype. Each row sums to 1.0.
	v.SetDefault("allocations.family_vacation", map[string]any{
		"flights": 0.35, "accommodation": 0.25, "activities": 0.20,
		"food": 0.15, "transport": 0.03, "contingency": 0.02,
	})
	v.SetDefault("allocations.business_trip", map[string]any{
		"flights": 0.40, "accommodation": 0.30, "business": 0.15,
		"food": 0.10, "transport": 0.03, "contingency": 0.02,
	})
	v.SetDefault("allocations.mixed_business_personal", map[string]any{
		"flights": 0.35, "accommodation": 0.28, "business": 0.10,
		"activities": 0.12, "food": 0.10, "transport": 0.03, "contingency": 0.02,
	})
	v.SetDefault("allocations.multi_city", map[string]any{
		"flights": 0.40, "accommodation": 0.25, "activities": 0.15,
		"food": 0.12, "transport": 0.06, "contingency": 0.02,
	})
	v.SetDefault("allocations.extended_stay", map[string]any{
		"flights": 0.25, "accommodation": 0.35, "activities": 0.15,
		"food": 0.18, "transport": 0.05, "contingency": 0.02,
	})

	// Comparison allocations.
	v.SetDefault("alternatives.budget_conscious.split", map[string]any{
		"flights": 0.45, "accommodation": 0.20, "activities": 0.15,
		"food": 0.15, "transport": 0.03, "contingency": 0.02,
	})
	v.SetDefault("alternatives.budget_conscious.efficiency", 0.75)
	v.SetDefault("alternatives.luxury.split", map[string]any{
		"flights": 0.30, "accommodation": 0.35, "activities": 0.20,
		"food": 0.12, "transport": 0.02, "contingency": 0.01,
	})
	v.SetDefault("alternatives.luxury.efficiency", 0.85)
	v.SetDefault("alternatives.luxury.floor", 3000)

	// Budget handling.
	v.SetDefault("budget.default", 6000)
	v.SetDefault("budget.rebalance_reduction_cap", 0.20)
	v.SetDefault("budget.value_contingency_floor", 100)

	// Planner.
	v.SetDefault("planner.theme_park_markers", []string{"disneyland", "disney"})

	// Scoring thresholds.
	v.SetDefault("scoring.accommodation_ratio_low", 0.20)
	v.SetDefault("scoring.accommodation_ratio_high", 0.35)
	v.SetDefault("scoring.activities_ratio_target", 0.15)
	v.SetDefault("scoring.contingency_ratio_low", 0.02)
	v.SetDefault("scoring.contingency_ratio_high", 0.05)
	v.SetDefault("scoring.rec_accommodation_high", 0.40)
	v.SetDefault("scoring.rec_accommodation_low", 0.20)
	v.SetDefault("scoring.rec_activities_low", 0.10)
	v.SetDefault("scoring.rec_food_high", 0.20)
	v.SetDefault("scoring.warn_accommodation_ratio", 0.50)
	v.SetDefault("scoring.warn_contingency_ratio", 0.02)
	v.SetDefault("scoring.warn_pet_share", 0.15)
	v.SetDefault("scoring.warn_long_trip_days", 14)
}
