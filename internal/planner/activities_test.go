package planner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalloway/tripflow/internal/model"
)

func TestPlanner_PlanActivities_ThemePark(t *testing.T) {
	p := New(testTables(t))

	req := &model.TripRequest{
		DurationDays:   3,
		PassengerCount: 5,
		Destinations:   []string{"Disneyland"},
		StartDate:      "2026-09-01",
	}
	segments, err := p.PlanSegments(req, decimal.NewFromInt(5000))
	require.NoError(t, err)

	activities := p.PlanActivities(req, segments)
	require.Len(t, activities, 3, "admission, dining, and car rental")

	byName := indexByName(activities)

	admission := byName["Disneyland Park Admission"]
	require.NotNil(t, admission)
	// 3 adults at 120 and 2 children at 100.
	assert.True(t, admission.Cost.Equal(decimal.NewFromInt(560)), "got %s", admission.Cost)
	assert.True(t, admission.BookingRequired)
	assert.Equal(t, "theme_park", admission.Category)

	dining := byName["Character Dining Experience"]
	require.NotNil(t, dining)
	// 3 adults at 80 and 2 children at 40.
	assert.True(t, dining.Cost.Equal(decimal.NewFromInt(320)), "got %s", dining.Cost)

	rental := byName["Car Rental"]
	require.NotNil(t, rental)
	assert.True(t, rental.Cost.Equal(decimal.NewFromInt(135)), "3 days at 45")
}

func TestPlanner_PlanActivities_Conference(t *testing.T) {
	p := New(testTables(t))

	req := &model.TripRequest{
		DurationDays:   4,
		PassengerCount: 1,
		Destinations:   []string{"Austin"},
		StartDate:      "2026-09-01",
		Purposes:       []string{"tech conference"},
		HasBusiness:    true,
	}
	segments, err := p.PlanSegments(req, decimal.NewFromInt(3000))
	require.NoError(t, err)
	require.True(t, segments[0].IsBusiness)

	activities := p.PlanActivities(req, segments)
	byName := indexByName(activities)

	registration := byName["Conference Registration"]
	require.NotNil(t, registration)
	assert.True(t, registration.Cost.Equal(decimal.NewFromInt(500)))
	assert.True(t, registration.IsBusiness)
	assert.Equal(t, "conference", registration.Category)

	dinner := byName["Business Networking Dinner"]
	require.NotNil(t, dinner)
	assert.True(t, dinner.Cost.Equal(decimal.NewFromInt(80)))
	assert.True(t, dinner.IsBusiness)
	assert.Equal(t, "business_meal", dinner.Category)
}

func TestPlanner_PlanActivities_HostedSegmentSkipsCarRental(t *testing.T) {
	p := New(testTables(t))

	req := &model.TripRequest{
		DurationDays:   5,
		PassengerCount: 2,
		Destinations:   []string{"Cleveland"},
		StartDate:      "2026-09-01",
		Purposes:       []string{"staying with family"},
	}
	segments, err := p.PlanSegments(req, decimal.NewFromInt(2000))
	require.NoError(t, err)
	require.Equal(t, model.AccommodationFamilyHosting, segments[0].AccommodationType)

	activities := p.PlanActivities(req, segments)
	assert.Empty(t, activities, "hosted travelers borrow the family car")
}

func TestActivityTotal(t *testing.T) {
	activities := []model.Activity{
		{Cost: decimal.NewFromInt(560)},
		{Cost: decimal.NewFromInt(320)},
		{Cost: decimal.NewFromInt(135)},
	}
	assert.True(t, ActivityTotal(activities).Equal(decimal.NewFromInt(1015)))
	assert.True(t, ActivityTotal(nil).IsZero())
}

func TestPlanner_Requirements(t *testing.T) {
	p := New(testTables(t))

	t.Run("pet travel", func(t *testing.T) {
		req := &model.TripRequest{HasPets: true}

		requirements := p.Requirements(req)
		require.Len(t, requirements, 1)

		r := requirements[0]
		assert.Equal(t, model.RequirementPetTravel, r.Type)
		// airline 125 + carrier 80 + health certificate 150 + insurance 50.
		assert.True(t, r.CostImpact.Equal(decimal.NewFromInt(405)), "got %s", r.CostImpact)
		assert.False(t, r.BusinessDeductible)
		assert.Equal(t, true, r.Logistics["pet_carrier_required"])
	})

	t.Run("business tax documentation", func(t *testing.T) {
		req := &model.TripRequest{HasBusiness: true}

		requirements := p.Requirements(req)
		require.Len(t, requirements, 1)

		r := requirements[0]
		assert.Equal(t, model.RequirementTaxDeduction, r.Type)
		assert.True(t, r.CostImpact.IsZero())
		assert.True(t, r.BusinessDeductible)
	})

	t.Run("family hosting", func(t *testing.T) {
		req := &model.TripRequest{Purposes: []string{"staying with my parents"}}

		requirements := p.Requirements(req)
		require.Len(t, requirements, 1)

		r := requirements[0]
		assert.Equal(t, model.RequirementFamilyHosting, r.Type)
		assert.True(t, r.CostImpact.Equal(decimal.NewFromInt(50)), "flat host gift")
	})

	t.Run("plain trip has none", func(t *testing.T) {
		assert.Empty(t, p.Requirements(&model.TripRequest{}))
	})
}

func indexByName(activities []model.Activity) map[string]*model.Activity {
	byName := make(map[string]*model.Activity, len(activities))
	for i := range activities {
		byName[activities[i].Name] = &activities[i]
	}
	return byName
}
