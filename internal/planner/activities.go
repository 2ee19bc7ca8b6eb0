package planner

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/model"
)

// PlanActivities generates priced activities for every segment: theme-park
// admissions, conference events for business segments, and ground transport
// wherever the travelers aren't hosted.
func (p *Planner) PlanActivities(req *model.TripRequest, segments []model.TripSegment) []model.Activity {
	var activities []model.Activity

	for i := range segments {
		seg := &segments[i]

		if p.isThemePark(seg.Destination) {
			activities = append(activities, p.themeParkActivities(req, seg)...)
		}
		if seg.IsBusiness && seg.HasRequirement(model.RequirementConference) {
			activities = append(activities, p.businessActivities(seg)...)
		}
		if seg.AccommodationType != model.AccommodationFamilyHosting {
			activities = append(activities, p.groundTransport(seg))
		}
	}

	return activities
}

// ActivityTotal sums the cost of all planned activities.
func ActivityTotal(activities []model.Activity) decimal.Decimal {
	total := decimal.Zero
	for i := range activities {
		total = total.Add(activities[i].Cost)
	}
	return total
}

func (p *Planner) themeParkActivities(req *model.TripRequest, seg *model.TripSegment) []model.Activity {
	adults, children := headcount(req.PassengerCount)
	adultCount := decimal.NewFromInt(int64(adults))
	childCount := decimal.NewFromInt(int64(children))

	admission := p.tables.Activity.ThemeParkAdult.Mul(adultCount).
		Add(p.tables.Activity.ThemeParkChild.Mul(childCount))
	dining := p.tables.Activity.FineDiningAdult.Mul(adultCount).
		Add(p.tables.Activity.FineDiningChild.Mul(childCount))

	return []model.Activity{
		{
			Name:            fmt.Sprintf("%s Park Admission", seg.Destination),
			Location:        seg.Destination,
			Date:            seg.StartDate,
			Cost:            admission,
			DurationHours:   12,
			Category:        "theme_park",
			BookingRequired: true,
		},
		{
			Name:            "Character Dining Experience",
			Location:        seg.Destination,
			Date:            seg.StartDate,
			Cost:            dining,
			DurationHours:   2,
			Category:        "dining",
			BookingRequired: true,
		},
	}
}

func (p *Planner) businessActivities(seg *model.TripSegment) []model.Activity {
	return []model.Activity{
		{
			Name:            "Conference Registration",
			Location:        seg.Destination,
			Date:            seg.StartDate,
			Cost:            p.tables.Activity.ConferenceRegistration,
			DurationHours:   8,
			Category:        "conference",
			IsBusiness:      true,
			BookingRequired: true,
		},
		{
			Name:          "Business Networking Dinner",
			Location:      seg.Destination,
			Date:          seg.StartDate,
			Cost:          p.tables.Activity.FineDiningAdult,
			DurationHours: 3,
			Category:      "business_meal",
			IsBusiness:    true,
		},
	}
}

func (p *Planner) groundTransport(seg *model.TripSegment) model.Activity {
	days := seg.Days()
	return model.Activity{
		Name:          "Car Rental",
		Location:      seg.Destination,
		Date:          seg.StartDate,
		Cost:          p.tables.Activity.CarRentalPerDay.Mul(decimal.NewFromInt(int64(days))),
		DurationHours: 24 * days,
		Category:      "transport",
	}
}
