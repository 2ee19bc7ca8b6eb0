// Package planner builds the dated itinerary: it partitions the trip into
// per-destination segments, chooses lodging per segment, and generates
// priced activities and special-requirement records.
package planner

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/common"
	"github.com/jhalloway/tripflow/internal/config"
	"github.com/jhalloway/tripflow/internal/model"
)

// Markers scanned against the request's purpose and preference text.
var (
	hostingMarkers  = []string{"hosting", "staying with"}
	petMarkers      = []string{"dog", "pet", "cat"}
	businessMarkers = []string{"conference", "business", "work", "meeting"}
	familyMarkers   = []string{"family", "kids", "children"}
)

// Planner generates segments, activities, and requirements for a trip.
type Planner struct {
	tables *config.Tables
}

// New creates a planner backed by the given cost tables.
func New(tables *config.Tables) *Planner {
	return &Planner{tables: tables}
}

// PlanSegments partitions the trip duration across destinations. Segments
// chain origin-to-destination with consecutive, non-overlapping date
// ranges; when days don't divide evenly the earliest segments absorb the
// remainder.
func (p *Planner) PlanSegments(req *model.TripRequest, totalBudget decimal.Decimal) ([]model.TripSegment, error) {
	if len(req.Destinations) == 0 {
		return nil, common.ErrEmptyDestinations
	}

	start, err := req.Start()
	if err != nil {
		return nil, err
	}

	count := len(req.Destinations)
	baseDays := req.DurationDays / count
	remainder := req.DurationDays % count

	text := requestText(req)
	accommodationType := p.accommodationType(text)
	requirements := p.segmentRequirements(req, text)
	isBusiness := hasBusinessRequirement(requirements)
	perSegmentBudget := totalBudget.Div(decimal.NewFromInt(int64(count)))

	segments := make([]model.TripSegment, 0, count)
	cursor := start
	origin := req.Origin

	for i, destination := range req.Destinations {
		days := baseDays
		if i < remainder {
			days++
		}
		end := cursor.AddDate(0, 0, days-1)

		segments = append(segments, model.TripSegment{
			Origin:            origin,
			Destination:       destination,
			StartDate:         cursor,
			EndDate:           end,
			AccommodationType: accommodationType,
			Purpose:           p.segmentPurpose(req, destination),
			Requirements:      requirements,
			BudgetAllocation:  perSegmentBudget,
			IsBusiness:        isBusiness,
		})

		cursor = end.AddDate(0, 0, 1)
		origin = destination
	}

	return segments, nil
}

// accommodationType picks lodging by keyword priority: hosting beats
// pet-friendly beats hotel; airbnb is the default.
func (p *Planner) accommodationType(text string) model.AccommodationType {
	switch {
	case containsAny(text, hostingMarkers):
		return model.AccommodationFamilyHosting
	case containsAny(text, petMarkers):
		return model.AccommodationPetFriendly
	case containsAny(text, businessMarkers):
		return model.AccommodationHotel
	default:
		return model.AccommodationAirbnb
	}
}

func (p *Planner) segmentPurpose(req *model.TripRequest, destination string) string {
	purposeText := strings.ToLower(strings.Join(req.Purposes, " "))

	switch {
	case p.isThemePark(destination):
		return "Family vacation - Theme park"
	case strings.Contains(purposeText, "conference"):
		return "Business - Conference"
	case containsAny(purposeText, familyMarkers):
		return "Family visit"
	default:
		return "Leisure travel"
	}
}

func (p *Planner) segmentRequirements(req *model.TripRequest, text string) []model.RequirementType {
	var requirements []model.RequirementType

	if req.HasPets {
		requirements = append(requirements, model.RequirementPetTravel)
	}
	if req.HasBusiness {
		requirements = append(requirements, model.RequirementBusinessEvent, model.RequirementTaxDeduction)
	}
	if containsAny(text, hostingMarkers) {
		requirements = append(requirements, model.RequirementFamilyHosting)
	}
	if strings.Contains(text, "conference") {
		requirements = append(requirements, model.RequirementConference)
	}

	return requirements
}

// isThemePark reports whether a destination matches a configured theme-park
// marker.
func (p *Planner) isThemePark(destination string) bool {
	return containsAny(strings.ToLower(destination), p.tables.ThemeParkMarkers)
}

// Duration returns the total span covered by the segments, in days.
func Duration(segments []model.TripSegment) int {
	if len(segments) == 0 {
		return 0
	}

	earliest := segments[0].StartDate
	latest := segments[0].EndDate
	for i := range segments {
		if segments[i].StartDate.Before(earliest) {
			earliest = segments[i].StartDate
		}
		if segments[i].EndDate.After(latest) {
			latest = segments[i].EndDate
		}
	}
	return int(latest.Sub(earliest).Hours()/24) + 1
}

func hasBusinessRequirement(requirements []model.RequirementType) bool {
	for _, r := range requirements {
		if r == model.RequirementBusinessEvent || r == model.RequirementConference {
			return true
		}
	}
	return false
}

func requestText(req *model.TripRequest) string {
	parts := make([]string, 0, len(req.Purposes)+len(req.Activities)+len(req.AccommodationPreferences))
	parts = append(parts, req.Purposes...)
	parts = append(parts, req.Activities...)
	parts = append(parts, req.AccommodationPreferences...)
	return strings.ToLower(strings.Join(parts, " "))
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// headcount splits passengers into adults and children for per-person
// activity pricing, assuming at least two adults.
func headcount(passengerCount int) (adults, children int) {
	adults = passengerCount - 2
	if adults < 2 {
		adults = 2
	}
	children = passengerCount - adults
	if children < 0 {
		children = 0
	}
	return adults, children
}

