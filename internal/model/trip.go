package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for trip dates.
const DateLayout = "2006-01-02"

// TripRequest is the fully-resolved input to the planning pipeline.
// Destinations are canonical location identifiers and dates are ISO-8601;
// free-text parsing happens upstream.
type TripRequest struct {
	Budget                   decimal.Decimal `json:"budget"`
	DurationDays             int             `json:"duration_days"`
	PassengerCount           int             `json:"passenger_count"`
	Adults                   int             `json:"adults"`
	Children                 int             `json:"children"`
	Infants                  int             `json:"infants"`
	PetCount                 int             `json:"pet_count"`
	Origin                   string          `json:"origin"`
	Destinations             []string        `json:"destinations"`
	StartDate                string          `json:"start_date"`
	AccommodationPreferences []string        `json:"accommodation_preferences"`
	Purposes                 []string        `json:"purposes"`
	Activities               []string        `json:"activities"`
	BusinessPortion          float64         `json:"business_portion"`
	HasPets                  bool            `json:"has_pets"`
	HasBusiness              bool            `json:"has_business"`
	StrictBudget             bool            `json:"strict_budget"`
	BudgetConscious          bool            `json:"budget_conscious"`
	LuxuryPreferred          bool            `json:"luxury_preferred"`
}

// Start parses the request's start date. An empty start date defaults to
// today so offsets still resolve to real calendar dates.
func (r *TripRequest) Start() (time.Time, error) {
	if r.StartDate == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	start, err := time.ParseInLocation(DateLayout, r.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: %w", r.StartDate, err)
	}
	return start, nil
}

// Pets returns the number of traveling pets, defaulting to one when pets
// are flagged but uncounted.
func (r *TripRequest) Pets() int {
	if !r.HasPets {
		return 0
	}
	if r.PetCount < 1 {
		return 1
	}
	return r.PetCount
}

// TripSegment is one contiguous single-destination leg of the itinerary.
// Segment date ranges partition the trip with no gap or overlap, and each
// segment departs from the previous segment's destination.
type TripSegment struct {
	StartDate         time.Time         `json:"start_date"`
	EndDate           time.Time         `json:"end_date"`
	Origin            string            `json:"origin"`
	Destination       string            `json:"destination"`
	AccommodationType AccommodationType `json:"accommodation_type"`
	Purpose           string            `json:"purpose"`
	Requirements      []RequirementType `json:"requirements"`
	BudgetAllocation  decimal.Decimal   `json:"budget_allocation"`
	IsBusiness        bool              `json:"is_business"`
}

// Days returns the segment length in nights-inclusive days.
func (s *TripSegment) Days() int {
	return int(s.EndDate.Sub(s.StartDate).Hours()/24) + 1
}

// HasRequirement reports whether the segment carries the given requirement.
func (s *TripSegment) HasRequirement(r RequirementType) bool {
	for _, req := range s.Requirements {
		if req == r {
			return true
		}
	}
	return false
}

// Activity is a single dated, priced item on the itinerary.
type Activity struct {
	Date            time.Time       `json:"date"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	Category        string          `json:"category"`
	Cost            decimal.Decimal `json:"cost"`
	DurationHours   int             `json:"duration_hours"`
	IsBusiness      bool            `json:"is_business"`
	BookingRequired bool            `json:"booking_required"`
}

// SpecialRequirement records a trip-level special need and its cost impact.
type SpecialRequirement struct {
	Logistics          map[string]any  `json:"logistics,omitempty"`
	Type               RequirementType `json:"type"`
	Description        string          `json:"description"`
	CostImpact         decimal.Decimal `json:"cost_impact"`
	BusinessDeductible bool            `json:"business_deductible"`
}

// TripItinerary is the complete output of the planning pipeline: the final
// budget, the dated segments and activities, and the optimization report.
type TripItinerary struct {
	Budget             TripBudget                 `json:"budget"`
	CostBreakdown      map[string]decimal.Decimal `json:"cost_breakdown"`
	TripID             string                     `json:"trip_id"`
	TripType           TripType                   `json:"trip_type"`
	Segments           []TripSegment              `json:"segments"`
	Activities         []Activity                 `json:"activities"`
	Requirements       []SpecialRequirement       `json:"requirements"`
	Recommendations    []string                   `json:"recommendations"`
	Warnings           []string                   `json:"warnings"`
	Alternatives       []AlternativeAllocation    `json:"alternative_allocations"`
	TotalBudget        decimal.Decimal            `json:"total_budget"`
	TotalCost          decimal.Decimal            `json:"total_cost"`
	Savings            decimal.Decimal            `json:"savings"`
	TaxSavings         decimal.Decimal            `json:"tax_savings"`
	TotalDurationDays  int                        `json:"total_duration_days"`
	ConstraintsMet     int                        `json:"constraints_met"`
	TotalConstraints   int                        `json:"total_constraints"`
	EfficiencyScore    float64                    `json:"efficiency_score"`
	OptimizationScore  float64                    `json:"optimization_score"`
	BusinessPercentage float64                    `json:"business_percentage"`
}
