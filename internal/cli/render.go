package cli

import (
	"fmt"
	"strings"

	"github.com/jhalloway/tripflow/internal/model"
)

// RenderItinerary builds the human-readable plan summary shown after a
// successful run.
func RenderItinerary(itinerary *model.TripItinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trip: %s (%s)\n", itinerary.TripID, itinerary.TripType)
	fmt.Fprintf(&b, "Duration: %d days across %d segment(s)\n", itinerary.TotalDurationDays, len(itinerary.Segments))
	fmt.Fprintf(&b, "Budget: $%s   Cost: $%s   Savings: $%s\n",
		itinerary.TotalBudget.StringFixed(2),
		itinerary.TotalCost.StringFixed(2),
		itinerary.Savings.StringFixed(2))
	fmt.Fprintf(&b, "Efficiency: %.2f   Optimization: %.2f   Constraints: %d/%d\n",
		itinerary.EfficiencyScore,
		itinerary.OptimizationScore,
		itinerary.ConstraintsMet,
		itinerary.TotalConstraints)

	if itinerary.TaxSavings.IsPositive() {
		fmt.Fprintf(&b, "Estimated tax savings: $%s (%.1f%% business)\n",
			itinerary.TaxSavings.StringFixed(2), itinerary.BusinessPercentage)
	}

	b.WriteString("\nAllocation:\n")
	for _, category := range itinerary.Budget.Categories() {
		fmt.Fprintf(&b, "  %-14s $%s\n", category, itinerary.Budget[category].StringFixed(2))
	}

	b.WriteString("\nSegments:\n")
	for i := range itinerary.Segments {
		seg := &itinerary.Segments[i]
		fmt.Fprintf(&b, "  %s → %s  %s to %s  (%s, %s)\n",
			seg.Origin, seg.Destination,
			seg.StartDate.Format(model.DateLayout),
			seg.EndDate.Format(model.DateLayout),
			seg.AccommodationType, seg.Purpose)
	}

	if len(itinerary.Activities) > 0 {
		b.WriteString("\nActivities:\n")
		for i := range itinerary.Activities {
			activity := &itinerary.Activities[i]
			marker := " "
			if activity.BookingRequired {
				marker = "*"
			}
			fmt.Fprintf(&b, " %s %s (%s) $%s on %s\n",
				marker, activity.Name, activity.Category,
				activity.Cost.StringFixed(2),
				activity.Date.Format(model.DateLayout))
		}
	}

	if len(itinerary.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range itinerary.Recommendations {
			fmt.Fprintf(&b, "  • %s\n", rec)
		}
	}

	if len(itinerary.Warnings) > 0 {
		b.WriteString("\n" + FormatWarning("Warnings:") + "\n")
		for _, warning := range itinerary.Warnings {
			fmt.Fprintf(&b, "  ⚠ %s\n", warning)
		}
	}

	if len(itinerary.Alternatives) > 0 {
		b.WriteString("\nAlternatives:\n")
		for _, alt := range itinerary.Alternatives {
			fmt.Fprintf(&b, "  %s (efficiency %.2f, savings $%s)\n",
				alt.Name, alt.Efficiency, alt.Savings.StringFixed(2))
		}
	}

	return RenderBox("Trip Plan", strings.TrimRight(b.String(), "\n"))
}
