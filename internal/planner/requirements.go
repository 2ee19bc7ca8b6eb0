package planner

import (
	"github.com/shopspring/decimal"

	"github.com/jhalloway/tripflow/internal/model"
)

// Requirements instantiates trip-level special-requirement records with
// their cost impacts and logistics annotations.
func (p *Planner) Requirements(req *model.TripRequest) []model.SpecialRequirement {
	var requirements []model.SpecialRequirement

	if req.HasPets {
		fees := p.tables.Pet
		costImpact := fees.AirlineFeePerPet.
			Add(fees.Carrier).
			Add(fees.HealthCertificate).
			Add(fees.Insurance)

		requirements = append(requirements, model.SpecialRequirement{
			Type:        model.RequirementPetTravel,
			Description: "Pet travel arrangements and pet-friendly accommodations",
			CostImpact:  costImpact,
			Logistics: map[string]any{
				"airline_pet_fee":           fees.AirlineFeePerPet.String(),
				"pet_carrier_required":      true,
				"health_certificate_needed": true,
				"pet_insurance_recommended": true,
			},
		})
	}

	if req.HasBusiness {
		requirements = append(requirements, model.SpecialRequirement{
			Type:               model.RequirementTaxDeduction,
			Description:        "Business trip tax optimization and documentation",
			CostImpact:         decimal.Zero,
			BusinessDeductible: true,
			Logistics: map[string]any{
				"receipt_tracking":               true,
				"business_purpose_documentation": true,
				"expense_categorization":         true,
			},
		})
	}

	if containsAny(requestText(req), hostingMarkers) {
		requirements = append(requirements, model.SpecialRequirement{
			Type:        model.RequirementFamilyHosting,
			Description: "Staying with family - coordinate arrangements and host gifts",
			CostImpact:  p.tables.HostGiftFlat,
			Logistics: map[string]any{
				"coordinate_arrival_time": true,
				"bring_host_gift":         true,
				"respect_house_rules":     true,
			},
		})
	}

	return requirements
}
