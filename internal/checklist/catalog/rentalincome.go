// internal/checklist/catalog/rentalincome.go
package catalog

import (
	"fmt"

	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/checklist/taxyear"
	"mortgage-checklist-workers/internal/models"
)

// rentalIncomeRules are property-scoped: rental documentation applies to
// any financed property carrying rental income, not just the subject.
func rentalIncomeRules() []checklist.Rule {
	rented := func(ctx *checklist.RuleContext, p *models.Property) bool {
		return p != nil && p.RentalIncome > 0
	}

	return []checklist.Rule{
		{
			ID:                "rental_income.lease_agreements",
			Section:           SectionRentalIncome,
			Stage:             checklist.StageFull,
			Scope:             checklist.ScopePerProperty,
			Label:             checklist.StaticLabel("Signed lease agreements for all rented units"),
			Name:              "Lease agreements",
			PropertyCondition: rented,
		},
		{
			ID:      "rental_income.t776",
			Section: SectionRentalIncome,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerProperty,
			Label: checklist.TaxYearLabel(func(y taxyear.Years) string {
				return fmt.Sprintf("T776 statement of real estate rentals for %d", y.Current)
			}),
			Name:              "T776 rental statement",
			PropertyCondition: rented,
		},
		{
			ID:      "rental_income.mortgage_statement",
			Section: SectionRentalIncome,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerProperty,
			Label:   checklist.StaticLabel("Current mortgage statement for the rental property"),
			Name:    "Rental mortgage statement",
			PropertyCondition: func(ctx *checklist.RuleContext, p *models.Property) bool {
				return p != nil && p.RentalIncome > 0 && p.HasMortgage
			},
		},
		{
			ID:      "rental_income.property_tax_bill",
			Section: SectionRentalIncome,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerProperty,
			Label:   checklist.StaticLabel("Most recent property tax bill for the rental property"),
			Name:    "Rental property tax bill",
			PropertyCondition: func(ctx *checklist.RuleContext, p *models.Property) bool {
				return p != nil && p.RentalIncome > 0 && !p.IsSelling
			},
		},
	}
}
