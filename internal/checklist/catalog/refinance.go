// internal/checklist/catalog/refinance.go
package catalog

import (
	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/models"
)

func refiOrRenewal(ctx *checklist.RuleContext) bool {
	return ctx.Application.Goal == models.GoalRefinance || ctx.Application.Goal == models.GoalRenewal
}

// allRentalsSelling reports whether every property carrying rental income
// is being sold; a property tax bill for them is pointless in that case.
func allRentalsSelling(ctx *checklist.RuleContext) bool {
	rentals := ctx.RentalProperties()
	if len(rentals) == 0 {
		return false
	}
	for _, p := range rentals {
		if !p.IsSelling {
			return false
		}
	}
	return true
}

func refinanceRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:        "refinance.current_mortgage_statement",
			Section:   SectionRefinance,
			Stage:     checklist.StagePre,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("Most recent mortgage statement showing balance, rate and maturity date"),
			Name:      "Current mortgage statement",
			Condition: refiOrRenewal,
		},
		{
			ID:          "refinance.property_tax_bill",
			Section:     SectionRefinance,
			Stage:       checklist.StageFull,
			Scope:       checklist.ScopeShared,
			Label:       checklist.StaticLabel("Most recent property tax bill"),
			Name:        "Property tax bill",
			Condition:   refiOrRenewal,
			ExcludeWhen: allRentalsSelling,
		},
		{
			ID:        "refinance.home_insurance",
			Section:   SectionRefinance,
			Stage:     checklist.StageLenderCondition,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("Current home insurance policy"),
			Name:      "Home insurance policy",
			Condition: refiOrRenewal,
		},
		{
			ID:      "refinance.payout_statement",
			Section: SectionRefinance,
			Stage:   checklist.StageConditional,
			Scope:   checklist.ScopeShared,
			Label:   checklist.StaticLabel("Payout statements for debts being consolidated into the new mortgage"),
			Name:    "Debt payout statements",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.Application.Goal == models.GoalRefinance && len(ctx.AllLiabilities) > 0
			},
		},
		{
			ID:      "refinance.renewal_offer",
			Section: SectionRefinance,
			Stage:   checklist.StagePre,
			Scope:   checklist.ScopeShared,
			Label:   checklist.StaticLabel("Renewal offer letter from the current lender"),
			Name:    "Renewal offer",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.Application.Goal == models.GoalRenewal
			},
		},
	}
}
