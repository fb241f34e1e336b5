// internal/checklist/catalog/retirement.go
package catalog

import (
	"fmt"

	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/checklist/taxyear"
	"mortgage-checklist-workers/internal/models"
)

func hasPension(ctx *checklist.RuleContext) bool {
	return ctx.HasIncomeSource(models.IncomeSourcePension)
}

func retirementRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:        "retirement.pension_statement",
			Section:   SectionRetirement,
			Stage:     checklist.StagePre,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("Pension statement or award letter showing the monthly amount"),
			Name:      "Pension statement",
			Condition: hasPension,
		},
		{
			ID:      "retirement.t4a_slips",
			Section: SectionRetirement,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label: checklist.TaxYearLabel(func(y taxyear.Years) string {
				return fmt.Sprintf("T4A / T4A(P) / T4A(OAS) slips for %d", y.Current)
			}),
			Name:      "T4A slips",
			Condition: hasPension,
		},
		{
			ID:      "retirement.bank_deposits",
			Section: SectionRetirement,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("3 months of bank statements showing pension deposits"),
			Name:    "Pension deposits",
			Condition: hasPension,
		},
		{
			ID:      "retirement.rrif_statement",
			Section: SectionRetirement,
			Stage:   checklist.StageConditional,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Latest RRIF statement confirming balance and withdrawal schedule"),
			Name:    "RRIF statement",
			Note:    "only when RRIF withdrawals are used for qualification",
			Condition: func(ctx *checklist.RuleContext) bool {
				return hasPension(ctx) && ctx.OwnsAssetOfType(models.AssetTypeRRSP)
			},
		},
	}
}
