// internal/checklist/catalog/otherincome.go
package catalog

import (
	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/models"
)

func otherIncomeRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:      "other_income.support_agreement",
			Section: SectionOtherIncome,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Separation agreement or court order establishing child/spousal support received"),
			Name:    "Support agreement",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasIncomeSource(models.IncomeSourceChildSupport)
			},
		},
		{
			ID:      "other_income.support_deposits",
			Section: SectionOtherIncome,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("6 months of bank statements showing support deposits received"),
			Name:    "Support deposit history",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasIncomeSource(models.IncomeSourceChildSupport)
			},
		},
		{
			ID:      "other_income.disability_letter",
			Section: SectionOtherIncome,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Benefit letter confirming long-term disability income and duration"),
			Name:    "Disability benefit letter",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasIncomeSource(models.IncomeSourceDisability)
			},
		},
		{
			ID:      "other_income.other_proof",
			Section: SectionOtherIncome,
			Stage:   checklist.StageConditional,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Documentation supporting any other declared income"),
			Name:    "Other income proof",
			Note:    "reviewed case by case",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasIncomeSource(models.IncomeSourceOther)
			},
		},
	}
}
