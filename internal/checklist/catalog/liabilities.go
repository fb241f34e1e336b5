// internal/checklist/catalog/liabilities.go
package catalog

import (
	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/models"
)

func liabilityRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:      "liabilities.unsecured_loc_statement",
			Section: SectionLiabilities,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Most recent statement for the unsecured line of credit"),
			Name:    "Line of credit statement",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasLiabilityType(models.LiabilityTypeLineOfCredit)
			},
		},
		{
			ID:      "liabilities.secured_loc_statement",
			Section: SectionLiabilities,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Most recent statement for the secured line of credit (HELOC)"),
			Name:    "HELOC statement",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasLiabilityType(models.LiabilityTypeSecuredLOC)
			},
		},
		{
			ID:      "liabilities.student_loan_statement",
			Section: SectionLiabilities,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Student loan statement showing balance and required monthly payment"),
			Name:    "Student loan statement",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasLiabilityType(models.LiabilityTypeStudentLoan)
			},
		},
		{
			ID:      "liabilities.support_order",
			Section: SectionLiabilities,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Court order or agreement for support payments owed"),
			Name:    "Support obligation",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasLiabilityType(models.LiabilityTypeSupportPayment)
			},
		},
		{
			ID:      "liabilities.car_loan_statement",
			Section: SectionLiabilities,
			Stage:   checklist.StageConditional,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Car loan or lease statement"),
			Name:    "Car loan statement",
			Note:    "only when the bureau tradeline is missing the payment amount",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasLiabilityType(models.LiabilityTypeCarLoan)
			},
		},
	}
}
