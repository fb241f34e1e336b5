// internal/checklist/catalog/selfemployment.go
package catalog

import (
	"fmt"

	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/checklist/taxyear"
	"mortgage-checklist-workers/internal/models"
)

func selfEmployed(ctx *checklist.RuleContext) bool {
	return ctx.HasIncomeSource(models.IncomeSourceSelfEmployed)
}

func selfEmploymentRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:      "self_employment.t1_generals",
			Section: SectionSelfEmployment,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label: checklist.TaxYearLabel(func(y taxyear.Years) string {
				return fmt.Sprintf("Full T1 Generals for %d and %d, including statement of business activities", y.Previous, y.Current)
			}),
			Name:      "T1 Generals",
			Condition: selfEmployed,
		},
		{
			ID:      "self_employment.noas",
			Section: SectionSelfEmployment,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label: checklist.TaxYearLabel(func(y taxyear.Years) string {
				return fmt.Sprintf("Notices of Assessment for %d and %d", y.Previous, y.Current)
			}),
			Name:      "Notices of Assessment",
			Note:      "both years; confirms no tax arrears",
			Condition: selfEmployed,
		},
		{
			ID:      "self_employment.incorporation",
			Section: SectionSelfEmployment,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Articles of incorporation or business registration"),
			Name:    "Business registration",
			Condition: selfEmployed,
		},
		{
			ID:      "self_employment.company_financials",
			Section: SectionSelfEmployment,
			Stage:   checklist.StageConditional,
			Scope:   checklist.ScopePerBorrower,
			Label: checklist.TaxYearLabel(func(y taxyear.Years) string {
				return fmt.Sprintf("Accountant-prepared company financial statements for %d and %d", y.Previous, y.Current)
			}),
			Name:      "Company financials",
			Note:      "incorporated businesses only",
			Condition: selfEmployed,
		},
		{
			ID:      "self_employment.business_bank_statements",
			Section: SectionSelfEmployment,
			Stage:   checklist.StageConditional,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Business bank statements for the last 6 months"),
			Name:    "Business bank statements",
			Note:    "needed when declared income relies on gross-up or stated-income programs",
			Condition: selfEmployed,
		},
		{
			ID:      "self_employment.hst_returns",
			Section: SectionSelfEmployment,
			Stage:   checklist.StageLenderCondition,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Most recent HST/GST return and proof of payment"),
			Name:    "HST return",
			Condition: selfEmployed,
		},
	}
}
