// internal/checklist/catalog/employment.go
package catalog

import (
	"fmt"

	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/checklist/taxyear"
	"mortgage-checklist-workers/internal/models"
)

func employmentRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:      "employment.letter",
			Section: SectionEmployment,
			Stage:   checklist.StagePre,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Letter of employment (position, start date, salary, signed on letterhead)"),
			Name:    "Letter of employment",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasIncomeSource(models.IncomeSourceEmployed)
			},
			// One letter per employer; notes diverge when the borrower
			// holds more than one job and are merged downstream.
			MatchNotes: func(ctx *checklist.RuleContext) []string {
				var notes []string
				for _, inc := range ctx.IncomesBySource(models.IncomeSourceEmployed) {
					if inc.Employer != "" {
						notes = append(notes, "from "+inc.Employer)
					}
				}
				return notes
			},
		},
		{
			ID:      "employment.paystub",
			Section: SectionEmployment,
			Stage:   checklist.StagePre,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Most recent paystub (within 30 days)"),
			Name:    "Recent paystub",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasIncomeSource(models.IncomeSourceEmployed)
			},
			MatchNotes: func(ctx *checklist.RuleContext) []string {
				var notes []string
				for _, inc := range ctx.IncomesBySource(models.IncomeSourceEmployed) {
					if inc.Employer != "" {
						notes = append(notes, "from "+inc.Employer)
					}
				}
				return notes
			},
		},
		{
			ID:      "employment.t4_slips",
			Section: SectionEmployment,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label: checklist.TaxYearLabel(func(y taxyear.Years) string {
				return fmt.Sprintf("T4 slips for %d and %d", y.Previous, y.Current)
			}),
			Name: "T4 slips",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasIncomeSource(models.IncomeSourceEmployed)
			},
		},
		{
			ID:      "employment.noa",
			Section: SectionEmployment,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label: checklist.TaxYearLabel(func(y taxyear.Years) string {
				return fmt.Sprintf("Notice of Assessment for %d", y.Current)
			}),
			Name: "Notice of Assessment",
			Note: "confirms no income tax owing",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasIncomeSource(models.IncomeSourceEmployed)
			},
		},
		{
			ID:      "employment.probation_confirmation",
			Section: SectionEmployment,
			Stage:   checklist.StageConditional,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Employer confirmation that the probation period is complete"),
			Name:    "Probation confirmation",
			Note:    "only when the letter of employment shows a recent start date",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasIncomeSource(models.IncomeSourceEmployed)
			},
			InternalOnly: true,
			ReviewNote:   "check start date on the employment letter; request only if hired within the last 12 months",
		},
	}
}
