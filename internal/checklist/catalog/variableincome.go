// internal/checklist/catalog/variableincome.go
package catalog

import (
	"fmt"

	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/checklist/taxyear"
	"mortgage-checklist-workers/internal/models"
)

// hasVariablePay covers commission, hourly and bonus/overtime flavours of
// employment income; lenders average these over two years.
func hasVariablePay(ctx *checklist.RuleContext) bool {
	for _, inc := range ctx.IncomesBySource(models.IncomeSourceEmployed) {
		if inc.PayType == models.PayTypeCommission || inc.PayType == models.PayTypeHourly ||
			inc.HasBonus || inc.HasOvertime {
			return true
		}
	}
	return false
}

func variableIncomeRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:      "variable_income.t4_two_years",
			Section: SectionVariableIncome,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label: checklist.TaxYearLabel(func(y taxyear.Years) string {
				return fmt.Sprintf("T4 slips for %d and %d to average variable earnings", y.Previous, y.Current)
			}),
			Name:      "Two-year T4 history",
			Condition: hasVariablePay,
		},
		{
			ID:      "variable_income.employer_letter",
			Section: SectionVariableIncome,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Employer letter confirming the variable pay structure (commission %, guaranteed hours, bonus plan)"),
			Name:    "Variable pay confirmation",
			Condition: hasVariablePay,
		},
		{
			ID:      "variable_income.commission_statements",
			Section: SectionVariableIncome,
			Stage:   checklist.StageConditional,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Year-to-date commission statements"),
			Name:    "Commission statements",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasPayType(models.PayTypeCommission)
			},
		},
		{
			ID:      "variable_income.contract_copy",
			Section: SectionVariableIncome,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Copy of the current employment contract"),
			Name:    "Employment contract",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.HasPayType(models.PayTypeContract)
			},
		},
	}
}
