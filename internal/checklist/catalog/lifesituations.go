// internal/checklist/catalog/lifesituations.go
package catalog

import (
	"mortgage-checklist-workers/internal/checklist"
)

// lifeSituationRules is a dormant section: none of these situations are
// reliably inferable from origination data, so every condition is never
// and activation happens through the manual override surface.
func lifeSituationRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:        "life_situations.parental_leave_return_letter",
			Section:   SectionLifeSituations,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("Employer letter confirming the return-to-work date and salary after parental leave"),
			Name:      "Return-to-work letter",
			Condition: never,
		},
		{
			ID:        "life_situations.ei_benefit_statement",
			Section:   SectionLifeSituations,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("EI benefit statement for the leave period"),
			Name:      "EI benefit statement",
			Condition: never,
		},
		{
			ID:        "life_situations.bankruptcy_discharge",
			Section:   SectionLifeSituations,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("Bankruptcy discharge papers and statement of affairs"),
			Name:      "Bankruptcy discharge",
			Condition: never,
		},
		{
			ID:        "life_situations.consumer_proposal_completion",
			Section:   SectionLifeSituations,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("Certificate of full performance for the consumer proposal"),
			Name:      "Consumer proposal completion",
			Condition: never,
		},
		{
			ID:        "life_situations.separation_agreement",
			Section:   SectionLifeSituations,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("Fully executed separation agreement"),
			Name:      "Separation agreement",
			Note:      "needed to confirm support obligations and ownership of the matrimonial home",
			Condition: never,
		},
		{
			ID:        "life_situations.divorce_decree",
			Section:   SectionLifeSituations,
			Stage:     checklist.StageConditional,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("Divorce decree or court order dividing property"),
			Name:      "Divorce decree",
			Condition: never,
		},
	}
}
