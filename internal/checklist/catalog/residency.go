// internal/checklist/catalog/residency.go
package catalog

import (
	"mortgage-checklist-workers/internal/checklist"
)

// residencyRules is a dormant section: immigration status is self-reported
// and frequently absent from the snapshot.
func residencyRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:        "residency.pr_card",
			Section:   SectionResidency,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("Permanent resident card (both sides)"),
			Name:      "PR card",
			Condition: never,
		},
		{
			ID:        "residency.work_permit",
			Section:   SectionResidency,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("Valid work permit covering the mortgage term start"),
			Name:      "Work permit",
			Condition: never,
		},
		{
			ID:        "residency.foreign_credit_report",
			Section:   SectionResidency,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("International credit report or 12 months of alternative credit history"),
			Name:      "Foreign credit report",
			Condition: never,
		},
		{
			ID:        "residency.nonresident_downpayment",
			Section:   SectionResidency,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("Proof of the larger non-resident down payment on deposit in Canada"),
			Name:      "Non-resident down payment proof",
			Note:      "most lenders require 35% for non-residents",
			Condition: never,
		},
		{
			ID:           "residency.status_review",
			Section:      SectionResidency,
			Stage:        checklist.StageFull,
			Scope:        checklist.ScopePerBorrower,
			Label:        checklist.StaticLabel("Residency status review"),
			Name:         "Residency status review",
			Condition:    never,
			InternalOnly: true,
			ReviewNote:   "confirm program eligibility with the lender before collecting documents",
		},
	}
}
