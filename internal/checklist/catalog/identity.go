// internal/checklist/catalog/identity.go
package catalog

import (
	"mortgage-checklist-workers/internal/checklist"
)

// identityRules always fire for every borrower: every file needs ID and
// banking details regardless of the deal shape.
func identityRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:      "identity.photo_id",
			Section: SectionIdentity,
			Stage:   checklist.StagePre,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Government-issued photo ID (driver's licence or passport)"),
			Name:    "Photo ID",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.Borrower != nil
			},
		},
		{
			ID:      "identity.second_id",
			Section: SectionIdentity,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Second piece of ID (health card not accepted)"),
			Name:    "Second ID",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.Borrower != nil
			},
		},
		{
			ID:      "identity.void_cheque",
			Section: SectionIdentity,
			Stage:   checklist.StageLater,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Void cheque or pre-authorized debit form for the account mortgage payments will come from"),
			Name:    "Void cheque",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.Borrower != nil
			},
		},
		{
			ID:      "identity.credit_consent",
			Section: SectionIdentity,
			Stage:   checklist.StagePre,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("Signed credit check consent form"),
			Name:    "Credit consent",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.Borrower != nil
			},
			InternalOnly: true,
			ReviewNote:   "confirm consent is on file before pulling the bureau; do not request from the client by email",
		},
	}
}
