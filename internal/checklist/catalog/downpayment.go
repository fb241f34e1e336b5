// internal/checklist/catalog/downpayment.go
package catalog

import (
	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/models"
)

func downPaymentSavingsRules() []checklist.Rule {
	cashDownPayment := func(ctx *checklist.RuleContext) bool {
		return ctx.DownPaymentAssetOfType(models.AssetTypeSavings) ||
			ctx.DownPaymentAssetOfType(models.AssetTypeChequing)
	}

	return []checklist.Rule{
		{
			ID:        "down_payment.bank_statements_90d",
			Section:   SectionDownPaymentSavings,
			Stage:     checklist.StagePre,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("90 days of bank statements for every account contributing to the down payment"),
			Name:      "90-day bank statements",
			Note:      "full history, name and account number visible",
			Condition: cashDownPayment,
		},
		{
			ID:        "down_payment.non_registered_statements",
			Section:   SectionDownPaymentSavings,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopePerBorrower,
			Label:     checklist.StaticLabel("90 days of statements for the non-registered investment account"),
			Name:      "Investment account statements",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.OwnsDownPaymentAssetOfType(models.AssetTypeNonRegistered)
			},
		},
		{
			ID:        "down_payment.large_deposit_explanations",
			Section:   SectionDownPaymentSavings,
			Stage:     checklist.StageConditional,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("Written explanation and paper trail for any deposit over $2,000 outside payroll"),
			Name:      "Large deposit explanations",
			Condition: cashDownPayment,
			InternalOnly: true,
			ReviewNote:   "scan the 90-day statements for unexplained deposits before sending to the lender",
		},
	}
}

func downPaymentRegisteredRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:      "down_payment.rrsp_statement",
			Section: SectionDownPaymentRegistered,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("90 days of RRSP statements for the account funding the down payment"),
			Name:    "RRSP statements",
			Note:    "funds must be on deposit 90 days for a Home Buyers' Plan withdrawal",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.OwnsDownPaymentAssetOfType(models.AssetTypeRRSP)
			},
		},
		{
			ID:      "down_payment.tfsa_statement",
			Section: SectionDownPaymentRegistered,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("90 days of TFSA statements for the account funding the down payment"),
			Name:    "TFSA statements",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.OwnsDownPaymentAssetOfType(models.AssetTypeTFSA)
			},
		},
		{
			ID:      "down_payment.fhsa_statement",
			Section: SectionDownPaymentRegistered,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("90 days of FHSA statements for the account funding the down payment"),
			Name:    "FHSA statements",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.OwnsDownPaymentAssetOfType(models.AssetTypeFHSA)
			},
		},
		{
			ID:      "down_payment.hbp_withdrawal",
			Section: SectionDownPaymentRegistered,
			Stage:   checklist.StageLater,
			Scope:   checklist.ScopePerBorrower,
			Label:   checklist.StaticLabel("T1036 Home Buyers' Plan withdrawal confirmation"),
			Name:    "HBP withdrawal confirmation",
			Note:    "after the purchase agreement is firm",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.OwnsDownPaymentAssetOfType(models.AssetTypeRRSP) && ctx.IsPurchase()
			},
		},
	}
}

func downPaymentGiftRules() []checklist.Rule {
	hasGift := func(ctx *checklist.RuleContext) bool {
		return ctx.DownPaymentAssetOfType(models.AssetTypeGift)
	}

	return []checklist.Rule{
		{
			ID:        "down_payment.gift_donor_info",
			Section:   SectionDownPaymentGift,
			Stage:     checklist.StagePre,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("Gift donor's name, relationship and contact information"),
			Name:      "Gift donor info",
			Condition: hasGift,
		},
		{
			ID:        "down_payment.gift_amount",
			Section:   SectionDownPaymentGift,
			Stage:     checklist.StagePre,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("Confirmation of the gifted amount"),
			Name:      "Gift amount",
			Condition: hasGift,
		},
		{
			ID:      "down_payment.gift_proof_of_funds",
			Section: SectionDownPaymentGift,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopeShared,
			Label:   checklist.StaticLabel("Proof the gifted funds are deposited (statement showing the transfer)"),
			Name:    "Gift proof of funds",
			// Only once a property is found; while searching the funds
			// usually have not moved yet.
			Condition: func(ctx *checklist.RuleContext) bool {
				return hasGift(ctx) && ctx.Application.Process == models.ProcessFoundProperty
			},
		},
		{
			ID:           "down_payment.gift_letter",
			Section:      SectionDownPaymentGift,
			Stage:        checklist.StageFull,
			Scope:        checklist.ScopeShared,
			Label:        checklist.StaticLabel("Signed gift letter on the lender's template"),
			Name:         "Gift letter",
			Condition:    hasGift,
			InternalOnly: true,
			ReviewNote:   "send the lender-specific template once the lender is chosen; generic letters get rejected",
		},
	}
}

func downPaymentSaleRules() []checklist.Rule {
	saleFunded := func(ctx *checklist.RuleContext) bool {
		return ctx.DownPaymentAssetOfType(models.AssetTypePropertySale)
	}

	return []checklist.Rule{
		{
			ID:        "down_payment.sale_agreement",
			Section:   SectionDownPaymentSale,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("Firm purchase and sale agreement for the property being sold"),
			Name:      "Sale agreement",
			Condition: saleFunded,
		},
		{
			ID:        "down_payment.existing_mortgage_statement",
			Section:   SectionDownPaymentSale,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("Current mortgage statement for the property being sold"),
			Name:      "Existing mortgage statement",
			Note:      "to confirm net sale proceeds",
			Condition: saleFunded,
		},
		{
			ID:      "down_payment.bridge_request",
			Section: SectionDownPaymentSale,
			Stage:   checklist.StageConditional,
			Scope:   checklist.ScopeShared,
			Label:   checklist.StaticLabel("Bridge financing request details (closing dates for both properties)"),
			Name:    "Bridge financing details",
			Note:    "only when the sale closes after the purchase",
			Condition: saleFunded,
		},
	}
}
