// internal/checklist/catalog/property.go
package catalog

import (
	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/models"
)

// isSubject reports whether p is the application's subject property.
func isSubject(ctx *checklist.RuleContext, p *models.Property) bool {
	return ctx.SubjectProperty != nil && p != nil && p.ID == ctx.SubjectProperty.ID
}

func condoRules() []checklist.Rule {
	subjectCondo := func(ctx *checklist.RuleContext, p *models.Property) bool {
		return isSubject(ctx, p) && p.Type == models.PropertyTypeCondo
	}

	return []checklist.Rule{
		{
			ID:                "property_condo.status_certificate",
			Section:           SectionPropertyCondo,
			Stage:             checklist.StageConditional,
			Scope:             checklist.ScopePerProperty,
			Label:             checklist.StaticLabel("Condo status certificate (ordered through the property manager)"),
			Name:              "Status certificate",
			PropertyCondition: subjectCondo,
		},
		{
			ID:                "property_condo.fee_confirmation",
			Section:           SectionPropertyCondo,
			Stage:             checklist.StageFull,
			Scope:             checklist.ScopePerProperty,
			Label:             checklist.StaticLabel("Confirmation of monthly condo fees"),
			Name:              "Condo fee confirmation",
			PropertyCondition: subjectCondo,
		},
		{
			ID:                "property_condo.building_insurance",
			Section:           SectionPropertyCondo,
			Stage:             checklist.StageLenderCondition,
			Scope:             checklist.ScopePerProperty,
			Label:             checklist.StaticLabel("Condo corporation's certificate of insurance"),
			Name:              "Building insurance certificate",
			PropertyCondition: subjectCondo,
		},
	}
}

func propertyTypeRules() []checklist.Rule {
	return []checklist.Rule{
		{
			ID:      "property_type.multi_unit_leases",
			Section: SectionPropertyType,
			Stage:   checklist.StageFull,
			Scope:   checklist.ScopePerProperty,
			Label:   checklist.StaticLabel("Unit-by-unit rent roll and leases for the multi-unit property"),
			Name:    "Rent roll",
			PropertyCondition: func(ctx *checklist.RuleContext, p *models.Property) bool {
				return isSubject(ctx, p) && (p.Type == models.PropertyTypeMultiUnit || p.Units >= 3)
			},
		},
		{
			ID:      "property_type.fire_insurance_quote",
			Section: SectionPropertyType,
			Stage:   checklist.StageLenderCondition,
			Scope:   checklist.ScopePerProperty,
			Label:   checklist.StaticLabel("Fire insurance quote covering full replacement cost"),
			Name:    "Fire insurance quote",
			PropertyCondition: func(ctx *checklist.RuleContext, p *models.Property) bool {
				return isSubject(ctx, p) && (p.Type == models.PropertyTypeMultiUnit || p.Units >= 3)
			},
		},
		{
			ID:      "property_type.well_septic",
			Section: SectionPropertyType,
			Stage:   checklist.StageConditional,
			Scope:   checklist.ScopePerProperty,
			Label:   checklist.StaticLabel("Well water potability test and septic inspection report"),
			Name:    "Well and septic reports",
			PropertyCondition: func(ctx *checklist.RuleContext, p *models.Property) bool {
				return isSubject(ctx, p) && p.Type == models.PropertyTypeRural
			},
		},
		{
			ID:      "property_type.rural_appraisal",
			Section: SectionPropertyType,
			Stage:   checklist.StageLenderCondition,
			Scope:   checklist.ScopePerProperty,
			Label:   checklist.StaticLabel("Full appraisal including outbuildings and acreage"),
			Name:    "Rural appraisal",
			PropertyCondition: func(ctx *checklist.RuleContext, p *models.Property) bool {
				return isSubject(ctx, p) && p.Type == models.PropertyTypeRural
			},
		},
	}
}

func subjectPropertyRules() []checklist.Rule {
	purchaseFound := func(ctx *checklist.RuleContext) bool {
		return ctx.IsPurchase() && ctx.Application.Process == models.ProcessFoundProperty
	}

	return []checklist.Rule{
		{
			ID:        "subject_property.purchase_agreement",
			Section:   SectionSubjectProperty,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("Fully signed agreement of purchase and sale, including all schedules and amendments"),
			Name:      "Purchase agreement",
			Condition: purchaseFound,
		},
		{
			ID:        "subject_property.mls_listing",
			Section:   SectionSubjectProperty,
			Stage:     checklist.StageFull,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("MLS listing for the subject property"),
			Name:      "MLS listing",
			Condition: purchaseFound,
		},
		{
			ID:        "subject_property.lawyer_info",
			Section:   SectionSubjectProperty,
			Stage:     checklist.StageLater,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("Name and contact information of the closing lawyer or notary"),
			Name:      "Lawyer information",
			Condition: purchaseFound,
		},
		{
			ID:        "subject_property.home_insurance",
			Section:   SectionSubjectProperty,
			Stage:     checklist.StageLenderCondition,
			Scope:     checklist.ScopeShared,
			Label:     checklist.StaticLabel("Home insurance binder naming the lender as first loss payee"),
			Name:      "Home insurance",
			Condition: func(ctx *checklist.RuleContext) bool {
				return ctx.IsPurchase()
			},
		},
	}
}
