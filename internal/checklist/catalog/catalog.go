// internal/checklist/catalog/catalog.go

// Package catalog holds the static, ordered rule catalog of the checklist
// engine. Each section is a pure factory returning its rules; All stitches
// them together in declaration order, which the engine and downstream
// renderers rely on for stable output.
package catalog

import (
	"mortgage-checklist-workers/internal/checklist"
)

const (
	SectionIdentity          checklist.Section = "identity"
	SectionEmployment        checklist.Section = "employment"
	SectionSelfEmployment    checklist.Section = "self_employment"
	SectionRetirement        checklist.Section = "retirement_income"
	SectionVariableIncome    checklist.Section = "variable_income"
	SectionRentalIncome      checklist.Section = "rental_income"
	SectionOtherIncome       checklist.Section = "other_income"
	SectionLiabilities       checklist.Section = "liabilities"
	SectionLifeSituations    checklist.Section = "life_situations"
	SectionDownPaymentSavings    checklist.Section = "down_payment_savings"
	SectionDownPaymentRegistered checklist.Section = "down_payment_registered"
	SectionDownPaymentGift       checklist.Section = "down_payment_gift"
	SectionDownPaymentSale       checklist.Section = "down_payment_sale"
	SectionPropertyCondo     checklist.Section = "property_condo"
	SectionPropertyType      checklist.Section = "property_type"
	SectionSubjectProperty   checklist.Section = "subject_property"
	SectionRefinance         checklist.Section = "refinance"
	SectionResidency         checklist.Section = "residency_status"
)

// All returns every catalog rule in declaration order. The slice is
// rebuilt on each call so callers can never mutate the catalog between
// runs.
func All() []checklist.Rule {
	var rules []checklist.Rule
	rules = append(rules, identityRules()...)
	rules = append(rules, employmentRules()...)
	rules = append(rules, selfEmploymentRules()...)
	rules = append(rules, retirementRules()...)
	rules = append(rules, variableIncomeRules()...)
	rules = append(rules, rentalIncomeRules()...)
	rules = append(rules, otherIncomeRules()...)
	rules = append(rules, liabilityRules()...)
	rules = append(rules, lifeSituationRules()...)
	rules = append(rules, downPaymentSavingsRules()...)
	rules = append(rules, downPaymentRegisteredRules()...)
	rules = append(rules, downPaymentGiftRules()...)
	rules = append(rules, downPaymentSaleRules()...)
	rules = append(rules, condoRules()...)
	rules = append(rules, propertyTypeRules()...)
	rules = append(rules, subjectPropertyRules()...)
	rules = append(rules, refinanceRules()...)
	rules = append(rules, residencyRules()...)
	return rules
}

// RuleByID looks up one catalog entry; ok reports whether it exists.
func RuleByID(id string) (checklist.Rule, bool) {
	for _, r := range All() {
		if r.ID == id {
			return r, true
		}
	}
	return checklist.Rule{}, false
}

// DormantSections lists the sections whose rules are hard-coded to never
// fire automatically, with the reason the source data cannot infer the
// situation. The external override surface enumerates these to present
// manual toggles.
func DormantSections() []checklist.DormantSection {
	return []checklist.DormantSection{
		{
			Section: SectionLifeSituations,
			Reason:  "parental leave, bankruptcy and separation are not reliably present in origination data; activate per application after the intake call",
			RuleIDs: ruleIDs(lifeSituationRules()),
		},
		{
			Section: SectionResidency,
			Reason:  "residency and immigration status is self-reported and often missing; activate per application once status is confirmed",
			RuleIDs: ruleIDs(residencyRules()),
		},
	}
}

func ruleIDs(rules []checklist.Rule) []string {
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}
	return ids
}

// never is the condition of dormant rules: the triggering situation is
// not inferable from the snapshot, so automatic evaluation always says no.
func never(*checklist.RuleContext) bool { return false }
