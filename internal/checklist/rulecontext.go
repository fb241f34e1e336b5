// internal/checklist/rulecontext.go
package checklist

import (
	"sort"
	"time"

	"mortgage-checklist-workers/internal/models"
)

// RuleContext is the per-borrower evaluation view of one application
// snapshot. It is built once and never mutated afterwards; condition
// predicates treat it as read-only.
type RuleContext struct {
	Application *models.Application
	Borrower    *models.Borrower

	// Incomes holds only this borrower's income records (exact
	// borrowerId match, incomes are not shared).
	Incomes []models.Income

	// Full rosters for cross-borrower and application-level checks.
	AllBorrowers []models.Borrower
	AllIncomes   []models.Income
	AllAssets    []models.Asset
	AllProperties []models.Property
	AllLiabilities []models.Liability

	// OwnedAssets and OwnedLiabilities are the subsets whose owners
	// array contains this borrower's id.
	OwnedAssets      []models.Asset
	OwnedLiabilities []models.Liability

	// SubjectProperty is the property linked by the application, nil when
	// absent or unresolved.
	SubjectProperty *models.Property

	ReferenceDate time.Time
}

// BuildContexts derives one context per borrower, main borrower first.
// Malformed references resolve to empty slices or nil; surfacing warnings
// for missing expected data is the engine's job, not the builder's.
func BuildContexts(snap *models.ApplicationSnapshot, referenceDate time.Time) []*RuleContext {
	subject := resolveSubjectProperty(snap)

	contexts := make([]*RuleContext, 0, len(snap.Borrowers))
	for i := range snap.Borrowers {
		b := snap.Borrowers[i]
		contexts = append(contexts, &RuleContext{
			Application:      &snap.Application,
			Borrower:         &b,
			Incomes:          incomesFor(snap.Incomes, b.ID),
			AllBorrowers:     snap.Borrowers,
			AllIncomes:       snap.Incomes,
			AllAssets:        snap.Assets,
			AllProperties:    snap.Properties,
			AllLiabilities:   snap.Liabilities,
			OwnedAssets:      assetsOwnedBy(snap.Assets, b.ID),
			OwnedLiabilities: liabilitiesOwnedBy(snap.Liabilities, b.ID),
			SubjectProperty:  subject,
			ReferenceDate:    referenceDate,
		})
	}

	// Stable: co-borrowers keep their original relative order.
	sort.SliceStable(contexts, func(i, j int) bool {
		return contexts[i].Borrower.IsMainBorrower && !contexts[j].Borrower.IsMainBorrower
	})

	return contexts
}

func resolveSubjectProperty(snap *models.ApplicationSnapshot) *models.Property {
	if snap.Application.PropertyID == "" {
		return nil
	}
	for i := range snap.Properties {
		if snap.Properties[i].ID == snap.Application.PropertyID {
			return &snap.Properties[i]
		}
	}
	return nil
}

func incomesFor(incomes []models.Income, borrowerID string) []models.Income {
	var out []models.Income
	for _, inc := range incomes {
		if inc.BorrowerID == borrowerID {
			out = append(out, inc)
		}
	}
	return out
}

func assetsOwnedBy(assets []models.Asset, borrowerID string) []models.Asset {
	var out []models.Asset
	for _, a := range assets {
		if containsID(a.OwnerIDs, borrowerID) {
			out = append(out, a)
		}
	}
	return out
}

func liabilitiesOwnedBy(liabilities []models.Liability, borrowerID string) []models.Liability {
	var out []models.Liability
	for _, l := range liabilities {
		if containsID(l.OwnerIDs, borrowerID) {
			out = append(out, l)
		}
	}
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// --- predicate helpers used by the catalog ---

// HasIncomeSource reports whether this borrower has any income record
// with the given source.
func (c *RuleContext) HasIncomeSource(source string) bool {
	for _, inc := range c.Incomes {
		if inc.Source == source {
			return true
		}
	}
	return false
}

// IncomesBySource returns this borrower's income records with the given
// source, in snapshot order.
func (c *RuleContext) IncomesBySource(source string) []models.Income {
	var out []models.Income
	for _, inc := range c.Incomes {
		if inc.Source == source {
			out = append(out, inc)
		}
	}
	return out
}

// HasPayType reports whether any employment income of this borrower uses
// the given pay type.
func (c *RuleContext) HasPayType(payType string) bool {
	for _, inc := range c.Incomes {
		if inc.Source == models.IncomeSourceEmployed && inc.PayType == payType {
			return true
		}
	}
	return false
}

// OwnsAssetOfType reports whether this borrower owns any visible asset of
// the given type.
func (c *RuleContext) OwnsAssetOfType(assetType string) bool {
	for _, a := range c.OwnedAssets {
		if !a.Hidden && a.Type == assetType {
			return true
		}
	}
	return false
}

// OwnsDownPaymentAssetOfType reports whether this borrower owns a visible
// asset of the given type contributing to the down payment.
func (c *RuleContext) OwnsDownPaymentAssetOfType(assetType string) bool {
	for _, a := range c.OwnedAssets {
		if !a.Hidden && a.UsedForDownPayment && a.Type == assetType {
			return true
		}
	}
	return false
}

// DownPaymentAssetOfType reports whether any borrower contributes an
// asset of the given type to the down payment (application-level check).
func (c *RuleContext) DownPaymentAssetOfType(assetType string) bool {
	for _, a := range c.AllAssets {
		if !a.Hidden && a.UsedForDownPayment && a.Type == assetType {
			return true
		}
	}
	return false
}

// HasLiabilityType reports whether this borrower owns a liability of the
// given type.
func (c *RuleContext) HasLiabilityType(liabilityType string) bool {
	for _, l := range c.OwnedLiabilities {
		if l.Type == liabilityType {
			return true
		}
	}
	return false
}

// RentalProperties returns the application properties carrying rental
// income.
func (c *RuleContext) RentalProperties() []models.Property {
	var out []models.Property
	for _, p := range c.AllProperties {
		if p.RentalIncome > 0 {
			out = append(out, p)
		}
	}
	return out
}

// IsPurchase reports whether the application goal is a purchase.
func (c *RuleContext) IsPurchase() bool {
	return c.Application.Goal == models.GoalPurchase
}
