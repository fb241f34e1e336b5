// internal/checklist/rulecontext_test.go
package checklist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-checklist-workers/internal/models"
)

func testSnapshot() *models.ApplicationSnapshot {
	return &models.ApplicationSnapshot{
		Application: models.Application{
			ID:         "app-1",
			Goal:       models.GoalPurchase,
			PropertyID: "prop-1",
		},
		Borrowers: []models.Borrower{
			{ID: "b-2", FirstName: "Sam", LastName: "Lee"},
			{ID: "b-1", FirstName: "Ana", LastName: "Costa", IsMainBorrower: true},
		},
		Incomes: []models.Income{
			{ID: "i-1", BorrowerID: "b-1", Source: models.IncomeSourceEmployed, Employer: "Acme"},
			{ID: "i-2", BorrowerID: "b-2", Source: models.IncomeSourceSelfEmployed},
		},
		Assets: []models.Asset{
			{ID: "a-1", Type: models.AssetTypeSavings, OwnerIDs: []string{"b-1", "b-2"}, UsedForDownPayment: true},
			{ID: "a-2", Type: models.AssetTypeRRSP, OwnerIDs: []string{"b-2"}},
		},
		Liabilities: []models.Liability{
			{ID: "l-1", Type: models.LiabilityTypeLineOfCredit, OwnerIDs: []string{"b-1"}},
		},
		Properties: []models.Property{
			{ID: "prop-1", Type: models.PropertyTypeCondo},
			{ID: "prop-2", Type: models.PropertyTypeDetached, RentalIncome: 1800},
		},
	}
}

func TestBuildContextsMainBorrowerFirst(t *testing.T) {
	contexts := BuildContexts(testSnapshot(), time.Now())
	require.Len(t, contexts, 2)
	assert.Equal(t, "b-1", contexts[0].Borrower.ID)
	assert.True(t, contexts[0].Borrower.IsMainBorrower)
	assert.Equal(t, "b-2", contexts[1].Borrower.ID)
}

func TestBuildContextsOwnershipFilters(t *testing.T) {
	contexts := BuildContexts(testSnapshot(), time.Now())
	main := contexts[0]
	co := contexts[1]

	// Incomes match on exact borrowerId; they are never shared.
	require.Len(t, main.Incomes, 1)
	assert.Equal(t, "i-1", main.Incomes[0].ID)
	require.Len(t, co.Incomes, 1)
	assert.Equal(t, "i-2", co.Incomes[0].ID)

	// Assets and liabilities match on owners-array membership.
	require.Len(t, main.OwnedAssets, 1)
	assert.Equal(t, "a-1", main.OwnedAssets[0].ID)
	assert.Len(t, co.OwnedAssets, 2)
	require.Len(t, main.OwnedLiabilities, 1)
	assert.Empty(t, co.OwnedLiabilities)

	// Full rosters are available for cross-borrower checks.
	assert.Len(t, main.AllIncomes, 2)
	assert.Len(t, main.AllAssets, 2)
	assert.Len(t, main.AllBorrowers, 2)
}

func TestBuildContextsSubjectProperty(t *testing.T) {
	snap := testSnapshot()
	contexts := BuildContexts(snap, time.Now())
	require.NotNil(t, contexts[0].SubjectProperty)
	assert.Equal(t, "prop-1", contexts[0].SubjectProperty.ID)

	snap.Application.PropertyID = "missing"
	contexts = BuildContexts(snap, time.Now())
	assert.Nil(t, contexts[0].SubjectProperty)

	snap.Application.PropertyID = ""
	contexts = BuildContexts(snap, time.Now())
	assert.Nil(t, contexts[0].SubjectProperty)
}

func TestBuildContextsNoBorrowers(t *testing.T) {
	snap := &models.ApplicationSnapshot{Application: models.Application{ID: "app-2"}}
	assert.Empty(t, BuildContexts(snap, time.Now()))
}

func TestRuleContextHelpers(t *testing.T) {
	contexts := BuildContexts(testSnapshot(), time.Now())
	main := contexts[0]
	co := contexts[1]

	assert.True(t, main.HasIncomeSource(models.IncomeSourceEmployed))
	assert.False(t, main.HasIncomeSource(models.IncomeSourceSelfEmployed))
	assert.True(t, main.OwnsDownPaymentAssetOfType(models.AssetTypeSavings))
	assert.False(t, main.OwnsAssetOfType(models.AssetTypeRRSP))
	assert.True(t, co.OwnsAssetOfType(models.AssetTypeRRSP))
	// RRSP not flagged for down payment.
	assert.False(t, co.OwnsDownPaymentAssetOfType(models.AssetTypeRRSP))
	assert.True(t, main.HasLiabilityType(models.LiabilityTypeLineOfCredit))
	assert.False(t, co.HasLiabilityType(models.LiabilityTypeLineOfCredit))
	assert.Len(t, main.RentalProperties(), 1)
	assert.True(t, main.IsPurchase())
}
