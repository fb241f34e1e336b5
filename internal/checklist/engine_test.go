// internal/checklist/engine_test.go
package checklist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-checklist-workers/internal/models"
)

var refDate = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

func alwaysTrue(*RuleContext) bool  { return true }
func alwaysFalse(*RuleContext) bool { return false }

func TestGenerateScopeIsolation(t *testing.T) {
	// Two co-borrowers triggering the same per_borrower rule each get
	// their own item; dedup never crosses buckets.
	rules := []Rule{{
		ID:        "r.per_borrower",
		Scope:     ScopePerBorrower,
		Stage:     StagePre,
		Label:     StaticLabel("doc"),
		Name:      "doc",
		Condition: alwaysTrue,
	}}

	got := Generate(testSnapshot(), rules, Options{ReferenceDate: refDate})
	require.Len(t, got.Borrowers, 2)
	for _, b := range got.Borrowers {
		require.Len(t, b.Items, 1)
		assert.Equal(t, "r.per_borrower", b.Items[0].RuleID)
	}
}

func TestGenerateWithinScopeUniqueness(t *testing.T) {
	notes := func(ctx *RuleContext) []string { return []string{"job one", "job two"} }
	rules := []Rule{{
		ID:         "r.multi",
		Scope:      ScopePerBorrower,
		Stage:      StageFull,
		Label:      StaticLabel("doc"),
		Name:       "doc",
		Condition:  alwaysTrue,
		MatchNotes: notes,
	}}

	got := Generate(testSnapshot(), rules, Options{ReferenceDate: refDate})
	for _, b := range got.Borrowers {
		require.Len(t, b.Items, 1, "ruleId must be unique within a bucket")
		assert.Equal(t, "job one / job two", b.Items[0].Note)
	}
}

func TestGenerateExclusionPrecedence(t *testing.T) {
	rules := []Rule{{
		ID:          "r.excluded",
		Scope:       ScopeShared,
		Stage:       StageFull,
		Label:       StaticLabel("doc"),
		Name:        "doc",
		Condition:   alwaysTrue,
		ExcludeWhen: alwaysTrue,
	}}

	got := Generate(testSnapshot(), rules, Options{ReferenceDate: refDate})
	assert.Empty(t, got.Shared, "excluded rule must never reach output")
}

func TestGenerateExcludeWhenOnlyAfterMatch(t *testing.T) {
	excludeCalls := 0
	rules := []Rule{{
		ID:        "r.never",
		Scope:     ScopeShared,
		Stage:     StageFull,
		Label:     StaticLabel("doc"),
		Name:      "doc",
		Condition: alwaysFalse,
		ExcludeWhen: func(*RuleContext) bool {
			excludeCalls++
			return true
		},
	}}

	Generate(testSnapshot(), rules, Options{ReferenceDate: refDate})
	assert.Zero(t, excludeCalls, "excludeWhen is evaluated only after a positive primary match")
}

func TestGenerateSharedScopeSingleItem(t *testing.T) {
	rules := []Rule{{
		ID:        "r.shared",
		Scope:     ScopeShared,
		Stage:     StagePre,
		Label:     StaticLabel("doc"),
		Name:      "doc",
		Condition: alwaysTrue,
	}}

	got := Generate(testSnapshot(), rules, Options{ReferenceDate: refDate})
	require.Len(t, got.Shared, 1)
	for _, b := range got.Borrowers {
		assert.Empty(t, b.Items)
	}
}

func TestGeneratePerPropertyTagging(t *testing.T) {
	rules := []Rule{{
		ID:    "r.rental",
		Scope: ScopePerProperty,
		Stage: StageFull,
		Label: StaticLabel("doc"),
		Name:  "doc",
		PropertyCondition: func(ctx *RuleContext, p *models.Property) bool {
			return p.RentalIncome > 0
		},
	}}

	got := Generate(testSnapshot(), rules, Options{ReferenceDate: refDate})
	require.Len(t, got.Properties, 1)
	assert.Equal(t, "prop-2", got.Properties[0].PropertyID)
	require.Len(t, got.Properties[0].Items, 1)
}

func TestGenerateInternalOnlySeparation(t *testing.T) {
	rules := []Rule{{
		ID:           "r.internal",
		Scope:        ScopePerBorrower,
		Stage:        StageFull,
		Label:        StaticLabel("staff check"),
		Name:         "staff check",
		Condition:    alwaysTrue,
		InternalOnly: true,
		ReviewNote:   "verify before emailing",
	}}

	got := Generate(testSnapshot(), rules, Options{ReferenceDate: refDate})
	require.Len(t, got.InternalFlags, 2) // one per borrower
	assert.Equal(t, "verify before emailing", got.InternalFlags[0].ReviewNote)
	for _, b := range got.Borrowers {
		assert.Empty(t, b.Items)
	}
	assert.Empty(t, got.Shared)
	assert.Empty(t, got.Properties)
}

func TestGenerateManualActivation(t *testing.T) {
	rules := []Rule{{
		ID:        "r.dormant",
		Scope:     ScopePerBorrower,
		Stage:     StageFull,
		Label:     StaticLabel("doc"),
		Name:      "doc",
		Condition: alwaysFalse,
	}}

	got := Generate(testSnapshot(), rules, Options{ReferenceDate: refDate})
	for _, b := range got.Borrowers {
		assert.Empty(t, b.Items)
	}

	got = Generate(testSnapshot(), rules, Options{ReferenceDate: refDate, Activated: []string{"r.dormant"}})
	for _, b := range got.Borrowers {
		require.Len(t, b.Items, 1)
	}
}

func TestGenerateWarnings(t *testing.T) {
	snap := testSnapshot()
	snap.Application.PropertyID = "missing"
	got := Generate(snap, nil, Options{ReferenceDate: refDate})
	require.Len(t, got.Warnings, 1)
	assert.Contains(t, got.Warnings[0], "subject property missing not found")

	empty := &models.ApplicationSnapshot{Application: models.Application{ID: "app-x"}}
	got = Generate(empty, nil, Options{ReferenceDate: refDate})
	require.NotEmpty(t, got.Warnings)
	assert.Contains(t, got.Warnings[0], "no borrowers")
}

func TestGenerateNoMainBorrowerWarning(t *testing.T) {
	snap := testSnapshot()
	for i := range snap.Borrowers {
		snap.Borrowers[i].IsMainBorrower = false
	}
	got := Generate(snap, nil, Options{ReferenceDate: refDate})
	require.NotEmpty(t, got.Warnings)
	assert.Contains(t, got.Warnings[0], "no borrower flagged as main")
}

func TestGenerateStats(t *testing.T) {
	rules := []Rule{
		{ID: "r.pre", Scope: ScopePerBorrower, Stage: StagePre, Label: StaticLabel("a"), Name: "a", Condition: alwaysTrue},
		{ID: "r.full", Scope: ScopeShared, Stage: StageFull, Label: StaticLabel("b"), Name: "b", Condition: alwaysTrue},
	}

	got := Generate(testSnapshot(), rules, Options{ReferenceDate: refDate})
	assert.Equal(t, 3, got.Stats.TotalItems)
	assert.Equal(t, 2, got.Stats.ByStage["PRE"])
	assert.Equal(t, 1, got.Stats.ByStage["FULL"])
	assert.Equal(t, 1, got.Stats.ByBorrower["b-1"])
	assert.Equal(t, 2, got.Stats.BorrowerCount)
}

func TestGenerateDeterministicTimestamp(t *testing.T) {
	got := Generate(testSnapshot(), nil, Options{ReferenceDate: refDate})
	assert.Equal(t, "2026-06-15T00:00:00Z", got.GeneratedAt)
}
