// internal/checklist/catalog/catalog_test.go
package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-checklist-workers/internal/checklist"
	"mortgage-checklist-workers/internal/checklist/taxyear"
	"mortgage-checklist-workers/internal/models"
)

func TestAllRuleIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range All() {
		require.NotEmpty(t, r.ID)
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestAllRulesWellFormed(t *testing.T) {
	years := taxyear.Resolve(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	for _, r := range All() {
		assert.NotEmpty(t, r.Section, "rule %s has no section", r.ID)
		assert.NotEmpty(t, r.Name, "rule %s has no display name", r.ID)
		assert.NotEmpty(t, r.Label.Resolve(years), "rule %s resolves to an empty label", r.ID)

		switch r.Scope {
		case checklist.ScopePerProperty:
			assert.NotNil(t, r.PropertyCondition, "per_property rule %s needs a property condition", r.ID)
		case checklist.ScopePerBorrower, checklist.ScopeShared:
			assert.NotNil(t, r.Condition, "rule %s needs a condition", r.ID)
		default:
			t.Errorf("rule %s has unknown scope %q", r.ID, r.Scope)
		}

		switch r.Stage {
		case checklist.StagePre, checklist.StageFull, checklist.StageLater,
			checklist.StageConditional, checklist.StageLenderCondition:
		default:
			t.Errorf("rule %s has unknown stage %q", r.ID, r.Stage)
		}

		if r.InternalOnly {
			assert.NotEmpty(t, r.ReviewNote, "internal rule %s should explain what to verify", r.ID)
		}
	}
}

func TestCatalogOrderIsStable(t *testing.T) {
	first := All()
	second := All()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestDormantSectionsListKnownRules(t *testing.T) {
	all := make(map[string]checklist.Rule)
	for _, r := range All() {
		all[r.ID] = r
	}

	sections := DormantSections()
	require.Len(t, sections, 2)

	ctx := &checklist.RuleContext{
		Application: &models.Application{Goal: models.GoalPurchase},
		Borrower:    &models.Borrower{ID: "b-1", IsMainBorrower: true},
	}

	for _, section := range sections {
		assert.NotEmpty(t, section.Reason)
		require.NotEmpty(t, section.RuleIDs)
		for _, id := range section.RuleIDs {
			r, ok := all[id]
			require.True(t, ok, "dormant section lists unknown rule %s", id)
			assert.Equal(t, section.Section, r.Section)
			// Dormant conditions must say no for any context.
			assert.False(t, r.Condition(ctx), "dormant rule %s fired", id)
		}
	}
}

func TestRuleByID(t *testing.T) {
	r, ok := RuleByID("down_payment.gift_letter")
	require.True(t, ok)
	assert.True(t, r.InternalOnly)
	assert.Equal(t, checklist.ScopeShared, r.Scope)

	_, ok = RuleByID("does.not.exist")
	assert.False(t, ok)
}

func TestSectionCount(t *testing.T) {
	sections := make(map[checklist.Section]bool)
	for _, r := range All() {
		sections[r.Section] = true
	}
	assert.Equal(t, 18, len(sections))
}
