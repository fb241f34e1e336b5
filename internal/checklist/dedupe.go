// internal/checklist/dedupe.go
package checklist

import (
	"strings"

	"mortgage-checklist-workers/internal/models"
)

// dedupeItems collapses same-rule duplicates within one scope bucket.
// It never runs across buckets: two co-borrowers triggering the same rule
// each keep their own item.
//
// Pass 1 merges notes: when a rule fired more than once with more than
// one distinct non-empty note, the survivor carries the unique notes
// joined with " / " (first-seen order). Groups with zero or one distinct
// note pass through untouched. Pass 2 keeps the first occurrence per rule
// ID. The merge is idempotent since the note set cannot grow on a rerun.
func dedupeItems(items []models.ChecklistItem) []models.ChecklistItem {
	notesByRule := make(map[string][]string)
	for _, it := range items {
		if it.Note == "" {
			continue
		}
		if !containsNote(notesByRule[it.RuleID], it.Note) {
			notesByRule[it.RuleID] = append(notesByRule[it.RuleID], it.Note)
		}
	}

	seen := make(map[string]bool, len(items))
	out := make([]models.ChecklistItem, 0, len(items))
	for _, it := range items {
		if seen[it.RuleID] {
			continue
		}
		seen[it.RuleID] = true
		if notes := notesByRule[it.RuleID]; len(notes) > 1 {
			it.Note = strings.Join(notes, " / ")
		}
		out = append(out, it)
	}
	return out
}

func containsNote(notes []string, note string) bool {
	for _, n := range notes {
		if n == note {
			return true
		}
	}
	return false
}
