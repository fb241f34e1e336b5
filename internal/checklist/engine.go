// internal/checklist/engine.go

// Package checklist implements the document checklist generation engine:
// a pure, deterministic function of (application snapshot, optional
// manual overrides, reference date) to a generated checklist. The engine
// performs no I/O, holds no state between runs and is safe to invoke
// concurrently for different applications.
package checklist

import (
	"time"

	"mortgage-checklist-workers/internal/checklist/taxyear"
	"mortgage-checklist-workers/internal/models"
)

// Options carries the run-scoped inputs of one generation.
type Options struct {
	// ReferenceDate pins all date-relative labels; zero means time.Now().
	// Tests and scheduled backfills always set it.
	ReferenceDate time.Time
	// Activated lists rule IDs force-enabled by the manual override
	// surface (dormant rules an operator flipped on for this
	// application). An activated rule matches as if its condition were
	// true; ExcludeWhen still applies.
	Activated []string
}

// scoped pairs a raw item with its destination bucket before dedup.
type scoped struct {
	borrowerID string
	propertyID string
	shared     bool
	item       models.ChecklistItem
}

// Generate evaluates every rule in catalog order against the snapshot and
// assembles the final checklist. Predicates are expected to be total
// functions; a panicking predicate deliberately aborts the run, since a
// silently incomplete compliance checklist is worse than no checklist.
func Generate(snap *models.ApplicationSnapshot, rules []Rule, opts Options) *models.GeneratedChecklist {
	ref := opts.ReferenceDate
	if ref.IsZero() {
		ref = time.Now().UTC()
	}
	years := taxyear.Resolve(ref)

	activated := make(map[string]bool, len(opts.Activated))
	for _, id := range opts.Activated {
		activated[id] = true
	}

	contexts := BuildContexts(snap, ref)

	var warnings []string
	if len(contexts) == 0 {
		warnings = append(warnings, "snapshot contains no borrowers; nothing to evaluate")
	}
	if snap.Application.PropertyID != "" && resolveSubjectProperty(snap) == nil {
		warnings = append(warnings, "subject property "+snap.Application.PropertyID+" not found in snapshot; property-scoped rules limited to listed properties")
	}

	var mainCtx *RuleContext
	if len(contexts) > 0 {
		mainCtx = contexts[0]
		if !mainCtx.Borrower.IsMainBorrower {
			warnings = append(warnings, "no borrower flagged as main; using first borrower for application-level rules")
		}
	}

	var raw []scoped
	var flags []models.InternalFlag

	for _, rule := range rules {
		switch rule.Scope {
		case ScopePerBorrower:
			for _, ctx := range contexts {
				if !matches(rule, ctx, activated) {
					continue
				}
				if rule.InternalOnly {
					flags = append(flags, internalFlag(rule, years, ctx.Borrower.ID))
					continue
				}
				for _, note := range matchNotes(rule, ctx) {
					it := newItem(rule, years, ctx)
					it.Note = note
					raw = append(raw, scoped{borrowerID: ctx.Borrower.ID, item: it})
				}
			}

		case ScopePerProperty:
			if mainCtx == nil || rule.PropertyCondition == nil {
				continue
			}
			for i := range snap.Properties {
				p := &snap.Properties[i]
				if !activated[rule.ID] && !rule.PropertyCondition(mainCtx, p) {
					continue
				}
				if rule.ExcludeWhen != nil && rule.ExcludeWhen(mainCtx) {
					continue
				}
				if rule.InternalOnly {
					flags = append(flags, internalFlag(rule, years, ""))
					continue
				}
				raw = append(raw, scoped{propertyID: p.ID, item: newItem(rule, years, mainCtx)})
			}

		case ScopeShared:
			if mainCtx == nil || !matches(rule, mainCtx, activated) {
				continue
			}
			if rule.InternalOnly {
				flags = append(flags, internalFlag(rule, years, ""))
				continue
			}
			raw = append(raw, scoped{shared: true, item: newItem(rule, years, mainCtx)})
		}
	}

	return assemble(snap, contexts, raw, flags, warnings, ref)
}

// matches applies the primary condition (or a manual activation) and then
// the exclusion override. ExcludeWhen is evaluated only after a positive
// primary match, preserving the original behavior.
func matches(rule Rule, ctx *RuleContext, activated map[string]bool) bool {
	if rule.Condition == nil && !activated[rule.ID] {
		return false
	}
	if !activated[rule.ID] && !rule.Condition(ctx) {
		return false
	}
	if rule.ExcludeWhen != nil && rule.ExcludeWhen(ctx) {
		return false
	}
	return true
}

// matchNotes expands one positive match into one item per note; rules
// without MatchNotes (or with an empty result) yield a single item with
// the static note.
func matchNotes(rule Rule, ctx *RuleContext) []string {
	if rule.MatchNotes != nil {
		if notes := rule.MatchNotes(ctx); len(notes) > 0 {
			return notes
		}
	}
	return []string{rule.Note}
}

func newItem(rule Rule, years taxyear.Years, ctx *RuleContext) models.ChecklistItem {
	name := rule.Name
	if rule.NameFn != nil {
		name = rule.NameFn(ctx)
	}
	return models.ChecklistItem{
		RuleID:   rule.ID,
		Label:    rule.Label.Resolve(years),
		Name:     name,
		Stage:    string(rule.Stage),
		Section:  string(rule.Section),
		Note:     rule.Note,
		ForEmail: !rule.InternalOnly,
	}
}

func internalFlag(rule Rule, years taxyear.Years, borrowerID string) models.InternalFlag {
	return models.InternalFlag{
		RuleID:     rule.ID,
		Label:      rule.Label.Resolve(years),
		Section:    string(rule.Section),
		ReviewNote: rule.ReviewNote,
		BorrowerID: borrowerID,
	}
}
