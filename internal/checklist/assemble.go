// internal/checklist/assemble.go
package checklist

import (
	"time"

	"mortgage-checklist-workers/internal/models"
)

// assemble reshapes the raw item stream into the final checklist: one
// deduplicated bucket per borrower (main first), per property, and one
// shared bucket, plus internal flags, warnings and stats. Pure reshape,
// nothing here can fail.
func assemble(snap *models.ApplicationSnapshot, contexts []*RuleContext, raw []scoped, flags []models.InternalFlag, warnings []string, ref time.Time) *models.GeneratedChecklist {
	byBorrower := make(map[string][]models.ChecklistItem)
	byProperty := make(map[string][]models.ChecklistItem)
	var shared []models.ChecklistItem

	for _, s := range raw {
		switch {
		case s.shared:
			shared = append(shared, s.item)
		case s.propertyID != "":
			byProperty[s.propertyID] = append(byProperty[s.propertyID], s.item)
		default:
			byBorrower[s.borrowerID] = append(byBorrower[s.borrowerID], s.item)
		}
	}

	out := &models.GeneratedChecklist{
		ApplicationID: snap.Application.ID,
		GeneratedAt:   ref.UTC().Format(time.RFC3339),
		Shared:        dedupeItems(shared),
		InternalFlags: flags,
		Warnings:      warnings,
	}

	// Contexts are already ordered main borrower first.
	for _, ctx := range contexts {
		items := dedupeItems(byBorrower[ctx.Borrower.ID])
		if items == nil {
			items = []models.ChecklistItem{}
		}
		out.Borrowers = append(out.Borrowers, models.BorrowerChecklist{
			BorrowerID:   ctx.Borrower.ID,
			BorrowerName: ctx.Borrower.FirstName + " " + ctx.Borrower.LastName,
			IsMain:       ctx.Borrower.IsMainBorrower,
			Items:        items,
		})
	}

	// Property buckets in snapshot order; properties with no items are
	// omitted rather than rendered empty.
	for _, p := range snap.Properties {
		items := byProperty[p.ID]
		if len(items) == 0 {
			continue
		}
		out.Properties = append(out.Properties, models.PropertyChecklist{
			PropertyID: p.ID,
			Address:    p.Address,
			Items:      dedupeItems(items),
		})
	}

	out.Stats = computeStats(out)
	return out
}

func computeStats(c *models.GeneratedChecklist) models.ChecklistStats {
	stats := models.ChecklistStats{
		ByStage:       make(map[string]int),
		ByBorrower:    make(map[string]int),
		BorrowerCount: len(c.Borrowers),
		PropertyCount: len(c.Properties),
	}

	count := func(items []models.ChecklistItem) {
		for _, it := range items {
			stats.TotalItems++
			stats.ByStage[it.Stage]++
		}
	}

	for _, b := range c.Borrowers {
		stats.ByBorrower[b.BorrowerID] = len(b.Items)
		count(b.Items)
	}
	for _, p := range c.Properties {
		count(p.Items)
	}
	count(c.Shared)

	return stats
}
