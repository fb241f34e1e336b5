// internal/models/checklist.go
package models

// ChecklistItem is one requested document in the generated checklist.
type ChecklistItem struct {
	RuleID   string `json:"ruleId"`
	Label    string `json:"label"`
	Name     string `json:"name"`
	Stage    string `json:"stage"`
	Section  string `json:"section"`
	Note     string `json:"note,omitempty"`
	ForEmail bool   `json:"forEmail"`
}

// InternalFlag is a staff-only verification entry. It is never rendered
// to the borrower and never mixed into the emailable lists.
type InternalFlag struct {
	RuleID     string `json:"ruleId"`
	Label      string `json:"label"`
	Section    string `json:"section"`
	ReviewNote string `json:"reviewNote,omitempty"`
	BorrowerID string `json:"borrowerId,omitempty"`
}

type BorrowerChecklist struct {
	BorrowerID   string          `json:"borrowerId"`
	BorrowerName string          `json:"borrowerName"`
	IsMain       bool            `json:"isMain"`
	Items        []ChecklistItem `json:"items"`
}

type PropertyChecklist struct {
	PropertyID string          `json:"propertyId"`
	Address    string          `json:"address,omitempty"`
	Items      []ChecklistItem `json:"items"`
}

type ChecklistStats struct {
	TotalItems    int            `json:"totalItems"`
	ByStage       map[string]int `json:"byStage"`
	ByBorrower    map[string]int `json:"byBorrower"`
	BorrowerCount int            `json:"borrowerCount"`
	PropertyCount int            `json:"propertyCount"`
}

// GeneratedChecklist is the final output of one engine run. Constructed
// once, read-only for downstream renderers.
type GeneratedChecklist struct {
	ApplicationID string              `json:"applicationId"`
	GeneratedAt   string              `json:"generatedAt"`
	Borrowers     []BorrowerChecklist `json:"borrowers"` // main borrower first
	Properties    []PropertyChecklist `json:"properties"`
	Shared        []ChecklistItem     `json:"shared"`
	InternalFlags []InternalFlag      `json:"internalFlags"`
	Warnings      []string            `json:"warnings,omitempty"`
	Stats         ChecklistStats      `json:"stats"`
}
