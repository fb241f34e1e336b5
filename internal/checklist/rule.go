// internal/checklist/rule.go
package checklist

import (
	"mortgage-checklist-workers/internal/checklist/taxyear"
	"mortgage-checklist-workers/internal/models"
)

// Stage tags the urgency/category of a requested document.
type Stage string

const (
	StagePre             Stage = "PRE"
	StageFull            Stage = "FULL"
	StageLater           Stage = "LATER"
	StageConditional     Stage = "CONDITIONAL"
	StageLenderCondition Stage = "LENDER_CONDITION"
)

// Scope declares how often a rule is evaluated.
type Scope string

const (
	ScopePerBorrower Scope = "per_borrower"
	ScopePerProperty Scope = "per_property"
	ScopeShared      Scope = "shared"
)

// Section groups catalog rules topically. The catalog package defines the
// concrete section values.
type Section string

// Label is the document label of a rule: either static text or a closure
// over the resolved tax years, evaluated at generation time. The catalog
// is a long-lived static structure while the reference date varies per
// run, so dynamic labels must not be resolved at definition time.
type Label struct {
	text string
	fn   func(taxyear.Years) string
}

func StaticLabel(text string) Label {
	return Label{text: text}
}

func TaxYearLabel(fn func(taxyear.Years) string) Label {
	return Label{fn: fn}
}

// Resolve returns the label text for one run's tax years.
func (l Label) Resolve(years taxyear.Years) string {
	if l.fn != nil {
		return l.fn(years)
	}
	return l.text
}

// Rule is one static catalog entry. Condition predicates must be total
// functions over a RuleContext; a nil-safe comparison that simply returns
// false is the correct way to express "not enough data to decide".
type Rule struct {
	ID      string
	Section Section
	Stage   Stage
	Scope   Scope
	Label   Label
	Name    string
	// NameFn, when set, computes the display name from the context and
	// takes precedence over Name.
	NameFn func(*RuleContext) string
	Note   string

	// Condition drives per_borrower and shared scope rules.
	Condition func(*RuleContext) bool
	// PropertyCondition drives per_property scope rules. The context is
	// the main borrower's.
	PropertyCondition func(*RuleContext, *models.Property) bool
	// MatchNotes, when set on a matched per_borrower rule, emits one item
	// per returned note (e.g. one employment letter per employer). An
	// empty result falls back to a single item carrying the static Note.
	MatchNotes func(*RuleContext) []string
	// ExcludeWhen vetoes an otherwise-matched rule. It is evaluated only
	// after a positive primary match.
	ExcludeWhen func(*RuleContext) bool

	// InternalOnly entries populate the internal-flags list instead of
	// the item stream and are never emailable.
	InternalOnly bool
	ReviewNote   string
}

// DormantSection describes a catalog section whose rules cannot fire
// automatically and await manual activation by an external operator.
type DormantSection struct {
	Section Section `json:"section"`
	Reason  string  `json:"reason"`
	RuleIDs []string `json:"ruleIds"`
}
