// internal/checklist/taxyear/taxyear.go
package taxyear

import "time"

// Years holds the tax years referenced by date-dependent document labels.
type Years struct {
	Current  int  `json:"current"`
	Previous int  `json:"previous"`
	TwoBack  int  `json:"twoBack"`
	// SlipsAvailable reports whether slips for Current are expected to
	// exist yet. Slips for year Y are assumed available starting in May
	// of Y+1.
	SlipsAvailable bool `json:"slipsAvailable"`
}

// Resolve computes the referenced tax years for a given date. January
// through April treat the prior calendar year as current; May onward the
// calendar year itself is current. Pure function, no error conditions.
func Resolve(ref time.Time) Years {
	year := ref.Year()
	if ref.Month() < time.May {
		year--
	}
	return Years{
		Current:        year,
		Previous:       year - 1,
		TwoBack:        year - 2,
		SlipsAvailable: ref.Month() >= time.May,
	}
}
