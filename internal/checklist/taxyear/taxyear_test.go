// internal/checklist/taxyear/taxyear_test.go
package taxyear

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		ref            time.Time
		wantCurrent    int
		wantPrevious   int
		wantTwoBack    int
		wantSlipsAvail bool
	}{
		{
			name:           "late April still references prior year",
			ref:            date(2026, time.April, 30),
			wantCurrent:    2025,
			wantPrevious:   2024,
			wantTwoBack:    2023,
			wantSlipsAvail: false,
		},
		{
			name:           "first of May rolls to calendar year",
			ref:            date(2026, time.May, 1),
			wantCurrent:    2026,
			wantPrevious:   2025,
			wantTwoBack:    2024,
			wantSlipsAvail: true,
		},
		{
			name:           "january",
			ref:            date(2025, time.January, 2),
			wantCurrent:    2024,
			wantPrevious:   2023,
			wantTwoBack:    2022,
			wantSlipsAvail: false,
		},
		{
			name:           "december",
			ref:            date(2025, time.December, 31),
			wantCurrent:    2025,
			wantPrevious:   2024,
			wantTwoBack:    2023,
			wantSlipsAvail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.ref)
			assert.Equal(t, tt.wantCurrent, got.Current)
			assert.Equal(t, tt.wantPrevious, got.Previous)
			assert.Equal(t, tt.wantTwoBack, got.TwoBack)
			assert.Equal(t, tt.wantSlipsAvail, got.SlipsAvailable)
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	ref := date(2026, time.July, 15)
	assert.Equal(t, Resolve(ref), Resolve(ref))
}
