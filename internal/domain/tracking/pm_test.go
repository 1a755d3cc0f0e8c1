package tracking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/tracking"
)

func intPtr(n int) *int { return &n }

func TestPMDue(t *testing.T) {
	cases := []struct {
		name    string
		pmCycle *int
		cycles  int
		want    bool
	}{
		{"no threshold configured", nil, 999, false},
		{"zero threshold never due", intPtr(0), 5, false},
		{"negative threshold never due", intPtr(-3), 5, false},
		{"below threshold", intPtr(10), 9, false},
		{"at threshold is due", intPtr(10), 10, true},
		{"over threshold", intPtr(10), 11, true},
		{"fresh asset", intPtr(10), 0, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := &entity.Asset{PMCycle: tc.pmCycle, CycleSinceOK: tc.cycles}
			assert.Equal(t, tc.want, tracking.PMDue(a))
		})
	}
}
