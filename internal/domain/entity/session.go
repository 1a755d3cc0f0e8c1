package entity

import "time"

// Session statuses. Completed is terminal: a completed session never accepts
// another scan and never reopens.
const (
	SessionStatusDraft     = "draft" // legacy imports only; session start creates active
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

// Session is one scanning batch against a single document, plant and mode.
// TotalQty nil means unbounded (no auto-completion); DocumentNo nil means an
// ad-hoc batch (MAINT/OK). ScannedQty only ever grows, by exactly one per
// accepted scan.
type Session struct {
	ID         string
	Mode       Mode
	DocumentNo *string
	TotalQty   *int
	ScannedQty int
	Remark     string
	PlantID    string
	CreatedBy  string
	Status     string

	// Transport details filled in after completion, for the challan.
	ShipToAddress string
	Transporter   string
	TransportMode string
	VehicleNo     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RemainingQty reports how many scans are still expected, or nil for
// unbounded sessions.
func (s *Session) RemainingQty() *int {
	if s.TotalQty == nil {
		return nil
	}
	r := *s.TotalQty - s.ScannedQty
	if r < 0 {
		r = 0
	}
	return &r
}
