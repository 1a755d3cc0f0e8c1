package entity

import "time"

// Mode is the class of a movement operation. Closed set: adding a mode means
// touching every exhaustive switch and the transition decision table.
type Mode string

const (
	ModeIN    Mode = "IN"    // receipt at plant
	ModeOUT   Mode = "OUT"   // dispatch to customer
	ModeMAINT Mode = "MAINT" // enter maintenance hold
	ModeOK    Mode = "OK"    // maintenance-clearing verification
)

// Valid reports whether m is one of the four known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeIN, ModeOUT, ModeMAINT, ModeOK:
		return true
	}
	return false
}

// Location is an asset's logical position, derived from its movement history.
type Location string

const (
	LocationAtPlant       Location = "AT_PLANT"
	LocationAtCustomer    Location = "AT_CUSTOMER"
	LocationAtMaintenance Location = "AT_MAINTENANCE"
	LocationNoMovement    Location = "NO_MOVEMENT" // no history yet
)

// Movement is one accepted scan: who moved which asset, when, in which mode,
// under which session. Append-only; never mutated or deleted.
type Movement struct {
	ID           string
	SessionID    string
	AssetID      string
	PlantID      string
	Mode         Mode
	ByUser       string
	MovementTime time.Time
	CreatedAt    time.Time
	Seq          int64 // insertion order, breaks ties between equal movement times
}
