package tracking

import "github.com/Nilp45/asset-tracker-backend/internal/domain/entity"

// Reject reasons, stable identifiers for clients and tests.
const (
	RejectAlreadyAtPlant     = "already_at_plant"     // cannot re-receive
	RejectAlreadyDispatched  = "already_dispatched"   // cannot re-dispatch
	RejectHeldForMaintenance = "held_for_maintenance" // must clear via OK first
	RejectNotInMaintenance   = "not_in_maintenance"   // OK only clears a maintenance hold
	RejectNotAtPlant         = "not_at_plant"         // MAINT requires the asset at plant
	RejectUnknownMovement    = "unknown_movement"     // mode or location outside the table
)

// Decision is the outcome of validating one requested movement.
type Decision struct {
	Allowed bool
	Reason  string // set when Allowed is false
}

func allowed() Decision        { return Decision{Allowed: true} }
func forbid(r string) Decision { return Decision{Allowed: false, Reason: r} }

// decisionTable spells out every Location×Mode combination. Adding a mode or
// a location without extending this table makes Validate reject it.
var decisionTable = map[entity.Location]map[entity.Mode]Decision{
	entity.LocationNoMovement: {
		entity.ModeIN:    allowed(),
		entity.ModeOUT:   allowed(),
		entity.ModeMAINT: forbid(RejectNotAtPlant),
		entity.ModeOK:    forbid(RejectNotInMaintenance),
	},
	entity.LocationAtPlant: {
		entity.ModeIN:    forbid(RejectAlreadyAtPlant),
		entity.ModeOUT:   allowed(),
		entity.ModeMAINT: allowed(),
		entity.ModeOK:    forbid(RejectNotInMaintenance),
	},
	entity.LocationAtCustomer: {
		entity.ModeIN:    allowed(),
		entity.ModeOUT:   forbid(RejectAlreadyDispatched),
		entity.ModeMAINT: forbid(RejectNotAtPlant),
		entity.ModeOK:    forbid(RejectNotInMaintenance),
	},
	entity.LocationAtMaintenance: {
		entity.ModeIN:    forbid(RejectHeldForMaintenance),
		entity.ModeOUT:   forbid(RejectHeldForMaintenance),
		entity.ModeMAINT: forbid(RejectNotAtPlant),
		entity.ModeOK:    allowed(),
	},
}

// Validate decides whether an asset currently at `current` may move with the
// requested mode. Unknown combinations are rejected, never silently allowed.
func Validate(current entity.Location, requested entity.Mode) Decision {
	row, ok := decisionTable[current]
	if !ok {
		return forbid(RejectUnknownMovement)
	}
	d, ok := row[requested]
	if !ok {
		return forbid(RejectUnknownMovement)
	}
	return d
}
