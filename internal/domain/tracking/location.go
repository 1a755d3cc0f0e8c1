// Package tracking holds the movement state machine: how a mode maps to a
// location, which transitions are legal, and when preventive maintenance is
// due. Pure domain logic, no I/O.
package tracking

import "github.com/Nilp45/asset-tracker-backend/internal/domain/entity"

// LocationAfter maps an accepted movement mode to the asset's resulting
// logical location. IN and OK both land the asset at the plant.
func LocationAfter(mode entity.Mode) entity.Location {
	switch mode {
	case entity.ModeIN, entity.ModeOK:
		return entity.LocationAtPlant
	case entity.ModeOUT:
		return entity.LocationAtCustomer
	case entity.ModeMAINT:
		return entity.LocationAtMaintenance
	}
	return entity.LocationNoMovement
}

// Resolve derives the current location from the most recent movement record.
// A nil record means the asset has never been scanned.
func Resolve(last *entity.Movement) entity.Location {
	if last == nil {
		return entity.LocationNoMovement
	}
	return LocationAfter(last.Mode)
}
