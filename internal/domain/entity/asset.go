package entity

import "time"

// Lifecycle labels for Asset.Status. Informational only; movement decisions
// run off CurrentLocation.
const (
	AssetStatusAvailable = "AVAILABLE"
)

// Asset is one physical returnable unit (container, tool, equipment) tracked
// by barcode. Provisioned by an admin, deactivated instead of deleted.
//
// CycleSinceOK counts IN-mode scans since the last OK verification and is the
// duty-cycle counter behind preventive maintenance. PMCycle nil means the
// asset has no PM tracking at all.
type Asset struct {
	ID              string
	AssetID         string // unique uppercase scan code
	AssetType       string
	Customer        string
	PlantID         string
	Description     string
	PMCycle         *int
	CycleSinceOK    int
	LastOKAt        *time.Time
	CurrentLocation Location // maintained transactionally alongside each accepted movement
	Status          string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
