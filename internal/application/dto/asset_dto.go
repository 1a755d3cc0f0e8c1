package dto

import "time"

// AddAssetsRequest bulk-provisions a batch of identical assets; scan codes
// are generated server-side.
type AddAssetsRequest struct {
	AssetType   string `json:"asset_type" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	Customer    string `json:"customer" validate:"required"`
	PlantID     string `json:"plant_id" validate:"required"`
	Description string `json:"description,omitempty"`
	PMCycle     *int   `json:"pm_cycle,omitempty"`
}

// AddAssetsResponse reports how many assets were created.
type AddAssetsResponse struct {
	Created int `json:"created"`
}

// AssetResponse is the read model for one asset.
type AssetResponse struct {
	AssetID         string     `json:"asset_id"`
	AssetType       string     `json:"asset_type"`
	Customer        string     `json:"customer"`
	PlantID         string     `json:"plant_id"`
	Description     string     `json:"description"`
	PMCycle         *int       `json:"pm_cycle"`
	CycleSinceOK    int        `json:"cycle_since_ok"`
	LastOKAt        *time.Time `json:"last_ok_at"`
	CurrentLocation string     `json:"current_location"`
	Status          string     `json:"status"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"created_at"`
}

// AssetLocationResponse answers "where is this asset now": the derived
// location plus the movement that put it there, when one exists.
type AssetLocationResponse struct {
	AssetID    string     `json:"asset_id"`
	Location   string     `json:"location"`
	LastMode   *string    `json:"last_mode"`
	LastScanAt *time.Time `json:"last_scan_at"`
}

// PMDueAssetDTO is one line of the PM pending list.
type PMDueAssetDTO struct {
	AssetID      string `json:"asset_id"`
	Description  string `json:"description"`
	AssetType    string `json:"asset_type"`
	Customer     string `json:"customer"`
	CycleSinceOK int    `json:"cycle_since_ok"`
	PMCycle      int    `json:"pm_cycle"`
	Status       string `json:"status"` // always "PM DUE"
}
