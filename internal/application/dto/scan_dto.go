package dto

// ScanRequest body for POST /api/scan. AssetID is upper-cased before lookup.
type ScanRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	AssetID   string `json:"asset_id" validate:"required"`
	PlantID   string `json:"plant_id" validate:"required"`
}

// ScanResponse reports the session progress after an accepted scan.
// RemainingQty is nil for unbounded sessions.
type ScanResponse struct {
	ScannedQty   int    `json:"scanned_qty"`
	RemainingQty *int   `json:"remaining_qty"`
	Completed    bool   `json:"completed"`
	AssetID      string `json:"asset_id"`
	Mode         string `json:"mode"`
}
