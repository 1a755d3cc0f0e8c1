package dto

// ChallanItemDTO one grouped challan line.
type ChallanItemDTO struct {
	AssetType   string `json:"asset_type"`
	Description string `json:"description"`
	Qty         int    `json:"qty"`
}

// ChallanResponse the assembled challan document (JSON only; rendering is
// the frontend's job).
type ChallanResponse struct {
	Invoice       string           `json:"invoice"`
	TotalQty      int              `json:"total_qty"`
	PlantID       string           `json:"plant_id"`
	PlantAddress  string           `json:"plant_address"`
	Transporter   string           `json:"transporter"`
	TransportMode string           `json:"transport_mode"`
	VehicleNo     string           `json:"vehicle_no"`
	ShipToAddress string           `json:"ship_to_address"`
	Items         []ChallanItemDTO `json:"items"`
}

// SaveTransportRequest attaches transport details to a completed session
// before the challan is issued.
type SaveTransportRequest struct {
	Invoice       string `json:"invoice" validate:"required"`
	PlantID       string `json:"plant_id" validate:"required"`
	Transporter   string `json:"transporter,omitempty"`
	TransportMode string `json:"transport_mode,omitempty"`
	VehicleNo     string `json:"vehicle_no,omitempty"`
	ShipToAddress string `json:"ship_to_address,omitempty"`
}
