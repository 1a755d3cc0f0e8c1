package dto

import "time"

// TransactionRowDTO one line of the movement register.
type TransactionRowDTO struct {
	AssetID      string    `json:"asset_id"`
	AssetType    string    `json:"asset_type"`
	Description  string    `json:"description"`
	Mode         string    `json:"mode"`
	DocumentNo   *string   `json:"document_no"`
	PlantID      string    `json:"plant_id"`
	ByUser       string    `json:"by_user"`
	MovementTime time.Time `json:"movement_time"`
}

// ShortQtyDocDTO one completed document that closed short of its target.
type ShortQtyDocDTO struct {
	DocumentNo *string   `json:"document_no"`
	TotalQty   *int      `json:"total_qty"`
	ScannedQty int       `json:"scanned_qty"`
	PlantID    string    `json:"plant_id"`
	CreatedBy  string    `json:"created_by"`
	Remark     string    `json:"remark"`
	CreatedAt  time.Time `json:"created_at"`
}

// TransactionListResponse payload for GET /api/transactions.
type TransactionListResponse struct {
	Transactions []TransactionRowDTO `json:"transactions"`
	ShortQty     []ShortQtyDocDTO    `json:"short_qty"`
}
