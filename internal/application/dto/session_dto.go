package dto

import "time"

// StartSessionRequest body for POST /api/sessions/start. DocumentNo and
// TotalQty are mandatory for IN/OUT, ignored-if-empty for MAINT/OK.
type StartSessionRequest struct {
	Mode       string `json:"mode" validate:"required,oneof=IN OUT MAINT OK"`
	DocumentNo string `json:"document_no,omitempty"`
	TotalQty   int    `json:"total_qty,omitempty"`
	PlantID    string `json:"plant_id" validate:"required"`
}

// StartSessionResponse returns the new session id.
type StartSessionResponse struct {
	SessionID string `json:"session_id"`
}

// CloseSessionRequest body for POST /api/sessions/close.
type CloseSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// CloseSessionResponse reports whether the close attached a short-quantity
// remark. Remark is nil when the session closed clean.
type CloseSessionResponse struct {
	CompletedWithRemark bool    `json:"completed_with_remark"`
	Remark              *string `json:"remark"`
}

// SessionResponse is the read model for one session.
type SessionResponse struct {
	ID         string    `json:"id"`
	Mode       string    `json:"mode"`
	DocumentNo *string   `json:"document_no"`
	TotalQty   *int      `json:"total_qty"`
	ScannedQty int       `json:"scanned_qty"`
	Remark     string    `json:"remark,omitempty"`
	PlantID    string    `json:"plant_id"`
	CreatedBy  string    `json:"created_by"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
