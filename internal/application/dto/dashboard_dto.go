package dto

// AgingRowDTO one row of the top-aging / top-maintenance widgets. Aging is
// formatted dd:hh:mm.
type AgingRowDTO struct {
	AssetID  string `json:"asset_id"`
	Customer string `json:"customer"`
	Aging    string `json:"aging"`
}

// OverallRowDTO one row of the overall grid, grouped by customer,
// description and asset type.
type OverallRowDTO struct {
	Customer    string `json:"customer"`
	Description string `json:"description"`
	AssetType   string `json:"asset_type"`
	AtCustomer  int    `json:"at_customer"`
	AtPlant     int    `json:"at_plant"`
	AtMaint     int    `json:"at_maint"`
	NoMove      int    `json:"no_move"`
}

// DashboardSummaryDTO the per-plant dashboard payload.
type DashboardSummaryDTO struct {
	TopAging          []AgingRowDTO   `json:"top_aging"`
	TopMaint          []AgingRowDTO   `json:"top_maint"`
	TotalPendingMaint int             `json:"total_pending_maint"`
	TotalUnderMaint   int             `json:"total_under_maint"`
	Overall           []OverallRowDTO `json:"overall"`
}
