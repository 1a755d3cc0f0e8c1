package entity

import "time"

// Plant is a physical site assets belong to. Scans are always scoped to one
// plant; an asset never moves between plants.
type Plant struct {
	ID        string
	PlantID   string // unique short code, e.g. "PUNE1"
	PlantName string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
