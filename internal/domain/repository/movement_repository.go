package repository

import (
	"context"
	"time"

	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
)

// MovementFilter narrows the movement register listing. PlantID is mandatory;
// the rest are optional.
type MovementFilter struct {
	PlantID    string
	AssetID    string
	Mode       entity.Mode
	DocumentNo string
	From       *time.Time
	To         *time.Time
}

// MovementJoinedRow is one register line: a movement joined with its session
// document and the asset master.
type MovementJoinedRow struct {
	AssetID      string
	AssetType    string
	Description  string
	Mode         entity.Mode
	DocumentNo   *string
	PlantID      string
	ByUser       string
	MovementTime time.Time
}

// LastScan is the read-side projection row: the newest movement per asset.
type LastScan struct {
	AssetID   string
	Mode      entity.Mode
	ScannedAt time.Time
}

// ChallanItem is one grouped line of a challan: distinct asset type and
// description with the number of scanned units.
type ChallanItem struct {
	AssetType   string
	Description string
	Qty         int
}

// MovementRepository is the persistence port for the append-only movement
// history.
type MovementRepository interface {
	// Append inserts one accepted scan. A (session, asset) uniqueness
	// violation surfaces as domain.ErrDuplicateScan.
	Append(ctx context.Context, movement *entity.Movement) error
	// Latest returns the most recent movement for the asset at the plant, by
	// movement time then insertion order, or nil when the asset has never
	// moved.
	Latest(ctx context.Context, assetID, plantID string) (*entity.Movement, error)
	// Exists reports whether the session already holds a scan for this asset.
	Exists(ctx context.Context, sessionID, assetID string) (bool, error)
	// ListJoined is the movement register for the transactions screen.
	ListJoined(ctx context.Context, filter MovementFilter) ([]MovementJoinedRow, error)
	// LastScanPerAsset computes the dashboard projection for a plant.
	LastScanPerAsset(ctx context.Context, plantID string) ([]LastScan, error)
	// ChallanItems groups a completed session's scans by asset type and
	// description.
	ChallanItems(ctx context.Context, sessionID string) ([]ChallanItem, error)
}
