package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

type fakeAssetRepo struct {
	repository.AssetRepository
	assets []*entity.Asset
}

func (f *fakeAssetRepo) ListActiveByPlant(_ context.Context, plantID string) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for _, a := range f.assets {
		if a.PlantID == plantID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeMovementRepo struct {
	repository.MovementRepository
	lastScans []repository.LastScan
}

func (f *fakeMovementRepo) LastScanPerAsset(_ context.Context, _ string) ([]repository.LastScan, error) {
	return f.lastScans, nil
}

func intp(v int) *int { return &v }

func asset(id, customer, description, assetType string) *entity.Asset {
	return &entity.Asset{
		AssetID:     id,
		AssetType:   assetType,
		Customer:    customer,
		PlantID:     "PUNE1",
		Description: description,
	}
}

func TestGetSummary_LocationsFollowLastScan(t *testing.T) {
	now := time.Now()
	assets := &fakeAssetRepo{assets: []*entity.Asset{
		asset("BIN-1", "ACME", "Blue bin", "BIN"),
		asset("BIN-2", "ACME", "Blue bin", "BIN"),
		asset("BIN-3", "ACME", "Blue bin", "BIN"),
		asset("BIN-4", "ACME", "Blue bin", "BIN"),
	}}
	movements := &fakeMovementRepo{lastScans: []repository.LastScan{
		{AssetID: "BIN-1", Mode: entity.ModeOUT, ScannedAt: now.Add(-time.Hour)},
		{AssetID: "BIN-2", Mode: entity.ModeIN, ScannedAt: now},
		{AssetID: "BIN-3", Mode: entity.ModeMAINT, ScannedAt: now},
		// BIN-4 never scanned
	}}
	uc := NewDashboardUseCase(assets, movements)

	s, err := uc.GetSummary(context.Background(), "PUNE1")
	require.NoError(t, err)

	require.Len(t, s.Overall, 1)
	row := s.Overall[0]
	assert.Equal(t, 1, row.AtCustomer)
	assert.Equal(t, 1, row.AtPlant)
	assert.Equal(t, 1, row.AtMaint)
	assert.Equal(t, 1, row.NoMove)
	assert.Equal(t, 1, s.TotalUnderMaint)

	require.Len(t, s.TopAging, 1, "only assets at customer age")
	assert.Equal(t, "BIN-1", s.TopAging[0].AssetID)
	assert.Equal(t, "00:01:00", s.TopAging[0].Aging)
}

func TestGetSummary_TopAgingCapsAtFiveNewestFirst(t *testing.T) {
	now := time.Now()
	var as []*entity.Asset
	var scans []repository.LastScan
	ids := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, id := range ids {
		as = append(as, asset(id, "ACME", "d", "BIN"))
		scans = append(scans, repository.LastScan{
			AssetID:   id,
			Mode:      entity.ModeOUT,
			ScannedAt: now.Add(-time.Duration(i+1) * time.Hour),
		})
	}
	uc := NewDashboardUseCase(&fakeAssetRepo{assets: as}, &fakeMovementRepo{lastScans: scans})

	s, err := uc.GetSummary(context.Background(), "PUNE1")
	require.NoError(t, err)

	require.Len(t, s.TopAging, 5)
	assert.Equal(t, "G", s.TopAging[0].AssetID, "oldest dispatch ages most")
	assert.Equal(t, "C", s.TopAging[4].AssetID)
}

func TestGetSummary_PMCounters(t *testing.T) {
	due := asset("BIN-1", "ACME", "d", "BIN")
	due.PMCycle = intp(5)
	due.CycleSinceOK = 6
	fresh := asset("BIN-2", "ACME", "d", "BIN")
	fresh.PMCycle = intp(5)
	fresh.CycleSinceOK = 1

	uc := NewDashboardUseCase(
		&fakeAssetRepo{assets: []*entity.Asset{due, fresh}},
		&fakeMovementRepo{},
	)
	s, err := uc.GetSummary(context.Background(), "PUNE1")
	require.NoError(t, err)

	assert.Equal(t, 1, s.TotalPendingMaint)
	require.Len(t, s.TopMaint, 1)
	assert.Equal(t, "BIN-1", s.TopMaint[0].AssetID)
}

func TestGetSummary_OverallGroupsByCustomerDescriptionType(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAssetRepo{assets: []*entity.Asset{
		asset("A1", "ACME", "Blue bin", "BIN"),
		asset("A2", "ACME", "Blue bin", "BIN"),
		asset("A3", "ACME", "", "BIN"),
		asset("A4", "ZEN", "Blue bin", "BIN"),
	}}, &fakeMovementRepo{})

	s, err := uc.GetSummary(context.Background(), "PUNE1")
	require.NoError(t, err)

	require.Len(t, s.Overall, 3)
	// Deterministic order: sorted by customer|description|type key.
	assert.Equal(t, "-", s.Overall[0].Description)
	assert.Equal(t, "ACME", s.Overall[0].Customer)
	assert.Equal(t, 2, s.Overall[1].NoMove)
	assert.Equal(t, "ZEN", s.Overall[2].Customer)
}

func TestGetSummary_RequiresPlant(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAssetRepo{}, &fakeMovementRepo{})
	_, err := uc.GetSummary(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00:00", formatMinutes(0))
	assert.Equal(t, "00:00:59", formatMinutes(59))
	assert.Equal(t, "00:01:00", formatMinutes(60))
	assert.Equal(t, "01:00:05", formatMinutes(1445))
	assert.Equal(t, "10:03:07", formatMinutes(10*1440+3*60+7))
	assert.Equal(t, "00:00:00", formatMinutes(-5))
}
