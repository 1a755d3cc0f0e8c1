package maintenance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nilp45/asset-tracker-backend/internal/application/maintenance"
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

func intp(v int) *int { return &v }

func TestListDue_ThresholdAndFormatting(t *testing.T) {
	repo := &fakeAssetRepo{assets: []*entity.Asset{
		{AssetID: "BIN-1", AssetType: "BIN", Customer: "ACME", PlantID: "PUNE1", PMCycle: intp(10), CycleSinceOK: 10},
		{AssetID: "BIN-2", AssetType: "BIN", Customer: "ACME", PlantID: "PUNE1", PMCycle: intp(10), CycleSinceOK: 9},
		{AssetID: "BIN-3", AssetType: "BIN", Customer: "ACME", PlantID: "PUNE1", PMCycle: nil, CycleSinceOK: 50},
		{AssetID: "BIN-4", AssetType: "BIN", Customer: "ACME", PlantID: "PUNE1", PMCycle: intp(0), CycleSinceOK: 50},
		{AssetID: "BIN-5", AssetType: "BIN", Customer: "ACME", PlantID: "PUNE1", PMCycle: intp(3), CycleSinceOK: 7},
	}}
	uc := maintenance.NewPMDueUseCase(repo)

	due, err := uc.ListDue(context.Background(), "PUNE1")
	require.NoError(t, err)
	require.Len(t, due, 2)

	assert.Equal(t, "BIN-1", due[0].AssetID)
	assert.Equal(t, "PM DUE", due[0].Status)
	assert.Equal(t, "-", due[0].Description, "empty description renders as dash")
	assert.Equal(t, "BIN-5", due[1].AssetID)
	assert.Equal(t, 7, due[1].CycleSinceOK)
	assert.Equal(t, 3, due[1].PMCycle)
}

func TestListDue_RequiresPlant(t *testing.T) {
	uc := maintenance.NewPMDueUseCase(&fakeAssetRepo{})
	_, err := uc.ListDue(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListDue_EmptyPlantReturnsEmptyList(t *testing.T) {
	uc := maintenance.NewPMDueUseCase(&fakeAssetRepo{})
	due, err := uc.ListDue(context.Background(), "PUNE1")
	require.NoError(t, err)
	assert.Empty(t, due)
	assert.NotNil(t, due, "empty list serializes as [], not null")
}
