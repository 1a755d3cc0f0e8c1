// Package analytics builds the plant dashboard from read-side projections.
// Nothing here is authoritative: the transition validator reads the asset
// ledger, never these aggregates.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/tracking"
)

const dashboardTopN = 5 // rows in the aging and maintenance widgets

// DashboardUseCase assembles the per-plant summary: last-scan status per
// asset, top aging at customer, PM totals and the overall location grid.
type DashboardUseCase struct {
	assetRepo    repository.AssetRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(assetRepo repository.AssetRepository, movementRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{assetRepo: assetRepo, movementRepo: movementRepo}
}

type agingRow struct {
	assetID  string
	customer string
	agingMin int
}

// GetSummary recomputes the dashboard projection on demand: one query for
// the newest movement per asset, one for the active asset ledger, the rest
// in memory.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, plantID string) (*dto.DashboardSummaryDTO, error) {
	if plantID == "" {
		return nil, domain.ErrInvalidInput
	}

	lastScans, err := uc.movementRepo.LastScanPerAsset(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: last scans: %w", err)
	}
	lastByAsset := make(map[string]repository.LastScan, len(lastScans))
	for _, ls := range lastScans {
		lastByAsset[ls.AssetID] = ls
	}

	assets, err := uc.assetRepo.ListActiveByPlant(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: assets: %w", err)
	}

	now := time.Now()
	overall := map[string]*dto.OverallRowDTO{}
	var overallKeys []string
	var topAging, topMaint []agingRow
	var totalPendingMaint, totalUnderMaint int

	for _, asset := range assets {
		status := entity.LocationNoMovement
		agingMin := 0
		if ls, ok := lastByAsset[asset.AssetID]; ok {
			status = tracking.LocationAfter(ls.Mode)
			agingMin = int(now.Sub(ls.ScannedAt).Minutes())
		}

		if status == entity.LocationAtCustomer {
			topAging = append(topAging, agingRow{asset.AssetID, asset.Customer, agingMin})
		}

		if tracking.PMDue(asset) {
			totalPendingMaint++
			topMaint = append(topMaint, agingRow{asset.AssetID, asset.Customer, agingMin})
		}
		if status == entity.LocationAtMaintenance {
			totalUnderMaint++
		}

		description := asset.Description
		if description == "" {
			description = "-"
		}
		key := asset.Customer + "|" + description + "|" + asset.AssetType
		row, ok := overall[key]
		if !ok {
			row = &dto.OverallRowDTO{
				Customer:    asset.Customer,
				Description: description,
				AssetType:   asset.AssetType,
			}
			overall[key] = row
			overallKeys = append(overallKeys, key)
		}
		switch status {
		case entity.LocationAtCustomer:
			row.AtCustomer++
		case entity.LocationAtPlant:
			row.AtPlant++
		case entity.LocationAtMaintenance:
			row.AtMaint++
		default:
			row.NoMove++
		}
	}

	sort.Slice(topAging, func(i, j int) bool { return topAging[i].agingMin > topAging[j].agingMin })
	sort.Slice(topMaint, func(i, j int) bool { return topMaint[i].agingMin > topMaint[j].agingMin })
	sort.Strings(overallKeys)

	summary := &dto.DashboardSummaryDTO{
		TopAging:          formatAging(topAging),
		TopMaint:          formatAging(topMaint),
		TotalPendingMaint: totalPendingMaint,
		TotalUnderMaint:   totalUnderMaint,
		Overall:           make([]dto.OverallRowDTO, 0, len(overallKeys)),
	}
	for _, key := range overallKeys {
		summary.Overall = append(summary.Overall, *overall[key])
	}
	return summary, nil
}

func formatAging(rows []agingRow) []dto.AgingRowDTO {
	if len(rows) > dashboardTopN {
		rows = rows[:dashboardTopN]
	}
	out := make([]dto.AgingRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AgingRowDTO{
			AssetID:  r.assetID,
			Customer: r.customer,
			Aging:    formatMinutes(r.agingMin),
		})
	}
	return out
}

// formatMinutes renders minutes as dd:hh:mm with zero padding.
func formatMinutes(min int) string {
	if min < 0 {
		min = 0
	}
	d := min / 1440
	h := (min % 1440) / 60
	m := min % 60
	return fmt.Sprintf("%02d:%02d:%02d", d, h, m)
}
