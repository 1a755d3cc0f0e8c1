package tracking

import "github.com/Nilp45/asset-tracker-backend/internal/domain/entity"

// PMDue reports whether an asset has reached its preventive-maintenance
// threshold: the PM cycle is configured, positive, and the duty-cycle counter
// has caught up to it (boundary inclusive). Assets without a configured cycle
// are never due, whatever their counter says.
//
// The PM due list and the dashboard pending-maintenance count both go through
// this function so the two can never disagree.
func PMDue(a *entity.Asset) bool {
	if a.PMCycle == nil || *a.PMCycle <= 0 {
		return false
	}
	return a.CycleSinceOK >= *a.PMCycle
}
