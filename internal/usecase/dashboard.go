package usecase

import (
	"context"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
)

const recentEstimatesLimit = 5

// DashboardStats summarises the business for the home screen. Pending counts
// estimates waiting on the customer (sent or viewed).
type DashboardStats struct {
	TotalEstimates    int
	PendingEstimates  int
	AcceptedEstimates int
	TotalCustomers    int
	TotalValue        float64
	AcceptedValue     float64
	Recent            []entities.Estimate
}

func (u *EstimateUseCase) Dashboard(ctx context.Context) (DashboardStats, error) {
	all := u.store.Estimates()
	stats := DashboardStats{
		TotalEstimates: len(all),
		TotalCustomers: len(u.store.Customers()),
	}
	for i, e := range all {
		e = u.effective(e)
		all[i] = e
		stats.TotalValue += e.Total
		switch e.Status {
		case entities.EstimateStatusSent, entities.EstimateStatusViewed:
			stats.PendingEstimates++
		case entities.EstimateStatusAccepted:
			stats.AcceptedEstimates++
			stats.AcceptedValue += e.Total
		}
	}
	sortNewestFirst(all)
	if len(all) > recentEstimatesLimit {
		all = all[:recentEstimatesLimit]
	}
	stats.Recent = all
	return stats, nil
}
