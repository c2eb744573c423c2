package adminService

import (
	"context"

	"DentScanGolang/internal/api/admin"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *statsDomainImpl) GetPlatformStats(c context.Context) (admin.PlatformStatsResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.adminRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return admin.PlatformStatsResponse{}, err
	}

	stats, err := repo.Stats.GetPlatformStats(c)
	if err != nil {
		return admin.PlatformStatsResponse{}, err
	}

	return admin.PlatformStatsResponse{
		TotalUsers:          stats.TotalUsers,
		TotalPatients:       stats.TotalPatients,
		TotalPredictions:    stats.TotalPredictions,
		ActiveSubscriptions: stats.ActiveSubscriptions,
		OpenTickets:         stats.OpenTickets,
		PaidRevenue:         stats.PaidRevenue,
	}, nil
}
