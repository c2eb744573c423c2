package billingService

import (
	"context"

	"DentScanGolang/internal/api/billing"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *planDomainImpl) ListPlans(c context.Context) ([]billing.PlanResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	plans, err := repo.Plans.GetAll(c)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get plans")
		return nil, err
	}

	res := make([]billing.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		res = append(res, billing.PlanResponse{
			ID:              plan.ID,
			Name:            plan.Name,
			MonthlyPrice:    plan.MonthlyPrice,
			PredictionQuota: plan.PredictionQuota,
			Description:     plan.Description,
		})
	}

	return res, nil
}
