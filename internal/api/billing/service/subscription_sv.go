package billingService

import (
	"context"
	"errors"
	"time"

	"DentScanGolang/internal/api/billing"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *subscriptionDomainImpl) GetStatus(c context.Context, user entity.UserLoginData) (billing.SubscriptionStatusResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return billing.SubscriptionStatusResponse{}, err
	}

	sub, err := repo.Subscriptions.GetActiveByUserID(c, user.ID, time.Now())
	if err != nil {
		if errors.Is(err, billing.ErrNoActiveSubscription) {
			return billing.SubscriptionStatusResponse{Active: false}, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get active subscription")
		return billing.SubscriptionStatusResponse{}, err
	}

	plan, err := repo.Plans.GetByID(c, sub.PlanID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"plan_id":    sub.PlanID,
			"error":      err.Error(),
		}).Error("Failed to get plan for subscription")
		return billing.SubscriptionStatusResponse{}, err
	}

	return billing.SubscriptionStatusResponse{
		Active:      true,
		PlanID:      plan.ID,
		PlanName:    plan.Name,
		PeriodStart: sub.PeriodStart,
		PeriodEnd:   sub.PeriodEnd,
		Used:        sub.Used,
		Quota:       plan.PredictionQuota,
	}, nil
}

func (s *subscriptionDomainImpl) ConsumePredictionQuota(c context.Context, doctorID string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	sub, err := repo.Subscriptions.GetActiveByUserID(c, doctorID, time.Now())
	if err != nil {
		if errors.Is(err, billing.ErrNoActiveSubscription) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"doctor_id":  doctorID,
			}).Warn("Prediction attempted without active subscription")
			return billing.ErrNoActiveSubscription
		}
		return err
	}

	plan, err := repo.Plans.GetByID(c, sub.PlanID)
	if err != nil {
		return err
	}

	if sub.Used >= plan.PredictionQuota {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"doctor_id":  doctorID,
			"used":       sub.Used,
			"quota":      plan.PredictionQuota,
		}).Warn("Prediction quota exhausted")
		return billing.ErrQuotaExceeded
	}

	if err := repo.Subscriptions.IncrementUsed(c, sub.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to increment quota usage")
		return err
	}

	return repo.Commit()
}
