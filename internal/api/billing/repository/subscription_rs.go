package billingRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"DentScanGolang/internal/api/billing"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SubscriptionDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	PlanID      sql.NullString `db:"plan_id"`
	PeriodStart sql.NullTime   `db:"period_start"`
	PeriodEnd   sql.NullTime   `db:"period_end"`
	Used        sql.NullInt64  `db:"used"`
	CreatedAt   sql.NullTime   `db:"created_at"`
}

func (r *subscriptionRepository) CreateSubscription(c context.Context, sub entity.Subscription) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           sub.ID,
		"user_id":      sub.UserID,
		"plan_id":      sub.PlanID,
		"period_start": sub.PeriodStart,
		"period_end":   sub.PeriodEnd,
		"created_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateSubscription, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateSubscription named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating subscription")
		return err
	}

	return nil
}

func (r *subscriptionRepository) GetActiveByUserID(c context.Context, userID string, now time.Time) (entity.Subscription, error) {
	requestID := contextPkg.GetRequestID(c)
	var sub SubscriptionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"now":     now,
	}

	query, args, err := sqlx.Named(queryGetActiveSubscriptionByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetActiveByUserID named query preparation err")
		return entity.Subscription{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&sub); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Subscription{}, billing.ErrNoActiveSubscription
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetActiveByUserID execution err")
		return entity.Subscription{}, err
	}

	return r.makeSubscription(sub), nil
}

func (r *subscriptionRepository) IncrementUsed(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryIncrementSubscriptionUsed, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementUsed named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementUsed execution err")
		return err
	}

	return nil
}

func (r *subscriptionRepository) makeSubscription(sub SubscriptionDB) entity.Subscription {
	var periodStart, periodEnd, createdAt time.Time

	if sub.PeriodStart.Valid {
		periodStart = sub.PeriodStart.Time
	}
	if sub.PeriodEnd.Valid {
		periodEnd = sub.PeriodEnd.Time
	}
	if sub.CreatedAt.Valid {
		createdAt = sub.CreatedAt.Time
	}

	return entity.Subscription{
		ID:          sub.ID.String,
		UserID:      sub.UserID.String,
		PlanID:      sub.PlanID.String,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Used:        int(sub.Used.Int64),
		CreatedAt:   createdAt,
	}
}
