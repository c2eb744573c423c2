package adminRepository

import (
	"context"
	"database/sql"
	"time"

	contextPkg "DentScanGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PlatformStatsDB struct {
	TotalUsers          sql.NullInt64   `db:"total_users"`
	TotalPatients       sql.NullInt64   `db:"total_patients"`
	TotalPredictions    sql.NullInt64   `db:"total_predictions"`
	ActiveSubscriptions sql.NullInt64   `db:"active_subscriptions"`
	OpenTickets         sql.NullInt64   `db:"open_tickets"`
	PaidRevenue         sql.NullFloat64 `db:"paid_revenue"`
}

func (r *statsRepository) GetPlatformStats(c context.Context) (PlatformStats, error) {
	requestID := contextPkg.GetRequestID(c)
	var stats PlatformStatsDB

	argsKV := map[string]interface{}{
		"now": time.Now(),
	}

	query, args, err := sqlx.Named(queryGetPlatformStats, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPlatformStats named query preparation err")
		return PlatformStats{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&stats); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPlatformStats execution err")
		return PlatformStats{}, err
	}

	return PlatformStats{
		TotalUsers:          int(stats.TotalUsers.Int64),
		TotalPatients:       int(stats.TotalPatients.Int64),
		TotalPredictions:    int(stats.TotalPredictions.Int64),
		ActiveSubscriptions: int(stats.ActiveSubscriptions.Int64),
		OpenTickets:         int(stats.OpenTickets.Int64),
		PaidRevenue:         stats.PaidRevenue.Float64,
	}, nil
}
