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

type PlanDB struct {
	ID              sql.NullString  `db:"id"`
	Name            sql.NullString  `db:"name"`
	MonthlyPrice    sql.NullFloat64 `db:"monthly_price"`
	PredictionQuota sql.NullInt64   `db:"prediction_quota"`
	Description     sql.NullString  `db:"description"`
	CreatedAt       sql.NullTime    `db:"created_at"`
}

func (r *planRepository) GetAll(c context.Context) ([]entity.Plan, error) {
	requestID := contextPkg.GetRequestID(c)

	query := r.q.Rebind(queryGetAllPlans)

	rows, err := r.q.QueryxContext(c, query)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll plans execution err")
		return nil, err
	}
	defer rows.Close()

	plans := make([]entity.Plan, 0)
	for rows.Next() {
		var p PlanDB
		if err := rows.StructScan(&p); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("GetAll plans row scan err")
			return nil, err
		}
		plans = append(plans, r.makePlan(p))
	}

	return plans, rows.Err()
}

func (r *planRepository) GetByID(c context.Context, id string) (entity.Plan, error) {
	requestID := contextPkg.GetRequestID(c)
	var p PlanDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPlanByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Plan{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Plan{}, billing.ErrPlanNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Plan{}, err
	}

	return r.makePlan(p), nil
}

func (r *planRepository) makePlan(p PlanDB) entity.Plan {
	var createdAt time.Time
	if p.CreatedAt.Valid {
		createdAt = p.CreatedAt.Time
	}

	return entity.Plan{
		ID:              p.ID.String,
		Name:            p.Name.String,
		MonthlyPrice:    p.MonthlyPrice.Float64,
		PredictionQuota: int(p.PredictionQuota.Int64),
		Description:     p.Description.String,
		CreatedAt:       createdAt,
	}
}
