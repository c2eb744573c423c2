package predictionRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"DentScanGolang/internal/api/prediction"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type LegendDB struct {
	ID           sql.NullString `db:"id"`
	PredictionID sql.NullString `db:"prediction_id"`
	ClassName    sql.NullString `db:"class_name"`
	Color        sql.NullString `db:"color"`
	Included     bool           `db:"included"`
	CreatedAt    sql.NullTime   `db:"created_at"`
}

func (r *legendRepository) CreateLegends(c context.Context, legends []entity.Legend) error {
	requestID := contextPkg.GetRequestID(c)

	for _, legend := range legends {
		argsKV := map[string]interface{}{
			"id":            legend.ID,
			"prediction_id": legend.PredictionID,
			"class_name":    legend.ClassName,
			"color":         legend.Color,
			"included":      legend.Included,
			"created_at":    time.Now(),
		}

		query, args, err := sqlx.Named(queryCreateLegend, argsKV)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("CreateLegends named query preparation err")
			return err
		}
		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(c, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Database error when creating legend")
			return err
		}
	}

	return nil
}

func (r *legendRepository) GetByPredictionID(c context.Context, predictionID string) ([]entity.Legend, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"prediction_id": predictionID,
	}

	query, args, err := sqlx.Named(queryGetLegendsByPredictionID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByPredictionID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByPredictionID execution err")
		return nil, err
	}
	defer rows.Close()

	legends := make([]entity.Legend, 0)
	for rows.Next() {
		var l LegendDB
		if err := rows.StructScan(&l); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("GetByPredictionID row scan err")
			return nil, err
		}
		legends = append(legends, r.makeLegend(l))
	}

	return legends, rows.Err()
}

func (r *legendRepository) GetByID(c context.Context, id string) (entity.Legend, error) {
	requestID := contextPkg.GetRequestID(c)
	var l LegendDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetLegendByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Legend{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&l); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no legend found")
			return entity.Legend{}, prediction.ErrLegendNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Legend{}, err
	}

	return r.makeLegend(l), nil
}

func (r *legendRepository) SetIncluded(c context.Context, id string, included bool) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":       id,
		"included": included,
	}

	query, args, err := sqlx.Named(querySetLegendIncluded, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetIncluded named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetIncluded execution err")
		return err
	}

	return nil
}

func (r *legendRepository) DeleteByPredictionID(c context.Context, predictionID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"prediction_id": predictionID,
	}

	query, args, err := sqlx.Named(queryDeleteLegendsByPredictionID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteByPredictionID named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteByPredictionID execution err")
		return err
	}

	return nil
}

func (r *legendRepository) makeLegend(l LegendDB) entity.Legend {
	var createdAt time.Time
	if l.CreatedAt.Valid {
		createdAt = l.CreatedAt.Time
	}

	return entity.Legend{
		ID:           l.ID.String,
		PredictionID: l.PredictionID.String,
		ClassName:    l.ClassName.String,
		Color:        l.Color.String,
		Included:     l.Included,
		CreatedAt:    createdAt,
	}
}
