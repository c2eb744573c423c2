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

type PredictionDB struct {
	ID             sql.NullString `db:"id"`
	PatientID      sql.NullString `db:"patient_id"`
	DoctorID       sql.NullString `db:"doctor_id"`
	OriginalURL    sql.NullString `db:"original_url"`
	AnnotatedURL   sql.NullString `db:"annotated_url"`
	DetectionsJSON sql.NullString `db:"detections_json"`
	Percentages    sql.NullString `db:"percentages_json"`
	ReportNote     sql.NullString `db:"report_note"`
	Status         sql.NullString `db:"status"`
	CreatedAt      sql.NullTime   `db:"created_at"`
	UpdatedAt      sql.NullTime   `db:"updated_at"`
}

func (r *predictionRepository) CreatePrediction(c context.Context, p entity.Prediction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           p.ID,
		"patient_id":   p.PatientID,
		"doctor_id":    p.DoctorID,
		"original_url": p.OriginalURL,
		"status":       p.Status,
		"created_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreatePrediction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreatePrediction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating prediction")
		return err
	}

	return nil
}

func (r *predictionRepository) GetByID(c context.Context, id string) (entity.Prediction, error) {
	requestID := contextPkg.GetRequestID(c)
	var p PredictionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPredictionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Prediction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no rows found")
			return entity.Prediction{}, prediction.ErrPredictionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Prediction{}, err
	}

	return r.makePrediction(p), nil
}

func (r *predictionRepository) GetByPatientID(c context.Context, patientID string) ([]entity.Prediction, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"patient_id": patientID,
	}

	query, args, err := sqlx.Named(queryGetPredictionsByPatientID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByPatientID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByPatientID execution err")
		return nil, err
	}
	defer rows.Close()

	predictions := make([]entity.Prediction, 0)
	for rows.Next() {
		var p PredictionDB
		if err := rows.StructScan(&p); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("GetByPatientID row scan err")
			return nil, err
		}
		predictions = append(predictions, r.makePrediction(p))
	}

	return predictions, rows.Err()
}

func (r *predictionRepository) CountByDoctorIDSince(c context.Context, doctorID string, since time.Time) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"doctor_id": doctorID,
		"since":     since,
	}

	query, args, err := sqlx.Named(queryCountPredictionsByDoctorIDSince, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByDoctorIDSince named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var total int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByDoctorIDSince execution err")
		return 0, err
	}

	return total, nil
}

func (r *predictionRepository) UpdateResult(c context.Context, p entity.Prediction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               p.ID,
		"annotated_url":    p.AnnotatedURL,
		"detections_json":  p.DetectionsJSON,
		"percentages_json": p.Percentages,
		"status":           p.Status,
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdatePredictionResult, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateResult named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateResult execution err")
		return err
	}

	return nil
}

func (r *predictionRepository) UpdateAnnotatedURL(c context.Context, id string, annotatedURL string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            id,
		"annotated_url": annotatedURL,
		"updated_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateAnnotatedURL, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAnnotatedURL named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAnnotatedURL execution err")
		return err
	}

	return nil
}

func (r *predictionRepository) UpdateReportNote(c context.Context, id string, note string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          id,
		"report_note": note,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateReportNote, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReportNote named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReportNote execution err")
		return err
	}

	return nil
}

func (r *predictionRepository) UpdateStatus(c context.Context, id string, status string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdatePredictionStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateStatus named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateStatus execution err")
		return err
	}

	return nil
}

func (r *predictionRepository) DeletePrediction(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeletePrediction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePrediction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePrediction execution err")
		return err
	}

	return nil
}

func (r *predictionRepository) makePrediction(p PredictionDB) entity.Prediction {
	var createdAt, updatedAt time.Time

	if p.CreatedAt.Valid {
		createdAt = p.CreatedAt.Time
	}
	if p.UpdatedAt.Valid {
		updatedAt = p.UpdatedAt.Time
	}

	return entity.Prediction{
		ID:             p.ID.String,
		PatientID:      p.PatientID.String,
		DoctorID:       p.DoctorID.String,
		OriginalURL:    p.OriginalURL.String,
		AnnotatedURL:   p.AnnotatedURL.String,
		DetectionsJSON: p.DetectionsJSON.String,
		Percentages:    p.Percentages.String,
		ReportNote:     p.ReportNote.String,
		Status:         p.Status.String,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
