package patientRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"DentScanGolang/internal/api/patient"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type PatientDB struct {
	ID                  sql.NullString `db:"id"`
	DoctorID            sql.NullString `db:"doctor_id"`
	Name                sql.NullString `db:"name"`
	MedicalRecordNumber sql.NullString `db:"medical_record_number"`
	BirthDate           sql.NullTime   `db:"birth_date"`
	Gender              sql.NullString `db:"gender"`
	PhoneNumber         sql.NullString `db:"phone_number"`
	Notes               sql.NullString `db:"notes"`
	CreatedAt           sql.NullTime   `db:"created_at"`
	UpdatedAt           sql.NullTime   `db:"updated_at"`
}

func (r *patientRepository) CreatePatient(c context.Context, p entity.Patient) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                    p.ID,
		"doctor_id":             p.DoctorID,
		"name":                  p.Name,
		"medical_record_number": p.MedicalRecordNumber,
		"birth_date":            p.BirthDate,
		"gender":                p.Gender,
		"phone_number":          p.PhoneNumber,
		"notes":                 p.Notes,
		"created_at":            time.Now(),
	}

	query, args, err := sqlx.Named(queryCreatePatient, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreatePatient named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23505" {
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Medical record number already exists for doctor")
				return patient.ErrMRNAlreadyExists
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating patient")
		return err
	}

	return nil
}

func (r *patientRepository) GetByID(c context.Context, id string) (entity.Patient, error) {
	requestID := contextPkg.GetRequestID(c)
	var p PatientDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPatientByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Patient{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no rows found")
			return entity.Patient{}, patient.ErrPatientNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Patient{}, err
	}

	return r.makePatient(p), nil
}

func (r *patientRepository) GetByDoctorID(c context.Context, doctorID string, limit int, offset int) ([]entity.Patient, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"doctor_id": doctorID,
		"limit":     limit,
		"offset":    offset,
	}

	query, args, err := sqlx.Named(queryGetPatientsByDoctorID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByDoctorID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByDoctorID execution err")
		return nil, err
	}
	defer rows.Close()

	patients := make([]entity.Patient, 0)
	for rows.Next() {
		var p PatientDB
		if err := rows.StructScan(&p); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("GetByDoctorID row scan err")
			return nil, err
		}
		patients = append(patients, r.makePatient(p))
	}

	return patients, rows.Err()
}

func (r *patientRepository) CountByDoctorID(c context.Context, doctorID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"doctor_id": doctorID,
	}

	query, args, err := sqlx.Named(queryCountPatientsByDoctorID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByDoctorID named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var total int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByDoctorID execution err")
		return 0, err
	}

	return total, nil
}

func (r *patientRepository) UpdatePatient(c context.Context, p entity.Patient) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           p.ID,
		"name":         p.Name,
		"birth_date":   p.BirthDate,
		"gender":       p.Gender,
		"phone_number": p.PhoneNumber,
		"notes":        p.Notes,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdatePatient, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePatient named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePatient execution err")
		return err
	}

	return nil
}

func (r *patientRepository) DeletePatient(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeletePatient, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePatient named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePatient execution err")
		return err
	}

	return nil
}

func (r *patientRepository) makePatient(p PatientDB) entity.Patient {
	var birthDate, createdAt, updatedAt time.Time

	if p.BirthDate.Valid {
		birthDate = p.BirthDate.Time
	}
	if p.CreatedAt.Valid {
		createdAt = p.CreatedAt.Time
	}
	if p.UpdatedAt.Valid {
		updatedAt = p.UpdatedAt.Time
	}

	return entity.Patient{
		ID:                  p.ID.String,
		DoctorID:            p.DoctorID.String,
		Name:                p.Name.String,
		MedicalRecordNumber: p.MedicalRecordNumber.String,
		BirthDate:           birthDate,
		Gender:              p.Gender.String,
		PhoneNumber:         p.PhoneNumber.String,
		Notes:               p.Notes.String,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
