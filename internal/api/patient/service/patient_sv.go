package patientService

import (
	"context"
	"time"

	"DentScanGolang/internal/api/patient"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

const birthDateLayout = "2006-01-02"

func (s *patientDomainImpl) CreatePatient(c context.Context, doctor entity.UserLoginData, req patient.CreatePatientRequest) (patient.PatientResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid birth date in create patient request")
		return patient.PatientResponse{}, patient.ErrInvalidBirthDate
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return patient.PatientResponse{}, err
	}

	ulid, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return patient.PatientResponse{}, err
	}

	newPatient := entity.Patient{
		ID:                  ulid,
		DoctorID:            doctor.ID,
		Name:                req.Name,
		MedicalRecordNumber: req.MedicalRecordNumber,
		BirthDate:           birthDate,
		Gender:              req.Gender,
		PhoneNumber:         req.PhoneNumber,
		Notes:               req.Notes,
	}

	if err := repo.Patients.CreatePatient(c, newPatient); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create patient")
		return patient.PatientResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"patient_id": ulid,
		"doctor_id":  doctor.ID,
	}).Info("Patient created successfully")

	newPatient.CreatedAt = time.Now()

	return makePatientResponse(newPatient), nil
}

func (s *patientDomainImpl) GetPatient(c context.Context, doctor entity.UserLoginData, patientID string) (patient.PatientResponse, error) {
	p, err := s.RequireOwned(c, doctor, patientID)
	if err != nil {
		return patient.PatientResponse{}, err
	}

	return makePatientResponse(p), nil
}

func (s *patientDomainImpl) ListPatients(c context.Context, doctor entity.UserLoginData, page int, limit int) (patient.PatientListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return patient.PatientListResponse{}, err
	}

	patients, err := repo.Patients.GetByDoctorID(c, doctor.ID, limit, (page-1)*limit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list patients")
		return patient.PatientListResponse{}, err
	}

	total, err := repo.Patients.CountByDoctorID(c, doctor.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to count patients")
		return patient.PatientListResponse{}, err
	}

	res := patient.PatientListResponse{
		Patients: make([]patient.PatientResponse, 0, len(patients)),
		Page:     page,
		Limit:    limit,
		Total:    total,
	}
	for _, p := range patients {
		res.Patients = append(res.Patients, makePatientResponse(p))
	}

	return res, nil
}

func (s *patientDomainImpl) UpdatePatient(c context.Context, doctor entity.UserLoginData, patientID string, req patient.UpdatePatientRequest) error {
	requestID := contextPkg.GetRequestID(c)

	p, err := s.RequireOwned(c, doctor, patientID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			return patient.ErrInvalidBirthDate
		}
		p.BirthDate = birthDate
	}
	if req.Gender != "" {
		p.Gender = req.Gender
	}
	if req.PhoneNumber != "" {
		p.PhoneNumber = req.PhoneNumber
	}
	if req.Notes != "" {
		p.Notes = req.Notes
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Patients.UpdatePatient(c, p); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update patient")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"patient_id": patientID,
	}).Info("Patient updated successfully")

	return nil
}

func (s *patientDomainImpl) DeletePatient(c context.Context, doctor entity.UserLoginData, patientID string) error {
	requestID := contextPkg.GetRequestID(c)

	if _, err := s.RequireOwned(c, doctor, patientID); err != nil {
		return err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Patients.DeletePatient(c, patientID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete patient")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"patient_id": patientID,
	}).Info("Patient deleted successfully")

	return nil
}

// RequireOwned loads the patient and rejects access from any doctor other
// than the record owner. Admins bypass the ownership check.
func (s *patientDomainImpl) RequireOwned(c context.Context, doctor entity.UserLoginData, patientID string) (entity.Patient, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Patient{}, err
	}

	p, err := repo.Patients.GetByID(c, patientID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get patient by ID")
		return entity.Patient{}, err
	}

	if p.DoctorID != doctor.ID && doctor.Role != string(entity.RoleAdmin) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"patient_id": patientID,
			"doctor_id":  doctor.ID,
		}).Warn("Doctor attempted to access patient they do not own")
		return entity.Patient{}, patient.ErrPatientNotOwned
	}

	return p, nil
}

func makePatientResponse(p entity.Patient) patient.PatientResponse {
	return patient.PatientResponse{
		ID:                  p.ID,
		Name:                p.Name,
		MedicalRecordNumber: p.MedicalRecordNumber,
		BirthDate:           p.BirthDate.Format(birthDateLayout),
		Gender:              p.Gender,
		PhoneNumber:         p.PhoneNumber,
		Notes:               p.Notes,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
