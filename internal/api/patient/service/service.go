package patientService

import (
	"context"

	"DentScanGolang/internal/api/patient"
	patientRepository "DentScanGolang/internal/api/patient/repository"
	"DentScanGolang/internal/entity"
	"DentScanGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

type PatientService interface {
	Patient() PatientDomain
	GetRepository() patientRepository.Repository
}

type PatientDomain interface {
	CreatePatient(c context.Context, doctor entity.UserLoginData, req patient.CreatePatientRequest) (patient.PatientResponse, error)
	GetPatient(c context.Context, doctor entity.UserLoginData, patientID string) (patient.PatientResponse, error)
	ListPatients(c context.Context, doctor entity.UserLoginData, page int, limit int) (patient.PatientListResponse, error)
	UpdatePatient(c context.Context, doctor entity.UserLoginData, patientID string, req patient.UpdatePatientRequest) error
	DeletePatient(c context.Context, doctor entity.UserLoginData, patientID string) error
	RequireOwned(c context.Context, doctor entity.UserLoginData, patientID string) (entity.Patient, error)
}

type patientService struct {
	log               *logrus.Logger
	patientRepository patientRepository.Repository
	utils             utils.IUtils

	patientDomain PatientDomain
}

func (p *patientService) Patient() PatientDomain {
	return p.patientDomain
}

func (p *patientService) GetRepository() patientRepository.Repository {
	return p.patientRepository
}

type patientDomainImpl struct {
	log   *logrus.Logger
	repo  patientRepository.Repository
	utils utils.IUtils
}

func New(log *logrus.Logger, patientRepo patientRepository.Repository, utils utils.IUtils) PatientService {
	return &patientService{
		log:               log,
		patientRepository: patientRepo,
		utils:             utils,

		patientDomain: &patientDomainImpl{log: log, repo: patientRepo, utils: utils},
	}
}
