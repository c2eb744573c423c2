package patientRepository

import (
	"DentScanGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Patients: &patientRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Patients interface {
		CreatePatient(ctx context.Context, patient entity.Patient) error
		GetByID(ctx context.Context, id string) (entity.Patient, error)
		GetByDoctorID(ctx context.Context, doctorID string, limit int, offset int) ([]entity.Patient, error)
		CountByDoctorID(ctx context.Context, doctorID string) (int, error)
		UpdatePatient(ctx context.Context, patient entity.Patient) error
		DeletePatient(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type patientRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
