package predictionRepository

import (
	"time"

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
		Predictions: &predictionRepository{q: db, log: r.log},
		Legends:     &legendRepository{q: db, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

type Client struct {
	Predictions interface {
		CreatePrediction(ctx context.Context, prediction entity.Prediction) error
		GetByID(ctx context.Context, id string) (entity.Prediction, error)
		GetByPatientID(ctx context.Context, patientID string) ([]entity.Prediction, error)
		CountByDoctorIDSince(ctx context.Context, doctorID string, since time.Time) (int, error)
		UpdateResult(ctx context.Context, prediction entity.Prediction) error
		UpdateAnnotatedURL(ctx context.Context, id string, annotatedURL string) error
		UpdateReportNote(ctx context.Context, id string, note string) error
		UpdateStatus(ctx context.Context, id string, status string) error
		DeletePrediction(ctx context.Context, id string) error
	}

	Legends interface {
		CreateLegends(ctx context.Context, legends []entity.Legend) error
		GetByPredictionID(ctx context.Context, predictionID string) ([]entity.Legend, error)
		GetByID(ctx context.Context, id string) (entity.Legend, error)
		SetIncluded(ctx context.Context, id string, included bool) error
		DeleteByPredictionID(ctx context.Context, predictionID string) error
	}

	Commit   func() error
	Rollback func() error
}

type predictionRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type legendRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
