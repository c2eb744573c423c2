package adminRepository

import (
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
		Stats:    &statsRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Stats interface {
		GetPlatformStats(ctx context.Context) (PlatformStats, error)
	}

	Commit   func() error
	Rollback func() error
}

type PlatformStats struct {
	TotalUsers          int
	TotalPatients       int
	TotalPredictions    int
	ActiveSubscriptions int
	OpenTickets         int
	PaidRevenue         float64
}

type statsRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
