package ticketRepository

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
		Tickets:  &ticketRepository{q: db, log: r.log},
		Messages: &messageRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Tickets interface {
		CreateTicket(ctx context.Context, ticket entity.Ticket) error
		GetByID(ctx context.Context, id string) (entity.Ticket, error)
		GetByUserID(ctx context.Context, userID string) ([]entity.Ticket, error)
		GetByStatus(ctx context.Context, status string, limit int, offset int) ([]entity.Ticket, error)
		UpdateStatus(ctx context.Context, id string, status string) error
	}

	Messages interface {
		CreateMessage(ctx context.Context, message entity.TicketMessage) error
		GetByTicketID(ctx context.Context, ticketID string) ([]entity.TicketMessage, error)
	}

	Commit   func() error
	Rollback func() error
}

type ticketRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type messageRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
