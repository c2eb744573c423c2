package billingRepository

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
		Plans:         &planRepository{q: db, log: r.log},
		Subscriptions: &subscriptionRepository{q: db, log: r.log},
		Orders:        &orderRepository{q: db, log: r.log},
		Invoices:      &invoiceRepository{q: db, log: r.log},
		Commit:        commitFunc,
		Rollback:      rollbackFunc,
	}, nil
}

type Client struct {
	Plans interface {
		GetAll(ctx context.Context) ([]entity.Plan, error)
		GetByID(ctx context.Context, id string) (entity.Plan, error)
	}

	Subscriptions interface {
		CreateSubscription(ctx context.Context, sub entity.Subscription) error
		GetActiveByUserID(ctx context.Context, userID string, now time.Time) (entity.Subscription, error)
		IncrementUsed(ctx context.Context, id string) error
	}

	Orders interface {
		CreateOrder(ctx context.Context, order entity.Order) error
		GetByID(ctx context.Context, id string) (entity.Order, error)
		GetByReferenceNo(ctx context.Context, referenceNo string) (entity.Order, error)
		GetPendingByUserID(ctx context.Context, userID string) (entity.Order, error)
		GetAll(ctx context.Context, limit int, offset int) ([]entity.Order, error)
		MarkPaid(ctx context.Context, id string, paidAt time.Time) error
		MarkExpired(ctx context.Context, id string) error
	}

	Invoices interface {
		CreateInvoice(ctx context.Context, invoice entity.Invoice) error
		GetByID(ctx context.Context, id string) (entity.Invoice, error)
		GetByUserID(ctx context.Context, userID string) ([]entity.Invoice, error)
		GetAll(ctx context.Context, limit int, offset int) ([]entity.Invoice, error)
		CountByMonth(ctx context.Context, yearMonth string) (int, error)
		UpdatePDFURL(ctx context.Context, id string, pdfURL string) error
	}

	Commit   func() error
	Rollback func() error
}

type planRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type subscriptionRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type orderRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type invoiceRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
