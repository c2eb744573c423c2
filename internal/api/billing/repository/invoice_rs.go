package billingRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"DentScanGolang/internal/api/billing"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type InvoiceDB struct {
	ID        sql.NullString  `db:"id"`
	OrderID   sql.NullString  `db:"order_id"`
	UserID    sql.NullString  `db:"user_id"`
	Number    sql.NullString  `db:"number"`
	PDFURL    sql.NullString  `db:"pdf_url"`
	Total     sql.NullFloat64 `db:"total"`
	IssuedAt  sql.NullTime    `db:"issued_at"`
	CreatedAt sql.NullTime    `db:"created_at"`
}

func (r *invoiceRepository) CreateInvoice(c context.Context, invoice entity.Invoice) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         invoice.ID,
		"order_id":   invoice.OrderID,
		"user_id":    invoice.UserID,
		"number":     invoice.Number,
		"pdf_url":    invoice.PDFURL,
		"total":      invoice.Total,
		"issued_at":  invoice.IssuedAt,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateInvoice, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateInvoice named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating invoice")
		return err
	}

	return nil
}

func (r *invoiceRepository) GetByID(c context.Context, id string) (entity.Invoice, error) {
	requestID := contextPkg.GetRequestID(c)
	var invoice InvoiceDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetInvoiceByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Invoice{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&invoice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Invoice{}, billing.ErrInvoiceNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Invoice{}, err
	}

	return r.makeInvoice(invoice), nil
}

func (r *invoiceRepository) GetByUserID(c context.Context, userID string) ([]entity.Invoice, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetInvoicesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	return r.scanInvoices(c, requestID, query, args)
}

func (r *invoiceRepository) GetAll(c context.Context, limit int, offset int) ([]entity.Invoice, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetAllInvoices, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll invoices named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	return r.scanInvoices(c, requestID, query, args)
}

func (r *invoiceRepository) scanInvoices(c context.Context, requestID string, query string, args []interface{}) ([]entity.Invoice, error) {
	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Invoice query execution err")
		return nil, err
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0)
	for rows.Next() {
		var invoice InvoiceDB
		if err := rows.StructScan(&invoice); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Invoice row scan err")
			return nil, err
		}
		invoices = append(invoices, r.makeInvoice(invoice))
	}

	return invoices, rows.Err()
}

func (r *invoiceRepository) CountByMonth(c context.Context, yearMonth string) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"year_month": yearMonth,
	}

	query, args, err := sqlx.Named(queryCountInvoicesByMonth, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByMonth named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var total int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByMonth execution err")
		return 0, err
	}

	return total, nil
}

func (r *invoiceRepository) UpdatePDFURL(c context.Context, id string, pdfURL string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"pdf_url": pdfURL,
	}

	query, args, err := sqlx.Named(queryUpdateInvoicePDFURL, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePDFURL named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePDFURL execution err")
		return err
	}

	return nil
}

func (r *invoiceRepository) makeInvoice(invoice InvoiceDB) entity.Invoice {
	var issuedAt, createdAt time.Time

	if invoice.IssuedAt.Valid {
		issuedAt = invoice.IssuedAt.Time
	}
	if invoice.CreatedAt.Valid {
		createdAt = invoice.CreatedAt.Time
	}

	return entity.Invoice{
		ID:        invoice.ID.String,
		OrderID:   invoice.OrderID.String,
		UserID:    invoice.UserID.String,
		Number:    invoice.Number.String,
		PDFURL:    invoice.PDFURL.String,
		Total:     invoice.Total.Float64,
		IssuedAt:  issuedAt,
		CreatedAt: createdAt,
	}
}
