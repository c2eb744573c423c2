package ticketRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"DentScanGolang/internal/api/ticket"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TicketDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Subject   sql.NullString `db:"subject"`
	Category  sql.NullString `db:"category"`
	Priority  sql.NullString `db:"priority"`
	Status    sql.NullString `db:"status"`
	CreatedAt sql.NullTime   `db:"created_at"`
	UpdatedAt sql.NullTime   `db:"updated_at"`
}

func (r *ticketRepository) CreateTicket(c context.Context, t entity.Ticket) error {
	requestID := contextPkg.GetRequestID(c)
	now := time.Now()
	argsKV := map[string]interface{}{
		"id":         t.ID,
		"user_id":    t.UserID,
		"subject":    t.Subject,
		"category":   t.Category,
		"priority":   t.Priority,
		"status":     t.Status,
		"created_at": now,
		"updated_at": now,
	}

	query, args, err := sqlx.Named(queryCreateTicket, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTicket named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating ticket")
		return err
	}

	return nil
}

func (r *ticketRepository) GetByID(c context.Context, id string) (entity.Ticket, error) {
	requestID := contextPkg.GetRequestID(c)
	var t TicketDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTicketByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Ticket{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Ticket{}, ticket.ErrTicketNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Ticket{}, err
	}

	return r.makeTicket(t), nil
}

func (r *ticketRepository) GetByUserID(c context.Context, userID string) ([]entity.Ticket, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetTicketsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	return r.scanTickets(c, requestID, query, args)
}

func (r *ticketRepository) GetByStatus(c context.Context, status string, limit int, offset int) ([]entity.Ticket, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"status": status,
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetTicketsByStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByStatus named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	return r.scanTickets(c, requestID, query, args)
}

func (r *ticketRepository) scanTickets(c context.Context, requestID string, query string, args []interface{}) ([]entity.Ticket, error) {
	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Ticket query execution err")
		return nil, err
	}
	defer rows.Close()

	tickets := make([]entity.Ticket, 0)
	for rows.Next() {
		var t TicketDB
		if err := rows.StructScan(&t); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Ticket row scan err")
			return nil, err
		}
		tickets = append(tickets, r.makeTicket(t))
	}

	return tickets, rows.Err()
}

func (r *ticketRepository) UpdateStatus(c context.Context, id string, status string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTicketStatus, argsKV)
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

func (r *ticketRepository) makeTicket(t TicketDB) entity.Ticket {
	var createdAt, updatedAt time.Time

	if t.CreatedAt.Valid {
		createdAt = t.CreatedAt.Time
	}
	if t.UpdatedAt.Valid {
		updatedAt = t.UpdatedAt.Time
	}

	return entity.Ticket{
		ID:        t.ID.String,
		UserID:    t.UserID.String,
		Subject:   t.Subject.String,
		Category:  t.Category.String,
		Priority:  t.Priority.String,
		Status:    t.Status.String,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
