package ticketRepository

import (
	"context"
	"database/sql"
	"time"

	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type MessageDB struct {
	ID        sql.NullString `db:"id"`
	TicketID  sql.NullString `db:"ticket_id"`
	AuthorID  sql.NullString `db:"author_id"`
	FromAdmin sql.NullBool   `db:"from_admin"`
	Body      sql.NullString `db:"body"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r *messageRepository) CreateMessage(c context.Context, message entity.TicketMessage) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         message.ID,
		"ticket_id":  message.TicketID,
		"author_id":  message.AuthorID,
		"from_admin": message.FromAdmin,
		"body":       message.Body,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTicketMessage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateMessage named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating ticket message")
		return err
	}

	return nil
}

func (r *messageRepository) GetByTicketID(c context.Context, ticketID string) ([]entity.TicketMessage, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"ticket_id": ticketID,
	}

	query, args, err := sqlx.Named(queryGetMessagesByTicketID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByTicketID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByTicketID execution err")
		return nil, err
	}
	defer rows.Close()

	messages := make([]entity.TicketMessage, 0)
	for rows.Next() {
		var message MessageDB
		if err := rows.StructScan(&message); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("GetByTicketID row scan err")
			return nil, err
		}
		messages = append(messages, r.makeMessage(message))
	}

	return messages, rows.Err()
}

func (r *messageRepository) makeMessage(message MessageDB) entity.TicketMessage {
	var createdAt time.Time

	if message.CreatedAt.Valid {
		createdAt = message.CreatedAt.Time
	}

	return entity.TicketMessage{
		ID:        message.ID.String,
		TicketID:  message.TicketID.String,
		AuthorID:  message.AuthorID.String,
		FromAdmin: message.FromAdmin.Bool,
		Body:      message.Body.String,
		CreatedAt: createdAt,
	}
}
