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

type OrderDB struct {
	ID             sql.NullString  `db:"id"`
	UserID         sql.NullString  `db:"user_id"`
	PlanID         sql.NullString  `db:"plan_id"`
	ReferenceNo    sql.NullString  `db:"reference_no"`
	Subtotal       sql.NullFloat64 `db:"subtotal"`
	Tax            sql.NullFloat64 `db:"tax"`
	Total          sql.NullFloat64 `db:"total"`
	Bank           sql.NullString  `db:"bank"`
	VirtualAccount sql.NullString  `db:"virtual_account"`
	Status         sql.NullString  `db:"status"`
	ExpiresAt      sql.NullTime    `db:"expires_at"`
	PaidAt         sql.NullTime    `db:"paid_at"`
	CreatedAt      sql.NullTime    `db:"created_at"`
	UpdatedAt      sql.NullTime    `db:"updated_at"`
}

func (r *orderRepository) CreateOrder(c context.Context, order entity.Order) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":              order.ID,
		"user_id":         order.UserID,
		"plan_id":         order.PlanID,
		"reference_no":    order.ReferenceNo,
		"subtotal":        order.Subtotal,
		"tax":             order.Tax,
		"total":           order.Total,
		"bank":            order.Bank,
		"virtual_account": order.VirtualAccount,
		"status":          order.Status,
		"expires_at":      order.ExpiresAt,
		"created_at":      time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateOrder, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateOrder named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating order")
		return err
	}

	return nil
}

func (r *orderRepository) GetByID(c context.Context, id string) (entity.Order, error) {
	return r.getOne(c, queryGetOrderByID, map[string]interface{}{"id": id})
}

func (r *orderRepository) GetByReferenceNo(c context.Context, referenceNo string) (entity.Order, error) {
	return r.getOne(c, queryGetOrderByReferenceNo, map[string]interface{}{"reference_no": referenceNo})
}

func (r *orderRepository) GetPendingByUserID(c context.Context, userID string) (entity.Order, error) {
	return r.getOne(c, queryGetPendingOrderByUserID, map[string]interface{}{"user_id": userID})
}

func (r *orderRepository) getOne(c context.Context, namedQuery string, argsKV map[string]interface{}) (entity.Order, error) {
	requestID := contextPkg.GetRequestID(c)
	var order OrderDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Order named query preparation err")
		return entity.Order{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, billing.ErrOrderNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Order query execution err")
		return entity.Order{}, err
	}

	return r.makeOrder(order), nil
}

func (r *orderRepository) GetAll(c context.Context, limit int, offset int) ([]entity.Order, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetAllOrders, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll orders named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll orders execution err")
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var order OrderDB
		if err := rows.StructScan(&order); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("GetAll orders row scan err")
			return nil, err
		}
		orders = append(orders, r.makeOrder(order))
	}

	return orders, rows.Err()
}

func (r *orderRepository) MarkPaid(c context.Context, id string, paidAt time.Time) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"paid_at":    paidAt,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryMarkOrderPaid, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkPaid named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkPaid execution err")
		return err
	}

	// Guarded update: zero rows means the order was not pending anymore.
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return billing.ErrOrderAlreadyPaid
	}

	return nil
}

func (r *orderRepository) MarkExpired(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryMarkOrderExpired, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkExpired named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkExpired execution err")
		return err
	}

	return nil
}

func (r *orderRepository) makeOrder(order OrderDB) entity.Order {
	var expiresAt, paidAt, createdAt, updatedAt time.Time

	if order.ExpiresAt.Valid {
		expiresAt = order.ExpiresAt.Time
	}
	if order.PaidAt.Valid {
		paidAt = order.PaidAt.Time
	}
	if order.CreatedAt.Valid {
		createdAt = order.CreatedAt.Time
	}
	if order.UpdatedAt.Valid {
		updatedAt = order.UpdatedAt.Time
	}

	return entity.Order{
		ID:             order.ID.String,
		UserID:         order.UserID.String,
		PlanID:         order.PlanID.String,
		ReferenceNo:    order.ReferenceNo.String,
		Subtotal:       order.Subtotal.Float64,
		Tax:            order.Tax.Float64,
		Total:          order.Total.Float64,
		Bank:           order.Bank.String,
		VirtualAccount: order.VirtualAccount.String,
		Status:         order.Status.String,
		ExpiresAt:      expiresAt,
		PaidAt:         paidAt,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
