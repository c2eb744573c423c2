package entity

import "time"

type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderPaid    OrderStatus = "paid"
	OrderExpired OrderStatus = "expired"
)

type Plan struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	MonthlyPrice    float64   `db:"monthly_price"`
	PredictionQuota int       `db:"prediction_quota"`
	Description     string    `db:"description"`
	CreatedAt       time.Time `db:"created_at"`
}

type Subscription struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	PlanID      string    `db:"plan_id"`
	PeriodStart time.Time `db:"period_start"`
	PeriodEnd   time.Time `db:"period_end"`
	Used        int       `db:"used"`
	CreatedAt   time.Time `db:"created_at"`
}

type Order struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	PlanID         string    `db:"plan_id"`
	ReferenceNo    string    `db:"reference_no"`
	Subtotal       float64   `db:"subtotal"`
	Tax            float64   `db:"tax"`
	Total          float64   `db:"total"`
	Bank           string    `db:"bank"`
	VirtualAccount string    `db:"virtual_account"`
	Status         string    `db:"status"`
	ExpiresAt      time.Time `db:"expires_at"`
	PaidAt         time.Time `db:"paid_at"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Invoice struct {
	ID        string    `db:"id"`
	OrderID   string    `db:"order_id"`
	UserID    string    `db:"user_id"`
	Number    string    `db:"number"`
	PDFURL    string    `db:"pdf_url"`
	Total     float64   `db:"total"`
	IssuedAt  time.Time `db:"issued_at"`
	CreatedAt time.Time `db:"created_at"`
}
