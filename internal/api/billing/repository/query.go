package billingRepository

const (
	queryGetAllPlans = `
SELECT id, name, monthly_price, prediction_quota, description, created_at
FROM plans
ORDER BY monthly_price ASC`

	queryGetPlanByID = `
SELECT id, name, monthly_price, prediction_quota, description, created_at
FROM plans
    WHERE id = :id`

	queryCreateSubscription = `
INSERT INTO subscriptions (id, user_id, plan_id, period_start, period_end, used, created_at)
VALUES (:id, :user_id, :plan_id, :period_start, :period_end, 0, :created_at)`

	queryGetActiveSubscriptionByUserID = `
SELECT id, user_id, plan_id, period_start, period_end, used, created_at
FROM subscriptions
    WHERE user_id = :user_id AND period_start <= :now AND period_end > :now
ORDER BY period_end DESC
LIMIT 1`

	queryIncrementSubscriptionUsed = `
UPDATE subscriptions
SET used = used + 1
WHERE id = :id`

	queryCreateOrder = `
INSERT INTO orders (id, user_id, plan_id, reference_no, subtotal, tax, total, bank, virtual_account, status, expires_at, created_at)
VALUES (:id, :user_id, :plan_id, :reference_no, :subtotal, :tax, :total, :bank, :virtual_account, :status, :expires_at, :created_at)`

	queryGetOrderByID = `
SELECT id, user_id, plan_id, reference_no, subtotal, tax, total, bank, virtual_account, status, expires_at, paid_at, created_at, updated_at
FROM orders
    WHERE id = :id`

	queryGetOrderByReferenceNo = `
SELECT id, user_id, plan_id, reference_no, subtotal, tax, total, bank, virtual_account, status, expires_at, paid_at, created_at, updated_at
FROM orders
    WHERE reference_no = :reference_no`

	queryGetPendingOrderByUserID = `
SELECT id, user_id, plan_id, reference_no, subtotal, tax, total, bank, virtual_account, status, expires_at, paid_at, created_at, updated_at
FROM orders
    WHERE user_id = :user_id AND status = 'pending' AND expires_at > NOW()
ORDER BY created_at DESC
LIMIT 1`

	queryGetAllOrders = `
SELECT id, user_id, plan_id, reference_no, subtotal, tax, total, bank, virtual_account, status, expires_at, paid_at, created_at, updated_at
FROM orders
ORDER BY created_at DESC
LIMIT :limit OFFSET :offset`

	queryMarkOrderPaid = `
UPDATE orders
SET status = 'paid',
    paid_at = :paid_at,
    updated_at = :updated_at
WHERE id = :id AND status = 'pending'`

	queryMarkOrderExpired = `
UPDATE orders
SET status = 'expired',
    updated_at = :updated_at
WHERE id = :id AND status = 'pending'`

	queryCreateInvoice = `
INSERT INTO invoices (id, order_id, user_id, number, pdf_url, total, issued_at, created_at)
VALUES (:id, :order_id, :user_id, :number, :pdf_url, :total, :issued_at, :created_at)`

	queryGetInvoiceByID = `
SELECT id, order_id, user_id, number, pdf_url, total, issued_at, created_at
FROM invoices
    WHERE id = :id`

	queryGetInvoicesByUserID = `
SELECT id, order_id, user_id, number, pdf_url, total, issued_at, created_at
FROM invoices
    WHERE user_id = :user_id
ORDER BY issued_at DESC`

	queryGetAllInvoices = `
SELECT id, order_id, user_id, number, pdf_url, total, issued_at, created_at
FROM invoices
ORDER BY issued_at DESC
LIMIT :limit OFFSET :offset`

	queryCountInvoicesByMonth = `
SELECT COUNT(*) FROM invoices
    WHERE to_char(issued_at, 'YYYYMM') = :year_month`

	queryUpdateInvoicePDFURL = `
UPDATE invoices
SET pdf_url = :pdf_url
WHERE id = :id`
)
