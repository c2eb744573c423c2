package billing

import "time"

type PlanResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	MonthlyPrice    float64 `json:"monthly_price"`
	PredictionQuota int     `json:"prediction_quota"`
	Description     string  `json:"description,omitempty"`
}

type SubscribeRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
	Bank   string `json:"bank" validate:"required,oneof=BCA BNI BRI MANDIRI"`
}

type OrderResponse struct {
	ID             string    `json:"id"`
	PlanID         string    `json:"plan_id"`
	Subtotal       float64   `json:"subtotal"`
	Tax            float64   `json:"tax"`
	Total          float64   `json:"total"`
	Bank           string    `json:"bank"`
	VirtualAccount string    `json:"virtual_account"`
	Status         string    `json:"status"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type SubscriptionStatusResponse struct {
	Active      bool      `json:"active"`
	PlanID      string    `json:"plan_id,omitempty"`
	PlanName    string    `json:"plan_name,omitempty"`
	PeriodStart time.Time `json:"period_start,omitempty"`
	PeriodEnd   time.Time `json:"period_end,omitempty"`
	Used        int       `json:"used"`
	Quota       int       `json:"quota"`
}

type InvoiceResponse struct {
	ID       string    `json:"id"`
	OrderID  string    `json:"order_id"`
	Number   string    `json:"number"`
	Total    float64   `json:"total"`
	PDFURL   string    `json:"pdf_url,omitempty"`
	IssuedAt time.Time `json:"issued_at"`
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// PaymentCallbackRequest mirrors the SNAP virtual-account payment
// notification body.
type PaymentCallbackRequest struct {
	PartnerServiceId    string         `json:"partnerServiceId"`
	CustomerNo          string         `json:"customerNo"`
	VirtualAccountNo    string         `json:"virtualAccountNo"`
	VirtualAccountName  string         `json:"virtualAccountName"`
	VirtualAccountEmail string         `json:"virtualAccountEmail"`
	VirtualAccountPhone string         `json:"virtualAccountPhone"`
	TrxId               string         `json:"trxId"`
	PaymentRequestId    string         `json:"paymentRequestId"`
	PaidAmount          Amount         `json:"paidAmount"`
	TotalAmount         Amount         `json:"totalAmount"`
	TrxDateTime         string         `json:"trxDateTime"`
	AdditionalInfo      AdditionalInfo `json:"additionalInfo"`
}

type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type AdditionalInfo struct {
	Channel         string `json:"channel"`
	SenderName      string `json:"senderName"`
	SourceAccountNo string `json:"sourceAccountNo"`
	SourceBankCode  string `json:"sourceBankCode"`
	SourceBankName  string `json:"sourceBankName"`
}
