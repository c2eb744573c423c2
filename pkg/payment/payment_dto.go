package payment

import "time"

type CreateVaRequest struct {
	UserID          string
	CustomerNo      string
	Name            string
	Email           string
	Phone           string
	Amount          float64
	TrxId           string
	Bank            string
	ExpiredDuration time.Duration
	ReusableStatus  bool
}

type CreateVaResponse struct {
	VirtualAccountNo  string
	Bank              string
	Amount            float64
	TransactionID     string
	ExpiryDate        string
	VirtualAccountURL string
}
