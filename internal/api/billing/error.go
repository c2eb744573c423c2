package billing

import (
	"net/http"

	"DentScanGolang/pkg/response"
)

var (
	ErrPlanNotFound         = response.NewError(http.StatusNotFound, "plan not found")
	ErrOrderNotFound        = response.NewError(http.StatusNotFound, "order not found")
	ErrInvoiceNotFound      = response.NewError(http.StatusNotFound, "invoice not found")
	ErrOrderNotOwned        = response.NewError(http.StatusForbidden, "order does not belong to you")
	ErrInvoiceNotOwned      = response.NewError(http.StatusForbidden, "invoice does not belong to you")
	ErrOrderAlreadyPaid     = response.NewError(http.StatusConflict, "order is already paid")
	ErrPendingOrderExists   = response.NewError(http.StatusConflict, "a pending order already exists")
	ErrNoActiveSubscription = response.NewError(http.StatusForbidden, "no active subscription")
	ErrQuotaExceeded        = response.NewError(http.StatusForbidden, "prediction quota exceeded")
	ErrInvalidCallback      = response.NewError(http.StatusUnauthorized, "invalid payment notification")
)
