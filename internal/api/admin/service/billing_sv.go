package adminService

import (
	"context"

	"DentScanGolang/internal/api/billing"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *billingDomainImpl) ListOrders(c context.Context, page int, limit int) ([]billing.OrderResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	repo, err := s.billingRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	orders, err := repo.Orders.GetAll(c, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	res := make([]billing.OrderResponse, 0, len(orders))
	for _, order := range orders {
		res = append(res, billing.OrderResponse{
			ID:             order.ID,
			PlanID:         order.PlanID,
			Subtotal:       order.Subtotal,
			Tax:            order.Tax,
			Total:          order.Total,
			Bank:           order.Bank,
			VirtualAccount: order.VirtualAccount,
			Status:         order.Status,
			ExpiresAt:      order.ExpiresAt,
			CreatedAt:      order.CreatedAt,
		})
	}

	return res, nil
}

func (s *billingDomainImpl) ListInvoices(c context.Context, page int, limit int) (billing.InvoiceListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	repo, err := s.billingRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return billing.InvoiceListResponse{}, err
	}

	invoices, err := repo.Invoices.GetAll(c, limit, (page-1)*limit)
	if err != nil {
		return billing.InvoiceListResponse{}, err
	}

	res := billing.InvoiceListResponse{Invoices: make([]billing.InvoiceResponse, 0, len(invoices))}
	for _, inv := range invoices {
		res.Invoices = append(res.Invoices, billing.InvoiceResponse{
			ID:       inv.ID,
			OrderID:  inv.OrderID,
			Number:   inv.Number,
			Total:    inv.Total,
			PDFURL:   inv.PDFURL,
			IssuedAt: inv.IssuedAt,
		})
	}

	return res, nil
}
