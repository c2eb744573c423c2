package billingService

import (
	"context"

	"DentScanGolang/internal/api/billing"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *invoiceDomainImpl) ListInvoices(c context.Context, user entity.UserLoginData) (billing.InvoiceListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return billing.InvoiceListResponse{}, err
	}

	invoices, err := repo.Invoices.GetByUserID(c, user.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get invoices")
		return billing.InvoiceListResponse{}, err
	}

	res := billing.InvoiceListResponse{Invoices: make([]billing.InvoiceResponse, 0, len(invoices))}
	for _, inv := range invoices {
		res.Invoices = append(res.Invoices, s.makeInvoiceResponse(inv, false))
	}

	return res, nil
}

func (s *invoiceDomainImpl) GetInvoice(c context.Context, user entity.UserLoginData, invoiceID string) (billing.InvoiceResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return billing.InvoiceResponse{}, err
	}

	inv, err := repo.Invoices.GetByID(c, invoiceID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"invoice_id": invoiceID,
			"error":      err.Error(),
		}).Warn("Failed to get invoice")
		return billing.InvoiceResponse{}, err
	}

	if inv.UserID != user.ID && user.Role != string(entity.RoleAdmin) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"invoice_id": invoiceID,
			"user_id":    user.ID,
		}).Warn("Invoice access denied")
		return billing.InvoiceResponse{}, billing.ErrInvoiceNotOwned
	}

	return s.makeInvoiceResponse(inv, true), nil
}

func (s *invoiceDomainImpl) makeInvoiceResponse(inv entity.Invoice, presign bool) billing.InvoiceResponse {
	pdfURL := inv.PDFURL
	if presign && pdfURL != "" {
		if signed, err := s.s3Client.PresignUrl(pdfURL); err == nil {
			pdfURL = signed
		} else {
			s.log.WithFields(logrus.Fields{
				"invoice_id": inv.ID,
				"error":      err.Error(),
			}).Warn("Failed to presign invoice PDF URL")
		}
	}

	return billing.InvoiceResponse{
		ID:       inv.ID,
		OrderID:  inv.OrderID,
		Number:   inv.Number,
		Total:    inv.Total,
		PDFURL:   pdfURL,
		IssuedAt: inv.IssuedAt,
	}
}
