package billingService

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"DentScanGolang/internal/api/billing"
	billingRepository "DentScanGolang/internal/api/billing/repository"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"
	"DentScanGolang/pkg/invoice"
	"DentScanGolang/pkg/payment"

	"github.com/sirupsen/logrus"
)

const orderExpiry = 24 * time.Hour

func (s *orderDomainImpl) Subscribe(c context.Context, user entity.UserLoginData, req billing.SubscribeRequest) (billing.OrderResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return billing.OrderResponse{}, err
	}
	defer repo.Rollback()

	plan, err := repo.Plans.GetByID(c, req.PlanID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"plan_id":    req.PlanID,
			"error":      err.Error(),
		}).Warn("Failed to get plan")
		return billing.OrderResponse{}, err
	}

	if pending, err := repo.Orders.GetPendingByUserID(c, user.ID); err == nil {
		if time.Now().Before(pending.ExpiresAt) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    user.ID,
				"order_id":   pending.ID,
			}).Warn("User already has a pending order")
			return billing.OrderResponse{}, billing.ErrPendingOrderExists
		}
		// A stale pending order does not block a new one.
		if err := repo.Orders.MarkExpired(c, pending.ID); err != nil {
			return billing.OrderResponse{}, err
		}
	} else if !errors.Is(err, billing.ErrOrderNotFound) {
		return billing.OrderResponse{}, err
	}

	orderID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return billing.OrderResponse{}, err
	}

	subtotal := plan.MonthlyPrice
	tax := billing.ComputeTax(subtotal)
	total := billing.ComputeTotal(subtotal)

	refNo := fmt.Sprintf("SUB%s%d", user.ID, time.Now().Unix())

	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create auth repository client")
		return billing.OrderResponse{}, err
	}

	doctor, err := authRepo.Users.GetByID(c, user.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
			"error":      err.Error(),
		}).Error("Failed to get user info")
		return billing.OrderResponse{}, err
	}

	vaRes, err := s.paymentGateway.CreateVirtualAccount(payment.CreateVaRequest{
		UserID:          user.ID,
		CustomerNo:      customerNoFromID(user.ID),
		Name:            doctor.Name,
		Email:           doctor.Email,
		Phone:           doctor.PhoneNumber,
		Amount:          total,
		TrxId:           refNo,
		Bank:            req.Bank,
		ExpiredDuration: orderExpiry,
		ReusableStatus:  false,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create virtual account")
		return billing.OrderResponse{}, err
	}

	expiresAt := time.Now().Add(orderExpiry)
	order := entity.Order{
		ID:             orderID,
		UserID:         user.ID,
		PlanID:         plan.ID,
		ReferenceNo:    refNo,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          total,
		Bank:           req.Bank,
		VirtualAccount: vaRes.VirtualAccountNo,
		Status:         string(entity.OrderPending),
		ExpiresAt:      expiresAt,
	}

	if err := repo.Orders.CreateOrder(c, order); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create order")
		return billing.OrderResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return billing.OrderResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":   requestID,
		"order_id":     orderID,
		"reference_no": refNo,
		"total":        total,
	}).Info("Subscription order created")

	return billing.OrderResponse{
		ID:             orderID,
		PlanID:         plan.ID,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          total,
		Bank:           req.Bank,
		VirtualAccount: vaRes.VirtualAccountNo,
		Status:         string(entity.OrderPending),
		ExpiresAt:      expiresAt,
		CreatedAt:      time.Now(),
	}, nil
}

func (s *orderDomainImpl) ProcessPaymentCallback(c context.Context, req billing.PaymentCallbackRequest, xPartnerID string) error {
	requestID := contextPkg.GetRequestID(c)

	req.VirtualAccountNo = strings.TrimSpace(req.VirtualAccountNo)
	if req.TrxId == "" || req.VirtualAccountNo == "" {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"reference_no": req.TrxId,
		}).Error("Missing required fields in payment callback")
		return billing.ErrInvalidCallback
	}

	expectedPartnerID := os.Getenv("DOKU_CLIENT_ID")
	if expectedPartnerID != "" && xPartnerID != expectedPartnerID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expected":   expectedPartnerID,
			"received":   xPartnerID,
		}).Error("Invalid partner ID in payment callback")
		return billing.ErrInvalidCallback
	}

	if req.TrxDateTime != "" {
		if trxTime, parseErr := time.Parse(time.RFC3339, req.TrxDateTime); parseErr == nil {
			if drift := time.Since(trxTime); drift > 5*time.Minute || drift < -5*time.Minute {
				s.log.WithFields(logrus.Fields{
					"request_id":    requestID,
					"trx_date_time": req.TrxDateTime,
				}).Warn("Payment callback timestamp outside expected window")
			}
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"reference_no":   req.TrxId,
		"virtual_acc_no": req.VirtualAccountNo,
		"amount":         req.PaidAmount.Value,
	}).Info("Processing payment callback")

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	order, err := repo.Orders.GetByReferenceNo(c, req.TrxId)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"reference_no": req.TrxId,
			"error":        err.Error(),
		}).Error("Failed to get order")
		return err
	}

	if order.Status == string(entity.OrderPaid) {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"reference_no": req.TrxId,
		}).Info("Order already processed")
		return nil
	}

	paidAmount, err := strconv.ParseFloat(strings.TrimSpace(req.PaidAmount.Value), 64)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.PaidAmount.Value,
			"error":      err.Error(),
		}).Error("Failed to parse paid amount")
		return err
	}

	const amountTolerance = 0.01
	if paidAmount < order.Total-amountTolerance || paidAmount > order.Total+amountTolerance {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"expected_amount": order.Total,
			"received_amount": paidAmount,
		}).Warn("Amount mismatch in payment callback")
		return billing.ErrInvalidCallback
	}

	paidAt := time.Now()
	if err := repo.Orders.MarkPaid(c, order.ID, paidAt); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"order_id":   order.ID,
			"error":      err.Error(),
		}).Error("Failed to mark order paid")
		return err
	}

	subscriptionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	sub := entity.Subscription{
		ID:          subscriptionID,
		UserID:      order.UserID,
		PlanID:      order.PlanID,
		PeriodStart: paidAt,
		PeriodEnd:   paidAt.Add(30 * 24 * time.Hour),
	}

	if err := repo.Subscriptions.CreateSubscription(c, sub); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create subscription")
		return err
	}

	invoiceEntity, err := s.createInvoiceRow(c, repo, order, paidAt)
	if err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	// PDF rendering and receipt delivery run after commit and never fail
	// the callback; the gateway retries on non-2xx.
	s.deliverInvoice(c, order, invoiceEntity)

	s.log.WithFields(logrus.Fields{
		"request_id":   requestID,
		"reference_no": req.TrxId,
		"order_id":     order.ID,
	}).Info("Payment processed successfully")

	return nil
}

func (s *orderDomainImpl) createInvoiceRow(c context.Context, repo billingRepository.Client, order entity.Order, paidAt time.Time) (entity.Invoice, error) {
	requestID := contextPkg.GetRequestID(c)

	yearMonth := paidAt.Format("200601")
	seq, err := repo.Invoices.CountByMonth(c, yearMonth)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to count invoices for numbering")
		return entity.Invoice{}, err
	}

	invoiceID, err := s.utils.NewULIDFromTimestamp(paidAt)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv := entity.Invoice{
		ID:       invoiceID,
		OrderID:  order.ID,
		UserID:   order.UserID,
		Number:   fmt.Sprintf("INV/%s/%04d", yearMonth, seq+1),
		Total:    order.Total,
		IssuedAt: paidAt,
	}

	if err := repo.Invoices.CreateInvoice(c, inv); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create invoice")
		return entity.Invoice{}, err
	}

	return inv, nil
}

func customerNoFromID(userID string) string {
	// DOKU customer numbers are numeric; derive a stable digit string from
	// the ULID tail.
	digits := make([]byte, 0, 10)
	for i := len(userID) - 1; i >= 0 && len(digits) < 10; i-- {
		ch := userID[i]
		if ch >= '0' && ch <= '9' {
			digits = append(digits, ch)
		}
	}
	for len(digits) < 10 {
		digits = append(digits, '0')
	}
	return string(digits)
}

func (s *orderDomainImpl) deliverInvoice(c context.Context, order entity.Order, inv entity.Invoice) {
	requestID := contextPkg.GetRequestID(c)

	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create auth repository client for receipt delivery")
		return
	}

	doctor, err := authRepo.Users.GetByID(c, order.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get user for receipt delivery")
		return
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return
	}

	plan, err := repo.Plans.GetByID(c, order.PlanID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get plan for invoice PDF")
		return
	}

	pdfBytes, err := s.invoicePDF.Generate(invoice.Data{
		Number:       inv.Number,
		IssuedAt:     inv.IssuedAt,
		CustomerName: doctor.Name,
		ClinicName:   doctor.ClinicName,
		PlanName:     plan.Name,
		Subtotal:     order.Subtotal,
		Tax:          order.Tax,
		Total:        order.Total,
		ReferenceNo:  order.ReferenceNo,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to render invoice PDF")
		return
	}

	pdfURL, err := s.s3Client.UploadBytes(fmt.Sprintf("invoices/%s.pdf", inv.Number), "application/pdf", pdfBytes)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to upload invoice PDF to S3")
		return
	}

	if err := repo.Invoices.UpdatePDFURL(c, inv.ID, pdfURL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to persist invoice PDF URL")
	}

	if err := s.smtpMailer.SendInvoiceEmail(doctor.Email, inv.Number, order.Total, pdfURL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to email invoice")
	}

	if doctor.PhoneNumber != "" {
		message := fmt.Sprintf("Your DentScan payment of IDR %.2f was received. Invoice %s is ready.", order.Total, inv.Number)
		if err := s.whatsappSender.SendMessage(c, doctor.PhoneNumber, message); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to send WhatsApp receipt")
		}
	}
}
