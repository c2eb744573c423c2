package billingHandler

import (
	billingService "DentScanGolang/internal/api/billing/service"
	"DentScanGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BillingHandler struct {
	log            *logrus.Logger
	billingService billingService.BillingService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	bs billingService.BillingService,
	validate *validator.Validate,
	middleware middleware.Middleware) *BillingHandler {
	return &BillingHandler{
		log:            log,
		billingService: bs,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *BillingHandler) Start(srv fiber.Router) {
	billing := srv.Group("/billing")
	billing.Get("/plans", h.middleware.NewTokenMiddleware, h.HandleListPlans)
	billing.Post("/subscribe", h.middleware.NewTokenMiddleware, h.HandleSubscribe)
	billing.Get("/subscription", h.middleware.NewTokenMiddleware, h.HandleGetSubscription)
	billing.Get("/invoices", h.middleware.NewTokenMiddleware, h.HandleListInvoices)
	billing.Get("/invoices/:id", h.middleware.NewTokenMiddleware, h.HandleGetInvoice)

	// Called by the payment gateway, authenticated by partner headers.
	billing.Post("/callback", h.HandlePaymentCallback)
}
