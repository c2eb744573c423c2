package adminHandler

import (
	adminService "DentScanGolang/internal/api/admin/service"
	"DentScanGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	log          *logrus.Logger
	adminService adminService.AdminService
	validator    *validator.Validate
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	as adminService.AdminService,
	validate *validator.Validate,
	middleware middleware.Middleware) *AdminHandler {
	return &AdminHandler{
		log:          log,
		adminService: as,
		validator:    validate,
		middleware:   middleware,
	}
}

func (h *AdminHandler) Start(srv fiber.Router) {
	admin := srv.Group("/admin", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware)
	admin.Get("/users", h.HandleListUsers)
	admin.Patch("/users/:id/status", h.HandleSetUserActive)
	admin.Get("/stats", h.HandleGetPlatformStats)
	admin.Get("/tickets", h.HandleListTickets)
	admin.Post("/tickets/:id/reply", h.HandleReplyTicket)
	admin.Get("/orders", h.HandleListOrders)
	admin.Get("/invoices", h.HandleListInvoices)
}
