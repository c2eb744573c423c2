package ticketHandler

import (
	ticketService "DentScanGolang/internal/api/ticket/service"
	"DentScanGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TicketHandler struct {
	log           *logrus.Logger
	ticketService ticketService.TicketService
	validator     *validator.Validate
	middleware    middleware.Middleware
}

func New(
	log *logrus.Logger,
	ts ticketService.TicketService,
	validate *validator.Validate,
	middleware middleware.Middleware) *TicketHandler {
	return &TicketHandler{
		log:           log,
		ticketService: ts,
		validator:     validate,
		middleware:    middleware,
	}
}

func (h *TicketHandler) Start(srv fiber.Router) {
	tickets := srv.Group("/tickets")
	tickets.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateTicket)
	tickets.Get("/", h.middleware.NewTokenMiddleware, h.HandleListTickets)
	tickets.Get("/:id", h.middleware.NewTokenMiddleware, h.HandleGetTicket)
	tickets.Post("/:id/messages", h.middleware.NewTokenMiddleware, h.HandleAppendMessage)
	tickets.Post("/:id/close", h.middleware.NewTokenMiddleware, h.HandleCloseTicket)
}
