package patientHandler

import (
	patientService "DentScanGolang/internal/api/patient/service"
	"DentScanGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PatientHandler struct {
	log            *logrus.Logger
	patientService patientService.PatientService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	ps patientService.PatientService,
	validate *validator.Validate,
	middleware middleware.Middleware) *PatientHandler {
	return &PatientHandler{
		log:            log,
		patientService: ps,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *PatientHandler) Start(srv fiber.Router) {
	patients := srv.Group("/patients")
	patients.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreatePatient)
	patients.Get("/", h.middleware.NewTokenMiddleware, h.HandleListPatients)
	patients.Get("/:id", h.middleware.NewTokenMiddleware, h.HandleGetPatient)
	patients.Patch("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdatePatient)
	patients.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeletePatient)
}
