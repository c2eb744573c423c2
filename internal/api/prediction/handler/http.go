package predictionHandler

import (
	predictionService "DentScanGolang/internal/api/prediction/service"
	"DentScanGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PredictionHandler struct {
	log               *logrus.Logger
	predictionService predictionService.PredictionService
	validator         *validator.Validate
	middleware        middleware.Middleware
}

func New(
	log *logrus.Logger,
	ps predictionService.PredictionService,
	validate *validator.Validate,
	middleware middleware.Middleware) *PredictionHandler {
	return &PredictionHandler{
		log:               log,
		predictionService: ps,
		validator:         validate,
		middleware:        middleware,
	}
}

func (h *PredictionHandler) Start(srv fiber.Router) {
	predictions := srv.Group("/predictions")
	predictions.Post("/patients/:patientId/upload", h.middleware.NewTokenMiddleware, h.HandleUploadXray)
	predictions.Post("/:id/run", h.middleware.NewTokenMiddleware, h.HandleRunPrediction)
	predictions.Get("/patients/:patientId", h.middleware.NewTokenMiddleware, h.HandleListPredictions)
	predictions.Get("/:id", h.middleware.NewTokenMiddleware, h.HandleGetPrediction)
	predictions.Patch("/:id/legends/:legendId", h.middleware.NewTokenMiddleware, h.HandleToggleLegend)
	predictions.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeletePrediction)
}
