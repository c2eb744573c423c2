package config

import (
	"fmt"
	"os"

	"DentScanGolang/database/postgres"
	adminHandler "DentScanGolang/internal/api/admin/handler"
	adminRepository "DentScanGolang/internal/api/admin/repository"
	adminService "DentScanGolang/internal/api/admin/service"
	authHandler "DentScanGolang/internal/api/auth/handler"
	authRepository "DentScanGolang/internal/api/auth/repository"
	authService "DentScanGolang/internal/api/auth/service"
	billingHandler "DentScanGolang/internal/api/billing/handler"
	billingRepository "DentScanGolang/internal/api/billing/repository"
	billingService "DentScanGolang/internal/api/billing/service"
	patientHandler "DentScanGolang/internal/api/patient/handler"
	patientRepository "DentScanGolang/internal/api/patient/repository"
	patientService "DentScanGolang/internal/api/patient/service"
	predictionHandler "DentScanGolang/internal/api/prediction/handler"
	predictionRepository "DentScanGolang/internal/api/prediction/repository"
	predictionService "DentScanGolang/internal/api/prediction/service"
	ticketHandler "DentScanGolang/internal/api/ticket/handler"
	ticketRepository "DentScanGolang/internal/api/ticket/repository"
	ticketService "DentScanGolang/internal/api/ticket/service"
	"DentScanGolang/internal/middleware"
	"DentScanGolang/pkg/assistant"
	"DentScanGolang/pkg/bcrypt"
	"DentScanGolang/pkg/gemini"
	"DentScanGolang/pkg/google"
	"DentScanGolang/pkg/invoice"
	"DentScanGolang/pkg/payment"
	"DentScanGolang/pkg/redis"
	"DentScanGolang/pkg/roboflow"
	"DentScanGolang/pkg/s3"
	"DentScanGolang/pkg/smtp"
	"DentScanGolang/pkg/utils"
	"DentScanGolang/pkg/whatsapp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	whatsappClient whatsapp.IWhatsappSender
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	roboflowClient roboflow.IRoboflow
	paymentGateway payment.IPaymentGateway
	triageClient   assistant.ITriage
	invoicePDF     invoice.IInvoicePDF
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithRoboflowClient() ServerOption {
	return func(s *Server) error {
		s.roboflowClient = roboflow.New()
		return nil
	}
}

func WithPaymentGateway() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before payment gateway")
		}
		gateway := payment.NewPaymentGateway(s.log)
		if err := gateway.Init(); err != nil {
			return fmt.Errorf("failed to initialize payment gateway: %w", err)
		}
		s.paymentGateway = gateway
		return nil
	}
}

func WithTriageClient() ServerOption {
	return func(s *Server) error {
		s.triageClient = assistant.New()
		return nil
	}
}

func WithInvoicePDF() ServerOption {
	return func(s *Server) error {
		s.invoicePDF = invoice.New()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.smtpMailer, s.redisServer, s.whatsappClient, s.s3Client, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider)

	// Patient Domain
	patientRepo := patientRepository.New(s.db, s.log)
	patientServices := patientService.New(s.log, patientRepo, s.utils)
	patientHandlers := patientHandler.New(s.log, patientServices, s.validator, s.middleware)

	// Billing Domain
	billingRepo := billingRepository.New(s.db, s.log)
	billingServices := billingService.New(s.log, billingRepo, authRepo, s.paymentGateway, s.invoicePDF, s.s3Client, s.smtpMailer, s.whatsappClient, s.utils)
	billingHandlers := billingHandler.New(s.log, billingServices, s.validator, s.middleware)

	// Prediction Domain. Quota enforcement lives in billing, injected here
	// so the two packages stay decoupled.
	predictionRepo := predictionRepository.New(s.db, s.log)
	predictionServices := predictionService.New(s.log, predictionRepo, patientServices, s.roboflowClient, s.geminiClient, s.s3Client, billingServices.Subscription(), s.utils)
	predictionHandlers := predictionHandler.New(s.log, predictionServices, s.validator, s.middleware)

	// Support Tickets
	ticketRepo := ticketRepository.New(s.db, s.log)
	ticketServices := ticketService.New(s.log, ticketRepo, s.triageClient, s.utils)
	ticketHandlers := ticketHandler.New(s.log, ticketServices, s.validator, s.middleware)

	// Admin Console
	adminRepo := adminRepository.New(s.db, s.log)
	adminServices := adminService.New(s.log, adminRepo, authRepo, ticketRepo, billingRepo, s.utils)
	adminHandlers := adminHandler.New(s.log, adminServices, s.validator, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, patientHandlers, billingHandlers, predictionHandlers, ticketHandlers, adminHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
