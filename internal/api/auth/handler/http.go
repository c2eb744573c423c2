package authHandler

import (
	authService "DentScanGolang/internal/api/auth/service"
	"DentScanGolang/internal/middleware"
	"DentScanGolang/pkg/google"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.AuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/login", h.HandleLogin)
	auth.Get("/login-gl", h.HandleGoogleLogin)
	auth.Get("/callback-gl", h.CallBackFromGoogle)

	users := srv.Group("/users")
	users.Post("/", h.HandleRegister)
	users.Get("/me", h.middleware.NewTokenMiddleware, h.HandleGetProfile)
	users.Patch("/", h.middleware.NewTokenMiddleware, h.HandleUpdateProfile)
	users.Post("/profile-photo", h.middleware.NewTokenMiddleware, h.HandleUpdateProfilePhoto)
	users.Delete("/", h.middleware.NewTokenMiddleware, h.HandleDeleteUser)

	verification := srv.Group("/verification")
	verification.Post("/email/send-otp", h.HandleSendEmailOTP)
	verification.Post("/email/verify-otp", h.HandleVerifyEmailOTP)
	verification.Post("/phone/send-otp", h.HandleSendWhatsappOTP)
	verification.Post("/phone/verify-otp", h.HandleVerifyWhatsappOTP)
}
