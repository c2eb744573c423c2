package authService

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"strings"
	"time"

	"DentScanGolang/internal/api/auth"
	contextPkg "DentScanGolang/pkg/context"
	jwtPkg "DentScanGolang/pkg/jwt"

	"github.com/sirupsen/logrus"
)

func (s *authDomainImpl) Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")

			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")

		return auth.LoginResponse{}, err
	}

	if !user.IsActive {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Login attempt on disabled account")
		return auth.LoginResponse{}, auth.ErrAccountDisabled
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	userData := MakeUserData(user)

	token, expired, err := jwtPkg.Sign(userData, time.Hour*1)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	res := auth.LoginResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}

	return res, nil
}

func (s *authDomainImpl) LoginGoogle() (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()
	URL, err := url.Parse(gConfig.Endpoint.AuthURL)
	if err != nil {
		return nil, err
	}

	parameters := url.Values{}
	parameters.Add("client_id", os.Getenv("GOOGLE_CLIENT_ID"))
	parameters.Add("scope", strings.Join(gConfig.Scopes, " "))
	parameters.Add("redirect_uri", gConfig.RedirectURL)
	parameters.Add("response_type", "code")
	parameters.Add("state", os.Getenv("GOOGLE_STATE"))
	URL.RawQuery = parameters.Encode()

	return URL, nil
}

func (s *authDomainImpl) UserLoginGoogle(c context.Context, req auth.GoogleLoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")

			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")

		return auth.LoginResponse{}, err
	}

	if !user.IsActive {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Google login attempt on disabled account")
		return auth.LoginResponse{}, auth.ErrAccountDisabled
	}

	userData := MakeUserData(user)

	token, expired, err := jwtPkg.Sign(userData, time.Hour*1)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	res := auth.LoginResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}

	return res, nil
}

func (s *authDomainImpl) SendEmailOTP(c context.Context, email string) error {
	requestID := contextPkg.GetRequestID(c)

	verificationCode := fmt.Sprintf("%05d", 10000+rand.Intn(90000))

	if err := s.redisServer.SetOTP(c, email, verificationCode, 5*time.Minute); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to set email OTP in Redis")
		return err
	}

	if err := s.smtpMailer.SendOTP(email, verificationCode); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send email OTP")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"email":      email,
	}).Info("Email OTP sent successfully")

	return nil
}

func (s *authDomainImpl) VerifyEmailOTP(c context.Context, email string, code string) error {
	requestID := contextPkg.GetRequestID(c)

	storedOTP, err := s.redisServer.GetOTP(c, email)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get OTP from Redis")
		return auth.ErrorTokenExpired
	}

	if storedOTP != code {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      "Invalid OTP",
		}).Warn("Invalid email OTP")
		return auth.ErrInvalidOTP
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Users.SetVerified(c, email); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to mark user as verified")
		return err
	}

	if err := s.redisServer.DeleteOTP(c, email); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete OTP from Redis")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"email":      email,
	}).Info("Email verified successfully")

	return nil
}

func (s *authDomainImpl) SendWhatsappOTP(c context.Context, phoneNumber string) error {
	requestID := contextPkg.GetRequestID(c)

	verificationCode := fmt.Sprintf("%05d", 10000+rand.Intn(90000))
	if err := s.redisServer.SetOTP(c, phoneNumber, verificationCode, 5*time.Minute); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to set OTP in Redis")
		return err
	}

	message := fmt.Sprintf("Your DentScan verification code is %s. It expires in 5 minutes.", verificationCode)
	if err := s.whatsappSender.SendMessage(c, phoneNumber, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send WhatsApp message")
		return err
	}

	return nil
}

func (s *authDomainImpl) VerifyWhatsappOTP(c context.Context, phoneNumber string, code string) error {
	requestID := contextPkg.GetRequestID(c)

	storedOTP, err := s.redisServer.GetOTP(c, phoneNumber)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get OTP from Redis")
		return auth.ErrorTokenExpired
	}

	if storedOTP != code {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      "Invalid OTP",
		}).Warn("Invalid phone OTP")
		return auth.ErrInvalidOTP
	}

	if err := s.redisServer.DeleteOTP(c, phoneNumber); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete OTP from Redis")
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"phoneNumber": phoneNumber,
	}).Info("Phone number verified successfully")

	return nil
}
