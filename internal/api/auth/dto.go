package auth

import "time"

type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=3,max=255"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8,max=32"`
	PhoneNumber    string `json:"phone_number" validate:"required,min=10,max=13"`
	ClinicName     string `json:"clinic_name" validate:"max=255"`
	Specialization string `json:"specialization" validate:"max=255"`
	LicenseNumber  string `json:"license_number" validate:"max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken      string  `json:"accessToken"`
	ExpiresInMinutes float64 `json:"expiresInMinutes"`
}

type GoogleLoginRequest struct {
	Email string `json:"email"`
}

type GoogleUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Picture       string `json:"picture"`
}

type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	Role            string    `json:"role"`
	ClinicName      string    `json:"clinic_name,omitempty"`
	Specialization  string    `json:"specialization,omitempty"`
	LicenseNumber   string    `json:"license_number,omitempty"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Name           string `json:"name" validate:"omitempty,min=3,max=255"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,min=10,max=13"`
	ClinicName     string `json:"clinic_name" validate:"max=255"`
	Specialization string `json:"specialization" validate:"max=255"`
	LicenseNumber  string `json:"license_number" validate:"max=64"`
}

type ProfilePhotoResponse struct {
	ID              string `json:"id"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}

type SendEmailOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyEmailOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,min=5,max=5"`
}

type SendWhatsappOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=13"`
}

type VerifyWhatsappOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=13"`
	Code        string `json:"code" validate:"required,min=5,max=5"`
}
