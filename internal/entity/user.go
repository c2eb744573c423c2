package entity

import "time"

type UserRole string

const (
	RoleDoctor UserRole = "doctor"
	RoleStaff  UserRole = "staff"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	Name            string    `db:"name"`
	Password        string    `db:"password"`
	PhoneNumber     string    `db:"phone_number"`
	Role            string    `db:"role"`
	ClinicName      string    `db:"clinic_name"`
	Specialization  string    `db:"specialization"`
	LicenseNumber   string    `db:"license_number"`
	ProfilePhotoURL string    `db:"profile_photo_url"`
	IsVerified      bool      `db:"is_verified"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID    string
	Name  string
	Email string
	Role  string
}
