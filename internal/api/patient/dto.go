package patient

import "time"

type CreatePatientRequest struct {
	Name                string `json:"name" validate:"required,min=3,max=255"`
	MedicalRecordNumber string `json:"medical_record_number" validate:"required,max=64"`
	BirthDate           string `json:"birth_date" validate:"required"`
	Gender              string `json:"gender" validate:"required,oneof=male female"`
	PhoneNumber         string `json:"phone_number" validate:"omitempty,min=10,max=13"`
	Notes               string `json:"notes" validate:"max=2000"`
}

type UpdatePatientRequest struct {
	Name        string `json:"name" validate:"omitempty,min=3,max=255"`
	BirthDate   string `json:"birth_date" validate:"omitempty"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=13"`
	Notes       string `json:"notes" validate:"max=2000"`
}

type PatientResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	MedicalRecordNumber string    `json:"medical_record_number"`
	BirthDate           string    `json:"birth_date"`
	Gender              string    `json:"gender"`
	PhoneNumber         string    `json:"phone_number,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int               `json:"total"`
}
