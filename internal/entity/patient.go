package entity

import "time"

type Patient struct {
	ID                  string    `db:"id"`
	DoctorID            string    `db:"doctor_id"`
	Name                string    `db:"name"`
	MedicalRecordNumber string    `db:"medical_record_number"`
	BirthDate           time.Time `db:"birth_date"`
	Gender              string    `db:"gender"`
	PhoneNumber         string    `db:"phone_number"`
	Notes               string    `db:"notes"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}
