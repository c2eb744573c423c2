package entity

import "time"

type PredictionStatus string

const (
	PredictionUploaded  PredictionStatus = "uploaded"
	PredictionCompleted PredictionStatus = "completed"
	PredictionFailed    PredictionStatus = "failed"
)

// Prediction is one X-ray image and, once inference has run, its detections
// and annotated rendering.
type Prediction struct {
	ID             string    `db:"id"`
	PatientID      string    `db:"patient_id"`
	DoctorID       string    `db:"doctor_id"`
	OriginalURL    string    `db:"original_url"`
	AnnotatedURL   string    `db:"annotated_url"`
	DetectionsJSON string    `db:"detections_json"`
	Percentages    string    `db:"percentages_json"`
	ReportNote     string    `db:"report_note"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Legend pairs a detected class with its display color and whether it is
// currently drawn on the annotated image.
type Legend struct {
	ID           string    `db:"id"`
	PredictionID string    `db:"prediction_id"`
	ClassName    string    `db:"class_name"`
	Color        string    `db:"color"`
	Included     bool      `db:"included"`
	CreatedAt    time.Time `db:"created_at"`
}
