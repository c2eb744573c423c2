package prediction

import (
	"time"

	"DentScanGolang/pkg/overlay"
)

type UploadResponse struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	OriginalURL string `json:"original_url"`
	Status      string `json:"status"`
}

type LegendResponse struct {
	ID        string `json:"id"`
	ClassName string `json:"class_name"`
	Color     string `json:"color"`
	Included  bool   `json:"included"`
}

type PredictionResponse struct {
	ID           string              `json:"id"`
	PatientID    string              `json:"patient_id"`
	OriginalURL  string              `json:"original_url"`
	AnnotatedURL string              `json:"annotated_url,omitempty"`
	Detections   []overlay.Detection `json:"detections,omitempty"`
	Legends      []LegendResponse    `json:"legends,omitempty"`
	Percentages  map[string]float64  `json:"percentages,omitempty"`
	ReportNote   string              `json:"report_note,omitempty"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type PredictionListResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
}

type ToggleLegendRequest struct {
	Included bool `json:"included"`
}
