package predictionRepository

const (
	queryCreatePrediction = `
INSERT INTO predictions (id, patient_id, doctor_id, original_url, status, created_at)
VALUES (:id, :patient_id, :doctor_id, :original_url, :status, :created_at)`

	queryGetPredictionByID = `
SELECT id, patient_id, doctor_id, original_url, annotated_url, detections_json, percentages_json, report_note, status, created_at, updated_at
FROM predictions
    WHERE id = :id`

	queryGetPredictionsByPatientID = `
SELECT id, patient_id, doctor_id, original_url, annotated_url, detections_json, percentages_json, report_note, status, created_at, updated_at
FROM predictions
    WHERE patient_id = :patient_id
ORDER BY created_at DESC`

	queryCountPredictionsByDoctorIDSince = `
SELECT COUNT(*) FROM predictions
    WHERE doctor_id = :doctor_id AND created_at >= :since AND status != 'failed'`

	queryUpdatePredictionResult = `
UPDATE predictions
SET annotated_url = :annotated_url,
    detections_json = :detections_json,
    percentages_json = :percentages_json,
    status = :status,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateAnnotatedURL = `
UPDATE predictions
SET annotated_url = :annotated_url,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateReportNote = `
UPDATE predictions
SET report_note = :report_note,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdatePredictionStatus = `
UPDATE predictions
SET status = :status,
    updated_at = :updated_at
WHERE id = :id`

	queryDeletePrediction = `
DELETE FROM predictions
WHERE id = :id`

	queryCreateLegend = `
INSERT INTO prediction_legends (id, prediction_id, class_name, color, included, created_at)
VALUES (:id, :prediction_id, :class_name, :color, :included, :created_at)`

	queryGetLegendsByPredictionID = `
SELECT id, prediction_id, class_name, color, included, created_at
FROM prediction_legends
    WHERE prediction_id = :prediction_id
ORDER BY class_name ASC`

	queryGetLegendByID = `
SELECT id, prediction_id, class_name, color, included, created_at
FROM prediction_legends
    WHERE id = :id`

	querySetLegendIncluded = `
UPDATE prediction_legends
SET included = :included
WHERE id = :id`

	queryDeleteLegendsByPredictionID = `
DELETE FROM prediction_legends
WHERE prediction_id = :prediction_id`
)
