package predictionService

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"time"

	"DentScanGolang/internal/api/prediction"
	predictionRepository "DentScanGolang/internal/api/prediction/repository"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"
	"DentScanGolang/pkg/overlay"
	"DentScanGolang/pkg/s3"

	"github.com/sirupsen/logrus"
)

const reportNotePrompt = "You are a dental radiology assistant. Based on this panoramic dental X-ray, " +
	"write a short clinical note (3-5 sentences) summarizing the visible findings. " +
	"Do not diagnose; describe observations only."

func (s *predictionDomainImpl) UploadXray(c context.Context, doctor entity.UserLoginData, patientID string, file *multipart.FileHeader) (prediction.UploadResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if _, err := s.patientService.Patient().RequireOwned(c, doctor, patientID); err != nil {
		return prediction.UploadResponse{}, err
	}

	if err := s.utils.ValidateImageFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid X-ray file")
		return prediction.UploadResponse{}, prediction.ErrInvalidFileType
	}

	originalURL, err := s.s3Client.UploadFile(file, "xrays/original")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload X-ray to S3")
		return prediction.UploadResponse{}, prediction.ErrFailedToUploadFile
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return prediction.UploadResponse{}, err
	}

	ulid, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return prediction.UploadResponse{}, err
	}

	newPrediction := entity.Prediction{
		ID:          ulid,
		PatientID:   patientID,
		DoctorID:    doctor.ID,
		OriginalURL: originalURL,
		Status:      string(entity.PredictionUploaded),
	}

	if err := repo.Predictions.CreatePrediction(c, newPrediction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create prediction record")
		return prediction.UploadResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":    requestID,
		"prediction_id": ulid,
		"patient_id":    patientID,
	}).Info("X-ray uploaded successfully")

	return prediction.UploadResponse{
		ID:          ulid,
		PatientID:   patientID,
		OriginalURL: originalURL,
		Status:      string(entity.PredictionUploaded),
	}, nil
}

func (s *predictionDomainImpl) RunPrediction(c context.Context, doctor entity.UserLoginData, predictionID string, withNote bool) (prediction.PredictionResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return prediction.PredictionResponse{}, err
	}

	p, err := requireOwnedPrediction(c, s.log, repo, doctor, predictionID)
	if err != nil {
		return prediction.PredictionResponse{}, err
	}

	if err := s.quotaConsumer.ConsumePredictionQuota(c, doctor.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Prediction quota check failed")
		return prediction.PredictionResponse{}, err
	}

	imageBytes, err := s.s3Client.DownloadFile(p.OriginalURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to download original X-ray from S3")
		return prediction.PredictionResponse{}, err
	}

	img, err := s.utils.DecodeImage(imageBytes)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to decode X-ray image")
		return prediction.PredictionResponse{}, prediction.ErrImageDecodeFailed
	}

	base64Image := base64.StdEncoding.EncodeToString(imageBytes)

	detections, err := s.roboflowClient.Detect(c, base64Image)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Inference request failed")

		if err := repo.Predictions.UpdateStatus(c, predictionID, string(entity.PredictionFailed)); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to mark prediction as failed")
		}

		return prediction.PredictionResponse{}, prediction.ErrInferenceFailed
	}

	classes := make([]string, 0, len(detections))
	for _, det := range detections {
		classes = append(classes, det.Class)
	}
	colors := overlay.ResolveColors(classes)
	percentages := overlay.ComputePercentages(detections)

	annotated, err := overlay.Render(img, detections, colors)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to render annotated image")
		return prediction.PredictionResponse{}, err
	}

	annotatedBytes, err := s.utils.EncodeJPEG(annotated, 90)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to encode annotated image")
		return prediction.PredictionResponse{}, err
	}

	annotatedURL, err := s.s3Client.UploadBytes(fmt.Sprintf("xrays/annotated/%s.jpg", predictionID), "image/jpeg", annotatedBytes)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload annotated image to S3")
		return prediction.PredictionResponse{}, prediction.ErrFailedToUploadFile
	}

	detectionsJSON, err := json.Marshal(detections)
	if err != nil {
		return prediction.PredictionResponse{}, err
	}
	percentagesJSON, err := json.Marshal(percentages)
	if err != nil {
		return prediction.PredictionResponse{}, err
	}

	p.AnnotatedURL = annotatedURL
	p.DetectionsJSON = string(detectionsJSON)
	p.Percentages = string(percentagesJSON)
	p.Status = string(entity.PredictionCompleted)

	if err := repo.Predictions.UpdateResult(c, p); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist prediction result")
		return prediction.PredictionResponse{}, err
	}

	if err := repo.Legends.DeleteByPredictionID(c, predictionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear stale legends")
		return prediction.PredictionResponse{}, err
	}

	legends := make([]entity.Legend, 0, len(colors))
	for _, class := range uniqueClasses(classes) {
		legendID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return prediction.PredictionResponse{}, err
		}
		legends = append(legends, entity.Legend{
			ID:           legendID,
			PredictionID: predictionID,
			ClassName:    class,
			Color:        colors[class],
			Included:     true,
		})
	}

	if err := repo.Legends.CreateLegends(c, legends); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist legends")
		return prediction.PredictionResponse{}, err
	}

	if withNote {
		note, err := s.geminiClient.AnalyzeImage(c, base64Image, reportNotePrompt)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Report note generation failed, continuing without note")
		} else {
			p.ReportNote = note
			if err := repo.Predictions.UpdateReportNote(c, predictionID, note); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Failed to persist report note")
				p.ReportNote = ""
			}
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id":    requestID,
		"prediction_id": predictionID,
		"detections":    len(detections),
	}).Info("Prediction completed successfully")

	return makePredictionResponse(s.log, s.s3Client, p, legends), nil
}

func (s *predictionDomainImpl) GetPrediction(c context.Context, doctor entity.UserLoginData, predictionID string) (prediction.PredictionResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return prediction.PredictionResponse{}, err
	}

	p, err := requireOwnedPrediction(c, s.log, repo, doctor, predictionID)
	if err != nil {
		return prediction.PredictionResponse{}, err
	}

	legends, err := repo.Legends.GetByPredictionID(c, predictionID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get legends")
		return prediction.PredictionResponse{}, err
	}

	return makePredictionResponse(s.log, s.s3Client, p, legends), nil
}

func (s *predictionDomainImpl) ListPredictions(c context.Context, doctor entity.UserLoginData, patientID string) (prediction.PredictionListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if _, err := s.patientService.Patient().RequireOwned(c, doctor, patientID); err != nil {
		return prediction.PredictionListResponse{}, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return prediction.PredictionListResponse{}, err
	}

	predictions, err := repo.Predictions.GetByPatientID(c, patientID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list predictions")
		return prediction.PredictionListResponse{}, err
	}

	res := prediction.PredictionListResponse{
		Predictions: make([]prediction.PredictionResponse, 0, len(predictions)),
	}
	for _, p := range predictions {
		res.Predictions = append(res.Predictions, makePredictionResponse(s.log, s.s3Client, p, nil))
	}

	return res, nil
}

func (s *predictionDomainImpl) DeletePrediction(c context.Context, doctor entity.UserLoginData, predictionID string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	p, err := requireOwnedPrediction(c, s.log, repo, doctor, predictionID)
	if err != nil {
		return err
	}

	if err := repo.Legends.DeleteByPredictionID(c, predictionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete legends")
		return err
	}

	if err := repo.Predictions.DeletePrediction(c, predictionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete prediction")
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	// S3 cleanup happens after the rows are gone; a leaked object is better
	// than a dangling row pointing at nothing.
	if p.OriginalURL != "" {
		if err := s.s3Client.DeleteFile(p.OriginalURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete original X-ray from S3")
		}
	}
	if p.AnnotatedURL != "" {
		if err := s.s3Client.DeleteFile(p.AnnotatedURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete annotated image from S3")
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id":    requestID,
		"prediction_id": predictionID,
	}).Info("Prediction deleted successfully")

	return nil
}

func requireOwnedPrediction(c context.Context, log *logrus.Logger, repo predictionRepository.Client, doctor entity.UserLoginData, predictionID string) (entity.Prediction, error) {
	requestID := contextPkg.GetRequestID(c)

	p, err := repo.Predictions.GetByID(c, predictionID)
	if err != nil {
		log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get prediction by ID")
		return entity.Prediction{}, err
	}

	if p.DoctorID != doctor.ID && doctor.Role != string(entity.RoleAdmin) {
		log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"prediction_id": predictionID,
			"doctor_id":     doctor.ID,
		}).Warn("Doctor attempted to access prediction they do not own")
		return entity.Prediction{}, prediction.ErrPredictionNotOwned
	}

	return p, nil
}

func uniqueClasses(classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		if _, ok := seen[class]; ok {
			continue
		}
		seen[class] = struct{}{}
		out = append(out, class)
	}
	return out
}

func makePredictionResponse(log *logrus.Logger, s3Client s3.ItfS3, p entity.Prediction, legends []entity.Legend) prediction.PredictionResponse {
	res := prediction.PredictionResponse{
		ID:        p.ID,
		PatientID: p.PatientID,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	res.OriginalURL = presignOrRaw(log, s3Client, p.OriginalURL)
	if p.AnnotatedURL != "" {
		res.AnnotatedURL = presignOrRaw(log, s3Client, p.AnnotatedURL)
	}
	res.ReportNote = p.ReportNote

	if p.DetectionsJSON != "" {
		var detections []overlay.Detection
		if err := json.Unmarshal([]byte(p.DetectionsJSON), &detections); err != nil {
			log.WithFields(logrus.Fields{
				"prediction_id": p.ID,
				"error":         err.Error(),
			}).Warn("Failed to unmarshal stored detections")
		} else {
			res.Detections = detections
		}
	}

	if p.Percentages != "" {
		var percentages map[string]float64
		if err := json.Unmarshal([]byte(p.Percentages), &percentages); err != nil {
			log.WithFields(logrus.Fields{
				"prediction_id": p.ID,
				"error":         err.Error(),
			}).Warn("Failed to unmarshal stored percentages")
		} else {
			res.Percentages = percentages
		}
	}

	for _, legend := range legends {
		res.Legends = append(res.Legends, prediction.LegendResponse{
			ID:        legend.ID,
			ClassName: legend.ClassName,
			Color:     legend.Color,
			Included:  legend.Included,
		})
	}

	return res
}

func presignOrRaw(log *logrus.Logger, s3Client s3.ItfS3, fileURL string) string {
	presigned, err := s3Client.PresignUrl(fileURL)
	if err != nil {
		log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Failed to presign S3 URL")
		return fileURL
	}
	return presigned
}
