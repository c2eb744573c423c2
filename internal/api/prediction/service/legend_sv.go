package predictionService

import (
	"context"
	"encoding/json"
	"fmt"

	"DentScanGolang/internal/api/prediction"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"
	"DentScanGolang/pkg/overlay"

	"github.com/sirupsen/logrus"
)

// ToggleLegend flips one legend's inclusion and re-renders the annotated
// image from the stored original. Turning a legend on draws the surviving
// captions first and then adds the new class with RenderOne, so the new
// captions dodge the ones already on the image.
func (s *legendDomainImpl) ToggleLegend(c context.Context, doctor entity.UserLoginData, predictionID string, legendID string, included bool) (prediction.PredictionResponse, error) {
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

	if p.Status != string(entity.PredictionCompleted) {
		return prediction.PredictionResponse{}, prediction.ErrPredictionNotReady
	}

	legend, err := repo.Legends.GetByID(c, legendID)
	if err != nil {
		return prediction.PredictionResponse{}, err
	}
	if legend.PredictionID != predictionID {
		return prediction.PredictionResponse{}, prediction.ErrLegendNotFound
	}

	if err := repo.Legends.SetIncluded(c, legendID, included); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update legend inclusion")
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

	var detections []overlay.Detection
	if err := json.Unmarshal([]byte(p.DetectionsJSON), &detections); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to unmarshal stored detections")
		return prediction.PredictionResponse{}, err
	}

	colors := make(map[string]string, len(legends))
	includedClasses := make(map[string]bool, len(legends))
	for _, l := range legends {
		colors[l.ClassName] = l.Color
		includedClasses[l.ClassName] = l.Included
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

	var kept, added []overlay.Detection
	for _, det := range detections {
		if !includedClasses[det.Class] {
			continue
		}
		if included && det.Class == legend.ClassName {
			added = append(added, det)
			continue
		}
		kept = append(kept, det)
	}

	annotated, placed, err := overlay.RenderCollect(img, kept, colors)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to render annotated image")
		return prediction.PredictionResponse{}, err
	}

	for _, det := range added {
		var box overlay.LabelBox
		annotated, box, err = overlay.RenderOne(annotated, det, colors, placed)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to add legend overlay")
			return prediction.PredictionResponse{}, err
		}
		placed = append(placed, box)
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

	if err := repo.Predictions.UpdateAnnotatedURL(c, predictionID, annotatedURL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist annotated URL")
		return prediction.PredictionResponse{}, err
	}

	p.AnnotatedURL = annotatedURL

	s.log.WithFields(logrus.Fields{
		"request_id":    requestID,
		"prediction_id": predictionID,
		"legend_id":     legendID,
		"included":      included,
	}).Info("Legend toggled and image re-rendered")

	return makePredictionResponse(s.log, s.s3Client, p, legends), nil
}
