package prediction

import (
	"net/http"

	"DentScanGolang/pkg/response"
)

var (
	ErrPredictionNotFound  = response.NewError(http.StatusNotFound, "prediction not found")
	ErrPredictionNotOwned  = response.NewError(http.StatusForbidden, "prediction does not belong to you")
	ErrLegendNotFound      = response.NewError(http.StatusNotFound, "legend not found")
	ErrImageDecodeFailed   = response.NewError(http.StatusBadRequest, "failed to decode image")
	ErrInvalidFileType     = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFailedToUploadFile  = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrInferenceFailed    = response.NewError(http.StatusBadGateway, "inference service failed")
	ErrPredictionNotReady = response.NewError(http.StatusConflict, "prediction has not completed yet")
)
