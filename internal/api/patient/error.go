package patient

import (
	"net/http"

	"DentScanGolang/pkg/response"
)

var (
	ErrPatientNotFound    = response.NewError(http.StatusNotFound, "patient not found")
	ErrPatientNotOwned    = response.NewError(http.StatusForbidden, "patient does not belong to you")
	ErrMRNAlreadyExists   = response.NewError(http.StatusConflict, "medical record number already exists")
	ErrInvalidBirthDate   = response.NewError(http.StatusBadRequest, "invalid birth date format, expected YYYY-MM-DD")
	ErrInvalidGenderValue = response.NewError(http.StatusBadRequest, "gender must be male or female")
)
