package auth

import (
	"net/http"

	"DentScanGolang/pkg/response"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrAccountDisabled        = response.NewError(http.StatusForbidden, "account is disabled")
	ErrInvalidOTP             = response.NewError(http.StatusUnauthorized, "invalid otp")
	ErrorTokenExpired         = response.NewError(http.StatusUnauthorized, "otp expired or not found")
	ErrInvalidFileType        = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge           = response.NewError(http.StatusBadRequest, "file too large")
	ErrFailedToUploadFile     = response.NewError(http.StatusInternalServerError, "failed to upload file")
)
