package admin

import (
	"net/http"

	"DentScanGolang/pkg/response"
)

var (
	ErrInvalidTicketStatus = response.NewError(http.StatusBadRequest, "invalid ticket status filter")
	ErrCannotModifySelf    = response.NewError(http.StatusConflict, "cannot change your own account status")
)
