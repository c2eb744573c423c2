package ticket

import (
	"net/http"

	"DentScanGolang/pkg/response"
)

var (
	ErrTicketNotFound     = response.NewError(http.StatusNotFound, "ticket not found")
	ErrTicketNotOwned     = response.NewError(http.StatusForbidden, "ticket does not belong to you")
	ErrTicketClosed       = response.NewError(http.StatusConflict, "ticket is closed")
	ErrTicketAlreadyClose = response.NewError(http.StatusConflict, "ticket is already closed")
)
