package adminService

import (
	"context"
	"time"

	"DentScanGolang/internal/api/admin"
	"DentScanGolang/internal/api/ticket"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func validTicketStatus(status string) bool {
	switch entity.TicketStatus(status) {
	case entity.TicketOpen, entity.TicketAnswered, entity.TicketClosed:
		return true
	}
	return false
}

func (s *ticketDomainImpl) ListTicketsByStatus(c context.Context, status string, page int, limit int) (ticket.TicketListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if !validTicketStatus(status) {
		return ticket.TicketListResponse{}, admin.ErrInvalidTicketStatus
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	repo, err := s.ticketRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return ticket.TicketListResponse{}, err
	}

	tickets, err := repo.Tickets.GetByStatus(c, status, limit, (page-1)*limit)
	if err != nil {
		return ticket.TicketListResponse{}, err
	}

	res := ticket.TicketListResponse{Tickets: make([]ticket.TicketResponse, 0, len(tickets))}
	for _, t := range tickets {
		res.Tickets = append(res.Tickets, ticket.TicketResponse{
			ID:        t.ID,
			Subject:   t.Subject,
			Category:  t.Category,
			Priority:  t.Priority,
			Status:    t.Status,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		})
	}

	return res, nil
}

func (s *ticketDomainImpl) ReplyTicket(c context.Context, adminUser entity.UserLoginData, ticketID string, req admin.ReplyTicketRequest) (ticket.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.ticketRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return ticket.MessageResponse{}, err
	}
	defer repo.Rollback()

	t, err := repo.Tickets.GetByID(c, ticketID)
	if err != nil {
		return ticket.MessageResponse{}, err
	}

	if t.Status == string(entity.TicketClosed) {
		return ticket.MessageResponse{}, ticket.ErrTicketClosed
	}

	messageID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return ticket.MessageResponse{}, err
	}

	message := entity.TicketMessage{
		ID:        messageID,
		TicketID:  ticketID,
		AuthorID:  adminUser.ID,
		FromAdmin: true,
		Body:      req.Body,
	}

	if err := repo.Messages.CreateMessage(c, message); err != nil {
		return ticket.MessageResponse{}, err
	}

	if err := repo.Tickets.UpdateStatus(c, ticketID, string(entity.TicketAnswered)); err != nil {
		return ticket.MessageResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return ticket.MessageResponse{}, err
	}

	message.CreatedAt = time.Now()

	return ticket.MessageResponse{
		ID:        message.ID,
		AuthorID:  message.AuthorID,
		FromAdmin: message.FromAdmin,
		Body:      message.Body,
		CreatedAt: message.CreatedAt,
	}, nil
}
