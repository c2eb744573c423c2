package ticketService

import (
	"context"
	"time"

	"DentScanGolang/internal/api/ticket"
	ticketRepository "DentScanGolang/internal/api/ticket/repository"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

const (
	defaultCategory = "general"
	defaultPriority = "normal"
)

func (s *ticketDomainImpl) CreateTicket(c context.Context, user entity.UserLoginData, req ticket.CreateTicketRequest) (ticket.TicketDetailResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	category, priority := defaultCategory, defaultPriority
	if s.triage != nil {
		if triaged, err := s.triage.TriageTicket(c, req.Subject, req.Body); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Ticket triage failed, using defaults")
		} else {
			category, priority = triaged.Category, triaged.Priority
		}
	}

	ticketID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return ticket.TicketDetailResponse{}, err
	}

	messageID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return ticket.TicketDetailResponse{}, err
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return ticket.TicketDetailResponse{}, err
	}
	defer repo.Rollback()

	newTicket := entity.Ticket{
		ID:       ticketID,
		UserID:   user.ID,
		Subject:  req.Subject,
		Category: category,
		Priority: priority,
		Status:   string(entity.TicketOpen),
	}

	if err := repo.Tickets.CreateTicket(c, newTicket); err != nil {
		return ticket.TicketDetailResponse{}, err
	}

	firstMessage := entity.TicketMessage{
		ID:        messageID,
		TicketID:  ticketID,
		AuthorID:  user.ID,
		FromAdmin: false,
		Body:      req.Body,
	}

	if err := repo.Messages.CreateMessage(c, firstMessage); err != nil {
		return ticket.TicketDetailResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return ticket.TicketDetailResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"ticket_id":  ticketID,
		"category":   category,
		"priority":   priority,
	}).Info("Support ticket created")

	now := time.Now()
	newTicket.CreatedAt = now
	newTicket.UpdatedAt = now
	firstMessage.CreatedAt = now

	return ticket.TicketDetailResponse{
		TicketResponse: makeTicketResponse(newTicket),
		Messages:       []ticket.MessageResponse{makeMessageResponse(firstMessage)},
	}, nil
}

func (s *ticketDomainImpl) ListTickets(c context.Context, user entity.UserLoginData) (ticket.TicketListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return ticket.TicketListResponse{}, err
	}

	tickets, err := repo.Tickets.GetByUserID(c, user.ID)
	if err != nil {
		return ticket.TicketListResponse{}, err
	}

	res := ticket.TicketListResponse{Tickets: make([]ticket.TicketResponse, 0, len(tickets))}
	for _, t := range tickets {
		res.Tickets = append(res.Tickets, makeTicketResponse(t))
	}

	return res, nil
}

func (s *ticketDomainImpl) GetTicket(c context.Context, user entity.UserLoginData, ticketID string) (ticket.TicketDetailResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return ticket.TicketDetailResponse{}, err
	}

	t, err := requireOwnedTicket(c, s.log, repo, user, ticketID)
	if err != nil {
		return ticket.TicketDetailResponse{}, err
	}

	messages, err := repo.Messages.GetByTicketID(c, ticketID)
	if err != nil {
		return ticket.TicketDetailResponse{}, err
	}

	res := ticket.TicketDetailResponse{
		TicketResponse: makeTicketResponse(t),
		Messages:       make([]ticket.MessageResponse, 0, len(messages)),
	}
	for _, message := range messages {
		res.Messages = append(res.Messages, makeMessageResponse(message))
	}

	return res, nil
}

func (s *ticketDomainImpl) AppendMessage(c context.Context, user entity.UserLoginData, ticketID string, req ticket.AppendMessageRequest) (ticket.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return ticket.MessageResponse{}, err
	}
	defer repo.Rollback()

	t, err := requireOwnedTicket(c, s.log, repo, user, ticketID)
	if err != nil {
		return ticket.MessageResponse{}, err
	}

	messageID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return ticket.MessageResponse{}, err
	}

	message := entity.TicketMessage{
		ID:        messageID,
		TicketID:  ticketID,
		AuthorID:  user.ID,
		FromAdmin: false,
		Body:      req.Body,
	}

	if err := repo.Messages.CreateMessage(c, message); err != nil {
		return ticket.MessageResponse{}, err
	}

	// A doctor replying to an answered or closed ticket reopens it.
	if t.Status != string(entity.TicketOpen) {
		if err := repo.Tickets.UpdateStatus(c, ticketID, string(entity.TicketOpen)); err != nil {
			return ticket.MessageResponse{}, err
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return ticket.MessageResponse{}, err
	}

	message.CreatedAt = time.Now()

	return makeMessageResponse(message), nil
}

func (s *ticketDomainImpl) CloseTicket(c context.Context, user entity.UserLoginData, ticketID string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	t, err := requireOwnedTicket(c, s.log, repo, user, ticketID)
	if err != nil {
		return err
	}

	if t.Status == string(entity.TicketClosed) {
		return ticket.ErrTicketAlreadyClose
	}

	return repo.Tickets.UpdateStatus(c, ticketID, string(entity.TicketClosed))
}

func requireOwnedTicket(c context.Context, log *logrus.Logger, repo ticketRepository.Client, user entity.UserLoginData, ticketID string) (entity.Ticket, error) {
	t, err := repo.Tickets.GetByID(c, ticketID)
	if err != nil {
		return entity.Ticket{}, err
	}

	if t.UserID != user.ID && user.Role != string(entity.RoleAdmin) {
		log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"ticket_id":  ticketID,
			"user_id":    user.ID,
		}).Warn("Ticket access denied")
		return entity.Ticket{}, ticket.ErrTicketNotOwned
	}

	return t, nil
}

func makeTicketResponse(t entity.Ticket) ticket.TicketResponse {
	return ticket.TicketResponse{
		ID:        t.ID,
		Subject:   t.Subject,
		Category:  t.Category,
		Priority:  t.Priority,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func makeMessageResponse(message entity.TicketMessage) ticket.MessageResponse {
	return ticket.MessageResponse{
		ID:        message.ID,
		AuthorID:  message.AuthorID,
		FromAdmin: message.FromAdmin,
		Body:      message.Body,
		CreatedAt: message.CreatedAt,
	}
}
