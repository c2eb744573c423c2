package ticketService

import (
	"context"

	"DentScanGolang/internal/api/ticket"
	ticketRepository "DentScanGolang/internal/api/ticket/repository"
	"DentScanGolang/internal/entity"
	"DentScanGolang/pkg/assistant"
	"DentScanGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

type TicketService interface {
	Ticket() TicketDomain
	GetRepository() ticketRepository.Repository
}

type TicketDomain interface {
	CreateTicket(c context.Context, user entity.UserLoginData, req ticket.CreateTicketRequest) (ticket.TicketDetailResponse, error)
	ListTickets(c context.Context, user entity.UserLoginData) (ticket.TicketListResponse, error)
	GetTicket(c context.Context, user entity.UserLoginData, ticketID string) (ticket.TicketDetailResponse, error)
	AppendMessage(c context.Context, user entity.UserLoginData, ticketID string, req ticket.AppendMessageRequest) (ticket.MessageResponse, error)
	CloseTicket(c context.Context, user entity.UserLoginData, ticketID string) error
}

type ticketService struct {
	log        *logrus.Logger
	ticketRepo ticketRepository.Repository

	ticketDomain TicketDomain
}

func (t *ticketService) Ticket() TicketDomain {
	return t.ticketDomain
}

func (t *ticketService) GetRepository() ticketRepository.Repository {
	return t.ticketRepo
}

type ticketDomainImpl struct {
	log    *logrus.Logger
	repo   ticketRepository.Repository
	triage assistant.ITriage
	utils  utils.IUtils
}

func New(log *logrus.Logger,
	ticketRepo ticketRepository.Repository,
	triage assistant.ITriage,
	utils utils.IUtils,
) TicketService {
	return &ticketService{
		log:        log,
		ticketRepo: ticketRepo,
		ticketDomain: &ticketDomainImpl{
			log:    log,
			repo:   ticketRepo,
			triage: triage,
			utils:  utils,
		},
	}
}
