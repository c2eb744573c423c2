package adminService

import (
	"context"

	"DentScanGolang/internal/api/admin"
	adminRepository "DentScanGolang/internal/api/admin/repository"
	authRepository "DentScanGolang/internal/api/auth/repository"
	"DentScanGolang/internal/api/billing"
	billingRepository "DentScanGolang/internal/api/billing/repository"
	"DentScanGolang/internal/api/ticket"
	ticketRepository "DentScanGolang/internal/api/ticket/repository"
	"DentScanGolang/internal/entity"
	"DentScanGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

type AdminService interface {
	User() UserDomain
	Stats() StatsDomain
	Ticket() TicketDomain
	Billing() BillingDomain
}

type UserDomain interface {
	ListUsers(c context.Context, search string, page int, limit int) (admin.UserListResponse, error)
	SetUserActive(c context.Context, adminUser entity.UserLoginData, userID string, active bool) (admin.UserResponse, error)
}

type StatsDomain interface {
	GetPlatformStats(c context.Context) (admin.PlatformStatsResponse, error)
}

type TicketDomain interface {
	ListTicketsByStatus(c context.Context, status string, page int, limit int) (ticket.TicketListResponse, error)
	ReplyTicket(c context.Context, adminUser entity.UserLoginData, ticketID string, req admin.ReplyTicketRequest) (ticket.MessageResponse, error)
}

type BillingDomain interface {
	ListOrders(c context.Context, page int, limit int) ([]billing.OrderResponse, error)
	ListInvoices(c context.Context, page int, limit int) (billing.InvoiceListResponse, error)
}

type adminService struct {
	log *logrus.Logger

	userDomain    UserDomain
	statsDomain   StatsDomain
	ticketDomain  TicketDomain
	billingDomain BillingDomain
}

func (a *adminService) User() UserDomain {
	return a.userDomain
}

func (a *adminService) Stats() StatsDomain {
	return a.statsDomain
}

func (a *adminService) Ticket() TicketDomain {
	return a.ticketDomain
}

func (a *adminService) Billing() BillingDomain {
	return a.billingDomain
}

type userDomainImpl struct {
	log      *logrus.Logger
	authRepo authRepository.Repository
}

type statsDomainImpl struct {
	log       *logrus.Logger
	adminRepo adminRepository.Repository
}

type ticketDomainImpl struct {
	log        *logrus.Logger
	ticketRepo ticketRepository.Repository
	utils      utils.IUtils
}

type billingDomainImpl struct {
	log         *logrus.Logger
	billingRepo billingRepository.Repository
}

func New(log *logrus.Logger,
	adminRepo adminRepository.Repository,
	authRepo authRepository.Repository,
	ticketRepo ticketRepository.Repository,
	billingRepo billingRepository.Repository,
	utils utils.IUtils,
) AdminService {
	return &adminService{
		log:           log,
		userDomain:    &userDomainImpl{log: log, authRepo: authRepo},
		statsDomain:   &statsDomainImpl{log: log, adminRepo: adminRepo},
		ticketDomain:  &ticketDomainImpl{log: log, ticketRepo: ticketRepo, utils: utils},
		billingDomain: &billingDomainImpl{log: log, billingRepo: billingRepo},
	}
}
