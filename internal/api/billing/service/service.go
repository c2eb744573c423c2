package billingService

import (
	"context"

	authRepository "DentScanGolang/internal/api/auth/repository"
	"DentScanGolang/internal/api/billing"
	billingRepository "DentScanGolang/internal/api/billing/repository"
	"DentScanGolang/internal/entity"
	"DentScanGolang/pkg/invoice"
	"DentScanGolang/pkg/payment"
	"DentScanGolang/pkg/s3"
	"DentScanGolang/pkg/smtp"
	"DentScanGolang/pkg/utils"
	"DentScanGolang/pkg/whatsapp"

	"github.com/sirupsen/logrus"
)

type BillingService interface {
	Plan() PlanDomain
	Order() OrderDomain
	Subscription() SubscriptionDomain
	Invoice() InvoiceDomain
	GetRepository() billingRepository.Repository
}

type PlanDomain interface {
	ListPlans(c context.Context) ([]billing.PlanResponse, error)
}

type OrderDomain interface {
	Subscribe(c context.Context, user entity.UserLoginData, req billing.SubscribeRequest) (billing.OrderResponse, error)
	ProcessPaymentCallback(c context.Context, req billing.PaymentCallbackRequest, xPartnerID string) error
}

type SubscriptionDomain interface {
	GetStatus(c context.Context, user entity.UserLoginData) (billing.SubscriptionStatusResponse, error)
	ConsumePredictionQuota(c context.Context, doctorID string) error
}

type InvoiceDomain interface {
	ListInvoices(c context.Context, user entity.UserLoginData) (billing.InvoiceListResponse, error)
	GetInvoice(c context.Context, user entity.UserLoginData, invoiceID string) (billing.InvoiceResponse, error)
}

type billingService struct {
	log            *logrus.Logger
	billingRepo    billingRepository.Repository
	authRepo       authRepository.Repository
	paymentGateway payment.IPaymentGateway
	invoicePDF     invoice.IInvoicePDF
	s3Client       s3.ItfS3
	smtpMailer     smtp.ItfSmtp
	whatsappSender whatsapp.IWhatsappSender
	utils          utils.IUtils

	planDomain         PlanDomain
	orderDomain        OrderDomain
	subscriptionDomain SubscriptionDomain
	invoiceDomain      InvoiceDomain
}

func (b *billingService) Plan() PlanDomain {
	return b.planDomain
}

func (b *billingService) Order() OrderDomain {
	return b.orderDomain
}

func (b *billingService) Subscription() SubscriptionDomain {
	return b.subscriptionDomain
}

func (b *billingService) Invoice() InvoiceDomain {
	return b.invoiceDomain
}

func (b *billingService) GetRepository() billingRepository.Repository {
	return b.billingRepo
}

type planDomainImpl struct {
	log  *logrus.Logger
	repo billingRepository.Repository
}

type orderDomainImpl struct {
	log            *logrus.Logger
	repo           billingRepository.Repository
	authRepo       authRepository.Repository
	paymentGateway payment.IPaymentGateway
	invoicePDF     invoice.IInvoicePDF
	s3Client       s3.ItfS3
	smtpMailer     smtp.ItfSmtp
	whatsappSender whatsapp.IWhatsappSender
	utils          utils.IUtils
}

type subscriptionDomainImpl struct {
	log  *logrus.Logger
	repo billingRepository.Repository
}

type invoiceDomainImpl struct {
	log      *logrus.Logger
	repo     billingRepository.Repository
	s3Client s3.ItfS3
}

func New(log *logrus.Logger,
	billingRepo billingRepository.Repository,
	authRepo authRepository.Repository,
	paymentGateway payment.IPaymentGateway,
	invoicePDF invoice.IInvoicePDF,
	s3Client s3.ItfS3,
	smtpMailer smtp.ItfSmtp,
	whatsappSender whatsapp.IWhatsappSender,
	utils utils.IUtils,
) BillingService {
	return &billingService{
		log:            log,
		billingRepo:    billingRepo,
		authRepo:       authRepo,
		paymentGateway: paymentGateway,
		invoicePDF:     invoicePDF,
		s3Client:       s3Client,
		smtpMailer:     smtpMailer,
		whatsappSender: whatsappSender,
		utils:          utils,

		planDomain: &planDomainImpl{log: log, repo: billingRepo},
		orderDomain: &orderDomainImpl{
			log:            log,
			repo:           billingRepo,
			authRepo:       authRepo,
			paymentGateway: paymentGateway,
			invoicePDF:     invoicePDF,
			s3Client:       s3Client,
			smtpMailer:     smtpMailer,
			whatsappSender: whatsappSender,
			utils:          utils,
		},
		subscriptionDomain: &subscriptionDomainImpl{log: log, repo: billingRepo},
		invoiceDomain:      &invoiceDomainImpl{log: log, repo: billingRepo, s3Client: s3Client},
	}
}
