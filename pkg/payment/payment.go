package payment

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PTNUSASATUINTIARTHA-DOKU/doku-golang-library/controllers"
	"github.com/PTNUSASATUINTIARTHA-DOKU/doku-golang-library/doku"
	checkVaModels "github.com/PTNUSASATUINTIARTHA-DOKU/doku-golang-library/models/va/checkVa"
	createVa "github.com/PTNUSASATUINTIARTHA-DOKU/doku-golang-library/models/va/createVa"
	"github.com/PTNUSASATUINTIARTHA-DOKU/doku-golang-library/models/va/notification/payment"
	"github.com/sirupsen/logrus"
)

// IPaymentGateway creates virtual accounts for subscription orders and
// validates the gateway's payment callbacks.
type IPaymentGateway interface {
	Init() error
	CreateVirtualAccount(req CreateVaRequest) (*CreateVaResponse, error)
	ValidateCallback(token string, notification payment.PaymentNotificationRequestBodyDTO) (payment.PaymentNotificationResponseBodyDTO, error)
	CheckVAStatus(vaNumber string, customerNo string, partnerServiceId string, trxId string) (bool, error)
}

type paymentGateway struct {
	client *doku.Snap
	log    *logrus.Logger
}

func NewPaymentGateway(log *logrus.Logger) IPaymentGateway {
	return &paymentGateway{
		log: log,
	}
}

func (d *paymentGateway) Init() error {
	d.log.WithFields(logrus.Fields{
		"client_id":     os.Getenv("DOKU_CLIENT_ID"),
		"is_production": os.Getenv("DOKU_IS_PRODUCTION"),
	}).Info("Initializing payment gateway client")

	privateKeyPEM, err := os.ReadFile("private.key")
	if err != nil {
		return fmt.Errorf("failed to read private key file: %v", err)
	}
	privateKey := strings.TrimSpace(string(privateKeyPEM))

	if !strings.Contains(privateKey, "-----BEGIN") {
		return fmt.Errorf("invalid private key format")
	}

	d.client = &doku.Snap{
		PrivateKey: privateKey,
		PublicKey:  os.Getenv("DOKU_PUBLIC_KEY"),
		ClientId:   os.Getenv("DOKU_CLIENT_ID"),
		SecretKey:  os.Getenv("DOKU_SECRET_KEY"),
		IsProduction: func() bool {
			isProd, _ := strconv.ParseBool(os.Getenv("DOKU_IS_PRODUCTION"))
			return isProd
		}(),
	}

	doku.TokenController = &controllers.TokenController{}
	doku.VaController = &controllers.VaController{}
	doku.NotificationController = &controllers.NotificationController{}

	response := d.client.GetTokenB2B()
	if response.ResponseCode != "2007300" {
		return fmt.Errorf("failed to initialize payment gateway client: %s", response.ResponseMessage)
	}

	return nil
}

func (d *paymentGateway) CreateVirtualAccount(req CreateVaRequest) (*CreateVaResponse, error) {
	amountStr := fmt.Sprintf("%.2f", req.Amount)

	customerNo := req.CustomerNo
	partnerServiceId := os.Getenv("DOKU_PARTNER_SERVICE_ID")
	virtualAccountNo := partnerServiceId + customerNo

	loc, _ := time.LoadLocation("Asia/Jakarta")
	expiredTime := time.Now().In(loc).Add(req.ExpiredDuration)
	expiredDate := expiredTime.Format("2006-01-02T15:04:05") + "+07:00"

	createVaRequest := createVa.CreateVaRequestDto{
		PartnerServiceId:    partnerServiceId,
		CustomerNo:          customerNo,
		VirtualAccountNo:    virtualAccountNo,
		VirtualAccountName:  req.Name,
		VirtualAccountEmail: req.Email,
		VirtualAccountPhone: req.Phone,
		TrxId:               req.TrxId,
		TotalAmount: createVa.TotalAmount{
			Value:    amountStr,
			Currency: "IDR",
		},
		AdditionalInfo: createVa.AdditionalInfo{
			Channel: req.Bank,
			VirtualAccountConfig: createVa.VirtualAccountConfig{
				ReusableStatus: req.ReusableStatus,
			},
		},
		VirtualAccountTrxType: "C",
		ExpiredDate:           expiredDate,
	}

	response, err := d.client.CreateVa(createVaRequest)
	if err != nil {
		d.log.WithError(err).Error("Failed to create virtual account")
		return nil, err
	}

	if response.ResponseCode != "2002500" && response.ResponseCode != "2002700" {
		d.log.WithFields(logrus.Fields{
			"response_code":    response.ResponseCode,
			"response_message": response.ResponseMessage,
		}).Error("Failed to create virtual account")
		return nil, fmt.Errorf("failed to create virtual account: %s", response.ResponseMessage)
	}

	if response.VirtualAccountData == nil {
		return nil, fmt.Errorf("virtual account data is nil")
	}

	return &CreateVaResponse{
		VirtualAccountNo:  response.VirtualAccountData.VirtualAccountNo,
		Bank:              req.Bank,
		Amount:            req.Amount,
		TransactionID:     req.TrxId,
		ExpiryDate:        createVaRequest.ExpiredDate,
		VirtualAccountURL: response.VirtualAccountData.AdditionalInfo.HowToPayPage,
	}, nil
}

func (d *paymentGateway) ValidateCallback(token string, notification payment.PaymentNotificationRequestBodyDTO) (payment.PaymentNotificationResponseBodyDTO, error) {
	response, err := d.client.ValidateTokenAndGenerateNotificationResponse(token, notification)
	if err != nil {
		d.log.WithError(err).Error("Failed to validate callback")
		return payment.PaymentNotificationResponseBodyDTO{}, err
	}

	return response, nil
}

func (d *paymentGateway) CheckVAStatus(vaNumber string, customerNo string, partnerServiceId string, trxId string) (bool, error) {
	checkStatusRequest := checkVaModels.CheckStatusVARequestDto{
		PartnerServiceId: partnerServiceId,
		CustomerNo:       customerNo,
		VirtualAccountNo: vaNumber,
	}

	response, err := d.client.CheckStatusVa(checkStatusRequest)
	if err != nil {
		d.log.WithError(err).Error("Failed to check VA status")
		return false, err
	}

	if (response.ResponseCode == "2002600" || response.ResponseCode == "2002400") && response.VirtualAccountData != nil {
		if response.VirtualAccountData.PaidAmount.Value != "0.00" {
			return true, nil
		}
	}

	return false, nil
}
