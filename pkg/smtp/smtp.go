package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendOTP(userEmail string, otp string) error
	SendInvoiceEmail(userEmail string, invoiceNumber string, total float64, pdfURL string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{auth: auth, mail: mail, host: host, addr: host + ":587"}
}

func (s *smtp) SendOTP(userEmail string, otp string) error {
	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Your DentScan verification code\r\n\r\nYour one-time verification code is: %s\r\nIt expires in 5 minutes.",
		userEmail, otp))

	return smtpPkg.SendMail(s.addr, s.auth, s.mail, []string{userEmail}, message)
}

func (s *smtp) SendInvoiceEmail(userEmail string, invoiceNumber string, total float64, pdfURL string) error {
	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: DentScan invoice %s\r\n\r\nThank you for your payment.\r\nInvoice: %s\r\nTotal: %.2f\r\nDownload: %s",
		userEmail, invoiceNumber, invoiceNumber, total, pdfURL))

	return smtpPkg.SendMail(s.addr, s.auth, s.mail, []string{userEmail}, message)
}
