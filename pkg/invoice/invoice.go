package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type IInvoicePDF interface {
	Generate(data Data) ([]byte, error)
}

type Data struct {
	Number       string
	IssuedAt     time.Time
	CustomerName string
	ClinicName   string
	PlanName     string
	Subtotal     float64
	Tax          float64
	Total        float64
	ReferenceNo  string
}

type pdfGenerator struct{}

func New() IInvoicePDF {
	return &pdfGenerator{}
}

func (p *pdfGenerator) Generate(data Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", data.Number), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "DentScan")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Invoice %s", data.Number))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Issued %s", data.IssuedAt.Format("02 Jan 2006")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Reference %s", data.ReferenceNo))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Billed to")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, data.CustomerName)
	pdf.Ln(6)
	if data.ClinicName != "" {
		pdf.Cell(0, 6, data.ClinicName)
		pdf.Ln(6)
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Amount (IDR)", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(130, 8, fmt.Sprintf("%s plan, 1 month", data.PlanName), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", data.Subtotal), "1", 1, "R", false, 0, "")

	pdf.CellFormat(130, 8, "VAT 11%", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", data.Tax), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", data.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}

	return buf.Bytes(), nil
}
