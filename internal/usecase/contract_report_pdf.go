package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfTitle      = "Vehicle purchase and sale report"
	pdfMargin     = 10.0
	pdfLineHeight = 4.5
	pdfPadding    = 2.0
)

var (
	pdfHeaders = []string{"Contract", "Client", "Responsible user", "Vehicle", "Financial terms", "Dates"}
	// relative column widths, scaled to the printable page width
	pdfColumnRatios = []float64{1.5, 2.0, 1.7, 1.9, 1.9, 1.6}
)

// GeneratePDF renders the report as a landscape table with one block of
// text per concern in each contract row.
func (u *ContractReportUseCase) GeneratePDF(ctx context.Context, startDate, endDate *time.Time) ([]byte, error) {
	records, err := u.reportRecords(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(pdfTitle, true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(pdfTitle), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, tr("Period: "+periodText(startDate, endDate)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := pdfColumnWidths(pdf)
	writePDFHeader(pdf, tr, widths)

	if len(records) == 0 {
		pdf.CellFormat(sum(widths), 12, tr(reportEmptyMessage), "1", 1, "C", false, 0, "")
	}
	for _, r := range records {
		writePDFRow(pdf, tr, widths, pdfBlocks(r))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf report: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfColumnWidths(pdf *fpdf.Fpdf) []float64 {
	pageWidth, _ := pdf.GetPageSize()
	printable := pageWidth - 2*pdfMargin
	total := sum(pdfColumnRatios)
	widths := make([]float64, len(pdfColumnRatios))
	for i, ratio := range pdfColumnRatios {
		widths[i] = printable * ratio / total
	}
	return widths
}

func writePDFHeader(pdf *fpdf.Fpdf, tr func(string) string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(242, 242, 242)
	for i, h := range pdfHeaders {
		pdf.CellFormat(widths[i], 9, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
}

// writePDFRow draws one row of bordered cells sized to the tallest block,
// starting a new page (with the header repeated) when the row does not fit.
func writePDFRow(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, blocks []string) {
	rowLines := 1
	for i, block := range blocks {
		n := 0
		for _, part := range strings.Split(block, "\n") {
			n += max(1, len(pdf.SplitText(latin1(part), widths[i]-2*pdfPadding)))
		}
		rowLines = max(rowLines, n)
	}
	height := float64(rowLines)*pdfLineHeight + 2*pdfPadding

	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+height > pageHeight-pdfMargin {
		pdf.AddPage()
		writePDFHeader(pdf, tr, widths)
	}

	x, y := pdf.GetXY()
	for i, block := range blocks {
		pdf.Rect(x, y, widths[i], height, "D")
		pdf.SetXY(x+pdfPadding, y+pdfPadding)
		pdf.MultiCell(widths[i]-2*pdfPadding, pdfLineHeight, tr(block), "", "L", false)
		x += widths[i]
	}
	pdf.SetXY(pdfMargin, y+height)
}

func pdfBlocks(r reportRecord) []string {
	return []string{
		lines(
			"Type: "+r.ContractType,
			"Status: "+r.ContractStatus,
			"Payment method: "+r.PaymentMethod,
			"Observations: "+textOr(r.Observations, "None"),
		),
		lines(
			"Name: "+textOr(r.ClientName, "N/A"),
			"Type: "+textOr(r.ClientType, "N/A"),
			"Document: "+textOr(r.ClientDocument, "N/A"),
			"Email: "+textOr(r.ClientEmail, "N/A"),
			"Phone: "+textOr(r.ClientPhone, "N/A"),
		),
		lines(
			"Name: "+textOr(r.UserFullName, "N/A"),
			"Username: "+textOr(r.Username, "N/A"),
			"Email: "+textOr(r.UserEmail, "N/A"),
		),
		lines(
			"Brand: "+textOr(r.VehicleBrand, "N/A"),
			"Line: "+textOr(r.VehicleLine, "N/A"),
			"Model: "+textOr(r.VehicleModel, "N/A"),
			"Plate: "+textOr(r.VehiclePlate, "N/A"),
			"Type: "+textOr(r.VehicleType, "N/A"),
			"Status: "+textOr(r.VehicleStatus, "N/A"),
		),
		lines(
			"Purchase price: "+formatPrice(r.PurchasePrice),
			"Sale price: "+formatPrice(r.SalePrice),
			"Terms: "+textOr(r.PaymentTerms, "N/A"),
			"Limitations: "+textOr(r.PaymentLimitations, "N/A"),
		),
		lines(
			"Created: "+textOr(r.CreatedAt, "N/A"),
			"Updated: "+textOr(r.UpdatedAt, "N/A"),
		),
	}
}

// latin1 replaces runes the core fonts have no width for, so the text can
// be measured.
func latin1(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFF {
			return '?'
		}
		return r
	}, s)
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}

func textOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
