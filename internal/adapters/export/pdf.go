package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"lettrix/internal/domain"
)

const (
	pdfMarginSide   = 15.0
	pdfMarginTop    = 12.0
	pdfMarginBottom = 12.0
	pdfLineHeight   = 5.5
	pdfLogoSize     = 30.0
	pdfLabelWidth   = 32.0
)

// PDFExporter renders letters as A4 PDF documents.
type PDFExporter struct {
	assetDir string
	logger   *slog.Logger
}

// NewPDFExporter creates a PDF exporter. Logos are read from assetDir only.
func NewPDFExporter(assetDir string, logger *slog.Logger) *PDFExporter {
	return &PDFExporter{assetDir: assetDir, logger: logger}
}

// Format returns domain.FormatPDF.
func (e *PDFExporter) Format() domain.Format { return domain.FormatPDF }

// ContentType returns the PDF MIME type.
func (e *PDFExporter) ContentType() string { return "application/pdf" }

// Export renders doc into a PDF.
func (e *PDFExporter) Export(_ context.Context, doc *domain.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginSide, pdfMarginTop, pdfMarginSide)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("lettrix", true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if doc.Watermark != "" {
		pdf.SetHeaderFunc(func() { drawWatermark(pdf, tr(doc.Watermark)) })
	}

	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	e.drawLetterhead(pdf, tr, doc, pageWidth)

	if doc.Title != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(0, 51, 204)
		pdf.CellFormat(0, 8, tr(doc.Title), "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}

	pdf.SetTextColor(0, 0, 0)
	for _, row := range doc.Details {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(241, 196, 15)
		pdf.CellFormat(pdfLabelWidth, 6, tr(row.Label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 6, tr(row.Value), "", "L", false)
	}
	if len(doc.Details) > 0 {
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 10)
	if doc.Greeting != "" {
		pdf.MultiCell(0, pdfLineHeight, tr(doc.Greeting), "", "L", false)
		pdf.Ln(2)
	}

	for _, p := range doc.Paragraphs() {
		pdf.MultiCell(0, pdfLineHeight, tr(p), "", "J", false)
		pdf.Ln(2)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	for _, line := range []string{doc.Signature.Name, doc.Signature.Role, placeLine(doc.Signature.Place, doc.Signature.Date)} {
		if line != "" {
			pdf.CellFormat(0, pdfLineHeight, tr(line), "", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(241, 196, 15)
	pdf.CellFormat(0, pdfLineHeight, "Signature: ____________________", "", 1, "L", false, 0, "")

	if doc.Footer != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(102, 102, 102)
		pdf.MultiCell(0, 4, tr(doc.Footer), "", "C", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (e *PDFExporter) drawLetterhead(pdf *gofpdf.Fpdf, tr func(string) string, doc *domain.Document, pageWidth float64) {
	head := doc.Letterhead

	if logo := resolveAsset(e.assetDir, head.LogoPath); logo != "" {
		x := pageWidth - pdfMarginSide - pdfLogoSize
		y := pdf.GetY()
		pdf.ImageOptions(logo, x, y, pdfLogoSize, pdfLogoSize, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		if pdf.Err() {
			e.logger.Warn("failed to embed logo", "path", logo, "error", pdf.Error())
			pdf.ClearError()
		} else {
			pdf.SetY(y + pdfLogoSize + 2)
		}
	} else if head.LogoPath != "" {
		e.logger.Debug("logo not available", "path", head.LogoPath)
	}

	if head.CompanyName != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(0, 51, 204)
		pdf.CellFormat(0, 8, tr(head.CompanyName), "", 1, "C", false, 0, "")
	}

	var lines []string
	if head.Address != "" {
		lines = append(lines, head.Address)
	}
	if c := contactLine(head.Phone, head.Email); c != "" {
		lines = append(lines, c)
	}
	if len(lines) > 0 {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(85, 85, 85)
		pdf.MultiCell(0, 4.5, tr(strings.Join(lines, "\n")), "", "C", false)
	}

	pdf.Ln(2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	y := pdf.GetY()
	pdf.Line(pdfMarginSide, y, pageWidth-pdfMarginSide, y)
	pdf.Ln(6)
}

func drawWatermark(pdf *gofpdf.Fpdf, text string) {
	pageWidth, pageHeight := pdf.GetPageSize()
	cx, cy := pageWidth/2, pageHeight/2

	pdf.SetFont("Helvetica", "B", 60)
	pdf.SetTextColor(153, 153, 153)
	pdf.SetAlpha(0.12, "Normal")
	pdf.TransformBegin()
	pdf.TransformRotate(45, cx, cy)
	pdf.Text(cx-pdf.GetStringWidth(text)/2, cy, text)
	pdf.TransformEnd()
	pdf.SetAlpha(1, "Normal")
	pdf.SetTextColor(0, 0, 0)
}
