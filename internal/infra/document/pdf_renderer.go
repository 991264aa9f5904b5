// Package document renders claim paperwork.
package document

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth  = 210.0
	marginSide = 20.0
	labelWidth = 55.0
	qrSize     = 35.0
	lineHeight = 7.0
)

type pdfRenderer struct {
	qr service.QRCodeService
}

// NewPDFRenderer returns an A4 claim form renderer. The QR service encodes the
// claim link when one is known.
func NewPDFRenderer(qr service.QRCodeService) service.DocumentRenderer {
	return &pdfRenderer{qr: qr}
}

// RenderClaimForm implements service.DocumentRenderer.
func (r *pdfRenderer) RenderClaimForm(ctx context.Context, doc *service.ClaimDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginSide, marginSide, marginSide)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetTitle("Claim Form", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "CLAIM FORM", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+doc.GeneratedAt.UTC().Format("January 2, 2006 15:04 MST"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	if claim := doc.Claim; claim != nil {
		writeSection(pdf, tr, "Claim Information", [][2]string{
			{"Company", claim.Company},
			{"Settlement", claim.Title},
			{"Claim ID", claim.ID},
			{"Amount", claim.Amount},
		})

		if claim.ClaimURL != "" {
			if err := r.drawClaimLink(pdf, tr, claim.ClaimURL); err != nil {
				return nil, err
			}
		}
	}

	writeSection(pdf, tr, "Personal Information", formRows(doc.FormData))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render claim form")
	}

	return buf.Bytes(), nil
}

func (r *pdfRenderer) drawClaimLink(pdf *fpdf.Fpdf, tr func(string) string, claimURL string) error {
	png, err := r.qr.Encode(claimURL)
	if err != nil {
		return errors.Wrap(err, "encode claim link")
	}

	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("claim-link", opts, bytes.NewReader(png))

	y := pdf.GetY()
	pdf.ImageOptions("claim-link", marginSide, y, qrSize, qrSize, false, opts, 0, claimURL)

	pdf.SetXY(marginSide+qrSize+5, y+qrSize/2-lineHeight)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(pageWidth-2*marginSide-qrSize-5, 5, tr("Scan to open the claim site:\n"+claimURL), "", "L", false)
	pdf.SetXY(marginSide, y+qrSize+4)

	return pdf.Error()
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, title string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, row := range rows {
		value := strings.TrimSpace(row[1])
		if value == "" {
			value = "-"
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelWidth, lineHeight, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, lineHeight, tr(value), "", "L", false)
	}
	pdf.Ln(5)
}

// formRows orders fields by key so the same data always renders the same page.
func formRows(data map[string]any) [][2]string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	rows := make([][2]string, 0, len(keys))
	for _, key := range keys {
		value := data[key]
		if value == nil {
			continue
		}
		rows = append(rows, [2]string{fieldLabel(key), fmt.Sprint(value)})
	}

	return rows
}

// fieldLabel turns snake_case into Title Case.
func fieldLabel(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' })
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
