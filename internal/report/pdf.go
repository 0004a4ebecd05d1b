package report

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF for DecodeConfig
	_ "image/jpeg" // Register JPEG for DecodeConfig
	_ "image/png"  // Register PNG for DecodeConfig
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrRender = errors.New("the report could not be rendered")

// Renderer writes a document in some output format.
type Renderer interface {
	Render(w io.Writer, doc Document) error
}

// PDFRenderer renders documents as A4 PDF files.
type PDFRenderer struct {
	Language language.Tag // Used to format amounts. Defaults to English
}

const (
	colSrNo      = 20.0
	colLabel     = 70.0
	colAmount    = 35.0
	colStatus    = 30.0
	rowHeight    = 7.0
	signatureMax = 40.0
	logoMax      = 25.0
)

func (r PDFRenderer) Render(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("hoa-ledger", true)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	r.header(pdf, tr, doc)
	if doc.Listing != nil {
		r.listing(pdf, tr, doc.Listing)
	} else {
		r.table(pdf, tr, doc)
	}
	r.signature(pdf, tr, doc.Signatory)

	if pdf.Err() {
		return fmt.Errorf("%w: %w", ErrRender, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

func (r PDFRenderer) header(pdf *fpdf.Fpdf, tr func(string) string, doc Document) {
	h := doc.Header

	if h.Logo != nil {
		r.image(pdf, "logo", h.Logo, logoMax, false)
	}

	if h.PropertyName != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 9, tr(h.PropertyName), "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{h.Address, h.OwnerTitle} {
		if line != "" {
			pdf.CellFormat(0, 5, tr(line), "", 1, "C", false, 0, "")
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(doc.Title), "", 1, "C", false, 0, "")

	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 6, tr(doc.Subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)
}

func (r PDFRenderer) table(pdf *fpdf.Fpdf, tr func(string) string, doc Document) {
	t := doc.Table

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colSrNo, rowHeight, "Sr No.", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colLabel, rowHeight, tr(t.LabelColumn), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colAmount, rowHeight, "Paid", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colAmount, rowHeight, "Remaining", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colStatus, rowHeight, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range t.Rows {
		pdf.CellFormat(colSrNo, rowHeight, fmt.Sprint(row.SrNo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colLabel, rowHeight, tr(row.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colAmount, rowHeight, tr(r.money(doc.Currency, row.Paid)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, rowHeight, tr(r.money(doc.Currency, row.Remaining)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colStatus, rowHeight, tr(string(row.Status)), "1", 1, "C", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, rowHeight, tr(fmt.Sprintf("Total Paid: %s", r.money(doc.Currency, t.TotalPaid))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, rowHeight, tr(fmt.Sprintf("Total Remaining: %s", r.money(doc.Currency, t.TotalRemaining))), "", 1, "L", false, 0, "")
}

// listing draws the columns with equal widths over the printable width.
func (r PDFRenderer) listing(pdf *fpdf.Fpdf, tr func(string) string, l *Listing) {
	if len(l.Columns) == 0 {
		return
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	width := (pageWidth - left - right) / float64(len(l.Columns))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, column := range l.Columns {
		pdf.CellFormat(width, rowHeight, tr(column), "1", lineBreak(i, len(l.Columns)), "L", true, 0, "")
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range l.Rows {
		for i := range l.Columns {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(width, rowHeight, tr(fit(pdf, cell, width)), "1", lineBreak(i, len(l.Columns)), "L", false, 0, "")
		}
	}
}

// lineBreak returns the CellFormat line break for column i of n.
func lineBreak(i, n int) int {
	if i == n-1 {
		return 1
	}
	return 0
}

// fit shortens s until it fits into a cell of the width.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	const padding = 2
	if pdf.GetStringWidth(s) <= width-padding {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width-padding {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func (r PDFRenderer) signature(pdf *fpdf.Fpdf, tr func(string) string, s *Signatory) {
	if s == nil {
		return
	}

	pdf.Ln(12)

	if s.Signature != nil {
		r.image(pdf, "signature", s.Signature, signatureMax, true)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, tr(s.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(s.Position), "", 1, "L", false, 0, "")
}

// image draws an image with the given width at the cursor. If flow is
// true, the cursor is moved below the image. Images that do not decode
// are skipped.
func (r PDFRenderer) image(pdf *fpdf.Fpdf, name string, img *Image, width float64, flow bool) {
	if len(img.Data) == 0 {
		return
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(img.Data)); err != nil {
		return
	}

	options := fpdf.ImageOptions{ImageType: img.Type, ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(img.Data))
	pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), width, 0, flow, options, 0, "")
}

// money formats an amount in the currency. Unknown currency codes are
// printed after the amount.
func (r PDFRenderer) money(code string, amount decimal.Decimal) string {
	tag := r.Language
	if tag == language.Und {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	unit, err := currency.ParseISO(code)
	if err != nil {
		return p.Sprintf("%s %s", amount.StringFixed(2), code)
	}

	return p.Sprint(currency.Symbol(unit.Amount(amount.InexactFloat64())))
}
