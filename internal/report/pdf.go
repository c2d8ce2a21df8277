package report

import (
	"fmt"
	"io"

	"github.com/alutools/dieprofile/schema"
	"github.com/go-pdf/fpdf"
)

// A4 page layout in millimetres.
const (
	pageWidth  = 210.0
	margin     = 12.0
	colGap     = 6.0
	rowHeight  = 6.0
	logoMaxW   = 32.0
	logoMaxH   = 18.0
	fontFamily = "Helvetica"
)

var (
	headerFill  = [3]int{180, 180, 180}
	resultsFill = [3]int{240, 240, 240}
)

// PDFOptions tunes the PDF renderer.
type PDFOptions struct {
	LogoPath string // optional PNG, JPG or GIF placed top right
	Compress bool
}

// WritePDF renders the report as a one-page A4 document with a footer on every page.
func WritePDF(w io.Writer, rep *schema.Report, opts PDFOptions) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(opts.Compress)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	pdf.SetTitle(rep.Title, true)
	pdf.SetCreator("dieprofile", true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		y := -8.0
		third := (pageWidth - 2*margin) / 3
		pdf.SetFont(fontFamily, "", 8)
		pdf.SetXY(margin, y)
		pdf.CellFormat(third, 4, tr(rep.Company), "", 0, "L", false, 0, "")
		pdf.CellFormat(third, 4, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.CellFormat(third, 4, tr(rep.Footer), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	titleY, dateY, companyY := 32.0, 36.0, 36.0
	if opts.LogoPath != "" {
		info := pdf.RegisterImageOptions(opts.LogoPath, fpdf.ImageOptions{ReadDpi: true})
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("failed to load logo: %w", err)
		}
		ratio := min(logoMaxW/info.Width(), logoMaxH/info.Height())
		lw, lh := info.Width()*ratio, info.Height()*ratio
		pdf.ImageOptions(opts.LogoPath, pageWidth-margin-lw, 12, lw, lh, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		companyY = 12 + lh + 6
		dateY = companyY + 4
		writeRight(pdf, tr(rep.Company), companyY, 13)
	} else if rep.Company != "" {
		companyY = 30
		dateY = companyY
		writeRight(pdf, tr(rep.Company), companyY, 13)
	}

	pdf.SetFont(fontFamily, "B", 16)
	pdf.Text(margin, titleY, tr(rep.Title))
	pdf.SetFont(fontFamily, "", 10)
	pdf.Text(margin, dateY, tr("Generated on "+rep.GeneratedOn))

	sections := make(map[string]schema.ReportSection, len(rep.Sections))
	for _, s := range rep.Sections {
		sections[s.Title] = s
	}

	// First row: inputs on the left, sales info and results stacked on the right.
	yStart := max(titleY, companyY) + 12
	half := (pageWidth - 2*margin - colGap) / 2
	rightX := margin + half + colGap

	yInputs := drawTable(pdf, tr, sections[SectionInputs], margin, yStart, half, nil)
	ySales := drawTable(pdf, tr, sections[SectionSales], rightX, yStart, half, nil)
	yResults := drawTable(pdf, tr, sections[SectionResults], rightX, ySales+2, half, &resultsFill)

	// Second row: three equal columns.
	y := max(yInputs, ySales, yResults) + 6
	third := (pageWidth - 2*margin - 2*colGap) / 3
	for i, title := range []string{SectionCalculated, SectionFactors, SectionWeights} {
		drawTable(pdf, tr, sections[title], margin+float64(i)*(third+colGap), y, third, nil)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// drawTable draws a two-column table with a shaded header and returns the y below it.
func drawTable(pdf *fpdf.Fpdf, tr func(string) string, s schema.ReportSection, x, y, width float64, bodyFill *[3]int) float64 {
	labelW := width * 0.62
	valueW := width - labelW

	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetXY(x, y)
	pdf.CellFormat(width, rowHeight, tr(s.Title), "1", 0, "L", true, 0, "")
	y += rowHeight

	pdf.SetFont(fontFamily, "", 9)
	fill := bodyFill != nil
	if fill {
		pdf.SetFillColor(bodyFill[0], bodyFill[1], bodyFill[2])
	}
	for _, row := range s.Rows {
		pdf.SetXY(x, y)
		pdf.CellFormat(labelW, rowHeight, tr(row.Label), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(valueW, rowHeight, tr(row.Value), "1", 0, "L", fill, 0, "")
		y += rowHeight
	}
	return y
}

// writeRight writes bold text right aligned against the page margin.
func writeRight(pdf *fpdf.Fpdf, text string, y, size float64) {
	pdf.SetFont(fontFamily, "B", size)
	pdf.Text(pageWidth-margin-pdf.GetStringWidth(text), y, text)
}
