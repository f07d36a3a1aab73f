// Package pdf renders the export reports with go-pdf/fpdf.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// builder wraps an fpdf document with the layout helpers shared by the
// report renderers: one page size, one font family, one table style.
type builder struct {
	doc *fpdf.Fpdf
}

func newBuilder(title string) *builder {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, false)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(110, 110, 110)
	doc.CellFormat(0, 6, "Generated "+time.Now().UTC().Format("2006-01-02 15:04 UTC"), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(4)

	return &builder{doc: doc}
}

func (b *builder) subheader(text string) {
	b.doc.SetFont("Helvetica", "B", 11)
	b.doc.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	b.doc.SetFont("Helvetica", "", 10)
}

func (b *builder) tableHeader(widths []float64, cols ...string) {
	b.doc.SetFont("Helvetica", "B", 9)
	b.doc.SetFillColor(235, 235, 235)
	for i, col := range cols {
		b.doc.CellFormat(widths[i], 7, col, "1", 0, "L", true, 0, "")
	}
	b.doc.Ln(-1)
	b.doc.SetFont("Helvetica", "", 9)
}

func (b *builder) tableRow(widths []float64, cells ...string) {
	for i, cell := range cells {
		b.doc.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
	}
	b.doc.Ln(-1)
}

func (b *builder) spacer() {
	b.doc.Ln(4)
}

func (b *builder) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// reportName builds a timestamped file name like time_export_20240131154502.pdf.
func reportName(prefix string) string {
	return fmt.Sprintf("%s_%s.pdf", prefix, time.Now().UTC().Format("20060102150405"))
}
