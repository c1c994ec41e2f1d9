// Package pdfgen renders authored note text as a PDF document so online
// notes and uploaded files share a display format.
package pdfgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	// maxLineChars is the per-line wrap point. The wrap is a plain
	// character-count cut, not word-aware.
	maxLineChars = 90

	fontFamily = "Courier"
	fontSize   = 10.0
	lineHeight = 5.0
)

// Render produces an A4 PDF with the title as a heading and the body in a
// monospaced font, paginating when a page fills up.
func Render(title, body string) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont(fontFamily, "B", 14)
	doc.MultiCell(0, 8, title, "", "L", false)
	doc.Ln(4)

	doc.SetFont(fontFamily, "", fontSize)
	for _, line := range strings.Split(body, "\n") {
		for _, chunk := range wrap(line, maxLineChars) {
			doc.CellFormat(0, lineHeight, chunk, "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// wrap cuts a line into fixed-width chunks. An empty line still yields one
// chunk so blank lines survive rendering.
func wrap(line string, width int) []string {
	if line == "" {
		return []string{""}
	}
	runes := []rune(line)
	var chunks []string
	for len(runes) > width {
		chunks = append(chunks, string(runes[:width]))
		runes = runes[width:]
	}
	return append(chunks, string(runes))
}
