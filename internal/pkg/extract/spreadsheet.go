package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// fromSpreadsheet renders every sheet of a workbook as a bordered text
// table prefixed with a sheet-name header.
func fromSpreadsheet(data []byte) (string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	var sb strings.Builder
	for _, sheet := range file.GetSheetList() {
		rows, err := file.GetRows(sheet)
		if err != nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("=== %s ===\n", sheet))
		sb.WriteString(renderTable(rows))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// renderTable draws rows as a plain-text table with +---+ borders.
// Column widths follow the widest cell in each column, measured in runes
// so non-ASCII cells keep the columns aligned.
func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	widths := make([]int, columns)
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var border strings.Builder
	border.WriteString("+")
	for _, w := range widths {
		border.WriteString(strings.Repeat("-", w+2))
		border.WriteString("+")
	}
	border.WriteString("\n")

	var sb strings.Builder
	sb.WriteString(border.String())
	for _, row := range rows {
		sb.WriteString("|")
		for i := 0; i < columns; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
		sb.WriteString(border.String())
	}
	return sb.String()
}
