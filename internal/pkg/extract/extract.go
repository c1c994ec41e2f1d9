// Package extract converts uploaded study documents into plain text.
//
// Supported formats:
//   - .pdf: per-page text, pages joined with a newline
//   - .xlsx/.xls: every sheet rendered as a bordered text table with a sheet-name header
//   - .docx: paragraph text, one paragraph per line
//   - .pptx: text of every text-bearing shape, per slide
//   - .txt/.md: UTF-8 passthrough
//
// Extraction is lossy and best effort: the output feeds a language model,
// not a document viewer. Anything else yields an empty string.
package extract

import (
	"path/filepath"
	"strings"

	"github.com/opennotes/backend/internal/pkg/logger"
)

// Text extracts plain text from a document. It is total: for any byte
// slice and any filename it returns a string, possibly empty, and never
// panics. Failures are logged and degrade to "" so one malformed upload
// cannot abort the enclosing request.
func Text(data []byte, filename string) (text string) {
	defer func() {
		// The PDF reader panics on some malformed cross-reference tables.
		if r := recover(); r != nil {
			logger.Error().Str("filename", filename).Interface("panic", r).Msg("Text extraction panicked")
			text = ""
		}
	}()

	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = fromPDF(data)
	case ".xlsx", ".xls":
		text, err = fromSpreadsheet(data)
	case ".docx":
		text, err = fromDocx(data)
	case ".pptx":
		text, err = fromPptx(data)
	case ".txt", ".md":
		return string(data)
	default:
		return ""
	}

	if err != nil {
		logger.Error().Err(err).Str("filename", filename).Msg("Text extraction failed")
		return ""
	}
	return text
}
