package processor

import (
	"context"
	"path/filepath"
	"strings"

	"resumefit-go/internal/parser"
)

// TextExtractor adapts one document format to the pipeline's input
// contract: a single string of raw extracted text. The core never reads
// files itself; adapters do.
type TextExtractor interface {
	ExtractFromFile(ctx context.Context, filePath string) (string, error)
}

// ExtractorForFile picks the adapter for a file by extension. Anything that
// is not a PDF or DOCX is treated as plain text.
func ExtractorForFile(filePath string) TextExtractor {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return parser.NewPDFTextExtractor()
	case ".docx", ".doc":
		return parser.NewDOCXTextExtractor()
	default:
		return parser.NewPlainTextExtractor()
	}
}
