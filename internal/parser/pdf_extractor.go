package parser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"resumefit-go/internal/logger"
)

// PDFTextExtractor extracts plain text from PDF resumes, page by page.
// Pages that fail to decode are skipped; extraction fails only when the
// whole document yields no text.
type PDFTextExtractor struct {
	logger zerolog.Logger
}

// PDFOption configures a PDFTextExtractor.
type PDFOption func(*PDFTextExtractor)

// WithPDFLogger overrides the extractor's logger.
func WithPDFLogger(l zerolog.Logger) PDFOption {
	return func(e *PDFTextExtractor) {
		e.logger = l
	}
}

// NewPDFTextExtractor returns a PDF text extractor.
func NewPDFTextExtractor(options ...PDFOption) *PDFTextExtractor {
	extractor := &PDFTextExtractor{
		logger: logger.Logger.With().Str("component", "pdf_extractor").Logger(),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// ExtractFromFile reads the PDF at filePath and returns its plain text.
func (e *PDFTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	start := time.Now()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", filePath, err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPages := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn().Int("page", pageIndex).Err(err).Msg("skipping undecodable page")
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF %s", filePath)
	}

	e.logger.Debug().
		Str("file", filePath).
		Int("pages", totalPages).
		Int("chars", len(text)).
		Dur("elapsed", time.Since(start)).
		Msg("extracted PDF text")
	return text, nil
}
