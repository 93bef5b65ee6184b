package parser

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"resumefit-go/internal/logger"
)

// DOCXTextExtractor extracts plain text from DOCX resumes. A .docx file is a
// zip archive whose word/document.xml holds the text; paragraphs and table
// cells each become one line, matching how the PDF path separates lines.
type DOCXTextExtractor struct {
	logger zerolog.Logger
}

// NewDOCXTextExtractor returns a DOCX text extractor.
func NewDOCXTextExtractor() *DOCXTextExtractor {
	return &DOCXTextExtractor{
		logger: logger.Logger.With().Str("component", "docx_extractor").Logger(),
	}
}

// ExtractFromFile reads the DOCX at filePath and returns its plain text.
func (e *DOCXTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	archive, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX %s: %w", filePath, err)
	}
	defer archive.Close()

	var document io.ReadCloser
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document, err = file.Open()
			if err != nil {
				return "", fmt.Errorf("failed to read document body of %s: %w", filePath, err)
			}
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("%s has no word/document.xml, not a DOCX file", filePath)
	}
	defer document.Close()

	text, err := docxBodyText(document)
	if err != nil {
		return "", fmt.Errorf("failed to decode DOCX body of %s: %w", filePath, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in DOCX %s", filePath)
	}

	e.logger.Debug().Str("file", filePath).Int("chars", len(text)).Msg("extracted DOCX text")
	return text, nil
}

// docxBodyText streams the WordprocessingML body, emitting text runs and a
// line break at the end of every paragraph (w:p) and table cell (w:tc).
func docxBodyText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var b strings.Builder
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				var run string
				if err := decoder.DecodeElement(&run, &t); err != nil {
					return "", err
				}
				b.WriteString(run)
			}
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "tc" {
				b.WriteString("\n")
			}
		}
	}
	return b.String(), nil
}
