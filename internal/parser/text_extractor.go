package parser

import (
	"context"
	"fmt"
	"os"
)

// PlainTextExtractor is the trivial adapter for resumes already stored as
// plain text.
type PlainTextExtractor struct{}

// NewPlainTextExtractor returns a plain-text adapter.
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// ExtractFromFile reads the file at filePath verbatim.
func (e *PlainTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return string(data), nil
}
