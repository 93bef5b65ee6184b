package parser

import (
	"regexp"
	"strings"
	"unicode"

	"resumefit-go/internal/types"
)

var (
	lineBreakRe = regexp.MustCompile(`\r\n?`)
	spaceRunRe  = regexp.MustCompile(`[ \t\f\v]+`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText cleans raw text extracted from a document adapter: line-break
// variants become a single line feed, Unicode space characters become plain
// spaces, other non-printable characters are dropped, and runs of whitespace
// collapse to a single space within each line.
// Blank-line structure is preserved (runs of blank lines collapse to one)
// because the downstream extractors split entry blocks on it.
//
// NormalizeText is a pure function and idempotent: applying it to its own
// output is a no-op. Empty input yields empty output.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	text = lineBreakRe.ReplaceAllString(text, "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			// no-break spaces from PDF extraction must keep separating
			// words, not vanish with the other non-printables
			b.WriteByte(' ')
		case unicode.IsPrint(r):
			b.WriteRune(r)
		}
	}
	text = spaceRunRe.ReplaceAllString(b.String(), " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// NewDocument pairs a document's raw text with its normalized form.
func NewDocument(raw string) types.Document {
	return types.Document{
		Raw:        raw,
		Normalized: NormalizeText(raw),
	}
}
