package parser

import (
	"strings"
	"unicode"
)

// maxNameTokens caps how many words a candidate name line may carry.
const maxNameTokens = 4

// ExtractName guesses the candidate's name: the first non-empty line of the
// document, accepted only when it has no digits, no '@' and at most four
// tokens, each starting with an upper-case letter. Returns "" when the line
// does not qualify; absence is not an error.
func ExtractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !looksLikeName(line) {
			return ""
		}
		return line
	}
	return ""
}

func looksLikeName(line string) bool {
	if strings.ContainsAny(line, "@0123456789") {
		return false
	}
	tokens := strings.Fields(line)
	if len(tokens) == 0 || len(tokens) > maxNameTokens {
		return false
	}
	for _, token := range tokens {
		r := []rune(token)[0]
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
