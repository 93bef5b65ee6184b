package parser

import (
	"fmt"
	"regexp"

	"resumefit-go/internal/types"
)

// minPhoneDigits is the floor below which a phone-shaped match is rejected.
const minPhoneDigits = 7

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/(?:in|profile)/[A-Za-z0-9_\-]+`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_\-]+`)
	digitRe    = regexp.MustCompile(`\d`)
)

// DefaultPhonePatterns is the built-in ordered list of phone pattern rules.
// The first rule whose match carries at least minPhoneDigits digits wins, so
// more specific shapes come first. The list is configuration data (config
// key `phone_patterns`).
func DefaultPhonePatterns() []string {
	return []string{
		// with country code: +1-555-123-4567, +44 20 7946 0958
		`\+\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`,
		// domestic: (555) 123-4567, 555.123.4567, 555-123-4567
		`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`,
	}
}

// ContactExtractor recognizes email, phone and profile-URL fields anywhere in
// a document. Contact data routinely sits in a header block outside any
// labeled section, so extraction is never section-scoped. Each field is
// extracted independently; missing fields are left empty, never reported as
// errors.
type ContactExtractor struct {
	phoneRules []*regexp.Regexp
}

// NewContactExtractor compiles the given ordered phone patterns. An empty
// list or a pattern that does not compile is a configuration error.
func NewContactExtractor(phonePatterns []string) (*ContactExtractor, error) {
	if len(phonePatterns) == 0 {
		return nil, fmt.Errorf("phone pattern list is empty")
	}
	rules := make([]*regexp.Regexp, 0, len(phonePatterns))
	for _, pattern := range phonePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("phone pattern %q: %w", pattern, err)
		}
		rules = append(rules, re)
	}
	return &ContactExtractor{phoneRules: rules}, nil
}

// Extract scans the whole normalized document and returns whatever contact
// fields it finds. The Name field is left for the name heuristic upstream.
func (e *ContactExtractor) Extract(text string) types.ContactInfo {
	return types.ContactInfo{
		Email:    emailRe.FindString(text),
		Phone:    e.findPhone(text),
		LinkedIn: linkedinRe.FindString(text),
		GitHub:   githubRe.FindString(text),
	}
}

// findPhone applies the phone rules in order and returns the first match
// with enough digits. Shape-only validation; no deliverability checks.
func (e *ContactExtractor) findPhone(text string) string {
	for _, rule := range e.phoneRules {
		for _, match := range rule.FindAllString(text, -1) {
			if len(digitRe.FindAllString(match, -1)) >= minPhoneDigits {
				return match
			}
		}
	}
	return ""
}
