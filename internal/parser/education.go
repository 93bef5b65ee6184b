package parser

import (
	"regexp"
	"strconv"
	"strings"

	"resumefit-go/internal/types"
)

// degreeRule maps one degree spelling family to its canonical name. Rules
// are an ordered cascade: the first rule matching a block wins, so specific
// spellings ("Master of Science") must precede generic ones ("Master's").
// Two-letter abbreviations must be dotted and upper-case, so that plain
// words ("as", "ma") and state codes ("MA") never read as degrees.
type degreeRule struct {
	canonical string
	re        *regexp.Regexp
}

func defaultDegreeRules() []degreeRule {
	return []degreeRule{
		{"Doctor of Philosophy", regexp.MustCompile(`(?i)\b(?:doctor of philosophy|ph\.?\s?d\b\.?|doctorate)`)},
		{"Master of Business Administration", regexp.MustCompile(`(?i)\b(?:master(?:'s)? of business administration|m\.?b\.?a\b\.?)`)},
		{"Master of Science", regexp.MustCompile(`(?i:\bmaster(?:'s)? of science)|\bMSc\b|\bM\.\s?Sc?\b\.?`)},
		{"Master of Arts", regexp.MustCompile(`(?i:\bmaster(?:'s)? of arts)|\bM\.A\b\.?`)},
		{"Master's", regexp.MustCompile(`(?i)\bmaster(?:'s)?(?:\s+degree)?`)},
		{"Bachelor of Technology", regexp.MustCompile(`(?i)\b(?:bachelor(?:'s)? of technology|b\.?\s?tech\b\.?)`)},
		{"Bachelor of Science", regexp.MustCompile(`(?i:\bbachelor(?:'s)? of science)|\bBSc\b|\bB\.\s?Sc?\b\.?`)},
		{"Bachelor of Arts", regexp.MustCompile(`(?i:\bbachelor(?:'s)? of arts)|\bB\.A\b\.?`)},
		{"Bachelor's", regexp.MustCompile(`(?i)\bbachelor(?:'s)?(?:\s+degree)?`)},
		{"Associate", regexp.MustCompile(`(?i:\bassociate(?:'s)?(?:\s+degree)?)|\bA\.S\b\.?|\bA\.A\b\.?`)},
	}
}

// EducationExtractor parses the education section into ordered
// degree/institution/field/year entries.
type EducationExtractor struct {
	rules []degreeRule
}

// NewEducationExtractor builds an extractor with the default degree cascade.
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{rules: defaultDegreeRules()}
}

// Extract parses the text of an education section. Blocks are cut at blank
// lines and bullet markers; a block matching no degree, year or institution
// pattern yields no entry. Entries keep their order of discovery.
func (e *EducationExtractor) Extract(section string) []types.EducationEntry {
	return e.extract(section, false)
}

// ExtractFromDocument is the fallback scan for resumes without an explicit
// education header. Scanning the whole document this loosely would turn any
// capitalized span into an institution, so here a block must match a degree
// pattern to yield an entry.
func (e *EducationExtractor) ExtractFromDocument(text string) []types.EducationEntry {
	return e.extract(text, true)
}

func (e *EducationExtractor) extract(text string, requireDegree bool) []types.EducationEntry {
	var entries []types.EducationEntry
	for _, block := range splitBlocks(text, true) {
		entry, ok := e.parseBlock(block, requireDegree)
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseBlock applies the field cascades in order: degree (with optional
// field-of-study suffix), year, then institution over whatever the first two
// did not consume.
func (e *EducationExtractor) parseBlock(block string, requireDegree bool) (types.EducationEntry, bool) {
	var entry types.EducationEntry
	var consumed []span

	for _, rule := range e.rules {
		loc := rule.re.FindStringIndex(block)
		if loc == nil {
			continue
		}
		entry.Degree = rule.canonical
		consumed = append(consumed, span{loc[0], loc[1]})
		if field, fieldSpan, ok := fieldOfStudy(block, loc[1]); ok {
			entry.Field = field
			consumed = append(consumed, fieldSpan)
		}
		break
	}
	if requireDegree && entry.Degree == "" {
		return types.EducationEntry{}, false
	}

	// Prefer the last year in the block: in a "2015 - 2019" range that is
	// the graduation year, not the enrollment year.
	yearLocs := yearRe.FindAllStringIndex(block, -1)
	if len(yearLocs) > 0 {
		last := yearLocs[len(yearLocs)-1]
		year, err := strconv.Atoi(block[last[0]:last[1]])
		if err == nil {
			entry.Year = year
		}
		for _, loc := range yearLocs {
			consumed = append(consumed, span{loc[0], loc[1]})
		}
	}

	entry.Institution = longestUnconsumedSpan(block, consumed)

	if entry.Degree == "" && entry.Year == 0 && entry.Institution == "" {
		return types.EducationEntry{}, false
	}
	return entry, true
}

// fieldOfStudy reads an optional field-of-study suffix right after a degree
// match: the rest of the line up to the first comma, minus a leading "in"
// or "of". The suffix counts only when it looks like a titled phrase of at
// most five words.
func fieldOfStudy(block string, from int) (string, span, bool) {
	end := strings.IndexByte(block[from:], '\n')
	if end < 0 {
		end = len(block)
	} else {
		end += from
	}
	line := block[from:end]
	if comma := strings.IndexByte(line, ','); comma >= 0 {
		end = from + comma
		line = line[:comma]
	}

	trimmed := strings.TrimLeft(line, " .")
	start := from + len(line) - len(trimmed)
	for _, connective := range []string{"in ", "of "} {
		if strings.HasPrefix(strings.ToLower(trimmed), connective) {
			trimmed = strings.TrimLeft(trimmed[len(connective):], " ")
			start = from + len(line) - len(trimmed)
			break
		}
	}
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return "", span{}, false
	}

	words := strings.Fields(trimmed)
	if len(words) > 5 {
		return "", span{}, false
	}
	first := words[0][0]
	if first < 'A' || first > 'Z' {
		return "", span{}, false
	}
	return trimmed, span{start, start + len(trimmed)}, true
}

// longestUnconsumedSpan returns the longest capitalized multi-word span of
// the block that does not overlap anything the degree and year cascades
// already claimed.
func longestUnconsumedSpan(block string, consumed []span) string {
	best := ""
	for _, loc := range capSpanRe.FindAllStringIndex(block, -1) {
		if spanOverlaps(consumed, loc[0], loc[1]) {
			continue
		}
		candidate := block[loc[0]:loc[1]]
		if len(candidate) > len(best) {
			best = candidate
		}
	}
	return best
}
