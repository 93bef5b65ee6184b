package parser

import (
	"regexp"
	"strings"

	"resumefit-go/internal/types"
)

var (
	// dateRangeRe matches "<Month> <Year> - <Month> <Year>|Present" ranges,
	// with bare years and hyphen/en-dash/em-dash/"to" separators also
	// accepted.
	dateRangeRe = regexp.MustCompile(`(?i)((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|(?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|(?:19|20)\d{2}|present|current)`)

	monthYearRe = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}`)

	titleKeywordRe = regexp.MustCompile(`(?i)\b(?:engineer|developer|programmer|manager|director|analyst|scientist|designer|architect|consultant|specialist|lead|intern|coordinator|administrator)\b`)

	segmentSepRe = regexp.MustCompile(`\s*(?:,|\||•| at | @ |—)\s*`)
)

// ExperienceExtractor parses the experience section into ordered
// title/company/date-range/description entries.
type ExperienceExtractor struct{}

// NewExperienceExtractor returns an experience extractor.
func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{}
}

// Extract parses the text of an experience section. Candidate entry blocks
// are cut at blank lines and, once the running block owns a date range, at
// the next dated or titled line; bullet lines stay attached to their block
// and end up in the description. A block with neither a title nor a date
// range yields no entry.
func (e *ExperienceExtractor) Extract(section string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, block := range e.splitEntryBlocks(section) {
		entry, ok := e.parseBlock(block)
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (e *ExperienceExtractor) splitEntryBlocks(section string) [][]string {
	var blocks [][]string
	var current []string
	haveRange := false

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
		haveRange = false
	}

	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if !isBulletLine(line) {
			isRange := dateRangeRe.MatchString(trimmed)
			// once a block owns a date range, the next dated or titled
			// line opens the following entry
			if haveRange && (isRange || titleKeywordRe.MatchString(trimmed)) {
				flush()
			}
			if isRange {
				haveRange = true
			}
		}
		current = append(current, trimmed)
	}
	flush()
	return blocks
}

func (e *ExperienceExtractor) parseBlock(lines []string) (types.ExperienceEntry, bool) {
	var entry types.ExperienceEntry
	used := make([]bool, len(lines)) // line consumed by title/company/date

	titleLine := -1
	for i, line := range lines {
		if isBulletLine(line) {
			continue
		}
		if m := dateRangeRe.FindStringSubmatch(line); m != nil && entry.StartDate == "" {
			entry.StartDate = strings.TrimSpace(m[1])
			entry.EndDate = normalizeEndDate(m[2])
			if strings.TrimSpace(dateRangeRe.ReplaceAllString(line, "")) == "" {
				used[i] = true
			}
		}
		if titleLine < 0 {
			if title := extractTitle(line); title != "" {
				entry.Title = title
				titleLine = i
				used[i] = true
			}
		}
	}

	if entry.Title == "" && entry.StartDate == "" {
		return types.ExperienceEntry{}, false
	}

	if titleLine >= 0 {
		entry.Company = findCompany(lines, titleLine, entry.Title)
		if entry.Company != "" {
			for i, line := range lines {
				if !isBulletLine(line) && strings.Contains(line, entry.Company) {
					used[i] = true
				}
			}
		}
	}

	var description []string
	for i, line := range lines {
		if used[i] {
			continue
		}
		if isBulletLine(line) {
			description = append(description, stripBullet(line))
			continue
		}
		if dateRangeRe.MatchString(line) && strings.TrimSpace(dateRangeRe.ReplaceAllString(line, "")) == "" {
			continue
		}
		description = append(description, line)
	}
	entry.Description = strings.Join(description, " ")

	return entry, true
}

// normalizeEndDate folds the "Present"/"Current" spellings into the
// canonical sentinel; anything else passes through as written.
func normalizeEndDate(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "present", "current":
		return types.EndDatePresent
	default:
		return strings.TrimSpace(raw)
	}
}

// extractTitle pulls a job title from a line: the comma/pipe-delimited
// segment containing a title keyword, narrowed to the run of capitalized
// words around the keyword.
func extractTitle(line string) string {
	for _, segment := range splitSegments(line) {
		loc := titleKeywordRe.FindStringIndex(segment)
		if loc == nil {
			continue
		}
		if title := capitalizedRun(segment, loc[0]); title != "" {
			return title
		}
	}
	return ""
}

// findCompany looks for a capitalized span adjacent to the title: first the
// remaining segments of the title line, then the neighbouring non-bullet
// lines. Date-shaped segments and the title span itself never qualify.
func findCompany(lines []string, titleLine int, title string) string {
	if company := companyInSegments(lines[titleLine], title); company != "" {
		return company
	}
	for _, i := range []int{titleLine - 1, titleLine + 1} {
		if i < 0 || i >= len(lines) || isBulletLine(lines[i]) {
			continue
		}
		if company := companyInSegments(lines[i], title); company != "" {
			return company
		}
	}
	return ""
}

func companyInSegments(line, title string) string {
	for _, segment := range splitSegments(line) {
		if segment == "" || strings.Contains(segment, title) {
			continue
		}
		if dateRangeRe.MatchString(segment) || monthYearRe.MatchString(segment) || yearRe.MatchString(segment) {
			continue
		}
		if titleKeywordRe.MatchString(segment) {
			continue
		}
		if span := capSpanRe.FindString(segment); span != "" && span == strings.TrimSpace(segment) {
			return span
		}
	}
	return ""
}

// splitSegments cuts a line at the separators resumes use between title,
// company and dates.
func splitSegments(line string) []string {
	parts := segmentSepRe.Split(line, -1)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// capitalizedRun expands from the keyword at pos to the surrounding run of
// capitalized words within the segment.
func capitalizedRun(segment string, pos int) string {
	words := strings.Fields(segment)
	if len(words) == 0 {
		return ""
	}

	// locate the word containing pos
	offset := 0
	keyword := -1
	for i, word := range words {
		idx := strings.Index(segment[offset:], word)
		start := offset + idx
		if pos >= start && pos < start+len(word) {
			keyword = i
			break
		}
		offset = start + len(word)
	}
	if keyword < 0 {
		return ""
	}

	isCap := func(w string) bool {
		c := w[0]
		return c >= 'A' && c <= 'Z'
	}
	if !isCap(words[keyword]) {
		return ""
	}
	start := keyword
	for start > 0 && isCap(words[start-1]) {
		start--
	}
	end := keyword
	for end+1 < len(words) && isCap(words[end+1]) {
		end++
	}
	return strings.Join(words[start:end+1], " ")
}
