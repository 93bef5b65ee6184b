package parser

import (
	"fmt"
	"sort"
	"strings"

	"resumefit-go/internal/types"
)

// DefaultSectionAliases is the built-in table of canonical header aliases per
// section label. A line of the document is treated as a section header when
// one of these aliases occurs in it as a whole-word phrase; the longest
// matching alias decides the label. The table is configuration data
// (config key `section_aliases`) and can be replaced wholesale.
func DefaultSectionAliases() map[types.SectionLabel][]string {
	return map[types.SectionLabel][]string{
		types.SectionSummary: {
			"summary", "professional summary", "objective", "profile", "about",
		},
		types.SectionExperience: {
			"experience", "work experience", "professional experience",
			"employment", "employment history", "work history",
		},
		types.SectionEducation: {
			"education", "academic background", "academic qualifications",
			"qualifications",
		},
		types.SectionSkills: {
			"skills", "technical skills", "core competencies", "competencies",
			"expertise",
		},
	}
}

// maxHeaderWords caps how many words a line may have and still be considered
// a section header; longer lines are body text that merely mentions a header
// word.
const maxHeaderWords = 5

type headerAlias struct {
	phrase string // normalized alias
	label  types.SectionLabel
}

// SectionSegmenter splits a normalized document into labeled, non-overlapping
// sections. Segmentation is total: every byte offset of the document belongs
// to exactly one section.
type SectionSegmenter struct {
	aliases []headerAlias // sorted longest phrase first
}

// NewSectionSegmenter builds a segmenter from an alias table. The table must
// be non-empty, every label must be one of the recognized section labels and
// every alias must be a non-empty phrase; a violation is a configuration
// error, reported before any document is segmented.
func NewSectionSegmenter(table map[types.SectionLabel][]string) (*SectionSegmenter, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("section alias table is empty")
	}

	known := map[types.SectionLabel]bool{}
	for _, label := range types.Labels() {
		known[label] = true
	}

	var aliases []headerAlias
	for label, phrases := range table {
		if !known[label] {
			return nil, fmt.Errorf("section alias table references unknown label %q", label)
		}
		if label == types.SectionOther {
			return nil, fmt.Errorf("label %q cannot carry header aliases", label)
		}
		for _, phrase := range phrases {
			normalized := normalizeHeaderLine(phrase)
			if normalized == "" {
				return nil, fmt.Errorf("empty alias for label %q", label)
			}
			aliases = append(aliases, headerAlias{phrase: normalized, label: label})
		}
	}
	if len(aliases) == 0 {
		return nil, fmt.Errorf("section alias table has no aliases")
	}

	// Longest alias first so a line like "PROFESSIONAL EXPERIENCE" resolves
	// via the two-word alias, not the bare "experience".
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i].phrase) != len(aliases[j].phrase) {
			return len(aliases[i].phrase) > len(aliases[j].phrase)
		}
		return aliases[i].phrase < aliases[j].phrase
	})

	return &SectionSegmenter{aliases: aliases}, nil
}

// Segment scans the normalized text line by line and returns the ordered
// list of sections. Text before the first recognized header is labeled
// "other". A matched header line is not part of its own section's text, but
// its offsets belong to the section it introduces, keeping the spans total
// and non-overlapping. Two consecutive headers yield an empty section for
// the first.
func (s *SectionSegmenter) Segment(text string) []types.Section {
	if text == "" {
		return nil
	}

	type header struct {
		label     types.SectionLabel
		title     string
		lineStart int
		bodyStart int
	}

	var headers []header
	offset := 0
	for offset <= len(text) {
		lineEnd := strings.IndexByte(text[offset:], '\n')
		var next int
		if lineEnd < 0 {
			lineEnd = len(text)
			next = len(text) + 1
		} else {
			lineEnd += offset
			next = lineEnd + 1
		}
		line := text[offset:lineEnd]
		if label, ok := s.matchHeader(line); ok {
			headers = append(headers, header{
				label:     label,
				title:     strings.TrimSpace(line),
				lineStart: offset,
				bodyStart: next,
			})
		}
		offset = next
	}

	var sections []types.Section
	if len(headers) == 0 || headers[0].lineStart > 0 {
		end := len(text)
		if len(headers) > 0 {
			end = headers[0].lineStart
		}
		sections = append(sections, types.Section{
			Label: types.SectionOther,
			Start: 0,
			End:   end,
			Text:  strings.TrimSpace(text[:end]),
		})
	}
	for i, h := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1].lineStart
		}
		bodyStart := h.bodyStart
		if bodyStart > end {
			bodyStart = end
		}
		sections = append(sections, types.Section{
			Label: h.label,
			Title: h.title,
			Start: h.lineStart,
			End:   end,
			Text:  strings.TrimSpace(text[bodyStart:end]),
		})
	}
	return sections
}

// matchHeader decides whether a line is a section header and, if so, which
// label it carries. The line is trimmed, case-folded and stripped of a
// trailing colon; every alias occurring in it as a whole-word phrase is a
// candidate and the longest one wins.
func (s *SectionSegmenter) matchHeader(line string) (types.SectionLabel, bool) {
	normalized := normalizeHeaderLine(line)
	if normalized == "" {
		return "", false
	}
	if len(strings.Fields(normalized)) > maxHeaderWords {
		return "", false
	}
	for _, alias := range s.aliases {
		if containsPhrase(normalized, alias.phrase) {
			return alias.label, true
		}
	}
	return "", false
}

func normalizeHeaderLine(line string) string {
	line = strings.TrimSpace(strings.ToLower(line))
	line = strings.TrimSuffix(line, ":")
	return strings.Join(strings.Fields(line), " ")
}

// containsPhrase reports whether phrase occurs in line on word boundaries.
func containsPhrase(line, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(line[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		leftOK := start == 0 || line[start-1] == ' '
		rightOK := end == len(line) || line[end] == ' '
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}

// SectionText concatenates the text of every section carrying the given
// label, in document order. It returns "" when the label never occurs.
func SectionText(sections []types.Section, label types.SectionLabel) string {
	var parts []string
	for _, section := range sections {
		if section.Label == label && section.Text != "" {
			parts = append(parts, section.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}
