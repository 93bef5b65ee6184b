package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resumefit-go/internal/types"
)

// skillRule is one compiled vocabulary entry. Rules are applied longest name
// first so that a document span claimed by a longer name ("javascript") is
// never re-counted for a shorter one ("java") occupying part of it.
type skillRule struct {
	name     string // canonical name, lower case
	category string
	re       *regexp.Regexp
}

// SkillExtractor matches document text against a categorized vocabulary.
// A skill counts as present when its name occurs as a whole-word,
// case-insensitive phrase anywhere in the document; skills restated outside
// the Skills section match identically. Results are deduplicated by
// lower-cased name, with the category taken from the vocabulary.
type SkillExtractor struct {
	rules []skillRule
}

// NewSkillExtractor compiles the vocabulary into an ordered rule list.
// Vocabulary violations surface here, before any document is parsed.
func NewSkillExtractor(vocabulary Vocabulary) (*SkillExtractor, error) {
	if err := vocabulary.Validate(); err != nil {
		return nil, err
	}

	var rules []skillRule
	for category, names := range vocabulary {
		for _, name := range names {
			canonical := strings.ToLower(strings.TrimSpace(name))
			re, err := compileSkillPattern(canonical)
			if err != nil {
				return nil, fmt.Errorf("skill %q: %w", canonical, err)
			}
			rules = append(rules, skillRule{name: canonical, category: category, re: re})
		}
	}

	// Longest canonical name first; ties broken alphabetically to keep the
	// cascade deterministic.
	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].name) != len(rules[j].name) {
			return len(rules[i].name) > len(rules[j].name)
		}
		return rules[i].name < rules[j].name
	})

	return &SkillExtractor{rules: rules}, nil
}

// compileSkillPattern builds the body pattern for one canonical name.
// Word boundaries are checked separately against the surrounding characters,
// because \b cannot cope with names like "c++", "c#" or "node.js".
// Whitespace inside a multi-word name matches any whitespace run, so
// "machine learning" still matches across a line break, but only as the
// exact word sequence.
func compileSkillPattern(name string) (*regexp.Regexp, error) {
	words := strings.Fields(name)
	quoted := make([]string, 0, len(words))
	for _, word := range words {
		quoted = append(quoted, regexp.QuoteMeta(word))
	}
	return regexp.Compile(`(?i)` + strings.Join(quoted, `\s+`))
}

// isSkillWordChar reports whether c extends a skill token. '+' and '#'
// count so that "c" never fires inside "c++" or "c#".
func isSkillWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '+' || c == '#'
}

// Extract returns the set of vocabulary skills present in the document,
// ordered by name. Every occurrence claimed by a rule is marked consumed so
// no shorter rule can match inside it; deduplication keys on the canonical
// name, so a skill repeated across sections appears exactly once.
func (e *SkillExtractor) Extract(text string) types.SkillSet {
	var consumed [][2]int
	found := map[string]types.Skill{}

	for _, rule := range e.rules {
		for _, loc := range rule.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if start > 0 && isSkillWordChar(text[start-1]) {
				continue
			}
			if end < len(text) && isSkillWordChar(text[end]) {
				continue
			}
			if overlapsAny(consumed, start, end) {
				continue
			}
			consumed = append(consumed, [2]int{start, end})
			if _, ok := found[rule.name]; !ok {
				found[rule.name] = types.Skill{Name: rule.name, Category: rule.category}
			}
		}
	}

	set := make(types.SkillSet, 0, len(found))
	for _, skill := range found {
		set = append(set, skill)
	}
	sort.Slice(set, func(i, j int) bool { return set[i].Name < set[j].Name })
	return set
}

func overlapsAny(spans [][2]int, start, end int) bool {
	for _, span := range spans {
		if start < span[1] && span[0] < end {
			return true
		}
	}
	return false
}
