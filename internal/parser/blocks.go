package parser

import (
	"regexp"
	"strings"
)

var (
	bulletRe = regexp.MustCompile(`^\s*(?:[-•*▪◦·]|\d+[.)])\s+`)

	// capSpanRe finds capitalized multi-word spans ("Tech University",
	// "University of California"). Lowercase connectives may appear between
	// words but a span always starts and ends on a capitalized word.
	capSpanRe = regexp.MustCompile(`[A-Z][A-Za-z&.'\-]*(?:\s(?:(?:of|the|and|at|for|de)\s)?[A-Z][A-Za-z&.'\-]*)+`)

	yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// isBulletLine reports whether the line starts with a bullet marker.
func isBulletLine(line string) bool {
	return bulletRe.MatchString(line)
}

// stripBullet removes a leading bullet marker, if any.
func stripBullet(line string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
}

// splitBlocks cuts text into candidate entry blocks at blank lines. When
// bulletsSplit is set each bullet line becomes its own block (skill and
// education listings put one entry per bullet); otherwise bullet lines stay
// attached to the block they describe.
func splitBlocks(text string, bulletsSplit bool) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case bulletsSplit && isBulletLine(line):
			flush()
			blocks = append(blocks, stripBullet(line))
		default:
			current = append(current, trimmed)
		}
	}
	flush()
	return blocks
}

// span is a consumed [start,end) byte range inside one block.
type span struct {
	start, end int
}

func spanOverlaps(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}
