package processor

import (
	"github.com/rs/zerolog"

	"resumefit-go/internal/parser"
)

// Option adjusts a ResumeParser at construction time.
type Option func(*ResumeParser)

// WithLogger sets the pipeline logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *ResumeParser) {
		p.logger = l
	}
}

// WithIDGenerator replaces the resume-ID generator, mainly so tests can pin
// deterministic IDs.
func WithIDGenerator(newID func() string) Option {
	return func(p *ResumeParser) {
		if newID != nil {
			p.newID = newID
		}
	}
}

// WithSkillExtractor swaps in a pre-built skill extractor, e.g. one built
// from a test-scoped vocabulary.
func WithSkillExtractor(extractor *parser.SkillExtractor) Option {
	return func(p *ResumeParser) {
		if extractor != nil {
			p.skills = extractor
		}
	}
}

// WithSectionSegmenter swaps in a pre-built segmenter.
func WithSectionSegmenter(segmenter *parser.SectionSegmenter) Option {
	return func(p *ResumeParser) {
		if segmenter != nil {
			p.segmenter = segmenter
		}
	}
}
