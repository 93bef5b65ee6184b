package processor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resumefit-go/internal/config"
	"resumefit-go/internal/logger"
	"resumefit-go/internal/parser"
	"resumefit-go/internal/types"
)

// ResumeParser aggregates the extraction pipeline: normalization, section
// segmentation and the independent contact/skill/education/experience/name
// extractors. A parser is immutable after construction and holds no state
// across documents, so one instance serves concurrent parses.
type ResumeParser struct {
	segmenter  *parser.SectionSegmenter
	contact    *parser.ContactExtractor
	skills     *parser.SkillExtractor
	education  *parser.EducationExtractor
	experience *parser.ExperienceExtractor

	logger zerolog.Logger
	newID  func() string
}

// NewResumeParser validates the configuration and builds the pipeline. Any
// configuration problem is fatal here, before the first document.
func NewResumeParser(cfg *config.Config, opts ...Option) (*ResumeParser, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewConfigurationError(err)
	}

	aliasTable, err := cfg.SectionAliasTable()
	if err != nil {
		return nil, NewConfigurationError(err)
	}
	segmenter, err := parser.NewSectionSegmenter(aliasTable)
	if err != nil {
		return nil, NewConfigurationError(err)
	}
	contact, err := parser.NewContactExtractor(cfg.Parser.PhonePatterns)
	if err != nil {
		return nil, NewConfigurationError(err)
	}
	skills, err := parser.NewSkillExtractor(parser.Vocabulary(cfg.Parser.SkillsVocabulary))
	if err != nil {
		return nil, NewConfigurationError(err)
	}

	p := &ResumeParser{
		segmenter:  segmenter,
		contact:    contact,
		skills:     skills,
		education:  parser.NewEducationExtractor(),
		experience: parser.NewExperienceExtractor(),
		logger:     logger.Logger.With().Str("component", "resume_parser").Logger(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Parse runs the whole pipeline over one document's raw text. Extraction is
// best effort: a field or an entire category may come back empty without
// that being a failure, and an empty document yields an empty resume, not
// an error. Given identical input and configuration the output is identical
// apart from the generated resume ID.
func (p *ResumeParser) Parse(ctx context.Context, rawText string) (*types.ParsedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	resume := &types.ParsedResume{
		ResumeID:   p.newID(),
		Skills:     types.SkillSet{},
		Education:  []types.EducationEntry{},
		Experience: []types.ExperienceEntry{},
	}

	doc := parser.NewDocument(rawText)
	if doc.Normalized == "" {
		p.logger.Debug().Msg("empty document after normalization")
		return resume, nil
	}

	sections := p.segmenter.Segment(doc.Normalized)

	resume.Contact = p.contact.Extract(doc.Normalized)
	resume.Contact.Name = parser.ExtractName(doc.Normalized)

	// Skills are not section-gated: resumes restate them in experience
	// bullets, and dedup keeps repeats harmless.
	resume.Skills = p.skills.Extract(doc.Normalized)

	educationText := parser.SectionText(sections, types.SectionEducation)
	if educationText != "" {
		resume.Education = p.education.Extract(educationText)
	} else {
		resume.Education = p.education.ExtractFromDocument(doc.Normalized)
	}

	experienceText := parser.SectionText(sections, types.SectionExperience)
	if experienceText != "" {
		resume.Experience = p.experience.Extract(experienceText)
	}

	// Keep the entry lists non-nil so serialized output always carries
	// empty arrays instead of nulls.
	if resume.Education == nil {
		resume.Education = []types.EducationEntry{}
	}
	if resume.Experience == nil {
		resume.Experience = []types.ExperienceEntry{}
	}

	p.logger.Debug().
		Str("resume_id", resume.ResumeID).
		Int("sections", len(sections)).
		Int("skills", len(resume.Skills)).
		Int("education", len(resume.Education)).
		Int("experience", len(resume.Experience)).
		Dur("elapsed", time.Since(start)).
		Msg("parsed resume")
	return resume, nil
}

// ParseFile extracts a document's text through the adapter matching its
// extension and parses it.
func (p *ResumeParser) ParseFile(ctx context.Context, filePath string) (*types.ParsedResume, error) {
	text, err := ExtractorForFile(filePath).ExtractFromFile(ctx, filePath)
	if err != nil {
		return nil, NewExtractError(filePath, err)
	}
	return p.Parse(ctx, text)
}
