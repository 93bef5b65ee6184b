package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumefit-go/internal/config"
	"resumefit-go/internal/parser"
	"resumefit-go/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@email.com | 555-123-4567 | linkedin.com/in/janedoe

EDUCATION
B.S. in Computer Science, Tech University, 2016 - 2020

SKILLS
Python, Java, Machine Learning

EXPERIENCE
Software Engineer, Acme Corp, Jan 2020 - Present
- Built internal tools`

func newTestParser(t *testing.T, opts ...Option) *ResumeParser {
	t.Helper()
	p, err := NewResumeParser(nil, opts...)
	require.NoError(t, err)
	return p
}

func TestParseFullResume(t *testing.T) {
	p := newTestParser(t, WithIDGenerator(func() string { return "fixed-id" }))

	resume, err := p.Parse(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", resume.ResumeID)
	assert.Equal(t, "Jane Doe", resume.Contact.Name)
	assert.Equal(t, "jane.doe@email.com", resume.Contact.Email)
	assert.Equal(t, "555-123-4567", resume.Contact.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", resume.Contact.LinkedIn)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, types.EducationEntry{
		Degree:      "Bachelor of Science",
		Institution: "Tech University",
		Field:       "Computer Science",
		Year:        2020,
	}, resume.Education[0])

	assert.Len(t, resume.Skills, 3)
	for _, name := range []string{"python", "java", "machine learning"} {
		assert.True(t, resume.Skills.Contains(name), "missing skill %q", name)
	}

	require.Len(t, resume.Experience, 1)
	entry := resume.Experience[0]
	assert.Equal(t, "Software Engineer", entry.Title)
	assert.Equal(t, "Acme Corp", entry.Company)
	assert.Equal(t, "Jan 2020", entry.StartDate)
	assert.Equal(t, types.EndDatePresent, entry.EndDate)
	assert.Contains(t, entry.Description, "Built internal tools")
}

func TestParseEmptyInput(t *testing.T) {
	p := newTestParser(t)

	for _, text := range []string{"", "   \n\t\n   "} {
		resume, err := p.Parse(context.Background(), text)
		require.NoError(t, err)
		assert.True(t, resume.IsEmpty())
		assert.NotEmpty(t, resume.ResumeID)
		assert.NotNil(t, resume.Skills)
		assert.NotNil(t, resume.Education)
		assert.NotNil(t, resume.Experience)
	}
}

func TestParseDeterministicApartFromID(t *testing.T) {
	p := newTestParser(t)

	first, err := p.Parse(context.Background(), sampleResume)
	require.NoError(t, err)
	second, err := p.Parse(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.NotEqual(t, first.ResumeID, second.ResumeID)
	first.ResumeID, second.ResumeID = "", ""
	assert.Equal(t, first, second)
}

func TestParseMissingSections(t *testing.T) {
	p := newTestParser(t)

	text := "Jane Doe\njane.doe@email.com\n\nSKILLS\nPython, Go"
	resume, err := p.Parse(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resume.Contact.Name)
	assert.NotEmpty(t, resume.Skills)
	assert.Empty(t, resume.Education)
	assert.Empty(t, resume.Experience)
}

func TestParseEducationFallbackWithoutHeader(t *testing.T) {
	p := newTestParser(t)

	text := "Jane Doe\n\nBachelor of Science in Biology, State University, 2018"
	resume, err := p.Parse(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "Bachelor of Science", resume.Education[0].Degree)
	assert.Equal(t, "State University", resume.Education[0].Institution)
}

func TestParseCancelledContext(t *testing.T) {
	p := newTestParser(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Parse(ctx, sampleResume)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewResumeParserRejectsBadConfiguration(t *testing.T) {
	cases := map[string]func(*config.Config){
		"empty vocabulary": func(c *config.Config) {
			c.Parser.SkillsVocabulary = map[string][]string{}
		},
		"unknown section label": func(c *config.Config) {
			c.Parser.SectionAliases["awards"] = []string{"awards"}
		},
		"bad phone pattern": func(c *config.Config) {
			c.Parser.PhonePatterns = []string{"("}
		},
		"no phone patterns": func(c *config.Config) {
			c.Parser.PhonePatterns = nil
		},
	}
	for label, mutate := range cases {
		cfg := config.Default()
		mutate(cfg)
		_, err := NewResumeParser(cfg)
		require.Error(t, err, label)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), label)
	}
}

func TestParseWithCustomSkillExtractor(t *testing.T) {
	vocab := parser.Vocabulary{"languages": {"cobol"}}
	skills, err := parser.NewSkillExtractor(vocab)
	require.NoError(t, err)

	p := newTestParser(t, WithSkillExtractor(skills))
	resume, err := p.Parse(context.Background(), "Jane Doe\nCOBOL and Python")
	require.NoError(t, err)

	assert.Equal(t, []string{"cobol"}, resume.Skills.Names())
}

func TestParseFilePlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o644))

	p := newTestParser(t)
	resume, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resume.Contact.Name)
}

func TestParseFileMissing(t *testing.T) {
	p := newTestParser(t)
	_, err := p.ParseFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, ErrExtractTextFailed)
}

func TestExtractorForFile(t *testing.T) {
	assert.IsType(t, &parser.PDFTextExtractor{}, ExtractorForFile("cv.PDF"))
	assert.IsType(t, &parser.DOCXTextExtractor{}, ExtractorForFile("cv.docx"))
	assert.IsType(t, &parser.DOCXTextExtractor{}, ExtractorForFile("cv.doc"))
	assert.IsType(t, &parser.PlainTextExtractor{}, ExtractorForFile("cv.txt"))
	assert.IsType(t, &parser.PlainTextExtractor{}, ExtractorForFile("cv"))
}
