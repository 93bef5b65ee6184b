package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumefit-go/internal/types"
)

func newTestSegmenter(t *testing.T) *SectionSegmenter {
	t.Helper()
	segmenter, err := NewSectionSegmenter(DefaultSectionAliases())
	require.NoError(t, err)
	return segmenter
}

func TestSegmentLabelsAndBodies(t *testing.T) {
	text := NormalizeText(`Jane Doe
jane@example.com

EDUCATION
B.S. Computer Science

SKILLS
Python, Go

EXPERIENCE
Software Engineer at Acme`)

	sections := newTestSegmenter(t).Segment(text)
	require.Len(t, sections, 4)

	assert.Equal(t, types.SectionOther, sections[0].Label)
	assert.Contains(t, sections[0].Text, "Jane Doe")

	assert.Equal(t, types.SectionEducation, sections[1].Label)
	assert.Equal(t, "EDUCATION", sections[1].Title)
	assert.Contains(t, sections[1].Text, "B.S. Computer Science")
	assert.NotContains(t, sections[1].Text, "EDUCATION")

	assert.Equal(t, types.SectionSkills, sections[2].Label)
	assert.Equal(t, "Python, Go", sections[2].Text)

	assert.Equal(t, types.SectionExperience, sections[3].Label)
	assert.Equal(t, "Software Engineer at Acme", sections[3].Text)
}

func TestSegmentTotality(t *testing.T) {
	docs := []string{
		"EDUCATION\nB.S.\nSKILLS\nGo",
		"no headers at all\njust text",
		"Jane Doe\n\nEXPERIENCE\nEngineer\n\nEDUCATION",
		"SKILLS",
	}
	segmenter := newTestSegmenter(t)
	for _, doc := range docs {
		text := NormalizeText(doc)
		sections := segmenter.Segment(text)
		require.NotEmpty(t, sections, "doc %q", doc)
		assert.Equal(t, 0, sections[0].Start, "doc %q", doc)
		for i := 1; i < len(sections); i++ {
			assert.Equal(t, sections[i-1].End, sections[i].Start,
				"gap or overlap in doc %q", doc)
		}
		assert.Equal(t, len(text), sections[len(sections)-1].End, "doc %q", doc)
	}
}

func TestSegmentEmptyText(t *testing.T) {
	assert.Nil(t, newTestSegmenter(t).Segment(""))
}

func TestSegmentConsecutiveHeaders(t *testing.T) {
	sections := newTestSegmenter(t).Segment("EDUCATION\nSKILLS\nPython")
	require.Len(t, sections, 2)
	assert.Equal(t, types.SectionEducation, sections[0].Label)
	assert.Equal(t, "", sections[0].Text)
	assert.Equal(t, types.SectionSkills, sections[1].Label)
	assert.Equal(t, "Python", sections[1].Text)
}

func TestSegmentHeaderVariants(t *testing.T) {
	segmenter := newTestSegmenter(t)
	cases := map[string]types.SectionLabel{
		"Work Experience":         types.SectionExperience,
		"PROFESSIONAL EXPERIENCE": types.SectionExperience,
		"Skills:":                 types.SectionSkills,
		"Technical Skills":        types.SectionSkills,
		"Academic Background":     types.SectionEducation,
		"professional summary":    types.SectionSummary,
	}
	for line, want := range cases {
		label, ok := segmenter.matchHeader(line)
		assert.True(t, ok, "line %q", line)
		assert.Equal(t, want, label, "line %q", line)
	}
}

func TestSegmentRejectsLongLines(t *testing.T) {
	segmenter := newTestSegmenter(t)
	_, ok := segmenter.matchHeader("gained experience across several production environments and teams")
	assert.False(t, ok)
}

func TestSegmentLongestAliasWins(t *testing.T) {
	// both labels can claim the line; the longer alias must decide
	segmenter, err := NewSectionSegmenter(map[types.SectionLabel][]string{
		types.SectionSummary: {"competencies"},
		types.SectionSkills:  {"core competencies"},
	})
	require.NoError(t, err)

	label, ok := segmenter.matchHeader("Core Competencies")
	require.True(t, ok)
	assert.Equal(t, types.SectionSkills, label)
}

func TestNewSectionSegmenterRejectsBadTables(t *testing.T) {
	_, err := NewSectionSegmenter(nil)
	assert.Error(t, err)

	_, err = NewSectionSegmenter(map[types.SectionLabel][]string{
		"projects": {"projects"},
	})
	assert.Error(t, err)

	_, err = NewSectionSegmenter(map[types.SectionLabel][]string{
		types.SectionOther: {"misc"},
	})
	assert.Error(t, err)

	_, err = NewSectionSegmenter(map[types.SectionLabel][]string{
		types.SectionSkills: {"  "},
	})
	assert.Error(t, err)
}

func TestSectionText(t *testing.T) {
	sections := newTestSegmenter(t).Segment("EXPERIENCE\nfirst role\nEXPERIENCE\nsecond role")
	assert.Equal(t, "first role\n\nsecond role",
		SectionText(sections, types.SectionExperience))
	assert.Equal(t, "", SectionText(sections, types.SectionEducation))
}
