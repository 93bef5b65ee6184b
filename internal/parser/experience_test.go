package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumefit-go/internal/types"
)

func TestExperienceSingleLineEntry(t *testing.T) {
	entries := NewExperienceExtractor().Extract(
		"Software Engineer, Acme Corp, Jan 2020 - Present\n- Built internal tools")
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Software Engineer", entry.Title)
	assert.Equal(t, "Acme Corp", entry.Company)
	assert.Equal(t, "Jan 2020", entry.StartDate)
	assert.Equal(t, types.EndDatePresent, entry.EndDate)
	assert.Contains(t, entry.Description, "Built internal tools")
}

func TestExperiencePresentNormalization(t *testing.T) {
	cases := []string{
		"Jan 2020 – Present",
		"Jan 2020 - PRESENT",
		"Jan 2020 to current",
	}
	extractor := NewExperienceExtractor()
	for _, dates := range cases {
		entries := extractor.Extract("Software Engineer\n" + dates)
		require.Len(t, entries, 1, "dates %q", dates)
		assert.Equal(t, "Jan 2020", entries[0].StartDate, "dates %q", dates)
		assert.Equal(t, types.EndDatePresent, entries[0].EndDate, "dates %q", dates)
	}
}

func TestExperienceClosedRange(t *testing.T) {
	entries := NewExperienceExtractor().Extract("Data Analyst\nJun 2018 - Dec 2019")
	require.Len(t, entries, 1)
	assert.Equal(t, "Jun 2018", entries[0].StartDate)
	assert.Equal(t, "Dec 2019", entries[0].EndDate)
}

func TestExperienceYearOnlyRange(t *testing.T) {
	entries := NewExperienceExtractor().Extract("Consultant\n2018 to 2020")
	require.Len(t, entries, 1)
	assert.Equal(t, "2018", entries[0].StartDate)
	assert.Equal(t, "2020", entries[0].EndDate)
}

func TestExperienceMultiLineEntries(t *testing.T) {
	section := `Senior Software Engineer
Tech Company Inc.
Jan 2020 - Present
- Led development of cloud-based applications
- Managed team of 5 developers

Software Engineer
StartUp Corp
Jun 2018 - Dec 2019
- Developed RESTful APIs`

	entries := NewExperienceExtractor().Extract(section)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Senior Software Engineer", first.Title)
	assert.Equal(t, "Tech Company Inc.", first.Company)
	assert.Equal(t, "Jan 2020", first.StartDate)
	assert.Equal(t, types.EndDatePresent, first.EndDate)
	assert.Contains(t, first.Description, "Led development of cloud-based applications")
	assert.Contains(t, first.Description, "Managed team of 5 developers")

	second := entries[1]
	assert.Equal(t, "Software Engineer", second.Title)
	assert.Equal(t, "StartUp Corp", second.Company)
	assert.Equal(t, "Jun 2018", second.StartDate)
	assert.Equal(t, "Dec 2019", second.EndDate)
}

func TestExperienceSplitsOnSecondDateRange(t *testing.T) {
	// no blank line between entries; the second date-range line starts a
	// new block
	section := "Engineer at Acme\nJan 2019 - Dec 2019\nManager at Beta Industries\nJan 2020 - Dec 2020"
	entries := NewExperienceExtractor().Extract(section)
	require.Len(t, entries, 2)
	assert.Equal(t, "Engineer", entries[0].Title)
	assert.Equal(t, "Manager", entries[1].Title)
	assert.Equal(t, "Beta Industries", entries[1].Company)
}

func TestExperienceDescriptionKeepsOrder(t *testing.T) {
	entries := NewExperienceExtractor().Extract(
		"Developer\n- first task\n- second task\n- third task")
	require.Len(t, entries, 1)
	assert.Equal(t, "first task second task third task", entries[0].Description)
}

func TestExperienceBlockWithoutTitleOrDateDropped(t *testing.T) {
	entries := NewExperienceExtractor().Extract("did various things\nhelped a lot")
	assert.Empty(t, entries)
}

func TestExperienceDateOnlyBlockKept(t *testing.T) {
	entries := NewExperienceExtractor().Extract("Self employed woodworking\nMar 2015 - Mar 2016")
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Title)
	assert.Equal(t, "Mar 2015", entries[0].StartDate)
	assert.Equal(t, "Mar 2016", entries[0].EndDate)
}
