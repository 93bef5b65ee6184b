package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resumefit-go/internal/logger"
	"resumefit-go/internal/types"
)

var titleCaser = cases.Title(language.English)

// Exporter writes parsed resumes to disk as JSON or sectioned CSV files.
type Exporter struct {
	outputDir string
}

// New returns an exporter writing into outputDir, creating it on demand.
func New(outputDir string) *Exporter {
	return &Exporter{outputDir: outputDir}
}

// baseName derives a file stem from the candidate name and a timestamp, so
// repeated exports never clobber each other.
func (e *Exporter) baseName(resume *types.ParsedResume) string {
	name := resume.Contact.Name
	if name == "" {
		name = "resume"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%s_%s", name, time.Now().Format("20060102_150405"))
}

// ExportJSON writes the resume's nested mapping as indented JSON and
// returns the file path. An empty filename derives one from the candidate
// name.
func (e *Exporter) ExportJSON(resume *types.ParsedResume, filename string) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir %s: %w", e.outputDir, err)
	}
	if filename == "" {
		filename = e.baseName(resume) + ".json"
	}
	path := filepath.Join(e.outputDir, filename)

	data, err := json.MarshalIndent(resume.AsMap(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resume: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Info().Str("path", path).Msg("exported resume to JSON")
	return path, nil
}

// ExportCSV writes the resume as separate CSV files: a main file with
// contact and skills, plus education and experience files when those entry
// lists are non-empty. It returns the main file's path. An empty base
// derives one from the candidate name.
func (e *Exporter) ExportCSV(resume *types.ParsedResume, base string) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir %s: %w", e.outputDir, err)
	}
	if base == "" {
		base = e.baseName(resume)
	}

	mainPath := filepath.Join(e.outputDir, base+"_main.csv")
	mainRows := [][]string{
		{"Name", "Email", "Phone", "LinkedIn", "GitHub", "Skills"},
		{
			resume.Contact.Name,
			resume.Contact.Email,
			resume.Contact.Phone,
			resume.Contact.LinkedIn,
			resume.Contact.GitHub,
			strings.Join(displaySkills(resume.Skills), ", "),
		},
	}
	if err := writeCSV(mainPath, mainRows); err != nil {
		return "", err
	}

	if len(resume.Education) > 0 {
		rows := [][]string{{"Degree", "Institution", "Field", "Year"}}
		for _, entry := range resume.Education {
			year := ""
			if entry.Year != 0 {
				year = strconv.Itoa(entry.Year)
			}
			rows = append(rows, []string{entry.Degree, entry.Institution, entry.Field, year})
		}
		if err := writeCSV(filepath.Join(e.outputDir, base+"_education.csv"), rows); err != nil {
			return "", err
		}
	}

	if len(resume.Experience) > 0 {
		rows := [][]string{{"Title", "Company", "Start Date", "End Date", "Description"}}
		for _, entry := range resume.Experience {
			rows = append(rows, []string{
				entry.Title, entry.Company, entry.StartDate, entry.EndDate, entry.Description,
			})
		}
		if err := writeCSV(filepath.Join(e.outputDir, base+"_experience.csv"), rows); err != nil {
			return "", err
		}
	}

	logger.Info().Str("path", mainPath).Msg("exported resume to CSV")
	return mainPath, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// displaySkills renders canonical skill names in title case for humans;
// the canonical lower-cased form stays the machine key.
func displaySkills(skills types.SkillSet) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		out = append(out, titleCaser.String(skill.Name))
	}
	return out
}

// FormatForDisplay renders the resume as a readable plain-text report.
func FormatForDisplay(resume *types.ParsedResume) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	b.WriteString(rule + "\n")
	b.WriteString("RESUME ANALYSIS RESULTS\n")
	b.WriteString(rule + "\n\n")

	if resume.Contact.Name != "" {
		fmt.Fprintf(&b, "NAME: %s\n\n", resume.Contact.Name)
	}

	hasDetails := resume.Contact.Email != "" || resume.Contact.Phone != "" ||
		resume.Contact.LinkedIn != "" || resume.Contact.GitHub != ""
	if hasDetails {
		b.WriteString("CONTACT INFORMATION:\n")
		writeField(&b, "Email", resume.Contact.Email)
		writeField(&b, "Phone", resume.Contact.Phone)
		writeField(&b, "LinkedIn", resume.Contact.LinkedIn)
		writeField(&b, "GitHub", resume.Contact.GitHub)
		b.WriteString("\n")
	}

	if len(resume.Skills) > 0 {
		fmt.Fprintf(&b, "SKILLS (%d found):\n", len(resume.Skills))
		for _, skill := range displaySkills(resume.Skills) {
			fmt.Fprintf(&b, "  - %s\n", skill)
		}
		b.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		fmt.Fprintf(&b, "EDUCATION (%d entries):\n", len(resume.Education))
		for i, entry := range resume.Education {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, orNA(entry.Degree))
			writeField(&b, "   Institution", entry.Institution)
			writeField(&b, "   Field", entry.Field)
			if entry.Year != 0 {
				fmt.Fprintf(&b, "     Year: %d\n", entry.Year)
			}
		}
		b.WriteString("\n")
	}

	if len(resume.Experience) > 0 {
		fmt.Fprintf(&b, "WORK EXPERIENCE (%d entries):\n", len(resume.Experience))
		for i, entry := range resume.Experience {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, orNA(entry.Title))
			writeField(&b, "   Company", entry.Company)
			if entry.StartDate != "" && entry.EndDate != "" {
				fmt.Fprintf(&b, "     Duration: %s - %s\n", entry.StartDate, entry.EndDate)
			}
			writeField(&b, "   Description", truncate(entry.Description, 200))
		}
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "  %s: %s\n", label, value)
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Stats summarizes a parsed resume.
type Stats struct {
	TotalSkills     int  `json:"total_skills"`
	EducationCount  int  `json:"education_count"`
	ExperienceCount int  `json:"experience_count"`
	HasContactInfo  bool `json:"has_contact_info"`
	HasName         bool `json:"has_name"`
}

// SummaryStats computes summary statistics for a parsed resume.
func SummaryStats(resume *types.ParsedResume) Stats {
	return Stats{
		TotalSkills:     len(resume.Skills),
		EducationCount:  len(resume.Education),
		ExperienceCount: len(resume.Experience),
		HasContactInfo:  resume.Contact != (types.ContactInfo{}),
		HasName:         resume.Contact.Name != "",
	}
}
