package types

import "strings"

// SectionLabel identifies the kind of resume section a span of text belongs to.
type SectionLabel string

const (
	// SectionSummary covers summary/objective/profile blocks.
	SectionSummary SectionLabel = "summary"
	// SectionExperience covers work-history blocks.
	SectionExperience SectionLabel = "experience"
	// SectionEducation covers academic-background blocks.
	SectionEducation SectionLabel = "education"
	// SectionSkills covers skill listings.
	SectionSkills SectionLabel = "skills"
	// SectionOther covers text outside any recognized header, including the
	// leading contact block.
	SectionOther SectionLabel = "other"
)

// Labels lists every recognized section label.
func Labels() []SectionLabel {
	return []SectionLabel{
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionOther,
	}
}

// Document holds a resume's text in its raw and normalized forms. It is
// immutable once produced.
type Document struct {
	Raw        string
	Normalized string
}

// Section is a labeled, non-overlapping span of normalized text.
// Start and End are byte offsets into the normalized document; End is the
// start of the next recognized header or the end of the document. Text does
// not include the header line that introduced the section.
type Section struct {
	Label SectionLabel
	Title string // header line as written, empty for the leading span
	Start int
	End   int
	Text  string
}

// ContactInfo carries the contact fields recognized in a resume. Every field
// is independently optional; an empty string means the field was not found.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Skill is one matched vocabulary entry. Name is the canonical skill name as
// listed in the vocabulary; Category comes from the vocabulary, never from
// inference.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SkillSet is an ordered collection of skills, unique by lower-cased name.
type SkillSet []Skill

// Names returns the canonical skill names in set order.
func (s SkillSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, skill := range s {
		names = append(names, skill.Name)
	}
	return names
}

// Contains reports whether the set holds the given skill name, compared
// case-insensitively against canonical names.
func (s SkillSet) Contains(name string) bool {
	for _, skill := range s {
		if strings.EqualFold(skill.Name, name) {
			return true
		}
	}
	return false
}

// EducationEntry is one degree/institution/field/year tuple. Year is the
// graduation year; zero means no year was found.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Field       string `json:"field,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// EndDatePresent is the normalized end-date value for ongoing employment.
const EndDatePresent = "present"

// ExperienceEntry is one title/company/date-range/description tuple. EndDate
// is EndDatePresent for ongoing roles.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// ParsedResume is the aggregate produced once per document. Education and
// experience entries keep their order of discovery in the document.
type ParsedResume struct {
	ResumeID   string            `json:"resume_id,omitempty"`
	Contact    ContactInfo       `json:"contact"`
	Skills     SkillSet          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
}

// IsEmpty reports whether no field of the resume was populated.
func (r *ParsedResume) IsEmpty() bool {
	return r.Contact == (ContactInfo{}) &&
		len(r.Skills) == 0 &&
		len(r.Education) == 0 &&
		len(r.Experience) == 0
}

// AsMap flattens the resume into a plain nested mapping, ready for JSON or
// CSV serialization without further transformation. Absent fields are
// omitted rather than emitted as empty values.
func (r *ParsedResume) AsMap() map[string]interface{} {
	contact := map[string]interface{}{}
	putNonEmpty(contact, "name", r.Contact.Name)
	putNonEmpty(contact, "email", r.Contact.Email)
	putNonEmpty(contact, "phone", r.Contact.Phone)
	putNonEmpty(contact, "linkedin", r.Contact.LinkedIn)
	putNonEmpty(contact, "github", r.Contact.GitHub)

	skills := make([]map[string]interface{}, 0, len(r.Skills))
	for _, skill := range r.Skills {
		skills = append(skills, map[string]interface{}{
			"name":     skill.Name,
			"category": skill.Category,
		})
	}

	education := make([]map[string]interface{}, 0, len(r.Education))
	for _, entry := range r.Education {
		m := map[string]interface{}{}
		putNonEmpty(m, "degree", entry.Degree)
		putNonEmpty(m, "institution", entry.Institution)
		putNonEmpty(m, "field", entry.Field)
		if entry.Year != 0 {
			m["year"] = entry.Year
		}
		education = append(education, m)
	}

	experience := make([]map[string]interface{}, 0, len(r.Experience))
	for _, entry := range r.Experience {
		m := map[string]interface{}{}
		putNonEmpty(m, "title", entry.Title)
		putNonEmpty(m, "company", entry.Company)
		putNonEmpty(m, "start_date", entry.StartDate)
		putNonEmpty(m, "end_date", entry.EndDate)
		putNonEmpty(m, "description", entry.Description)
		experience = append(experience, m)
	}

	return map[string]interface{}{
		"contact":    contact,
		"skills":     skills,
		"education":  education,
		"experience": experience,
	}
}

func putNonEmpty(m map[string]interface{}, key, value string) {
	if value != "" {
		m[key] = value
	}
}
