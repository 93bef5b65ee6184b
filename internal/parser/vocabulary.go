package parser

import (
	"fmt"
	"strings"
)

// Vocabulary maps a skill category to its canonical skill names. It is
// read-only configuration (config key `skills_vocabulary`), loaded once and
// shared freely across parses.
type Vocabulary map[string][]string

// DefaultVocabulary returns the built-in skill vocabulary. Matching is
// case-insensitive, so casing here is cosmetic; the names are kept lower case
// to make the uniqueness key obvious.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"languages": {
			"python", "java", "javascript", "typescript", "c++", "c#", "go",
			"rust", "ruby", "php", "swift", "kotlin", "scala", "perl",
			"haskell", "elixir", "dart", "lua", "objective-c", "r", "matlab",
			"bash", "sql",
		},
		"frameworks": {
			"react", "angular", "vue", "svelte", "next.js", "node.js",
			"express", "django", "flask", "fastapi", "spring", "rails",
			"laravel", "asp.net", "jquery", "bootstrap", "tailwind",
			"graphql", "rest api", "html", "css",
		},
		"databases": {
			"mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite",
			"cassandra", "dynamodb", "elasticsearch", "mariadb", "neo4j",
			"snowflake", "bigquery",
		},
		"cloud": {
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			"jenkins", "ci/cd", "ansible", "helm", "prometheus", "grafana",
			"heroku", "linux", "nginx",
		},
		"ml_ai": {
			"machine learning", "deep learning", "tensorflow", "pytorch",
			"scikit-learn", "keras", "nlp", "computer vision", "opencv",
			"pandas", "numpy", "matplotlib", "xgboost", "hugging face",
			"spark", "data analysis", "llm",
		},
		"tools": {
			"git", "github", "gitlab", "bitbucket", "jira", "confluence",
			"slack", "postman", "figma", "visual studio", "vscode",
			"intellij", "vim",
		},
		"soft_skills": {
			"leadership", "communication", "teamwork", "problem solving",
			"critical thinking", "time management", "project management",
			"mentoring", "collaboration", "adaptability", "agile", "scrum",
		},
	}
}

// Validate checks the vocabulary is usable: at least one category, no empty
// category names, no empty or duplicate (case-insensitively) skill names.
// A violation is a configuration error raised before any document is parsed.
func (v Vocabulary) Validate() error {
	if len(v) == 0 {
		return fmt.Errorf("skill vocabulary is empty")
	}
	seen := map[string]string{}
	total := 0
	for category, names := range v {
		if strings.TrimSpace(category) == "" {
			return fmt.Errorf("skill vocabulary has an unnamed category")
		}
		for _, name := range names {
			key := strings.ToLower(strings.TrimSpace(name))
			if key == "" {
				return fmt.Errorf("category %q contains an empty skill name", category)
			}
			if prior, dup := seen[key]; dup && prior != category {
				return fmt.Errorf("skill %q listed under both %q and %q", key, prior, category)
			}
			seen[key] = category
			total++
		}
	}
	if total == 0 {
		return fmt.Errorf("skill vocabulary has no skill names")
	}
	return nil
}
