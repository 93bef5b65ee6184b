package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"resumefit-go/internal/constants"
	"resumefit-go/internal/logger"
	"resumefit-go/internal/parser"
	"resumefit-go/internal/types"
)

// ParserConfig is the externally supplied configuration data behind the
// extraction pipeline. Every field has a compiled-in default: an omitted
// field keeps its default, while a present field replaces it wholesale.
type ParserConfig struct {
	// SectionAliases maps a section label (summary, experience, education,
	// skills) to the header spellings that introduce it.
	SectionAliases map[string][]string `yaml:"section_aliases"`
	// SkillsVocabulary maps a skill category to its canonical skill names.
	SkillsVocabulary map[string][]string `yaml:"skills_vocabulary"`
	// PhonePatterns is the ordered list of phone regular expressions; the
	// first match with enough digits wins.
	PhonePatterns []string `yaml:"phone_patterns"`
}

// ExportConfig controls where export files land.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Config is the application configuration.
type Config struct {
	Parser ParserConfig  `yaml:"parser"`
	Export ExportConfig  `yaml:"export"`
	Logger logger.Config `yaml:"logger"`
}

// Default returns the configuration with every documented default filled in.
func Default() *Config {
	aliases := map[string][]string{}
	for label, phrases := range parser.DefaultSectionAliases() {
		aliases[string(label)] = phrases
	}
	return &Config{
		Parser: ParserConfig{
			SectionAliases:   aliases,
			SkillsVocabulary: parser.DefaultVocabulary(),
			PhonePatterns:    parser.DefaultPhonePatterns(),
		},
		Export: ExportConfig{
			OutputDir: constants.DefaultOutputDir,
		},
		Logger: logger.Config{
			Level:  "info",
			Format: "pretty",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// searches the conventional locations and falls back to pure defaults when
// nothing is found; an explicit path must exist.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		for _, candidate := range searchPaths() {
			if _, err := os.Stat(candidate); err == nil {
				configPath = candidate
				break
			}
		}
		if configPath == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Decode into a bare struct and overlay field by field: yaml.v3 merges
	// into prefilled maps, which would silently mix a user vocabulary with
	// the default one instead of replacing it.
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	cfg := Default()
	if file.Parser.SectionAliases != nil {
		cfg.Parser.SectionAliases = file.Parser.SectionAliases
	}
	if file.Parser.SkillsVocabulary != nil {
		cfg.Parser.SkillsVocabulary = file.Parser.SkillsVocabulary
	}
	if file.Parser.PhonePatterns != nil {
		cfg.Parser.PhonePatterns = file.Parser.PhonePatterns
	}
	if file.Export.OutputDir != "" {
		cfg.Export.OutputDir = file.Export.OutputDir
	}
	if file.Logger.Level != "" {
		cfg.Logger.Level = file.Logger.Level
	}
	if file.Logger.Format != "" {
		cfg.Logger.Format = file.Logger.Format
	}
	if file.Logger.TimeFormat != "" {
		cfg.Logger.TimeFormat = file.Logger.TimeFormat
	}
	cfg.Logger.ReportCaller = cfg.Logger.ReportCaller || file.Logger.ReportCaller

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	paths := []string{
		constants.DefaultConfigFile,
		filepath.Join(".", constants.DefaultConfigFile),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".resumefit", constants.DefaultConfigFile))
	}
	if execPath, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(execPath), constants.DefaultConfigFile))
	}
	return paths
}

// Validate checks the configuration is usable before any document is
// parsed. An empty or malformed vocabulary or alias table is fatal at
// initialization, never at parse time.
func (c *Config) Validate() error {
	if _, err := c.SectionAliasTable(); err != nil {
		return err
	}
	if err := parser.Vocabulary(c.Parser.SkillsVocabulary).Validate(); err != nil {
		return err
	}
	if len(c.Parser.PhonePatterns) == 0 {
		return fmt.Errorf("phone pattern list is empty")
	}
	return nil
}

// SectionAliasTable converts the string-keyed alias table into the typed
// form the segmenter takes, rejecting unknown labels.
func (c *Config) SectionAliasTable() (map[types.SectionLabel][]string, error) {
	if len(c.Parser.SectionAliases) == 0 {
		return nil, fmt.Errorf("section alias table is empty")
	}
	known := map[types.SectionLabel]bool{}
	for _, label := range types.Labels() {
		known[label] = true
	}
	table := map[types.SectionLabel][]string{}
	for label, phrases := range c.Parser.SectionAliases {
		typed := types.SectionLabel(label)
		if !known[typed] || typed == types.SectionOther {
			return nil, fmt.Errorf("section alias table references unknown label %q", label)
		}
		table[typed] = phrases
	}
	return table, nil
}
