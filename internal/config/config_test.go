package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.Parser.SectionAliases)
	assert.NotEmpty(t, cfg.Parser.SkillsVocabulary)
	assert.NotEmpty(t, cfg.Parser.PhonePatterns)
	assert.Equal(t, "outputs", cfg.Export.OutputDir)
}

func TestLoadConfigReplacesFieldsWholesale(t *testing.T) {
	path := writeConfigFile(t, `
parser:
  skills_vocabulary:
    languages:
      - cobol
      - fortran
export:
  output_dir: /tmp/resumes
logger:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// the file's vocabulary replaces the default one, it does not merge
	assert.Equal(t, map[string][]string{
		"languages": {"cobol", "fortran"},
	}, cfg.Parser.SkillsVocabulary)

	// untouched fields keep their defaults
	assert.Equal(t, Default().Parser.SectionAliases, cfg.Parser.SectionAliases)
	assert.Equal(t, Default().Parser.PhonePatterns, cfg.Parser.PhonePatterns)

	assert.Equal(t, "/tmp/resumes", cfg.Export.OutputDir)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, Default().Logger.Format, cfg.Logger.Format)
}

func TestLoadConfigExplicitPathMustExist(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "parser: [not a mapping")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigValidatesResult(t *testing.T) {
	path := writeConfigFile(t, `
parser:
  section_aliases:
    awards:
      - awards
`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown label")
}

func TestValidateEmptyVocabulary(t *testing.T) {
	cfg := Default()
	cfg.Parser.SkillsVocabulary = map[string][]string{}
	assert.Error(t, cfg.Validate())
}

func TestValidateEmptyPhonePatterns(t *testing.T) {
	cfg := Default()
	cfg.Parser.PhonePatterns = nil
	assert.Error(t, cfg.Validate())
}

func TestSectionAliasTableRejectsOtherLabel(t *testing.T) {
	cfg := Default()
	cfg.Parser.SectionAliases["other"] = []string{"misc"}
	_, err := cfg.SectionAliasTable()
	assert.Error(t, err)
}
