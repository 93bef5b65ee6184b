package constants

const (
	// ParserVersion tags exported records with the rule-set revision that
	// produced them.
	ParserVersion = "1.0"

	// DefaultOutputDir is where exports land when no directory is configured.
	DefaultOutputDir = "outputs"

	// DefaultConfigFile is the config filename searched for when no explicit
	// path is given.
	DefaultConfigFile = "config.yaml"
)
