package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"resumefit-go/internal/config"
	"resumefit-go/internal/exporter"
	"resumefit-go/internal/logger"
	"resumefit-go/internal/processor"
)

var (
	filePath   = pflag.StringP("file", "f", "", "resume file to parse (pdf, docx or plain text)")
	dirPath    = pflag.StringP("dir", "d", "", "directory of resumes to parse in batch")
	configPath = pflag.StringP("config", "c", "", "config file path (defaults searched when empty)")
	outputDir  = pflag.StringP("out", "o", "", "output directory for exports (overrides config)")
	exportJSON = pflag.Bool("json", false, "export the parsed resume as JSON")
	exportCSV  = pflag.Bool("csv", false, "export the parsed resume as CSV files")
	quiet      = pflag.BoolP("quiet", "q", false, "suppress the display report")
)

func main() {
	pflag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger)

	if *outputDir != "" {
		cfg.Export.OutputDir = *outputDir
	}

	if *filePath == "" && *dirPath == "" {
		fmt.Fprintln(os.Stderr, "error: either --file or --dir is required")
		pflag.Usage()
		os.Exit(1)
	}

	parser, err := processor.NewResumeParser(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build resume parser")
	}

	ctx := logger.WithContext(context.Background())
	export := exporter.New(cfg.Export.OutputDir)

	files := gatherFiles()
	failures := 0
	for _, file := range files {
		if err := run(ctx, parser, export, file); err != nil {
			logger.Error().Str("file", file).Err(err).Msg("failed to parse resume")
			failures++
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

func gatherFiles() []string {
	if *filePath != "" {
		return []string{*filePath}
	}

	var files []string
	entries, err := os.ReadDir(*dirPath)
	if err != nil {
		logger.Fatal().Str("dir", *dirPath).Err(err).Msg("failed to read resume directory")
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".docx", ".doc", ".txt":
			files = append(files, filepath.Join(*dirPath, entry.Name()))
		}
	}
	if len(files) == 0 {
		logger.Fatal().Str("dir", *dirPath).Msg("no resume files found")
	}
	return files
}

func run(ctx context.Context, parser *processor.ResumeParser, export *exporter.Exporter, file string) error {
	resume, err := parser.ParseFile(ctx, file)
	if err != nil {
		return err
	}

	if !*quiet {
		fmt.Println(exporter.FormatForDisplay(resume))
	}

	stats := exporter.SummaryStats(resume)
	logger.Info().
		Str("file", file).
		Int("skills", stats.TotalSkills).
		Int("education", stats.EducationCount).
		Int("experience", stats.ExperienceCount).
		Bool("has_name", stats.HasName).
		Msg("parsed resume")

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	if *exportJSON {
		if _, err := export.ExportJSON(resume, base+".json"); err != nil {
			return err
		}
	}
	if *exportCSV {
		if _, err := export.ExportCSV(resume, base); err != nil {
			return err
		}
	}
	return nil
}
