package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fixinsert/internal/config"
	"github.com/vvka-141/fixinsert/internal/db"
	"github.com/vvka-141/fixinsert/internal/tui"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// Environment variables consulted for the check command's connection string,
// in order of precedence.
const (
	envConnectionString = "FIXINSERT_CONNECTION_STRING"
	envDatabaseURL      = "DATABASE_URL"
)

// analysisFlagValues holds the flags shared by parse and check.
type analysisFlagValues struct {
	measure    string
	strict     bool
	width      int
	extensions []string
}

// registerAnalysisFlags adds the shared analysis flags to cmd.
func registerAnalysisFlags(cmd *cobra.Command, flags *analysisFlagValues, defaultMeasure string) {
	cmd.Flags().StringVar(&flags.measure, "measure", defaultMeasure,
		"How value lengths are counted: raw|decoded\n"+
			"raw counts quotes and escapes as written, decoded counts the literal's text")
	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"Fail on any statement whose field and value counts differ")
	cmd.Flags().IntVar(&flags.width, "width", fixinsert.DefaultValueWidth,
		"Width the lengths are right-aligned to")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil,
		"File extensions taken from directory arguments (default .sql,.txt)")

	_ = cmd.RegisterFlagCompletionFunc("measure", completeMeasureModes)
}

// resolveAnalysisConfig merges analysis flags over the parse section of
// fixinsert.yaml. Flags win only when explicitly set.
// useConfigMeasure is false for check, which keeps its own measure default.
func resolveAnalysisConfig(cmd *cobra.Command, projectCfg *config.ProjectConfig, flags analysisFlagValues, useConfigMeasure bool) (fixinsert.AnalysisConfig, error) {
	var parseCfg config.ParseConfig
	if projectCfg != nil {
		parseCfg = projectCfg.Parse
	}

	measureName := flags.measure
	if useConfigMeasure && parseCfg.Measure != "" && !cmd.Flags().Changed("measure") {
		measureName = parseCfg.Measure
	}
	measure, err := fixinsert.ParseMeasureMode(measureName)
	if err != nil {
		return fixinsert.AnalysisConfig{}, err
	}

	mismatch := fixinsert.MismatchStrict
	if !flags.strict {
		mismatch, err = fixinsert.ParseMismatchPolicy(parseCfg.Mismatch)
		if err != nil {
			return fixinsert.AnalysisConfig{}, err
		}
	}

	extensions := flags.extensions
	if !cmd.Flags().Changed("ext") {
		extensions = parseCfg.Extensions
	}

	return fixinsert.AnalysisConfig{
		Measure:    measure,
		Mismatch:   mismatch,
		Extensions: extensions,
	}, nil
}

// resolveReportOptions merges report flags over fixinsert.yaml.
func resolveReportOptions(cmd *cobra.Command, projectCfg *config.ProjectConfig, field string, width int) (fixinsert.ReportOptions, error) {
	if projectCfg != nil {
		if !cmd.Flags().Changed("field") && projectCfg.Parse.Field != "" {
			field = projectCfg.Parse.Field
		}
		if !cmd.Flags().Changed("width") && projectCfg.Parse.Width > 0 {
			width = projectCfg.Parse.Width
		}
	}
	if width < 1 {
		return fixinsert.ReportOptions{}, fmt.Errorf("--width must be positive, got %d: %w", width, fixinsert.ErrInvalidConfig)
	}
	return fixinsert.ReportOptions{
		Field:      field,
		ValueWidth: width,
		Color:      tui.ColorEnabled(),
	}, nil
}

// resolveConnection picks the check connection string.
// Precedence: --connection > $FIXINSERT_CONNECTION_STRING > $DATABASE_URL > fixinsert.yaml.
func resolveConnection(flagValue string, projectCfg *config.ProjectConfig) (*fixinsert.ConnectionConfig, error) {
	connStr := flagValue
	for _, env := range []string{envConnectionString, envDatabaseURL} {
		if connStr != "" {
			break
		}
		connStr = os.Getenv(env)
	}
	if connStr == "" && projectCfg != nil {
		connStr = projectCfg.Check.Connection
	}
	if connStr == "" {
		return nil, fmt.Errorf(`no connection string: %w

Provide one of:
  --connection postgresql://user@host:5432/db
  $%s or $%s
  check.connection in %s`, fixinsert.ErrInvalidConfig, envConnectionString, envDatabaseURL, fixinsert.ConfigFileName)
	}
	return db.ParseConnectionString(connStr)
}

// resolveEffectiveTimeout returns the effective timeout, preferring fixinsert.yaml if flag wasn't set.
func resolveEffectiveTimeout(cmd *cobra.Command, projectCfg *config.ProjectConfig, flagTimeout time.Duration) (time.Duration, error) {
	if projectCfg != nil && projectCfg.Check.Timeout != "" && !cmd.Flags().Changed("timeout") {
		parsed, err := time.ParseDuration(projectCfg.Check.Timeout)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout in %s: %w: %v", fixinsert.ConfigFileName, fixinsert.ErrInvalidConfig, err)
		}
		return parsed, nil
	}
	return flagTimeout, nil
}

// resolveSchema returns the schema for check: flag, then config, then public.
func resolveSchema(cmd *cobra.Command, projectCfg *config.ProjectConfig, flagSchema string) string {
	if !cmd.Flags().Changed("schema") && projectCfg != nil && projectCfg.Check.Schema != "" {
		return projectCfg.Check.Schema
	}
	if flagSchema == "" {
		return fixinsert.DefaultSchema
	}
	return flagSchema
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if fixinsert.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", fixinsert.ConfigFileName, err)
	}
	return projectCfg, nil
}

// commandContext returns a context cancelled on Ctrl+C or SIGTERM and, when
// timeout is positive, after timeout.
func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	if timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, timeout)
		parentCancel := cancel
		cancel = func() {
			timeoutCancel()
			parentCancel()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
