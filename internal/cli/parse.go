package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fixinsert/internal/files/filesystem"
	"github.com/vvka-141/fixinsert/internal/files/scanner"
	"github.com/vvka-141/fixinsert/internal/logging"
	"github.com/vvka-141/fixinsert/internal/report"
	"github.com/vvka-141/fixinsert/internal/services"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

var parseCmd = &cobra.Command{
	Use:   "parse [--field <name>] <file|dir>...",
	Short: "Report the maximum value length of every column",
	Long: `Parse reads each file line by line and picks out statements of the form

  insert into <table> (<f1>,<f2>,...) values (<v1>,<v2>,...);

For every field it reports the longest value seen, sorted by field name:

  id   :     2
  name :    11

Lines that are not single-line insert statements are skipped. Each file is
measured on its own; with several files each report is preceded by a
"==> file <==" banner. Directory arguments expand to the *.sql and *.txt
files beneath them.

Lengths are counted on the value as written, quotes included, which is a
safe upper bound for the column width. Use --measure decoded to count the
literal's text instead.

Examples:
  # All columns
  fixinsert parse dump.sql

  # One column
  fixinsert parse -f name dump.sql

  # Every dump in a directory, failing on malformed statements
  fixinsert parse --strict ./dumps`,
	Args:              RequireInputFiles,
	ValidArgsFunction: completeInputFiles,
	RunE:              runParse,
}

type parseFlagValues struct {
	field string
	analysisFlagValues
}

var parseFlags parseFlagValues

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFlags.field, "field", "f", "",
		"Report only this field")
	registerAnalysisFlags(parseCmd, &parseFlags.analysisFlagValues, fixinsert.MeasureRaw.String())
}

func runParse(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}
	analysisCfg, err := resolveAnalysisConfig(cmd, projectCfg, parseFlags.analysisFlagValues, true)
	if err != nil {
		return err
	}
	reportOpts, err := resolveReportOptions(cmd, projectCfg, parseFlags.field, parseFlags.width)
	if err != nil {
		return err
	}

	paths, err := resolveInputs(args, analysisCfg)
	if err != nil {
		return err
	}
	logger.Verbose("Measuring %d file(s), measure=%s, mismatch=%s", len(paths), analysisCfg.Measure, analysisCfg.Mismatch)

	ctx, cancel := commandContext(0)
	defer cancel()

	analyzer := services.NewAnalysisService(filesystem.NewOSFileSystem(), logger, analysisCfg)
	out := cmd.OutOrStdout()
	reporter := report.New(out, reportOpts)

	for i, path := range paths {
		result, err := analyzer.AnalyzeFile(ctx, path)
		if err != nil {
			return err
		}

		if err := writeBanner(out, reporter, path, i, len(paths)); err != nil {
			return err
		}
		if err := reporter.Lengths(result.Accumulator); err != nil {
			return err
		}
	}
	return nil
}

// resolveInputs expands file and directory arguments.
func resolveInputs(args []string, analysisCfg fixinsert.AnalysisConfig) ([]string, error) {
	paths, err := scanner.NewScanner(analysisCfg.Extensions).Resolve(args)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no matching files in %v: %w", args, fixinsert.ErrNoInputFiles)
	}
	return paths, nil
}

// writeBanner separates per-file reports the way tail does when more than
// one file is reported; a single file gets no banner.
func writeBanner(out io.Writer, reporter *report.Reporter, path string, index, total int) error {
	if total < 2 {
		return nil
	}
	if index > 0 {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return reporter.Banner(path)
}
