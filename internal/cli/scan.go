package cli

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/pathoverlap/internal/planner"
)

var scanFailOnConflict bool

// scanResult is the JSON output of scan.
type scanResult struct {
	*planner.Report
	Errors []lineErrorView `json:"errors"`
}

var scanCmd = &cobra.Command{
	Use:   "scan [file...]",
	Short: "Report every pair of overlapping patterns",
	Long: `Read patterns and report every pair that can match a common concrete path.

Each file holds one pattern per line, or a YAML rule list when the file ends
in .yaml or .yml. With no files, or with "-", patterns are read from stdin.
A pattern that fails to parse is reported and skipped; the rest are still checked.`,
	Example: `  printf 'a/b/*\na/b/c\n**/d\n' | pathoverlap scan
  pathoverlap scan --fail-on-conflict acl.yaml routes.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		checker, err := newChecker()
		if err != nil {
			return err
		}

		set, err := loadPatterns(cmd, args)
		if err != nil {
			return err
		}

		report := checker.Check(set.Entries)
		_ = level.Info(logger).Log("msg", "scan complete", "patterns", report.Patterns, "comparisons", report.Comparisons, "conflicts", len(report.Conflicts))

		out := cmd.OutOrStdout()
		if jsonOutput {
			if err := outputJSON(out, scanResult{Report: report, Errors: lineErrorViews(set.Errors)}); err != nil {
				return err
			}
		} else {
			printLineErrors(cmd.ErrOrStderr(), set.Errors)
			for _, c := range report.Conflicts {
				PrintInfo(out, c.String())
			}
			summary := fmt.Sprintf("%s checked, %s",
				PrintCount(report.Patterns, "pattern", "patterns"),
				PrintCount(len(report.Conflicts), "overlapping pair", "overlapping pairs"))
			if report.HasConflicts() {
				PrintWarning(cmd.ErrOrStderr(), summary)
			} else {
				PrintSuccess(cmd.ErrOrStderr(), summary)
			}
		}

		if set.HasErrors() {
			return invalidPatternsError(set)
		}
		if report.HasConflicts() && (scanFailOnConflict || settings.FailOnConflict) {
			return fmt.Errorf("%w: %s", ErrConflict, PrintCount(len(report.Conflicts), "overlapping pair", "overlapping pairs"))
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanFailOnConflict, "fail-on-conflict", false, "Exit with an error when any pair overlaps")
}
