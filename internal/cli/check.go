package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/pathoverlap/internal/pattern"
	"github.com/danieljhkim/pathoverlap/internal/ruleset"
)

var checkFailOnConflict bool

// checkResult is the JSON output of check.
type checkResult struct {
	Candidate string          `json:"candidate"`
	Matches   []ruleset.Entry `json:"matches"`
	Errors    []lineErrorView `json:"errors"`
}

var checkCmd = &cobra.Command{
	Use:   "check <pattern> [file...]",
	Short: "Show which declared patterns a new pattern overlaps",
	Long: `Check a single candidate pattern against a declared pattern set and list every
declared pattern it overlaps. Files are read as for scan; with none, stdin is used.`,
	Example: `  pathoverlap check 'api/*/users' routes.txt`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		candidate, err := pattern.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate pattern: %w", err)
		}

		checker, err := newChecker()
		if err != nil {
			return err
		}

		set, err := loadPatterns(cmd, args[1:])
		if err != nil {
			return err
		}

		matches := checker.CheckAgainst(set.Entries, candidate)

		out := cmd.OutOrStdout()
		if jsonOutput {
			result := checkResult{
				Candidate: args[0],
				Matches:   matches,
				Errors:    lineErrorViews(set.Errors),
			}
			if err := outputJSON(out, result); err != nil {
				return err
			}
		} else {
			printLineErrors(cmd.ErrOrStderr(), set.Errors)
			if len(matches) == 0 {
				PrintEmptyState(out, fmt.Sprintf("%q overlaps no declared pattern", args[0]))
			}
			items := make([]string, 0, len(matches))
			for _, e := range matches {
				items = append(items, fmt.Sprintf("%s (%s)", e.Label(), e.Location()))
			}
			PrintList(out, items, 0)
		}

		if set.HasErrors() {
			return invalidPatternsError(set)
		}
		if len(matches) > 0 && (checkFailOnConflict || settings.FailOnConflict) {
			return fmt.Errorf("%w: %q overlaps %s", ErrConflict, args[0],
				PrintCount(len(matches), "declared pattern", "declared patterns"))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkFailOnConflict, "fail-on-conflict", false, "Exit with an error when the candidate overlaps anything")
}
