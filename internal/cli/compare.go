package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/pathoverlap/internal/overlap"
	"github.com/danieljhkim/pathoverlap/internal/pattern"
)

var compareAll bool

// compareResult is the JSON output of compare.
type compareResult struct {
	Left      string          `json:"left"`
	Right     string          `json:"right"`
	Algorithm string          `json:"algorithm"`
	Overlap   bool            `json:"overlap"`
	Results   map[string]bool `json:"results,omitempty"`
}

var compareCmd = &cobra.Command{
	Use:   "compare <pattern> <pattern>",
	Short: "Decide whether two patterns overlap",
	Long: `Print true if some concrete path matches both patterns, false otherwise.

With --all every overlap algorithm is run and its result shown.`,
	Example: `  pathoverlap compare '**/d/e' 'a/b/c/d/e'
  pathoverlap compare --all '**/**/x' '**/y'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := pattern.Parse(args[0])
		if err != nil {
			return err
		}
		right, err := pattern.Parse(args[1])
		if err != nil {
			return err
		}

		checker, err := newChecker()
		if err != nil {
			return err
		}

		result := compareResult{
			Left:      args[0],
			Right:     args[1],
			Algorithm: checker.Algorithm(),
			Overlap:   checker.Overlaps(left, right),
		}
		if compareAll {
			result.Results = make(map[string]bool)
			for _, name := range overlap.Names() {
				alg, err := overlap.Lookup(name)
				if err != nil {
					return err
				}
				result.Results[name] = alg(left, right)
			}
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, result)
		}

		if !compareAll {
			PrintInfo(out, strconv.FormatBool(result.Overlap))
			return nil
		}

		rows := make([][]string, 0, len(result.Results))
		for _, name := range overlap.Names() {
			rows = append(rows, []string{name, strconv.FormatBool(result.Results[name])})
		}
		PrintTable(out, []string{"ALGORITHM", "OVERLAP"}, rows)
		for name, got := range result.Results {
			if got != result.Overlap {
				return fmt.Errorf("algorithm %s disagrees with %s", name, result.Algorithm)
			}
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().BoolVar(&compareAll, "all", false, "Run every overlap algorithm")
}
