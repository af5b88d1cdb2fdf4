package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/pathoverlap/internal/pattern"
)

// parseResult is the JSON output of parse for one input.
type parseResult struct {
	Input     string             `json:"input"`
	Rendered  string             `json:"rendered"`
	Fragments []pattern.Fragment `json:"fragments"`
	Kind      string             `json:"errorKind,omitempty"`
	Error     string             `json:"error,omitempty"`
}

var parseCmd = &cobra.Command{
	Use:   "parse <pattern>...",
	Short: "Show how patterns are split into fragments",
	Long:  `Parse each pattern and print its fragments, or the reason it was rejected.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]parseResult, 0, len(args))
		failed := 0
		for _, arg := range args {
			res := parseResult{Input: arg, Fragments: []pattern.Fragment{}}
			p, err := pattern.Parse(arg)
			if err != nil {
				failed++
				res.Error = err.Error()
				var perr *pattern.ParseError
				if errors.As(err, &perr) {
					res.Kind = perr.Kind()
				}
			} else {
				res.Rendered = p.String()
				res.Fragments = p
			}
			results = append(results, res)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			if err := outputJSON(out, results); err != nil {
				return err
			}
		} else {
			for _, res := range results {
				PrintSection(out, strconv.Quote(res.Input))
				if res.Error != "" {
					PrintError(out, fmt.Sprintf("%s: %s", res.Kind, res.Error))
					continue
				}
				PrintLabelValue(out, "Rendered", res.Rendered)
				if len(res.Fragments) == 0 {
					PrintEmptyState(out, "root pattern (no fragments)")
					continue
				}
				rows := make([][]string, 0, len(res.Fragments))
				for i, f := range res.Fragments {
					rows = append(rows, []string{strconv.Itoa(i), f.Kind.String(), f.String()})
				}
				PrintTable(out, []string{"#", "KIND", "TEXT"}, rows)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%w: %d of %s", ErrInvalidPatterns, failed, PrintCount(len(args), "pattern", "patterns"))
		}
		return nil
	},
}
