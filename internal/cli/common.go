package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/pathoverlap/internal/planner"
	"github.com/danieljhkim/pathoverlap/internal/ruleset"
)

// newChecker creates a conflict checker for the configured algorithm.
func newChecker() (*planner.ConflictChecker, error) {
	checker, err := planner.NewConflictChecker(settings.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create checker: %w", err)
	}
	_ = level.Debug(logger).Log("msg", "using overlap algorithm", "algorithm", checker.Algorithm())
	return checker, nil
}

// loadPatterns loads the pattern files named in paths, or stdin when
// paths is empty.
func loadPatterns(cmd *cobra.Command, paths []string) (*ruleset.Set, error) {
	set, err := ruleset.LoadAll(paths, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	_ = level.Debug(logger).Log("msg", "loaded patterns", "sources", len(paths), "entries", len(set.Entries), "errors", len(set.Errors))
	for _, e := range set.Errors {
		_ = level.Warn(logger).Log("msg", "skipping invalid pattern", "source", e.Source, "line", e.Line, "kind", e.Kind(), "err", e.Err)
	}
	return set, nil
}

// lineErrorView is the JSON form of a pattern that failed to parse.
type lineErrorView struct {
	Source  string `json:"source"`
	Line    int    `json:"line"`
	Text    string `json:"text"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func lineErrorViews(errs []*ruleset.LineError) []lineErrorView {
	views := make([]lineErrorView, 0, len(errs))
	for _, e := range errs {
		views = append(views, lineErrorView{
			Source:  e.Source,
			Line:    e.Line,
			Text:    e.Text,
			Kind:    e.Kind(),
			Message: e.Err.Error(),
		})
	}
	return views
}

// printLineErrors reports each pattern that failed to parse.
func printLineErrors(w io.Writer, errs []*ruleset.LineError) {
	for _, e := range errs {
		PrintError(w, fmt.Sprintf("%s: %v", e.Kind(), e))
	}
}

// invalidPatternsError summarizes parse failures for the exit status.
func invalidPatternsError(set *ruleset.Set) error {
	total := len(set.Entries) + len(set.Errors)
	return fmt.Errorf("%w: %d of %s", ErrInvalidPatterns, len(set.Errors), PrintCount(total, "pattern", "patterns"))
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	out, err := formatJSON(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
