package ruleset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danieljhkim/pathoverlap/internal/pattern"
)

func TestReadLines(t *testing.T) {
	input := "a/b/c\na//b\n**/d/e\n\na*b\n*"

	set, err := ReadLines(strings.NewReader(input), "rules.txt")
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}

	wantTexts := []string{"a/b/c", "**/d/e", "", "*"}
	var gotTexts []string
	for _, e := range set.Entries {
		gotTexts = append(gotTexts, e.Text)
	}
	if diff := cmp.Diff(wantTexts, gotTexts); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	wantLines := []int{1, 3, 4, 6}
	for i, e := range set.Entries {
		if e.Line != wantLines[i] {
			t.Errorf("entry %d Line = %d, want %d", i, e.Line, wantLines[i])
		}
		if e.Source != "rules.txt" {
			t.Errorf("entry %d Source = %q, want rules.txt", i, e.Source)
		}
	}

	if !set.Entries[2].Pattern.IsRoot() {
		t.Errorf("empty line should parse to the root pattern, got %v", set.Entries[2].Pattern)
	}

	if len(set.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(set.Errors))
	}
	if set.Errors[0].Line != 2 || !errors.Is(set.Errors[0], pattern.ErrEmptyFragment) {
		t.Errorf("Errors[0] = %v, want empty fragment on line 2", set.Errors[0])
	}
	if set.Errors[1].Line != 5 || !errors.Is(set.Errors[1], pattern.ErrInvalidWildcard) {
		t.Errorf("Errors[1] = %v, want invalid wildcard on line 5", set.Errors[1])
	}
	if set.Errors[1].Kind() != "InvalidWildcardUsage" {
		t.Errorf("Errors[1].Kind() = %q", set.Errors[1].Kind())
	}
	if !strings.Contains(set.Errors[1].Error(), "rules.txt:5") {
		t.Errorf("Errors[1].Error() = %q, want location", set.Errors[1].Error())
	}
}

func TestReadLines_Empty(t *testing.T) {
	set, err := ReadLines(strings.NewReader(""), "empty")
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(set.Entries) != 0 || set.HasErrors() {
		t.Errorf("expected empty set, got %+v", set)
	}
}

func TestReadYAML(t *testing.T) {
	input := `
rules:
  - name: admin
    pattern: admin/**
  - name: users
    pattern: "*/users/*"
  - name: broken
    pattern: a*b
`
	set, err := ReadYAML(strings.NewReader(input), "acl.yaml")
	if err != nil {
		t.Fatalf("ReadYAML() error = %v", err)
	}

	if len(set.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(set.Entries))
	}
	if set.Entries[0].Label() != "admin" || set.Entries[1].Label() != "users" {
		t.Errorf("labels = %q, %q", set.Entries[0].Label(), set.Entries[1].Label())
	}
	if !set.Entries[0].Pattern.Equal(pattern.MustParse("admin/**")) {
		t.Errorf("Entries[0].Pattern = %v", set.Entries[0].Pattern)
	}
	if set.Entries[1].Location() != "acl.yaml:2" {
		t.Errorf("Entries[1].Location() = %q", set.Entries[1].Location())
	}
	if len(set.Errors) != 1 || set.Errors[0].Line != 3 {
		t.Errorf("Errors = %v, want one error for rule 3", set.Errors)
	}
}

func TestReadYAML_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown field", "rules:\n  - name: a\n    path: a/b\n"},
		{"wrong type", "rules: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadYAML(strings.NewReader(tt.input), "bad.yaml")
			if !errors.Is(err, ErrInvalidRuleFile) {
				t.Errorf("ReadYAML() error = %v, want ErrInvalidRuleFile", err)
			}
		})
	}
}

func TestReadYAML_EmptyDocument(t *testing.T) {
	set, err := ReadYAML(strings.NewReader(""), "empty.yaml")
	if err != nil {
		t.Fatalf("ReadYAML() error = %v", err)
	}
	if len(set.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(set.Entries))
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	linesPath := filepath.Join(dir, "routes.txt")
	yamlPath := filepath.Join(dir, "acl.yml")

	if err := os.WriteFile(linesPath, []byte("api/*\napi/v1/**\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte("rules:\n  - name: all\n    pattern: \"**\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadAll([]string{linesPath, yamlPath, Stdin}, strings.NewReader("x/y\n"))
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	wantSources := []string{linesPath, linesPath, yamlPath, "<stdin>"}
	var gotSources []string
	for _, e := range set.Entries {
		gotSources = append(gotSources, e.Source)
	}
	if diff := cmp.Diff(wantSources, gotSources); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAll_DefaultsToStdin(t *testing.T) {
	set, err := LoadAll(nil, strings.NewReader("a\nb\n"))
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(set.Entries) != 2 {
		t.Errorf("len(Entries) = %d, want 2", len(set.Entries))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestIsYAML(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"rules.yaml", true},
		{"rules.YML", true},
		{"rules.txt", false},
		{"rules", false},
	}

	for _, tt := range tests {
		if got := IsYAML(tt.path); got != tt.want {
			t.Errorf("IsYAML(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
