// Package ruleset loads pattern sets from line-oriented text or YAML rule
// files.
//
// Each input line (or YAML rule) is parsed independently. A pattern that
// fails to parse is recorded as a LineError and does not stop the rest of
// the input from loading. Only I/O and document-level decode failures are
// returned as errors.
package ruleset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/pathoverlap/internal/pattern"
)

// Stdin is the source name that selects standard input in Load.
const Stdin = "-"

// Entry is one successfully parsed pattern and where it came from.
type Entry struct {
	// Source is the file name the pattern was read from
	Source string `json:"source"`

	// Line is the 1-based line (or rule) number within Source
	Line int `json:"line"`

	// Name is the optional rule name (YAML input only)
	Name string `json:"name,omitempty"`

	// Text is the pattern text exactly as written
	Text string `json:"text"`

	// Pattern is the parsed form of Text
	Pattern pattern.Pattern `json:"-"`
}

// Label returns the name of the entry if set, otherwise its text.
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Text
}

// Location returns "source:line".
func (e Entry) Location() string {
	return fmt.Sprintf("%s:%d", e.Source, e.Line)
}

// LineError records a pattern that failed to parse.
type LineError struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Err    error  `json:"-"`
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Kind returns the parse error kind, e.g. "EmptyFragment".
func (e *LineError) Kind() string {
	var perr *pattern.ParseError
	if errors.As(e.Err, &perr) {
		return perr.Kind()
	}
	return "Unknown"
}

// Set is an ordered collection of parsed entries plus the inputs that
// failed to parse.
type Set struct {
	Entries []Entry      `json:"entries"`
	Errors  []*LineError `json:"errors,omitempty"`
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{
		Entries: []Entry{},
	}
}

// HasErrors returns true if any input failed to parse.
func (s *Set) HasErrors() bool {
	return len(s.Errors) > 0
}

// Add parses text and appends it to the set, recording a LineError on
// failure.
func (s *Set) Add(source string, line int, name, text string) {
	p, err := pattern.Parse(text)
	if err != nil {
		s.Errors = append(s.Errors, &LineError{Source: source, Line: line, Text: text, Err: err})
		return
	}
	s.Entries = append(s.Entries, Entry{
		Source:  source,
		Line:    line,
		Name:    name,
		Text:    text,
		Pattern: p,
	})
}

// Merge appends the entries and errors of o to s.
func (s *Set) Merge(o *Set) {
	s.Entries = append(s.Entries, o.Entries...)
	s.Errors = append(s.Errors, o.Errors...)
}

// ReadLines reads one pattern per line. Every line is a pattern, so an
// empty line is the root pattern.
func ReadLines(r io.Reader, source string) (*Set, error) {
	set := NewSet()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		set.Add(source, line, "", scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return set, nil
}

// Rule is one entry of a YAML rule file.
type Rule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// File is the YAML rule file document.
type File struct {
	Rules []Rule `yaml:"rules"`
}

// ReadYAML reads a rule file of the form:
//
//	rules:
//	  - name: admin
//	    pattern: admin/**
//
// Unknown fields are rejected. Rules are numbered from 1 in file order.
func ReadYAML(r io.Reader, source string) (*Set, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	var doc File
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	// io.EOF means an empty document
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRuleFile, source, err)
	}

	set := NewSet()
	for i, rule := range doc.Rules {
		set.Add(source, i+1, rule.Name, rule.Pattern)
	}
	return set, nil
}

// IsYAML reports whether path names a YAML rule file.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Load reads the pattern set at path, choosing the format by extension.
// Stdin ("-") is read from stdin as lines.
func Load(path string, stdin io.Reader) (*Set, error) {
	if path == Stdin {
		return ReadLines(stdin, "<stdin>")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if IsYAML(path) {
		return ReadYAML(f, path)
	}
	return ReadLines(f, path)
}

// LoadAll loads every path in order and merges the results. No paths means
// stdin.
func LoadAll(paths []string, stdin io.Reader) (*Set, error) {
	if len(paths) == 0 {
		paths = []string{Stdin}
	}

	set := NewSet()
	for _, path := range paths {
		s, err := Load(path, stdin)
		if err != nil {
			return nil, err
		}
		set.Merge(s)
	}
	return set, nil
}
