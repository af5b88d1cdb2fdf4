package pattern

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Pattern
	}{
		{
			name:  "empty input is root",
			input: "",
			want:  Pattern{},
		},
		{
			name:  "single literal",
			input: "a",
			want:  Pattern{Lit("a")},
		},
		{
			name:  "literals",
			input: "a/b/c",
			want:  Pattern{Lit("a"), Lit("b"), Lit("c")},
		},
		{
			name:  "wildcard",
			input: "a/b/*",
			want:  Pattern{Lit("a"), Lit("b"), Wild()},
		},
		{
			name:  "glob prefix",
			input: "**/d/e",
			want:  Pattern{AnyDepth(), Lit("d"), Lit("e")},
		},
		{
			name:  "mixed",
			input: "**/*/x.y/**",
			want:  Pattern{AnyDepth(), Wild(), Lit("x.y"), AnyDepth()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantKind  string
		wantIndex int
	}{
		{"double delimiter", "a//b", ErrEmptyFragment, "EmptyFragment", 1},
		{"leading delimiter", "/a", ErrEmptyFragment, "EmptyFragment", 0},
		{"trailing delimiter", "a/", ErrEmptyFragment, "EmptyFragment", 1},
		{"lone delimiter", "/", ErrEmptyFragment, "EmptyFragment", 0},
		{"star inside literal", "a*b", ErrInvalidWildcard, "InvalidWildcardUsage", 0},
		{"triple star", "a/***", ErrInvalidWildcard, "InvalidWildcardUsage", 1},
		{"star suffix", "x/y*", ErrInvalidWildcard, "InvalidWildcardUsage", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
			}
			if got != nil {
				t.Errorf("Parse(%q) returned partial pattern %v", tt.input, got)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error is %T, want *ParseError", tt.input, err)
			}
			if perr.Input != tt.input {
				t.Errorf("Input = %q, want %q", perr.Input, tt.input)
			}
			if perr.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", perr.Index, tt.wantIndex)
			}
			if perr.Kind() != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", perr.Kind(), tt.wantKind)
			}
		})
	}
}

func TestParse_DistinctErrorKinds(t *testing.T) {
	_, emptyErr := Parse("a//b")
	_, wildErr := Parse("a*b")

	if errors.Is(emptyErr, ErrInvalidWildcard) {
		t.Error("empty fragment error should not match ErrInvalidWildcard")
	}
	if errors.Is(wildErr, ErrEmptyFragment) {
		t.Error("invalid wildcard error should not match ErrEmptyFragment")
	}
}

func TestPattern_String(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "/a"},
		{"a/b/*", "/a/b/*"},
		{"**/d/e", "/**/d/e"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := MustParse(tt.input)
			if got := p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := p.Text(); got != tt.input {
				t.Errorf("Text() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestPattern_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"a/b/c",
		"*/*/*",
		"**",
		"**/**",
		"src/**/*/main.go",
		"topic/*/events/**",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			p := MustParse(in)
			again, err := Parse(p.Text())
			if err != nil {
				t.Fatalf("re-parse of %q failed: %v", p.Text(), err)
			}
			if !p.Equal(again) {
				t.Errorf("round trip mismatch: %v != %v", p, again)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "a/b", "a/b", 0},
		{"root equal", "", "", 0},
		{"shorter first", "a", "a/b", -1},
		{"literal before wildcard", "a", "*", -1},
		{"wildcard before glob", "*", "**", -1},
		{"glob after literal", "**", "z", 1},
		{"text order", "a/c", "a/b", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.a).Compare(MustParse(tt.b))
			if got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestOnlyGlobs(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"**", true},
		{"**/**", true},
		{"**/*", false},
		{"a", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MustParse(tt.input).OnlyGlobs(); got != tt.want {
				t.Errorf("OnlyGlobs(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if Literal.String() != "literal" || Wildcard.String() != "wildcard" || Glob.String() != "glob" {
		t.Errorf("unexpected kind names: %s %s %s", Literal, Wildcard, Glob)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("a//b")
}

func TestFragment_JSON(t *testing.T) {
	p := MustParse("a/*/**")

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `[{"kind":"literal","text":"a"},{"kind":"wildcard"},{"kind":"glob"}]`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back Pattern
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(p) {
		t.Errorf("Unmarshal() = %v, want %v", back, p)
	}

	var k Kind
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) should fail")
	}
}
