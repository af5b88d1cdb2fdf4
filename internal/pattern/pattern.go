package pattern

import (
	"fmt"
	"strings"
)

// Delimiter separates fragments in pattern text.
const Delimiter = "/"

// Kind is the variant of a Fragment.
type Kind uint8

const (
	// Literal matches only identical text.
	Literal Kind = iota
	// Wildcard matches exactly one fragment.
	Wildcard
	// Glob matches zero or more fragments.
	Glob
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Wildcard:
		return "wildcard"
	case Glob:
		return "glob"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Literal, Wildcard, Glob:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown fragment kind %d", k)
	}
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "literal":
		*k = Literal
	case "wildcard":
		*k = Wildcard
	case "glob":
		*k = Glob
	default:
		return fmt.Errorf("unknown fragment kind %q", text)
	}
	return nil
}

// Fragment is one segment of a pattern. Text is set only for Literal
// fragments and is never empty there.
type Fragment struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text,omitempty"`
}

// Lit returns a Literal fragment. It does not validate text; use Parse for
// untrusted input.
func Lit(text string) Fragment {
	return Fragment{Kind: Literal, Text: text}
}

// Wild returns a Wildcard fragment.
func Wild() Fragment {
	return Fragment{Kind: Wildcard}
}

// AnyDepth returns a Glob fragment.
func AnyDepth() Fragment {
	return Fragment{Kind: Glob}
}

// IsGlob reports whether f can match a variable number of fragments.
func (f Fragment) IsGlob() bool {
	return f.Kind == Glob
}

// String renders the fragment the way it is written in pattern text.
func (f Fragment) String() string {
	switch f.Kind {
	case Wildcard:
		return "*"
	case Glob:
		return "**"
	default:
		return f.Text
	}
}

// Compare orders fragments by kind (Literal < Wildcard < Glob), then by text.
func (f Fragment) Compare(o Fragment) int {
	if f.Kind != o.Kind {
		if f.Kind < o.Kind {
			return -1
		}
		return 1
	}
	return strings.Compare(f.Text, o.Text)
}

// Pattern is an ordered sequence of fragments. The empty pattern is the root.
type Pattern []Fragment

// Parse converts slash-delimited text into a Pattern.
// The empty string yields the empty pattern. Any invalid segment fails the
// whole parse with a *ParseError.
func Parse(text string) (Pattern, error) {
	if text == "" {
		return Pattern{}, nil
	}

	segments := strings.Split(text, Delimiter)
	p := make(Pattern, 0, len(segments))
	for i, seg := range segments {
		f, err := parseFragment(seg)
		if err != nil {
			return nil, &ParseError{Input: text, Index: i, Segment: seg, Err: err}
		}
		p = append(p, f)
	}
	return p, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// static tables.
func MustParse(text string) Pattern {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func parseFragment(seg string) (Fragment, error) {
	if seg == "" {
		return Fragment{}, ErrEmptyFragment
	}
	if strings.Contains(seg, "*") {
		switch seg {
		case "*":
			return Wild(), nil
		case "**":
			return AnyDepth(), nil
		default:
			return Fragment{}, ErrInvalidWildcard
		}
	}
	return Lit(seg), nil
}

// String renders the pattern as "/"-prefixed text. The root renders as "".
func (p Pattern) String() string {
	var b strings.Builder
	for _, f := range p {
		b.WriteString(Delimiter)
		b.WriteString(f.String())
	}
	return b.String()
}

// Text renders the pattern in the form accepted by Parse, without the
// leading delimiter.
func (p Pattern) Text() string {
	return strings.TrimPrefix(p.String(), Delimiter)
}

// IsRoot reports whether p is the empty pattern.
func (p Pattern) IsRoot() bool {
	return len(p) == 0
}

// Equal reports whether p and o have the same fragments.
func (p Pattern) Equal(o Pattern) bool {
	return p.Compare(o) == 0
}

// Compare orders patterns lexicographically by fragment.
func (p Pattern) Compare(o Pattern) int {
	n := min(len(p), len(o))
	for i := 0; i < n; i++ {
		if c := p[i].Compare(o[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p) < len(o):
		return -1
	case len(p) > len(o):
		return 1
	default:
		return 0
	}
}

// OnlyGlobs reports whether every fragment of p is a Glob. The root
// trivially qualifies.
func (p Pattern) OnlyGlobs() bool {
	for _, f := range p {
		if !f.IsGlob() {
			return false
		}
	}
	return true
}
