// Package pattern parses slash-delimited path patterns into typed fragments.
//
// A pattern is an ordered sequence of fragments. Each fragment is one of:
//   - Literal: matches exactly its own text at that position
//   - Wildcard ("*"): matches exactly one arbitrary fragment
//   - Glob ("**"): matches zero or more arbitrary fragments
//
// The empty string parses to the empty pattern, which denotes the root.
// Parsed patterns are never mutated.
package pattern
