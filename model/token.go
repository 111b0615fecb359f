// Package model defines the data types flowing through the term-search
// pipeline: tokens, term matches, boosts, scores, and per-item results.
package model

import (
	"fmt"
	"strings"
)

// Token is a normalized searchable unit derived from an item.
// Value is always case-folded at construction. Name carries the semantic
// origin of the token (e.g., the field it came from, such as "firstName")
// and defaults to the value itself.
type Token struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// NewToken creates a Token whose name equals its normalized value.
func NewToken(raw string) Token {
	value := strings.ToLower(raw)
	return Token{Value: value, Name: value}
}

// NewNamedToken creates a Token with an explicit semantic name.
// An empty name falls back to the normalized value.
func NewNamedToken(raw, name string) Token {
	value := strings.ToLower(raw)
	if name == "" {
		name = value
	}
	return Token{Value: value, Name: name}
}

// TokenOf coerces an arbitrary tokenizer output value into a Token.
// Tokens pass through unchanged; strings and everything else are
// converted via their textual representation.
func TokenOf(v any) Token {
	switch t := v.(type) {
	case Token:
		return t
	case string:
		return NewToken(t)
	case fmt.Stringer:
		return NewToken(t.String())
	default:
		return NewToken(fmt.Sprintf("%v", v))
	}
}

// Equals reports whether the token's value equals the given term.
// The term must already be lowercased.
func (t Token) Equals(term string) bool {
	return t.Value == term
}

// StartsWith reports whether the token's value starts with the given term.
func (t Token) StartsWith(term string) bool {
	return strings.HasPrefix(t.Value, term)
}

// Contains reports whether the token's value contains the given term.
func (t Token) Contains(term string) bool {
	return strings.Contains(t.Value, term)
}

func (t Token) String() string {
	if t.Name != t.Value {
		return t.Name + ":" + t.Value
	}
	return t.Value
}
