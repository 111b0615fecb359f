package model

// MatchKind identifies the matcher strategy that produced a TermMatch.
type MatchKind string

const (
	MatchEquals     MatchKind = "equals"
	MatchStartsWith MatchKind = "startsWith"
	MatchContains   MatchKind = "contains"
)

// TermMatch is the evidence that one query term matched one token.
// It is a value type: two TermMatches are equal iff kind, term, and
// token all match.
type TermMatch struct {
	Kind  MatchKind `json:"kind"`
	Term  string    `json:"term"`
	Token Token     `json:"token"`
}

// TokenizedItem pairs an input item with the de-duplicated set of
// tokens the external tokenizer produced for it.
type TokenizedItem struct {
	Item   any
	Tokens []Token
}

// NewTokenizedItem collapses duplicate tokens (by value+name equality)
// while preserving first-seen order.
func NewTokenizedItem(item any, tokens []Token) TokenizedItem {
	seen := make(map[Token]struct{}, len(tokens))
	distinct := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		distinct = append(distinct, tok)
	}
	return TokenizedItem{Item: item, Tokens: distinct}
}
