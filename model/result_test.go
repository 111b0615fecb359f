package model

import (
	"testing"
)

func TestNewTermSearchResult(t *testing.T) {
	john := NewNamedToken("john", "firstName")
	johnson := NewNamedToken("johnson", "lastName")

	t.Run("deduplicates matches and terms", func(t *testing.T) {
		matches := []TermMatch{
			{Kind: MatchEquals, Term: "john", Token: john},
			{Kind: MatchEquals, Term: "john", Token: john}, // duplicate
			{Kind: MatchStartsWith, Term: "john", Token: johnson},
		}
		result := NewTermSearchResult("item", matches, 2)

		if len(result.Matches) != 2 {
			t.Errorf("len(Matches) = %d, want 2", len(result.Matches))
		}
		if len(result.MatchedTerms) != 1 {
			t.Errorf("len(MatchedTerms) = %d, want 1", len(result.MatchedTerms))
		}
	})

	t.Run("matchAll derived from term coverage", func(t *testing.T) {
		matches := []TermMatch{
			{Kind: MatchEquals, Term: "john", Token: john},
			{Kind: MatchStartsWith, Term: "john", Token: johnson},
		}

		partial := NewTermSearchResult("item", matches, 2)
		if partial.MatchAll {
			t.Error("MatchAll = true with 1 of 2 terms matched, want false")
		}

		full := NewTermSearchResult("item", matches, 1)
		if !full.MatchAll {
			t.Error("MatchAll = false with all terms matched, want true")
		}
	})

	t.Run("score starts accumulating", func(t *testing.T) {
		result := NewTermSearchResult("item", []TermMatch{{Kind: MatchEquals, Term: "john", Token: john}}, 1)
		if result.Score == nil {
			t.Fatal("Score = nil, want open accumulator")
		}
		if result.Score.Frozen() {
			t.Error("Score.Frozen() = true at construction, want false")
		}
	})
}

func TestNewTokenizedItem(t *testing.T) {
	tokens := []Token{
		NewToken("john"),
		NewToken("John"), // same normalized token
		NewNamedToken("john", "firstName"),
	}
	item := NewTokenizedItem("x", tokens)

	if len(item.Tokens) != 2 {
		t.Errorf("len(Tokens) = %d, want 2 (value duplicates collapsed, named token kept)", len(item.Tokens))
	}
}
