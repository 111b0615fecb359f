package matcher

import (
	"testing"

	"github.com/gcbaptista/go-term-search/model"
)

func TestBuiltinMatchers(t *testing.T) {
	john := model.NewToken("john")
	johnson := model.NewToken("johnson")

	t.Run("equals", func(t *testing.T) {
		if got := (EqualsMatcher{}).Apply("john", john); len(got) != 1 || got[0].Kind != model.MatchEquals {
			t.Errorf("Apply = %v, want one equals match", got)
		}
		if got := (EqualsMatcher{}).Apply("john", johnson); got != nil {
			t.Errorf("Apply = %v, want no match", got)
		}
	})

	t.Run("startsWith", func(t *testing.T) {
		if got := (StartsWithMatcher{}).Apply("john", johnson); len(got) != 1 || got[0].Kind != model.MatchStartsWith {
			t.Errorf("Apply = %v, want one startsWith match", got)
		}
		if got := (StartsWithMatcher{}).Apply("son", johnson); got != nil {
			t.Errorf("Apply = %v, want no match", got)
		}
	})

	t.Run("contains", func(t *testing.T) {
		if got := (ContainsMatcher{}).Apply("son", johnson); len(got) != 1 || got[0].Kind != model.MatchContains {
			t.Errorf("Apply = %v, want one contains match", got)
		}
	})

	t.Run("contains ignores single-character terms", func(t *testing.T) {
		if got := (ContainsMatcher{}).Apply("o", johnson); got != nil {
			t.Errorf("Apply = %v, want no match for single-character term", got)
		}
	})
}

func TestMatchShortCircuit(t *testing.T) {
	matchers := Defaults()
	john := model.NewToken("john")

	// "john" both equals-matches and contains-matches the token; only
	// the equals match may be produced.
	got := Match(matchers, "john", john)
	if len(got) != 1 {
		t.Fatalf("Match produced %d matches, want exactly 1", len(got))
	}
	if got[0].Kind != model.MatchEquals {
		t.Errorf("Match kind = %q, want equals", got[0].Kind)
	}
}

func TestMatchNoMatch(t *testing.T) {
	matchers := Defaults()
	if got := Match(matchers, "xyz", model.NewToken("john")); got != nil {
		t.Errorf("Match = %v, want nil", got)
	}
}

// fixedMatcher is a custom strategy used to verify priority merging.
type fixedMatcher struct {
	priority int
}

func (m fixedMatcher) Key() model.MatchKind { return model.MatchKind("fixed") }
func (m fixedMatcher) Priority() int        { return m.priority }
func (m fixedMatcher) Apply(term string, token model.Token) []model.TermMatch {
	return []model.TermMatch{{Kind: m.Key(), Term: term, Token: token}}
}

func TestSortByPriority(t *testing.T) {
	custom := fixedMatcher{priority: 5} // between equals (0) and startsWith (10)
	sorted := SortByPriority([]Matcher{ContainsMatcher{}, custom, StartsWithMatcher{}, EqualsMatcher{}})

	wantOrder := []int{PriorityEquals, 5, PriorityStartsWith, PriorityContains}
	for i, m := range sorted {
		if m.Priority() != wantOrder[i] {
			t.Fatalf("position %d priority = %d, want %d", i, m.Priority(), wantOrder[i])
		}
	}
}

func TestCustomMatcherPreemptsWeaker(t *testing.T) {
	// A custom matcher slotted above contains wins pairs the stronger
	// built-ins do not claim.
	matchers := SortByPriority([]Matcher{EqualsMatcher{}, fixedMatcher{priority: 15}, ContainsMatcher{}})

	got := Match(matchers, "son", model.NewToken("johnson"))
	if len(got) != 1 || got[0].Kind != model.MatchKind("fixed") {
		t.Errorf("Match = %v, want the custom match only", got)
	}
}
