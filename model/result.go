package model

// TermSearchResult is one item's search outcome: the original item,
// the distinct matched term strings, the distinct term matches, the
// derived match-all flag, and the result's score accumulator.
//
// A TermSearchResult is only ever created for items with at least one
// TermMatch; MatchAll is derived at construction, never set directly.
type TermSearchResult struct {
	Item         any         `json:"item"`
	MatchedTerms []string    `json:"matched_terms"`
	Matches      []TermMatch `json:"matches"`
	MatchAll     bool        `json:"match_all"`
	Score        *Score      `json:"-"`
}

// NewTermSearchResult assembles a result from the raw matches collected
// for one item. Matched terms and matches are de-duplicated; MatchAll is
// true iff the distinct matched terms cover at least termCount terms.
func NewTermSearchResult(item any, matches []TermMatch, termCount int) *TermSearchResult {
	seenTerms := make(map[string]struct{}, len(matches))
	seenMatches := make(map[TermMatch]struct{}, len(matches))
	distinctTerms := make([]string, 0, len(matches))
	distinctMatches := make([]TermMatch, 0, len(matches))

	for _, m := range matches {
		if _, ok := seenMatches[m]; !ok {
			seenMatches[m] = struct{}{}
			distinctMatches = append(distinctMatches, m)
		}
		if _, ok := seenTerms[m.Term]; !ok {
			seenTerms[m.Term] = struct{}{}
			distinctTerms = append(distinctTerms, m.Term)
		}
	}

	return &TermSearchResult{
		Item:         item,
		MatchedTerms: distinctTerms,
		Matches:      distinctMatches,
		MatchAll:     len(distinctTerms) >= termCount,
		Score:        NewScore(),
	}
}
