package matcher

import (
	internalErrors "github.com/gcbaptista/go-term-search/internal/errors"
	"github.com/gcbaptista/go-term-search/model"
)

// kindRank orders the built-in match kinds by quality, best first.
var kindRank = map[model.MatchKind]int{
	model.MatchEquals:     0,
	model.MatchStartsWith: 1,
	model.MatchContains:   2,
}

// CompareQuality orders two term matches by the quality of their match
// kinds: negative when a is the stronger match, positive when b is,
// zero when both kinds rank equally. Intended for inspection and
// debugging of match evidence, not for the scoring hot path.
//
// Custom match kinds carry no defined quality order, so comparing one
// fails with an ambiguous-comparison error.
func CompareQuality(a, b model.TermMatch) (int, error) {
	rankA, okA := kindRank[a.Kind]
	rankB, okB := kindRank[b.Kind]
	if !okA || !okB {
		return 0, internalErrors.NewAmbiguousMatchCheckError(string(a.Kind), string(b.Kind))
	}
	return rankA - rankB, nil
}
