package model

import (
	internalErrors "github.com/gcbaptista/go-term-search/internal/errors"
)

// Score accumulates boosts for one search result and resolves them to
// a single scalar exactly once. It has two states: accumulating
// (Add allowed) and frozen (Value computed and cached, Add fails).
type Score struct {
	boosts []Boost
	value  float64
	frozen bool
}

// NewScore creates an empty, accumulating Score.
func NewScore() *Score {
	return &Score{}
}

// Add appends a boost. It fails once the score has been computed.
func (s *Score) Add(boost Boost) error {
	if s.frozen {
		return internalErrors.NewScoreFrozenError(boost.Label)
	}
	s.boosts = append(s.boosts, boost)
	return nil
}

// Frozen reports whether the scalar value has been computed.
func (s *Score) Frozen() bool {
	return s.frozen
}

// Boosts returns the accumulated boosts, for diagnostics.
func (s *Score) Boosts() []Boost {
	out := make([]Boost, len(s.boosts))
	copy(out, s.boosts)
	return out
}

// Value computes the scalar score on first call and returns the cached
// value afterwards. Amounts are summed; percent boosts are averaged and
// applied once as a multiplier to the additive total.
func (s *Score) Value() float64 {
	if s.frozen {
		return s.value
	}

	totalAmount := 0.0
	percentSum := 0.0
	percentCount := 0
	for _, boost := range s.boosts {
		if boost.Amount != nil {
			totalAmount += *boost.Amount
		}
		if boost.Percent != nil {
			percentSum += *boost.Percent
			percentCount++
		}
	}

	s.value = totalAmount
	if percentCount > 0 {
		s.value = totalAmount * (percentSum / float64(percentCount))
	}
	s.frozen = true
	return s.value
}
