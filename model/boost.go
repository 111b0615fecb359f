package model

import "fmt"

// Boost is a single scoring contribution: an additive amount, a
// percentage, or (degenerate) neither. The label is carried for
// diagnostics only and never affects the computed score.
type Boost struct {
	Amount  *float64 `json:"amount,omitempty"`
	Percent *float64 `json:"percent,omitempty"`
	Label   string   `json:"label,omitempty"`
}

// AmountBoost creates an additive boost.
func AmountBoost(amount float64, label string) Boost {
	return Boost{Amount: &amount, Label: label}
}

// PercentBoost creates a percentage boost. Percent boosts are averaged
// across a Score and applied once as a multiplier to the additive total.
func PercentBoost(percent float64, label string) Boost {
	return Boost{Percent: &percent, Label: label}
}

// Times scales whichever of amount/percent is present by the given
// factor. A nil field stays nil.
func (b Boost) Times(factor float64) Boost {
	scaled := Boost{Label: b.Label}
	if b.Amount != nil {
		amount := *b.Amount * factor
		scaled.Amount = &amount
	}
	if b.Percent != nil {
		percent := *b.Percent * factor
		scaled.Percent = &percent
	}
	return scaled
}

func (b Boost) String() string {
	switch {
	case b.Amount != nil && b.Percent != nil:
		return fmt.Sprintf("boost(%s amount=%g percent=%g)", b.Label, *b.Amount, *b.Percent)
	case b.Amount != nil:
		return fmt.Sprintf("boost(%s amount=%g)", b.Label, *b.Amount)
	case b.Percent != nil:
		return fmt.Sprintf("boost(%s percent=%g)", b.Label, *b.Percent)
	default:
		return fmt.Sprintf("boost(%s empty)", b.Label)
	}
}
