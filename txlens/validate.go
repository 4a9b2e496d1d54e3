package txlens

import "math"

// DefaultBalanceEpsilon is the tolerance for per-token conservation checks.
// Legs are built from symmetric deltas, so sums should match exactly; the
// epsilon only absorbs float accumulation once amounts pass through UI space.
const DefaultBalanceEpsilon = 1e-9

// TokenFlow is the per-token debit/credit aggregate of a leg set.
type TokenFlow struct {
	Debits  float64 `json:"debits"`
	Credits float64 `json:"credits"`
}

// ValidationReport is the outcome of auditing one leg set.
type ValidationReport struct {
	IsBalanced bool                 `json:"isBalanced"`
	PerToken   map[string]TokenFlow `json:"perToken"`
}

// LegValidator checks double-entry conservation per token. It is a read-only
// data-quality signal: it never blocks classification and never fails.
type LegValidator struct {
	Epsilon float64
}

func NewLegValidator() *LegValidator {
	return &LegValidator{Epsilon: DefaultBalanceEpsilon}
}

// ValidateLegs audits with the default tolerance.
func ValidateLegs(legs []TxLeg) ValidationReport {
	return NewLegValidator().Validate(legs)
}

// Validate sums credit and debit UI amounts for every token symbol present.
// The fee sink participates like any other account; it is what makes the SOL
// column close.
func (v *LegValidator) Validate(legs []TxLeg) ValidationReport {
	perToken := make(map[string]TokenFlow)
	for _, leg := range legs {
		flow := perToken[leg.Amount.Token.Symbol]
		switch leg.Side {
		case Debit:
			flow.Debits += leg.Amount.AmountUI
		case Credit:
			flow.Credits += leg.Amount.AmountUI
		}
		perToken[leg.Amount.Token.Symbol] = flow
	}

	eps := v.Epsilon
	if eps <= 0 {
		eps = DefaultBalanceEpsilon
	}

	balanced := true
	for _, flow := range perToken {
		if math.Abs(flow.Debits-flow.Credits) > eps {
			balanced = false
			break
		}
	}

	return ValidationReport{IsBalanced: balanced, PerToken: perToken}
}
