// checks.go
package txlens

import "strings"

// accountMatches reports whether a leg account is the given address. Only
// wallet/external kinds carry addresses; protocol and fee accounts never
// match.
func accountMatches(a AccountID, address string) bool {
	if address == "" {
		return false
	}
	switch a.Kind {
	case AccountWallet, AccountExternal:
		return strings.EqualFold(a.Address, address)
	}
	return false
}

func isFeeLeg(l TxLeg) bool { return l.Role == RoleFee }

// NonFeeLegs returns every leg except fee legs and the fee sink.
func (ctx *ClassifierContext) NonFeeLegs() []TxLeg {
	var out []TxLeg
	for _, l := range ctx.Legs {
		if isFeeLeg(l) || l.Account.Kind == AccountFee {
			continue
		}
		out = append(out, l)
	}
	return out
}

// LegsOf returns the non-fee legs attributed to one address.
func (ctx *ClassifierContext) LegsOf(address string) []TxLeg {
	var out []TxLeg
	for _, l := range ctx.NonFeeLegs() {
		if accountMatches(l.Account, address) {
			out = append(out, l)
		}
	}
	return out
}

// InitiatorLegs returns the non-fee legs of the initiator (wallet or fee
// payer). Empty when no initiator can be identified.
func (ctx *ClassifierContext) InitiatorLegs() []TxLeg {
	initiator, ok := ctx.Initiator()
	if !ok {
		return nil
	}
	return ctx.LegsOf(initiator)
}

// InitiatorFlow sums the initiator's non-fee debit and credit UI amounts.
// Used by every deposit-vs-withdraw rule: debits >= credits reads as a
// deposit.
func (ctx *ClassifierContext) InitiatorFlow() (debits, credits float64) {
	for _, l := range ctx.InitiatorLegs() {
		switch l.Side {
		case Debit:
			debits += l.Amount.AmountUI
		case Credit:
			credits += l.Amount.AmountUI
		}
	}
	return debits, credits
}

// largestLeg picks the leg with the greatest UI amount; earlier legs win
// ties so the choice is stable.
func largestLeg(legs []TxLeg) *TxLeg {
	var best *TxLeg
	for i := range legs {
		if best == nil || legs[i].Amount.AmountUI > best.Amount.AmountUI {
			best = &legs[i]
		}
	}
	return best
}

// hasCreditOfMint reports whether any non-fee credit leg moves the given
// mint.
func hasCreditOfMint(legs []TxLeg, mint string) bool {
	for _, l := range legs {
		if isFeeLeg(l) {
			continue
		}
		if l.Side == Credit && l.Amount.Token.Mint == mint {
			return true
		}
	}
	return false
}

// protocolIn reports whether the detected protocol id is one of ids.
func (ctx *ClassifierContext) protocolIn(ids ...string) bool {
	id := ctx.Tx.ProtocolID()
	if id == "" {
		return false
	}
	for _, want := range ids {
		if id == want {
			return true
		}
	}
	return false
}

// inOutPair extracts the largest non-fee debit and credit legs attributed to
// an address. Protocol-tagged legs never attribute to an address; swap-side
// rules only care about the parties' own movements.
func (ctx *ClassifierContext) inOutPair(address string) (out, in *TxLeg) {
	var debits, credits []TxLeg
	for _, l := range ctx.LegsOf(address) {
		switch l.Side {
		case Debit:
			if l.Role == RoleSent || l.Role == RoleProtocolDeposit {
				debits = append(debits, l)
			}
		case Credit:
			if l.Role == RoleReceived || l.Role == RoleProtocolWithdraw {
				credits = append(credits, l)
			}
		}
	}
	return largestLeg(debits), largestLeg(credits)
}

func amountCopy(l *TxLeg) *MoneyAmount {
	if l == nil {
		return nil
	}
	a := l.Amount
	return &a
}
