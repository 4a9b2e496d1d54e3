package txlens

import "strings"

// solanaPayClassifier detects payment-request transfers: a transfer carrying
// a reference memo in the Solana Pay shape (a "solana-pay:" label or a bare
// base58 reference key).
type solanaPayClassifier struct{}

func (solanaPayClassifier) Name() string  { return "solana_pay" }
func (solanaPayClassifier) Priority() int { return PrioritySolanaPay }

func (solanaPayClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if ctx.Tx == nil || ctx.Tx.Memo == "" {
		return nil
	}
	if !looksLikePayReference(ctx.Tx.Memo) {
		return nil
	}

	initiator, ok := ctx.Initiator()
	if !ok {
		return nil
	}
	pair := matchTransferPair(ctx, initiator)
	if pair == nil {
		return nil
	}

	return &TransactionClassification{
		PrimaryType:   "solana_pay",
		PrimaryAmount: amountCopy(pair.out),
		Sender:        pair.sender,
		Receiver:      pair.receiver,
		Confidence:    0.8,
		IsRelevant:    true,
		Metadata:      map[string]any{"reference": ctx.Tx.Memo},
	}
}

// looksLikePayReference accepts an explicit solana-pay label or a bare
// base58 pubkey-sized token. Free-form text falls through to the memo rule.
func looksLikePayReference(memo string) bool {
	if strings.HasPrefix(memo, "solana-pay:") {
		return true
	}
	if len(memo) < 32 || len(memo) > 44 {
		return false
	}
	for _, r := range memo {
		switch {
		case r >= '1' && r <= '9', r >= 'A' && r <= 'H', r >= 'J' && r <= 'N',
			r >= 'P' && r <= 'Z', r >= 'a' && r <= 'k', r >= 'm' && r <= 'z':
		default:
			return false
		}
	}
	return true
}

// tipClassifier covers validator tips (Jito): SOL leaving the initiator
// through the tip program.
type tipClassifier struct{}

func (tipClassifier) Name() string  { return "tip" }
func (tipClassifier) Priority() int { return PriorityTip }

func (tipClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_JITO_TIPS) {
		return nil
	}

	initiator, ok := ctx.Initiator()
	if !ok {
		return nil
	}

	var tips []TxLeg
	for _, l := range ctx.LegsOf(initiator) {
		if l.IsSOL() && l.Side == Debit {
			tips = append(tips, l)
		}
	}
	if len(tips) == 0 {
		return nil
	}

	return &TransactionClassification{
		PrimaryType:   "tip",
		PrimaryAmount: amountCopy(largestLeg(tips)),
		Sender:        initiator,
		Counterparty:  ctx.Tx.ProtocolID(),
		Confidence:    0.7,
		IsRelevant:    true,
		Metadata:      map[string]any{"protocol": ctx.Tx.Protocol.Name},
	}
}

// airdropClassifier detects unsolicited receipts: tokens arriving with
// nothing leaving the initiator. Large mints are claimed earlier by
// token_create; whatever reaches this rule is an ordinary drop.
type airdropClassifier struct{}

func (airdropClassifier) Name() string  { return "airdrop" }
func (airdropClassifier) Priority() int { return PriorityAirdrop }

func (airdropClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	legs := ctx.InitiatorLegs()

	var received []TxLeg
	for _, l := range legs {
		if l.Side == Debit {
			return nil
		}
		if !l.IsSOL() && l.Side == Credit {
			received = append(received, l)
		}
	}
	if len(received) == 0 {
		return nil
	}

	initiator, _ := ctx.Initiator()
	best := largestLeg(received)
	return &TransactionClassification{
		PrimaryType:   "airdrop",
		PrimaryAmount: amountCopy(best),
		Receiver:      initiator,
		Confidence:    0.6,
		IsRelevant:    true,
		Metadata:      map[string]any{"mint": best.Amount.Token.Mint},
	}
}

type transferPair struct {
	out      *TxLeg
	sender   string
	receiver string
}

// matchTransferPair finds the initiator's largest debit with a matching
// external credit of the same mint, or the mirror image when the initiator
// is on the receiving end.
func matchTransferPair(ctx *ClassifierContext, initiator string) *transferPair {
	legs := ctx.NonFeeLegs()

	var ownOut, ownIn []TxLeg
	for _, l := range legs {
		if !accountMatches(l.Account, initiator) {
			continue
		}
		switch l.Side {
		case Debit:
			ownOut = append(ownOut, l)
		case Credit:
			ownIn = append(ownIn, l)
		}
	}

	if out := largestLeg(ownOut); out != nil {
		for _, l := range legs {
			if l.Side != Credit || accountMatches(l.Account, initiator) {
				continue
			}
			if l.Amount.Token.Mint != out.Amount.Token.Mint {
				continue
			}
			return &transferPair{out: out, sender: initiator, receiver: l.Account.Address}
		}
	}

	if in := largestLeg(ownIn); in != nil {
		for _, l := range legs {
			if l.Side != Debit || accountMatches(l.Account, initiator) {
				continue
			}
			if l.Amount.Token.Mint != in.Amount.Token.Mint {
				continue
			}
			return &transferPair{out: in, sender: l.Account.Address, receiver: initiator}
		}
	}

	return nil
}

// transferClassifier is the generic fallback for one-token movements between
// two parties, SOL or SPL alike.
type transferClassifier struct{}

func (transferClassifier) Name() string  { return "transfer" }
func (transferClassifier) Priority() int { return PriorityTransfer }

func (transferClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	initiator, ok := ctx.Initiator()
	if !ok {
		return nil
	}
	pair := matchTransferPair(ctx, initiator)
	if pair == nil {
		return nil
	}

	return &TransactionClassification{
		PrimaryType:   "transfer",
		PrimaryAmount: amountCopy(pair.out),
		Sender:        pair.sender,
		Receiver:      pair.receiver,
		Confidence:    0.7,
		IsRelevant:    true,
		Metadata:      map[string]any{"token": pair.out.Amount.Token.Symbol},
	}
}
