package txlens

// swapClassifier detects token-for-token exchanges: the fee payer shows both
// an outgoing and an incoming movement of different symbols. A supplied
// wallet perspective overrides the fee payer's pair when the wallet itself
// shows a differing in/out pair (router transactions where the fee payer is
// not the trader).
type swapClassifier struct{}

func (swapClassifier) Name() string  { return "swap" }
func (swapClassifier) Priority() int { return PrioritySwap }

func (swapClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	feePayer, ok := ctx.Tx.FeePayer()
	if !ok {
		return nil
	}

	out, in := swapPair(ctx, feePayer)
	if ctx.WalletAddress != "" {
		if wout, win := swapPair(ctx, ctx.WalletAddress); wout != nil && win != nil {
			out, in = wout, win
		}
	}
	if out == nil || in == nil {
		return nil
	}

	confidence := 0.75
	if IsDexProtocol(ctx.Tx.Protocol) {
		confidence = 0.95
	}

	initiator, _ := ctx.Initiator()
	metadata := map[string]any{
		"token_in":  in.Amount.Token.Symbol,
		"token_out": out.Amount.Token.Symbol,
	}
	counterparty := ""
	if ctx.Tx.Protocol != nil {
		counterparty = ctx.Tx.Protocol.ID
		metadata["protocol"] = ctx.Tx.Protocol.Name
	}

	return &TransactionClassification{
		PrimaryType:     "swap",
		PrimaryAmount:   amountCopy(out),
		SecondaryAmount: amountCopy(in),
		Sender:          initiator,
		Receiver:        initiator,
		Counterparty:    counterparty,
		Confidence:      confidence,
		IsRelevant:      true,
		Metadata:        metadata,
	}
}

// swapPair returns the address's largest debit and credit legs when they
// move different token symbols, nil/nil otherwise.
func swapPair(ctx *ClassifierContext, address string) (out, in *TxLeg) {
	out, in = ctx.inOutPair(address)
	if out == nil || in == nil {
		return nil, nil
	}
	if out.Amount.Token.Symbol == in.Amount.Token.Symbol {
		return nil, nil
	}
	return out, in
}
