package txlens

import "github.com/shopspring/decimal"

// multisigClassifier handles Squads vault activity. It carries the highest
// priority: whatever a vault execution wraps (swap, transfer, ...) must not
// shadow the fact that a multisig produced it.
type multisigClassifier struct{}

func (multisigClassifier) Name() string  { return "multisig" }
func (multisigClassifier) Priority() int { return PriorityMultisig }

func (multisigClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_SQUADS) {
		return nil
	}

	initiator, _ := ctx.Initiator()
	moved := ctx.NonFeeLegs()
	metadata := map[string]any{"multisig": ctx.Tx.Protocol.Name}

	// No value movement means a pure signature event.
	if len(moved) == 0 {
		return &TransactionClassification{
			PrimaryType: "multisig_approve",
			Sender:      initiator,
			Confidence:  0.85,
			IsRelevant:  true,
			Metadata:    metadata,
		}
	}

	metadata["legs_moved"] = len(moved)
	return &TransactionClassification{
		PrimaryType:   "multisig_execute",
		PrimaryAmount: amountCopy(largestLeg(moved)),
		Sender:        initiator,
		Confidence:    0.85,
		IsRelevant:    true,
		Metadata:      metadata,
	}
}

// governanceClassifier covers Realms: vote-only transactions and
// deposit/withdraw of governance tokens.
type governanceClassifier struct{}

func (governanceClassifier) Name() string  { return "governance" }
func (governanceClassifier) Priority() int { return PriorityGovernance }

func (governanceClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_GOVERNANCE) {
		return nil
	}

	initiator, _ := ctx.Initiator()
	metadata := map[string]any{"protocol": ctx.Tx.Protocol.Name}

	legs := ctx.InitiatorLegs()
	if len(legs) == 0 {
		return &TransactionClassification{
			PrimaryType: "governance_vote",
			Sender:      initiator,
			Confidence:  0.8,
			IsRelevant:  true,
			Metadata:    metadata,
		}
	}

	debits, credits := ctx.InitiatorFlow()
	primaryType := "governance_withdraw"
	if debits >= credits {
		primaryType = "governance_deposit"
	}
	return &TransactionClassification{
		PrimaryType:   primaryType,
		PrimaryAmount: amountCopy(largestLeg(legs)),
		Sender:        initiator,
		Confidence:    0.8,
		IsRelevant:    true,
		Metadata:      metadata,
	}
}

// domainNameClassifier covers Bonfida name-service activity.
type domainNameClassifier struct{}

func (domainNameClassifier) Name() string  { return "domain_name" }
func (domainNameClassifier) Priority() int { return PriorityDomainName }

func (domainNameClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_BONFIDA) {
		return nil
	}

	initiator, _ := ctx.Initiator()
	metadata := map[string]any{"protocol": ctx.Tx.Protocol.Name}

	var paid []TxLeg
	for _, l := range ctx.InitiatorLegs() {
		if l.Side == Debit && l.IsSOL() {
			paid = append(paid, l)
		}
	}
	if len(paid) == 0 {
		return &TransactionClassification{
			PrimaryType: "domain_update",
			Sender:      initiator,
			Confidence:  0.8,
			IsRelevant:  true,
			Metadata:    metadata,
		}
	}
	return &TransactionClassification{
		PrimaryType:   "domain_register",
		PrimaryAmount: amountCopy(largestLeg(paid)),
		Sender:        initiator,
		Confidence:    0.8,
		IsRelevant:    true,
		Metadata:      metadata,
	}
}

// accountCloseClassifier detects rent reclamation: the initiator receives
// SOL, moves nothing else, and nothing non-SOL changes hands.
type accountCloseClassifier struct{}

func (accountCloseClassifier) Name() string  { return "account_close" }
func (accountCloseClassifier) Priority() int { return PriorityAccountClose }

func (accountCloseClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	initiator, ok := ctx.Initiator()
	if !ok {
		return nil
	}

	var reclaimed []TxLeg
	for _, l := range ctx.Legs {
		if !l.IsSOL() || l.Side != Credit {
			continue
		}
		if l.Role != RoleReceived && l.Role != RoleProtocolWithdraw {
			continue
		}
		if accountMatches(l.Account, initiator) {
			reclaimed = append(reclaimed, l)
		}
	}
	if len(reclaimed) == 0 {
		return nil
	}

	for _, l := range ctx.Legs {
		if isFeeLeg(l) {
			continue
		}
		// Any non-SOL movement means this is not a bare close.
		if !l.IsSOL() && l.Account.Kind == AccountExternal {
			return nil
		}
		// The initiator paying SOL out means a transfer, not a close.
		if l.IsSOL() && l.Side == Debit && accountMatches(l.Account, initiator) {
			return nil
		}
	}

	total := decimal.Zero
	for _, l := range reclaimed {
		if d, err := decimal.NewFromString(l.Amount.AmountRaw); err == nil {
			total = total.Add(d)
		}
	}
	amount := NewMoneyAmount(SolToken, total.String())

	return &TransactionClassification{
		PrimaryType:   "account_close",
		PrimaryAmount: &amount,
		Receiver:      initiator,
		Confidence:    0.9,
		IsRelevant:    true,
		Metadata:      map[string]any{"accounts_closed": len(reclaimed)},
	}
}

// memoClassifier labels pure memo transactions: a memo and nothing moving
// beyond the fee.
type memoClassifier struct{}

func (memoClassifier) Name() string  { return "memo" }
func (memoClassifier) Priority() int { return PriorityMemo }

func (memoClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if ctx.Tx == nil || ctx.Tx.Memo == "" {
		return nil
	}
	if len(ctx.NonFeeLegs()) != 0 {
		return nil
	}
	sender, _ := ctx.Initiator()
	return &TransactionClassification{
		PrimaryType: "memo",
		Sender:      sender,
		Confidence:  0.9,
		IsRelevant:  true,
		Metadata:    map[string]any{"memo": ctx.Tx.Memo},
	}
}

// feeOnlyClassifier produces a deliberately irrelevant candidate for
// transactions that only burned a fee; the engine skips it and falls through
// to the canonical "other".
type feeOnlyClassifier struct{}

func (feeOnlyClassifier) Name() string  { return "fee_only" }
func (feeOnlyClassifier) Priority() int { return PriorityFeeOnly }

func (feeOnlyClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if len(ctx.Legs) == 0 {
		return nil
	}
	for _, l := range ctx.Legs {
		if !isFeeLeg(l) {
			return nil
		}
	}
	return &TransactionClassification{
		PrimaryType:   "fee",
		PrimaryAmount: amountCopy(largestLeg(ctx.Legs)),
		Confidence:    0.5,
		IsRelevant:    false,
		Metadata:      map[string]any{},
	}
}
