package txlens

// directionalResult implements the shared deposit-vs-withdraw shape used by
// the DCA, perps, escrow, compression, bridge and privacy rules: sum the
// initiator's non-fee debits and credits; debits >= credits reads as the
// deposit/open/compress branch.
func directionalResult(ctx *ClassifierContext, depositType, withdrawType string, confidence float64) *TransactionClassification {
	legs := ctx.InitiatorLegs()
	if len(legs) == 0 {
		return nil
	}

	debits, credits := ctx.InitiatorFlow()
	primaryType := withdrawType
	if debits >= credits {
		primaryType = depositType
	}

	initiator, _ := ctx.Initiator()
	metadata := map[string]any{}
	counterparty := ""
	if ctx.Tx.Protocol != nil {
		counterparty = ctx.Tx.Protocol.ID
		metadata["protocol"] = ctx.Tx.Protocol.Name
	}

	return &TransactionClassification{
		PrimaryType:   primaryType,
		PrimaryAmount: amountCopy(largestLeg(legs)),
		Sender:        initiator,
		Counterparty:  counterparty,
		Confidence:    confidence,
		IsRelevant:    true,
		Metadata:      metadata,
	}
}

// dcaClassifier covers Jupiter DCA position funding and closure.
type dcaClassifier struct{}

func (dcaClassifier) Name() string  { return "dca" }
func (dcaClassifier) Priority() int { return PriorityDCA }

func (dcaClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_JUPITER_DCA) {
		return nil
	}
	return directionalResult(ctx, "dca_deposit", "dca_withdraw", 0.85)
}

// perpsClassifier covers perpetuals margin movement (Drift, Jupiter Perps).
type perpsClassifier struct{}

func (perpsClassifier) Name() string  { return "perps" }
func (perpsClassifier) Priority() int { return PriorityPerps }

func (perpsClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_DRIFT, PROTOCOL_JUPITER_PERPS) {
		return nil
	}
	return directionalResult(ctx, "perps_deposit", "perps_withdraw", 0.8)
}

// escrowClassifier covers stream/escrow contracts (Streamflow).
type escrowClassifier struct{}

func (escrowClassifier) Name() string  { return "escrow" }
func (escrowClassifier) Priority() int { return PriorityEscrow }

func (escrowClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_STREAMFLOW) {
		return nil
	}
	return directionalResult(ctx, "escrow_deposit", "escrow_withdraw", 0.75)
}

// bridgeClassifier covers cross-chain bridges (Wormhole, deBridge).
type bridgeClassifier struct{}

func (bridgeClassifier) Name() string  { return "bridge" }
func (bridgeClassifier) Priority() int { return PriorityBridge }

func (bridgeClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_WORMHOLE, PROTOCOL_DEBRIDGE) {
		return nil
	}
	return directionalResult(ctx, "bridge_out", "bridge_in", 0.85)
}

// compressionClassifier covers state compression (Bubblegum cNFTs, Light).
type compressionClassifier struct{}

func (compressionClassifier) Name() string  { return "compression" }
func (compressionClassifier) Priority() int { return PriorityCompression }

func (compressionClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_BUBBLEGUM, PROTOCOL_LIGHT) {
		return nil
	}
	return directionalResult(ctx, "compress", "decompress", 0.8)
}

// privacyCashClassifier covers shield/unshield movement through the privacy
// pool. It follows the aggregate direction rule but, unlike its siblings,
// breaks exact ties by the single largest leg rather than the aggregate.
type privacyCashClassifier struct{}

func (privacyCashClassifier) Name() string  { return "privacy_cash" }
func (privacyCashClassifier) Priority() int { return PriorityPrivacyCash }

func (privacyCashClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_PRIVACY_CASH) {
		return nil
	}

	legs := ctx.InitiatorLegs()
	if len(legs) == 0 {
		return nil
	}

	debits, credits := ctx.InitiatorFlow()
	deposit := debits >= credits
	if debits == credits {
		if best := largestLeg(legs); best != nil {
			deposit = best.Side == Debit
		}
	}

	primaryType := "privacy_unshield"
	if deposit {
		primaryType = "privacy_shield"
	}

	initiator, _ := ctx.Initiator()
	return &TransactionClassification{
		PrimaryType:   primaryType,
		PrimaryAmount: amountCopy(largestLeg(legs)),
		Sender:        initiator,
		Counterparty:  ctx.Tx.ProtocolID(),
		Confidence:    0.85,
		IsRelevant:    true,
		Metadata:      map[string]any{"protocol": ctx.Tx.Protocol.Name},
	}
}

// stakeClassifier covers native and liquid staking flows.
type stakeClassifier struct{}

func (stakeClassifier) Name() string  { return "stake" }
func (stakeClassifier) Priority() int { return PriorityStake }

func (stakeClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_STAKE, PROTOCOL_MARINADE) {
		return nil
	}

	result := directionalResult(ctx, "stake_deposit", "stake_withdraw", 0.85)
	if result == nil {
		return nil
	}
	for _, l := range ctx.InitiatorLegs() {
		if l.Role == RoleReward {
			result.Metadata["reward"] = true
			break
		}
	}
	return result
}

// tokenBurnClassifier detects supply destruction: the initiator debits a
// token that is credited nowhere else, and receives nothing back (a received
// counter-side would make it look like a swap).
type tokenBurnClassifier struct{}

func (tokenBurnClassifier) Name() string  { return "token_burn" }
func (tokenBurnClassifier) Priority() int { return PriorityTokenBurn }

func (tokenBurnClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	legs := ctx.InitiatorLegs()

	var burned []TxLeg
	for _, l := range legs {
		if l.Side == Credit {
			return nil
		}
		if l.IsSOL() {
			continue
		}
		if hasCreditOfMint(ctx.Legs, l.Amount.Token.Mint) {
			continue
		}
		burned = append(burned, l)
	}
	if len(burned) == 0 {
		return nil
	}

	initiator, _ := ctx.Initiator()
	best := largestLeg(burned)
	return &TransactionClassification{
		PrimaryType:   "token_burn",
		PrimaryAmount: amountCopy(best),
		Sender:        initiator,
		Confidence:    0.8,
		IsRelevant:    true,
		Metadata:      map[string]any{"mint": best.Amount.Token.Mint},
	}
}

// tokenCreateClassifier detects initial mints landing in the creator's
// wallet: a large credit of a non-SOL token with nothing going out. Below
// the threshold the shape is indistinguishable from an ordinary receipt, so
// the rule abstains.
type tokenCreateClassifier struct{}

func (tokenCreateClassifier) Name() string  { return "token_create" }
func (tokenCreateClassifier) Priority() int { return PriorityTokenCreate }

func (tokenCreateClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	legs := ctx.InitiatorLegs()

	var minted []TxLeg
	for _, l := range legs {
		if l.Side == Debit && !l.IsSOL() {
			return nil
		}
		if l.Side != Credit || l.IsSOL() {
			continue
		}
		if l.Amount.Token.Mint == WRAPPED_SOL_MINT.String() {
			continue
		}
		if l.Amount.AmountUI >= TokenCreateThreshold {
			minted = append(minted, l)
		}
	}
	if len(minted) == 0 {
		return nil
	}

	initiator, _ := ctx.Initiator()
	best := largestLeg(minted)
	return &TransactionClassification{
		PrimaryType:   "token_create",
		PrimaryAmount: amountCopy(best),
		Receiver:      initiator,
		Confidence:    0.7,
		IsRelevant:    true,
		Metadata:      map[string]any{"mint": best.Amount.Token.Mint},
	}
}

// tokenMigrationClassifier detects v1->v2 style mint migrations: very large,
// near-equal debit and credit of different mints. It sits above swap so the
// size gate gets first refusal; genuinely unequal pairs fall through and
// classify as swaps.
type tokenMigrationClassifier struct{}

func (tokenMigrationClassifier) Name() string  { return "token_migration" }
func (tokenMigrationClassifier) Priority() int { return PriorityTokenMigration }

func (tokenMigrationClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	legs := ctx.InitiatorLegs()
	var out, in *TxLeg
	for i, l := range legs {
		if l.IsSOL() || l.Amount.AmountUI < TokenMigrationThreshold {
			continue
		}
		switch l.Side {
		case Debit:
			if out == nil || l.Amount.AmountUI > out.Amount.AmountUI {
				out = &legs[i]
			}
		case Credit:
			if in == nil || l.Amount.AmountUI > in.Amount.AmountUI {
				in = &legs[i]
			}
		}
	}
	if out == nil || in == nil || out.Amount.Token.Mint == in.Amount.Token.Mint {
		return nil
	}

	// Migrations redeem roughly 1:1; anything else is a trade.
	ratio := out.Amount.AmountUI / in.Amount.AmountUI
	if ratio < 0.99 || ratio > 1.01 {
		return nil
	}

	initiator, _ := ctx.Initiator()
	return &TransactionClassification{
		PrimaryType:     "token_migrate",
		PrimaryAmount:   amountCopy(out),
		SecondaryAmount: amountCopy(in),
		Sender:          initiator,
		Receiver:        initiator,
		Confidence:      0.7,
		IsRelevant:      true,
		Metadata: map[string]any{
			"from_mint": out.Amount.Token.Mint,
			"to_mint":   in.Amount.Token.Mint,
		},
	}
}
