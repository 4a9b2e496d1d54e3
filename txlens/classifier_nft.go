package txlens

// nftLegs collects every non-fee leg that moves a whole zero-decimal unit.
func nftLegs(legs []TxLeg) []TxLeg {
	var out []TxLeg
	for _, l := range legs {
		if isFeeLeg(l) {
			continue
		}
		if l.IsNFT() {
			out = append(out, l)
		}
	}
	return out
}

// nftMintClassifier detects fresh mints landing with the initiator through a
// known minting protocol.
type nftMintClassifier struct{}

func (nftMintClassifier) Name() string  { return "nft_mint" }
func (nftMintClassifier) Priority() int { return PriorityNFTMint }

func (nftMintClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_CANDY_MACHINE, PROTOCOL_METAPLEX) {
		return nil
	}

	initiator, ok := ctx.Initiator()
	if !ok {
		return nil
	}

	var minted, paid []TxLeg
	for _, l := range ctx.LegsOf(initiator) {
		if l.IsNFT() && l.Side == Credit {
			minted = append(minted, l)
		}
		if l.IsSOL() && l.Side == Debit {
			paid = append(paid, l)
		}
	}
	if len(minted) == 0 {
		return nil
	}

	best := largestLeg(minted)
	return &TransactionClassification{
		PrimaryType:     "nft_mint",
		PrimaryAmount:   amountCopy(best),
		SecondaryAmount: amountCopy(largestLeg(paid)),
		Receiver:        initiator,
		Counterparty:    ctx.Tx.ProtocolID(),
		Confidence:      0.85,
		IsRelevant:      true,
		Metadata:        map[string]any{"mint": best.Amount.Token.Mint},
	}
}

// nftBurnClassifier detects destroyed NFTs: a zero-decimal debit whose mint
// is credited nowhere else in the transaction. A matching credit elsewhere
// means the piece moved, it did not burn.
type nftBurnClassifier struct{}

func (nftBurnClassifier) Name() string  { return "nft_burn" }
func (nftBurnClassifier) Priority() int { return PriorityNFTBurn }

func (nftBurnClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	for _, l := range nftLegs(ctx.Legs) {
		if l.Side != Debit {
			continue
		}
		if hasCreditOfMint(ctx.Legs, l.Amount.Token.Mint) {
			continue
		}
		sender := ""
		if l.Account.Kind == AccountWallet || l.Account.Kind == AccountExternal {
			sender = l.Account.Address
		}
		return &TransactionClassification{
			PrimaryType:   "nft_burn",
			PrimaryAmount: amountCopy(&l),
			Sender:        sender,
			Confidence:    0.85,
			IsRelevant:    true,
			Metadata:      map[string]any{"mint": l.Amount.Token.Mint},
		}
	}
	return nil
}

// nftMarketplaceClassifier covers marketplace purchases and sales. Direct
// attribution of the NFT leg to the wallet is the strong signal; escrow-style
// marketplaces hide the NFT leg, so the rule falls back through SOL-flow
// heuristics at decreasing confidence.
type nftMarketplaceClassifier struct{}

func (nftMarketplaceClassifier) Name() string  { return "nft_marketplace" }
func (nftMarketplaceClassifier) Priority() int { return PriorityNFTMarketplace }

func (nftMarketplaceClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	if !ctx.protocolIn(PROTOCOL_MAGIC_EDEN, PROTOCOL_TENSOR) {
		return nil
	}

	initiator, ok := ctx.Initiator()
	if !ok {
		return nil
	}

	metadata := map[string]any{"marketplace": ctx.Tx.Protocol.Name}
	build := func(primaryType string, nft, sol *TxLeg, confidence float64) *TransactionClassification {
		return &TransactionClassification{
			PrimaryType:     primaryType,
			PrimaryAmount:   amountCopy(nft),
			SecondaryAmount: amountCopy(sol),
			Sender:          initiator,
			Counterparty:    ctx.Tx.ProtocolID(),
			Confidence:      confidence,
			IsRelevant:      true,
			Metadata:        metadata,
		}
	}

	var solOut, solIn []TxLeg
	for _, l := range ctx.LegsOf(initiator) {
		// Direct attribution beats every fallback.
		if l.IsNFT() && l.Side == Credit {
			return build("nft_purchase", &l, largestLeg(solOut), 0.9)
		}
		if l.IsNFT() && l.Side == Debit {
			return build("nft_sale", &l, largestLeg(solIn), 0.9)
		}
		if l.IsSOL() && l.Side == Debit {
			solOut = append(solOut, l)
		}
		if l.IsSOL() && l.Side == Credit {
			solIn = append(solIn, l)
		}
	}

	// Escrow marketplaces: the wallet only shows the SOL side.
	if len(solOut) > 0 && len(solIn) == 0 {
		return build("nft_purchase", largestLeg(solOut), nil, 0.85)
	}
	if len(solIn) > 0 && len(solOut) == 0 {
		return build("nft_sale", largestLeg(solIn), nil, 0.85)
	}

	// Weakest signal: an NFT moved somewhere and the wallet had SOL flow.
	if all := nftLegs(ctx.Legs); len(all) > 0 && (len(solOut) > 0 || len(solIn) > 0) {
		debits, credits := ctx.InitiatorFlow()
		if debits >= credits {
			return build("nft_purchase", largestLeg(all), largestLeg(solOut), 0.7)
		}
		return build("nft_sale", largestLeg(all), largestLeg(solIn), 0.7)
	}

	return nil
}

// nftTransferClassifier matches a zero-decimal debit with a credit of the
// same mint: the piece changed owners.
type nftTransferClassifier struct{}

func (nftTransferClassifier) Name() string  { return "nft_transfer" }
func (nftTransferClassifier) Priority() int { return PriorityNFTTransfer }

func (nftTransferClassifier) Classify(ctx *ClassifierContext) *TransactionClassification {
	all := nftLegs(ctx.Legs)
	for _, out := range all {
		if out.Side != Debit {
			continue
		}
		for _, in := range all {
			if in.Side != Credit || in.Amount.Token.Mint != out.Amount.Token.Mint {
				continue
			}
			return &TransactionClassification{
				PrimaryType:   "nft_transfer",
				PrimaryAmount: amountCopy(&out),
				Sender:        out.Account.Address,
				Receiver:      in.Account.Address,
				Confidence:    0.8,
				IsRelevant:    true,
				Metadata:      map[string]any{"mint": out.Amount.Token.Mint},
			}
		}
	}
	return nil
}
