package txlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	msolMint  = "mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So"
	dgodMint  = "DGoDqK8iG5DM7AzcUf8jMrEUUwoeXRRQKM5ore4sDmwh"
	fooV1Mint = "Foo1V1cwprvvtcGsize7XcdRuJosgAsUKM5ore4sDmvv"
	fooV2Mint = "Foo2V2cwprvvtcGsize7XcdRuJosgAsUKM5ore4sDmvv"
)

var (
	bonkToken  = TokenInfo{Mint: bonkMint, Symbol: "BONK", Name: "Bonk", Decimals: 5}
	msolToken  = TokenInfo{Mint: msolMint, Symbol: "mSOL", Name: "Marinade staked SOL", Decimals: 9}
	dgodToken  = TokenInfo{Mint: dgodMint, Symbol: "DGOD", Name: "DeGod", Decimals: 0}
	fooV1Token = TokenInfo{Mint: fooV1Mint, Symbol: "FOOv1", Name: "Foo v1", Decimals: 6}
	fooV2Token = TokenInfo{Mint: fooV2Mint, Symbol: "FOO", Name: "Foo", Decimals: 6}
)

func observerTx() *RawTransaction {
	return &RawTransaction{AccountKeys: []string{addrAlice}}
}

func protoTx(id, name string) *RawTransaction {
	return &RawTransaction{
		AccountKeys: []string{addrAlice},
		Protocol:    &ProtocolInfo{ID: id, Name: name},
	}
}

func classifyAll(t *testing.T, legs []TxLeg, tx *RawTransaction, wallet string) *TransactionClassification {
	t.Helper()
	result := NewEngine().Classify(legs, tx, wallet)
	require.NotNil(t, result)
	return result
}

func TestClassify_AccountClose(t *testing.T) {
	legs := []TxLeg{
		solLeg(ExternalAccount(addrAlice), Debit, RoleFee, 5_000),
		solLeg(ExternalAccount(addrAlice), Credit, RoleReceived, 2_039_280),
	}

	result := classifyAll(t, legs, observerTx(), "")
	assert.Equal(t, "account_close", result.PrimaryType)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Equal(t, addrAlice, result.Receiver)
	assert.Equal(t, 1, result.Metadata["accounts_closed"])
	require.NotNil(t, result.PrimaryAmount)
	assert.InDelta(t, 0.00203928, result.PrimaryAmount.AmountUI, 1e-12)
}

func TestClassify_DexSwap(t *testing.T) {
	tx := protoTx(PROTOCOL_JUPITER, "Jupiter")
	legs := []TxLeg{
		solLeg(WalletAccount(addrAlice), Debit, RoleFee, 5_000),
		tokenLeg(WalletAccount(addrAlice), Debit, RoleSent, usdcToken, "100000000"),
		solLeg(WalletAccount(addrAlice), Credit, RoleReceived, 500_000_000),
	}

	result := classifyAll(t, legs, tx, addrAlice)
	assert.Equal(t, "swap", result.PrimaryType)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, addrAlice, result.Sender)
	assert.Equal(t, addrAlice, result.Receiver)
	assert.Equal(t, PROTOCOL_JUPITER, result.Counterparty)
	require.NotNil(t, result.PrimaryAmount)
	assert.Equal(t, "USDC", result.PrimaryAmount.Token.Symbol)
	assert.InDelta(t, 100.0, result.PrimaryAmount.AmountUI, 1e-12)
	require.NotNil(t, result.SecondaryAmount)
	assert.Equal(t, "SOL", result.SecondaryAmount.Token.Symbol)
	assert.InDelta(t, 0.5, result.SecondaryAmount.AmountUI, 1e-12)
	assert.Equal(t, "SOL", result.Metadata["token_in"])
	assert.Equal(t, "USDC", result.Metadata["token_out"])
}

func TestClassify_SwapWalletPairOverridesFeePayer(t *testing.T) {
	// A router pays the fee; the wallet's own in/out pair wins.
	const addrCarol = "Caro1W6nvCTZdAcAkzmqzGFJssL1V9saRPU1hXjCVabc"
	tx := &RawTransaction{
		AccountKeys: []string{addrAlice},
		Protocol:    &ProtocolInfo{ID: PROTOCOL_JUPITER, Name: "Jupiter"},
	}
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "100000000"),
		solLeg(ExternalAccount(addrAlice), Credit, RoleReceived, 500_000_000),
		solLeg(WalletAccount(addrCarol), Debit, RoleSent, 2_000_000_000),
		tokenLeg(WalletAccount(addrCarol), Credit, RoleReceived, bonkToken, "999900000"),
	}

	result := classifyAll(t, legs, tx, addrCarol)
	assert.Equal(t, "swap", result.PrimaryType)
	assert.Equal(t, "SOL", result.PrimaryAmount.Token.Symbol)
	assert.InDelta(t, 2.0, result.PrimaryAmount.AmountUI, 1e-12)
	assert.Equal(t, "BONK", result.SecondaryAmount.Token.Symbol)
}

func TestClassify_MemoOnly(t *testing.T) {
	tx := observerTx()
	tx.Memo = "Hello, Solana!"
	legs := []TxLeg{
		solLeg(ExternalAccount(addrAlice), Debit, RoleFee, 5_000),
		solLeg(FeeAccount(), Credit, RoleFee, 5_000),
	}

	result := classifyAll(t, legs, tx, "")
	assert.Equal(t, "memo", result.PrimaryType)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Equal(t, addrAlice, result.Sender)
	assert.Equal(t, "Hello, Solana!", result.Metadata["memo"])
}

func TestClassify_MultisigExecuteOutranksTransfer(t *testing.T) {
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "50000000"),
		tokenLeg(ExternalAccount(addrBob), Credit, RoleReceived, usdcToken, "50000000"),
	}

	result := classifyAll(t, legs, protoTx(PROTOCOL_SQUADS, "Squads v4"), "")
	assert.Equal(t, "multisig_execute", result.PrimaryType)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, 2, result.Metadata["legs_moved"])

	// The same legs without the vault program are a plain transfer.
	result = classifyAll(t, legs, observerTx(), "")
	assert.Equal(t, "transfer", result.PrimaryType)
}

func TestClassify_MultisigApprove(t *testing.T) {
	legs := []TxLeg{
		solLeg(ExternalAccount(addrAlice), Debit, RoleFee, 5_000),
		solLeg(FeeAccount(), Credit, RoleFee, 5_000),
	}

	result := classifyAll(t, legs, protoTx(PROTOCOL_SQUADS, "Squads v4"), "")
	assert.Equal(t, "multisig_approve", result.PrimaryType)
	assert.Nil(t, result.PrimaryAmount)
}

func TestClassify_EmptyTransaction(t *testing.T) {
	result := classifyAll(t, nil, &RawTransaction{}, "")
	assert.Equal(t, "other", result.PrimaryType)
	assert.Zero(t, result.Confidence)
	assert.False(t, result.IsRelevant)
}

func TestClassify_FeeOnlyFallsThroughToOther(t *testing.T) {
	legs := []TxLeg{
		solLeg(ExternalAccount(addrAlice), Debit, RoleFee, 5_000),
		solLeg(FeeAccount(), Credit, RoleFee, 5_000),
	}

	result := classifyAll(t, legs, observerTx(), "")
	assert.Equal(t, "other", result.PrimaryType)
	assert.False(t, result.IsRelevant)

	// The rule itself produces an irrelevant fee candidate.
	ctx := &ClassifierContext{Legs: legs, Tx: observerTx()}
	candidate := feeOnlyClassifier{}.Classify(ctx)
	require.NotNil(t, candidate)
	assert.Equal(t, "fee", candidate.PrimaryType)
	assert.False(t, candidate.IsRelevant)
}

func TestClassify_PrivacyShieldAndUnshield(t *testing.T) {
	tx := protoTx(PROTOCOL_PRIVACY_CASH, "Privacy Cash")

	shield := classifyAll(t, []TxLeg{
		solLeg(ExternalAccount(addrAlice), Debit, RoleSent, 1_000_000_000),
	}, tx, "")
	assert.Equal(t, "privacy_shield", shield.PrimaryType)
	assert.Equal(t, 0.85, shield.Confidence)

	unshield := classifyAll(t, []TxLeg{
		solLeg(ExternalAccount(addrAlice), Credit, RoleReceived, 1_000_000_000),
	}, tx, "")
	assert.Equal(t, "privacy_unshield", unshield.PrimaryType)
}

func TestClassify_PrivacyExactTieBreaksOnLargestLeg(t *testing.T) {
	// Debits and credits sum equal; the single largest leg is a credit.
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "3000000"),
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "2000000"),
		tokenLeg(ExternalAccount(addrAlice), Credit, RoleReceived, usdcToken, "5000000"),
	}

	result := classifyAll(t, legs, protoTx(PROTOCOL_PRIVACY_CASH, "Privacy Cash"), "")
	assert.Equal(t, "privacy_unshield", result.PrimaryType)
	assert.InDelta(t, 5.0, result.PrimaryAmount.AmountUI, 1e-12)
}

func TestClassify_DCADirections(t *testing.T) {
	tx := protoTx(PROTOCOL_JUPITER_DCA, "Jupiter DCA")

	deposit := classifyAll(t, []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "100000000"),
	}, tx, "")
	assert.Equal(t, "dca_deposit", deposit.PrimaryType)
	assert.Equal(t, 0.85, deposit.Confidence)
	assert.Equal(t, "Jupiter DCA", deposit.Metadata["protocol"])

	withdraw := classifyAll(t, []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Credit, RoleReceived, usdcToken, "100000000"),
	}, tx, "")
	assert.Equal(t, "dca_withdraw", withdraw.PrimaryType)
}

func TestClassify_PerpsEscrowBridge(t *testing.T) {
	debit := []TxLeg{tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "250000000")}
	credit := []TxLeg{tokenLeg(ExternalAccount(addrAlice), Credit, RoleReceived, usdcToken, "250000000")}

	assert.Equal(t, "perps_deposit",
		classifyAll(t, debit, protoTx(PROTOCOL_DRIFT, "Drift"), "").PrimaryType)
	assert.Equal(t, "escrow_withdraw",
		classifyAll(t, credit, protoTx(PROTOCOL_STREAMFLOW, "Streamflow"), "").PrimaryType)
	assert.Equal(t, "bridge_out",
		classifyAll(t, debit, protoTx(PROTOCOL_WORMHOLE, "Wormhole"), "").PrimaryType)
	assert.Equal(t, "bridge_in",
		classifyAll(t, credit, protoTx(PROTOCOL_DEBRIDGE, "deBridge"), "").PrimaryType)
}

func TestClassify_CompressionOutranksNFTBurnShape(t *testing.T) {
	// Compressing an NFT looks like a burn: a zero-decimal debit with no
	// matching credit. The program gate decides.
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, dgodToken, "1"),
	}

	result := classifyAll(t, legs, protoTx(PROTOCOL_BUBBLEGUM, "Bubblegum"), "")
	assert.Equal(t, "compress", result.PrimaryType)
	assert.Equal(t, 0.8, result.Confidence)

	result = classifyAll(t, legs, observerTx(), "")
	assert.Equal(t, "nft_burn", result.PrimaryType)
}

func TestClassify_StakeDepositOutranksSwapShape(t *testing.T) {
	// Liquid staking shows a SOL-out/mSOL-in pair that swap would claim.
	legs := []TxLeg{
		solLeg(WalletAccount(addrAlice), Debit, RoleSent, 2_000_000_000),
		tokenLeg(WalletAccount(addrAlice), Credit, RoleReceived, msolToken, "1900000000"),
	}

	result := classifyAll(t, legs, protoTx(PROTOCOL_MARINADE, "Marinade"), addrAlice)
	assert.Equal(t, "stake_deposit", result.PrimaryType)
	assert.Equal(t, 0.85, result.Confidence)
	assert.InDelta(t, 2.0, result.PrimaryAmount.AmountUI, 1e-12)
}

func TestClassify_StakeWithdrawWithReward(t *testing.T) {
	legs := []TxLeg{
		solLeg(ExternalAccount(addrAlice), Credit, RoleReward, 10_500_000_000),
	}

	result := classifyAll(t, legs, protoTx(PROTOCOL_STAKE, "Stake Program"), "")
	assert.Equal(t, "stake_withdraw", result.PrimaryType)
	assert.Equal(t, true, result.Metadata["reward"])
}

func TestClassify_NFTMint(t *testing.T) {
	legs := []TxLeg{
		solLeg(WalletAccount(addrAlice), Debit, RoleSent, 1_500_000_000),
		tokenLeg(WalletAccount(addrAlice), Credit, RoleReceived, dgodToken, "1"),
	}

	result := classifyAll(t, legs, protoTx(PROTOCOL_CANDY_MACHINE, "Candy Machine"), addrAlice)
	assert.Equal(t, "nft_mint", result.PrimaryType)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, addrAlice, result.Receiver)
	assert.Equal(t, dgodMint, result.Metadata["mint"])
	require.NotNil(t, result.SecondaryAmount)
	assert.InDelta(t, 1.5, result.SecondaryAmount.AmountUI, 1e-12)
}

func TestClassify_NFTBurnVersusTransfer(t *testing.T) {
	burn := classifyAll(t, []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, dgodToken, "1"),
	}, observerTx(), "")
	assert.Equal(t, "nft_burn", burn.PrimaryType)
	assert.Equal(t, addrAlice, burn.Sender)

	// A credit of the same mint means the piece moved.
	transfer := classifyAll(t, []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, dgodToken, "1"),
		tokenLeg(ExternalAccount(addrBob), Credit, RoleReceived, dgodToken, "1"),
	}, observerTx(), "")
	assert.Equal(t, "nft_transfer", transfer.PrimaryType)
	assert.Equal(t, addrAlice, transfer.Sender)
	assert.Equal(t, addrBob, transfer.Receiver)
}

func TestClassify_NFTMarketplaceDirectAttribution(t *testing.T) {
	purchase := classifyAll(t, []TxLeg{
		solLeg(WalletAccount(addrAlice), Debit, RoleSent, 2_000_000_000),
		tokenLeg(WalletAccount(addrAlice), Credit, RoleReceived, dgodToken, "1"),
	}, protoTx(PROTOCOL_MAGIC_EDEN, "Magic Eden"), addrAlice)
	assert.Equal(t, "nft_purchase", purchase.PrimaryType)
	assert.Equal(t, 0.9, purchase.Confidence)
	assert.InDelta(t, 2.0, purchase.SecondaryAmount.AmountUI, 1e-12)

	sale := classifyAll(t, []TxLeg{
		solLeg(WalletAccount(addrAlice), Credit, RoleReceived, 2_000_000_000),
		tokenLeg(WalletAccount(addrAlice), Debit, RoleSent, dgodToken, "1"),
	}, protoTx(PROTOCOL_TENSOR, "Tensor"), addrAlice)
	assert.Equal(t, "nft_sale", sale.PrimaryType)
	assert.Equal(t, 0.9, sale.Confidence)
}

func TestClassify_NFTMarketplaceEscrowFallback(t *testing.T) {
	// Escrow marketplaces hide the NFT leg from the wallet.
	legs := []TxLeg{
		solLeg(WalletAccount(addrAlice), Debit, RoleSent, 2_000_000_000),
		solLeg(ExternalAccount(addrBob), Credit, RoleReceived, 2_000_000_000),
	}

	result := classifyAll(t, legs, protoTx(PROTOCOL_TENSOR, "Tensor"), addrAlice)
	assert.Equal(t, "nft_purchase", result.PrimaryType)
	assert.Equal(t, 0.85, result.Confidence)
	assert.InDelta(t, 2.0, result.PrimaryAmount.AmountUI, 1e-12)
}

func TestClassify_NFTMarketplaceWeakSignal(t *testing.T) {
	// The NFT moved between third parties while the wallet had SOL flow in
	// both directions.
	legs := []TxLeg{
		solLeg(WalletAccount(addrAlice), Debit, RoleSent, 5_000_000_000),
		solLeg(WalletAccount(addrAlice), Credit, RoleReceived, 2_039_280),
		tokenLeg(ExternalAccount(addrBob), Debit, RoleSent, dgodToken, "1"),
		tokenLeg(ExternalAccount(addrPool), Credit, RoleReceived, dgodToken, "1"),
	}

	result := classifyAll(t, legs, protoTx(PROTOCOL_MAGIC_EDEN, "Magic Eden"), addrAlice)
	assert.Equal(t, "nft_purchase", result.PrimaryType)
	assert.Equal(t, 0.7, result.Confidence)
}

func TestClassify_TokenBurn(t *testing.T) {
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, bonkToken, "50000000"),
	}

	result := classifyAll(t, legs, observerTx(), "")
	assert.Equal(t, "token_burn", result.PrimaryType)
	assert.Equal(t, 0.8, result.Confidence)
	assert.Equal(t, bonkMint, result.Metadata["mint"])
	assert.InDelta(t, 500.0, result.PrimaryAmount.AmountUI, 1e-12)
}

func TestClassify_TokenCreateThreshold(t *testing.T) {
	// A large credit with nothing going out reads as an initial mint.
	result := classifyAll(t, []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Credit, RoleReceived, bonkToken, "5000000000"),
	}, observerTx(), "")
	assert.Equal(t, "token_create", result.PrimaryType)
	assert.Equal(t, 0.7, result.Confidence)
	assert.Equal(t, addrAlice, result.Receiver)

	// Below the threshold the shape is an ordinary receipt.
	result = classifyAll(t, []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Credit, RoleReceived, bonkToken, "90000000"),
	}, observerTx(), "")
	assert.Equal(t, "airdrop", result.PrimaryType)
	assert.Equal(t, 0.6, result.Confidence)
}

func TestClassify_TokenMigration(t *testing.T) {
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, fooV1Token, "2000000000000"),
		tokenLeg(ExternalAccount(addrAlice), Credit, RoleReceived, fooV2Token, "2000000000000"),
	}

	result := classifyAll(t, legs, observerTx(), "")
	assert.Equal(t, "token_migrate", result.PrimaryType)
	assert.Equal(t, 0.7, result.Confidence)
	assert.Equal(t, fooV1Mint, result.Metadata["from_mint"])
	assert.Equal(t, fooV2Mint, result.Metadata["to_mint"])
}

func TestClassify_UnequalLargePairIsSwapNotMigration(t *testing.T) {
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, fooV1Token, "2000000000000"),
		tokenLeg(ExternalAccount(addrAlice), Credit, RoleReceived, fooV2Token, "3000000000000"),
	}

	result := classifyAll(t, legs, observerTx(), "")
	assert.Equal(t, "swap", result.PrimaryType)
	assert.Equal(t, 0.75, result.Confidence)
}

func TestClassify_SolanaPayReference(t *testing.T) {
	tx := observerTx()
	tx.Memo = usdcMint // pubkey-sized base58 reference
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "25000000"),
		tokenLeg(ExternalAccount(addrBob), Credit, RoleReceived, usdcToken, "25000000"),
	}

	result := classifyAll(t, legs, tx, "")
	assert.Equal(t, "solana_pay", result.PrimaryType)
	assert.Equal(t, 0.8, result.Confidence)
	assert.Equal(t, usdcMint, result.Metadata["reference"])

	// Free-form memo text plus value movement is a plain transfer.
	tx.Memo = "thanks for lunch"
	result = classifyAll(t, legs, tx, "")
	assert.Equal(t, "transfer", result.PrimaryType)
}

func TestLooksLikePayReference(t *testing.T) {
	assert.True(t, looksLikePayReference("solana-pay:order-42"))
	assert.True(t, looksLikePayReference(usdcMint))
	assert.False(t, looksLikePayReference("Hello, Solana!"))
	assert.False(t, looksLikePayReference("short"))
	assert.False(t, looksLikePayReference(usdcMint+"ab")) // too long for a pubkey
	assert.False(t, looksLikePayReference("0"+usdcMint[1:])) // 0 is not base58
}

func TestClassify_Tip(t *testing.T) {
	legs := []TxLeg{
		solLeg(ExternalAccount(addrAlice), Debit, RoleSent, 50_000_000),
		solLeg(ExternalAccount(addrBob), Credit, RoleReceived, 50_000_000),
	}

	result := classifyAll(t, legs, protoTx(PROTOCOL_JITO_TIPS, "Jito Tips"), "")
	assert.Equal(t, "tip", result.PrimaryType)
	assert.Equal(t, 0.7, result.Confidence)
	assert.Equal(t, PROTOCOL_JITO_TIPS, result.Counterparty)
}

func TestClassify_Airdrop(t *testing.T) {
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Credit, RoleReceived, bonkToken, "10000000"),
	}

	result := classifyAll(t, legs, observerTx(), "")
	assert.Equal(t, "airdrop", result.PrimaryType)
	assert.Equal(t, addrAlice, result.Receiver)
	assert.Equal(t, bonkMint, result.Metadata["mint"])
}

func TestClassify_SolTransfer(t *testing.T) {
	legs := []TxLeg{
		solLeg(ExternalAccount(addrAlice), Debit, RoleSent, 1_500_000_000),
		solLeg(ExternalAccount(addrBob), Credit, RoleReceived, 1_500_000_000),
		solLeg(ExternalAccount(addrAlice), Debit, RoleFee, 5_000),
		solLeg(FeeAccount(), Credit, RoleFee, 5_000),
	}

	result := classifyAll(t, legs, observerTx(), "")
	assert.Equal(t, "transfer", result.PrimaryType)
	assert.Equal(t, 0.7, result.Confidence)
	assert.Equal(t, addrAlice, result.Sender)
	assert.Equal(t, addrBob, result.Receiver)
	assert.Equal(t, "SOL", result.Metadata["token"])
	assert.InDelta(t, 1.5, result.PrimaryAmount.AmountUI, 1e-12)
}

func TestClassify_SolanaPayFromReceivingPerspective(t *testing.T) {
	// The merchant's view of an incoming payment: the pair is mirrored.
	tx := &RawTransaction{AccountKeys: []string{addrAlice}, Memo: usdcMint}
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "25000000"),
		tokenLeg(WalletAccount(addrBob), Credit, RoleReceived, usdcToken, "25000000"),
	}

	result := classifyAll(t, legs, tx, addrBob)
	assert.Equal(t, "solana_pay", result.PrimaryType)
	assert.Equal(t, addrAlice, result.Sender)
	assert.Equal(t, addrBob, result.Receiver)
}

func TestClassify_GovernanceVoteAndDeposit(t *testing.T) {
	tx := protoTx(PROTOCOL_GOVERNANCE, "Realms Governance")

	vote := classifyAll(t, nil, tx, "")
	assert.Equal(t, "governance_vote", vote.PrimaryType)
	assert.Equal(t, 0.8, vote.Confidence)

	deposit := classifyAll(t, []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "100000000"),
	}, tx, "")
	assert.Equal(t, "governance_deposit", deposit.PrimaryType)
}

func TestClassify_DomainRegisterAndUpdate(t *testing.T) {
	tx := protoTx(PROTOCOL_BONFIDA, "Bonfida Name Service")

	register := classifyAll(t, []TxLeg{
		solLeg(ExternalAccount(addrAlice), Debit, RoleSent, 20_000_000),
	}, tx, "")
	assert.Equal(t, "domain_register", register.PrimaryType)
	assert.InDelta(t, 0.02, register.PrimaryAmount.AmountUI, 1e-12)

	update := classifyAll(t, nil, tx, "")
	assert.Equal(t, "domain_update", update.PrimaryType)
}
