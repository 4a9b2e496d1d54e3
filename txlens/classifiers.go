package txlens

// Dispatch priorities. Multisig must outrank everything a wrapped transaction
// could look like; swap sits above the structural rules; plain transfers and
// memo are close to the floor.
// Ordering constraints: the NFT, stake and migration rules must outrank swap
// (a mint, a liquid-stake deposit or a 1:1 migration all show the
// debit+credit shape swap keys on), and the protocol-gated compression and
// marketplace rules must outrank the structural burn/transfer rules (a cNFT
// burn-shape is a compress, an escrow-marketplace sale is not a burn).
const (
	PriorityMultisig       = 89
	PriorityPrivacyCash    = 88
	PriorityBridge         = 87
	PriorityDCA            = 86
	PriorityPerps          = 85
	PriorityCompression    = 85
	PriorityGovernance     = 84
	PriorityNFTMint        = 84
	PriorityDomainName     = 83
	PriorityNFTMarketplace = 83
	PriorityEscrow         = 82
	PriorityNFTBurn        = 82
	PriorityStake          = 81
	PriorityNFTTransfer    = 81
	PriorityTokenMigration = 81
	PrioritySwap           = 80
	PriorityAccountClose   = 78
	PriorityTokenBurn      = 76
	PriorityTokenCreate    = 75
	PrioritySolanaPay      = 60
	PriorityTip            = 55
	PriorityAirdrop        = 50
	PriorityTransfer       = 20
	PriorityMemo           = 10
	PriorityFeeOnly        = 5
)

// DefaultClassifiers returns the full rule set in registration order. Order
// only matters for equal priorities (stable sort keeps it).
func DefaultClassifiers() []Classifier {
	return []Classifier{
		multisigClassifier{},
		privacyCashClassifier{},
		bridgeClassifier{},
		dcaClassifier{},
		perpsClassifier{},
		compressionClassifier{},
		governanceClassifier{},
		nftMintClassifier{},
		domainNameClassifier{},
		nftMarketplaceClassifier{},
		escrowClassifier{},
		nftBurnClassifier{},
		stakeClassifier{},
		nftTransferClassifier{},
		tokenMigrationClassifier{},
		swapClassifier{},
		accountCloseClassifier{},
		tokenBurnClassifier{},
		tokenCreateClassifier{},
		solanaPayClassifier{},
		tipClassifier{},
		airdropClassifier{},
		transferClassifier{},
		memoClassifier{},
		feeOnlyClassifier{},
	}
}
