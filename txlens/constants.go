package txlens

import "github.com/gagliardetto/solana-go"

// Protocol ids. These are the values carried by ProtocolInfo.ID and by
// protocol-kind AccountIDs.
const (
	PROTOCOL_JUPITER       = "jupiter"
	PROTOCOL_RAYDIUM       = "raydium"
	PROTOCOL_ORCA          = "orca"
	PROTOCOL_METEORA       = "meteora"
	PROTOCOL_PUMPFUN       = "pumpfun"
	PROTOCOL_PHOENIX       = "phoenix"
	PROTOCOL_LIFINITY      = "lifinity"
	PROTOCOL_OKX           = "okx"
	PROTOCOL_JUPITER_DCA   = "jupiter-dca"
	PROTOCOL_JUPITER_PERPS = "jupiter-perps"
	PROTOCOL_DRIFT         = "drift"
	PROTOCOL_SQUADS        = "squads-v4"
	PROTOCOL_GOVERNANCE    = "spl-governance"
	PROTOCOL_BONFIDA       = "bonfida-names"
	PROTOCOL_WORMHOLE      = "wormhole"
	PROTOCOL_DEBRIDGE      = "debridge"
	PROTOCOL_STREAMFLOW    = "streamflow"
	PROTOCOL_BUBBLEGUM     = "bubblegum"
	PROTOCOL_LIGHT         = "light-protocol"
	PROTOCOL_PRIVACY_CASH  = "privacy-cash"
	PROTOCOL_JITO_TIPS     = "jito-tips"
	PROTOCOL_MAGIC_EDEN    = "magic-eden"
	PROTOCOL_TENSOR        = "tensor"
	PROTOCOL_CANDY_MACHINE = "candy-machine"
	PROTOCOL_METAPLEX      = "metaplex"
	PROTOCOL_STAKE         = "stake"
	PROTOCOL_MARINADE      = "marinade"
	PROTOCOL_SOLANA_PAY    = "solana-pay"
	PROTOCOL_TOKEN         = "spl-token"
	PROTOCOL_ATA           = "associated-token"
	PROTOCOL_MEMO          = "memo"
	PROTOCOL_COMPUTE       = "compute-budget"
	PROTOCOL_SYSTEM        = "system"
)

// On-chain program ids, grouped the way the detector prioritizes them.
var (
	JUPITER_PROGRAM_ID       = solana.MustPublicKeyFromBase58("JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4")
	RAYDIUM_V4_PROGRAM_ID    = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")
	RAYDIUM_CPMM_PROGRAM_ID  = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")
	RAYDIUM_CLMM_PROGRAM_ID  = solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")
	ORCA_WHIRLPOOL_PROGRAM_ID = solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
	METEORA_DLMM_PROGRAM_ID  = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")
	METEORA_POOLS_PROGRAM_ID = solana.MustPublicKeyFromBase58("Eo7WjKq67rjJQSZxS6z3YkapzY3eMj6Xy8X5EQVn5UaB")
	PUMPFUN_PROGRAM_ID       = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
	PUMPFUN_AMM_PROGRAM_ID   = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")
	PHOENIX_PROGRAM_ID       = solana.MustPublicKeyFromBase58("PhoeNiXZ8ByJGLkxNfZRnkUfjvmuYqLR89jjFHGqdXY")
	LIFINITY_V2_PROGRAM_ID   = solana.MustPublicKeyFromBase58("2wT8Yq49kHgDzXuPxZSaeLaH1qbmGXtEyPy64bL7aD3c")
	OKX_DEX_ROUTER_PROGRAM_ID = solana.MustPublicKeyFromBase58("6m2CDdhRgxpH4WjvdzxAYbGxwdGUz5MziiL5jek2kBma")

	JUPITER_DCA_PROGRAM_ID   = solana.MustPublicKeyFromBase58("DCA265Vj8a9CEuX1eb1LWRnDT7uK6q1xMipnNyatn23M")
	JUPITER_PERPS_PROGRAM_ID = solana.MustPublicKeyFromBase58("PERPHjGBqRHArX4DySjwM6UJHiR3sWAatqfdBS2qQJu")
	DRIFT_PROGRAM_ID         = solana.MustPublicKeyFromBase58("dRiftyHA39MWEi3m9aunc5MzRF1JYuBsbn6VPcn33UH")
	SQUADS_V4_PROGRAM_ID     = solana.MustPublicKeyFromBase58("SQDS4ep65T869zMMBKyuUq6aD6EgTu8psMjkvj52pCf")
	SPL_GOVERNANCE_PROGRAM_ID = solana.MustPublicKeyFromBase58("GovER5Lthms3DbB1uuzRg3LsUNDfzMgP8PqE3eUcD2s6")
	BONFIDA_NAME_PROGRAM_ID  = solana.MustPublicKeyFromBase58("namesLPneVptA9Z5rqUDD9tMTWEJwofgaYwp8cawRkX")
	WORMHOLE_PROGRAM_ID      = solana.MustPublicKeyFromBase58("worm2ZoG2kUd4vFXhvjh93UUH596ayRfgQ2MgjNMTth")
	DEBRIDGE_PROGRAM_ID      = solana.MustPublicKeyFromBase58("DEbrdGj3HsRsAzx6uH4MKyREKxVAfBydijLUF3ygsFfh")
	STREAMFLOW_PROGRAM_ID    = solana.MustPublicKeyFromBase58("strmRqUCoQUgGUan5YhzUZa6KqdzwX5L6FpUxfmKg5m")
	BUBBLEGUM_PROGRAM_ID     = solana.MustPublicKeyFromBase58("BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY")
	LIGHT_SYSTEM_PROGRAM_ID  = solana.MustPublicKeyFromBase58("SySTEM1eSU2p4BGQfQpimFEWWSC1XDFeun3Nqzz3rT7")
	PRIVACY_CASH_PROGRAM_ID  = solana.MustPublicKeyFromBase58("9fFiCRXC5EbLuWZGfCUonZq91pdEYsTVzG3Jt6xXYkbK")
	JITO_TIP_PROGRAM_ID      = solana.MustPublicKeyFromBase58("T1pyyaTNZsKv2WcRAB8oVnk93mLJw2XzjtVYqCsaHqt")

	MAGIC_EDEN_V2_PROGRAM_ID = solana.MustPublicKeyFromBase58("M2mx93ekt1fmXSVkTrUL9xVFHkmME8HTUi5Cyc5aF7K")
	TENSOR_SWAP_PROGRAM_ID   = solana.MustPublicKeyFromBase58("TSWAPaqyCSx2KABk68Shruf4rp7CxcNi8hAsbdwmHbN")
	CANDY_MACHINE_PROGRAM_ID = solana.MustPublicKeyFromBase58("CndyV3LdqHUfDLmE5naZjVN8rBZz4tqhdefbAnjHG3JR")
	METAPLEX_METADATA_PROGRAM_ID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

	STAKE_PROGRAM_ID    = solana.MustPublicKeyFromBase58("Stake11111111111111111111111111111111111111")
	MARINADE_PROGRAM_ID = solana.MustPublicKeyFromBase58("MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD")

	SYSTEM_PROGRAM_ID         = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")
	TOKEN_PROGRAM_ID          = solana.TokenProgramID
	TOKEN_2022_PROGRAM_ID     = solana.Token2022ProgramID
	ASSOCIATED_TOKEN_PROGRAM_ID = solana.SPLAssociatedTokenAccountProgramID
	COMPUTE_BUDGET_PROGRAM_ID = solana.MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111")
	MEMO_PROGRAM_ID           = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
	MEMO_V1_PROGRAM_ID        = solana.MustPublicKeyFromBase58("Memo1UhkJRfHyvLMcVucJwxXeuD728EqVDDwQDxFMNo")

	NATIVE_SOL_MINT  = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111111")
	WRAPPED_SOL_MINT = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
)

// SolToken is the native SOL pseudo-token used for lamport legs.
var SolToken = TokenInfo{
	Mint:     NATIVE_SOL_MINT.String(),
	Symbol:   "SOL",
	Name:     "Solana",
	Decimals: 9,
}

// Heuristic thresholds. These mirror observed wallet behavior rather than any
// principled bound, so a legitimate 900-unit airdrop can slip past the
// token-create rule; they are collected here instead of being tuned away.
const (
	// LamportsPerSOL is the SOL fixed-point scale.
	LamportsPerSOL = 1_000_000_000

	// FeeLamportsCutoff: a SOL debit below this is treated as network fee.
	FeeLamportsCutoff = LamportsPerSOL / 100 // 0.01 SOL

	// NFTAmountThreshold: minimum UI amount for a zero-decimal leg to count
	// as an NFT move.
	NFTAmountThreshold = 1.0

	// TokenCreateThreshold: minimum UI credit for the token-create rule.
	TokenCreateThreshold = 1000.0

	// TokenMigrationThreshold: minimum UI amount on both sides of a
	// migration pair.
	TokenMigrationThreshold = 1_000_000.0
)

// knownPrograms maps a program id to the protocol it belongs to.
var knownPrograms = map[string]ProtocolInfo{
	JUPITER_PROGRAM_ID.String():       {ID: PROTOCOL_JUPITER, Name: "Jupiter"},
	RAYDIUM_V4_PROGRAM_ID.String():    {ID: PROTOCOL_RAYDIUM, Name: "Raydium"},
	RAYDIUM_CPMM_PROGRAM_ID.String():  {ID: PROTOCOL_RAYDIUM, Name: "Raydium"},
	RAYDIUM_CLMM_PROGRAM_ID.String():  {ID: PROTOCOL_RAYDIUM, Name: "Raydium"},
	ORCA_WHIRLPOOL_PROGRAM_ID.String(): {ID: PROTOCOL_ORCA, Name: "Orca"},
	METEORA_DLMM_PROGRAM_ID.String():  {ID: PROTOCOL_METEORA, Name: "Meteora"},
	METEORA_POOLS_PROGRAM_ID.String(): {ID: PROTOCOL_METEORA, Name: "Meteora"},
	PUMPFUN_PROGRAM_ID.String():       {ID: PROTOCOL_PUMPFUN, Name: "Pump.fun"},
	PUMPFUN_AMM_PROGRAM_ID.String():   {ID: PROTOCOL_PUMPFUN, Name: "Pump.fun"},
	PHOENIX_PROGRAM_ID.String():       {ID: PROTOCOL_PHOENIX, Name: "Phoenix"},
	LIFINITY_V2_PROGRAM_ID.String():   {ID: PROTOCOL_LIFINITY, Name: "Lifinity"},
	OKX_DEX_ROUTER_PROGRAM_ID.String(): {ID: PROTOCOL_OKX, Name: "OKX DEX"},

	JUPITER_DCA_PROGRAM_ID.String():   {ID: PROTOCOL_JUPITER_DCA, Name: "Jupiter DCA"},
	JUPITER_PERPS_PROGRAM_ID.String(): {ID: PROTOCOL_JUPITER_PERPS, Name: "Jupiter Perps"},
	DRIFT_PROGRAM_ID.String():         {ID: PROTOCOL_DRIFT, Name: "Drift"},
	SQUADS_V4_PROGRAM_ID.String():     {ID: PROTOCOL_SQUADS, Name: "Squads v4"},
	SPL_GOVERNANCE_PROGRAM_ID.String(): {ID: PROTOCOL_GOVERNANCE, Name: "Realms Governance"},
	BONFIDA_NAME_PROGRAM_ID.String():  {ID: PROTOCOL_BONFIDA, Name: "Bonfida Name Service"},
	WORMHOLE_PROGRAM_ID.String():      {ID: PROTOCOL_WORMHOLE, Name: "Wormhole"},
	DEBRIDGE_PROGRAM_ID.String():      {ID: PROTOCOL_DEBRIDGE, Name: "deBridge"},
	STREAMFLOW_PROGRAM_ID.String():    {ID: PROTOCOL_STREAMFLOW, Name: "Streamflow"},
	BUBBLEGUM_PROGRAM_ID.String():     {ID: PROTOCOL_BUBBLEGUM, Name: "Bubblegum"},
	LIGHT_SYSTEM_PROGRAM_ID.String():  {ID: PROTOCOL_LIGHT, Name: "Light Protocol"},
	PRIVACY_CASH_PROGRAM_ID.String():  {ID: PROTOCOL_PRIVACY_CASH, Name: "Privacy Cash"},
	JITO_TIP_PROGRAM_ID.String():      {ID: PROTOCOL_JITO_TIPS, Name: "Jito Tips"},

	MAGIC_EDEN_V2_PROGRAM_ID.String(): {ID: PROTOCOL_MAGIC_EDEN, Name: "Magic Eden"},
	TENSOR_SWAP_PROGRAM_ID.String():   {ID: PROTOCOL_TENSOR, Name: "Tensor"},
	CANDY_MACHINE_PROGRAM_ID.String(): {ID: PROTOCOL_CANDY_MACHINE, Name: "Candy Machine"},
	METAPLEX_METADATA_PROGRAM_ID.String(): {ID: PROTOCOL_METAPLEX, Name: "Metaplex"},

	STAKE_PROGRAM_ID.String():    {ID: PROTOCOL_STAKE, Name: "Stake Program"},
	MARINADE_PROGRAM_ID.String(): {ID: PROTOCOL_MARINADE, Name: "Marinade"},

	TOKEN_PROGRAM_ID.String():          {ID: PROTOCOL_TOKEN, Name: "SPL Token"},
	TOKEN_2022_PROGRAM_ID.String():     {ID: PROTOCOL_TOKEN, Name: "SPL Token"},
	ASSOCIATED_TOKEN_PROGRAM_ID.String(): {ID: PROTOCOL_ATA, Name: "Associated Token"},
	MEMO_PROGRAM_ID.String():           {ID: PROTOCOL_MEMO, Name: "Memo"},
	MEMO_V1_PROGRAM_ID.String():        {ID: PROTOCOL_MEMO, Name: "Memo"},
	COMPUTE_BUDGET_PROGRAM_ID.String(): {ID: PROTOCOL_COMPUTE, Name: "Compute Budget"},
	SYSTEM_PROGRAM_ID.String():         {ID: PROTOCOL_SYSTEM, Name: "System Program"},
}

// protocolPriority resolves multi-protocol transactions: DEX programs first,
// then NFT/stake/defi programs, infrastructure programs last.
var protocolPriority = []string{
	PROTOCOL_JUPITER,
	PROTOCOL_OKX,
	PROTOCOL_RAYDIUM,
	PROTOCOL_ORCA,
	PROTOCOL_METEORA,
	PROTOCOL_PUMPFUN,
	PROTOCOL_PHOENIX,
	PROTOCOL_LIFINITY,

	PROTOCOL_SQUADS,
	PROTOCOL_PRIVACY_CASH,
	PROTOCOL_WORMHOLE,
	PROTOCOL_DEBRIDGE,
	PROTOCOL_JUPITER_DCA,
	PROTOCOL_JUPITER_PERPS,
	PROTOCOL_DRIFT,
	PROTOCOL_GOVERNANCE,
	PROTOCOL_BONFIDA,
	PROTOCOL_STREAMFLOW,
	PROTOCOL_BUBBLEGUM,
	PROTOCOL_LIGHT,
	PROTOCOL_JITO_TIPS,
	PROTOCOL_MAGIC_EDEN,
	PROTOCOL_TENSOR,
	PROTOCOL_CANDY_MACHINE,
	PROTOCOL_METAPLEX,
	PROTOCOL_STAKE,
	PROTOCOL_MARINADE,

	PROTOCOL_TOKEN,
	PROTOCOL_ATA,
	PROTOCOL_MEMO,
	PROTOCOL_COMPUTE,
	PROTOCOL_SYSTEM,
}

// dexProtocols is the fixed DEX set consumed by the leg builder and the swap
// heuristics.
var dexProtocols = map[string]bool{
	PROTOCOL_JUPITER:  true,
	PROTOCOL_RAYDIUM:  true,
	PROTOCOL_ORCA:     true,
	PROTOCOL_METEORA:  true,
	PROTOCOL_PUMPFUN:  true,
	PROTOCOL_PHOENIX:  true,
	PROTOCOL_LIFINITY: true,
	PROTOCOL_OKX:      true,
}
