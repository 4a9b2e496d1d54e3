package txlens

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TokenResolver supplies registry metadata for an observed mint. Decimals is
// the scale reported by the balance rows and is authoritative when the
// resolver has no richer entry.
type TokenResolver interface {
	Resolve(mint string, decimals uint8) TokenInfo
}

// StaticTokenResolver resolves from a fixed mint table, falling back to a
// shortened-mint symbol for anything unknown.
type StaticTokenResolver struct {
	Tokens map[string]TokenInfo
}

func (r *StaticTokenResolver) Resolve(mint string, decimals uint8) TokenInfo {
	if r != nil && r.Tokens != nil {
		if info, ok := r.Tokens[mint]; ok {
			return info
		}
	}
	symbol := mint
	if len(symbol) > 8 {
		symbol = symbol[:4] + ".." + symbol[len(symbol)-2:]
	}
	return TokenInfo{Mint: mint, Symbol: symbol, Decimals: decimals}
}

// wellKnownTokens covers the mints that show up constantly in wallet history.
// Anything else falls through to the external registry (out of scope here).
var wellKnownTokens = map[string]TokenInfo{
	NATIVE_SOL_MINT.String():  SolToken,
	WRAPPED_SOL_MINT.String(): {Mint: WRAPPED_SOL_MINT.String(), Symbol: "WSOL", Name: "Wrapped SOL", Decimals: 9},
	"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": {Mint: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Symbol: "USDC", Name: "USD Coin", Decimals: 6},
	"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB": {Mint: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", Symbol: "USDT", Name: "Tether USD", Decimals: 6},
	"DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263": {Mint: "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", Symbol: "BONK", Name: "Bonk", Decimals: 5},
	"JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN":  {Mint: "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN", Symbol: "JUP", Name: "Jupiter", Decimals: 6},
	"mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So":  {Mint: "mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So", Symbol: "mSOL", Name: "Marinade SOL", Decimals: 9},
}

// LegBuilder converts raw pre/post balances into double-entry legs.
type LegBuilder struct {
	Tokens TokenResolver
}

func NewLegBuilder() *LegBuilder {
	return &LegBuilder{Tokens: &StaticTokenResolver{Tokens: wellKnownTokens}}
}

// BuildLegs runs the default builder. walletAddress may be empty (observer
// mode).
func BuildLegs(tx *RawTransaction, walletAddress string) []TxLeg {
	return NewLegBuilder().Build(tx, walletAddress)
}

// Build emits the ordered leg list for one transaction: SOL legs by account
// index, the synthetic fee-sink leg, then token legs by (index, mint).
// Missing or short balance arrays read as zero; Build never fails.
func (b *LegBuilder) Build(tx *RawTransaction, walletAddress string) []TxLeg {
	if tx == nil {
		return nil
	}

	legs := make([]TxLeg, 0, len(tx.AccountKeys))
	legs = append(legs, b.buildSolLegs(tx, walletAddress)...)
	legs = append(legs, b.buildTokenLegs(tx, walletAddress)...)
	return legs
}

func lamportsAt(balances []uint64, i int) uint64 {
	if i < 0 || i >= len(balances) {
		return 0
	}
	return balances[i]
}

func (b *LegBuilder) buildSolLegs(tx *RawTransaction, walletAddress string) []TxLeg {
	var (
		legs           []TxLeg
		debitLamports  uint64
		creditLamports uint64
	)

	for i, key := range tx.AccountKeys {
		pre := lamportsAt(tx.PreBalances, i)
		post := lamportsAt(tx.PostBalances, i)
		if pre == post {
			continue
		}

		account := ExternalAccount(key)
		if walletAddress != "" && strings.EqualFold(key, walletAddress) {
			account = WalletAccount(key)
		}

		if post > pre {
			delta := post - pre
			role := RoleReceived
			if tx.ProtocolID() == PROTOCOL_STAKE {
				role = RoleReward
			}
			legs = append(legs, TxLeg{
				Account: account,
				Side:    Credit,
				Amount:  lamportsToMoney(delta),
				Role:    role,
			})
			creditLamports += delta
			continue
		}

		delta := pre - post
		role := RoleSent
		if delta < FeeLamportsCutoff {
			role = RoleFee
		}
		legs = append(legs, TxLeg{
			Account: account,
			Side:    Debit,
			Amount:  lamportsToMoney(delta),
			Role:    role,
		})
		debitLamports += delta
	}

	// The ledger only balances once the consumed network fee gets its own
	// credit leg; the chain never emits a matching recipient delta.
	if debitLamports > creditLamports {
		legs = append(legs, TxLeg{
			Account: FeeAccount(),
			Side:    Credit,
			Amount:  lamportsToMoney(debitLamports - creditLamports),
			Role:    RoleFee,
		})
	}

	return legs
}

type tokenSlot struct {
	index    int
	mint     string
	owner    string
	decimals uint8
	pre      decimal.Decimal
	post     decimal.Decimal
}

func (b *LegBuilder) buildTokenLegs(tx *RawTransaction, walletAddress string) []TxLeg {
	type slotKey struct {
		index int
		mint  string
	}

	slots := make(map[slotKey]*tokenSlot)
	upsert := func(row TokenBalanceRow, post bool) {
		k := slotKey{index: row.AccountIndex, mint: row.Mint}
		s, ok := slots[k]
		if !ok {
			s = &tokenSlot{index: row.AccountIndex, mint: row.Mint}
			slots[k] = s
		}
		if row.Owner != "" {
			s.owner = row.Owner
		}
		if row.Decimals != 0 {
			s.decimals = row.Decimals
		}
		amt, err := decimal.NewFromString(row.Amount)
		if err != nil {
			amt = decimal.Zero
		}
		if post {
			s.post = amt
		} else {
			s.pre = amt
		}
	}
	for _, row := range tx.PreTokenBalances {
		upsert(row, false)
	}
	for _, row := range tx.PostTokenBalances {
		upsert(row, true)
	}

	ordered := make([]*tokenSlot, 0, len(slots))
	for _, s := range slots {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].index != ordered[j].index {
			return ordered[i].index < ordered[j].index
		}
		return ordered[i].mint < ordered[j].mint
	})

	feePayer, _ := tx.FeePayer()

	var legs []TxLeg
	for _, s := range ordered {
		delta := s.post.Sub(s.pre)
		if delta.IsZero() {
			continue
		}

		token := b.resolveToken(s.mint, s.decimals)

		var account AccountID
		var ownRole bool // sent/received by sign rather than protocol role
		switch {
		case walletAddress != "" && strings.EqualFold(s.owner, walletAddress):
			account = WalletAccount(s.owner)
			ownRole = true
		case walletAddress == "" && feePayer != "" && strings.EqualFold(s.owner, feePayer):
			account = ExternalAccount(s.owner)
			ownRole = true
		case IsDexProtocol(tx.Protocol):
			account = ProtocolAccount(tx.Protocol.ID, token.Symbol)
		default:
			account = ExternalAccount(s.owner)
			ownRole = true
		}

		side := Credit
		if delta.IsNegative() {
			side = Debit
		}

		role := RoleReceived
		switch {
		case ownRole && side == Debit:
			role = RoleSent
		case ownRole && side == Credit:
			role = RoleReceived
		case side == Debit:
			role = RoleProtocolDeposit
		default:
			role = RoleProtocolWithdraw
		}

		legs = append(legs, TxLeg{
			Account: account,
			Side:    side,
			Amount:  NewMoneyAmount(token, delta.Abs().String()),
			Role:    role,
		})
	}

	return legs
}

func (b *LegBuilder) resolveToken(mint string, decimals uint8) TokenInfo {
	if b.Tokens != nil {
		return b.Tokens.Resolve(mint, decimals)
	}
	return (&StaticTokenResolver{}).Resolve(mint, decimals)
}
