package txlens

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TokenInfo describes a mint as resolved by an external registry. Decimals
// defines the fixed-point scale between raw base units and UI amounts.
type TokenInfo struct {
	Mint     string `json:"mint"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
}

// MoneyAmount is an unsigned quantity of one token. Direction is carried by
// the owning leg's side, never by the amount itself.
type MoneyAmount struct {
	Token     TokenInfo `json:"token"`
	AmountRaw string    `json:"amountRaw"`
	AmountUI  float64   `json:"amountUi"`
}

// NewMoneyAmount builds a MoneyAmount from raw base units. Malformed raw
// strings degrade to zero rather than failing.
func NewMoneyAmount(token TokenInfo, amountRaw string) MoneyAmount {
	d, err := decimal.NewFromString(amountRaw)
	if err != nil {
		return MoneyAmount{Token: token, AmountRaw: "0", AmountUI: 0}
	}
	d = d.Abs()
	ui := d.Shift(-int32(token.Decimals))
	return MoneyAmount{
		Token:     token,
		AmountRaw: d.String(),
		AmountUI:  ui.InexactFloat64(),
	}
}

func lamportsToMoney(lamports uint64) MoneyAmount {
	return NewMoneyAmount(SolToken, fmt.Sprintf("%d", lamports))
}

// AccountKind tags which side of the ledger an account identity belongs to.
type AccountKind string

const (
	AccountWallet   AccountKind = "wallet"
	AccountExternal AccountKind = "external"
	AccountProtocol AccountKind = "protocol"
	AccountFee      AccountKind = "fee"
)

// AccountID identifies one side of a leg. Address is set for wallet/external
// kinds, Protocol (and optionally Token) for the protocol kind, and nothing
// for the synthetic fee sink.
type AccountID struct {
	Kind     AccountKind `json:"kind"`
	Address  string      `json:"address,omitempty"`
	Protocol string      `json:"protocol,omitempty"`
	Token    string      `json:"token,omitempty"`
}

func WalletAccount(address string) AccountID {
	return AccountID{Kind: AccountWallet, Address: address}
}

func ExternalAccount(address string) AccountID {
	return AccountID{Kind: AccountExternal, Address: address}
}

func ProtocolAccount(protocolID, token string) AccountID {
	return AccountID{Kind: AccountProtocol, Protocol: protocolID, Token: token}
}

func FeeAccount() AccountID {
	return AccountID{Kind: AccountFee}
}

// String renders the wire grammar: "wallet:<addr>", "external:<addr>",
// "protocol:<id>[:<token>]", "fee:".
func (a AccountID) String() string {
	switch a.Kind {
	case AccountWallet:
		return "wallet:" + a.Address
	case AccountExternal:
		return "external:" + a.Address
	case AccountProtocol:
		if a.Token != "" {
			return "protocol:" + a.Protocol + ":" + a.Token
		}
		return "protocol:" + a.Protocol
	case AccountFee:
		return "fee:"
	}
	return ""
}

// ParseAccountID is the inverse of String. The second return is false for
// strings outside the grammar.
func ParseAccountID(s string) (AccountID, bool) {
	kind, rest, found := strings.Cut(s, ":")
	if !found {
		return AccountID{}, false
	}
	switch AccountKind(kind) {
	case AccountWallet:
		return WalletAccount(rest), true
	case AccountExternal:
		return ExternalAccount(rest), true
	case AccountProtocol:
		if rest == "" {
			return AccountID{}, false
		}
		id, token, _ := strings.Cut(rest, ":")
		return ProtocolAccount(id, token), true
	case AccountFee:
		if rest != "" {
			return AccountID{}, false
		}
		return FeeAccount(), true
	}
	return AccountID{}, false
}

// LegSide is the double-entry direction: a debit decreases the account's
// balance, a credit increases it.
type LegSide string

const (
	Debit  LegSide = "debit"
	Credit LegSide = "credit"
)

// LegRole is the semantic role of a leg within the transaction.
type LegRole string

const (
	RoleSent             LegRole = "sent"
	RoleReceived         LegRole = "received"
	RoleFee              LegRole = "fee"
	RoleReward           LegRole = "reward"
	RoleProtocolDeposit  LegRole = "protocol_deposit"
	RoleProtocolWithdraw LegRole = "protocol_withdraw"
)

// TxLeg is one debit or credit entry derived from a transaction. Legs are
// produced fresh per call and have no identity beyond that call.
type TxLeg struct {
	Account AccountID   `json:"account"`
	Side    LegSide     `json:"side"`
	Amount  MoneyAmount `json:"amount"`
	Role    LegRole     `json:"role"`
}

// IsSOL reports whether the leg moves native SOL.
func (l TxLeg) IsSOL() bool {
	return l.Amount.Token.Mint == SolToken.Mint
}

// IsNFT reports whether the leg looks like a whole non-fungible unit: a
// zero-decimal token moving in quantity >= 1.
func (l TxLeg) IsNFT() bool {
	return !l.IsSOL() && l.Amount.Token.Decimals == 0 && l.Amount.AmountUI >= NFTAmountThreshold
}

// ProtocolInfo names an on-chain program family detected in a transaction.
type ProtocolInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TokenBalanceRow is one pre or post token-balance entry, keyed by the
// account index into AccountKeys and scoped to a single mint.
type TokenBalanceRow struct {
	AccountIndex int    `json:"accountIndex"`
	Mint         string `json:"mint"`
	Owner        string `json:"owner"`
	Decimals     uint8  `json:"decimals"`
	Amount       string `json:"amount"` // raw base units, decimal string
}

// RawTransaction is the subset of a confirmed transaction the pipeline
// consumes. Treated as immutable input.
type RawTransaction struct {
	Signature         string            `json:"signature,omitempty"`
	AccountKeys       []string          `json:"accountKeys"`
	ProgramIDs        []string          `json:"programIds"`
	Protocol          *ProtocolInfo     `json:"protocol,omitempty"`
	Memo              string            `json:"memo,omitempty"`
	PreBalances       []uint64          `json:"preBalances"`
	PostBalances      []uint64          `json:"postBalances"`
	PreTokenBalances  []TokenBalanceRow `json:"preTokenBalances"`
	PostTokenBalances []TokenBalanceRow `json:"postTokenBalances"`
}

// FeePayer returns accountKeys[0], the transaction initiator in observer
// mode. ok is false when the key list is empty.
func (tx *RawTransaction) FeePayer() (string, bool) {
	if tx == nil || len(tx.AccountKeys) == 0 {
		return "", false
	}
	return tx.AccountKeys[0], true
}

// ProtocolID returns the detected protocol id or "" when none matched.
func (tx *RawTransaction) ProtocolID() string {
	if tx == nil || tx.Protocol == nil {
		return ""
	}
	return tx.Protocol.ID
}

// TransactionClassification is the finished semantic label for one
// transaction. Produced once, never mutated.
type TransactionClassification struct {
	PrimaryType     string         `json:"primaryType"`
	PrimaryAmount   *MoneyAmount   `json:"primaryAmount,omitempty"`
	SecondaryAmount *MoneyAmount   `json:"secondaryAmount,omitempty"`
	Sender          string         `json:"sender,omitempty"`
	Receiver        string         `json:"receiver,omitempty"`
	Counterparty    string         `json:"counterparty,omitempty"`
	Confidence      float64        `json:"confidence"`
	IsRelevant      bool           `json:"isRelevant"`
	Metadata        map[string]any `json:"metadata"`
}

// Unclassified is the canonical "no match" value returned when every
// classifier passes.
func Unclassified() *TransactionClassification {
	return &TransactionClassification{
		PrimaryType: "other",
		Confidence:  0,
		IsRelevant:  false,
		Metadata:    map[string]any{},
	}
}
