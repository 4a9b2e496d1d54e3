package txlens

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/mr-tron/base58"
)

// FromRPCTransaction lifts a confirmed RPC transaction into the RawTransaction
// the pipeline consumes, including protocol detection.
func FromRPCTransaction(result *rpc.GetTransactionResult) (*RawTransaction, error) {
	if result == nil {
		return nil, fmt.Errorf("nil transaction result")
	}
	tx, err := result.Transaction.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return FromTransaction(tx, result.Meta), nil
}

// FromTransaction builds a RawTransaction from a decoded transaction and its
// meta. Account keys include addresses loaded through lookup tables; a nil
// meta degrades to empty balances rather than failing.
func FromTransaction(tx *solana.Transaction, meta *rpc.TransactionMeta) *RawTransaction {
	if tx == nil {
		return nil
	}

	allAccountKeys := tx.Message.AccountKeys
	if meta != nil {
		allAccountKeys = append(allAccountKeys, meta.LoadedAddresses.Writable...)
		allAccountKeys = append(allAccountKeys, meta.LoadedAddresses.ReadOnly...)
	}

	keys := make([]string, len(allAccountKeys))
	for i, k := range allAccountKeys {
		keys[i] = k.String()
	}

	raw := &RawTransaction{
		AccountKeys: keys,
		ProgramIDs:  collectProgramIDs(tx, meta, allAccountKeys),
		Memo:        extractMemo(tx, allAccountKeys),
	}
	if len(tx.Signatures) > 0 {
		raw.Signature = tx.Signatures[0].String()
	}
	raw.Protocol = DetectProtocol(raw.ProgramIDs)

	if meta == nil {
		return raw
	}

	raw.PreBalances = meta.PreBalances
	raw.PostBalances = meta.PostBalances
	raw.PreTokenBalances = tokenBalanceRows(meta.PreTokenBalances)
	raw.PostTokenBalances = tokenBalanceRows(meta.PostTokenBalances)
	return raw
}

func collectProgramIDs(tx *solana.Transaction, meta *rpc.TransactionMeta, keys solana.PublicKeySlice) []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(idx uint16) {
		if int(idx) >= len(keys) {
			return
		}
		id := keys[idx].String()
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, ix := range tx.Message.Instructions {
		add(ix.ProgramIDIndex)
	}
	if meta != nil {
		for _, inner := range meta.InnerInstructions {
			for _, ix := range inner.Instructions {
				add(ix.ProgramIDIndex)
			}
		}
	}
	return ids
}

// extractMemo returns the text of the first memo-program instruction, if any.
func extractMemo(tx *solana.Transaction, keys solana.PublicKeySlice) string {
	for _, ix := range tx.Message.Instructions {
		if int(ix.ProgramIDIndex) >= len(keys) {
			continue
		}
		progID := keys[ix.ProgramIDIndex]
		if !progID.Equals(MEMO_PROGRAM_ID) && !progID.Equals(MEMO_V1_PROGRAM_ID) {
			continue
		}
		enc := ix.Data.String()
		if enc == "" {
			continue
		}
		raw, err := base58.Decode(enc)
		if err != nil {
			continue
		}
		return string(raw)
	}
	return ""
}

func tokenBalanceRows(balances []rpc.TokenBalance) []TokenBalanceRow {
	rows := make([]TokenBalanceRow, 0, len(balances))
	for _, b := range balances {
		row := TokenBalanceRow{
			AccountIndex: int(b.AccountIndex),
			Mint:         b.Mint.String(),
		}
		if b.Owner != nil {
			row.Owner = b.Owner.String()
		}
		if b.UiTokenAmount != nil {
			row.Amount = b.UiTokenAmount.Amount
			row.Decimals = b.UiTokenAmount.Decimals
		}
		rows = append(rows, row)
	}
	return rows
}
