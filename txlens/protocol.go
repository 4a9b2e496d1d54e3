package txlens

import "sort"

// DetectProtocol maps the program ids touched by a transaction to the single
// best-known protocol. Unknown-only transactions yield nil; multi-protocol
// transactions resolve through the fixed priority list (DEX first,
// infrastructure last). Pure and deterministic.
func DetectProtocol(programIDs []string) *ProtocolInfo {
	matched := make(map[string]ProtocolInfo)
	for _, pid := range programIDs {
		if info, ok := knownPrograms[pid]; ok {
			matched[info.ID] = info
		}
	}
	if len(matched) == 0 {
		return nil
	}
	for _, id := range protocolPriority {
		if info, ok := matched[id]; ok {
			return &info
		}
	}
	// Matched something outside the priority list; pick the lexically first
	// id so repeated calls stay deterministic.
	ids := make([]string, 0, len(matched))
	for id := range matched {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	info := matched[ids[0]]
	return &info
}

// IsDexProtocol reports whether the protocol belongs to the fixed DEX set.
func IsDexProtocol(p *ProtocolInfo) bool {
	return p != nil && dexProtocols[p.ID]
}
