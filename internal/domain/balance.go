package domain

// BalanceSet is the combined balance view served to callers: the locally
// tracked token balances plus the live-queried native XRP balance.
//
// Degraded is set when the live query failed and the XRP entry is a fallback
// zero rather than a real on-ledger balance, so a genuine zero and a
// connectivity failure stay distinguishable.
type BalanceSet struct {
	Balances map[string]float64 `json:"balances"`
	Degraded bool               `json:"degraded"`
}
