package domain

import "maps"

// NativeSymbol is the ledger network's built-in asset. Unlike issued tokens it
// is queried from live account state rather than tracked in the local record.
const NativeSymbol = "XRP"

// CashSymbol is the cash leg every simulated trade settles against.
const CashSymbol = "AUD"

// WalletCredentials holds the address and seed of an XRPL testnet account.
// Both fields are opaque to this service; signing is delegated to the network.
type WalletCredentials struct {
	Address string `json:"xrpl_address"`
	Seed    string `json:"seed"`
}

// Portfolio is the persisted demo portfolio record: the on-ledger wallet
// identity, the issuer account for each demo asset, the locally tracked token
// balances, and the append-only trade history.
type Portfolio struct {
	PortfolioWallet WalletCredentials            `json:"portfolio_wallet"`
	Issuers         map[string]WalletCredentials `json:"issuers"`
	Tokens          map[string]float64           `json:"tokens"`
	History         []TransactionRecord          `json:"history"`
}

// Clone returns a deep copy of the portfolio so callers can hand it out
// without exposing the maps backing the persisted record.
func (p Portfolio) Clone() Portfolio {
	c := p
	c.Issuers = maps.Clone(p.Issuers)
	c.Tokens = maps.Clone(p.Tokens)
	if p.History != nil {
		c.History = make([]TransactionRecord, len(p.History))
		copy(c.History, p.History)
	}
	return c
}
