package domain

import "time"

// TransactionType classifies a simulated trade.
type TransactionType string

const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
)

// TransactionRequest is one simulated trade submitted by a caller. Amounts are
// taken verbatim; the ledger applies them without range checks.
type TransactionRequest struct {
	Type      TransactionType `json:"type"`
	Asset     string          `json:"asset"`
	Amount    float64         `json:"amount"`
	ImpactAUD float64         `json:"impactAud"`
}

// TransactionRecord is a TransactionRequest as recorded in the portfolio
// history, stamped with the UTC time it was applied.
type TransactionRecord struct {
	Timestamp time.Time       `json:"timestamp"`
	Type      TransactionType `json:"type"`
	Asset     string          `json:"asset"`
	Amount    float64         `json:"amount"`
	ImpactAUD float64         `json:"impactAud"`
}
