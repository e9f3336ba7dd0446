package xrpl

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/AIS170/xrpl-hackathon/internal/domain"
)

// dropsPerXRP converts the drop-denominated balances rippled reports into XRP.
var dropsPerXRP = decimal.NewFromInt(1_000_000)

// AccountXRPBalance returns the account's XRP balance at the latest validated
// ledger.
func (c *Client) AccountXRPBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	var result accountInfoResult
	params := accountInfoParams{Account: address, LedgerIndex: "validated"}
	if err := c.call(ctx, "account_info", params, &result); err != nil {
		return decimal.Zero, fmt.Errorf("fetching account info for %s: %w", address, err)
	}

	drops, err := decimal.NewFromString(result.AccountData.Balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing XRP balance for %s: %w", address, err)
	}
	return drops.Div(dropsPerXRP), nil
}

// AccountLines returns all trust lines held by the account at the latest
// validated ledger.
func (c *Client) AccountLines(ctx context.Context, address string) ([]TrustLine, error) {
	var result accountLinesResult
	params := accountLinesParams{Account: address, LedgerIndex: "validated"}
	if err := c.call(ctx, "account_lines", params, &result); err != nil {
		return nil, fmt.Errorf("fetching account lines for %s: %w", address, err)
	}
	return result.Lines, nil
}

// AccountBalances returns the XRP balance plus every trust-line balance for
// the account, keyed by currency code.
func (c *Client) AccountBalances(ctx context.Context, address string) (map[string]float64, error) {
	xrp, err := c.AccountXRPBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	lines, err := c.AccountLines(ctx, address)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]float64, len(lines)+1)
	balances[domain.NativeSymbol], _ = xrp.Float64()

	for _, line := range lines {
		amt, err := decimal.NewFromString(line.Balance)
		if err != nil {
			return nil, fmt.Errorf("parsing %s balance for %s: %w", line.Currency, address, err)
		}
		balances[line.Currency], _ = amt.Float64()
	}

	return balances, nil
}
