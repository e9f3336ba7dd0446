package xrpl

import (
	"context"
	"errors"
	"fmt"
)

// ErrSubmissionFailed indicates a transaction was submitted but the ledger did
// not report unconditional success.
var ErrSubmissionFailed = errors.New("ledger submission failed")

// tfNoRippleDirect forces the payment along the issued-currency path, which
// avoids tecPATH_PARTIAL when sending a token back to its issuer.
const tfNoRippleDirect = 131072

const engineSuccess = "tesSUCCESS"

// submitTx signs and submits a transaction through the node and checks the
// engine result for unconditional success.
func (c *Client) submitTx(ctx context.Context, seed string, tx map[string]any) error {
	var result submitResult
	if err := c.call(ctx, "submit", submitParams{Secret: seed, TxJSON: tx}, &result); err != nil {
		return err
	}
	if result.EngineResult != engineSuccess {
		return fmt.Errorf("%w: %s (%s)", ErrSubmissionFailed, result.EngineResult, result.EngineResultMessage)
	}
	return nil
}

// CreateTrustLine establishes a trust line from the account to the issuer for
// the given currency and limit, allowing the account to hold the issued token.
func (c *Client) CreateTrustLine(ctx context.Context, seed, account, issuer, currency, limit string) error {
	tx := map[string]any{
		"TransactionType": "TrustSet",
		"Account":         account,
		"LimitAmount": IssuedAmount{
			Currency: currency,
			Issuer:   issuer,
			Value:    limit,
		},
	}
	if err := c.submitTx(ctx, seed, tx); err != nil {
		return fmt.Errorf("creating %s trust line for %s: %w", currency, account, err)
	}
	return nil
}

// SendIssuedToken sends issued currency between accounts. Sending to the
// issuer's own address effectively burns the token back.
func (c *Client) SendIssuedToken(ctx context.Context, fromSeed, fromAddress, to, issuer, currency, amount string) error {
	amt := IssuedAmount{Currency: currency, Issuer: issuer, Value: amount}
	tx := map[string]any{
		"TransactionType": "Payment",
		"Account":         fromAddress,
		"Destination":     to,
		"Amount":          amt,
		"SendMax":         amt,
		"Flags":           tfNoRippleDirect,
	}
	if err := c.submitTx(ctx, fromSeed, tx); err != nil {
		return fmt.Errorf("sending %s %s to %s: %w", amount, currency, to, err)
	}
	return nil
}
