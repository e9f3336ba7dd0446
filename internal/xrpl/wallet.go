package xrpl

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AIS170/xrpl-hackathon/internal/domain"
)

// CreateTestWallet asks the Testnet faucet to generate and fund a new account.
func (c *Client) CreateTestWallet(ctx context.Context) (domain.WalletCredentials, error) {
	body, err := c.post(ctx, c.faucetURL+"/accounts", []byte("{}"))
	if err != nil {
		return domain.WalletCredentials{}, fmt.Errorf("requesting faucet wallet: %w", err)
	}

	var resp faucetResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.WalletCredentials{}, fmt.Errorf("parsing faucet response: %w", err)
	}

	address := resp.Account.ClassicAddress
	if address == "" {
		address = resp.Account.Address
	}
	if address == "" || resp.Account.Secret == "" {
		return domain.WalletCredentials{}, fmt.Errorf("faucet response missing account credentials")
	}

	return domain.WalletCredentials{Address: address, Seed: resp.Account.Secret}, nil
}
