package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/AIS170/xrpl-hackathon/internal/domain"
	"github.com/AIS170/xrpl-hackathon/internal/ledger"
)

// LedgerClient defines the XRPL operations needed to provision the demo
// portfolio.
type LedgerClient interface {
	CreateTestWallet(ctx context.Context) (domain.WalletCredentials, error)
	CreateTrustLine(ctx context.Context, seed, account, issuer, currency, limit string) error
	SendIssuedToken(ctx context.Context, fromSeed, fromAddress, to, issuer, currency, amount string) error
}

// seedAsset describes one demo token: its issuer trust-line limit and the
// amount the issuer sends the portfolio at setup time.
type seedAsset struct {
	symbol     string
	trustLimit string
	seedAmount string
}

var seedAssets = []seedAsset{
	{symbol: "BTC", trustLimit: "100", seedAmount: "5"},
	{symbol: "AUD", trustLimit: "10000", seedAmount: "5000"},
}

// SetupDemoPortfolio provisions a fresh demo portfolio on the XRPL testnet:
// a funded portfolio wallet, one issuer wallet per demo asset, trust lines
// from the portfolio to each issuer, and seed payments issuer -> portfolio.
func SetupDemoPortfolio(ctx context.Context, client LedgerClient) (domain.Portfolio, error) {
	slog.Info("setting up demo portfolio on XRPL testnet")

	wallet, err := client.CreateTestWallet(ctx)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("creating portfolio wallet: %w", err)
	}
	slog.Info("created portfolio wallet", "address", wallet.Address)

	p := domain.Portfolio{
		PortfolioWallet: wallet,
		Issuers:         make(map[string]domain.WalletCredentials, len(seedAssets)),
		Tokens:          make(map[string]float64, len(seedAssets)),
		History:         []domain.TransactionRecord{},
	}

	for _, asset := range seedAssets {
		issuer, err := client.CreateTestWallet(ctx)
		if err != nil {
			return domain.Portfolio{}, fmt.Errorf("creating %s issuer wallet: %w", asset.symbol, err)
		}
		slog.Info("created issuer wallet", "symbol", asset.symbol, "address", issuer.Address)

		if err := client.CreateTrustLine(ctx, wallet.Seed, wallet.Address, issuer.Address, asset.symbol, asset.trustLimit); err != nil {
			return domain.Portfolio{}, err
		}

		if err := client.SendIssuedToken(ctx, issuer.Seed, issuer.Address, wallet.Address, issuer.Address, asset.symbol, asset.seedAmount); err != nil {
			return domain.Portfolio{}, err
		}

		amount, err := strconv.ParseFloat(asset.seedAmount, 64)
		if err != nil {
			return domain.Portfolio{}, fmt.Errorf("parsing seed amount for %s: %w", asset.symbol, err)
		}

		p.Issuers[asset.symbol] = issuer
		p.Tokens[asset.symbol] = amount
	}

	slog.Info("demo portfolio setup complete", "address", wallet.Address)
	return p, nil
}

// InitPortfolio loads the existing portfolio record, or provisions a new demo
// portfolio and persists it when none exists yet.
func InitPortfolio(ctx context.Context, store ledger.Store, client LedgerClient) (domain.Portfolio, error) {
	p, err := store.Load(ctx)
	if err == nil {
		slog.Info("loaded existing portfolio record", "address", p.PortfolioWallet.Address)
		return p, nil
	}
	if !errors.Is(err, ledger.ErrNotInitialized) {
		return domain.Portfolio{}, err
	}

	p, err = SetupDemoPortfolio(ctx, client)
	if err != nil {
		return domain.Portfolio{}, err
	}
	if err := store.Save(ctx, p); err != nil {
		return domain.Portfolio{}, fmt.Errorf("saving new portfolio record: %w", err)
	}
	return p, nil
}
