package setup

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/AIS170/xrpl-hackathon/internal/domain"
	"github.com/AIS170/xrpl-hackathon/internal/ledger"
)

type trustLineCall struct {
	seed, account, issuer, currency, limit string
}

type paymentCall struct {
	fromSeed, fromAddress, to, issuer, currency, amount string
}

type mockLedgerClient struct {
	walletsCreated int
	trustLines     []trustLineCall
	payments       []paymentCall
}

func (m *mockLedgerClient) CreateTestWallet(_ context.Context) (domain.WalletCredentials, error) {
	m.walletsCreated++
	return domain.WalletCredentials{
		Address: fmt.Sprintf("rWallet%d", m.walletsCreated),
		Seed:    fmt.Sprintf("sSeed%d", m.walletsCreated),
	}, nil
}

func (m *mockLedgerClient) CreateTrustLine(_ context.Context, seed, account, issuer, currency, limit string) error {
	m.trustLines = append(m.trustLines, trustLineCall{seed, account, issuer, currency, limit})
	return nil
}

func (m *mockLedgerClient) SendIssuedToken(_ context.Context, fromSeed, fromAddress, to, issuer, currency, amount string) error {
	m.payments = append(m.payments, paymentCall{fromSeed, fromAddress, to, issuer, currency, amount})
	return nil
}

type memStore struct {
	p           domain.Portfolio
	initialized bool
	saveCount   int
}

func (m *memStore) Load(_ context.Context) (domain.Portfolio, error) {
	if !m.initialized {
		return domain.Portfolio{}, ledger.ErrNotInitialized
	}
	return m.p, nil
}

func (m *memStore) Save(_ context.Context, p domain.Portfolio) error {
	m.p = p
	m.initialized = true
	m.saveCount++
	return nil
}

func TestSetupDemoPortfolio(t *testing.T) {
	client := &mockLedgerClient{}

	p, err := SetupDemoPortfolio(context.Background(), client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Portfolio wallet plus one issuer per demo asset
	if client.walletsCreated != 3 {
		t.Errorf("wallets created = %d, want 3", client.walletsCreated)
	}

	if len(client.trustLines) != 2 {
		t.Fatalf("trust lines = %d, want 2", len(client.trustLines))
	}
	btcLine := client.trustLines[0]
	if btcLine.currency != "BTC" || btcLine.limit != "100" {
		t.Errorf("BTC trust line = %+v, want currency BTC limit 100", btcLine)
	}
	if btcLine.seed != p.PortfolioWallet.Seed || btcLine.account != p.PortfolioWallet.Address {
		t.Errorf("BTC trust line signed by %q/%q, want portfolio wallet", btcLine.seed, btcLine.account)
	}
	audLine := client.trustLines[1]
	if audLine.currency != "AUD" || audLine.limit != "10000" {
		t.Errorf("AUD trust line = %+v, want currency AUD limit 10000", audLine)
	}

	if len(client.payments) != 2 {
		t.Fatalf("seed payments = %d, want 2", len(client.payments))
	}
	btcPay := client.payments[0]
	if btcPay.currency != "BTC" || btcPay.amount != "5" || btcPay.to != p.PortfolioWallet.Address {
		t.Errorf("BTC seed payment = %+v, want 5 BTC to portfolio", btcPay)
	}
	btcIssuer := p.Issuers["BTC"]
	if btcPay.fromSeed != btcIssuer.Seed || btcPay.issuer != btcIssuer.Address {
		t.Errorf("BTC seed payment from %q issuer %q, want issuer wallet", btcPay.fromSeed, btcPay.issuer)
	}
	audPay := client.payments[1]
	if audPay.currency != "AUD" || audPay.amount != "5000" {
		t.Errorf("AUD seed payment = %+v, want 5000 AUD", audPay)
	}

	wantTokens := map[string]float64{"BTC": 5, "AUD": 5000}
	if !reflect.DeepEqual(p.Tokens, wantTokens) {
		t.Errorf("tokens = %v, want %v", p.Tokens, wantTokens)
	}
	if p.History == nil || len(p.History) != 0 {
		t.Errorf("history = %v, want empty non-nil", p.History)
	}
	if len(p.Issuers) != 2 {
		t.Errorf("issuers = %d, want 2", len(p.Issuers))
	}
}

func TestInitPortfolioLoadsExisting(t *testing.T) {
	existing := domain.Portfolio{
		PortfolioWallet: domain.WalletCredentials{Address: "rExisting"},
		Tokens:          map[string]float64{"BTC": 1},
	}
	store := &memStore{p: existing, initialized: true}
	client := &mockLedgerClient{}

	p, err := InitPortfolio(context.Background(), store, client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PortfolioWallet.Address != "rExisting" {
		t.Errorf("address = %q, want rExisting", p.PortfolioWallet.Address)
	}
	if client.walletsCreated != 0 {
		t.Errorf("wallets created = %d, want 0 when record exists", client.walletsCreated)
	}
}

func TestInitPortfolioProvisionsWhenMissing(t *testing.T) {
	store := &memStore{}
	client := &mockLedgerClient{}

	p, err := InitPortfolio(context.Background(), store, client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.walletsCreated != 3 {
		t.Errorf("wallets created = %d, want 3", client.walletsCreated)
	}
	if store.saveCount != 1 {
		t.Errorf("save count = %d, want 1", store.saveCount)
	}
	if !reflect.DeepEqual(store.p.Tokens, p.Tokens) {
		t.Errorf("persisted tokens %v != returned tokens %v", store.p.Tokens, p.Tokens)
	}
}
