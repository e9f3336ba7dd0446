package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AIS170/xrpl-hackathon/internal/domain"
)

// NativeBalanceSource provides the live XRP balance for an account.
type NativeBalanceSource interface {
	AccountXRPBalance(ctx context.Context, address string) (decimal.Decimal, error)
}

// Service owns the demo portfolio record: loading it, applying batches of
// simulated trades, and combining the locally tracked balances with the live
// XRP balance.
//
// A single mutex serializes every read-modify-write cycle against the store,
// so two concurrent execute calls cannot drop each other's writes.
type Service struct {
	mu     sync.Mutex
	store  Store
	native NativeBalanceSource
}

// NewService creates a new portfolio ledger service backed by the given store
// and live balance source.
func NewService(store Store, native NativeBalanceSource) *Service {
	return &Service{store: store, native: native}
}

// Load returns the full portfolio record. It fails with ErrNotInitialized if
// no record has ever been created. The returned record is a deep copy, so
// callers cannot mutate the maps backing the store.
func (s *Service) Load(ctx context.Context) (domain.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.Load(ctx)
	if err != nil {
		return domain.Portfolio{}, err
	}
	return p.Clone(), nil
}

// ApplyTransactions applies the batch in input order to the token balances,
// appends one history entry per trade, and rewrites the record once at the
// end. It returns the updated token-balance map.
//
// Amounts are applied verbatim: overdrafts produce negative balances rather
// than an error, matching the demo rebalancer's contract.
func (s *Service) ApplyTransactions(ctx context.Context, batch []domain.TransactionRequest) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if p.Tokens == nil {
		p.Tokens = make(map[string]float64)
	}

	for _, t := range batch {
		switch t.Type {
		case domain.TransactionBuy:
			p.Tokens[domain.CashSymbol] -= t.ImpactAUD
			p.Tokens[t.Asset] += t.Amount
		case domain.TransactionSell:
			p.Tokens[t.Asset] -= t.Amount
			p.Tokens[domain.CashSymbol] += t.ImpactAUD
		default:
			return nil, fmt.Errorf("unknown transaction type %q", t.Type)
		}

		p.History = append(p.History, domain.TransactionRecord{
			Timestamp: time.Now().UTC(),
			Type:      t.Type,
			Asset:     t.Asset,
			Amount:    t.Amount,
			ImpactAUD: t.ImpactAUD,
		})
		slog.Info("applied transaction",
			"type", t.Type, "asset", t.Asset, "amount", t.Amount, "impactAud", t.ImpactAUD)
	}

	if err := s.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving portfolio: %w", err)
	}
	return p.Tokens, nil
}

// DisplayBalances combines the locally tracked token balances with the
// live-queried XRP balance of the portfolio wallet. A live-query failure
// degrades to an XRP balance of zero with the Degraded flag set instead of
// propagating.
func (s *Service) DisplayBalances(ctx context.Context) (domain.BalanceSet, error) {
	s.mu.Lock()
	p, err := s.store.Load(ctx)
	s.mu.Unlock()
	if err != nil {
		return domain.BalanceSet{}, err
	}

	balances := make(map[string]float64, len(p.Tokens)+1)
	for symbol, amount := range p.Tokens {
		balances[symbol] = amount
	}

	set := domain.BalanceSet{Balances: balances}

	xrp, err := s.native.AccountXRPBalance(ctx, p.PortfolioWallet.Address)
	if err != nil {
		slog.Warn("live XRP balance query failed, serving fallback zero",
			"address", p.PortfolioWallet.Address, "error", err)
		balances[domain.NativeSymbol] = 0
		set.Degraded = true
		return set, nil
	}

	balances[domain.NativeSymbol], _ = xrp.Float64()
	return set, nil
}
