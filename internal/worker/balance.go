package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/AIS170/xrpl-hackathon/internal/domain"
	"github.com/AIS170/xrpl-hackathon/internal/ledger"
)

// BalanceSource provides the combined portfolio balance view.
type BalanceSource interface {
	DisplayBalances(ctx context.Context) (domain.BalanceSet, error)
}

// BalanceWorker periodically refreshes the community portfolio balances so
// testnet connectivity problems show up in the logs before a caller hits the
// API.
type BalanceWorker struct {
	source   BalanceSource
	interval time.Duration
}

// NewBalanceWorker creates a new BalanceWorker.
func NewBalanceWorker(source BalanceSource, interval time.Duration) *BalanceWorker {
	return &BalanceWorker{source: source, interval: interval}
}

func (w *BalanceWorker) refresh(ctx context.Context) {
	set, err := w.source.DisplayBalances(ctx)
	switch {
	case errors.Is(err, ledger.ErrNotInitialized):
		slog.Info("BalanceWorker: portfolio not initialized yet")
	case err != nil:
		slog.Error("BalanceWorker: refresh failed", "error", err)
	case set.Degraded:
		slog.Warn("BalanceWorker: serving degraded balances, live XRP query failing")
	default:
		slog.Info("BalanceWorker: refresh completed", "xrp", set.Balances[domain.NativeSymbol])
	}
}

// Run starts the balance worker loop. It blocks until the context is
// cancelled.
func (w *BalanceWorker) Run(ctx context.Context) {
	slog.Info("BalanceWorker: starting")

	// Refresh immediately on startup
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("BalanceWorker: shutting down")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}
