package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AIS170/xrpl-hackathon/internal/auth"
	"github.com/AIS170/xrpl-hackathon/internal/export"
	"github.com/AIS170/xrpl-hackathon/internal/ledger"
)

// AccountBalanceFetcher defines the live balance lookup used by the
// per-address portfolio endpoint.
type AccountBalanceFetcher interface {
	AccountBalances(ctx context.Context, address string) (map[string]float64, error)
}

// Handler provides the HTTP endpoints of the stablecoin demo API.
type Handler struct {
	ledger *ledger.Service
	auth   *auth.Service
	xrpl   AccountBalanceFetcher
}

// NewHandler creates a new API handler.
func NewHandler(ledgerSvc *ledger.Service, authSvc *auth.Service, xrpl AccountBalanceFetcher) *Handler {
	return &Handler{ledger: ledgerSvc, auth: authSvc, xrpl: xrpl}
}

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Stablecoin API is Live!"))
}

// Login handles POST /api/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validate.Struct(req) != nil {
		writeError(w, http.StatusBadRequest, "No token provided")
		return
	}

	user, err := h.auth.Authenticate(r.Context(), req.Token)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidToken) {
			slog.Error("authentication failed", "error", err)
		}
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": user})
}

// Logout handles POST /api/logout. Logout is a frontend concern; this is an
// acknowledgment only.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]any{"message": "Logged out"})
}

// GetPortfolio handles GET /api/portfolio/{address}: live XRP and trust-line
// balances for an arbitrary account.
func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")

	balances, err := h.xrpl.AccountBalances(r.Context(), address)
	if err != nil {
		slog.Error("failed to fetch live balances", "address", address, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch balances")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"balances": balances})
}

// GetCommunityPortfolio handles GET /api/portfolio/community: the locally
// tracked token balances plus the live XRP balance.
func (h *Handler) GetCommunityPortfolio(w http.ResponseWriter, r *http.Request) {
	set, err := h.ledger.DisplayBalances(r.Context())
	if err != nil {
		h.writeLedgerError(w, "fetching community balances", err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"balances": set.Balances,
		"degraded": set.Degraded,
	})
}

// ExecuteTransactions handles POST /api/portfolio/execute: applies a batch of
// simulated trades to the portfolio ledger.
func (h *Handler) ExecuteTransactions(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validate.Struct(req) != nil {
		writeError(w, http.StatusBadRequest, "No transactions provided")
		return
	}

	tokens, err := h.ledger.ApplyTransactions(r.Context(), req.toDomain())
	if err != nil {
		h.writeLedgerError(w, "executing transactions", err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"balances": tokens})
}

// ExportHistory handles GET /api/portfolio/history/export: the transaction
// history as an XLSX download.
func (h *Handler) ExportHistory(w http.ResponseWriter, r *http.Request) {
	p, err := h.ledger.Load(r.Context())
	if err != nil {
		h.writeLedgerError(w, "loading portfolio", err)
		return
	}

	f, err := export.HistoryWorkbook(p.History)
	if err != nil {
		slog.Error("failed to build history workbook", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export history")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="history.xlsx"`)
	if err := f.Write(w); err != nil {
		slog.Warn("failed to write history workbook", "error", err)
	}
}

func (h *Handler) writeLedgerError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ledger.ErrNotInitialized) {
		writeError(w, http.StatusNotFound, "Wallet not initialized")
		return
	}
	slog.Error("ledger operation failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"status":"error","message":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeSuccess(w http.ResponseWriter, status int, fields map[string]any) {
	body := map[string]any{"status": "success"}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, status, body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"status": "error", "message": msg})
}
