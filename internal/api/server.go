package api

import (
	"net/http"
	"time"
)

// NewServer creates an HTTP server with all routes configured.
func NewServer(port string, h *Handler) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logout", h.Logout)
	mux.HandleFunc("GET /api/portfolio/community", h.GetCommunityPortfolio)
	mux.HandleFunc("GET /api/portfolio/history/export", h.ExportHistory)
	mux.HandleFunc("GET /api/portfolio/{address}", h.GetPortfolio)
	mux.HandleFunc("POST /api/portfolio/execute", h.ExecuteTransactions)
	// The {address} wildcard would otherwise capture a GET on the execute
	// path and treat "execute" as an account address.
	mux.HandleFunc("GET /api/portfolio/execute", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return &http.Server{
		Addr:         ":" + port,
		Handler:      withRequestLog(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
