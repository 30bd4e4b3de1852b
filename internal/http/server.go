// Package http exposes the ledger and the dashboard statistics as a JSON
// API.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"pentefino/internal/core"
	"pentefino/internal/store"
)

// Ledger is the store surface the handlers consume.
type Ledger interface {
	Load(ctx context.Context) error
	Transactions() []core.Transaction
	AddTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch store.TransactionPatch)
	RemoveTransaction(ctx context.Context, id string)

	Accounts() []core.Account
	AddAccount(ctx context.Context, a core.Account, months int) ([]core.Account, error)
	UpdateAccount(ctx context.Context, id string, patch store.AccountPatch)
	RemoveAccount(ctx context.Context, id string)
	ToggleAccountStatus(ctx context.Context, id string)

	Closings() []core.Closing
	AddClosing(ctx context.Context, c core.Closing) (core.Closing, error)

	CommissionRate() int
	SetCommissionRate(ctx context.Context, rate int) error
}

type Server struct {
	http.Server
	ledger       Ledger
	rateLimiter  *rateLimiter
	now          func() time.Time
	shutdownOnce sync.Once
}

// NewServer builds the API server on addr over the given ledger.
func NewServer(addr string, ledger Ledger) *Server {
	s := &Server{
		ledger:      ledger,
		rateLimiter: newRateLimiter(),
		now:         time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/transactions", s.handleTransactions)
	mux.HandleFunc("/api/transactions/", s.handleTransactionByID)
	mux.HandleFunc("/api/accounts", s.handleAccounts)
	mux.HandleFunc("/api/accounts/", s.handleAccountByID)
	mux.HandleFunc("/api/closings", s.handleClosings)
	mux.HandleFunc("/api/settings", s.handleSettings)
	mux.HandleFunc("/api/stats", s.handleStats)

	s.Server.Addr = addr
	s.Server.Handler = s.withMiddleware(mux)
	return s
}

// withMiddleware wraps the mux with request logging and per-IP rate
// limiting.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if !s.rateLimiter.allow(clientIP(r)) {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)

		slog.InfoContext(r.Context(), "Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Shutdown stops the HTTP server and the rate limiter cleanup goroutine.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
