// Package http exposes the closing form to the rendering layer: every
// form mutation, the derived totals, submission, and the session
// history.
package http

import (
	"net/http"

	"github.com/CuelloDiego/Cierre-de-caja/internal/closing"
	"github.com/CuelloDiego/Cierre-de-caja/internal/form"
	"github.com/CuelloDiego/Cierre-de-caja/internal/ledger"
	"github.com/CuelloDiego/Cierre-de-caja/internal/log"
	"github.com/CuelloDiego/Cierre-de-caja/internal/middleware/ratelimit"
	"github.com/CuelloDiego/Cierre-de-caja/internal/middleware/security"
	"github.com/CuelloDiego/Cierre-de-caja/internal/middleware/trace"
)

type Server struct {
	http.Server
	state   *form.State
	svc     *closing.Service
	history *ledger.History
	logger  *log.Logger
	limiter *ratelimit.Limiter
}

// NewServer wires routes for the closing form API.
func NewServer(addr string, state *form.State, svc *closing.Service, history *ledger.History, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	logger = logger.WithComponent(log.ComponentHTTP)
	mux := http.NewServeMux()
	limiter := ratelimit.NewLimiter(ratelimit.DefaultConfig())

	s := &Server{
		state:   state,
		svc:     svc,
		history: history,
		logger:  logger,
		limiter: limiter,
	}

	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("PUT /api/closer", s.handleSetCloser)
	mux.HandleFunc("PUT /api/shift", s.handleSetShift)
	mux.HandleFunc("PUT /api/incomes/{channel}", s.handleSetIncome)
	mux.HandleFunc("PUT /api/summary", s.handleSetSummary)

	mux.HandleFunc("POST /api/cash", s.handleAddCash)
	mux.HandleFunc("DELETE /api/cash/{index}", s.handleRemoveCash)
	mux.HandleFunc("PUT /api/cash/{index}/denomination", s.handleSetCashDenomination)
	mux.HandleFunc("PUT /api/cash/{index}/quantity", s.handleSetCashQuantity)

	mux.HandleFunc("POST /api/expenses", s.handleAddExpense)
	mux.HandleFunc("DELETE /api/expenses/{index}", s.handleRemoveExpense)
	mux.HandleFunc("PUT /api/expenses/{index}/detail", s.handleSetExpenseDetail)
	mux.HandleFunc("PUT /api/expenses/{index}/amount", s.handleSetExpenseAmount)

	mux.HandleFunc("POST /api/submit", s.handleSubmit)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/history", s.handleHistory)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	var handler http.Handler = mux
	handler = limiter.Middleware(trace.ClientIP, s.rateLimited)(handler)
	handler = security.Headers(security.DefaultHeadersConfig())(handler)
	handler = trace.Middleware(logger)(handler)

	s.Server = http.Server{Addr: addr, Handler: handler}
	s.Server.RegisterOnShutdown(limiter.Stop)
	return s
}

func (s *Server) rateLimited(w http.ResponseWriter, r *http.Request) {
	s.logger.Warn("Rate limit exceeded",
		log.FieldClientIP, trace.ClientIP(r), log.FieldMethod, r.Method, log.FieldPath, r.URL.Path)
	w.Header().Set("Retry-After", "60")
	writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
