package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/CuelloDiego/Cierre-de-caja/internal/closing"
	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
	"github.com/CuelloDiego/Cierre-de-caja/internal/form"
)

type stateResponse struct {
	CloserName   string              `json:"closerName"`
	Shift        core.Shift          `json:"shift"`
	FirstData    core.Amount         `json:"firstData"`
	MercadoPago  core.Amount         `json:"mercadoPago"`
	PedidosYa    core.Amount         `json:"pedidosYa"`
	DailySummary core.Amount         `json:"dailySummary"`
	CashEntries  []core.CashEntry    `json:"cashEntries"`
	Expenses     []core.ExpenseEntry `json:"expenses"`
	Totals       form.Totals         `json:"totals"`
	Status       closing.Status      `json:"status"`
	Error        string              `json:"error,omitempty"`
}

type statusResponse struct {
	Status closing.Status `json:"status"`
	Error  string         `json:"error,omitempty"`
}

type (
	nameRequest   struct{ Name string `json:"name"` }
	shiftRequest  struct{ Shift string `json:"shift"` }
	valueRequest  struct{ Value core.Amount `json:"value"` }
	detailRequest struct{ Value string `json:"value"` }
)

func (s *Server) stateResponse() stateResponse {
	snap := s.state.Snapshot()
	return stateResponse{
		CloserName:   snap.CloserName,
		Shift:        snap.Shift,
		FirstData:    snap.FirstData,
		MercadoPago:  snap.MercadoPago,
		PedidosYa:    snap.PedidosYa,
		DailySummary: snap.DailySummary,
		CashEntries:  snap.Cash,
		Expenses:     snap.Expenses,
		Totals:       snap.Totals,
		Status:       s.svc.Status(),
		Error:        s.svc.LastError(),
	}
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSetCloser(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decode(w, r, &req) {
		return
	}
	s.state.SetCloserName(req.Name)
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSetShift(w http.ResponseWriter, r *http.Request) {
	var req shiftRequest
	if !decode(w, r, &req) {
		return
	}
	shift, err := core.ParseShift(req.Shift)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.state.SetShift(shift); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSetIncome(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	switch r.PathValue("channel") {
	case "first-data":
		s.state.SetFirstData(req.Value)
	case "mercado-pago":
		s.state.SetMercadoPago(req.Value)
	case "pedidos-ya":
		s.state.SetPedidosYa(req.Value)
	default:
		writeError(w, http.StatusNotFound, "unknown income channel")
		return
	}
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSetSummary(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	s.state.SetDailySummary(req.Value)
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleAddCash(w http.ResponseWriter, _ *http.Request) {
	s.state.AddCashEntry()
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleRemoveCash(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r)
	if !ok {
		return
	}
	s.state.RemoveCashEntry(i)
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSetCashDenomination(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r)
	if !ok {
		return
	}
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	s.state.SetCashDenomination(i, req.Value)
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSetCashQuantity(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r)
	if !ok {
		return
	}
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	s.state.SetCashQuantity(i, req.Value)
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleAddExpense(w http.ResponseWriter, _ *http.Request) {
	s.state.AddExpense()
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleRemoveExpense(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r)
	if !ok {
		return
	}
	s.state.RemoveExpense(i)
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSetExpenseDetail(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r)
	if !ok {
		return
	}
	var req detailRequest
	if !decode(w, r, &req) {
		return
	}
	s.state.SetExpenseDetail(i, req.Value)
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSetExpenseAmount(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r)
	if !ok {
		return
	}
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	s.state.SetExpenseAmount(i, req.Value)
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	err := s.svc.Submit(r.Context())
	resp := statusResponse{Status: s.svc.Status(), Error: s.svc.LastError()}
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, core.ErrSubmissionInFlight):
		writeJSON(w, http.StatusConflict, resp)
	case errors.Is(err, core.ErrNameRequired), errors.Is(err, core.ErrEmptyBatch):
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	default:
		writeJSON(w, http.StatusBadGateway, resp)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: s.svc.Status(), Error: s.svc.LastError()})
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	entries := s.history.Entries()
	if entries == nil {
		entries = []core.LogEntry{}
	}
	writeJSON(w, http.StatusOK, struct {
		Batches int             `json:"batches"`
		Entries []core.LogEntry `json:"entries"`
	}{Batches: s.history.Batches(), Entries: entries})
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	i, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || i < 0 {
		writeError(w, http.StatusBadRequest, "invalid row index")
		return 0, false
	}
	return i, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
