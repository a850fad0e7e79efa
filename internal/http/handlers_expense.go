package http

import (
	"log/slog"
	"net/http"

	"outlay/internal/core"
	"outlay/internal/filter"
)

// listBody is the GET /api/expenses payload.
type listBody struct {
	Expenses   []core.Expense `json:"expenses"`
	TotalCents int64          `json:"totalCents"`
	Count      int            `json:"count"`
}

// handleListExpenses returns the (optionally filtered) collection, newest
// first, along with the filtered total.
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	view := filter.Apply(s.store.List(), criteria)

	var total int64
	for _, e := range view {
		total += e.Amount
	}

	if view == nil {
		view = []core.Expense{}
	}
	writeJSON(w, r, http.StatusOK, listBody{
		Expenses:   view,
		TotalCents: total,
		Count:      len(view),
	})
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	e, ok := s.store.GetByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "expense not found")
		return
	}
	writeJSON(w, r, http.StatusOK, e)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	form, err := decodeFormData(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if errs := form.Validate(); errs != nil {
		writeFieldErrors(w, r, errs)
		return
	}

	e, persistErr := s.store.Create(r.Context(), form)

	body := mutationBody{Expense: e}
	if persistErr != nil {
		slog.WarnContext(r.Context(), "Expense created but not persisted",
			"expense_id", e.ID, "error", persistErr)
		body.Warning = persistWarning
	}
	writeJSON(w, r, http.StatusCreated, body)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	form, err := decodeFormData(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if errs := form.Validate(); errs != nil {
		writeFieldErrors(w, r, errs)
		return
	}

	// Unknown ids are a silent no-op by contract; the response mirrors that.
	persistErr := s.store.Update(r.Context(), id, form)

	e, ok := s.store.GetByID(id)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	body := mutationBody{Expense: e}
	if persistErr != nil {
		slog.WarnContext(r.Context(), "Expense updated but not persisted",
			"expense_id", id, "error", persistErr)
		body.Warning = persistWarning
	}
	writeJSON(w, r, http.StatusOK, body)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if persistErr := s.store.Delete(r.Context(), id); persistErr != nil {
		slog.WarnContext(r.Context(), "Expense deleted but not persisted",
			"expense_id", id, "error", persistErr)
	}
	w.WriteHeader(http.StatusNoContent)
}
