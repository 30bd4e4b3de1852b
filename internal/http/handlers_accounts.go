package http

import (
	"log/slog"
	"net/http"

	"pentefino/internal/core"
	"pentefino/internal/store"
)

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ledger.Accounts())
	case http.MethodPost:
		var req struct {
			core.Account
			Months int `json:"months"`
		}
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed account payload")
			return
		}
		created, err := s.ledger.AddAccount(r.Context(), req.Account, req.Months)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.InfoContext(r.Context(), "Accounts created",
			"count", len(created),
			"name", req.Name,
			"kind", req.Kind)
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, "GET", "POST")
	}
}

func (s *Server) handleAccountByID(w http.ResponseWriter, r *http.Request) {
	id, extra := pathID(r.URL.Path, "/api/accounts/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account id")
		return
	}

	if extra == "toggle" {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, "POST")
			return
		}
		s.ledger.ToggleAccountStatus(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if extra != "" {
		writeError(w, http.StatusNotFound, "unknown account action")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch struct {
			Name           *string              `json:"name"`
			Category       *string              `json:"category"`
			Amount         *float64             `json:"amount"`
			DueDay         *int                 `json:"dueDay"`
			Kind           *core.AccountKind    `json:"kind"`
			Recurrence     *core.RecurrenceMode `json:"recurrence"`
			ReferenceMonth *string              `json:"referenceMonth"`
		}
		if err := readJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "malformed patch payload")
			return
		}
		s.ledger.UpdateAccount(r.Context(), id, store.AccountPatch{
			Name:           patch.Name,
			Category:       patch.Category,
			Amount:         patch.Amount,
			DueDay:         patch.DueDay,
			Kind:           patch.Kind,
			Recurrence:     patch.Recurrence,
			ReferenceMonth: patch.ReferenceMonth,
		})
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		s.ledger.RemoveAccount(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, "PUT", "DELETE")
	}
}
