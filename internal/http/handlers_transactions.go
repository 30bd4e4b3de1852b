package http

import (
	"log/slog"
	"net/http"

	"pentefino/internal/core"
	"pentefino/internal/store"
)

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ledger.Transactions())
	case http.MethodPost:
		var tx core.Transaction
		if err := readJSON(r, &tx); err != nil {
			writeError(w, http.StatusBadRequest, "malformed transaction payload")
			return
		}
		created, err := s.ledger.AddTransaction(r.Context(), tx)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.InfoContext(r.Context(), "Transaction created",
			"id", created.ID,
			"type", created.Type,
			"amount", created.Amount)
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, "GET", "POST")
	}
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r.URL.Path, "/api/transactions/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch struct {
			Description *string              `json:"description"`
			Category    *string              `json:"category"`
			Date        *string              `json:"date"`
			Amount      *float64             `json:"amount"`
			Income      *core.IncomeDetails  `json:"income"`
			Expense     *core.ExpenseDetails `json:"expense"`
		}
		if err := readJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "malformed patch payload")
			return
		}
		// Unknown ids no-op by design; the response is 204 either way.
		s.ledger.UpdateTransaction(r.Context(), id, store.TransactionPatch{
			Description: patch.Description,
			Category:    patch.Category,
			Date:        patch.Date,
			Amount:      patch.Amount,
			Income:      patch.Income,
			Expense:     patch.Expense,
		})
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		s.ledger.RemoveTransaction(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, "PUT", "DELETE")
	}
}
