package http

import (
	"log/slog"
	"net/http"

	"pentefino/internal/core"
)

func (s *Server) handleClosings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ledger.Closings())
	case http.MethodPost:
		var c core.Closing
		if err := readJSON(r, &c); err != nil {
			writeError(w, http.StatusBadRequest, "malformed closing payload")
			return
		}
		created, err := s.ledger.AddClosing(r.Context(), c)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.InfoContext(r.Context(), "Closing created",
			"id", created.ID,
			"date", created.Date,
			"total", created.TotalAmount)
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, "GET", "POST")
	}
}
