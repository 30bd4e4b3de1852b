package http

import (
	"net/http"

	"pentefino/internal/stats"
)

// handleStats answers GET /api/stats?range=last7&search=...&start=...&end=...
// with the aggregated statistics of the selected period, including trends
// against the inferred prior period when the range supports one.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	q := r.URL.Query()
	sel := stats.Selection{
		Range:  stats.Range(q.Get("range")),
		Start:  q.Get("start"),
		End:    q.Get("end"),
		Search: q.Get("search"),
	}
	if sel.Range == "" {
		sel.Range = stats.RangeAll
	}
	switch sel.Range {
	case stats.RangeToday, stats.RangeYesterday, stats.RangeLast7, stats.RangeLast14,
		stats.RangeThisMonth, stats.RangeCustom, stats.RangeAll:
	default:
		writeError(w, http.StatusBadRequest, "unknown range")
		return
	}

	result := stats.StatsFor(s.ledger.Transactions(), sel, s.now(), s.ledger.CommissionRate())
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]int{"commissionRate": s.ledger.CommissionRate()})
	case http.MethodPut:
		var req struct {
			CommissionRate int `json:"commissionRate"`
		}
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed settings payload")
			return
		}
		if err := s.ledger.SetCommissionRate(r.Context(), req.CommissionRate); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "commission rate must be between 0 and 100")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, "GET", "PUT")
	}
}
