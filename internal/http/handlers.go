package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"tally/internal/core"
	"tally/internal/query"
	"tally/internal/view"
)

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

// createRequest carries the raw user intent: the amount arrives as text
// and is parsed at this boundary.
type createRequest struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseCreateRequest(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Parse request error", "error", err, "url", r.URL.Path)
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	rec, err := s.store.Append(r.Context(), req.Name, amount, req.Category)
	if err != nil {
		if core.IsValidation(err) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to append record",
			"error", err,
			"record_name", req.Name,
			"category", req.Category,
			"operation", "append")
		respondError(w, http.StatusInternalServerError, "error saving transaction")
		return
	}

	respondJSON(w, http.StatusCreated, view.Transactions([]core.Record{rec})[0])
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	filtered := query.Filter(s.store.Records(), term)

	respondJSON(w, http.StatusOK, map[string]any{
		"transactions": view.Transactions(filtered),
		"count":        len(filtered),
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	respondJSON(w, http.StatusOK, s.summaryView())
}

func (s *Server) handleClearAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	s.store.ClearAll(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func parseCreateRequest(r *http.Request) (createRequest, error) {
	var req createRequest

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return createRequest{}, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return createRequest{}, err
	}
	req.Name = r.Form.Get("name")
	req.Amount = strings.TrimSpace(r.Form.Get("amount"))
	req.Category = r.Form.Get("category")
	return req, nil
}
