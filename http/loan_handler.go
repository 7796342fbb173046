package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"creditcalc/common"
	"creditcalc/domain"
	"creditcalc/service"
)

// LoanService is the part of service.LoanService the handlers need.
type LoanService interface {
	Calculate(ctx context.Context, terms domain.LoanTerms) (domain.Report, error)
	History(limit int) []domain.Calculation
}

type LoanHandler struct {
	service LoanService
	logger  *common.Logger
}

func NewLoanHandler(service LoanService, logger *common.Logger) *LoanHandler {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &LoanHandler{service: service, logger: logger}
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var terms domain.LoanTerms
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&terms); err != nil {
		h.logger.Debug().Err(err).Msg("Error decoding request body")
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if terms.Periods != nil && *terms.Periods > service.MaxTermMonths {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  domain.IncorrectParameters,
			Detail: "periods exceeds " + strconv.Itoa(service.MaxTermMonths),
		})
		return
	}

	result, err := h.service.Calculate(r.Context(), terms)
	if err != nil {
		if domain.IsIncorrectParameters(err) {
			h.logger.Debug().Err(err).Str("key", terms.Key()).Msg("Rejected loan terms")
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: domain.IncorrectParameters, Detail: err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("Error calculating loan")
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *LoanHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	history := h.service.History(limit)
	if history == nil {
		history = []domain.Calculation{}
	}
	h.writeJSON(w, http.StatusOK, history)
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 response.
func (h *LoanHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("Error encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn().Err(err).Msg("Error writing response")
	}
}
