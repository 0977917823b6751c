package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TopiaNetwork/gastimator/gas"
	"github.com/TopiaNetwork/gastimator/transaction"
)

type errorBody struct {
	Error         string   `json:"error"`
	Message       string   `json:"message,omitempty"`
	EstimatedCost *gas.Gas `json:"estimated_cost,omitempty"`
	GasLimit      *gas.Gas `json:"gas_limit,omitempty"`
}

func (s *Server) handleEstimateTx(w http.ResponseWriter, r *http.Request) {
	var tx transaction.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		s.writeMalformed(w, err)
		return
	}
	s.estimate(w, r, &tx)
}

func (s *Server) handleEstimateRlp(w http.ResponseWriter, r *http.Request) {
	var raw transaction.RawTransaction
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.writeMalformed(w, err)
		return
	}
	tx, err := transaction.Decode(raw.Rlp)
	if err != nil {
		s.writeMalformed(w, err)
		return
	}
	s.estimate(w, r, tx)
}

func (s *Server) estimate(w http.ResponseWriter, r *http.Request, tx *transaction.Transaction) {
	resp, err := s.estimator.EstimateGas(r.Context(), tx)
	if err != nil {
		s.writeEstimationError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeMalformed(w http.ResponseWriter, err error) {
	s.log.Debugf("malformed request: %s", err)
	s.writeJSON(w, http.StatusBadRequest, errorBody{
		Error:   "malformed_transaction",
		Message: err.Error(),
	})
}

// writeEstimationError maps the reconciler taxonomy onto the wire; only
// the two coarse errors ever reach here.
func (s *Server) writeEstimationError(w http.ResponseWriter, err error) {
	if gel, ok := gas.AsGasExceedsLimit(err); ok {
		limit := gel.GasLimit
		s.writeJSON(w, http.StatusBadRequest, errorBody{
			Error:         "gas_exceeds_limit",
			EstimatedCost: gel.EstimatedCost,
			GasLimit:      &limit,
		})
		return
	}
	if errors.Is(err, gas.ErrFailedToCalculateGasEstimate) {
		s.writeJSON(w, http.StatusInternalServerError, errorBody{
			Error: "failed_to_calculate_gas_estimate",
		})
		return
	}
	s.log.Errorf("unexpected estimation error: %s", err)
	s.writeJSON(w, http.StatusInternalServerError, errorBody{
		Error:   "internal_error",
		Message: err.Error(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Errorf("write response: %s", err)
	}
}
