package api

import (
	"encoding/json"
	"net/http"

	service "github.com/okian/courtside/internal/app"
)

// PredictHandler handles prediction requests.
type PredictHandler struct {
	deps Dependencies
}

// NewPredictHandler creates a new prediction handler.
func NewPredictHandler(deps Dependencies) *PredictHandler {
	return &PredictHandler{deps: deps}
}

// HandlePredictTeams handles POST /api/predict/teams requests.
func (h *PredictHandler) HandlePredictTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.predict_teams"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req TeamsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, Describe(service.PathTeams, WrapKind(op, ErrBadRequest, err)))
		return
	}
	res, err := h.deps.PredictFromTeams(r.Context(), req.Home, req.Away)
	if err != nil {
		writeError(w, Describe(service.PathTeams, err))
		return
	}
	writeJSON(w, http.StatusOK, newPredictionResponse(res))
}

// HandlePredictManual handles POST /api/predict/manual requests.
func (h *PredictHandler) HandlePredictManual(w http.ResponseWriter, r *http.Request) {
	const op = "api.predict_manual"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req ManualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, Describe(service.PathManual, WrapKind(op, ErrBadRequest, err)))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, Describe(service.PathManual, err))
		return
	}
	res, err := h.deps.PredictFromManual(r.Context(), req.Home, req.Away, req.Manual())
	if err != nil {
		writeError(w, Describe(service.PathManual, err))
		return
	}
	writeJSON(w, http.StatusOK, newPredictionResponse(res))
}

func newPredictionResponse(res service.Result) PredictionResponse {
	return PredictionResponse{
		ID:          res.ID.String(),
		Home:        res.Home.Code,
		Away:        res.Away.Code,
		Winner:      res.Winner.Code,
		WinnerSide:  string(res.WinnerSide),
		Probability: res.Probability,
		Message:     WinnerMessage(res),
	}
}
