package api

import (
	"net/http"

	"github.com/okian/courtside/internal/domain/teams"
)

// TeamsHandler serves the selectable franchises.
type TeamsHandler struct{}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler() *TeamsHandler {
	return &TeamsHandler{}
}

// HandleGetTeams handles GET /api/teams requests.
func (h *TeamsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, teams.All())
}
