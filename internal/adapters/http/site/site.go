// Package site serves the single-page prediction form.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/courtside/internal/adapters/http/api"
	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/domain/features"
	"github.com/okian/courtside/internal/domain/teams"
	"github.com/okian/courtside/pkg/logger"
)

// Error constants
var (
	ErrRender = errors.New("form render failed")
)

// Banner kinds.
const (
	bannerSuccess = "success"
	bannerWarning = "warning"
	bannerError   = "error"
)

type banner struct {
	Kind  string
	Lines []string
}

type field struct {
	Name  string
	Label string
	Value string
	Max   int
}

type pageData struct {
	Teams  []teams.Team
	Home   string
	Away   string
	Fields []field
	Banner *banner
}

// manualFields lists the form inputs in display order; names match the JSON API.
var manualFields = []struct {
	name  string
	label string
	max   int
	get   func(*features.Manual) *float64
}{
	{"fg_made_home", "Home Field Goals Made", 100, func(m *features.Manual) *float64 { return &m.Home.FG.Made }},
	{"fg_made_away", "Away Field Goals Made", 100, func(m *features.Manual) *float64 { return &m.Away.FG.Made }},
	{"fg_attempted_home", "Home Field Goals Attempted", 100, func(m *features.Manual) *float64 { return &m.Home.FG.Attempted }},
	{"fg_attempted_away", "Away Field Goals Attempted", 100, func(m *features.Manual) *float64 { return &m.Away.FG.Attempted }},
	{"fg3_made_home", "Home 3-Pointers Made", 100, func(m *features.Manual) *float64 { return &m.Home.FG3.Made }},
	{"fg3_made_away", "Away 3-Pointers Made", 100, func(m *features.Manual) *float64 { return &m.Away.FG3.Made }},
	{"fg3_attempted_home", "Home 3-Pointers Attempted", 100, func(m *features.Manual) *float64 { return &m.Home.FG3.Attempted }},
	{"fg3_attempted_away", "Away 3-Pointers Attempted", 100, func(m *features.Manual) *float64 { return &m.Away.FG3.Attempted }},
	{"reb_home", "Home Rebounds", 0, func(m *features.Manual) *float64 { return &m.Home.Rebounds }},
	{"reb_away", "Away Rebounds", 0, func(m *features.Manual) *float64 { return &m.Away.Rebounds }},
	{"ast_home", "Home Assists", 0, func(m *features.Manual) *float64 { return &m.Home.Assists }},
	{"ast_away", "Away Assists", 0, func(m *features.Manual) *float64 { return &m.Away.Assists }},
	{"tov_home", "Home Turnovers", 0, func(m *features.Manual) *float64 { return &m.Home.Turnovers }},
	{"tov_away", "Away Turnovers", 0, func(m *features.Manual) *float64 { return &m.Away.Turnovers }},
}

// Register attaches the form routes to mux.
func Register(_ context.Context, mux *http.ServeMux, deps api.Dependencies) {
	if mux == nil {
		panic("mux is nil")
	}
	h := NewFormHandler(deps)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("/", api.MetricsMiddleware(h.HandleRoot, "form"))
	mux.HandleFunc("/predict/teams", api.MetricsMiddleware(h.HandlePredictTeams, "form_predict_teams"))
	mux.HandleFunc("/predict/manual", api.MetricsMiddleware(h.HandlePredictManual, "form_predict_manual"))
}

// FormHandler renders the form and runs predictions submitted from it.
type FormHandler struct {
	deps   api.Dependencies
	logger logger.Logger
}

// NewFormHandler creates a new form handler.
func NewFormHandler(deps api.Dependencies) *FormHandler {
	return &FormHandler{deps: deps, logger: logger.Named("site")}
}

// HandleRoot handles GET / with the form at its starting values.
func (h *FormHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, http.StatusOK, newPageData("", "", features.DefaultManual(), nil))
}

// HandlePredictTeams handles POST /predict/teams.
func (h *FormHandler) HandlePredictTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	// Manual counts are only echoed back; they play no part in this path.
	home, away, manual, _ := parseForm(r)
	data := newPageData(home, away, manual, nil)
	res, err := h.deps.PredictFromTeams(r.Context(), home, away)
	if err != nil {
		h.renderProblem(w, r, data, api.Describe(service.PathTeams, err))
		return
	}
	data.Banner = &banner{Kind: bannerSuccess, Lines: []string{api.WinnerMessage(res), api.ProbabilityMessage(res)}}
	h.render(w, r, http.StatusOK, data)
}

// HandlePredictManual handles POST /predict/manual.
func (h *FormHandler) HandlePredictManual(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	home, away, manual, err := parseForm(r)
	data := newPageData(home, away, manual, nil)
	if err != nil {
		h.renderProblem(w, r, data, api.Describe(service.PathManual, err))
		return
	}
	res, err := h.deps.PredictFromManual(r.Context(), home, away, manual)
	if err != nil {
		h.renderProblem(w, r, data, api.Describe(service.PathManual, err))
		return
	}
	data.Banner = &banner{Kind: bannerSuccess, Lines: []string{api.WinnerMessage(res)}}
	h.render(w, r, http.StatusOK, data)
}

func (h *FormHandler) renderProblem(w http.ResponseWriter, r *http.Request, data pageData, p api.Problem) {
	kind := bannerError
	if p.Warning {
		kind = bannerWarning
	}
	data.Banner = &banner{Kind: kind, Lines: []string{p.Message}}
	h.render(w, r, p.Status, data)
}

func (h *FormHandler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		h.logger.Error(r.Context(), "render form", logger.Error(fmt.Errorf("%w: %w", ErrRender, err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func newPageData(home, away string, m features.Manual, b *banner) pageData {
	fields := make([]field, len(manualFields))
	for i, f := range manualFields {
		fields[i] = field{
			Name:  f.name,
			Label: f.label,
			Value: strconv.FormatFloat(*f.get(&m), 'f', -1, 64),
			Max:   f.max,
		}
	}
	return pageData{
		Teams:  teams.All(),
		Home:   strings.ToUpper(strings.TrimSpace(home)),
		Away:   strings.ToUpper(strings.TrimSpace(away)),
		Fields: fields,
		Banner: b,
	}
}

// parseForm reads the selections and counts. Blank counts keep the form
// defaults; the bounds are the same ones the JSON API enforces.
func parseForm(r *http.Request) (string, string, features.Manual, error) {
	m := features.DefaultManual()
	if err := r.ParseForm(); err != nil {
		return "", "", m, fmt.Errorf("%w: %w", api.ErrBadRequest, err)
	}
	home, away := r.PostForm.Get("home"), r.PostForm.Get("away")

	req := api.ManualRequest{}
	values := make(map[string]*float64, len(manualFields))
	for _, f := range manualFields {
		raw := strings.TrimSpace(r.PostForm.Get(f.name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return home, away, m, fmt.Errorf("%w: %s is not a number", api.ErrBadRequest, f.name)
		}
		values[f.name] = &v
		*f.get(&m) = v
	}
	req.FGMadeHome, req.FGAttemptedHome = values["fg_made_home"], values["fg_attempted_home"]
	req.FG3MadeHome, req.FG3AttemptedHome = values["fg3_made_home"], values["fg3_attempted_home"]
	req.RebHome, req.AstHome, req.TovHome = values["reb_home"], values["ast_home"], values["tov_home"]
	req.FGMadeAway, req.FGAttemptedAway = values["fg_made_away"], values["fg_attempted_away"]
	req.FG3MadeAway, req.FG3AttemptedAway = values["fg3_made_away"], values["fg3_attempted_away"]
	req.RebAway, req.AstAway, req.TovAway = values["reb_away"], values["ast_away"], values["tov_away"]
	if err := req.Validate(); err != nil {
		return home, away, m, err
	}
	return home, away, m, nil
}
