// Package teams holds the fixed set of franchises a prediction can be made for.
package teams

import (
	"fmt"
	"strings"
)

// Team is a franchise identified by its short code.
type Team struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Side names which slot of a matchup a team occupies.
type Side string

// Matchup slots.
const (
	Home Side = "home"
	Away Side = "away"
)

// Matchup is a validated home/away pairing of two distinct teams.
type Matchup struct {
	Home Team
	Away Team
}

// Team returns the team occupying the given side.
func (m Matchup) Team(side Side) Team {
	if side == Home {
		return m.Home
	}
	return m.Away
}

var all = []Team{
	{Code: "ATL", Name: "Atlanta Hawks"},
	{Code: "BOS", Name: "Boston Celtics"},
	{Code: "BKN", Name: "Brooklyn Nets"},
	{Code: "CHA", Name: "Charlotte Hornets"},
	{Code: "CHI", Name: "Chicago Bulls"},
	{Code: "CLE", Name: "Cleveland Cavaliers"},
	{Code: "DAL", Name: "Dallas Mavericks"},
	{Code: "DEN", Name: "Denver Nuggets"},
	{Code: "DET", Name: "Detroit Pistons"},
	{Code: "GSW", Name: "Golden State Warriors"},
	{Code: "HOU", Name: "Houston Rockets"},
	{Code: "IND", Name: "Indiana Pacers"},
	{Code: "LAC", Name: "LA Clippers"},
	{Code: "LAL", Name: "Los Angeles Lakers"},
	{Code: "MEM", Name: "Memphis Grizzlies"},
	{Code: "MIA", Name: "Miami Heat"},
	{Code: "MIL", Name: "Milwaukee Bucks"},
	{Code: "MIN", Name: "Minnesota Timberwolves"},
	{Code: "NOP", Name: "New Orleans Pelicans"},
	{Code: "NYK", Name: "New York Knicks"},
	{Code: "OKC", Name: "Oklahoma City Thunder"},
	{Code: "ORL", Name: "Orlando Magic"},
	{Code: "PHI", Name: "Philadelphia 76ers"},
	{Code: "PHX", Name: "Phoenix Suns"},
	{Code: "POR", Name: "Portland Trail Blazers"},
	{Code: "SAC", Name: "Sacramento Kings"},
	{Code: "SAS", Name: "San Antonio Spurs"},
	{Code: "TOR", Name: "Toronto Raptors"},
	{Code: "UTA", Name: "Utah Jazz"},
	{Code: "WAS", Name: "Washington Wizards"},
}

var byCode = func() map[string]Team {
	m := make(map[string]Team, len(all))
	for _, t := range all {
		m[t.Code] = t
	}
	return m
}()

// All returns every known team in display order. The slice is a copy.
func All() []Team {
	out := make([]Team, len(all))
	copy(out, all)
	return out
}

// Lookup finds a team by code, ignoring case and surrounding whitespace.
func Lookup(code string) (Team, bool) {
	t, ok := byCode[normalize(code)]
	return t, ok
}

// ParseMatchup applies the selection rules: both sides set, both known, and different.
// A failing selection must not reach the store.
func ParseMatchup(home, away string) (Matchup, error) {
	h, a := normalize(home), normalize(away)
	if h == "" || a == "" {
		return Matchup{}, ErrMissingSelection
	}
	if h == a {
		return Matchup{}, ErrSameTeam
	}
	ht, ok := byCode[h]
	if !ok {
		return Matchup{}, fmt.Errorf("home %q: %w", home, ErrUnknownTeam)
	}
	at, ok := byCode[a]
	if !ok {
		return Matchup{}, fmt.Errorf("away %q: %w", away, ErrUnknownTeam)
	}
	return Matchup{Home: ht, Away: at}, nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
