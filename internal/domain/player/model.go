package player

import (
	"strings"

	"github.com/riskibarqy/sleeper-report/internal/platform/coerce"
)

// Position labels as published by the provider.
const (
	PositionQB  = "QB"
	PositionRB  = "RB"
	PositionWR  = "WR"
	PositionTE  = "TE"
	PositionK   = "K"
	PositionDEF = "DEF"
	PositionDST = "D/ST"
)

// Record is one raw entry of the provider's player directory. Numeric fields
// use coerce.Int because the provider mixes numbers, strings and nulls.
type Record struct {
	ID               string     `json:"player_id"`
	FullName         string     `json:"full_name"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Team             string     `json:"team"`
	Position         string     `json:"position"`
	FantasyPositions []string   `json:"fantasy_positions"`
	Age              coerce.Int `json:"age"`
	YearsExp         coerce.Int `json:"years_exp"`
	DepthChartOrder  coerce.Int `json:"depth_chart_order"`
	Status           string     `json:"status"`
}

// Directory is the validated player snapshot keyed by player id.
type Directory map[string]Record

// View is the display-ready projection of a Record. Empty strings mean unknown.
type View struct {
	ID              string `json:"player_id"`
	DisplayName     string `json:"display_name"`
	Position        string `json:"position"`
	Team            string `json:"team"`
	Age             string `json:"age"`
	YearsExp        string `json:"years_exp"`
	DraftYear       string `json:"draft_year_estimate"`
	DepthChartOrder string `json:"depth_chart_order"`
	Status          string `json:"status"`
}

var activeStatuses = map[string]struct{}{
	"":       {},
	"active": {},
	"act":    {},
}

// IsActive reports whether the status is absent or one of the provider's active markers.
func (r Record) IsActive() bool {
	_, ok := activeStatuses[strings.ToLower(strings.TrimSpace(r.Status))]
	return ok
}
