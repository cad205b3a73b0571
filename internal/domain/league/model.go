package league

import "github.com/riskibarqy/sleeper-report/internal/platform/coerce"

// State is the provider's current league calendar position.
type State struct {
	Season      coerce.Int `json:"season"`
	Week        coerce.Int `json:"week"`
	DisplayWeek coerce.Int `json:"display_week"`
	Leg         coerce.Int `json:"leg"`
	SeasonType  string     `json:"season_type"`
}

// Label renders the state for report headers, e.g. "2024 regular, week 7".
func (s State) Label() string {
	season := s.Season.String()
	if season == "" {
		season = "unknown season"
	}

	out := season
	if s.SeasonType != "" {
		out += " " + s.SeasonType
	}
	week := s.DisplayWeek
	if !week.Valid || week.Value == 0 {
		week = s.Week
	}
	if week.Valid {
		out += ", week " + week.String()
	}
	return out
}
