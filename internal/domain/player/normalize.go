package player

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultNameWidth = 28
	ellipsis         = "…"
)

// Normalizer turns records into views for one report. Season is the NFL
// season year used for draft-year estimates.
type Normalizer struct {
	Season    int
	NameWidth int
}

func NewNormalizer(now time.Time, nameWidth int) Normalizer {
	if nameWidth < 2 {
		nameWidth = DefaultNameWidth
	}
	return Normalizer{
		Season:    SeasonYear(now),
		NameWidth: nameWidth,
	}
}

func (n Normalizer) View(rec Record) View {
	return View{
		ID:              rec.ID,
		DisplayName:     TruncateName(DisplayName(rec), n.NameWidth),
		Position:        ResolvePosition(rec),
		Team:            strings.TrimSpace(rec.Team),
		Age:             rec.Age.String(),
		YearsExp:        rec.YearsExp.String(),
		DraftYear:       DraftYearEstimate(rec, n.Season),
		DepthChartOrder: rec.DepthChartOrder.String(),
		Status:          strings.TrimSpace(rec.Status),
	}
}

// DisplayName prefers full_name, then "first last", then the player id.
func DisplayName(rec Record) string {
	if name := strings.TrimSpace(rec.FullName); name != "" {
		return name
	}
	if name := strings.TrimSpace(rec.FirstName + " " + rec.LastName); name != "" {
		return name
	}
	return rec.ID
}

// ResolvePosition returns position, else the first fantasy position, else "".
func ResolvePosition(rec Record) string {
	if pos := strings.TrimSpace(rec.Position); pos != "" {
		return pos
	}
	if len(rec.FantasyPositions) > 0 {
		return strings.TrimSpace(rec.FantasyPositions[0])
	}
	return ""
}

// DraftYearEstimate is season minus years_exp, or "" when years_exp is unknown.
func DraftYearEstimate(rec Record, season int) string {
	if !rec.YearsExp.Valid {
		return ""
	}
	return strconv.Itoa(season - rec.YearsExp.Value)
}

// SeasonYear maps a date to its NFL season: January through March still
// belong to the previous year's season.
func SeasonYear(now time.Time) int {
	now = now.UTC()
	if now.Month() < time.April {
		return now.Year() - 1
	}
	return now.Year()
}

// TruncateName caps name at width runes, ending truncated names with an ellipsis.
func TruncateName(name string, width int) string {
	if width <= 0 || utf8.RuneCountInString(name) <= width {
		return name
	}
	runes := []rune(name)
	return string(runes[:width-1]) + ellipsis
}
