package roster

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/sleeper-report/internal/domain/player"
)

// Row is one roster line: name, position, age, years_exp, draft year estimate.
type Row struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Age       string `json:"age"`
	YearsExp  string `json:"years_exp"`
	DraftYear string `json:"draft_year_estimate"`
}

func (r Row) Cells() []string {
	return []string{r.Name, r.Position, r.Age, r.YearsExp, r.DraftYear}
}

// Headers matches the column order of Row.Cells.
var Headers = []string{"Name", "Pos", "Age", "Exp", "Draft~"}

// Players returns the records whose team equals team exactly, ordered by id.
// Case normalization of team is the caller's job.
func Players(dir player.Directory, team string) []player.Record {
	out := make([]player.Record, 0, 64)
	for _, rec := range dir {
		if rec.Team != team {
			continue
		}
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b player.Record) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// ForTeam builds the roster table for team, sorted by position then name.
// No match yields an empty slice.
func ForTeam(dir player.Directory, team string, n player.Normalizer) []Row {
	records := Players(dir, team)
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		view := n.View(rec)
		rows = append(rows, Row{
			PlayerID:  view.ID,
			Name:      view.DisplayName,
			Position:  view.Position,
			Age:       view.Age,
			YearsExp:  view.YearsExp,
			DraftYear: view.DraftYear,
		})
	}

	slices.SortFunc(rows, func(a, b Row) int {
		return cmp.Or(
			cmp.Compare(a.Position, b.Position),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.PlayerID, b.PlayerID),
		)
	})
	return rows
}
