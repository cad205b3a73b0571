package trending

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/riskibarqy/sleeper-report/internal/domain/player"
)

// Direction selects the trending list.
type Direction string

const (
	DirectionAdd  Direction = "add"
	DirectionDrop Direction = "drop"
)

func ParseDirection(v string) (Direction, error) {
	switch d := Direction(v); d {
	case DirectionAdd, DirectionDrop:
		return d, nil
	default:
		return "", fmt.Errorf("invalid trending direction %q", v)
	}
}

// Entry is one provider trending item: transaction count over the lookback window.
type Entry struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// Row is one resolved trending line.
type Row struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	OnTeam   bool   `json:"on_team"`
	Count    int    `json:"count"`
}

func (r Row) Cells() []string {
	flag := "NO"
	if r.OnTeam {
		flag = "YES"
	}
	return []string{r.Name, r.Team, flag, strconv.Itoa(r.Count)}
}

var Headers = []string{"Name", "Team", "OnTeam", "Count"}

// WithTeam resolves entries against dir and flags membership in team.
// Unknown ids are dropped. Team members come first, then rows sort by name;
// equal names keep the provider's order.
func WithTeam(dir player.Directory, entries []Entry, team string, n player.Normalizer) []Row {
	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		rec, ok := dir[entry.PlayerID]
		if !ok {
			continue
		}
		view := n.View(rec)
		rows = append(rows, Row{
			PlayerID: entry.PlayerID,
			Name:     view.DisplayName,
			Team:     view.Team,
			OnTeam:   rec.Team == team,
			Count:    entry.Count,
		})
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		return cmp.Or(
			cmp.Compare(membershipRank(a), membershipRank(b)),
			cmp.Compare(a.Name, b.Name),
		)
	})
	return rows
}

func membershipRank(r Row) int {
	if r.OnTeam {
		return 0
	}
	return 1
}
