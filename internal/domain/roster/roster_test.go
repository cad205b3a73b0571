package roster

import (
	"testing"
	"time"

	"github.com/riskibarqy/sleeper-report/internal/domain/player"
	"github.com/riskibarqy/sleeper-report/internal/platform/coerce"
)

var testNormalizer = player.NewNormalizer(time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), 28)

func sampleDirectory() player.Directory {
	return player.Directory{
		"1": {ID: "1", FullName: "Will Levis", Team: "TEN", Position: "QB", YearsExp: coerce.NewInt(1)},
		"2": {ID: "2", FullName: "Derrick Henry", Team: "TEN", Position: "RB", YearsExp: coerce.NewInt(8), Age: coerce.NewInt(30)},
		"3": {ID: "3", FullName: "Tony Pollard", Team: "TEN", Position: "RB"},
		"4": {ID: "4", FirstName: "Calvin", LastName: "Ridley", Team: "TEN", FantasyPositions: []string{"WR"}},
		"5": {ID: "5", FullName: "Anthony Richardson", Team: "IND", Position: "QB"},
		"6": {ID: "6", FullName: "Free Agent", Position: "WR"},
		"7": {ID: "7", FullName: "Aaron Brewer", Team: "TEN", Position: "C", YearsExp: coerce.Int{}},
	}
}

func TestForTeam_FiltersAndSorts(t *testing.T) {
	rows := ForTeam(sampleDirectory(), "TEN", testNormalizer)
	want := []string{"Aaron Brewer", "Will Levis", "Derrick Henry", "Tony Pollard", "Calvin Ridley"}
	if len(rows) != len(want) {
		t.Fatalf("unexpected row count: got=%d want=%d", len(rows), len(want))
	}
	for i, name := range want {
		if rows[i].Name != name {
			t.Fatalf("row %d: got=%q want=%q", i, rows[i].Name, name)
		}
	}

	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.Position > cur.Position || (prev.Position == cur.Position && prev.Name > cur.Name) {
			t.Fatalf("rows out of order at %d: %+v then %+v", i, prev, cur)
		}
	}

	henry := rows[2]
	if got := henry.Cells(); got[2] != "30" || got[3] != "8" || got[4] != "2016" {
		t.Fatalf("unexpected henry cells: %v", got)
	}
	if rows[0].YearsExp != "" || rows[0].DraftYear != "" {
		t.Fatalf("unknown experience must render empty, got %+v", rows[0])
	}
}

func TestForTeam_CaseSensitive(t *testing.T) {
	if rows := ForTeam(sampleDirectory(), "ten", testNormalizer); len(rows) != 0 {
		t.Fatalf("expected exact-match filter to reject lowercase code, got %d rows", len(rows))
	}
}

func TestForTeam_EmptyInputs(t *testing.T) {
	rows := ForTeam(player.Directory{}, "TEN", testNormalizer)
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
	if rows := ForTeam(sampleDirectory(), "XXX", testNormalizer); len(rows) != 0 {
		t.Fatalf("expected no rows for unknown team, got %d", len(rows))
	}
}

func TestForTeam_Idempotent(t *testing.T) {
	dir := sampleDirectory()
	first := ForTeam(dir, "TEN", testNormalizer)
	second := ForTeam(dir, "TEN", testNormalizer)
	if len(first) != len(second) {
		t.Fatalf("length changed between calls")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d changed between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPlayers_OrderedByID(t *testing.T) {
	got := Players(sampleDirectory(), "TEN")
	if len(got) != 5 {
		t.Fatalf("expected 5 TEN players, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Fatalf("players not ordered by id: %s then %s", got[i-1].ID, got[i].ID)
		}
	}
}
