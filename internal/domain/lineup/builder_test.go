package lineup

import (
	"testing"
	"time"

	"github.com/riskibarqy/sleeper-report/internal/domain/player"
	"github.com/riskibarqy/sleeper-report/internal/platform/coerce"
)

var testNormalizer = player.NewNormalizer(time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), 28)

func titansPool() []player.Record {
	return []player.Record{
		{ID: "henry", FullName: "Derrick Henry", LastName: "Henry", Team: "TEN", Position: "RB", YearsExp: coerce.NewInt(8), DepthChartOrder: coerce.NewInt(1)},
		{ID: "spears", FullName: "Tyjae Spears", LastName: "Spears", Team: "TEN", Position: "RB", YearsExp: coerce.NewInt(1), DepthChartOrder: coerce.NewInt(2)},
		{ID: "chestnut", FullName: "Julius Chestnut", LastName: "Chestnut", Team: "TEN", Position: "RB", YearsExp: coerce.NewInt(2), DepthChartOrder: coerce.NewInt(3)},
		{ID: "levis", FullName: "Will Levis", LastName: "Levis", Team: "TEN", Position: "QB", YearsExp: coerce.NewInt(1), DepthChartOrder: coerce.NewInt(1)},
		{ID: "tannehill", FullName: "Ryan Tannehill", LastName: "Tannehill", Team: "TEN", Position: "QB", YearsExp: coerce.NewInt(11), DepthChartOrder: coerce.NewInt(2)},
		{ID: "hopkins", FullName: "DeAndre Hopkins", LastName: "Hopkins", Team: "TEN", Position: "WR", YearsExp: coerce.NewInt(11), DepthChartOrder: coerce.NewInt(1)},
		{ID: "burks", FullName: "Treylon Burks", LastName: "Burks", Team: "TEN", Position: "WR", YearsExp: coerce.NewInt(2), DepthChartOrder: coerce.NewInt(1)},
		{ID: "westbrook", FullName: "Nick Westbrook-Ikhine", LastName: "Westbrook-Ikhine", Team: "TEN", Position: "WR", YearsExp: coerce.NewInt(4), DepthChartOrder: coerce.NewInt(2)},
		{ID: "okonkwo", FullName: "Chig Okonkwo", LastName: "Okonkwo", Team: "TEN", Position: "TE", YearsExp: coerce.NewInt(3), DepthChartOrder: coerce.NewInt(1)},
		{ID: "TEN", FirstName: "Tennessee", LastName: "Titans", Team: "TEN", FantasyPositions: []string{"DEF"}},
	}
}

func slotIDs(l Lineup, slot Slot) []string {
	out := make([]string, 0, 2)
	for _, pick := range l[slot] {
		out = append(out, pick.Player.ID)
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestBuild_DepthChartLineup(t *testing.T) {
	t.Parallel()

	got := Build(titansPool(), testNormalizer)

	expect := map[Slot][]string{
		SlotQB:   {"levis"},
		SlotRB:   {"henry", "spears"},
		SlotWR:   {"hopkins", "burks"},
		SlotTE:   {"okonkwo"},
		SlotFLEX: {"westbrook"},
		SlotDEF:  {"TEN"},
	}
	for slot, want := range expect {
		if ids := slotIDs(got, slot); !equalIDs(ids, want) {
			t.Fatalf("slot %s: got=%v want=%v", slot, ids, want)
		}
	}
	if _, ok := got[SlotK]; ok {
		t.Fatalf("slot K has no eligible players and must be absent")
	}
	if got[SlotRB][0].Player.DisplayName != "Derrick Henry" {
		t.Fatalf("expected Derrick Henry at RB1, got %q", got[SlotRB][0].Player.DisplayName)
	}
	if got[SlotRB][0].Slot != SlotRB {
		t.Fatalf("pick must carry its slot")
	}
}

func TestBuild_FlexPrefersDepthOverPosition(t *testing.T) {
	t.Parallel()

	pool := []player.Record{
		{ID: "rb1", LastName: "A", Position: "RB", DepthChartOrder: coerce.NewInt(1)},
		{ID: "rb2", LastName: "B", Position: "RB", DepthChartOrder: coerce.NewInt(2)},
		{ID: "rb3", LastName: "C", Position: "RB", DepthChartOrder: coerce.NewInt(4)},
		{ID: "wr1", LastName: "D", Position: "WR", DepthChartOrder: coerce.NewInt(1)},
		{ID: "wr2", LastName: "E", Position: "WR", DepthChartOrder: coerce.NewInt(2)},
		{ID: "te2", LastName: "F", Position: "TE", DepthChartOrder: coerce.NewInt(2)},
		{ID: "te3", LastName: "G", Position: "TE", DepthChartOrder: coerce.NewInt(3)},
	}

	got := Build(pool, testNormalizer)
	if ids := slotIDs(got, SlotTE); !equalIDs(ids, []string{"te2"}) {
		t.Fatalf("unexpected TE: %v", ids)
	}
	if ids := slotIDs(got, SlotFLEX); !equalIDs(ids, []string{"te3"}) {
		t.Fatalf("expected shallowest leftover (te3 depth 3) at FLEX, got %v", ids)
	}
}

func TestBuild_DefenseFallsBackToDST(t *testing.T) {
	t.Parallel()

	pool := []player.Record{
		{ID: "dst", FullName: "Titans D/ST", Position: "D/ST"},
		{ID: "k", FullName: "Nick Folk", LastName: "Folk", Position: "K"},
	}
	got := Build(pool, testNormalizer)
	if ids := slotIDs(got, SlotDEF); !equalIDs(ids, []string{"dst"}) {
		t.Fatalf("expected D/ST fallback, got %v", ids)
	}
	if ids := slotIDs(got, SlotK); !equalIDs(ids, []string{"k"}) {
		t.Fatalf("unexpected kicker: %v", ids)
	}

	pool = append(pool, player.Record{ID: "def", Position: "DEF"})
	got = Build(pool, testNormalizer)
	if ids := slotIDs(got, SlotDEF); !equalIDs(ids, []string{"def"}) {
		t.Fatalf("DEF label must win when present, got %v", ids)
	}
}

func TestBuild_InactiveDeprioritizedNotExcluded(t *testing.T) {
	t.Parallel()

	pool := []player.Record{
		{ID: "hurt", LastName: "Hurt", Position: "QB", DepthChartOrder: coerce.NewInt(1), YearsExp: coerce.NewInt(5), Status: "Injured Reserve"},
		{ID: "fine", LastName: "Fine", Position: "QB", DepthChartOrder: coerce.NewInt(1), YearsExp: coerce.NewInt(5), Status: "Active"},
	}
	got := Build(pool, testNormalizer)
	if ids := slotIDs(got, SlotQB); !equalIDs(ids, []string{"fine"}) {
		t.Fatalf("expected active QB first, got %v", ids)
	}

	got = Build(pool[:1], testNormalizer)
	if ids := slotIDs(got, SlotQB); !equalIDs(ids, []string{"hurt"}) {
		t.Fatalf("inactive QB must still be selectable, got %v", ids)
	}
}

func TestBuild_Exclusivity(t *testing.T) {
	t.Parallel()

	pools := [][]player.Record{
		titansPool(),
		{
			{ID: "x", Position: "RB"},
			{ID: "y", FantasyPositions: []string{"WR", "RB"}},
			{ID: "z", Position: "TE"},
		},
		{
			{ID: "only", Position: "WR"},
		},
	}

	for i, pool := range pools {
		got := Build(pool, testNormalizer)
		seen := make(map[string]Slot)
		for slot, picks := range got {
			if len(picks) == 0 {
				t.Fatalf("pool %d: slot %s present with no picks", i, slot)
			}
			for _, pick := range picks {
				if prev, dup := seen[pick.Player.ID]; dup {
					t.Fatalf("pool %d: player %s in both %s and %s", i, pick.Player.ID, prev, slot)
				}
				seen[pick.Player.ID] = slot
			}
		}
	}
}

func TestBuild_EmptyPool(t *testing.T) {
	t.Parallel()

	got := Build(nil, testNormalizer)
	if len(got) != 0 {
		t.Fatalf("expected no slots for empty pool, got %v", got)
	}
	if ids := got.PlayerIDs(); len(ids) != 0 {
		t.Fatalf("expected no player ids, got %v", ids)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	pool := titansPool()
	first := Build(pool, testNormalizer).PlayerIDs()
	second := Build(pool, testNormalizer).PlayerIDs()
	if !equalIDs(first, second) {
		t.Fatalf("lineup changed between calls: %v vs %v", first, second)
	}
}
