package lineup

import (
	"slices"

	"github.com/riskibarqy/sleeper-report/internal/domain/player"
)

// Slot is a lineup position.
type Slot string

const (
	SlotQB   Slot = "QB"
	SlotRB   Slot = "RB"
	SlotWR   Slot = "WR"
	SlotTE   Slot = "TE"
	SlotFLEX Slot = "FLEX"
	SlotK    Slot = "K"
	SlotDEF  Slot = "DEF"
)

// SlotOrder is the display order of a lineup.
var SlotOrder = []Slot{SlotQB, SlotRB, SlotWR, SlotTE, SlotFLEX, SlotK, SlotDEF}

// Pick is one selected player.
type Pick struct {
	Slot   Slot        `json:"slot"`
	Player player.View `json:"player"`
}

// Lineup maps filled slots to their picks. Slots without eligible players are absent.
type Lineup map[Slot][]Pick

// PlayerIDs lists every selected id in slot order.
func (l Lineup) PlayerIDs() []string {
	out := make([]string, 0, 9)
	for _, slot := range SlotOrder {
		for _, pick := range l[slot] {
			out = append(out, pick.Player.ID)
		}
	}
	return out
}

type slotRule struct {
	slot   Slot
	count  int
	labels []string
}

// primaryRules are filled before FLEX. DEF falls back to D/ST only when no
// player carries the DEF label.
var primaryRules = []slotRule{
	{slot: SlotQB, count: 1, labels: []string{player.PositionQB}},
	{slot: SlotRB, count: 2, labels: []string{player.PositionRB}},
	{slot: SlotWR, count: 2, labels: []string{player.PositionWR}},
	{slot: SlotTE, count: 1, labels: []string{player.PositionTE}},
	{slot: SlotK, count: 1, labels: []string{player.PositionK}},
	{slot: SlotDEF, count: 1, labels: []string{player.PositionDEF, player.PositionDST}},
}

var flexPositions = map[string]struct{}{
	player.PositionRB: {},
	player.PositionWR: {},
	player.PositionTE: {},
}

const flexCount = 1

// Build picks a depth-chart lineup from one team's players.
func Build(pool []player.Record, n player.Normalizer) Lineup {
	out, used := fillPrimary(pool, n)
	if picks := fillFlex(pool, used, n); len(picks) > 0 {
		out[SlotFLEX] = picks
	}
	return out
}

func fillPrimary(pool []player.Record, n player.Normalizer) (Lineup, map[string]struct{}) {
	out := make(Lineup, len(primaryRules)+1)
	used := make(map[string]struct{}, 16)

	for _, rule := range primaryRules {
		for _, label := range rule.labels {
			ranked := rankByPosition(pool, label)
			if len(ranked) == 0 {
				continue
			}
			picks := takePicks(rule.slot, ranked, rule.count, n)
			for _, pick := range picks {
				used[pick.Player.ID] = struct{}{}
			}
			out[rule.slot] = picks
			break
		}
	}

	return out, used
}

func fillFlex(pool []player.Record, used map[string]struct{}, n player.Normalizer) []Pick {
	ranked := make([]candidate, 0, len(pool))
	for _, rec := range pool {
		if _, taken := used[rec.ID]; taken {
			continue
		}
		pos := player.ResolvePosition(rec)
		if _, ok := flexPositions[pos]; !ok {
			continue
		}
		// Each flex candidate is keyed against its own position.
		ranked = append(ranked, candidate{rec: rec, key: NewRankKey(rec, pos)})
	}
	slices.SortFunc(ranked, compareCandidates)
	return takePicks(SlotFLEX, ranked, flexCount, n)
}

func rankByPosition(pool []player.Record, label string) []candidate {
	ranked := make([]candidate, 0, 8)
	for _, rec := range pool {
		if player.ResolvePosition(rec) != label {
			continue
		}
		ranked = append(ranked, candidate{rec: rec, key: NewRankKey(rec, label)})
	}
	slices.SortFunc(ranked, compareCandidates)
	return ranked
}

func takePicks(slot Slot, ranked []candidate, count int, n player.Normalizer) []Pick {
	if len(ranked) < count {
		count = len(ranked)
	}
	picks := make([]Pick, 0, count)
	for _, c := range ranked[:count] {
		picks = append(picks, Pick{Slot: slot, Player: n.View(c.rec)})
	}
	return picks
}
