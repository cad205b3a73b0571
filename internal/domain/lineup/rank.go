package lineup

import (
	"cmp"
	"strings"

	"github.com/riskibarqy/sleeper-report/internal/domain/player"
)

const (
	unknownDepthOrder = 99
	unknownYearsExp   = -1
)

// RankKey orders players for a target position; lower sorts first. Fields
// compare in declaration order.
type RankKey struct {
	PrimaryMismatch int
	DepthOrder      int
	NegYearsExp     int
	InactiveRank    int
	LastNameMissing int
	LastName        string
}

// NewRankKey builds the depth-chart key of rec for target.
func NewRankKey(rec player.Record, target string) RankKey {
	key := RankKey{
		DepthOrder:  rec.DepthChartOrder.Or(unknownDepthOrder),
		NegYearsExp: -rec.YearsExp.Or(unknownYearsExp),
		LastName:    strings.TrimSpace(rec.LastName),
	}
	if player.ResolvePosition(rec) != target {
		key.PrimaryMismatch = 1
	}
	if !rec.IsActive() {
		key.InactiveRank = 1
	}
	if key.LastName == "" {
		key.LastNameMissing = 1
	}
	return key
}

func (k RankKey) Compare(other RankKey) int {
	return cmp.Or(
		cmp.Compare(k.PrimaryMismatch, other.PrimaryMismatch),
		cmp.Compare(k.DepthOrder, other.DepthOrder),
		cmp.Compare(k.NegYearsExp, other.NegYearsExp),
		cmp.Compare(k.InactiveRank, other.InactiveRank),
		cmp.Compare(k.LastNameMissing, other.LastNameMissing),
		cmp.Compare(k.LastName, other.LastName),
	)
}

// candidate pairs a record with its key for one ranking pass.
type candidate struct {
	rec player.Record
	key RankKey
}

// compareCandidates breaks full key ties by player id so ordering is total.
func compareCandidates(a, b candidate) int {
	return cmp.Or(a.key.Compare(b.key), cmp.Compare(a.rec.ID, b.rec.ID))
}
