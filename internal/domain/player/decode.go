package player

import (
	"bytes"
	"encoding/json"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sleeper-report/internal/platform/coerce"
)

// DecodeResult is a validated directory plus the number of entries dropped
// because they were not player objects.
type DecodeResult struct {
	Directory Directory
	Skipped   int
}

// DecodeDirectory is the ingestion boundary for the provider's player map.
// Only a payload that is not a JSON object at all is an error; entries that
// are not objects are skipped.
func DecodeDirectory(raw []byte) (DecodeResult, error) {
	var entries map[string]json.RawMessage
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		return DecodeResult{}, fmt.Errorf("decode player directory: %w", err)
	}

	out := DecodeResult{Directory: make(Directory, len(entries))}
	for id, entry := range entries {
		rec, ok := decodeRecord(id, entry)
		if !ok {
			out.Skipped++
			continue
		}
		out.Directory[id] = rec
	}

	return out, nil
}

// wireRecord is the tolerant decode shape of one directory entry. Every field
// accepts drifted types, so only non-object entries are rejected.
type wireRecord struct {
	FullName         coerce.Text     `json:"full_name"`
	FirstName        coerce.Text     `json:"first_name"`
	LastName         coerce.Text     `json:"last_name"`
	Team             coerce.Text     `json:"team"`
	Position         coerce.Text     `json:"position"`
	FantasyPositions coerce.TextList `json:"fantasy_positions"`
	Age              coerce.Int      `json:"age"`
	YearsExp         coerce.Int      `json:"years_exp"`
	DepthChartOrder  coerce.Int      `json:"depth_chart_order"`
	Status           coerce.Text     `json:"status"`
}

func decodeRecord(id string, entry json.RawMessage) (Record, bool) {
	trimmed := bytes.TrimSpace(entry)
	if id == "" || len(trimmed) == 0 || trimmed[0] != '{' {
		return Record{}, false
	}

	var wire wireRecord
	if err := sonic.Unmarshal(trimmed, &wire); err != nil {
		return Record{}, false
	}

	return Record{
		ID:               id,
		FullName:         string(wire.FullName),
		FirstName:        string(wire.FirstName),
		LastName:         string(wire.LastName),
		Team:             string(wire.Team),
		Position:         string(wire.Position),
		FantasyPositions: []string(wire.FantasyPositions),
		Age:              wire.Age,
		YearsExp:         wire.YearsExp,
		DepthChartOrder:  wire.DepthChartOrder,
		Status:           string(wire.Status),
	}, true
}
