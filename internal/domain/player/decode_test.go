package player

import "testing"

func TestDecodeDirectory_SkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"4035": {"player_id":"4035","full_name":"Derrick Henry","team":"TEN","position":"RB","years_exp":8,"depth_chart_order":1,"age":30},
		"6770": {"first_name":"Will","last_name":"Levis","team":"TEN","position":null,"fantasy_positions":["QB"],"years_exp":"1","depth_chart_order":null},
		"bad1": "not a record",
		"bad2": [1,2,3],
		"bad3": null,
		"7001": {"full_name": 42, "team": 123, "fantasy_positions": "QB", "status": null},
		"TEN": {"team":"TEN","position":"DEF","fantasy_positions":["DEF"],"years_exp":"abc"}
	}`)

	got, err := DecodeDirectory(raw)
	if err != nil {
		t.Fatalf("decode directory: %v", err)
	}
	if got.Skipped != 3 {
		t.Fatalf("expected 3 skipped entries, got %d", got.Skipped)
	}
	if len(got.Directory) != 4 {
		t.Fatalf("expected 4 valid records, got %d", len(got.Directory))
	}

	drifted, ok := got.Directory["7001"]
	if !ok {
		t.Fatalf("expected record with mistyped string fields to be kept")
	}
	if drifted.FullName != "42" || drifted.Team != "123" {
		t.Fatalf("expected literal text for mistyped fields, got %+v", drifted)
	}
	if ResolvePosition(drifted) != "QB" {
		t.Fatalf("expected bare fantasy_positions string to act as a list, got %q", ResolvePosition(drifted))
	}
	if !drifted.IsActive() {
		t.Fatalf("expected null status to count as active")
	}

	levis := got.Directory["6770"]
	if levis.ID != "6770" {
		t.Fatalf("expected id to come from the map key, got %q", levis.ID)
	}
	if ResolvePosition(levis) != "QB" {
		t.Fatalf("expected fantasy position fallback, got %q", ResolvePosition(levis))
	}
	if !levis.YearsExp.Valid || levis.YearsExp.Value != 1 {
		t.Fatalf("expected string years_exp to coerce, got %+v", levis.YearsExp)
	}
	if levis.DepthChartOrder.Valid {
		t.Fatalf("expected null depth chart order to be absent")
	}

	def := got.Directory["TEN"]
	if def.YearsExp.Valid {
		t.Fatalf("expected unparseable years_exp to be absent")
	}
	if DraftYearEstimate(def, 2024) != "" {
		t.Fatalf("expected empty draft year for unparseable years_exp")
	}
}

func TestDecodeDirectory_RejectsNonObjectPayload(t *testing.T) {
	t.Parallel()

	if _, err := DecodeDirectory([]byte(`[1,2,3]`)); err == nil {
		t.Fatalf("expected error for array payload")
	}
}

func TestDecodeDirectory_EmptyObject(t *testing.T) {
	t.Parallel()

	got, err := DecodeDirectory([]byte(`{}`))
	if err != nil {
		t.Fatalf("decode empty directory: %v", err)
	}
	if len(got.Directory) != 0 || got.Skipped != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
