package core

import "testing"

func TestGenerateBatchQueries_DateMajor(t *testing.T) {
	origin := Station{Name: "深圳北", Code: "IOQ", Encoded: "SZB"}
	dests := []Destination{dest("a", "1:00", 4, ""), dest("b", "2:00", 4, "")}
	dates := []string{"2026-02-27", "2026-02-28"}

	got := GenerateBatchQueries(dests, origin, dates)
	if len(got) != 4 {
		t.Fatalf("expected 4 records, got %d", len(got))
	}

	wantOrder := []struct{ dest, date string }{
		{"a", "2026-02-27"},
		{"b", "2026-02-27"},
		{"a", "2026-02-28"},
		{"b", "2026-02-28"},
	}
	for i, w := range wantOrder {
		if got[i].Destination != w.dest || got[i].Date != w.date {
			t.Errorf("record %d: expected %s/%s, got %s/%s", i, w.dest, w.date, got[i].Destination, got[i].Date)
		}
	}

	wantURL := BuildQueryURL("SZB", "IOQ", "a", "Xa", "2026-02-27")
	if got[0].URL != wantURL {
		t.Errorf("expected url %s, got %s", wantURL, got[0].URL)
	}
}

func TestGenerateBatchQueries_TimeRange(t *testing.T) {
	dests := []Destination{dest("a", "1:00", 4, "")}

	got := GenerateBatchQueries(dests, Station{}, []string{"2026-02-27", "fri-2026-02-27", "Fri"})
	if got[0].TimeRange != "06:00-12:00" {
		t.Errorf("plain date: expected morning window, got %s", got[0].TimeRange)
	}
	if got[1].TimeRange != "18:00-24:00" {
		t.Errorf("fri date: expected evening window, got %s", got[1].TimeRange)
	}
	if got[2].TimeRange != "06:00-12:00" {
		t.Errorf("match is case-sensitive: expected morning window, got %s", got[2].TimeRange)
	}
}

func TestGenerateBatchQueries_Empty(t *testing.T) {
	if got := GenerateBatchQueries(nil, Station{}, []string{"2026-02-27"}); len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}
