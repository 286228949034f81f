package http

import (
	"net/url"
	"testing"
)

func TestParseRecordForm(t *testing.T) {
	form := url.Values{
		"name":           {"  Junior Open "},
		"date":           {"2025-06-14"},
		"location":       {"Barcelona"},
		"category":       {"J100"},
		"entry_fee":      {"45,50"},
		"flights":        {"120"},
		"match_wins":     {"3"},
		"ranking_points": {"15"},
		"notes":          {"round of 16"},
	}
	rec, err := parseRecordForm(form)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rec.Name != "Junior Open" {
		t.Fatalf("name not trimmed: %q", rec.Name)
	}
	if rec.EntryFee.Cents != 4550 || rec.Flights.Cents != 12000 {
		t.Fatalf("amounts wrong: %d %d", rec.EntryFee.Cents, rec.Flights.Cents)
	}
	// Missing cost and count fields clamp to zero
	if rec.Hotel.Cents != 0 || rec.MatchLosses != 0 {
		t.Fatalf("missing fields must clamp to zero")
	}
	if rec.MatchWins != 3 || rec.RankingPoints != 15 {
		t.Fatalf("counts wrong: %d %d", rec.MatchWins, rec.RankingPoints)
	}
	if err := rec.Validate(); err != nil {
		t.Fatalf("parsed record must validate: %v", err)
	}
}

func TestParseRecordFormErrors(t *testing.T) {
	cases := []struct {
		field, value string
	}{
		{"entry_fee", "abc"},
		{"flights", "-10"},
		{"date", "14/06/2025"},
		{"match_wins", "two"},
	}
	for _, tc := range cases {
		form := url.Values{"name": {"x"}, "category": {"ITF"}}
		form.Set(tc.field, tc.value)
		if _, err := parseRecordForm(form); err == nil {
			t.Fatalf("%s=%q expected error", tc.field, tc.value)
		}
	}
}

func TestParseCountClampsNegative(t *testing.T) {
	n, err := parseCount("-3")
	if err != nil {
		t.Fatalf("negative count should clamp, got error %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}
