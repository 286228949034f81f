package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"matchpoint/internal/export"
	"matchpoint/internal/ledger"
)

type fakeSink struct {
	tables []export.Table
	err    error
}

func (f *fakeSink) Write(_ context.Context, t export.Table) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.tables = append(f.tables, t)
	return "Tournaments!A1:3", nil
}

func newTestServer(sink export.Sink) *Server {
	led := ledger.New()
	return NewServer(":0", led, led, Options{SheetsSink: sink})
}

func postForm(srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func recordForm() url.Values {
	return url.Values{
		"name":           {"Torneo Avvenire"},
		"date":           {"2025-06-14"},
		"location":       {"Milan"},
		"category":       {"ITF"},
		"entry_fee":      {"100"},
		"flights":        {"200"},
		"hotel":          {"50"},
		"meals":          {"0"},
		"coaching":       {"0"},
		"misc":           {"0"},
		"match_wins":     {"2"},
		"match_losses":   {"1"},
		"ranking_points": {"0"},
	}
}

func TestIndexAndHealth(t *testing.T) {
	srv := newTestServer(nil)
	defer srv.limiter.Stop()

	rr := get(srv, "/")
	if rr.Code != 200 {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Tournament Cost") {
		t.Fatalf("index body missing heading")
	}
	if rr.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatalf("security headers not applied")
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		if rr := get(srv, path); rr.Code != 200 {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestCreateTournamentValidationAndSuccess(t *testing.T) {
	srv := newTestServer(nil)
	defer srv.limiter.Stop()

	// Wrong method
	if rr := get(srv, "/tournaments"); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}

	// Malformed amount
	form := recordForm()
	form.Set("entry_fee", "abc")
	if rr := postForm(srv, "/tournaments", form); rr.Code != 422 {
		t.Fatalf("malformed amount expected 422, got %d", rr.Code)
	}

	// Negative amount rejected at the boundary
	form = recordForm()
	form.Set("hotel", "-5")
	if rr := postForm(srv, "/tournaments", form); rr.Code != 422 {
		t.Fatalf("negative amount expected 422, got %d", rr.Code)
	}

	// Unknown category
	form = recordForm()
	form.Set("category", "J40")
	if rr := postForm(srv, "/tournaments", form); rr.Code != 422 {
		t.Fatalf("unknown category expected 422, got %d", rr.Code)
	}

	// Missing name
	form = recordForm()
	form.Set("name", "  ")
	if rr := postForm(srv, "/tournaments", form); rr.Code != 422 {
		t.Fatalf("missing name expected 422, got %d", rr.Code)
	}

	// Success
	rr := postForm(srv, "/tournaments", recordForm())
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Header().Get("HX-Trigger"), "tournament:created") {
		t.Fatalf("missing tournament:created trigger, got %q", rr.Header().Get("HX-Trigger"))
	}
	if !strings.Contains(rr.Body.String(), "Torneo Avvenire") {
		t.Fatalf("confirmation missing tournament name: %s", rr.Body.String())
	}
}

func TestDashboardEmptyAndDerived(t *testing.T) {
	srv := newTestServer(nil)
	defer srv.limiter.Stop()

	rr := get(srv, "/ui/dashboard")
	if rr.Code != 200 {
		t.Fatalf("dashboard status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No tournament data yet") {
		t.Fatalf("empty dashboard missing placeholder")
	}

	if rr := postForm(srv, "/tournaments", recordForm()); rr.Code != 200 {
		t.Fatalf("create failed: %d", rr.Code)
	}

	rr = get(srv, "/ui/dashboard")
	body := rr.Body.String()
	// 100+200+50 spent, two wins, zero points
	for _, want := range []string{"€350.00", "€175.00", "€0.00", "Torneo Avvenire"} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q:\n%s", want, body)
		}
	}
	// Avg cost per point stays the placeholder with zero total points
	if !strings.Contains(body, "<dd>-</dd>") {
		t.Fatalf("dashboard missing aggregate placeholder:\n%s", body)
	}
	if !strings.Contains(body, "Cost per Ranking Point") || !strings.Contains(body, "Cost per Match Win") || !strings.Contains(body, "Total Spent per Tournament") {
		t.Fatalf("dashboard missing chart titles")
	}
}

func TestExportCSV(t *testing.T) {
	srv := newTestServer(nil)
	defer srv.limiter.Stop()

	if rr := postForm(srv, "/tournaments", recordForm()); rr.Code != 200 {
		t.Fatalf("create failed: %d", rr.Code)
	}

	rr := get(srv, "/export.csv")
	if rr.Code != 200 {
		t.Fatalf("export status=%d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, "Tournament,Date,Location,Category") {
		t.Fatalf("csv missing header: %q", body)
	}
	if !strings.Contains(body, "350.00") {
		t.Fatalf("csv missing derived total: %q", body)
	}
}

func TestExportSheets(t *testing.T) {
	// Not configured
	srv := newTestServer(nil)
	defer srv.limiter.Stop()
	if rr := postForm(srv, "/export/sheets", url.Values{}); rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without sink, got %d", rr.Code)
	}

	// Configured
	sink := &fakeSink{}
	srv2 := newTestServer(sink)
	defer srv2.limiter.Stop()
	if rr := postForm(srv2, "/tournaments", recordForm()); rr.Code != 200 {
		t.Fatalf("create failed: %d", rr.Code)
	}
	rr := postForm(srv2, "/export/sheets", url.Values{})
	if rr.Code != 200 {
		t.Fatalf("export expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(sink.tables) != 1 || len(sink.tables[0].Rows) != 1 {
		t.Fatalf("sink did not receive the table: %+v", sink.tables)
	}
}

func TestPrefsChangeTheme(t *testing.T) {
	srv := newTestServer(nil)
	defer srv.limiter.Stop()

	rr := postForm(srv, "/ui/prefs", url.Values{
		"theme":    {"dark"},
		"currency": {"$"},
	})
	if rr.Code != 200 {
		t.Fatalf("prefs status=%d", rr.Code)
	}
	if rr.Header().Get("HX-Refresh") != "true" {
		t.Fatalf("prefs response must ask for a refresh")
	}

	rr = get(srv, "/")
	if !strings.Contains(rr.Body.String(), `data-theme="dark"`) {
		t.Fatalf("theme not applied to index")
	}

	if rr := postForm(srv, "/tournaments", recordForm()); rr.Code != 200 {
		t.Fatalf("create failed: %d", rr.Code)
	}
	if rr := get(srv, "/ui/dashboard"); !strings.Contains(rr.Body.String(), "$350.00") {
		t.Fatalf("currency symbol not applied to dashboard")
	}
}
