package http

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"matchpoint/internal/core"
	"matchpoint/internal/export"
	applog "matchpoint/internal/log"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	prefs := s.preferences()
	data := struct {
		Preferences
		Categories    []core.Category
		Today         string
		SheetsEnabled bool
	}{
		Preferences:   prefs,
		Categories:    core.Categories,
		Today:         time.Now().Format("2006-01-02"),
		SheetsEnabled: s.sheets != nil,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", applog.FieldError, err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateTournament(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err, applog.FieldPath, r.URL.Path)
		ErrorResponse(http.StatusBadRequest, "Invalid request format").Write(w)
		return
	}

	rec, err := parseRecordForm(r.Form)
	if err != nil {
		UnprocessableEntityError(err.Error()).Write(w)
		return
	}
	if err := rec.Validate(); err != nil {
		UnprocessableEntityError("Invalid data: " + err.Error()).Write(w)
		return
	}

	ref, err := s.appender.Append(r.Context(), rec)
	if err != nil {
		slog.ErrorContext(r.Context(), "Tournament append error",
			applog.FieldError, err,
			applog.FieldTournament, rec.Name,
			applog.FieldCategory, string(rec.Category))
		InternalServerError("Could not save the tournament").Write(w)
		return
	}

	total := core.TotalCost(rec)
	slog.InfoContext(r.Context(), "Tournament recorded",
		applog.FieldRowRef, ref,
		applog.FieldTournament, rec.Name,
		applog.FieldCategory, string(rec.Category),
		applog.FieldTotalCents, total.Cents,
		applog.FieldMatchWins, rec.MatchWins,
		applog.FieldRankingPoints, rec.RankingPoints)

	prefs := s.preferences()
	NewHTMXResponse().
		TriggerTournamentCreated(ref).
		TriggerFormReset().
		BodyHTML(`<div class="success">Tournament recorded (#` + template.HTMLEscapeString(ref) + `): ` +
			template.HTMLEscapeString(rec.Name) +
			` — ` + template.HTMLEscapeString(formatAmount(total, prefs.Currency)) +
			` (` + template.HTMLEscapeString(string(rec.Category)) + `)</div>`).
		Write(w)
}

// dashboardData is everything the dashboard partial renders: the derived
// table, three bar charts, and the cumulative stats.
type dashboardData struct {
	Empty  bool
	Rows   []dashboardRow
	Charts []chartData
	Stats  statsData
}

type dashboardRow struct {
	Name, Date, Location, Category      string
	EntryFee, Flights, Hotel, Meals     string
	Coaching, Misc                      string
	Wins, Losses, Points                int
	Notes                               string
	TotalCost, CostPerPoint, CostPerWin string
}

type chartData struct {
	Title string
	Bars  []chartBar
}

type chartBar struct {
	Label string
	Value string
	Width int
}

type statsData struct {
	TotalSpent      string
	TotalPoints     int
	TotalWins       int
	AvgCostPerPoint string
	AvgCostPerWin   string
}

// handleDashboard renders the dashboard partial. The derived view is
// recomputed from the full snapshot on every request.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	snap, err := s.snapshot.Snapshot(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Snapshot error", applog.FieldError, err)
		_, _ = w.Write([]byte(`<div class="placeholder">Error loading dashboard</div>`))
		return
	}

	view := core.Derive(snap)
	prefs := s.preferences()
	data := buildDashboard(view, prefs.Currency)

	if s.templates == nil {
		_, _ = w.Write([]byte(`<div class="placeholder">Total spent: ` + data.Stats.TotalSpent + `</div>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", applog.FieldError, err, "template", "dashboard.html")
		_, _ = w.Write([]byte(`<div class="placeholder">Error rendering dashboard</div>`))
	}
}

func buildDashboard(view core.DerivedView, symbol string) dashboardData {
	data := dashboardData{Empty: len(view.Records) == 0}
	for _, d := range view.Records {
		data.Rows = append(data.Rows, dashboardRow{
			Name:         d.Name,
			Date:         d.Date.Format("2006-01-02"),
			Location:     d.Location,
			Category:     string(d.Category),
			EntryFee:     formatAmount(d.EntryFee, symbol),
			Flights:      formatAmount(d.Flights, symbol),
			Hotel:        formatAmount(d.Hotel, symbol),
			Meals:        formatAmount(d.Meals, symbol),
			Coaching:     formatAmount(d.Coaching, symbol),
			Misc:         formatAmount(d.Misc, symbol),
			Wins:         d.MatchWins,
			Losses:       d.MatchLosses,
			Points:       d.RankingPoints,
			Notes:        d.Notes,
			TotalCost:    formatAmount(d.TotalCost, symbol),
			CostPerPoint: formatAmount(d.CostPerPoint, symbol),
			CostPerWin:   formatAmount(d.CostPerWin, symbol),
		})
	}

	data.Charts = []chartData{
		buildChart("Total Spent per Tournament", view, symbol, func(d core.DerivedRecord) core.Money { return d.TotalCost }),
		buildChart("Cost per Ranking Point", view, symbol, func(d core.DerivedRecord) core.Money { return d.CostPerPoint }),
		buildChart("Cost per Match Win", view, symbol, func(d core.DerivedRecord) core.Money { return d.CostPerWin }),
	}

	data.Stats = statsData{
		TotalSpent:      formatAmount(view.Totals.TotalCost, symbol),
		TotalPoints:     view.Totals.RankingPoints,
		TotalWins:       view.Totals.MatchWins,
		AvgCostPerPoint: formatAverage(view.Totals.AvgCostPerPoint, symbol),
		AvgCostPerWin:   formatAverage(view.Totals.AvgCostPerWin, symbol),
	}
	return data
}

// buildChart scales one derived column into bars keyed by tournament name.
func buildChart(title string, view core.DerivedView, symbol string, value func(core.DerivedRecord) core.Money) chartData {
	var maxCents int64
	for _, d := range view.Records {
		if v := value(d).Cents; v > maxCents {
			maxCents = v
		}
	}
	c := chartData{Title: title}
	for _, d := range view.Records {
		v := value(d)
		c.Bars = append(c.Bars, chartBar{
			Label: d.Name,
			Value: formatAmount(v, symbol),
			Width: barWidth(v.Cents, maxCents),
		})
	}
	return c
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshot.Snapshot(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Snapshot error", applog.FieldError, err)
		http.Error(w, "could not read ledger", http.StatusInternalServerError)
		return
	}

	table := export.BuildTable(core.Derive(snap))
	filename := "tournaments-" + time.Now().Format("20060102") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteCSV(w, table); err != nil {
		slog.ErrorContext(r.Context(), "CSV export error", applog.FieldError, err, applog.FieldExportRows, len(table.Rows))
		return
	}
	slog.InfoContext(r.Context(), "Ledger exported to CSV",
		applog.FieldExportRef, filename,
		applog.FieldExportRows, len(table.Rows))
}

func (s *Server) handleExportSheets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if s.sheets == nil {
		ErrorResponse(http.StatusServiceUnavailable, "Sheets export is not configured").Write(w)
		return
	}

	snap, err := s.snapshot.Snapshot(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Snapshot error", applog.FieldError, err)
		InternalServerError("Could not read ledger").Write(w)
		return
	}

	table := export.BuildTable(core.Derive(snap))
	ctx, cancel := contextWithExportTimeout(r)
	defer cancel()
	ref, err := s.sheets.Write(ctx, table)
	if err != nil {
		slog.ErrorContext(r.Context(), "Sheets export error", applog.FieldError, err, applog.FieldExportRows, len(table.Rows))
		InternalServerError("Export failed").Write(w)
		return
	}

	NewHTMXResponse().
		BodyHTML(`<div class="success">Exported ` + fmt.Sprintf("%d", len(table.Rows)) +
			` tournaments to ` + template.HTMLEscapeString(ref) + `</div>`).
		Write(w)
}

// contextWithExportTimeout bounds a Sheets push so a slow API call cannot
// hang the form indefinitely.
func contextWithExportTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 15*time.Second)
}

func (s *Server) handlePrefs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		ErrorResponse(http.StatusBadRequest, "Invalid request format").Write(w)
		return
	}

	prefs := s.preferences()
	if v := strings.TrimSpace(r.Form.Get("theme")); v == "light" || v == "dark" {
		prefs.Theme = v
	}
	if v := sanitizeInput(r.Form.Get("language")); v != "" && len(v) <= 20 {
		prefs.Language = v
	}
	if v := sanitizeInput(r.Form.Get("currency")); v != "" && len(v) <= 4 {
		prefs.Currency = v
	}
	if v := sanitizeInput(r.Form.Get("player_name")); len(v) <= 100 {
		prefs.PlayerName = v
	}
	s.setPreferences(prefs)

	// Full reload so the theme applies to the whole page.
	NewHTMXResponse().
		TriggerPrefsChanged().
		Header("HX-Refresh", "true").
		Write(w)
}
