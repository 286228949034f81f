// This file implements parsing of the tournament entry form into a domain
// record. The HTTP boundary owns the non-negativity precondition: malformed
// numbers are rejected and missing ones clamp to zero, so the core never
// sees a negative value.
package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"matchpoint/internal/core"
)

// costFields maps form names to record cost fields in schema order.
var costFields = []string{"entry_fee", "flights", "hotel", "meals", "coaching", "misc"}

// parseRecordForm builds a TournamentRecord from submitted form values.
func parseRecordForm(form url.Values) (core.TournamentRecord, error) {
	r := core.TournamentRecord{
		Name:     sanitizeInput(form.Get("name")),
		Location: sanitizeInput(form.Get("location")),
		Category: core.Category(strings.TrimSpace(form.Get("category"))),
		Notes:    sanitizeInput(form.Get("notes")),
	}

	date, err := parseDate(form.Get("date"))
	if err != nil {
		return r, fmt.Errorf("invalid date: %w", err)
	}
	r.Date = date

	targets := []*core.Money{&r.EntryFee, &r.Flights, &r.Hotel, &r.Meals, &r.Coaching, &r.Misc}
	for i, field := range costFields {
		m, err := parseCost(form.Get(field))
		if err != nil {
			return r, fmt.Errorf("invalid %s: %w", strings.ReplaceAll(field, "_", " "), err)
		}
		*targets[i] = m
	}

	if r.MatchWins, err = parseCount(form.Get("match_wins")); err != nil {
		return r, fmt.Errorf("invalid match wins: %w", err)
	}
	if r.MatchLosses, err = parseCount(form.Get("match_losses")); err != nil {
		return r, fmt.Errorf("invalid match losses: %w", err)
	}
	if r.RankingPoints, err = parseCount(form.Get("ranking_points")); err != nil {
		return r, fmt.Errorf("invalid ranking points: %w", err)
	}

	return r, nil
}

// parseDate parses a date string in YYYY-MM-DD format.
// An empty value defaults to today.
func parseDate(s string) (core.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		now := time.Now()
		return core.NewDate(now.Year(), int(now.Month()), now.Day()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return core.Date{}, err
	}
	return core.Date{Time: t}, nil
}

// parseCost converts a form amount to Money. Missing clamps to zero.
func parseCost(s string) (core.Money, error) {
	if strings.TrimSpace(s) == "" {
		return core.Money{}, nil
	}
	cents, err := core.ParseDecimalToCents(s)
	if err != nil {
		return core.Money{}, err
	}
	return core.Money{Cents: cents}, nil
}

// parseCount converts a form counter to a non-negative int. Missing clamps
// to zero; a stray negative clamps as well, matching the form's min=0.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, nil
	}
	return n, nil
}

// sanitizeInput removes potentially dangerous characters and trims whitespace
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	// Remove control characters except tab, newline, carriage return
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
