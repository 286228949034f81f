// Package export serializes a derived ledger view into a tabular form and
// pushes it to spreadsheet sinks (CSV download, Google Sheets).
package export

import (
	"context"
	"strconv"

	"matchpoint/internal/core"
)

// Header lists the spreadsheet columns: record fields in schema order,
// then the three derived columns.
var Header = []string{
	"Tournament", "Date", "Location", "Category",
	"Entry Fee", "Flights", "Hotel", "Meals", "Coaching", "Miscellaneous",
	"Match Wins", "Match Losses", "Ranking Points", "Notes",
	"Total Cost", "Cost per Point", "Cost per Win",
}

// Table is one sheet: a header row plus one data row per tournament.
type Table struct {
	Header []string
	Rows   [][]string
}

// Sink writes a table to some spreadsheet destination and returns a
// human-readable reference to where it landed.
type Sink interface {
	Write(ctx context.Context, t Table) (ref string, err error)
}

// BuildTable flattens a derived view into rows matching Header.
// Amounts are plain decimals (dot separator, two digits) so spreadsheet
// applications parse them as numbers.
func BuildTable(view core.DerivedView) Table {
	t := Table{Header: Header, Rows: make([][]string, 0, len(view.Records))}
	for _, d := range view.Records {
		t.Rows = append(t.Rows, []string{
			d.Name,
			d.Date.Format("2006-01-02"),
			d.Location,
			string(d.Category),
			amount(d.EntryFee),
			amount(d.Flights),
			amount(d.Hotel),
			amount(d.Meals),
			amount(d.Coaching),
			amount(d.Misc),
			strconv.Itoa(d.MatchWins),
			strconv.Itoa(d.MatchLosses),
			strconv.Itoa(d.RankingPoints),
			d.Notes,
			amount(d.TotalCost),
			amount(d.CostPerPoint),
			amount(d.CostPerWin),
		})
	}
	return t
}

func amount(m core.Money) string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := strconv.FormatInt(cents/100, 10) + "."
	rem := cents % 100
	if rem < 10 {
		s += "0"
	}
	s += strconv.FormatInt(rem, 10)
	if neg {
		return "-" + s
	}
	return s
}
