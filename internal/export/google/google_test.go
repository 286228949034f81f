package google

import (
	"context"
	"testing"

	"matchpoint/internal/export"
)

func TestNewFromEnvRequiresSpreadsheetID(t *testing.T) {
	t.Setenv("GOOGLE_SPREADSHEET_ID", "")
	if _, err := NewFromEnv(context.Background()); err == nil {
		t.Fatalf("expected error without GOOGLE_SPREADSHEET_ID")
	}
}

func TestToValues(t *testing.T) {
	tbl := export.Table{
		Header: []string{"Tournament", "Total Cost"},
		Rows:   [][]string{{"a", "100.00"}, {"b", "0.00"}},
	}
	values := toValues(tbl)
	if len(values) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(values))
	}
	if values[0][0] != "Tournament" {
		t.Fatalf("header not first: %v", values[0])
	}
	if values[2][1] != "0.00" {
		t.Fatalf("unexpected cell: %v", values[2])
	}
}
