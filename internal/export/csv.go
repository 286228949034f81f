package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV streams the table as RFC 4180 CSV. Used by the download handler,
// which owns the Content-Disposition side of things.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
