// Package ledger holds the session's tournament records.
//
// The ledger is the only mutable state in the system: an ordered, append-only,
// in-memory sequence that lives exactly as long as the process. There is no
// update, no delete, and no persistence; exports are the only way data leaves
// the session.
package ledger

import (
	"context"
	"fmt"
	"sync"

	"matchpoint/internal/core"
)

type Ledger struct {
	mu      sync.Mutex
	records []core.TournamentRecord
}

var (
	_ RecordAppender = (*Ledger)(nil)
	_ SnapshotReader = (*Ledger)(nil)
)

// New creates an empty ledger, open for append for its whole lifetime.
func New() *Ledger {
	return &Ledger{}
}

// Append stores the record at the end and returns a synthetic row reference.
// The mutex only guards against net/http running handlers on separate
// goroutines; the application itself is strictly sequential.
func (l *Ledger) Append(_ context.Context, r core.TournamentRecord) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, r)
	return fmt.Sprintf("led:%d", len(l.records)), nil
}

// Snapshot returns a copy of the records in insertion order.
func (l *Ledger) Snapshot(_ context.Context) ([]core.TournamentRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.TournamentRecord, len(l.records))
	copy(out, l.records)
	return out, nil
}

// Len returns the number of appended records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
