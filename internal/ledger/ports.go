package ledger

import (
	"context"

	"matchpoint/internal/core"
)

// Ports consumed by the HTTP layer and export sinks.
type (
	// RecordAppender accepts a new tournament record and returns a synthetic
	// row reference for the confirmation message.
	RecordAppender interface {
		Append(ctx context.Context, r core.TournamentRecord) (rowRef string, err error)
	}

	// SnapshotReader returns the ledger contents in insertion order.
	// Implementations must hand out a copy the caller may not use to
	// mutate ledger state.
	SnapshotReader interface {
		Snapshot(ctx context.Context) ([]core.TournamentRecord, error)
	}
)
