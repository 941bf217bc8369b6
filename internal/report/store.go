package report

import "context"

// Store describes persistence for incident reports.
type Store interface {
	// Create persists a new report, assigning ID and timestamps. Severity or
	// status values outside their enums map to ErrInvalidValue.
	Create(ctx context.Context, r *Report) error
	// ListRecent returns up to limit reports ordered newest first by creation
	// time, ties broken by id descending.
	ListRecent(ctx context.Context, limit int) ([]Report, error)
}
