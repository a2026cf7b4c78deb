package cases

import (
	"context"

	"github.com/google/uuid"
)

// CaseRepository defines the interface for case persistence.
// Lookups never mutate the entity; absence is reported as shared.ErrNotFound.
type CaseRepository interface {
	// FindByID finds a case by its opaque case identifier
	FindByID(ctx context.Context, id uuid.UUID) (*Case, error)

	// FindByCaseRef finds a case by its human-facing numeric reference
	FindByCaseRef(ctx context.Context, caseRef int64) (*Case, error)

	// FindByUPRN finds all cases registered against a UPRN, in storage
	// insertion order. Zero matches is shared.ErrNotFound, never an empty
	// slice.
	FindByUPRN(ctx context.Context, uprn string) ([]Case, error)

	// Save creates or updates a case. Used by ingestion and test fixtures;
	// the HTTP surface never writes cases.
	Save(ctx context.Context, c *Case) error
}
