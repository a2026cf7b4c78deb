package uacqid

import (
	"context"

	"github.com/google/uuid"
)

// UacQidLinkRepository defines the interface for UAC/QID pair persistence
type UacQidLinkRepository interface {
	// FindByQID finds a pair by its questionnaire identifier, events included
	FindByQID(ctx context.Context, qid string) (*UacQidLink, error)

	// FindByCaseID returns all pairs linked to a case, events included.
	// An empty slice is not an error.
	FindByCaseID(ctx context.Context, caseID uuid.UUID) ([]*UacQidLink, error)

	// Save creates or updates a pair without touching the outbox
	Save(ctx context.Context, link *UacQidLink) error

	// SaveWithEvents persists the pair, its appended case events, and the
	// pending domain events' outbox entries in a single transaction.
	SaveWithEvents(ctx context.Context, link *UacQidLink) error
}
