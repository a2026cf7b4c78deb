package persistence

import (
	"context"
	"errors"

	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/census-rm/caseapi/internal/domain/uacqid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUacQidLinkRepository implements UacQidLinkRepository using GORM
type GormUacQidLinkRepository struct {
	db         *gorm.DB
	eventSaver shared.OutboxEventSaver
}

// NewGormUacQidLinkRepository creates a new GormUacQidLinkRepository.
// The event saver writes pending domain events to the outbox inside the same
// transaction as the aggregate change.
func NewGormUacQidLinkRepository(db *gorm.DB, eventSaver shared.OutboxEventSaver) *GormUacQidLinkRepository {
	return &GormUacQidLinkRepository{db: db, eventSaver: eventSaver}
}

// FindByQID finds a pair by its questionnaire identifier, events included
func (r *GormUacQidLinkRepository) FindByQID(ctx context.Context, qid string) (*uacqid.UacQidLink, error) {
	var link uacqid.UacQidLink
	if err := r.db.WithContext(ctx).
		Preload("Events").
		First(&link, "qid = ?", qid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindByCaseID returns all pairs linked to a case, events included
func (r *GormUacQidLinkRepository) FindByCaseID(ctx context.Context, caseID uuid.UUID) ([]*uacqid.UacQidLink, error) {
	var links []*uacqid.UacQidLink
	if err := r.db.WithContext(ctx).
		Preload("Events").
		Where("case_id = ?", caseID).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Save creates or updates a pair without touching the outbox
func (r *GormUacQidLinkRepository) Save(ctx context.Context, link *uacqid.UacQidLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

// SaveWithEvents persists the pair, its appended case events, and the outbox
// entries for its pending domain events in a single transaction. The pending
// events are cleared only after a successful commit.
func (r *GormUacQidLinkRepository) SaveWithEvents(ctx context.Context, link *uacqid.UacQidLink) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(link).Error; err != nil {
			return err
		}

		for i := range link.Events {
			if err := tx.Save(&link.Events[i]).Error; err != nil {
				return err
			}
		}

		return r.eventSaver.SaveEvents(ctx, tx, link.GetDomainEvents()...)
	})
	if err != nil {
		return err
	}

	link.ClearDomainEvents()
	return nil
}
