package persistence

import (
	"context"
	"errors"

	"github.com/census-rm/caseapi/internal/domain/cases"
	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCaseRepository implements CaseRepository using GORM
type GormCaseRepository struct {
	db *gorm.DB
}

// NewGormCaseRepository creates a new GormCaseRepository
func NewGormCaseRepository(db *gorm.DB) *GormCaseRepository {
	return &GormCaseRepository{db: db}
}

// FindByID finds a case by its ID
func (r *GormCaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*cases.Case, error) {
	var c cases.Case
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByCaseRef finds a case by its human-facing reference
func (r *GormCaseRepository) FindByCaseRef(ctx context.Context, caseRef int64) (*cases.Case, error) {
	var c cases.Case
	if err := r.db.WithContext(ctx).First(&c, "case_ref = ?", caseRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByUPRN finds all cases registered against a UPRN. Results come back in
// insertion order so repeated lookups are stable. Zero matches is not found.
func (r *GormCaseRepository) FindByUPRN(ctx context.Context, uprn string) ([]cases.Case, error) {
	var found []cases.Case
	if err := r.db.WithContext(ctx).
		Where("uprn = ?", uprn).
		Order("created_at ASC, case_ref ASC").
		Find(&found).Error; err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, shared.ErrNotFound
	}
	return found, nil
}

// Save creates or updates a case
func (r *GormCaseRepository) Save(ctx context.Context, c *cases.Case) error {
	return r.db.WithContext(ctx).Save(c).Error
}
