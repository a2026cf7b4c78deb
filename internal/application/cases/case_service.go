package cases

import (
	"context"

	"github.com/census-rm/caseapi/internal/domain/cases"
	"github.com/census-rm/caseapi/internal/domain/uacqid"
	"github.com/google/uuid"
)

// CaseService handles case lookup operations
type CaseService struct {
	caseRepo cases.CaseRepository
	linkRepo uacqid.UacQidLinkRepository
}

// NewCaseService creates a new CaseService
func NewCaseService(caseRepo cases.CaseRepository, linkRepo uacqid.UacQidLinkRepository) *CaseService {
	return &CaseService{
		caseRepo: caseRepo,
		linkRepo: linkRepo,
	}
}

// GetByID returns a case by its id. When includeEvents is set the response
// carries the events recorded against every UAC/QID pair linked to the case.
func (s *CaseService) GetByID(ctx context.Context, id uuid.UUID, includeEvents bool) (*CaseResponse, error) {
	c, err := s.caseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c, includeEvents)
}

// GetByCaseRef returns a case by its human-readable case reference
func (s *CaseService) GetByCaseRef(ctx context.Context, caseRef int64, includeEvents bool) (*CaseResponse, error) {
	c, err := s.caseRepo.FindByCaseRef(ctx, caseRef)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c, includeEvents)
}

// GetByUPRN returns every case registered at a property. Matches come back in
// a stable order; zero matches is a not-found error.
func (s *CaseService) GetByUPRN(ctx context.Context, uprn string, includeEvents bool) ([]*CaseResponse, error) {
	found, err := s.caseRepo.FindByUPRN(ctx, uprn)
	if err != nil {
		return nil, err
	}

	responses := make([]*CaseResponse, 0, len(found))
	for i := range found {
		resp, err := s.toResponse(ctx, &found[i], includeEvents)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *CaseService) toResponse(ctx context.Context, c *cases.Case, includeEvents bool) (*CaseResponse, error) {
	if !includeEvents {
		return ToCaseResponse(c, nil), nil
	}

	links, err := s.linkRepo.FindByCaseID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	var events []CaseEventResponse
	for _, link := range links {
		for i := range link.Events {
			events = append(events, ToCaseEventResponse(&link.Events[i]))
		}
	}
	return ToCaseResponse(c, events), nil
}
