package uacqid

import (
	"context"

	"github.com/census-rm/caseapi/internal/domain/cases"
	"github.com/census-rm/caseapi/internal/domain/questionnaire"
	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/census-rm/caseapi/internal/domain/uacqid"
	"github.com/google/uuid"
)

// PairGenerator mints UAC/QID pairs for a questionnaire type. Pair generation
// lives in a separate service; this boundary keeps it swappable in tests.
type PairGenerator interface {
	Generate(ctx context.Context, questionnaireType questionnaire.Type) (uac string, qid string, err error)
}

// UacQidService handles UAC/QID pair lookups, creation and linking
type UacQidService struct {
	linkRepo  uacqid.UacQidLinkRepository
	caseRepo  cases.CaseRepository
	generator PairGenerator
}

// NewUacQidService creates a new UacQidService
func NewUacQidService(linkRepo uacqid.UacQidLinkRepository, caseRepo cases.CaseRepository, generator PairGenerator) *UacQidService {
	return &UacQidService{
		linkRepo:  linkRepo,
		caseRepo:  caseRepo,
		generator: generator,
	}
}

// GetByQID returns a pair by its questionnaire identifier
func (s *UacQidService) GetByQID(ctx context.Context, qid string) (*QidResponse, error) {
	link, err := s.linkRepo.FindByQID(ctx, qid)
	if err != nil {
		return nil, err
	}
	return ToQidResponse(link), nil
}

// Link associates a questionnaire with a case. Both sides must already exist.
// A state-changing link persists the pair, its linkage event and the outgoing
// notification atomically; relinking to the same case changes nothing.
func (s *UacQidService) Link(ctx context.Context, qid string, caseID uuid.UUID, transactionID uuid.UUID) error {
	link, err := s.linkRepo.FindByQID(ctx, qid)
	if err != nil {
		return err
	}

	if _, err := s.caseRepo.FindByID(ctx, caseID); err != nil {
		return err
	}

	if err := link.LinkToCase(caseID, transactionID); err != nil {
		return err
	}

	if len(link.GetDomainEvents()) == 0 {
		// Idempotent relink, nothing to persist or publish
		return nil
	}

	return s.linkRepo.SaveWithEvents(ctx, link)
}

// Create mints a new UAC/QID pair for a questionnaire type and optionally
// links it to an existing case in the same transaction.
func (s *UacQidService) Create(ctx context.Context, req CreateUacQidRequest) (*CreateUacQidResponse, error) {
	var caseID *uuid.UUID
	if req.CaseID != "" {
		id, err := uuid.Parse(req.CaseID)
		if err != nil {
			return nil, shared.NewDomainError("BAD_REQUEST", "caseId must be a valid UUID")
		}
		if _, err := s.caseRepo.FindByID(ctx, id); err != nil {
			return nil, err
		}
		caseID = &id
	}

	uac, qid, err := s.generator.Generate(ctx, questionnaire.Type(req.QuestionnaireType))
	if err != nil {
		return nil, err
	}

	link, err := uacqid.NewUacQidLink(qid, uac)
	if err != nil {
		return nil, err
	}

	if caseID == nil {
		if err := s.linkRepo.Save(ctx, link); err != nil {
			return nil, err
		}
		return &CreateUacQidResponse{UAC: uac, QID: qid}, nil
	}

	if err := link.LinkToCase(*caseID, uuid.New()); err != nil {
		return nil, err
	}
	if err := s.linkRepo.SaveWithEvents(ctx, link); err != nil {
		return nil, err
	}
	return &CreateUacQidResponse{UAC: uac, QID: qid, CaseID: caseID}, nil
}

// CreateForCase mints a pair for telephone capture against an existing case.
// The case's own attributes drive validation and classification. Individual
// requests against a household case link the pair to the supplied individual
// case reference instead of the addressed case.
func (s *UacQidService) CreateForCase(ctx context.Context, caseID uuid.UUID, individual bool, individualCaseRef *uuid.UUID) (*TelephoneCaptureResponse, error) {
	c, err := s.caseRepo.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if err := questionnaire.ValidateLinkRequest(c.CaseType, c.AddressLevel, individual, individualCaseRef); err != nil {
		return nil, err
	}

	questionnaireType, err := questionnaire.Classify(c.CaseType, c.Region, c.AddressLevel, individual)
	if err != nil {
		return nil, err
	}

	uac, qid, err := s.generator.Generate(ctx, questionnaireType)
	if err != nil {
		return nil, err
	}

	link, err := uacqid.NewUacQidLink(qid, uac)
	if err != nil {
		return nil, err
	}

	targetCaseID := caseID
	if individualCaseRef != nil {
		targetCaseID = *individualCaseRef
	}
	if err := link.LinkToCase(targetCaseID, uuid.New()); err != nil {
		return nil, err
	}
	if err := s.linkRepo.SaveWithEvents(ctx, link); err != nil {
		return nil, err
	}

	return &TelephoneCaptureResponse{
		QuestionnaireID:   qid,
		UAC:               uac,
		QuestionnaireType: int(questionnaireType),
	}, nil
}
