package uacqid

import (
	"strings"
	"time"

	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/google/uuid"
)

// EventType enumerates the kinds of events recorded against a UAC/QID pair.
// Only QUESTIONNAIRE_LINKED is produced by this service; the rest arrive from
// upstream producers and are stored append-only.
type EventType string

const (
	EventTypeCaseCreated         EventType = "CASE_CREATED"
	EventTypeUACUpdated          EventType = "UAC_UPDATED"
	EventTypeQuestionnaireLinked EventType = "QUESTIONNAIRE_LINKED"
	EventTypeResponseReceived    EventType = "RESPONSE_RECEIVED"
	EventTypeRefusalReceived     EventType = "REFUSAL_RECEIVED"
	EventTypeFulfilmentRequested EventType = "FULFILMENT_REQUESTED"
)

// CaseEvent is an append-only record attached to a UAC/QID pair. Events are
// never mutated or deleted by this service.
type CaseEvent struct {
	shared.BaseEntity
	LinkID      uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType   EventType `gorm:"type:varchar(40);not null"`
	Description string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CaseEvent) TableName() string {
	return "case_events"
}

// NewCaseEvent creates an event record for a link
func NewCaseEvent(linkID uuid.UUID, eventType EventType, description string) *CaseEvent {
	return &CaseEvent{
		BaseEntity:  shared.NewBaseEntity(),
		LinkID:      linkID,
		EventType:   eventType,
		Description: description,
	}
}

// UacQidLink pairs a secret unique access code with a public questionnaire
// identifier. A pair may exist unlinked; once linked to a case the
// association is write-once for the life of this workflow.
type UacQidLink struct {
	shared.BaseAggregateRoot
	QID    string      `gorm:"column:qid;type:varchar(20);not null;uniqueIndex"`
	UAC    string      `gorm:"type:varchar(20);not null"`
	Active bool        `gorm:"not null;default:true"`
	CaseID *uuid.UUID  `gorm:"type:uuid;index"`
	Events []CaseEvent `gorm:"foreignKey:LinkID"`
}

// TableName returns the table name for GORM
func (UacQidLink) TableName() string {
	return "uac_qid_links"
}

// NewUacQidLink creates an unlinked UAC/QID pair as returned by the external
// pair generator.
func NewUacQidLink(qid, uac string) (*UacQidLink, error) {
	if strings.TrimSpace(qid) == "" {
		return nil, shared.NewDomainError("INVALID_QID", "Questionnaire ID cannot be empty")
	}
	if strings.TrimSpace(uac) == "" {
		return nil, shared.NewDomainError("INVALID_UAC", "UAC cannot be empty")
	}
	return &UacQidLink{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		QID:               qid,
		UAC:               uac,
		Active:            true,
	}, nil
}

// IsLinked reports whether the pair is associated with a case
func (l *UacQidLink) IsLinked() bool {
	return l.CaseID != nil
}

// LinkToCase associates the pair with a case. The association is write-once:
// relinking to the same case is an idempotent no-op and raises no event;
// relinking to a different case is rejected. Exactly one linkage event is
// raised per state-changing link.
func (l *UacQidLink) LinkToCase(caseID uuid.UUID, transactionID uuid.UUID) error {
	if l.CaseID != nil {
		if *l.CaseID == caseID {
			return nil
		}
		return shared.NewDomainError("CONFLICT", "Questionnaire ID is already linked to a different case")
	}

	l.CaseID = &caseID
	l.UpdatedAt = time.Now().UTC()
	l.Events = append(l.Events, *NewCaseEvent(l.ID, EventTypeQuestionnaireLinked, "Questionnaire linked to case"))
	l.AddDomainEvent(NewQuestionnaireLinkedEvent(l, caseID, transactionID))

	return nil
}
