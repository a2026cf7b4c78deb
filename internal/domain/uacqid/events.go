package uacqid

import (
	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeUacQidLink = "UacQidLink"

// Event type constants
const (
	DomainEventTypeQuestionnaireLinked = "QuestionnaireLinked"
)

// QuestionnaireLinkedEvent is raised when a UAC/QID pair is associated with a
// case. It carries everything the outgoing RM notification needs.
type QuestionnaireLinkedEvent struct {
	shared.BaseDomainEvent
	QuestionnaireID string    `json:"questionnaire_id"`
	CaseID          uuid.UUID `json:"case_id"`
	TransactionID   uuid.UUID `json:"transaction_id"`
}

// NewQuestionnaireLinkedEvent creates a new QuestionnaireLinkedEvent
func NewQuestionnaireLinkedEvent(link *UacQidLink, caseID uuid.UUID, transactionID uuid.UUID) *QuestionnaireLinkedEvent {
	return &QuestionnaireLinkedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(DomainEventTypeQuestionnaireLinked, AggregateTypeUacQidLink, link.ID),
		QuestionnaireID: link.QID,
		CaseID:          caseID,
		TransactionID:   transactionID,
	}
}
