package event

import (
	"github.com/census-rm/caseapi/internal/domain/uacqid"
)

// RegisterAllEvents registers every domain event this service produces with
// the serializer. Unregistered event types cannot be replayed from the outbox.
func RegisterAllEvents(s *EventSerializer) {
	s.Register(uacqid.DomainEventTypeQuestionnaireLinked, &uacqid.QuestionnaireLinkedEvent{})
}
