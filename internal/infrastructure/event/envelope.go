package event

import (
	"encoding/json"
	"time"

	"github.com/census-rm/caseapi/internal/domain/uacqid"
)

// Wire constants for the outgoing response-management feed
const (
	WireEventTypeQuestionnaireLinked = "QUESTIONNAIRE_LINKED"
	WireSource                       = "RESPONSE_MANAGEMENT"
	WireChannel                      = "RM"
)

// EnvelopeHeader carries the metadata block of an outgoing message
type EnvelopeHeader struct {
	Type          string    `json:"type"`
	Source        string    `json:"source"`
	Channel       string    `json:"channel"`
	DateTime      time.Time `json:"dateTime"`
	TransactionID string    `json:"transactionId"`
}

// UacPayload identifies the linked pair in an outgoing message
type UacPayload struct {
	CaseID          string `json:"caseId"`
	QuestionnaireID string `json:"questionnaireId"`
}

// EnvelopePayload wraps the uac block
type EnvelopePayload struct {
	UAC UacPayload `json:"uac"`
}

// Envelope is the wire format consumed by downstream response-management
// services. Header times are always UTC.
type Envelope struct {
	Event   EnvelopeHeader  `json:"event"`
	Payload EnvelopePayload `json:"payload"`
}

// NewQuestionnaireLinkedEnvelope builds the outgoing message for a linkage
// event. The event timestamp is normalized to UTC here, at the wire boundary.
func NewQuestionnaireLinkedEnvelope(e *uacqid.QuestionnaireLinkedEvent) *Envelope {
	return &Envelope{
		Event: EnvelopeHeader{
			Type:          WireEventTypeQuestionnaireLinked,
			Source:        WireSource,
			Channel:       WireChannel,
			DateTime:      e.OccurredAt().UTC(),
			TransactionID: e.TransactionID.String(),
		},
		Payload: EnvelopePayload{
			UAC: UacPayload{
				CaseID:          e.CaseID.String(),
				QuestionnaireID: e.QuestionnaireID,
			},
		},
	}
}

// Marshal serializes the envelope for publication
func (e *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
