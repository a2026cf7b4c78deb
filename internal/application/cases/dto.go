package cases

import (
	"time"

	"github.com/census-rm/caseapi/internal/domain/cases"
	"github.com/census-rm/caseapi/internal/domain/uacqid"
	"github.com/google/uuid"
)

// CaseResponse represents a case in API responses
type CaseResponse struct {
	ID                   uuid.UUID           `json:"id"`
	CaseRef              int64               `json:"caseRef"`
	CaseType             string              `json:"caseType"`
	AddressLevel         string              `json:"addressLevel"`
	Region               string              `json:"region"`
	UPRN                 string              `json:"uprn,omitempty"`
	EstabType            string              `json:"estabType,omitempty"`
	OrganisationName     string              `json:"organisationName,omitempty"`
	AddressLine1         string              `json:"addressLine1,omitempty"`
	AddressLine2         string              `json:"addressLine2,omitempty"`
	AddressLine3         string              `json:"addressLine3,omitempty"`
	TownName             string              `json:"townName,omitempty"`
	Postcode             string              `json:"postcode,omitempty"`
	CollectionExerciseID uuid.UUID           `json:"collectionExerciseId"`
	CreatedAt            time.Time           `json:"createdAt"`
	CaseEvents           []CaseEventResponse `json:"caseEvents,omitempty"`
}

// CaseEventResponse represents a recorded event in API responses
type CaseEventResponse struct {
	ID          uuid.UUID `json:"id"`
	EventType   string    `json:"eventType"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCaseResponse builds the API representation of a case. The events slice is
// attached as-is; pass nil when the caller did not ask for events.
func ToCaseResponse(c *cases.Case, events []CaseEventResponse) *CaseResponse {
	return &CaseResponse{
		ID:                   c.ID,
		CaseRef:              c.CaseRef,
		CaseType:             string(c.CaseType),
		AddressLevel:         string(c.AddressLevel),
		Region:               c.Region,
		UPRN:                 c.UPRN,
		EstabType:            c.EstabType,
		OrganisationName:     c.OrganisationName,
		AddressLine1:         c.AddressLine1,
		AddressLine2:         c.AddressLine2,
		AddressLine3:         c.AddressLine3,
		TownName:             c.TownName,
		Postcode:             c.Postcode,
		CollectionExerciseID: c.CollectionExerciseID,
		CreatedAt:            c.CreatedAt,
		CaseEvents:           events,
	}
}

// ToCaseEventResponse builds the API representation of a case event
func ToCaseEventResponse(e *uacqid.CaseEvent) CaseEventResponse {
	return CaseEventResponse{
		ID:          e.ID,
		EventType:   string(e.EventType),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
