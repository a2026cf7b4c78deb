package uacqid

import (
	"github.com/census-rm/caseapi/internal/domain/uacqid"
	"github.com/google/uuid"
)

// QidLink is the questionnaire/case pairing inside a link request
type QidLink struct {
	QuestionnaireID string `json:"questionnaireId" binding:"required"`
	CaseID          string `json:"caseId" binding:"required,uuid"`
}

// LinkRequest represents a request to link a questionnaire to a case.
// The transaction id is optional; one is generated when absent.
type LinkRequest struct {
	QidLink       QidLink `json:"qidLink" binding:"required"`
	TransactionID string  `json:"transactionId" binding:"omitempty,uuid"`
}

// QidResponse represents a UAC/QID pair lookup result. The UAC itself is a
// secret and never leaves the service through this representation.
type QidResponse struct {
	QuestionnaireID string     `json:"questionnaireId"`
	Active          bool       `json:"active"`
	CaseID          *uuid.UUID `json:"caseId,omitempty"`
}

// CreateUacQidRequest represents a request to mint a new UAC/QID pair
type CreateUacQidRequest struct {
	QuestionnaireType int    `json:"questionnaireType" binding:"required"`
	CaseID            string `json:"caseId" binding:"omitempty,uuid"`
}

// CreateUacQidResponse carries a freshly minted pair
type CreateUacQidResponse struct {
	UAC    string     `json:"uac"`
	QID    string     `json:"qid"`
	CaseID *uuid.UUID `json:"caseId,omitempty"`
}

// TelephoneCaptureResponse carries the pair minted for a telephone capture
// request against an existing case
type TelephoneCaptureResponse struct {
	QuestionnaireID   string `json:"questionnaireId"`
	UAC               string `json:"uac"`
	QuestionnaireType int    `json:"questionnaireType"`
}

// ToQidResponse builds the API representation of a UAC/QID pair
func ToQidResponse(link *uacqid.UacQidLink) *QidResponse {
	return &QidResponse{
		QuestionnaireID: link.QID,
		Active:          link.Active,
		CaseID:          link.CaseID,
	}
}
