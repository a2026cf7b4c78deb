package handler

import (
	appuacqid "github.com/census-rm/caseapi/internal/application/uacqid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UacQidHandler handles UAC/QID pair lookup, creation and linking requests
type UacQidHandler struct {
	BaseHandler
	service *appuacqid.UacQidService
}

// NewUacQidHandler creates a new UacQidHandler
func NewUacQidHandler(service *appuacqid.UacQidService) *UacQidHandler {
	return &UacQidHandler{service: service}
}

// GetByQID handles GET /qids/:qid
func (h *UacQidHandler) GetByQID(c *gin.Context) {
	resp, err := h.service.GetByQID(c.Request.Context(), c.Param("qid"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Link handles PUT /qids/link
func (h *UacQidHandler) Link(c *gin.Context) {
	var req appuacqid.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid link request body")
		return
	}

	caseID, err := uuid.Parse(req.QidLink.CaseID)
	if err != nil {
		h.BadRequest(c, "caseId must be a valid UUID")
		return
	}

	transactionID := uuid.New()
	if req.TransactionID != "" {
		transactionID, err = uuid.Parse(req.TransactionID)
		if err != nil {
			h.BadRequest(c, "transactionId must be a valid UUID")
			return
		}
	}

	if err := h.service.Link(c.Request.Context(), req.QidLink.QuestionnaireID, caseID, transactionID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, appuacqid.QidLink{
		QuestionnaireID: req.QidLink.QuestionnaireID,
		CaseID:          caseID.String(),
	})
}

// Create handles POST /uacqid/create
func (h *UacQidHandler) Create(c *gin.Context) {
	var req appuacqid.CreateUacQidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid create request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}
