package handler

import (
	"strconv"

	appcases "github.com/census-rm/caseapi/internal/application/cases"
	appuacqid "github.com/census-rm/caseapi/internal/application/uacqid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseHandler handles case lookup and telephone capture requests
type CaseHandler struct {
	BaseHandler
	caseService   *appcases.CaseService
	uacQidService *appuacqid.UacQidService
}

// NewCaseHandler creates a new CaseHandler
func NewCaseHandler(caseService *appcases.CaseService, uacQidService *appuacqid.UacQidService) *CaseHandler {
	return &CaseHandler{
		caseService:   caseService,
		uacQidService: uacQidService,
	}
}

// GetByID handles GET /cases/:caseId
func (h *CaseHandler) GetByID(c *gin.Context) {
	// A malformed id cannot address any case, so it reads as not found
	id, err := uuid.Parse(c.Param("caseId"))
	if err != nil {
		h.NotFound(c, "Case not found")
		return
	}

	resp, err := h.caseService.GetByID(c.Request.Context(), id, wantsCaseEvents(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByCaseRef handles GET /cases/ref/:caseRef
func (h *CaseHandler) GetByCaseRef(c *gin.Context) {
	caseRef, err := strconv.ParseInt(c.Param("caseRef"), 10, 64)
	if err != nil {
		h.NotFound(c, "Case not found")
		return
	}

	resp, err := h.caseService.GetByCaseRef(c.Request.Context(), caseRef, wantsCaseEvents(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByUPRN handles GET /cases/uprn/:uprn
func (h *CaseHandler) GetByUPRN(c *gin.Context) {
	resp, err := h.caseService.GetByUPRN(c.Request.Context(), c.Param("uprn"), wantsCaseEvents(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetQidForCase handles GET /cases/:caseId/qid, the telephone capture flow
func (h *CaseHandler) GetQidForCase(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("caseId"))
	if err != nil {
		h.NotFound(c, "Case not found")
		return
	}

	individual := false
	if raw := c.Query("individual"); raw != "" {
		individual, err = strconv.ParseBool(raw)
		if err != nil {
			h.BadRequest(c, "individual must be a boolean")
			return
		}
	}

	var individualCaseRef *uuid.UUID
	if raw := c.Query("individualCaseId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "individualCaseId must be a valid UUID")
			return
		}
		individualCaseRef = &parsed
	}

	resp, err := h.uacQidService.CreateForCase(c.Request.Context(), caseID, individual, individualCaseRef)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

func wantsCaseEvents(c *gin.Context) bool {
	include, err := strconv.ParseBool(c.DefaultQuery("caseEvents", "false"))
	return err == nil && include
}
