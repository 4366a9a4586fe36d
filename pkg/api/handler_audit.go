package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/pkg/models"
)

// createAuditHandler handles POST /api/audits.
func (s *Server) createAuditHandler(c *gin.Context) {
	var req models.CreateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.DocumentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document_id is required"})
		return
	}

	a, err := s.audits.CreateAudit(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, auditResponse(a))
}

// listAuditsHandler handles GET /api/audits.
func (s *Server) listAuditsHandler(c *gin.Context) {
	filters := models.AuditFilters{Limit: 50}

	if v := c.Query("status"); v != "" {
		if err := audit.StatusValidator(audit.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	if v := c.Query("is_draft"); v != "" {
		isDraft, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_draft: must be a boolean"})
			return
		}
		filters.IsDraft = &isDraft
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filters.Limit = n
		}
	}

	audits, err := s.audits.ListAudits(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]AuditResponse, len(audits))
	for i, a := range audits {
		out[i] = auditResponse(a)
	}
	c.JSON(http.StatusOK, gin.H{"audits": out, "count": len(out)})
}

// getAuditHandler handles GET /api/audits/:id. The id may be the numeric
// primary key or the external UUID.
func (s *Server) getAuditHandler(c *gin.Context) {
	a, err := s.audits.GetAudit(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, auditResponse(a))
}

// auditStatusHandler handles GET /api/audits/:id/status, the lightweight
// progress poll.
func (s *Server) auditStatusHandler(c *gin.Context) {
	status, err := s.audits.StatusResponse(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// resumeAuditHandler handles POST /api/audits/:id/resume. A failed audit
// goes back to queued; a worker picks it up and continues from the first
// unprocessed chunk.
func (s *Server) resumeAuditHandler(c *gin.Context) {
	a, err := s.audits.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"audit":   auditResponse(a),
		"message": "resume scheduled",
	})
}

// listFlagsHandler handles GET /api/audits/:id/flags with pagination,
// severity/regulation filters, and optional auditor questions.
func (s *Server) listFlagsHandler(c *gin.Context) {
	a, err := s.audits.GetAudit(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	filters := models.FlagFilters{
		Severity:   c.Query("severity"),
		Regulation: c.Query("regulation"),
		Limit:      50,
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	flags, err := s.flags.ListFlags(c.Request.Context(), a.ID, filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]FlagResponse, len(flags))
	for i, f := range flags {
		out[i] = flagResponse(f)
	}
	resp := gin.H{"flags": out, "count": len(out)}

	if v, _ := strconv.ParseBool(c.Query("include_questions")); v {
		questions, err := s.questions.ListQuestions(c.Request.Context(), a.ID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		qs := make([]QuestionResponse, len(questions))
		for i, q := range questions {
			qs[i] = questionResponse(q)
		}
		resp["questions"] = qs
	}

	c.JSON(http.StatusOK, resp)
}
