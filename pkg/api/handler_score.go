package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// scoreHistoryHandler handles GET /scores/. The service caps the limit
// at 100.
func (s *Server) scoreHistoryHandler(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	history, err := s.scores.GetScoreHistory(c.Request.Context(), c.Query("organization"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scores": history, "count": len(history)})
}
