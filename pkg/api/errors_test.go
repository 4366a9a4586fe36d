package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/regsentry/regsentry/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", services.NewValidationError("document_id", "required"), http.StatusBadRequest},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading audit: %w", services.ErrNotFound), http.StatusNotFound},
		{"audit completed", services.ErrAuditCompleted, http.StatusBadRequest},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			mapServiceError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
