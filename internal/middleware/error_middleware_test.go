package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/meridian/campusops/internal/pkg/apperrors"
)

func handleErrorStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	HandleAPIError(c, err)
	return recorder.Code
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"student not found", apperrors.ErrStudentNotFound, 404},
		{"application not found", apperrors.ErrApplicationNotFound, 404},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401},
		{"permission denied", apperrors.ErrPermissionDenied, 403},
		{"session already open", apperrors.ErrSessionAlreadyOpen, 409},
		{"denial reason required", apperrors.ErrDenialReasonRequired, 400},
		{"infrastructure failure", errors.New("connection reset"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, handleErrorStatus(t, tt.err))
		})
	}
}
