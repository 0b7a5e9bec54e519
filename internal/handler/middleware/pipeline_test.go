//go:build unit

package middleware_test

import (
	"bytes"
	"net/http"
	stdhttptest "net/http/httptest"
	"strings"
	"testing"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/handler/middleware"
	"clinic-scheduler/internal/pkg/config"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"
	"clinic-scheduler/tests/common/httptest"
	usecasemock "clinic-scheduler/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPipeline(t *testing.T, logs *bytes.Buffer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logCfg := config.LogConfig{Level: "debug", TimeZone: "UTC", TimeFormat: "15:04:05"}
	logger := middleware.NewSlogLogger(logCfg, logs)

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.LoggingMiddleware(logger, logCfg))
	r.Use(middleware.ErrorHandler())

	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/panic", func(*gin.Context) {
		panic("boom")
	})
	r.GET("/recorded/:kind", func(c *gin.Context) {
		switch c.Param("kind") {
		case "notfound":
			_ = c.Error(availability.ErrSlotNotFound)
		case "conflict":
			_ = c.Error(errs.Wrap(availability.ErrSlotAlreadyBooked, "slot 7"))
		default:
			_ = c.Error(errs.New("database exploded"))
		}
	})
	return r
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "generated when absent"},
		{name: "caller id is kept", incoming: "trace-abc-123", wantSame: true},
		{name: "id with spaces is replaced", incoming: "not a valid id"},
		{name: "oversized id is replaced", incoming: strings.Repeat("x", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPipeline(t, &bytes.Buffer{})
			req := stdhttptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.incoming)
			}
			w := stdhttptest.NewRecorder()

			r.ServeHTTP(w, req)

			var body map[string]string
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
			got := w.Header().Get(middleware.RequestIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, body["request_id"])
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestCustomRecovery(t *testing.T) {
	r := newPipeline(t, &bytes.Buffer{})

	w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")

	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler_ClassifiesRecordedErrors(t *testing.T) {
	tests := []struct {
		kind    string
		status  int
		message string
	}{
		{kind: "notfound", status: http.StatusNotFound, message: "slot not found"},
		{kind: "conflict", status: http.StatusConflict, message: "slot 7"},
		{kind: "other", status: http.StatusInternalServerError, message: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			r := newPipeline(t, &bytes.Buffer{})

			w := httptest.PerformRequest(t, r, http.MethodGet, "/recorded/"+tt.kind, nil, "")

			httptest.AssertErrorResponse(t, w, tt.status, tt.message)
			assert.NotContains(t, w.Body.String(), "database exploded")
		})
	}
}

func TestLoggingMiddleware_WritesCompletionLine(t *testing.T) {
	var logs bytes.Buffer
	r := newPipeline(t, &logs)

	httptest.PerformRequest(t, r, http.MethodGet, "/recorded/notfound", nil, "")

	out := logs.String()
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, "status_code=404")
	assert.Contains(t, out, "route=/recorded/:kind")
	assert.Contains(t, out, "level=WARN")
	assert.NotContains(t, out, "user_id=", "anonymous requests carry no principal")
}

func TestLoggingMiddleware_IncludesPrincipal(t *testing.T) {
	var logs bytes.Buffer
	r := newPipeline(t, &logs)

	validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
	principal := shared.Principal{UserID: uuid.New(), Role: user.RoleAdmin}
	validator.EXPECT().ValidateToken("good").Return(principal, nil)

	auth := middleware.NewAuthMiddleware(validator)
	r.GET("/as-admin", auth.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.PerformRequest(t, r, http.MethodGet, "/as-admin", nil, "good")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, logs.String(), "user_id="+principal.UserID.String())
	assert.Contains(t, logs.String(), "role=ADMIN")
}
