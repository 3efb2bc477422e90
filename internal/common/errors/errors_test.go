package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warns  []string
	errors []string
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.errors = append(l.errors, msg)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrCodeInvalidArgument))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrCodeUpstream))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrCodeInternal))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus("SOMETHING_ELSE"))
}

func TestStandardError_IsAndUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := fmt.Errorf("geocode: %w", NewUpstreamError("geocode", cause))

	assert.True(t, stderrors.Is(err, ErrUpstream))
	assert.False(t, stderrors.Is(err, ErrNotFound))
	assert.True(t, stderrors.Is(err, cause))

	stdErr := AsStandardError(err)
	assert.Equal(t, ErrCodeUpstream, stdErr.Code)
	assert.Equal(t, "connection refused", stdErr.Message)
	assert.Equal(t, "geocode", stdErr.Metadata["operation"])
}

func TestAsStandardError_WrapsUnknown(t *testing.T) {
	stdErr := AsStandardError(stderrors.New("kaboom"))
	assert.Equal(t, ErrCodeInternal, stdErr.Code)
	assert.Equal(t, "Internal server error", stdErr.Message)
	assert.Equal(t, "kaboom", stdErr.Details)
}

func TestErrorHandler_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantWarn   bool
	}{
		{
			name:       "invalid argument",
			err:        NewInvalidArgumentError("Query parameter is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Query parameter is required",
			wantWarn:   true,
		},
		{
			name:       "not found",
			err:        NewNotFoundError("Location not found", "status: ZERO_RESULTS"),
			wantStatus: http.StatusNotFound,
			wantBody:   "Location not found",
			wantWarn:   true,
		},
		{
			name:       "upstream",
			err:        NewUpstreamError("searchNearby", stderrors.New("API key not valid")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "API key not valid",
		},
		{
			name:       "unclassified",
			err:        stderrors.New("nil map"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			h := NewErrorHandler(log)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/test", nil)

			h.Respond(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body["error"])
			assert.Len(t, body, 1)

			if tt.wantWarn {
				assert.Len(t, log.warns, 1)
				assert.Empty(t, log.errors)
			} else {
				assert.Len(t, log.errors, 1)
				assert.Empty(t, log.warns)
			}
		})
	}
}
