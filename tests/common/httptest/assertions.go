//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorBody mirrors the error envelope written by the handlers.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	} `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target != nil && expectedStatus >= 200 && expectedStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and, when expectedMsg is set,
// that the error message contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())
	body := decodeError(t, w)
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
}

// AssertFieldDetail checks that a validation error names field.
func AssertFieldDetail(t *testing.T, w *httptest.ResponseRecorder, field string) {
	t.Helper()

	body := decodeError(t, w)
	require.NotNil(t, body.Detail, "no detail in %s", w.Body.String())
	assert.Equal(t, field, body.Detail.Field)
	assert.NotEmpty(t, body.Detail.Reason)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error response: %s", w.Body.String())
	return body
}
