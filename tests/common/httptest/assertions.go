//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AssertSuccessResponse checks the status code and the {success,message,data}
// wrapper, then decodes data into targetStruct when given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env),
		fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	assert.True(t, env.Success, "expected success=true, got: %s", w.Body.String())

	if targetStruct != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		err := json.Unmarshal(env.Data, targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode data field: %s", string(env.Data)))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env),
		fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	assert.False(t, env.Success, "expected success=false, got: %s", w.Body.String())

	if expectedMsg != "" {
		assert.Contains(t, env.Message, expectedMsg,
			"Response message doesn't contain expected text")
	}
}
