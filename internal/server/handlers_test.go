package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-validator/internal/config"
)

const validDoc = `{
	"contactInformation": {
		"firstName": "John",
		"lastName": "Doe",
		"email": "john.doe@example.com",
		"country": "USA"
	},
	"workHistory": [],
	"educationHistory": []
}`

func newTestServer(t *testing.T, jwtCfg *config.JWTConfig) *Server {
	t.Helper()
	return New(&config.ServerConfig{Port: 8080, JWT: jwtCfg})
}

func doRequest(t *testing.T, s *Server, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleValidate_Success(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodPost, "/validate", validDoc, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Resume)
	assert.Equal(t, "John", resp.Resume.ContactInformation.FirstName)
	assert.Empty(t, resp.Warnings)
}

func TestHandleValidate_Violations(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodPost, "/validate", `{"workHistory": []}`, nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Violations)
}

func TestHandleValidate_MalformedJSON(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodPost, "/validate", "{not json", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleValidate_CorrelationIDEchoed(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodPost, "/validate", validDoc, nil)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	header := http.Header{}
	header.Set("X-Correlation-ID", "req-42")
	rec = doRequest(t, s, http.MethodPost, "/validate", validDoc, header)
	assert.Equal(t, "req-42", rec.Header().Get("X-Correlation-ID"))
}

func TestHandleSchema(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodGet, "/schema", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "object", doc["type"])
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestHandleValidate_AuthRequired(t *testing.T) {
	jwtCfg := &config.JWTConfig{Secret: "test-secret", ExpirationHours: 1}
	s := newTestServer(t, jwtCfg)

	// No token: rejected.
	rec := doRequest(t, s, http.MethodPost, "/validate", validDoc, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token: rejected.
	header := http.Header{}
	header.Set("Authorization", "Bearer garbage")
	rec = doRequest(t, s, http.MethodPost, "/validate", validDoc, header)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token: accepted.
	token, err := NewJWTService(jwtCfg).GenerateToken(uuid.New())
	require.NoError(t, err)
	header.Set("Authorization", "Bearer "+token)
	rec = doRequest(t, s, http.MethodPost, "/validate", validDoc, header)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleValidate_AuthDoesNotGateHealth(t *testing.T) {
	jwtCfg := &config.JWTConfig{Secret: "test-secret", ExpirationHours: 1}
	s := newTestServer(t, jwtCfg)

	rec := doRequest(t, s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
