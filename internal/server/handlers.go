package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-validator/internal/schema"
	"github.com/jonathan/resume-validator/internal/types"
	"github.com/jonathan/resume-validator/internal/validation"
)

// maxDocumentBytes caps the request body for /validate.
const maxDocumentBytes = 10 << 20

// ValidateResponse is the response body for a successful validation.
type ValidateResponse struct {
	Resume   *types.Resume     `json:"resume"`
	Warnings []types.Violation `json:"warnings,omitempty"`
}

// ErrorResponse is the response body when validation fails.
type ErrorResponse struct {
	Violations []types.Violation `json:"violations"`
}

// handleValidate validates the request body as a resume document.
// 200 with the normalized resume on success (warnings included), 400 when the
// body is not parseable JSON, 422 when the document has violations.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body: "+err.Error())
		return
	}

	resume, report := validation.Validate(body)
	if resume != nil {
		s.jsonResponse(w, http.StatusOK, ValidateResponse{
			Resume:   resume,
			Warnings: report.Warnings(),
		})
		return
	}

	status := http.StatusUnprocessableEntity
	if len(report.Violations) == 1 && report.Violations[0].Kind == types.KindMalformedInput {
		status = http.StatusBadRequest
	}
	s.jsonResponse(w, status, ErrorResponse{Violations: report.Violations})
}

// handleSchema serves the embedded JSON Schema document.
func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(schema.Document()))
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
