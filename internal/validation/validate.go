package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-validator/internal/types"
)

// Validate parses a raw resume document, runs the structural pass, and, when
// the document is structurally sound, normalizes it and runs the semantic
// pass. On success it returns the normalized Resume together with a report
// that holds at most warning-class violations; on failure the Resume is nil
// and the report lists every violation found. The call is pure and
// idempotent: the same input always produces the same report.
func Validate(data []byte) (*types.Resume, *types.Report) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformedReport(err)
	}

	violations := ValidateDocument(doc)
	if len(violations) > 0 {
		return nil, &types.Report{Violations: violations}
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, malformedReport(err)
	}

	violations = append(violations, typedModelViolations(&resume)...)
	violations = append(violations, ValidateSemantics(&resume)...)

	report := &types.Report{Violations: violations}
	if report.HasErrors() {
		return nil, report
	}
	return &resume, report
}

// malformedReport short-circuits with the single fatal violation: the input
// cannot be parsed as the base document shape, so no field-level checks run.
func malformedReport(err error) *types.Report {
	return &types.Report{Violations: []types.Violation{{
		Path:     "(root)",
		Kind:     types.KindMalformedInput,
		Severity: types.KindMalformedInput.Severity(),
		Details:  fmt.Sprintf("document is not a JSON object: %v", err),
	}}}
}

// typedModelViolations runs the struct-tag pass on the normalized resume.
// After a clean structural pass this mostly catches empty required strings,
// which the shape rules alone cannot see.
func typedModelViolations(resume *types.Resume) []types.Violation {
	err := resume.Validate()
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []types.Violation{{
			Path:     "(root)",
			Kind:     types.KindTypeMismatch,
			Severity: types.KindTypeMismatch.Severity(),
			Details:  err.Error(),
		}}
	}

	var out []types.Violation
	for _, fe := range verrs {
		path := strings.TrimPrefix(fe.Namespace(), "Resume.")
		switch fe.Tag() {
		case "email":
			value := fmt.Sprintf("%v", fe.Value())
			out = append(out, types.Violation{
				Path:     path,
				Kind:     types.KindPatternMismatch,
				Severity: types.KindPatternMismatch.Severity(),
				Details:  fmt.Sprintf("%q does not match the email pattern", value),
				Value:    &value,
			})
		default:
			out = append(out, types.Violation{
				Path:     path,
				Kind:     types.KindMissingRequiredField,
				Severity: types.KindMissingRequiredField.Severity(),
				Details:  fmt.Sprintf("required field %q is empty", fe.Field()),
			})
		}
	}
	return out
}
