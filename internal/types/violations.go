// Package types provides type definitions for structured data used throughout the resume-validator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Kind identifies the category of a validation failure.
type Kind string

// Violation kinds, in rough order of severity.
const (
	KindMalformedInput       Kind = "malformed_input"
	KindMissingRequiredField Kind = "missing_required_field"
	KindTypeMismatch         Kind = "type_mismatch"
	KindPatternMismatch      Kind = "pattern_mismatch"
	KindAdditionalProperty   Kind = "additional_property_not_allowed"
	KindInvalidDateRange     Kind = "invalid_date_range"
	KindOrderingViolation    Kind = "ordering_violation"
)

// Violation severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Severity returns the severity class for the kind. Ordering violations are
// informational; everything else blocks normalization.
func (k Kind) Severity() string {
	if k == KindOrderingViolation {
		return SeverityWarning
	}
	return SeverityError
}

// Violation represents a single validation failure at a specific field path.
type Violation struct {
	Path     string `json:"path"`
	Kind     Kind   `json:"kind"`
	Severity string `json:"severity"`
	Details  string `json:"details"`

	// Value holds the offending raw value when it is a primitive (for context)
	Value *string `json:"value,omitempty"`
}

// Report represents the ordered collection of validation failures for one document.
type Report struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation is error-class.
func (r *Report) HasErrors() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns the error-class violations in report order.
func (r *Report) Errors() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			out = append(out, v)
		}
	}
	return out
}

// Warnings returns the warning-class violations in report order.
func (r *Report) Warnings() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityWarning {
			out = append(out, v)
		}
	}
	return out
}
