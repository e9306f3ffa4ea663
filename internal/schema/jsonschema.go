package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resumeSchemaJSON is the draft-07 rendering of the declarative model above.
// It is shipped so callers can cross-check documents with a second, independent
// validator and so the schema can be handed to external consumers.
//
//go:embed resume.schema.json
var resumeSchemaJSON string

// Document returns the embedded JSON Schema document.
func Document() string {
	return resumeSchemaJSON
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema document itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load resume schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load resume schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// CheckSchemaDocument verifies that the embedded schema document is itself a
// valid JSON Schema. Run at startup by the schema CLI command.
func CheckSchemaDocument() error {
	loader := gojsonschema.NewStringLoader(resumeSchemaJSON)
	if _, err := gojsonschema.NewSchema(loader); err != nil {
		return &SchemaLoadError{
			Message: "embedded schema does not compile",
			Cause:   err,
		}
	}
	return nil
}

// CrossValidate validates a raw document against the embedded JSON Schema
// document. This is an independent second opinion next to the structural
// validator; the two must agree on any structurally valid document.
func CrossValidate(document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(resumeSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
