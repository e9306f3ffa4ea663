// Package validation implements the resume validation engine: a data-driven
// structural pass over the raw document followed by semantic cross-field
// checks on the normalized result.
package validation

import (
	"encoding/json"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-validator/internal/schema"
	"github.com/jonathan/resume-validator/internal/types"
)

// parallelThreshold is the array length above which elements are validated by
// parallel workers. Sibling elements are independent, so only the assembly
// order matters; results are stitched back by index.
const parallelThreshold = 256

// ValidateDocument checks a decoded document against the root resume entity.
// It accumulates every violation rather than stopping at the first.
func ValidateDocument(doc map[string]any) []types.Violation {
	return ValidateEntity("", doc, schema.Resume)
}

// ValidateEntity applies the structural rules to one raw object: presence of
// required fields, type, nullability, pattern, recursion into nested entities,
// and rejection of undeclared keys. Violations appear depth-first in field
// declaration order; undeclared keys are reported last, in lexical order.
func ValidateEntity(path string, raw map[string]any, ent *schema.Entity) []types.Violation {
	var violations []types.Violation

	for i := range ent.Fields {
		field := &ent.Fields[i]
		fieldPath := joinPath(path, field.Name)
		value, present := raw[field.Name]
		if !present {
			if field.Required {
				violations = append(violations, types.Violation{
					Path:     fieldPath,
					Kind:     types.KindMissingRequiredField,
					Severity: types.KindMissingRequiredField.Severity(),
					Details:  fmt.Sprintf("required field %q is missing", field.Name),
				})
			}
			continue
		}
		violations = append(violations, validateValue(fieldPath, value, field)...)
	}

	var extras []string
	for key := range raw {
		if _, ok := ent.Field(key); !ok {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		violations = append(violations, types.Violation{
			Path:     joinPath(path, key),
			Kind:     types.KindAdditionalProperty,
			Severity: types.KindAdditionalProperty.Severity(),
			Details:  fmt.Sprintf("key %q is not declared for %s objects", key, ent.Name),
		})
	}

	return violations
}

// validateValue checks a present value against its field descriptor.
func validateValue(path string, value any, field *schema.Field) []types.Violation {
	if value == nil {
		if field.Nullable {
			return nil
		}
		return []types.Violation{typeMismatch(path, field, value)}
	}

	switch field.Kind {
	case schema.String:
		s, ok := value.(string)
		if !ok {
			return []types.Violation{typeMismatch(path, field, value)}
		}
		if field.Pattern != nil && !field.Pattern.Match(s) {
			return []types.Violation{{
				Path:     path,
				Kind:     types.KindPatternMismatch,
				Severity: types.KindPatternMismatch.Severity(),
				Details:  fmt.Sprintf("%q does not match the %s pattern", s, field.Pattern.Name),
				Value:    &s,
			}}
		}
		return nil

	case schema.Object:
		obj, ok := value.(map[string]any)
		if !ok {
			return []types.Violation{typeMismatch(path, field, value)}
		}
		return ValidateEntity(path, obj, field.Entity)

	case schema.Array:
		items, ok := value.([]any)
		if !ok {
			return []types.Violation{typeMismatch(path, field, value)}
		}
		return validateArray(path, items, field.Elem)

	default:
		return []types.Violation{typeMismatch(path, field, value)}
	}
}

// validateArray checks every element against the element descriptor. Large
// arrays fan out to a bounded worker pool; the violation list is assembled in
// index order either way, so output is deterministic.
func validateArray(path string, items []any, elem *schema.Field) []types.Violation {
	if len(items) < parallelThreshold {
		var violations []types.Violation
		for i, item := range items {
			violations = append(violations, validateValue(fmt.Sprintf("%s[%d]", path, i), item, elem)...)
		}
		return violations
	}

	results := make([][]types.Violation, len(items))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, item := range items {
		g.Go(func() error {
			results[i] = validateValue(fmt.Sprintf("%s[%d]", path, i), item, elem)
			return nil
		})
	}
	// Workers never return errors; Wait only serves as the barrier.
	_ = g.Wait()

	var violations []types.Violation
	for _, r := range results {
		violations = append(violations, r...)
	}
	return violations
}

func typeMismatch(path string, field *schema.Field, value any) types.Violation {
	v := types.Violation{
		Path:     path,
		Kind:     types.KindTypeMismatch,
		Severity: types.KindTypeMismatch.Severity(),
		Details:  fmt.Sprintf("expected %s, got %s", expectedType(field), describeType(value)),
	}
	switch value.(type) {
	case string, float64, bool:
		raw, err := json.Marshal(value)
		if err == nil {
			s := string(raw)
			v.Value = &s
		}
	}
	return v
}

func expectedType(field *schema.Field) string {
	if field.Nullable {
		return field.Kind.String() + " or null"
	}
	return field.Kind.String()
}

// describeType names a decoded JSON value's type for error messages.
func describeType(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
