// Package schema holds the declarative description of the resume document
// shape. The descriptors here are the single source of truth the structural
// validator walks; they are never mutated after initialization, so they are
// safe to share across concurrent validations.
package schema

// Kind enumerates the primitive shapes a declared field can take.
type Kind int

// Field kinds.
const (
	String Kind = iota
	Object
	Array
)

// String returns the JSON-level name of the kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// Pattern couples a named string constraint with its matcher predicate.
type Pattern struct {
	Name  string
	Match func(string) bool
}

// Field describes one declared field of an entity.
//
// Exactly one of Entity or Elem is set for object and array kinds
// respectively; string fields may carry a Pattern.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Nullable bool
	Pattern  *Pattern
	Entity   *Entity
	Elem     *Field
}

// Entity describes a closed object: the declared field set, in order.
// Keys outside the declared set are rejected by the structural validator.
type Entity struct {
	Name   string
	Fields []Field
}

// Field returns the declared field with the given name, if any.
func (e *Entity) Field(name string) (*Field, bool) {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i], true
		}
	}
	return nil, false
}
