package traceschema

import "fmt"

// AttributeSchema describes one named attribute slot, or the default slot
// applied to attributes with no explicit entry when the name is empty.
// AttributeSchema is an immutable value and is comparable with ==.
type AttributeSchema struct {
	name     string
	schema   SchemaName
	required bool
	fixed    bool
	hidden   Hidden
}

// NewAttributeSchema creates an attribute descriptor.
func NewAttributeSchema(name string, schema SchemaName, required, fixed bool, hidden Hidden) AttributeSchema {
	return AttributeSchema{
		name:     name,
		schema:   schema,
		required: required,
		fixed:    fixed,
		hidden:   hidden,
	}
}

// Name returns the attribute name, or "" for the default entry.
func (a AttributeSchema) Name() string { return a.name }

// Schema returns the schema of the attribute's value.
func (a AttributeSchema) Schema() SchemaName { return a.schema }

// IsRequired reports whether the attribute must be present.
func (a AttributeSchema) IsRequired() bool { return a.required }

// IsFixed reports whether the value may not change once set.
func (a AttributeSchema) IsFixed() bool { return a.fixed }

// Hidden returns the visibility flag.
func (a AttributeSchema) Hidden() Hidden { return a.hidden }

// IsHidden resolves visibility for an attribute looked up under name.
func (a AttributeSchema) IsHidden(name string) bool {
	return a.hidden.IsHidden(name)
}

func (a AttributeSchema) String() string {
	return fmt.Sprintf("<attr name=%s schema=%s required=%t fixed=%t hidden=%s>",
		a.name, a.schema, a.required, a.fixed, a.hidden)
}
