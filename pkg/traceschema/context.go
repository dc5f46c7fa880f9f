package traceschema

// SchemaContext owns a name registry and the schemas built against it.
// It is the unit of exchange for serialization.
//
// A context is written to by builders during one construction pass and read
// afterwards; only its name registry is safe for concurrent use.
type SchemaContext struct {
	names *NameRegistry

	order   []SchemaName
	schemas map[SchemaName]*TraceObjectSchema

	primitives map[SchemaName]*TraceObjectSchema
	objectName SchemaName
	anyName    SchemaName
}

// NewSchemaContext creates an empty context with its own registry.
// The primitive schema names are interned up front.
func NewSchemaContext() *SchemaContext {
	ctx := &SchemaContext{
		names:      NewNameRegistry(),
		schemas:    make(map[SchemaName]*TraceObjectSchema),
		primitives: make(map[SchemaName]*TraceObjectSchema, len(primitiveTypes)),
	}
	ctx.objectName = ctx.names.Intern(ObjectSchemaName)
	ctx.anyName = ctx.names.Intern(AnySchemaName)
	for _, p := range primitiveTypes {
		name := ctx.names.Intern(p.name)
		ctx.primitives[name] = newPrimitive(name, p.typ, ctx.objectName, ctx.anyName)
	}
	return ctx
}

// Registry returns the context's name registry.
func (c *SchemaContext) Registry() *NameRegistry {
	return c.names
}

// Name interns text in the context's registry.
func (c *SchemaContext) Name(text string) SchemaName {
	return c.names.Intern(text)
}

// Builder starts a new schema named name, bound to this context.
func (c *SchemaContext) Builder(name SchemaName) *SchemaBuilder {
	return newSchemaBuilder(c, name)
}

// AllSchemas returns the built schemas in registration order.
// A schema rebuilt under an existing name keeps the original position.
func (c *SchemaContext) AllSchemas() []*TraceObjectSchema {
	result := make([]*TraceObjectSchema, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, c.schemas[name])
	}
	return result
}

// Declared returns the built schemas a document can carry: those of the
// object family other than the OBJECT placeholder, in registration order.
func (c *SchemaContext) Declared() []*TraceObjectSchema {
	result := make([]*TraceObjectSchema, 0, len(c.order))
	for _, name := range c.order {
		s := c.schemas[name]
		if s.typ.IsObject() && !s.IsPlaceholder() {
			result = append(result, s)
		}
	}
	return result
}

// Len returns the number of built schemas.
func (c *SchemaContext) Len() int {
	return len(c.order)
}

// Schema returns the built schema with the given name.
func (c *SchemaContext) Schema(name SchemaName) (*TraceObjectSchema, bool) {
	s, ok := c.schemas[name]
	return s, ok
}

// Lookup resolves name against the built schemas, then the primitive
// schemas.
func (c *SchemaContext) Lookup(name SchemaName) (*TraceObjectSchema, bool) {
	if s, ok := c.schemas[name]; ok {
		return s, true
	}
	s, ok := c.primitives[name]
	return s, ok
}

// Primitive returns the named primitive schema, e.g. ObjectSchemaName.
func (c *SchemaContext) Primitive(text string) (*TraceObjectSchema, bool) {
	name, ok := c.names.Get(text)
	if !ok {
		return nil, false
	}
	s, ok := c.primitives[name]
	return s, ok
}

func (c *SchemaContext) register(schema *TraceObjectSchema) {
	if _, exists := c.schemas[schema.name]; !exists {
		c.order = append(c.order, schema.name)
	}
	c.schemas[schema.name] = schema
}
