package traceschema

// IsDefaultElementSchema reports whether name is the builder's sentinel
// default element schema (OBJECT).
func IsDefaultElementSchema(name SchemaName) bool {
	return name.String() == ObjectSchemaName
}

// IsDefaultAttributeSchema reports whether as equals the builder's sentinel
// default attribute schema: unnamed, ANY, not required, not fixed, DEFAULT
// visibility.
func IsDefaultAttributeSchema(as AttributeSchema) bool {
	return as.name == "" &&
		as.schema.String() == AnySchemaName &&
		!as.required &&
		!as.fixed &&
		as.hidden == HiddenDefault
}

// SchemaBuilder assembles one schema. A builder has a single owner and is
// single use: BuildAndAdd hands the collected state over to the schema and
// any later call on the builder panics with ErrBuilderConsumed.
//
// The builder does not validate references. Names may refer to schemas that
// are built later, or never.
type SchemaBuilder struct {
	ctx   *SchemaContext
	draft *TraceObjectSchema
}

func newSchemaBuilder(ctx *SchemaContext, name SchemaName) *SchemaBuilder {
	return &SchemaBuilder{
		ctx: ctx,
		draft: &TraceObjectSchema{
			name:                   name,
			typ:                    TypeObject,
			elements:               newOrderedMap[string, SchemaName](),
			defaultElementSchema:   ctx.objectName,
			attributes:             newOrderedMap[string, AttributeSchema](),
			defaultAttributeSchema: NewAttributeSchema("", ctx.anyName, false, false, HiddenDefault),
			aliases:                newOrderedMap[string, string](),
		},
	}
}

func (b *SchemaBuilder) mustDraft() *TraceObjectSchema {
	if b.draft == nil {
		panic(ErrBuilderConsumed)
	}
	return b.draft
}

// Name returns the name of the schema being built.
func (b *SchemaBuilder) Name() SchemaName {
	return b.mustDraft().name
}

// AddInterface records an interface. Adding the same name twice has no effect.
func (b *SchemaBuilder) AddInterface(iface Interface) *SchemaBuilder {
	d := b.mustDraft()
	for _, existing := range d.interfaces {
		if existing.name == iface.name {
			return b
		}
	}
	d.interfaces = append(d.interfaces, iface)
	return b
}

// SetCanonicalContainer marks the schema as the canonical owner of its
// children.
func (b *SchemaBuilder) SetCanonicalContainer(canonical bool) *SchemaBuilder {
	b.mustDraft().canonicalContainer = canonical
	return b
}

// AddElementSchema sets the schema of the element at index.
// An empty index sets the default element schema. Re-adding an index
// replaces its schema and keeps its original position.
func (b *SchemaBuilder) AddElementSchema(index string, schema SchemaName) *SchemaBuilder {
	d := b.mustDraft()
	if index == "" {
		d.defaultElementSchema = schema
		return b
	}
	d.elements.set(index, schema)
	return b
}

// AddAttributeSchema records an attribute descriptor under its own name.
// An unnamed descriptor becomes the default attribute schema.
func (b *SchemaBuilder) AddAttributeSchema(as AttributeSchema) *SchemaBuilder {
	d := b.mustDraft()
	if as.name == "" {
		d.defaultAttributeSchema = as
		return b
	}
	d.attributes.set(as.name, as)
	return b
}

// AddAttributeAlias records that attribute from is another name for to.
// Aliases are resolved when the schema is built.
func (b *SchemaBuilder) AddAttributeAlias(from, to string) *SchemaBuilder {
	b.mustDraft().aliases.set(from, to)
	return b
}

// BuildAndAdd freezes the schema, resolves its aliases, and registers it in
// the builder's context, replacing any schema of the same name.
func (b *SchemaBuilder) BuildAndAdd() *TraceObjectSchema {
	schema := b.mustDraft()
	b.draft = nil

	resolveAliases(schema)
	b.ctx.register(schema)
	return schema
}

// resolveAliases flattens alias chains and adds an attribute entry for each
// alias whose final target has one. Direct entries are never replaced.
func resolveAliases(s *TraceObjectSchema) {
	resolved := newOrderedMap[string, string]()
	s.aliases.each(func(from, to string) {
		resolved.set(from, followAlias(s.aliases, from, to))
	})
	s.aliases = resolved

	resolved.each(func(from, to string) {
		if from == to {
			return
		}
		if _, exists := s.attributes.get(from); exists {
			return
		}
		if as, ok := s.attributes.get(to); ok {
			s.attributes.set(from, as)
		}
	})
}

// followAlias walks from -> to -> ... until the name is not itself an alias
// or the walk revisits a name.
func followAlias(aliases *orderedMap[string, string], from, to string) string {
	visited := map[string]bool{from: true}
	current := to
	for !visited[current] {
		next, ok := aliases.get(current)
		if !ok {
			return current
		}
		visited[current] = true
		current = next
	}
	return current
}
