// Package traceschema models the schemas that describe a trace object tree.
//
// # Overview
//
// An object tree is a hierarchy of nodes. Each node exposes named attributes
// and indexed child elements. A TraceObjectSchema describes the shape of one
// kind of node:
//   - Interfaces the node's objects implement (Process, Thread, ...)
//   - Element schemas keyed by index, plus a default for unlisted indices
//   - Attribute schemas keyed by name, plus a default for unnamed attributes
//   - Attribute aliases (alternate names resolving to an existing attribute)
//   - Whether the node is the canonical container of its children
//
// # Names
//
// Schemas refer to each other by SchemaName. Names are interned by the
// NameRegistry owned by a SchemaContext, so two names with equal text from the
// same context compare equal with ==. References are not checked at build
// time; forward references are allowed and resolved lazily by consumers
// through SchemaContext.Lookup.
//
// # Building
//
// Schemas are assembled with a SchemaBuilder and frozen by BuildAndAdd:
//
//	ctx := traceschema.NewSchemaContext()
//	b := ctx.Builder(ctx.Name("Thread"))
//	b.AddInterface(iface).
//		AddAttributeSchema(traceschema.NewAttributeSchema("_state", ctx.Name("EXECUTION_STATE"), false, false, traceschema.HiddenDefault)).
//		AddAttributeAlias("State", "_state")
//	thread := b.BuildAndAdd()
//
// Once built, a schema is immutable and the builder must not be used again.
//
// Serialization lives in package schemaxml.
package traceschema
