package traceschema

import (
	"fmt"
	"strings"
)

// ElementEntry is one explicit element schema.
type ElementEntry struct {
	Index  string
	Schema SchemaName
}

// AttributeEntry is one attribute schema under its lookup key.
// For alias-derived entries Key differs from Schema.Name().
type AttributeEntry struct {
	Key    string
	Schema AttributeSchema
}

// IsAlias reports whether the entry was derived from an attribute alias.
func (e AttributeEntry) IsAlias() bool {
	return e.Key != e.Schema.Name()
}

// AliasEntry is one resolved attribute alias.
type AliasEntry struct {
	From string
	To   string
}

// TraceObjectSchema describes the shape of one kind of object tree node.
// It is produced by SchemaBuilder.BuildAndAdd and never modified afterwards;
// accessors return copies.
type TraceObjectSchema struct {
	name      SchemaName
	typ       Type
	primitive bool

	interfaces         []Interface
	canonicalContainer bool

	elements             *orderedMap[string, SchemaName]
	defaultElementSchema SchemaName

	attributes             *orderedMap[string, AttributeSchema]
	defaultAttributeSchema AttributeSchema

	aliases *orderedMap[string, string]
}

// Name returns the schema's name.
func (s *TraceObjectSchema) Name() SchemaName { return s.name }

// Type returns the value family the schema describes.
// Schemas produced by a builder are always TypeObject.
func (s *TraceObjectSchema) Type() Type { return s.typ }

// IsPrimitive reports whether this is one of the built-in primitive schemas.
func (s *TraceObjectSchema) IsPrimitive() bool { return s.primitive }

// IsPlaceholder reports whether this is the universal OBJECT schema.
func (s *TraceObjectSchema) IsPlaceholder() bool {
	return s.primitive && s.typ == TypeObject
}

// Interfaces returns the interfaces in the order they were added.
func (s *TraceObjectSchema) Interfaces() []Interface {
	return append([]Interface(nil), s.interfaces...)
}

// HasInterface reports whether the schema lists the named interface.
func (s *TraceObjectSchema) HasInterface(name string) bool {
	for _, iface := range s.interfaces {
		if iface.name == name {
			return true
		}
	}
	return false
}

// IsCanonicalContainer reports whether nodes of this schema are the canonical
// owners of their children.
func (s *TraceObjectSchema) IsCanonicalContainer() bool { return s.canonicalContainer }

// ElementSchemas returns the explicit element entries in insertion order.
func (s *TraceObjectSchema) ElementSchemas() []ElementEntry {
	result := make([]ElementEntry, 0, s.elements.len())
	s.elements.each(func(index string, schema SchemaName) {
		result = append(result, ElementEntry{Index: index, Schema: schema})
	})
	return result
}

// DefaultElementSchema returns the schema for indices with no explicit entry.
func (s *TraceObjectSchema) DefaultElementSchema() SchemaName { return s.defaultElementSchema }

// ElementSchema returns the schema for the element at index, falling back to
// the default element schema.
func (s *TraceObjectSchema) ElementSchema(index string) SchemaName {
	if schema, ok := s.elements.get(index); ok {
		return schema
	}
	return s.defaultElementSchema
}

// AttributeSchemas returns all attribute entries in insertion order,
// including entries derived from aliases.
func (s *TraceObjectSchema) AttributeSchemas() []AttributeEntry {
	result := make([]AttributeEntry, 0, s.attributes.len())
	s.attributes.each(func(key string, as AttributeSchema) {
		result = append(result, AttributeEntry{Key: key, Schema: as})
	})
	return result
}

// DefaultAttributeSchema returns the descriptor for attributes with no entry.
func (s *TraceObjectSchema) DefaultAttributeSchema() AttributeSchema {
	return s.defaultAttributeSchema
}

// AttributeSchema returns the descriptor for the named attribute.
// Aliases resolve to their target's descriptor; unknown names get the
// default attribute schema.
func (s *TraceObjectSchema) AttributeSchema(name string) AttributeSchema {
	if as, ok := s.attributes.get(name); ok {
		return as
	}
	return s.defaultAttributeSchema
}

// AttributeAliases returns the resolved aliases in insertion order.
func (s *TraceObjectSchema) AttributeAliases() []AliasEntry {
	result := make([]AliasEntry, 0, s.aliases.len())
	s.aliases.each(func(from, to string) {
		result = append(result, AliasEntry{From: from, To: to})
	})
	return result
}

// ResolveAlias returns the canonical attribute name for name.
// Names that are not aliases are returned unchanged.
func (s *TraceObjectSchema) ResolveAlias(name string) string {
	if to, ok := s.aliases.get(name); ok {
		return to
	}
	return name
}

func (s *TraceObjectSchema) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "schema %q", s.name)
	if len(s.interfaces) > 0 {
		names := make([]string, len(s.interfaces))
		for i, iface := range s.interfaces {
			names[i] = iface.name
		}
		fmt.Fprintf(&b, " implements %s", strings.Join(names, ","))
	}
	if s.canonicalContainer {
		b.WriteString(" canonical")
	}
	fmt.Fprintf(&b, " (%d elements, %d attributes, %d aliases)",
		s.elements.len(), s.attributes.len(), s.aliases.len())
	return b.String()
}
