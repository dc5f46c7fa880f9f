package schemaxml

import (
	"github.com/beevik/etree"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

// EncodeContext converts every serializable schema in ctx to a <schema>
// child of a new <context> element, in registration order.
func EncodeContext(ctx *traceschema.SchemaContext) *etree.Element {
	result := etree.NewElement(ElemContext)
	for _, schema := range ctx.Declared() {
		result.AddChild(EncodeSchema(schema))
	}
	return result
}

// EncodeSchema converts one schema to a <schema> element.
// Returns nil for schemas outside the object family and for the OBJECT
// placeholder; those are never serialized.
func EncodeSchema(schema *traceschema.TraceObjectSchema) *etree.Element {
	if !schema.Type().IsObject() || schema.IsPlaceholder() {
		return nil
	}

	result := etree.NewElement(ElemSchema)
	result.CreateAttr(AttrName, schema.Name().String())
	for _, iface := range schema.Interfaces() {
		ifElem := result.CreateElement(ElemInterface)
		ifElem.CreateAttr(AttrName, iface.Name())
	}

	if schema.IsCanonicalContainer() {
		result.CreateAttr(AttrCanonical, yes)
	}

	for _, ent := range schema.ElementSchemas() {
		elemElem := result.CreateElement(ElemElement)
		elemElem.CreateAttr(AttrIndex, ent.Index)
		elemElem.CreateAttr(AttrSchema, ent.Schema.String())
	}
	if des := schema.DefaultElementSchema(); !traceschema.IsDefaultElementSchema(des) {
		deElem := result.CreateElement(ElemElement)
		deElem.CreateAttr(AttrSchema, des.String())
	}

	for _, ent := range schema.AttributeSchemas() {
		if ent.IsAlias() {
			continue
		}
		result.AddChild(EncodeAttribute(ent.Schema))
	}
	if das := schema.DefaultAttributeSchema(); !traceschema.IsDefaultAttributeSchema(das) {
		result.AddChild(EncodeAttribute(das))
	}

	for _, alias := range schema.AttributeAliases() {
		result.AddChild(encodeAlias(alias))
	}

	return result
}

// EncodeAttribute converts an attribute descriptor to an <attribute> element.
// hidden="no" is written only for the default entry, where it differs from
// having no opinion.
func EncodeAttribute(as traceschema.AttributeSchema) *etree.Element {
	attrElem := etree.NewElement(ElemAttribute)
	if as.Name() != "" {
		attrElem.CreateAttr(AttrName, as.Name())
	}
	attrElem.CreateAttr(AttrSchema, as.Schema().String())
	if as.IsRequired() {
		attrElem.CreateAttr(AttrRequired, yes)
	}
	if as.IsFixed() {
		attrElem.CreateAttr(AttrFixed, yes)
	}
	switch as.Hidden() {
	case traceschema.HiddenTrue:
		attrElem.CreateAttr(AttrHidden, yes)
	case traceschema.HiddenFalse:
		if as.Name() == "" {
			attrElem.CreateAttr(AttrHidden, no)
		}
	}
	return attrElem
}

func encodeAlias(alias traceschema.AliasEntry) *etree.Element {
	aliasElem := etree.NewElement(ElemAttributeAlias)
	aliasElem.CreateAttr(AttrFrom, alias.From)
	aliasElem.CreateAttr(AttrTo, alias.To)
	return aliasElem
}
