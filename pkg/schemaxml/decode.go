package schemaxml

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/vvka-141/traceschema/internal/logging"
	"github.com/vvka-141/traceschema/pkg/traceschema"
)

// Decoder builds schema contexts from XML elements.
// A Decoder holds no per-document state and may be reused.
type Decoder struct {
	interfaces *traceschema.InterfaceTable
	logger     traceschema.Logger
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithInterfaces sets the table used to resolve interface names.
func WithInterfaces(table *traceschema.InterfaceTable) DecoderOption {
	return func(d *Decoder) {
		d.interfaces = table
	}
}

// WithLogger sets the logger receiving decode warnings.
func WithLogger(logger traceschema.Logger) DecoderOption {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// NewDecoder creates a decoder. By default it resolves the standard
// interfaces and discards warnings.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{
		interfaces: traceschema.DefaultInterfaces(),
		logger:     logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.NewNullLogger()
	}
	return d
}

// DecodeContext builds a new context from a <context> element, decoding its
// <schema> children in document order. Any failure discards the whole
// context.
func (d *Decoder) DecodeContext(contextElem *etree.Element) (*traceschema.SchemaContext, error) {
	if contextElem == nil {
		return nil, malformed("document has no root element")
	}
	if contextElem.Tag != ElemContext {
		return nil, malformed(fmt.Sprintf("root element is <%s>, expected <%s>", contextElem.FullTag(), ElemContext))
	}

	ctx := traceschema.NewSchemaContext()
	for _, schemaElem := range contextElem.SelectElements(ElemSchema) {
		if _, err := d.DecodeSchema(ctx, schemaElem); err != nil {
			return nil, err
		}
	}
	d.logger.Verbose("Decoded %d schema(s)", ctx.Len())
	return ctx, nil
}

// DecodeSchema builds one schema from a <schema> element into ctx.
//
// Nothing is registered in ctx when an error is returned, but names interned
// before the failure remain in its registry.
func (d *Decoder) DecodeSchema(ctx *traceschema.SchemaContext, schemaElem *etree.Element) (*traceschema.TraceObjectSchema, error) {
	schemaName := schemaElem.SelectAttrValue(AttrName, "")
	builder := ctx.Builder(ctx.Name(schemaName))

	for _, ifaceElem := range schemaElem.SelectElements(ElemInterface) {
		ifaceName, err := requireAttr(schemaName, ifaceElem, AttrName)
		if err != nil {
			return nil, err
		}
		iface, ok := d.interfaces.Lookup(ifaceName)
		if !ok {
			d.logger.Warn("Unknown interface name: '%s'", ifaceName)
			continue
		}
		builder.AddInterface(iface)
	}

	builder.SetCanonicalContainer(boolAttr(schemaElem, AttrCanonical))

	for _, elemElem := range schemaElem.SelectElements(ElemElement) {
		schema, err := requireAttr(schemaName, elemElem, AttrSchema)
		if err != nil {
			return nil, err
		}
		index := elemElem.SelectAttrValue(AttrIndex, "")
		builder.AddElementSchema(index, ctx.Name(schema))
	}

	for _, attrElem := range schemaElem.SelectElements(ElemAttribute) {
		schema, err := requireAttr(schemaName, attrElem, AttrSchema)
		if err != nil {
			return nil, err
		}
		required := boolAttr(attrElem, AttrRequired)
		fixed := boolAttr(attrElem, AttrFixed)
		hidden := hiddenAttr(attrElem, AttrHidden)

		name := attrElem.SelectAttrValue(AttrName, "")
		builder.AddAttributeSchema(
			traceschema.NewAttributeSchema(name, ctx.Name(schema), required, fixed, hidden))
	}

	for _, aliasElem := range schemaElem.SelectElements(ElemAttributeAlias) {
		from, err := requireAttr(schemaName, aliasElem, AttrFrom)
		if err != nil {
			return nil, err
		}
		to, err := requireAttr(schemaName, aliasElem, AttrTo)
		if err != nil {
			return nil, err
		}
		builder.AddAttributeAlias(from, to)
	}

	return builder.BuildAndAdd(), nil
}

func requireAttr(schema string, el *etree.Element, key string) (string, error) {
	attr := el.SelectAttr(key)
	if attr == nil {
		return "", missingAttribute(schema, el, key)
	}
	return attr.Value, nil
}
