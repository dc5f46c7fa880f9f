package schemaxml

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

func compact(t *testing.T, ctx *traceschema.SchemaContext) string {
	t.Helper()
	text, err := SerializeIndent(ctx, 0)
	require.NoError(t, err)
	return strings.TrimSpace(text)
}

func TestEncodeSchema_Minimal(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	ctx.Builder(ctx.Name("")).BuildAndAdd()

	assert.Equal(t, `<context><schema name=""/></context>`, compact(t, ctx))
}

func TestEncodeSchema_FullOrder(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	ctx.Builder(ctx.Name("Thread")).
		AddAttributeAlias("State", "_state").
		AddAttributeSchema(traceschema.NewAttributeSchema("_state", ctx.Name("EXECUTION_STATE"), true, true, traceschema.HiddenTrue)).
		AddElementSchema("", ctx.Name("Frame")).
		AddElementSchema("0", ctx.Name("Frame")).
		SetCanonicalContainer(true).
		AddInterface(traceschema.NewInterface(traceschema.IfaceThread, nil)).
		BuildAndAdd()

	want := `<context><schema name="Thread" canonical="yes">` +
		`<interface name="Thread"/>` +
		`<element index="0" schema="Frame"/>` +
		`<element schema="Frame"/>` +
		`<attribute name="_state" schema="EXECUTION_STATE" required="yes" fixed="yes" hidden="yes"/>` +
		`<attribute-alias from="State" to="_state"/>` +
		`</schema></context>`
	assert.Equal(t, want, compact(t, ctx))
}

func TestEncodeSchema_DefaultSentinelsOmitted(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	s := ctx.Builder(ctx.Name("Node")).
		AddElementSchema("", ctx.Name(traceschema.ObjectSchemaName)).
		AddAttributeSchema(traceschema.NewAttributeSchema("", ctx.Name(traceschema.AnySchemaName), false, false, traceschema.HiddenDefault)).
		BuildAndAdd()

	el := EncodeSchema(s)
	require.NotNil(t, el)
	assert.Empty(t, el.ChildElements())
}

func TestEncodeSchema_ExplicitDefaultElement(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	s := ctx.Builder(ctx.Name("Node")).
		AddElementSchema("", ctx.Name("Child")).
		BuildAndAdd()

	children := EncodeSchema(s).SelectElements(ElemElement)
	require.Len(t, children, 1)
	assert.Nil(t, children[0].SelectAttr(AttrIndex), "default element has no index")
	assert.Equal(t, "Child", children[0].SelectAttrValue(AttrSchema, ""))
}

func TestEncodeSchema_AliasNotDuplicated(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	s := ctx.Builder(ctx.Name("Node")).
		AddAttributeSchema(traceschema.NewAttributeSchema("x", ctx.Name("S"), false, false, traceschema.HiddenDefault)).
		AddAttributeAlias("y", "x").
		BuildAndAdd()

	el := EncodeSchema(s)
	attrs := el.SelectElements(ElemAttribute)
	require.Len(t, attrs, 1)
	assert.Equal(t, "x", attrs[0].SelectAttrValue(AttrName, ""))

	aliases := el.SelectElements(ElemAttributeAlias)
	require.Len(t, aliases, 1)
	assert.Equal(t, "y", aliases[0].SelectAttrValue(AttrFrom, ""))
	assert.Equal(t, "x", aliases[0].SelectAttrValue(AttrTo, ""))
}

func TestEncodeSchema_SkipsPrimitives(t *testing.T) {
	ctx := traceschema.NewSchemaContext()

	object, ok := ctx.Primitive(traceschema.ObjectSchemaName)
	require.True(t, ok)
	assert.Nil(t, EncodeSchema(object), "placeholder is never serialized")

	str, ok := ctx.Primitive(traceschema.StringSchemaName)
	require.True(t, ok)
	assert.Nil(t, EncodeSchema(str), "value types are never serialized")
}

func TestEncodeAttribute_Hidden(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	s := ctx.Name("S")

	tests := []struct {
		name   string
		attr   traceschema.AttributeSchema
		hidden string
		has    bool
	}{
		{"named true", traceschema.NewAttributeSchema("a", s, false, false, traceschema.HiddenTrue), "yes", true},
		{"named false", traceschema.NewAttributeSchema("a", s, false, false, traceschema.HiddenFalse), "", false},
		{"named default", traceschema.NewAttributeSchema("a", s, false, false, traceschema.HiddenDefault), "", false},
		{"default true", traceschema.NewAttributeSchema("", s, false, false, traceschema.HiddenTrue), "yes", true},
		{"default false", traceschema.NewAttributeSchema("", s, false, false, traceschema.HiddenFalse), "no", true},
		{"default default", traceschema.NewAttributeSchema("", s, false, false, traceschema.HiddenDefault), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := EncodeAttribute(tt.attr)
			attr := el.SelectAttr(AttrHidden)
			if !tt.has {
				assert.Nil(t, attr)
				return
			}
			require.NotNil(t, attr)
			assert.Equal(t, tt.hidden, attr.Value)
		})
	}
}

func TestEncodeAttribute_FlagsOnlyWhenTrue(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	el := EncodeAttribute(traceschema.NewAttributeSchema("", ctx.Name("INT"), false, false, traceschema.HiddenDefault))

	assert.Nil(t, el.SelectAttr(AttrName), "default entry has no name")
	assert.Nil(t, el.SelectAttr(AttrRequired))
	assert.Nil(t, el.SelectAttr(AttrFixed))
	assert.Equal(t, "INT", el.SelectAttrValue(AttrSchema, ""))
}

func TestSerialize_RejectsUnencodableNames(t *testing.T) {
	tests := []struct {
		name  string
		build func(ctx *traceschema.SchemaContext)
	}{
		{"control char in schema name", func(ctx *traceschema.SchemaContext) {
			ctx.Builder(ctx.Name("A\x01B")).BuildAndAdd()
		}},
		{"invalid utf8 in element index", func(ctx *traceschema.SchemaContext) {
			ctx.Builder(ctx.Name("A")).AddElementSchema("\xff", ctx.Name("B")).BuildAndAdd()
		}},
		{"nul in alias", func(ctx *traceschema.SchemaContext) {
			ctx.Builder(ctx.Name("A")).AddAttributeAlias("x\x00", "_x").BuildAndAdd()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := traceschema.NewSchemaContext()
			tt.build(ctx)

			var b strings.Builder
			err := Write(&b, ctx, DefaultIndent)
			require.Error(t, err)
			assert.True(t, errors.Is(err, traceschema.ErrUnencodableText), "got %v", err)
			assert.Empty(t, b.String(), "nothing is written")
		})
	}
}

func TestSerialize_KeepsValidNonASCII(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	ctx.Builder(ctx.Name("Fäden \U0001F9F5")).BuildAndAdd()

	text, err := Serialize(ctx)
	require.NoError(t, err)
	assert.Contains(t, text, "Fäden \U0001F9F5")
}
