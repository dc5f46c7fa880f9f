package fingerprint

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/traceschema/pkg/schemaxml"
	"github.com/vvka-141/traceschema/pkg/traceschema"
)

const compactDoc = `<context><schema name="Thread" canonical="yes"><interface name="Thread"/><attribute name="_state" schema="EXECUTION_STATE" required="yes"/></schema></context>`

const formattedDoc = `<context>
  <schema canonical="yes" name="Thread">
    <interface name="Thread"/>
    <attribute schema="EXECUTION_STATE" name="_state" required="yes" fixed="no"/>
  </schema>
</context>
`

func TestDigest(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Digest(nil))
	assert.Len(t, Digest([]byte("<context/>")), 64)
	assert.Equal(t, Digest([]byte("a")), Digest([]byte("a")))
}

func TestOfDocument_FormattingIndependent(t *testing.T) {
	a, err := OfDocument([]byte(compactDoc), nil)
	require.NoError(t, err)
	b, err := OfDocument([]byte(formattedDoc), nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.Raw, b.Raw, "raw digests see formatting")
	assert.Equal(t, a.Canonical, b.Canonical)
	assert.Equal(t, a.ID, b.ID)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 1, a.Schemas)
}

func TestOfDocument_ContentSensitive(t *testing.T) {
	a, err := OfDocument([]byte(compactDoc), nil)
	require.NoError(t, err)
	b, err := OfDocument([]byte(`<context><schema name="Thread"/></context>`), nil)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestOfDocument_DecodeError(t *testing.T) {
	_, err := OfDocument([]byte(`<context><schema/></context>`), nil)
	assert.True(t, errors.Is(err, traceschema.ErrMissingAttribute))
}

func TestOf_StableAcrossRoundTrip(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	ctx.Builder(ctx.Name("Module")).
		AddAttributeSchema(traceschema.NewAttributeSchema("Range", ctx.Name("RANGE"), true, false, traceschema.HiddenDefault)).
		BuildAndAdd()

	first, err := Of(ctx)
	require.NoError(t, err)
	assert.Empty(t, first.Raw)

	text, err := schemaxml.SerializeIndent(ctx, 4)
	require.NoError(t, err)
	again, err := schemaxml.Deserialize(text)
	require.NoError(t, err)

	second, err := Of(again)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIdentityOf(t *testing.T) {
	id := IdentityOf("abc")
	assert.Equal(t, uuid.Version(5), id.Version())
	assert.Equal(t, id, IdentityOf("abc"))
	assert.NotEqual(t, id, IdentityOf("abd"))
}
