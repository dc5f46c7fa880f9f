package traceschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

func TestContext_RegistrationOrder(t *testing.T) {
	ctx := traceschema.NewSchemaContext()

	ctx.Builder(ctx.Name("")).BuildAndAdd()
	ctx.Builder(ctx.Name("Process")).BuildAndAdd()
	ctx.Builder(ctx.Name("Thread")).BuildAndAdd()

	all := ctx.AllSchemas()
	require.Len(t, all, 3)
	assert.Equal(t, "", all[0].Name().String())
	assert.Equal(t, "Process", all[1].Name().String())
	assert.Equal(t, "Thread", all[2].Name().String())
	assert.Equal(t, 3, ctx.Len())
}

func TestContext_LastBuildWins(t *testing.T) {
	ctx := traceschema.NewSchemaContext()

	ctx.Builder(ctx.Name("A")).BuildAndAdd()
	ctx.Builder(ctx.Name("B")).BuildAndAdd()
	second := ctx.Builder(ctx.Name("A")).SetCanonicalContainer(true).BuildAndAdd()

	all := ctx.AllSchemas()
	require.Len(t, all, 2)
	assert.Same(t, second, all[0], "rebuilt schema keeps the first position")

	got, ok := ctx.Schema(ctx.Name("A"))
	require.True(t, ok)
	assert.True(t, got.IsCanonicalContainer())
}

func TestContext_LookupFallsBackToPrimitives(t *testing.T) {
	ctx := traceschema.NewSchemaContext()

	_, ok := ctx.Schema(ctx.Name(traceschema.IntSchemaName))
	assert.False(t, ok, "primitives are not built schemas")

	intSchema, ok := ctx.Lookup(ctx.Name(traceschema.IntSchemaName))
	require.True(t, ok)
	assert.True(t, intSchema.IsPrimitive())
	assert.Equal(t, traceschema.TypeInt, intSchema.Type())
	assert.False(t, intSchema.Type().IsObject())
	assert.False(t, intSchema.IsPlaceholder())

	object, ok := ctx.Primitive(traceschema.ObjectSchemaName)
	require.True(t, ok)
	assert.True(t, object.IsPlaceholder())

	_, ok = ctx.Lookup(ctx.Name("Forward"))
	assert.False(t, ok, "forward references resolve only once built")
	ctx.Builder(ctx.Name("Forward")).BuildAndAdd()
	_, ok = ctx.Lookup(ctx.Name("Forward"))
	assert.True(t, ok)
}

func TestContext_PrimitiveUnknown(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	before := ctx.Registry().Len()

	_, ok := ctx.Primitive("NOT_A_PRIMITIVE")
	assert.False(t, ok)
	assert.Equal(t, before, ctx.Registry().Len())
}

func TestContext_NamesShareRegistry(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	assert.True(t, ctx.Name("X") == ctx.Registry().Intern("X"))
}

func TestContext_DeclaredFollowsRegistrationOrder(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	ctx.Builder(ctx.Name("B")).BuildAndAdd()
	ctx.Builder(ctx.Name("A")).BuildAndAdd()
	ctx.Builder(ctx.Name("B")).SetCanonicalContainer(true).BuildAndAdd()

	declared := ctx.Declared()
	require.Len(t, declared, 2)
	assert.Equal(t, "B", declared[0].Name().String())
	assert.True(t, declared[0].IsCanonicalContainer())
	assert.Equal(t, "A", declared[1].Name().String())
}
