package schemaxml

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

// schemaSummary captures a schema by text so schemas from different contexts
// can be compared.
type schemaSummary struct {
	Name             string
	Interfaces       []string
	Canonical        bool
	Elements         []string
	DefaultElement   string
	Attributes       []string
	DefaultAttribute string
	Aliases          []string
}

func summarize(s *traceschema.TraceObjectSchema) schemaSummary {
	sum := schemaSummary{
		Name:             s.Name().String(),
		Canonical:        s.IsCanonicalContainer(),
		DefaultElement:   s.DefaultElementSchema().String(),
		DefaultAttribute: s.DefaultAttributeSchema().String(),
	}
	for _, iface := range s.Interfaces() {
		sum.Interfaces = append(sum.Interfaces, iface.Name())
	}
	for _, e := range s.ElementSchemas() {
		sum.Elements = append(sum.Elements, e.Index+"="+e.Schema.String())
	}
	for _, a := range s.AttributeSchemas() {
		if a.IsAlias() {
			continue
		}
		sum.Attributes = append(sum.Attributes, a.Schema.String())
	}
	for _, a := range s.AttributeAliases() {
		sum.Aliases = append(sum.Aliases, fmt.Sprintf("%s->%s", a.From, a.To))
	}
	return sum
}

func summarizeContext(ctx *traceschema.SchemaContext) []schemaSummary {
	var result []schemaSummary
	for _, s := range ctx.AllSchemas() {
		result = append(result, summarize(s))
	}
	return result
}

func buildSessionContext() *traceschema.SchemaContext {
	ctx := traceschema.NewSchemaContext()
	iface := func(name string) traceschema.Interface {
		i, _ := traceschema.DefaultInterfaces().Lookup(name)
		return i
	}
	attr := func(name, schema string, required, fixed bool, hidden traceschema.Hidden) traceschema.AttributeSchema {
		return traceschema.NewAttributeSchema(name, ctx.Name(schema), required, fixed, hidden)
	}

	ctx.Builder(ctx.Name("")).
		AddInterface(iface(traceschema.IfaceEventScope)).
		AddAttributeSchema(attr("Processes", "ProcessContainer", true, true, traceschema.HiddenDefault)).
		AddAttributeSchema(attr("", "VOID", false, false, traceschema.HiddenFalse)).
		BuildAndAdd()

	ctx.Builder(ctx.Name("ProcessContainer")).
		SetCanonicalContainer(true).
		AddElementSchema("", ctx.Name("Process")).
		BuildAndAdd()

	ctx.Builder(ctx.Name("Process")).
		AddInterface(iface(traceschema.IfaceProcess)).
		AddInterface(iface(traceschema.IfaceAggregate)).
		AddAttributeSchema(attr("Threads", "ThreadContainer", true, true, traceschema.HiddenDefault)).
		AddAttributeSchema(attr("_pid", "LONG", false, true, traceschema.HiddenTrue)).
		AddAttributeAlias("pid", "_pid").
		AddAttributeAlias("PID", "pid").
		BuildAndAdd()

	ctx.Builder(ctx.Name("ThreadContainer")).
		SetCanonicalContainer(true).
		AddElementSchema("0", ctx.Name("MainThread")).
		AddElementSchema("", ctx.Name("Thread")).
		BuildAndAdd()

	ctx.Builder(ctx.Name("Thread")).
		AddInterface(iface(traceschema.IfaceThread)).
		AddInterface(iface(traceschema.IfaceExecutionStateful)).
		AddAttributeSchema(attr("_state", "EXECUTION_STATE", true, false, traceschema.HiddenDefault)).
		AddAttributeSchema(attr("", "ANY", false, false, traceschema.HiddenTrue)).
		AddAttributeAlias("State", "_state").
		BuildAndAdd()

	return ctx
}

func TestRoundTrip_SessionContext(t *testing.T) {
	original := buildSessionContext()

	text, err := Serialize(original)
	require.NoError(t, err)

	decoded, err := Deserialize(text)
	require.NoError(t, err)

	assert.Equal(t, summarizeContext(original), summarizeContext(decoded))

	again, err := Serialize(decoded)
	require.NoError(t, err)
	assert.Equal(t, text, again, "serialization is stable across a round trip")
}

func TestRoundTrip_FlattenedAliases(t *testing.T) {
	decoded, err := Deserialize(mustSerialize(t, buildSessionContext()))
	require.NoError(t, err)

	proc := mustSchema(t, decoded, "Process")
	assert.Equal(t, []traceschema.AliasEntry{
		{From: "pid", To: "_pid"},
		{From: "PID", To: "_pid"},
	}, proc.AttributeAliases())
	assert.Equal(t, proc.AttributeSchema("_pid"), proc.AttributeSchema("PID"))
}

func TestRoundTrip_Indentation(t *testing.T) {
	ctx := buildSessionContext()

	pretty, err := SerializeIndent(ctx, 4)
	require.NoError(t, err)
	assert.Contains(t, pretty, "\n    <schema")

	decoded, err := Deserialize(pretty)
	require.NoError(t, err)
	assert.Equal(t, summarizeContext(ctx), summarizeContext(decoded))
}

func TestRoundTrip_WhitespaceInNames(t *testing.T) {
	ctx := traceschema.NewSchemaContext()
	ctx.Builder(ctx.Name("Win\r\nName")).
		AddElementSchema("0\r", ctx.Name("Tab\tName")).
		AddAttributeSchema(traceschema.NewAttributeSchema("line\nbreak", ctx.Name("STRING"), false, false, traceschema.HiddenDefault)).
		AddAttributeAlias("alias\t", "line\nbreak").
		BuildAndAdd()
	ctx.Builder(ctx.Name("Tab\tName")).BuildAndAdd()

	text := mustSerialize(t, ctx)
	assert.Contains(t, text, `name="Win&#xD;&#xA;Name"`)
	assert.Contains(t, text, `index="0&#xD;"`)
	assert.Contains(t, text, `from="alias&#x9;"`)

	decoded, err := Deserialize(text)
	require.NoError(t, err)
	assert.Equal(t, summarizeContext(ctx), summarizeContext(decoded))

	win := mustSchema(t, decoded, "Win\r\nName")
	assert.Equal(t, "Tab\tName", win.ElementSchema("0\r").String())
	assert.Equal(t, "line\nbreak", win.AttributeSchema("alias\t").Name())
}

func mustSerialize(t *testing.T, ctx *traceschema.SchemaContext) string {
	t.Helper()
	text, err := Serialize(ctx)
	require.NoError(t, err)
	return text
}
