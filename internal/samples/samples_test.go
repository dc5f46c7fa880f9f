package samples

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/traceschema/internal/fingerprint"
	"github.com/vvka-141/traceschema/internal/logging"
	"github.com/vvka-141/traceschema/pkg/schemaxml"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"breakpoints", "minimal", "session"}, Names())
	assert.Contains(t, Names(), Default)
}

func TestGet(t *testing.T) {
	a, err := Get("minimal")
	require.NoError(t, err)
	b, err := Get("minimal.xml")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = Get("nope")
	assert.True(t, errors.Is(err, ErrUnknownSample))
	assert.Contains(t, err.Error(), "session")
}

func TestSamplesDecodeCleanly(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			doc, err := Get(name)
			require.NoError(t, err)

			counter := logging.NewCountingLogger(nil)
			dec := schemaxml.NewDecoder(schemaxml.WithLogger(counter))
			ctx, err := dec.DeserializeBytes(doc)
			require.NoError(t, err)
			assert.Zero(t, counter.Warnings(), "standard interfaces only")

			text, err := schemaxml.Serialize(ctx)
			require.NoError(t, err)
			again, err := schemaxml.Deserialize(text)
			require.NoError(t, err)

			first, err := fingerprint.Of(ctx)
			require.NoError(t, err)
			second, err := fingerprint.Of(again)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestSessionAliases(t *testing.T) {
	doc, err := Get("session")
	require.NoError(t, err)
	ctx, err := schemaxml.DeserializeBytes(doc)
	require.NoError(t, err)

	process, ok := ctx.Schema(ctx.Name("Process"))
	require.True(t, ok)
	assert.Equal(t, "_state", process.ResolveAlias("State"))
	assert.Equal(t, "LONG", process.AttributeSchema("PID").Schema().String())
	assert.Equal(t, "ANY", process.AttributeSchema("Unlisted").Schema().String())
}
