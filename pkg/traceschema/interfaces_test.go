package traceschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

func TestDefaultInterfaces(t *testing.T) {
	table := traceschema.DefaultInterfaces()

	iface, ok := table.Lookup(traceschema.IfaceThread)
	require.True(t, ok)
	assert.Equal(t, "Thread", iface.Name())
	assert.Nil(t, iface.Construct(struct{}{}))

	_, ok = table.Lookup("NoSuchInterface")
	assert.False(t, ok)

	names := table.Names()
	assert.Equal(t, table.Len(), len(names))
	assert.IsIncreasing(t, names)
}

func TestDefaultInterfaces_Independent(t *testing.T) {
	a := traceschema.DefaultInterfaces()
	b := traceschema.DefaultInterfaces()
	a.Register(traceschema.NewInterface("Custom", nil))

	_, ok := b.Lookup("Custom")
	assert.False(t, ok)
}

func TestInterfaceTable_Constructor(t *testing.T) {
	type wrapped struct{ inner interface{} }
	table := traceschema.NewInterfaceTable(
		traceschema.NewInterface("Wrapper", func(obj interface{}) interface{} {
			return wrapped{inner: obj}
		}),
	)

	iface, ok := table.Lookup("Wrapper")
	require.True(t, ok)
	assert.Equal(t, wrapped{inner: 7}, iface.Construct(7))
}

func TestInterfaceTable_NilTable(t *testing.T) {
	var table *traceschema.InterfaceTable
	_, ok := table.Lookup(traceschema.IfaceThread)
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Names())
}
