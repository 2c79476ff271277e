package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGroupsByCollection(t *testing.T) {
	g := NewGenerator(t.TempDir(), nil)

	require.NoError(t, g.Emit("mdi", []Entry{
		NewEntry(mustParse(t, "mdi:home"), record("<path/>")),
		NewEntry(mustParse(t, "mdi:account"), record("<path/>")),
	}, nil))
	require.NoError(t, g.Emit("simple-icons", []Entry{
		NewEntry(mustParse(t, "simple-icons:github"), record("<path/>")),
	}, nil))
	require.NoError(t, g.EnsureInitialized())

	byCollection, err := g.List()
	require.NoError(t, err)

	require.Len(t, byCollection, 2)
	assert.Equal(t, []string{"mdi:account", "mdi:home"}, byCollection["mdi"])
	assert.Equal(t, []string{"simple-icons:github"}, byCollection["simple-icons"])
}

func TestListEmptyOutputDir(t *testing.T) {
	g := NewGenerator(t.TempDir(), nil)

	byCollection, err := g.List()
	require.NoError(t, err)
	assert.Empty(t, byCollection)
}

func TestAllIdentifiersSortedAcrossCollections(t *testing.T) {
	g := NewGenerator(t.TempDir(), nil)

	require.NoError(t, g.Emit("tabler", []Entry{
		NewEntry(mustParse(t, "tabler:x"), record("<path/>")),
	}, nil))
	require.NoError(t, g.Emit("mdi", []Entry{
		NewEntry(mustParse(t, "mdi:home"), record("<path/>")),
	}, nil))

	all, err := g.AllIdentifiers()
	require.NoError(t, err)
	assert.Equal(t, []string{"mdi:home", "tabler:x"}, all)
}
