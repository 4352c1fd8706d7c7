package rowgraph

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestResolveID(t *testing.T) {
	id := resolveID(ResultMap{})
	require.Equal(t, IDProperty{Name: "id", Column: "id"}, id)

	id = resolveID(ResultMap{IDProperty: &IDProperty{Name: "key"}})
	require.Equal(t, IDProperty{Name: "key", Column: "key"}, id)

	id = resolveID(ResultMap{IDProperty: &IDProperty{Name: "key", Column: "parent_key"}})
	require.Equal(t, IDProperty{Name: "key", Column: "parent_key"}, id)

	id = resolveID(ResultMap{IDProperty: &IDProperty{Column: "parent_id"}})
	require.Equal(t, IDProperty{Name: "id", Column: "parent_id"}, id)

	id = resolveID(ResultMap{IDProperty: &IDProperty{}})
	require.Equal(t, IDProperty{Name: "id", Column: "id"}, id)
}

func TestPropertyResolve(t *testing.T) {
	name, column := Property{Name: "name"}.resolve()
	require.Equal(t, "name", name)
	require.Equal(t, "name", column)

	name, column = Property{Name: "name", Column: "full_name"}.resolve()
	require.Equal(t, "name", name)
	require.Equal(t, "full_name", column)
}
