package rowgraph

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type testParent struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Children []testChild `json:"children"`
}

type testChild struct {
	ID int `json:"id"`
}

func TestDecode(t *testing.T) {
	maps := []ResultMap{
		{
			MapID:       "Parent",
			Properties:  []Property{{Name: "name"}},
			Collections: []Collection{{Name: "children", MapID: "Child", ColumnPrefix: "child_"}},
		},
		{MapID: "Child"},
	}
	rows := []Row{
		{"id": 1, "name": "a", "child_id": 10},
		{"id": 1, "name": "a", "child_id": 11},
	}
	result, err := Map(rows, maps, "Parent")
	require.NoError(t, err)

	parents, err := Decode[testParent](result)
	require.NoError(t, err)
	assert.Equal(t, []testParent{
		{
			ID:       1,
			Name:     "a",
			Children: []testChild{{ID: 10}, {ID: 11}},
		},
	}, parents)
}

func TestDecodeOne(t *testing.T) {
	obj, err := MapOne([]Row{{"id": 1, "name": "a"}}, []ResultMap{
		{MapID: "Parent", Properties: []Property{{Name: "name"}}},
	}, "Parent")
	require.NoError(t, err)

	parent, err := DecodeOne[testParent](obj)
	require.NoError(t, err)
	assert.Equal(t, testParent{ID: 1, Name: "a"}, parent)
}

func TestDecode_Error(t *testing.T) {
	a := newMappedObject(ResultMap{})
	a.Set("id", "not a number")
	_, err := Decode[testParent](MappedCollection{a})
	require.Error(t, err)
}
