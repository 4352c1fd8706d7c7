package rowgraph

const (
	defaultIDName   = "id"
	defaultIDColumn = "id"
)

// resolveID normalizes the id spec of a ResultMap
//
// a nil spec defaults to {id, id} - a spec with only a name uses that name as the column
func resolveID(rm ResultMap) IDProperty {
	if rm.IDProperty == nil {
		return IDProperty{Name: defaultIDName, Column: defaultIDColumn}
	}
	result := *rm.IDProperty
	if result.Name == "" {
		result.Name = defaultIDName
	}
	if result.Column == "" {
		result.Column = result.Name
	}
	return result
}

// resolve normalizes a property spec - the column defaults to the property name
func (p Property) resolve() (name string, column string) {
	name = p.Name
	column = p.Column
	if column == "" {
		column = name
	}
	return name, column
}
