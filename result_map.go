package rowgraph

// Row is a single flat result row - a mapping from (possibly prefixed) column name to value
//
// one row may contribute to multiple objects across the map hierarchy via distinct column prefixes
type Row map[string]any

// PropertyValue is an optional transform func that can be set on a Property
//
// when set, it is called to compute the property value instead of reading row[prefix+column]
type PropertyValue func(row Row, columnPrefix string) any

// PostProcess is a func that can be added to ResultMap.PostProcessors
//
// Any post processors on a ResultMap are called, in declared order, after the id, properties,
// associations and collections for the current row have been applied to the mapped object
type PostProcess func(obj *MappedObject, row Row)

// IDProperty denotes the property name and source column used to determine object identity
//
// if Column is an empty string it defaults to Name
type IDProperty struct {
	Name   string
	Column string
}

// Property is a scalar property spec within a ResultMap
type Property struct {
	// Name is the property name on the mapped object
	Name string
	// Column is the source column name - if empty, defaults to Name
	Column string
	// Value is an optional transform used to compute the value
	Value PropertyValue
}

// Association is a singular nested object spec - one instance per parent
type Association struct {
	// Name is the property name under which the nested object is attached
	Name string
	// MapID references the ResultMap used to build the nested object
	MapID string
	// ColumnPrefix is the prefix for the nested object's columns
	//
	// defaults to empty - it is not inherited from the parent prefix
	ColumnPrefix string
}

// Collection is a plural nested object spec - many deduplicated instances per parent
//
// elements are deduplicated by id property value - rows where the id column is absent all
// resolve to a single nil identity element (filter such rows upstream to skip absent children)
type Collection struct {
	// Name is the property name under which the collection is attached
	Name string
	// MapID references the ResultMap used to build the collection elements
	MapID string
	// ColumnPrefix is the prefix for the element columns
	//
	// defaults to empty - it is not inherited from the parent prefix
	ColumnPrefix string
}

// ResultMap is a declarative schema describing how to build one object type from row columns
//
// ResultMaps are read-only input - the mapper never mutates them and they can be shared
// across mappers and calls
type ResultMap struct {
	// MapID uniquely identifies this map within the registry
	MapID string
	// IDProperty is the id spec - when nil, defaults to {Name: "id", Column: "id"}
	IDProperty *IDProperty
	// Properties is the ordered list of scalar property specs
	Properties []Property
	// Associations is the ordered list of singular nested object specs
	Associations []Association
	// Collections is the ordered list of plural nested object specs
	Collections []Collection
	// PostProcessors are called, in order, after each row is applied (nil entries are skipped)
	PostProcessors []PostProcess
	// CreateNew is an optional factory producing a blank object - when nil, an empty record is used
	CreateNew func() map[string]any
}
