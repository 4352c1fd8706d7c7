package rowgraph

// ColumnPrefix is an option that can be passed to NewGraphMapper (as the default for all
// calls) or to GraphMapper.Map, GraphMapper.MapOne etc. (overriding for that call only)
//
// it is prepended to the root ResultMap's column names when reading values from rows
type ColumnPrefix string

// Required is an option that can be passed to GraphMapper.MapOne or GraphMapper.WriteMappedOne
// and determines whether an empty result is an error
//
// when true (the default) an empty result yields a NotFoundError - when false an empty
// result yields a nil object (and no error)
type Required bool
