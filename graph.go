package rowgraph

// injectCollection finds-or-creates the object representing the row's identity within the
// collection (preserving first-appearance order) and then merges the row into it
func (m *graphMapper) injectCollection(coll *MappedCollection, row Row, mapID string, columnPrefix string) (*MappedObject, error) {
	rm, ok := m.maps[mapID]
	if !ok {
		return nil, &ConfigurationError{Message: "unknown result map id: " + mapID}
	}
	id := resolveID(rm)
	idValue := row[columnPrefix+id.Column]
	obj := coll.findByIdentity(id.Name, idValue)
	if obj == nil {
		obj = newMappedObject(rm)
		*coll = append(*coll, obj)
	}
	return obj, m.injectGraph(obj, row, rm, columnPrefix)
}

// injectGraph merges one row into one mapped object under one ResultMap context
//
// step order is part of the contract - id, then properties, then associations, then
// collections, then post processors - so that post processors observe the fully populated
// contribution of the current row
func (m *graphMapper) injectGraph(obj *MappedObject, row Row, rm ResultMap, columnPrefix string) error {
	id := resolveID(rm)
	if !obj.IsSet(id.Name) {
		obj.Set(id.Name, row[columnPrefix+id.Column])
	}
	for _, p := range rm.Properties {
		name, column := p.resolve()
		if obj.IsSet(name) {
			continue
		}
		if p.Value != nil {
			obj.Set(name, p.Value(row, columnPrefix))
		} else {
			obj.Set(name, row[columnPrefix+column])
		}
	}
	for _, a := range rm.Associations {
		arm, ok := m.maps[a.MapID]
		if !ok {
			return &ConfigurationError{Message: "unknown result map id: " + a.MapID}
		}
		nested, ok := obj.nestedObject(a.Name)
		if !ok {
			nested = newMappedObject(arm)
			obj.Set(a.Name, nested)
		}
		if err := m.injectGraph(nested, row, arm, a.ColumnPrefix); err != nil {
			return err
		}
	}
	for _, c := range rm.Collections {
		coll, ok := obj.nestedCollection(c.Name)
		if !ok {
			coll = &MappedCollection{}
			obj.Set(c.Name, coll)
		}
		if _, err := m.injectCollection(coll, row, c.MapID, c.ColumnPrefix); err != nil {
			return err
		}
	}
	for _, pp := range rm.PostProcessors {
		if pp != nil {
			pp(obj, row)
		}
	}
	return nil
}
