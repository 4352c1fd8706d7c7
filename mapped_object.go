package rowgraph

import (
	"encoding/json"
	"reflect"
)

// MappedObject is a dynamically populated object built by the mapper - one instance per
// distinct identity under one ResultMap
//
// it tracks which properties have been written, so that first-write-wins holds even when
// the first written value is a zero value ("", 0, false, nil)
type MappedObject struct {
	values  map[string]any
	written map[string]struct{}
}

// newMappedObject creates a blank object for a ResultMap - using the map's CreateNew
// factory if supplied, otherwise an empty record
func newMappedObject(rm ResultMap) *MappedObject {
	values := map[string]any{}
	if rm.CreateNew != nil {
		if v := rm.CreateNew(); v != nil {
			values = v
		}
	}
	return &MappedObject{
		values:  values,
		written: map[string]struct{}{},
	}
}

// Get returns the current value of the named property
func (o *MappedObject) Get(name string) (any, bool) {
	v, ok := o.values[name]
	return v, ok
}

// IsSet returns whether the named property has been written by the mapper
//
// properties pre-populated by a ResultMap.CreateNew factory are not considered written
func (o *MappedObject) IsSet(name string) bool {
	_, ok := o.written[name]
	return ok
}

// Set writes the named property and marks it as written
func (o *MappedObject) Set(name string, value any) {
	o.values[name] = value
	o.written[name] = struct{}{}
}

func (o *MappedObject) nestedObject(name string) (*MappedObject, bool) {
	if v, ok := o.values[name]; ok {
		if obj, ok := v.(*MappedObject); ok {
			return obj, true
		}
	}
	return nil, false
}

func (o *MappedObject) nestedCollection(name string) (*MappedCollection, bool) {
	if v, ok := o.values[name]; ok {
		if c, ok := v.(*MappedCollection); ok {
			return c, true
		}
	}
	return nil, false
}

// AsMap returns the object as a plain map - nested objects become maps and nested
// collections become slices of maps
func (o *MappedObject) AsMap() map[string]any {
	result := make(map[string]any, len(o.values))
	for k, v := range o.values {
		switch vt := v.(type) {
		case *MappedObject:
			result[k] = vt.AsMap()
		case *MappedCollection:
			result[k] = vt.AsMaps()
		default:
			result[k] = v
		}
	}
	return result
}

func (o *MappedObject) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.AsMap())
}

// MappedCollection is an ordered, identity-deduplicated sequence of mapped objects
//
// order is first-appearance order across rows
type MappedCollection []*MappedObject

// AsMaps returns the collection as a slice of plain maps
func (c MappedCollection) AsMaps() []map[string]any {
	result := make([]map[string]any, len(c))
	for i, o := range c {
		result[i] = o.AsMap()
	}
	return result
}

func (c MappedCollection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.AsMaps())
}

// findByIdentity searches the collection for an element whose id property equals the value
func (c MappedCollection) findByIdentity(idName string, idValue any) *MappedObject {
	for _, o := range c {
		if v, ok := o.values[idName]; ok && identityEqual(v, idValue) {
			return o
		}
	}
	return nil
}

// identityEqual compares two identity values
//
// directly comparable values use == (so nil identities share a single bucket) and
// non-comparable values (e.g. []byte ids) fall back to reflect.DeepEqual
func identityEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
