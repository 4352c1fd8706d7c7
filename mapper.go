package rowgraph

import (
	"encoding/json"
	"fmt"
	"io"
)

// GraphMapper is the main graph mapper interface
type GraphMapper interface {
	// Map maps all rows into an ordered, identity-deduplicated collection rooted at rootMapID
	//
	// an empty rows input yields an empty collection
	//
	// options can be any of: ColumnPrefix
	Map(rows []Row, rootMapID string, options ...any) (MappedCollection, error)
	// MapOne maps all rows and returns the first distinct identity
	//
	// because deduplication is by identity, the first element is the first distinct
	// identity encountered - not necessarily just the first row
	//
	// if the result is empty: returns a NotFoundError when required (the default), or
	// nil when the Required(false) option is passed
	//
	// options can be any of: ColumnPrefix, Required
	MapOne(rows []Row, rootMapID string, options ...any) (*MappedObject, error)
	// WriteMapped maps all rows and writes the resulting collection as JSON to the supplied writer
	//
	// options can be any of: ColumnPrefix
	WriteMapped(writer io.Writer, rows []Row, rootMapID string, options ...any) error
	// WriteMappedOne maps the first distinct identity and writes it as JSON to the supplied writer
	//
	// if the result is empty and not required, nothing is written
	//
	// options can be any of: ColumnPrefix, Required
	WriteMappedOne(writer io.Writer, rows []Row, rootMapID string, options ...any) error
	// Extend creates a new GraphMapper adding (or overriding) the specified result maps and options
	Extend(maps []ResultMap, options ...any) (GraphMapper, error)
}

// NewGraphMapper creates a new graph mapper from a registry of result maps
//
// the registry is validated eagerly - duplicate or empty map ids, references to unknown
// map ids and cyclic references all result in a ConfigurationError
//
// options can be any of: ColumnPrefix
func NewGraphMapper(maps []ResultMap, options ...any) (GraphMapper, error) {
	result := &graphMapper{
		maps: make(map[string]ResultMap, len(maps)),
	}
	for _, rm := range maps {
		if rm.MapID == "" {
			return nil, &ConfigurationError{Message: "result map with empty map id"}
		}
		if _, ok := result.maps[rm.MapID]; ok {
			return nil, &ConfigurationError{Message: "duplicate result map id: " + rm.MapID}
		}
		result.maps[rm.MapID] = rm
	}
	if err := result.addOptions(options...); err != nil {
		return nil, err
	}
	if err := result.validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// MustNewGraphMapper is the same as NewGraphMapper, except it panics on error
func MustNewGraphMapper(maps []ResultMap, options ...any) GraphMapper {
	m, err := NewGraphMapper(maps, options...)
	if err != nil {
		panic(err)
	}
	return m
}

// Map is a one-shot convenience that builds a mapper from maps and maps all rows rooted
// at rootMapID
//
// options can be any of: ColumnPrefix
func Map(rows []Row, maps []ResultMap, rootMapID string, options ...any) (MappedCollection, error) {
	m, err := NewGraphMapper(maps)
	if err != nil {
		return nil, err
	}
	return m.Map(rows, rootMapID, options...)
}

// MapOne is a one-shot convenience that builds a mapper from maps and maps the first
// distinct identity rooted at rootMapID
//
// options can be any of: ColumnPrefix, Required
func MapOne(rows []Row, maps []ResultMap, rootMapID string, options ...any) (*MappedObject, error) {
	m, err := NewGraphMapper(maps)
	if err != nil {
		return nil, err
	}
	return m.MapOne(rows, rootMapID, options...)
}

type graphMapper struct {
	maps          map[string]ResultMap
	defaultPrefix string
}

var _ GraphMapper = (*graphMapper)(nil)

func (m *graphMapper) Map(rows []Row, rootMapID string, options ...any) (MappedCollection, error) {
	prefix, _, err := m.rowMapOptions(options...)
	if err != nil {
		return nil, err
	}
	if _, ok := m.maps[rootMapID]; !ok {
		return nil, &ConfigurationError{Message: "unknown result map id: " + rootMapID}
	}
	result := make(MappedCollection, 0, len(rows))
	for _, row := range rows {
		if _, err = m.injectCollection(&result, row, rootMapID, prefix); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (m *graphMapper) MapOne(rows []Row, rootMapID string, options ...any) (*MappedObject, error) {
	_, required, err := m.rowMapOptions(options...)
	if err != nil {
		return nil, err
	}
	result, err := m.Map(rows, rootMapID, options...)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		if required {
			return nil, &NotFoundError{Reason: ReasonEmptyResponse}
		}
		return nil, nil
	}
	return result[0], nil
}

func (m *graphMapper) WriteMapped(writer io.Writer, rows []Row, rootMapID string, options ...any) error {
	result, err := m.Map(rows, rootMapID, options...)
	if err != nil {
		return err
	}
	return json.NewEncoder(writer).Encode(result)
}

func (m *graphMapper) WriteMappedOne(writer io.Writer, rows []Row, rootMapID string, options ...any) error {
	obj, err := m.MapOne(rows, rootMapID, options...)
	if err != nil || obj == nil {
		return err
	}
	return json.NewEncoder(writer).Encode(obj)
}

func (m *graphMapper) Extend(maps []ResultMap, options ...any) (GraphMapper, error) {
	result := &graphMapper{
		maps:          make(map[string]ResultMap, len(m.maps)+len(maps)),
		defaultPrefix: m.defaultPrefix,
	}
	for k, v := range m.maps {
		result.maps[k] = v
	}
	for _, rm := range maps {
		if rm.MapID == "" {
			return nil, &ConfigurationError{Message: "result map with empty map id"}
		}
		result.maps[rm.MapID] = rm
	}
	if err := result.addOptions(options...); err != nil {
		return nil, err
	}
	if err := result.validate(); err != nil {
		return nil, err
	}
	return result, nil
}

func (m *graphMapper) addOptions(options ...any) error {
	for _, o := range options {
		if o != nil {
			switch option := o.(type) {
			case ColumnPrefix:
				m.defaultPrefix = string(option)
			default:
				return fmt.Errorf("unknown option type: %T", o)
			}
		}
	}
	return nil
}

func (m *graphMapper) rowMapOptions(options ...any) (columnPrefix string, required bool, err error) {
	columnPrefix = m.defaultPrefix
	required = true
	for _, o := range options {
		if o != nil {
			switch option := o.(type) {
			case ColumnPrefix:
				columnPrefix = string(option)
			case Required:
				required = bool(option)
			default:
				return "", false, fmt.Errorf("unknown option type: %T", o)
			}
		}
	}
	return columnPrefix, required, nil
}

func (m *graphMapper) validate() error {
	for id, rm := range m.maps {
		for _, a := range rm.Associations {
			if _, ok := m.maps[a.MapID]; !ok {
				return &ConfigurationError{Message: fmt.Sprintf("result map %q references unknown map id %q", id, a.MapID)}
			}
		}
		for _, c := range rm.Collections {
			if _, ok := m.maps[c.MapID]; !ok {
				return &ConfigurationError{Message: fmt.Sprintf("result map %q references unknown map id %q", id, c.MapID)}
			}
		}
	}
	done := make(map[string]bool, len(m.maps))
	for id := range m.maps {
		if err := m.checkCycles(id, done, map[string]bool{}); err != nil {
			return err
		}
	}
	return nil
}

// checkCycles walks association/collection references depth-first - a map reachable from
// itself would recurse unboundedly on a single row
func (m *graphMapper) checkCycles(mapID string, done map[string]bool, path map[string]bool) error {
	if done[mapID] {
		return nil
	}
	if path[mapID] {
		return &ConfigurationError{Message: "cyclic result map reference: " + mapID}
	}
	path[mapID] = true
	rm := m.maps[mapID]
	for _, a := range rm.Associations {
		if err := m.checkCycles(a.MapID, done, path); err != nil {
			return err
		}
	}
	for _, c := range rm.Collections {
		if err := m.checkCycles(c.MapID, done, path); err != nil {
			return err
		}
	}
	delete(path, mapID)
	done[mapID] = true
	return nil
}
