package rowgraph

import "encoding/json"

// Decode decodes a mapped collection into a slice of T
//
// field mapping follows the usual encoding/json tag rules
func Decode[T any](c MappedCollection) ([]T, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var result []T
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeOne decodes a single mapped object into a T
//
// field mapping follows the usual encoding/json tag rules
func DecodeOne[T any](o *MappedObject) (T, error) {
	var result T
	data, err := json.Marshal(o)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(data, &result)
	return result, err
}
