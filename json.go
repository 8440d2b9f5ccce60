package smolvec

import (
	gojson "github.com/goccy/go-json"
)

// MarshalJSON encodes the elements as a JSON array. An empty container
// encodes as [].
func (v *SmolVec[T]) MarshalJSON() ([]byte, error) {
	if v.len == 0 {
		return []byte("[]"), nil
	}
	return gojson.Marshal(v.Slice())
}

// UnmarshalJSON replaces the elements with those of a JSON array. The
// capacity already reserved is kept.
func (v *SmolVec[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := gojson.Unmarshal(data, &values); err != nil {
		return err
	}
	v.Clear()
	v.Append(values...)
	return nil
}
