package codec

import (
	"encoding/binary"
	"fmt"
)

// Binary encodes fixed-size element types (sized integers, floats, bools
// and arrays or structs of those) as packed little-endian values.
//
// Unmarshal needs the destination sized in advance: pass a pointer to a
// slice whose length is the element count. Frames carry that count.
type Binary struct{}

// Marshal encodes v, which must be a fixed-size value or a slice of them.
func (Binary) Marshal(v any) ([]byte, error) {
	return binary.Append(nil, binary.LittleEndian, v)
}

// Unmarshal decodes data into v. data must be consumed exactly.
func (Binary) Unmarshal(data []byte, v any) error {
	n, err := binary.Decode(data, binary.LittleEndian, v)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: decoded %d of %d bytes", ErrSizeMismatch, n, len(data))
	}
	return nil
}

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }
