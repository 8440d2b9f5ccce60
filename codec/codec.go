// Package codec persists SmolVec contents as self-describing frames.
//
// A frame records the element codec by name and the block compression by
// type, so Unmarshal needs no options to read what Marshal wrote. Changing
// the Default codec only affects newly written frames.
package codec

// Codec encodes/decodes element slices.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// This is used when decoding a frame, which stores the codec name in its
// header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "binary":
		return Binary{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}
