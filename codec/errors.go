package codec

import "errors"

var (
	// ErrInvalidFrame is returned when a frame header is malformed or truncated.
	ErrInvalidFrame = errors.New("codec: invalid frame")
	// ErrUnknownCodec is returned when a frame names a codec that is not available.
	ErrUnknownCodec = errors.New("codec: unknown codec")
	// ErrUnknownCompression is returned for an unsupported compression type.
	ErrUnknownCompression = errors.New("codec: unknown compression")
	// ErrSizeMismatch is returned when decoded data disagrees with the header.
	ErrSizeMismatch = errors.New("codec: size mismatch")
)
