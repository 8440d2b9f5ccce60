package codec

// DefaultMaxDecodedSize bounds the decoded payload of a frame and the
// memory of its elements (64 MiB).
const DefaultMaxDecodedSize = 64 << 20

type options struct {
	codec          Codec
	compression    Compression
	maxDecodedSize int
}

func defaultOptions() options {
	return options{
		codec:          Default,
		compression:    CompressionNone,
		maxDecodedSize: DefaultMaxDecodedSize,
	}
}

// Option configures Marshal and Unmarshal.
type Option func(*options)

// WithCodec selects the element codec used by Marshal. Unmarshal uses it
// for frames that carry its name and falls back to ByName otherwise.
//
// If nil is passed, Default is used.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c == nil {
			c = Default
		}
		o.codec = c
	}
}

// WithCompression selects the block compression used by Marshal.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMaxDecodedSize bounds what Unmarshal accepts: both the decoded
// payload and the memory of the decoded elements (count times element
// size). Values <= 0 restore DefaultMaxDecodedSize.
func WithMaxDecodedSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxDecodedSize
		}
		o.maxDecodedSize = n
	}
}
