package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/simplysabir/smolvec"
	"github.com/simplysabir/smolvec/internal/alloc"
	"github.com/simplysabir/smolvec/internal/conv"
)

// Frame layout (little endian):
//
//	[magic "SVF1"][compression u8][name len u8][name]
//	[count u32][raw size u32][stored size u32][payload]
//
// A stored size of 0 means the payload is not compressed.
var frameMagic = [4]byte{'S', 'V', 'F', '1'}

const fixedHeaderSize = len(frameMagic) + 2 + 12

// Header describes a frame without decoding its payload.
type Header struct {
	Compression Compression
	Codec       string
	Count       int
	RawSize     int
	StoredSize  int // 0 when the payload is stored raw
}

// Marshal encodes the elements of v into a frame.
func Marshal[T any](v *smolvec.SmolVec[T], opts ...Option) ([]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	name := o.codec.Name()
	if len(name) == 0 || len(name) > 255 {
		return nil, fmt.Errorf("%w: codec name %q", ErrUnknownCodec, name)
	}

	raw, err := o.codec.Marshal(v.Slice())
	if err != nil {
		return nil, fmt.Errorf("codec %s marshal failed: %w", name, err)
	}

	stored, compressed, err := compress(raw, o.compression)
	if err != nil {
		return nil, err
	}

	count, err := conv.IntToUint32(v.Len())
	if err != nil {
		return nil, err
	}
	rawSize, err := conv.IntToUint32(len(raw))
	if err != nil {
		return nil, err
	}
	var storedSize uint32
	if compressed {
		if storedSize, err = conv.IntToUint32(len(stored)); err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, fixedHeaderSize+len(name)+len(stored))
	out = append(out, frameMagic[:]...)
	out = append(out, byte(o.compression), byte(len(name)))
	out = append(out, name...)
	out = binary.LittleEndian.AppendUint32(out, count)
	out = binary.LittleEndian.AppendUint32(out, rawSize)
	out = binary.LittleEndian.AppendUint32(out, storedSize)
	out = append(out, stored...)
	return out, nil
}

// ReadHeader parses the header of a frame and returns it together with the
// stored payload.
func ReadHeader(data []byte) (Header, []byte, error) {
	var h Header
	if len(data) < fixedHeaderSize || [4]byte(data[:4]) != frameMagic {
		return h, nil, fmt.Errorf("%w: missing magic", ErrInvalidFrame)
	}
	h.Compression = Compression(data[4])
	nameLen := int(data[5])
	rest := data[6:]
	if len(rest) < nameLen+12 {
		return h, nil, fmt.Errorf("%w: truncated header", ErrInvalidFrame)
	}
	h.Codec = string(rest[:nameLen])
	rest = rest[nameLen:]

	var err error
	if h.Count, err = conv.Uint32ToInt(binary.LittleEndian.Uint32(rest[0:])); err != nil {
		return h, nil, fmt.Errorf("%w: %w", ErrInvalidFrame, err)
	}
	if h.RawSize, err = conv.Uint32ToInt(binary.LittleEndian.Uint32(rest[4:])); err != nil {
		return h, nil, fmt.Errorf("%w: %w", ErrInvalidFrame, err)
	}
	if h.StoredSize, err = conv.Uint32ToInt(binary.LittleEndian.Uint32(rest[8:])); err != nil {
		return h, nil, fmt.Errorf("%w: %w", ErrInvalidFrame, err)
	}
	payload := rest[12:]

	want := h.RawSize
	if h.StoredSize != 0 {
		want = h.StoredSize
	}
	if len(payload) != want {
		return h, nil, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrInvalidFrame, len(payload), want)
	}
	return h, payload, nil
}

// Unmarshal decodes a frame written by Marshal into a new container.
func Unmarshal[T any](data []byte, opts ...Option) (*smolvec.SmolVec[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h, payload, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	if h.RawSize > o.maxDecodedSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds limit %d", ErrInvalidFrame, h.RawSize, o.maxDecodedSize)
	}
	// Every encoding spends at least one byte per non-empty element.
	if alloc.SizeOf[T]() > 0 && h.Count > h.RawSize {
		return nil, fmt.Errorf("%w: %d elements in %d bytes", ErrInvalidFrame, h.Count, h.RawSize)
	}
	memSize, err := conv.MulInt(h.Count, alloc.SizeOf[T]())
	if err != nil || memSize > o.maxDecodedSize {
		return nil, fmt.Errorf("%w: %d elements of %d bytes exceed limit %d", ErrInvalidFrame, h.Count, alloc.SizeOf[T](), o.maxDecodedSize)
	}

	c := o.codec
	if c.Name() != h.Codec {
		var ok bool
		if c, ok = ByName(h.Codec); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, h.Codec)
		}
	}

	raw := payload
	if h.StoredSize != 0 {
		if raw, err = decompress(payload, h.Compression, h.RawSize); err != nil {
			return nil, err
		}
	}

	values := make([]T, h.Count)
	if err := c.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("codec %s unmarshal failed: %w", h.Codec, err)
	}
	if len(values) != h.Count {
		return nil, fmt.Errorf("%w: decoded %d elements, header says %d", ErrSizeMismatch, len(values), h.Count)
	}

	return smolvec.Of(values...), nil
}
