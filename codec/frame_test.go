package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplysabir/smolvec"
	"github.com/simplysabir/smolvec/testutil"
)

func TestFrame_RoundTrip(t *testing.T) {
	codecs := []Codec{JSON{}, GoJSON{}, Binary{}}
	compressions := []Compression{CompressionNone, CompressionLZ4, CompressionZSTD}

	for _, c := range codecs {
		for _, comp := range compressions {
			for _, n := range testutil.BoundarySizes(smolvec.InlineCapacity) {
				v := smolvec.New[int64]()
				for i := range n {
					v.Push(int64(i % 7))
				}

				data, err := Marshal(v, WithCodec(c), WithCompression(comp))
				require.NoError(t, err, "%s/%s/n=%d", c.Name(), comp, n)

				got, err := Unmarshal[int64](data)
				require.NoError(t, err, "%s/%s/n=%d", c.Name(), comp, n)
				assert.True(t, smolvec.Equal(v, got), "%s/%s/n=%d", c.Name(), comp, n)
				assert.Equal(t, n > smolvec.InlineCapacity, got.Spilled())
			}
		}
	}
}

func TestFrame_Header(t *testing.T) {
	v := smolvec.New[uint32]()
	for range 256 {
		v.Push(1)
	}

	data, err := Marshal(v, WithCodec(Binary{}), WithCompression(CompressionZSTD))
	require.NoError(t, err)

	h, payload, err := ReadHeader(data)
	require.NoError(t, err)
	assert.Equal(t, "binary", h.Codec)
	assert.Equal(t, CompressionZSTD, h.Compression)
	assert.Equal(t, 256, h.Count)
	assert.Equal(t, 1024, h.RawSize)
	assert.Len(t, payload, h.StoredSize)
	assert.Positive(t, h.StoredSize)
}

func TestFrame_DefaultCodec(t *testing.T) {
	data, err := Marshal(smolvec.Of("a", "b"))
	require.NoError(t, err)

	h, _, err := ReadHeader(data)
	require.NoError(t, err)
	assert.Equal(t, Default.Name(), h.Codec)
	assert.Equal(t, CompressionNone, h.Compression)
	assert.Zero(t, h.StoredSize)

	got, err := Unmarshal[string](data, WithCodec(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Slice())
}

func TestFrame_Errors(t *testing.T) {
	valid, err := Marshal(smolvec.Of(1, 2, 3), WithCodec(JSON{}))
	require.NoError(t, err)

	t.Run("bad magic", func(t *testing.T) {
		_, err := Unmarshal[int]([]byte("nope, not a frame at all"))
		assert.ErrorIs(t, err, ErrInvalidFrame)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := Unmarshal[int](valid[:len(valid)-1])
		assert.ErrorIs(t, err, ErrInvalidFrame)
	})

	t.Run("unknown codec", func(t *testing.T) {
		frame := append([]byte(nil), valid...)
		copy(frame[6:], "nosj")
		_, err := Unmarshal[int](frame)
		assert.ErrorIs(t, err, ErrUnknownCodec)
	})

	t.Run("count mismatch", func(t *testing.T) {
		frame := append([]byte(nil), valid...)
		off := 6 + len("json")
		binary.LittleEndian.PutUint32(frame[off:], 2)
		_, err := Unmarshal[int](frame)
		assert.ErrorIs(t, err, ErrSizeMismatch)
	})

	t.Run("implausible count", func(t *testing.T) {
		frame := append([]byte(nil), valid...)
		off := 6 + len("json")
		binary.LittleEndian.PutUint32(frame[off:], 1<<30)
		_, err := Unmarshal[int](frame)
		assert.ErrorIs(t, err, ErrInvalidFrame)
	})

	t.Run("size limit", func(t *testing.T) {
		_, err := Unmarshal[int](valid, WithMaxDecodedSize(2))
		assert.ErrorIs(t, err, ErrInvalidFrame)
	})

	t.Run("element type mismatch", func(t *testing.T) {
		_, err := Unmarshal[string](valid)
		assert.Error(t, err)
	})

	t.Run("binary needs fixed size elements", func(t *testing.T) {
		_, err := Marshal(smolvec.Of(1), WithCodec(Binary{}))
		assert.Error(t, err)
	})
}

// rawFrame builds an uncompressed frame around payload with the given
// header count, bypassing Marshal.
func rawFrame(codecName string, count int, payload []byte) []byte {
	out := append([]byte(nil), frameMagic[:]...)
	out = append(out, byte(CompressionNone), byte(len(codecName)))
	out = append(out, codecName...)
	out = binary.LittleEndian.AppendUint32(out, uint32(count))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	out = binary.LittleEndian.AppendUint32(out, 0)
	return append(out, payload...)
}

func TestFrame_ElementMemoryLimit(t *testing.T) {
	// 4 KiB on the wire, but 4096 elements of 64 KiB each decode to 256 MiB.
	frame := rawFrame("binary", 4096, make([]byte, 4096))

	t.Run("large elements", func(t *testing.T) {
		_, err := Unmarshal[[1 << 16]byte](frame)
		assert.ErrorIs(t, err, ErrInvalidFrame)
	})

	t.Run("custom limit", func(t *testing.T) {
		// 4096 elements of 16 bytes need 64 KiB.
		_, err := Unmarshal[[16]byte](frame, WithMaxDecodedSize(32<<10))
		assert.ErrorIs(t, err, ErrInvalidFrame)
	})

	t.Run("within limit", func(t *testing.T) {
		got, err := Unmarshal[byte](frame)
		require.NoError(t, err)
		assert.Equal(t, 4096, got.Len())
	})
}
