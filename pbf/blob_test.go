package pbf

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milovanarsul/mapster/internal/pbftest"
)

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestUncompressedRaw(t *testing.T) {
	t.Parallel()

	b := &Blob{Codec: CodecRaw, Payload: []byte("as-is")}
	got, err := b.Uncompressed()
	require.NoError(t, err)
	assert.Equal(t, []byte("as-is"), got)
}

func TestUncompressedZlib(t *testing.T) {
	t.Parallel()

	want := bytes.Repeat([]byte("node"), 250)
	b := &Blob{
		Codec:   CodecZlib,
		RawSize: int32(len(want)),
		Payload: compress(t, want),
	}
	got, err := b.Uncompressed()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUncompressedEndToEnd(t *testing.T) {
	t.Parallel()

	want := bytes.Repeat([]byte("dense"), 500)
	tr := traverse(t, openStream(t, pbftest.HeaderRecord("OSMData", pbftest.ZlibBody(want))))

	b, err := tr.Next()
	require.NoError(t, err)
	require.Equal(t, CodecZlib, b.Codec)

	got, err := b.Uncompressed()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUncompressedSizeMismatch(t *testing.T) {
	t.Parallel()

	data := []byte("twenty bytes of data")

	t.Run("declared too large", func(t *testing.T) {
		t.Parallel()
		b := &Blob{Codec: CodecZlib, RawSize: int32(len(data)) + 1, Payload: compress(t, data)}
		_, err := b.Uncompressed()
		assert.ErrorIs(t, err, ErrInflateSize)
	})

	t.Run("declared too small", func(t *testing.T) {
		t.Parallel()
		b := &Blob{Codec: CodecZlib, RawSize: int32(len(data)) - 1, Payload: compress(t, data)}
		_, err := b.Uncompressed()
		assert.ErrorIs(t, err, ErrInflateSize)
	})
}

func TestUncompressedDeclaredSizeBounds(t *testing.T) {
	t.Parallel()

	t.Run("negative", func(t *testing.T) {
		t.Parallel()
		b := &Blob{Codec: CodecZlib, RawSize: -1, Payload: []byte("x")}
		_, err := b.Uncompressed()
		assert.ErrorIs(t, err, ErrBlobTooLarge)
	})

	t.Run("at ceiling", func(t *testing.T) {
		t.Parallel()
		// Rejected before any allocation proportional to the declared size.
		b := &Blob{Codec: CodecZlib, RawSize: MaxBlobSize, Payload: []byte("x")}
		_, err := b.Uncompressed()
		assert.ErrorIs(t, err, ErrBlobTooLarge)
	})
}

func TestUncompressedCorruptStream(t *testing.T) {
	t.Parallel()

	b := &Blob{Codec: CodecZlib, RawSize: 4, Payload: []byte("not zlib at all")}
	_, err := b.Uncompressed()
	assert.ErrorIs(t, err, ErrInflate)
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "header", KindHeader.String())
	assert.Equal(t, "primitive", KindPrimitive.String())
	assert.Equal(t, "raw", CodecRaw.String())
	assert.Equal(t, "zlib", CodecZlib.String())
}
