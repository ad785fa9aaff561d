package pbf

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milovanarsul/mapster/internal/pbftest"
)

// writeTestFile writes a synthetic stream to disk and opens it, exercising
// the real file mapping.
func writeTestFile(t *testing.T, stream []byte) *Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.osm.pbf")
	require.NoError(t, os.WriteFile(path, stream, 0o644))

	src, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	stream := testStream(3)
	src := writeTestFile(t, stream)
	assert.Equal(t, int64(len(stream)), src.Size())

	got, err := drain(traverse(t, src))
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestOpenEmptyFile(t *testing.T) {
	t.Parallel()

	src := writeTestFile(t, nil)
	assert.Zero(t, src.Size())

	_, err := traverse(t, src).Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "absent.osm.pbf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenReaderAtNegativeSize(t *testing.T) {
	t.Parallel()

	_, err := OpenReaderAt(nil, -1)
	assert.Error(t, err)
}

func TestSourceClose(t *testing.T) {
	t.Parallel()

	src := writeTestFile(t, testStream(1))
	tr := traverse(t, src)

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())

	_, err := src.Traverse()
	assert.ErrorIs(t, err, ErrClosed)

	// A live traversal notices the closed source instead of touching a
	// released mapping.
	_, err = tr.Next()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestBlobOutlivesSource(t *testing.T) {
	t.Parallel()

	src := writeTestFile(t, pbftest.HeaderRecord("OSMData", pbftest.RawBody([]byte("keepme"))))
	b, err := traverse(t, src).Next()
	require.NoError(t, err)

	require.NoError(t, src.Close())
	assert.Equal(t, []byte("keepme"), b.Payload)
}
