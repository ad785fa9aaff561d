package pbf

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/milovanarsul/mapster/internal/pbftest"
)

func testStream(n int) []byte {
	records := [][]byte{
		pbftest.HeaderRecord("OSMHeader", pbftest.RawBody([]byte("header"))),
	}
	for i := range n {
		records = append(records, pbftest.HeaderRecord("OSMData", pbftest.RawBody(bytes.Repeat([]byte{byte(i)}, i+1))))
	}
	return pbftest.File(records...)
}

// drain collects every payload until end of stream.
func drain(tr *Traversal) ([][]byte, error) {
	var got [][]byte
	for {
		b, err := tr.Next()
		if err == io.EOF {
			return got, nil
		}
		if err != nil {
			return got, err
		}
		got = append(got, b.Payload)
	}
}

func TestResetReplaysIdenticalSequence(t *testing.T) {
	t.Parallel()

	tr := traverse(t, openStream(t, testStream(5)))

	first, err := drain(tr)
	require.NoError(t, err)
	require.Len(t, first, 6)

	require.NoError(t, tr.Reset())

	second, err := drain(tr)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResetMidStream(t *testing.T) {
	t.Parallel()

	tr := traverse(t, openStream(t, testStream(5)))

	for range 3 {
		_, err := tr.Next()
		require.NoError(t, err)
	}
	require.NoError(t, tr.Reset())

	b, err := tr.Next()
	require.NoError(t, err)
	assert.Equal(t, KindHeader, b.Kind)
}

func TestCloseIsTerminalAndIdempotent(t *testing.T) {
	t.Parallel()

	tr := traverse(t, openStream(t, testStream(2)))

	_, err := tr.Next()
	require.NoError(t, err)

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	_, err = tr.Next()
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, tr.Reset(), ErrClosed)
}

func TestCloseAfterFailedRead(t *testing.T) {
	t.Parallel()

	stream := pbftest.HeaderRecord("bogus", pbftest.RawBody([]byte("x")))
	tr := traverse(t, openStream(t, stream))

	_, err := tr.Next()
	require.ErrorIs(t, err, ErrUnknownBlobType)

	assert.NoError(t, tr.Close())
}

func TestConcurrentTraversals(t *testing.T) {
	t.Parallel()

	src := openStream(t, testStream(50))
	want, err := drain(traverse(t, src))
	require.NoError(t, err)

	var g errgroup.Group
	for range 4 {
		tr, err := src.Traverse()
		require.NoError(t, err)
		g.Go(func() error {
			defer tr.Close()
			got, err := drain(tr)
			if err != nil {
				return err
			}
			if !assert.ObjectsAreEqual(want, got) {
				t.Errorf("traversal diverged: got %d blobs", len(got))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestAllIterator(t *testing.T) {
	t.Parallel()

	t.Run("yields every blob then stops", func(t *testing.T) {
		t.Parallel()
		tr := traverse(t, openStream(t, testStream(4)))

		var count int
		for b, err := range tr.All() {
			require.NoError(t, err)
			require.NotNil(t, b)
			count++
		}
		assert.Equal(t, 5, count)
	})

	t.Run("yields the failure last", func(t *testing.T) {
		t.Parallel()
		stream := pbftest.File(
			pbftest.HeaderRecord("OSMData", pbftest.RawBody([]byte("ok"))),
			[]byte{0x00, 0x01, 0x00, 0x00},
		)
		tr := traverse(t, openStream(t, stream))

		var blobs, failures int
		for b, err := range tr.All() {
			if err != nil {
				assert.ErrorIs(t, err, ErrHeaderTooLarge)
				assert.Nil(t, b)
				failures++
				continue
			}
			blobs++
		}
		assert.Equal(t, 1, blobs)
		assert.Equal(t, 1, failures)
	})
}
