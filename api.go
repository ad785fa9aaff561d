package mapster

import (
	"io"

	"github.com/milovanarsul/mapster/pbf"
)

// Open opens the PBF file at path. See pbf.Open.
func Open(path string) (*Source, error) {
	return pbf.Open(path)
}

// OpenReaderAt exposes an arbitrary random-access region as a Source,
// for example an http.Source over a remote extract. See pbf.OpenReaderAt.
func OpenReaderAt(r io.ReaderAt, size int64) (*Source, error) {
	return pbf.OpenReaderAt(r, size)
}
