package pbf

import (
	"fmt"
	"io"
	"os"
)

// mapping is a read-only, randomly addressable byte region of known size.
// view returns the bytes at [off, off+length); callers bounds-check first.
type mapping interface {
	view(off, length int64) ([]byte, error)
	size() int64
	close() error
}

// readerAtMapping adapts an io.ReaderAt to the mapping interface.
// Each view allocates; the framing reader caps view lengths at MaxBlobSize.
type readerAtMapping struct {
	r io.ReaderAt
	n int64
	c io.Closer
}

func (m *readerAtMapping) view(off, length int64) ([]byte, error) {
	p := make([]byte, length)
	n, err := m.r.ReadAt(p, off)
	if n < len(p) {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("read %d bytes at %d: %w", length, off, err)
	}
	return p, nil
}

func (m *readerAtMapping) size() int64 { return m.n }

func (m *readerAtMapping) close() error {
	if m.c == nil {
		return nil
	}
	c := m.c
	m.c = nil
	return c.Close()
}

// Source is an open PBF file exposed as a read-only byte region.
//
// The region is safely shared by any number of Traversals; each owns its own
// cursor and there is no mutable state between them. Source must outlive the
// Traversals derived from it: Close invalidates their view of the bytes.
//
// Source methods are not safe for concurrent use with Close.
type Source struct {
	m      mapping
	closed bool
}

// Open opens the PBF file at path.
//
// On Unix the file is memory-mapped, so traversal touches only the pages a
// record actually occupies. Elsewhere it falls back to positional reads.
// The returned Source must be closed to release the mapping.
func Open(path string) (*Source, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("open pbf: %w", err)
	}

	m, err := newFileMapping(f)
	if err != nil {
		return nil, fmt.Errorf("map pbf %s: %w", path, err)
	}
	return &Source{m: m}, nil
}

// OpenReaderAt exposes an arbitrary random-access region as a Source,
// for example an http.Source over a remote extract. Closing the Source
// does not close r.
func OpenReaderAt(r io.ReaderAt, size int64) (*Source, error) {
	if size < 0 {
		return nil, fmt.Errorf("open pbf: negative size %d", size)
	}
	return &Source{m: &readerAtMapping{r: r, n: size}}, nil
}

// Size returns the total length of the byte region.
func (s *Source) Size() int64 {
	return s.m.size()
}

// Traverse starts an independent, restartable traversal positioned at the
// first record. Any number of traversals may be live at once.
func (s *Source) Traverse() (*Traversal, error) {
	if s.closed {
		return nil, ErrClosed
	}
	return &Traversal{cur: &cursor{src: s}}, nil
}

// Close releases the byte region. Close is idempotent. Traversals created
// from s fail with ErrClosed afterwards.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.m.close()
}
