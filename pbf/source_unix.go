//go:build unix

package pbf

import (
	"fmt"
	"math"
	"os"
	"syscall"
)

// fileMapping memory-maps a file read-only. The descriptor is closed once
// the mapping exists; the mapping keeps the pages alive on its own.
type fileMapping struct {
	data []byte
}

// newFileMapping takes ownership of f and always closes it.
func newFileMapping(f *os.File) (mapping, error) {
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}
	size := info.Size()
	if size == 0 {
		// mmap rejects zero-length regions; an empty file needs no mapping.
		return &fileMapping{}, nil
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("file size %d exceeds address space", size)
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	return &fileMapping{data: data}, nil
}

// view returns a slice aliasing the mapped region. Zero-copy; the capacity
// is clipped so the deserializer cannot grow into the next record.
func (m *fileMapping) view(off, length int64) ([]byte, error) {
	return m.data[off : off+length : off+length], nil
}

func (m *fileMapping) size() int64 { return int64(len(m.data)) }

func (m *fileMapping) close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	return syscall.Munmap(data)
}
