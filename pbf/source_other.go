//go:build !unix

package pbf

import (
	"fmt"
	"os"
)

// newFileMapping takes ownership of f. Without mmap the file stays open and
// each record is read positionally; allocations remain bounded because the
// framing reader caps every view at MaxBlobSize.
func newFileMapping(f *os.File) (mapping, error) {
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat: %w", err)
	}
	return &readerAtMapping{r: f, n: info.Size(), c: f}, nil
}
