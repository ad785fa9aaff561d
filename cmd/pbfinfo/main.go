// Command pbfinfo summarizes the blob stream of one or more PBF files.
//
// Usage:
//
//	pbfinfo [-jobs N] file.osm.pbf [https://mirror/extract.osm.pbf ...]
//
// Remote arguments are read over HTTP range requests without downloading
// the whole file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	mapsterhttp "github.com/milovanarsul/mapster/http"
	"github.com/milovanarsul/mapster/pbf"
)

type summary struct {
	path       string
	size       int64
	headers    int
	primitives int
	payload    int64
	zlib       int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pbfinfo: ")

	jobs := flag.Int("jobs", runtime.NumCPU(), "maximum files scanned concurrently")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		log.Fatal("no input files")
	}

	summaries := make([]*summary, len(paths))
	var g errgroup.Group
	g.SetLimit(*jobs)
	for i, path := range paths {
		g.Go(func() error {
			s, err := scan(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	for _, s := range summaries {
		s.print(os.Stdout)
	}
}

func scan(path string) (*summary, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tr, err := src.Traverse()
	if err != nil {
		return nil, err
	}
	defer tr.Close()

	s := &summary{path: path, size: src.Size()}
	for b, err := range tr.All() {
		if err != nil {
			return nil, err
		}
		switch b.Kind {
		case pbf.KindHeader:
			s.headers++
		case pbf.KindPrimitive:
			s.primitives++
		}
		if b.Codec == pbf.CodecZlib {
			s.zlib++
		}
		s.payload += int64(len(b.Payload))
	}
	return s, nil
}

func openSource(path string) (*pbf.Source, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		remote, err := mapsterhttp.NewSource(path)
		if err != nil {
			return nil, err
		}
		return pbf.OpenReaderAt(remote, remote.Size())
	}
	return pbf.Open(path)
}

func (s *summary) print(w io.Writer) {
	fmt.Fprintf(w, "%s\n", s.path)
	fmt.Fprintf(w, "  size        %d bytes\n", s.size)
	fmt.Fprintf(w, "  blobs       %d header, %d primitive\n", s.headers, s.primitives)
	fmt.Fprintf(w, "  payload     %d bytes stored (%d blobs zlib)\n", s.payload, s.zlib)
}
