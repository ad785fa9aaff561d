// Package pbf implements a streaming, bounds-checked reader for the PBF
// container format: a sequence of length-prefixed records, each a small
// header message followed by a payload that is raw or zlib-compressed.
//
// The reader never buffers the whole file. On Unix the file is memory-mapped
// and records are decoded against zero-copy views of the mapping; elsewhere
// records are read positionally. Either way, every declared size is checked
// against a hard ceiling (MaxHeaderSize, MaxBlobSize) before any allocation
// proportional to it, so corrupt or hostile inputs cannot force unbounded
// memory use.
//
// Traverse a file:
//
//	src, err := pbf.Open("planet.osm.pbf")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	tr, err := src.Traverse()
//	if err != nil {
//	    return err
//	}
//	defer tr.Close()
//
//	for b, err := range tr.All() {
//	    if err != nil {
//	        return err
//	    }
//	    data, err := b.Uncompressed()
//	    ...
//	}
//
// A Source supports any number of independent, restartable traversals.
// Framing errors are terminal for their traversal: the format has no
// resynchronization point, so a misread length prefix cannot be skipped.
package pbf
