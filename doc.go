// Package mapster provides tooling for working with OpenStreetMap data,
// starting with a streaming reader for the PBF container format.
//
// The root package re-exports the [pbf] core so common use needs a single
// import:
//
//	src, err := mapster.Open("extract.osm.pbf")
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
//	    if b.Kind != mapster.KindPrimitive {
//	        continue
//	    }
//	    data, err := b.Uncompressed()
//	    ...
//	}
//
// Remote extracts can be traversed without downloading them via the [http]
// subpackage and OpenReaderAt.
package mapster
