package mapster

import "github.com/milovanarsul/mapster/pbf"

// --- Re-exports from pbf ---

// Source is an open PBF file exposed as a read-only byte region.
type Source = pbf.Source

// Traversal is a forward-only, restartable pass over a Source's blobs.
type Traversal = pbf.Traversal

// Blob is one decoded, classified record from a PBF stream.
type Blob = pbf.Blob

// Kind classifies a blob by its header type string.
type Kind = pbf.Kind

// Codec identifies the compression applied to a blob payload.
type Codec = pbf.Codec

// Kind constants.
const (
	KindHeader    = pbf.KindHeader
	KindPrimitive = pbf.KindPrimitive
)

// Codec constants.
const (
	CodecRaw  = pbf.CodecRaw
	CodecZlib = pbf.CodecZlib
)

// Size ceilings enforced on every record.
const (
	MaxHeaderSize = pbf.MaxHeaderSize
	MaxBlobSize   = pbf.MaxBlobSize
)
