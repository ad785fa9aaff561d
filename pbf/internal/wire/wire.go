// Package wire decodes the two fileformat messages that frame every record
// in a PBF stream: BlobHeader and Blob.
//
// Both messages are tiny and frozen by the format, so they are decoded
// directly with protowire instead of generated code. Byte fields alias the
// input buffer; callers that retain them past the buffer's lifetime must copy.
package wire

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers from fileformat.proto.
const (
	headerFieldType      = 1
	headerFieldIndexData = 2
	headerFieldDataSize  = 3

	blobFieldRaw     = 1
	blobFieldRawSize = 2
	blobFieldZlib    = 3
	blobFieldLZMA    = 4
	blobFieldBzip2   = 5
	blobFieldLZ4     = 6
	blobFieldZstd    = 7
)

// Sentinel errors for structurally valid messages missing required fields.
var (
	ErrMissingType     = errors.New("wire: blob header missing type")
	ErrMissingDataSize = errors.New("wire: blob header missing datasize")
)

// Codec identifies which payload variant a Blob message carried.
type Codec uint8

const (
	CodecNone Codec = iota
	CodecRaw
	CodecZlib
	CodecLZMA
	CodecBzip2
	CodecLZ4
	CodecZstd
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecRaw:
		return "raw"
	case CodecZlib:
		return "zlib"
	case CodecLZMA:
		return "lzma"
	case CodecBzip2:
		return "bzip2"
	case CodecLZ4:
		return "lz4"
	case CodecZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// BlobHeader mirrors the fileformat BlobHeader message.
//
// IndexData aliases the input buffer. The format attaches it for seek
// indexes; readers of the blob stream discard it.
type BlobHeader struct {
	Type      string
	IndexData []byte
	DataSize  int32
}

// UnmarshalBlobHeader decodes a BlobHeader from buf.
// Unknown fields are skipped; type and datasize are required.
func UnmarshalBlobHeader(buf []byte) (BlobHeader, error) {
	var h BlobHeader
	var hasType, hasSize bool

	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return h, protowire.ParseError(n)
		}
		buf = buf[n:]

		switch {
		case num == headerFieldType && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return h, protowire.ParseError(n)
			}
			h.Type = string(v)
			hasType = true
			buf = buf[n:]
		case num == headerFieldIndexData && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return h, protowire.ParseError(n)
			}
			h.IndexData = v
			buf = buf[n:]
		case num == headerFieldDataSize && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return h, protowire.ParseError(n)
			}
			h.DataSize = int32(v) //nolint:gosec // proto int32 semantics: truncating the varint is the defined decoding
			hasSize = true
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return h, protowire.ParseError(n)
			}
			buf = buf[n:]
		}
	}

	if !hasType {
		return h, ErrMissingType
	}
	if !hasSize {
		return h, ErrMissingDataSize
	}
	return h, nil
}

// BlobBody is the decoded payload container: a tagged union over the
// compression variants the format defines. Data aliases the input buffer.
//
// Codec is CodecNone when no payload variant was present. RawSize is the
// declared uncompressed size, zero when absent.
type BlobBody struct {
	Codec   Codec
	Data    []byte
	RawSize int32
}

// UnmarshalBlobBody decodes a Blob message from buf.
// When several payload variants are present the last one wins, matching
// proto semantics for non-repeated fields.
func UnmarshalBlobBody(buf []byte) (BlobBody, error) {
	var b BlobBody

	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return b, protowire.ParseError(n)
		}
		buf = buf[n:]

		if num == blobFieldRawSize && typ == protowire.VarintType {
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return b, protowire.ParseError(n)
			}
			b.RawSize = int32(v) //nolint:gosec // proto int32 semantics
			buf = buf[n:]
			continue
		}

		codec := codecForField(num)
		if codec == CodecNone || typ != protowire.BytesType {
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return b, protowire.ParseError(n)
			}
			buf = buf[n:]
			continue
		}

		v, n := protowire.ConsumeBytes(buf)
		if n < 0 {
			return b, protowire.ParseError(n)
		}
		b.Codec = codec
		b.Data = v
		buf = buf[n:]
	}

	return b, nil
}

func codecForField(num protowire.Number) Codec {
	switch num {
	case blobFieldRaw:
		return CodecRaw
	case blobFieldZlib:
		return CodecZlib
	case blobFieldLZMA:
		return CodecLZMA
	case blobFieldBzip2:
		return CodecBzip2
	case blobFieldLZ4:
		return CodecLZ4
	case blobFieldZstd:
		return CodecZstd
	default:
		return CodecNone
	}
}
