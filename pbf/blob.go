package pbf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/milovanarsul/mapster/pbf/internal/wire"
)

// Kind classifies a blob by its header type string.
type Kind uint8

const (
	// KindHeader is a file header blob ("OSMHeader").
	KindHeader Kind = iota

	// KindPrimitive is a primitive data blob ("OSMData").
	KindPrimitive
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindPrimitive:
		return "primitive"
	default:
		return "unknown"
	}
}

// Codec identifies the compression applied to a blob payload.
type Codec uint8

const (
	CodecRaw Codec = iota
	CodecZlib
)

func (c Codec) String() string {
	switch c {
	case CodecRaw:
		return "raw"
	case CodecZlib:
		return "zlib"
	default:
		return "unknown"
	}
}

// Blob is one decoded, classified record from a PBF stream.
//
// A Blob owns its payload bytes and is immutable once produced; it remains
// valid after its Traversal or Source is closed.
type Blob struct {
	// Kind classifies the record by its header type string.
	Kind Kind

	// Compressed mirrors the flag as readers of this format have historically
	// reported it: set for zlib and raw payloads alike. Use Codec for the
	// actual encoding.
	Compressed bool

	// Codec is the payload's actual encoding.
	Codec Codec

	// RawSize is the uncompressed payload size the container declared,
	// zero when absent. Raw payloads may omit it.
	RawSize int32

	// Payload is the payload bytes as stored: compressed for CodecZlib.
	Payload []byte
}

// Uncompressed returns the payload with any compression undone.
//
// Raw payloads are returned as-is, without copying. Zlib payloads are
// inflated to exactly RawSize bytes; the declared size is validated against
// MaxBlobSize before any allocation, and against the actual inflated length
// after, so a corrupt container cannot force unbounded memory use.
func (b *Blob) Uncompressed() ([]byte, error) {
	switch b.Codec {
	case CodecRaw:
		return b.Payload, nil
	case CodecZlib:
		return b.inflate()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, b.Codec)
	}
}

func (b *Blob) inflate() ([]byte, error) {
	if b.RawSize < 0 || int64(b.RawSize) >= MaxBlobSize {
		return nil, fmt.Errorf("%w: declared raw size %d", ErrBlobTooLarge, b.RawSize)
	}

	zr, err := zlib.NewReader(bytes.NewReader(b.Payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInflate, err)
	}
	defer zr.Close()

	out := make([]byte, b.RawSize)
	if _, err := io.ReadFull(zr, out); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, fmt.Errorf("%w: inflated stream shorter than declared %d bytes", ErrInflateSize, b.RawSize)
		}
		return nil, fmt.Errorf("%w: %w", ErrInflate, err)
	}

	// The stream must end exactly at RawSize.
	var one [1]byte
	if n, _ := zr.Read(one[:]); n != 0 {
		return nil, fmt.Errorf("%w: inflated stream exceeds declared %d bytes", ErrInflateSize, b.RawSize)
	}
	return out, nil
}

func codecOf(c wire.Codec) Codec {
	if c == wire.CodecZlib {
		return CodecZlib
	}
	return CodecRaw
}
