package pbf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/milovanarsul/mapster/pbf/internal/wire"
)

// Size ceilings from the PBF format. Both are enforced before any
// allocation proportional to the declared size, so a corrupt or hostile
// file cannot force unbounded memory use per record.
const (
	// MaxHeaderSize is the exclusive bound on an encoded BlobHeader message.
	MaxHeaderSize = 64 * 1024

	// MaxBlobSize is the exclusive bound on an encoded Blob message.
	MaxBlobSize = 32 * 1024 * 1024
)

// readBlob consumes one record from cur and returns it decoded and
// classified. Returns io.EOF exactly at the end of the region. On success
// the cursor rests at the start of the next record; every record accounts
// for exactly 4 + headerLen + dataSize bytes.
func readBlob(cur *cursor) (*Blob, error) {
	rem := cur.remaining()
	if rem == 0 {
		return nil, io.EOF
	}
	if rem < 4 {
		return nil, fmt.Errorf("%w: %d trailing bytes at offset %d", ErrTruncatedLengthPrefix, rem, cur.pos)
	}

	p, err := cur.window(4)
	if err != nil {
		return nil, err
	}
	headerLen := int64(binary.BigEndian.Uint32(p))
	if headerLen >= MaxHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerLen)
	}
	if cur.remaining() < headerLen {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedHeader, headerLen, cur.remaining())
	}

	hb, err := cur.window(headerLen)
	if err != nil {
		return nil, err
	}
	header, err := wire.UnmarshalBlobHeader(hb)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeaderDecode, err)
	}

	dataSize := int64(header.DataSize)
	if dataSize < 0 || dataSize >= MaxBlobSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrBlobTooLarge, dataSize)
	}
	if cur.remaining() < dataSize {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedPayload, dataSize, cur.remaining())
	}

	bb, err := cur.window(dataSize)
	if err != nil {
		return nil, err
	}
	body, err := wire.UnmarshalBlobBody(bb)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBlobDecode, err)
	}

	var kind Kind
	switch header.Type {
	case "OSMHeader":
		kind = KindHeader
	case "OSMData":
		kind = KindPrimitive
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlobType, header.Type)
	}

	switch body.Codec {
	case wire.CodecRaw, wire.CodecZlib:
		// supported
	case wire.CodecNone:
		return nil, fmt.Errorf("%w: offset %d", ErrEmptyPayload, cur.pos-dataSize)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, body.Codec)
	}

	return &Blob{
		Kind: kind,
		// Readers of this format have always reported the flag set for raw
		// payloads too; kept as-is so downstream behavior does not shift.
		Compressed: true,
		Codec:      codecOf(body.Codec),
		RawSize:    body.RawSize,
		// body.Data aliases the mapped region; the Blob owns a copy so it
		// stays valid after the Source is closed.
		Payload: bytes.Clone(body.Data),
	}, nil
}
