package mapster

import "github.com/milovanarsul/mapster/pbf"

// Errors re-exported from pbf.
var (
	// ErrTruncatedLengthPrefix is returned when fewer than four bytes remain
	// where a record length prefix is expected.
	ErrTruncatedLengthPrefix = pbf.ErrTruncatedLengthPrefix

	// ErrHeaderTooLarge is returned when a length prefix exceeds MaxHeaderSize.
	ErrHeaderTooLarge = pbf.ErrHeaderTooLarge

	// ErrTruncatedHeader is returned when the stream ends inside a header message.
	ErrTruncatedHeader = pbf.ErrTruncatedHeader

	// ErrHeaderDecode is returned when a header message fails to decode.
	ErrHeaderDecode = pbf.ErrHeaderDecode

	// ErrBlobTooLarge is returned when a declared payload size exceeds MaxBlobSize.
	ErrBlobTooLarge = pbf.ErrBlobTooLarge

	// ErrTruncatedPayload is returned when the stream ends inside a blob payload.
	ErrTruncatedPayload = pbf.ErrTruncatedPayload

	// ErrBlobDecode is returned when a blob message fails to decode.
	ErrBlobDecode = pbf.ErrBlobDecode

	// ErrUnknownBlobType is returned when a header carries an unrecognized type string.
	ErrUnknownBlobType = pbf.ErrUnknownBlobType

	// ErrEmptyPayload is returned when a blob carries no payload variant.
	ErrEmptyPayload = pbf.ErrEmptyPayload

	// ErrUnsupportedCompression is returned when a payload uses a recognized
	// but unconsumed codec.
	ErrUnsupportedCompression = pbf.ErrUnsupportedCompression

	// ErrInflate is returned when zlib decompression fails.
	ErrInflate = pbf.ErrInflate

	// ErrInflateSize is returned when inflated data does not match the
	// declared uncompressed size.
	ErrInflateSize = pbf.ErrInflateSize

	// ErrClosed is returned when a Source or Traversal is used after Close.
	ErrClosed = pbf.ErrClosed
)
