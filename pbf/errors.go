package pbf

import "errors"

// Sentinel errors. Framing and validation failures wrap these with detail;
// match with errors.Is. Every framing error is fatal to its Traversal: the
// format has no resynchronization point once a length prefix is misread.
var (
	// ErrTruncatedLengthPrefix is returned when fewer than four bytes remain
	// where a record length prefix is expected.
	ErrTruncatedLengthPrefix = errors.New("pbf: truncated length prefix")

	// ErrHeaderTooLarge is returned when a length prefix exceeds MaxHeaderSize.
	ErrHeaderTooLarge = errors.New("pbf: header too large")

	// ErrTruncatedHeader is returned when the stream ends inside a header message.
	ErrTruncatedHeader = errors.New("pbf: truncated header")

	// ErrHeaderDecode is returned when a header message fails to decode.
	ErrHeaderDecode = errors.New("pbf: header decode failed")

	// ErrBlobTooLarge is returned when a declared payload size exceeds MaxBlobSize.
	ErrBlobTooLarge = errors.New("pbf: blob too large")

	// ErrTruncatedPayload is returned when the stream ends inside a blob payload.
	ErrTruncatedPayload = errors.New("pbf: truncated blob payload")

	// ErrBlobDecode is returned when a blob message fails to decode.
	ErrBlobDecode = errors.New("pbf: blob decode failed")

	// ErrUnknownBlobType is returned when a header carries a type string other
	// than the two the format defines.
	ErrUnknownBlobType = errors.New("pbf: unknown blob type")

	// ErrEmptyPayload is returned when a blob message carries no payload variant.
	ErrEmptyPayload = errors.New("pbf: empty blob payload")

	// ErrUnsupportedCompression is returned when a payload uses a codec the
	// reader recognizes but does not consume.
	ErrUnsupportedCompression = errors.New("pbf: unsupported compression")

	// ErrInflate is returned when zlib decompression fails.
	ErrInflate = errors.New("pbf: zlib inflate failed")

	// ErrInflateSize is returned when inflated data does not match the
	// blob's declared uncompressed size.
	ErrInflateSize = errors.New("pbf: inflated size mismatch")

	// ErrClosed is returned when a Source or Traversal is used after Close.
	ErrClosed = errors.New("pbf: use after close")
)
