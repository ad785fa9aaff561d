// Package pbftest builds synthetic PBF byte streams for tests.
package pbftest

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zlib"
	"google.golang.org/protobuf/encoding/protowire"
)

// Blob message payload fields from fileformat.proto, exported so tests can
// build unsupported-codec records.
const (
	FieldRaw   protowire.Number = 1
	FieldZlib  protowire.Number = 3
	FieldLZMA  protowire.Number = 4
	FieldBzip2 protowire.Number = 5
	FieldLZ4   protowire.Number = 6
	FieldZstd  protowire.Number = 7
)

// Header encodes a BlobHeader message with the given type and datasize.
func Header(typ string, dataSize int32) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, typ)
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(int64(dataSize)))
	return b
}

// HeaderExact encodes a BlobHeader padded with indexdata so the encoded
// message is exactly total bytes long. Panics when total is too small to
// hold the type and datasize fields.
func HeaderExact(typ string, dataSize int32, total int) []byte {
	b := Header(typ, dataSize)
	if len(b) == total {
		return b
	}
	for k := 0; ; k++ {
		n := len(b) + protowire.SizeTag(2) + protowire.SizeBytes(k)
		if n == total {
			b = protowire.AppendTag(b, 2, protowire.BytesType)
			return protowire.AppendBytes(b, make([]byte, k))
		}
		if n > total {
			panic(fmt.Sprintf("pbftest: cannot pad header to %d bytes", total))
		}
	}
}

// Body encodes a Blob message holding data under the given payload field.
func Body(field protowire.Number, data []byte) []byte {
	var b []byte
	b = protowire.AppendTag(b, field, protowire.BytesType)
	return protowire.AppendBytes(b, data)
}

// RawBody encodes a Blob message with a raw payload.
func RawBody(data []byte) []byte {
	return Body(FieldRaw, data)
}

// RawBodyExact encodes a Blob message with a raw payload sized so the whole
// encoded message is exactly total bytes long.
func RawBodyExact(total int) []byte {
	for k := max(0, total-16); ; k++ {
		n := protowire.SizeTag(FieldRaw) + protowire.SizeBytes(k)
		if n == total {
			return RawBody(make([]byte, k))
		}
		if n > total {
			panic(fmt.Sprintf("pbftest: cannot size raw body to %d bytes", total))
		}
	}
}

// ZlibBody encodes a Blob message with data zlib-compressed and raw_size set.
func ZlibBody(data []byte) []byte {
	var zbuf bytes.Buffer
	zw := zlib.NewWriter(&zbuf)
	if _, err := zw.Write(data); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}

	var b []byte
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(len(data)))
	b = protowire.AppendTag(b, FieldZlib, protowire.BytesType)
	return protowire.AppendBytes(b, zbuf.Bytes())
}

// EmptyBody encodes a Blob message with no payload variant at all.
func EmptyBody(rawSize int32) []byte {
	var b []byte
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(rawSize)))
}

// Record frames a header and body into one length-prefixed record.
func Record(header, body []byte) []byte {
	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(header))) //nolint:gosec // test headers stay far below 4 GiB
	out := make([]byte, 0, 4+len(header)+len(body))
	out = append(out, prefix[:]...)
	out = append(out, header...)
	return append(out, body...)
}

// HeaderRecord frames a complete record with the given type and payload body.
// The header's datasize is derived from the body.
func HeaderRecord(typ string, body []byte) []byte {
	return Record(Header(typ, int32(len(body))), body) //nolint:gosec // bodies stay below MaxBlobSize
}

// File concatenates records into a stream.
func File(records ...[]byte) []byte {
	var out []byte
	for _, r := range records {
		out = append(out, r...)
	}
	return out
}
