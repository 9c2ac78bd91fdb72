// Package base16384 encodes arbitrary binary data as UTF-16BE text drawn from
// a 16384-symbol alphabet, and back.
//
// Every 7 raw bytes become four 14-bit symbols, each stored as one UTF-16 code
// unit in the CJK range U+4E00..U+8DFF. The expansion is 8/7 (about 14%),
// compared with 33% for base64, and the output survives any channel that
// carries UTF-16 or UCS-2 text.
//
// # Wire Format
//
//	[FE FF] {8-byte groups} [tail symbols + tail marker] [6-byte checksum trailer]
//
//   - The optional header is the UTF-16BE byte-order mark. Decoders strip it
//     when present.
//   - A final group of 1..6 bytes is zero padded to whole symbols and followed
//     by the marker U+3D01..U+3D06, which records its exact length.
//   - With checksumming enabled, a trailer of three symbols carries the top 42
//     bits of the xxHash64 digest of the covered bytes. The trailer is not
//     self-describing, so encoder and decoder must use the same flags.
//
// # Basic Usage
//
//	text := base16384.Encode(payload)
//	payload, err := base16384.DecodeSafe(text)
//
// Strings:
//
//	s := base16384.EncodeToString(payload) // "嵞喇濡虸..."
//	payload, err := base16384.DecodeString(s)
//
// Streams, with a whole-stream checksum:
//
//	stats, err := base16384.EncodeStream(file, out, base16384.FlagDoSumCheckForcely)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The stream package holds
// the bounded-memory engine with its unchecked and bounds-checked variants; the
// group, section and alphabet packages expose the building blocks.
package base16384

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/base16384/compress"
	"github.com/arloliu/base16384/endian"
	"github.com/arloliu/base16384/errs"
	"github.com/arloliu/base16384/format"
	"github.com/arloliu/base16384/group"
	"github.com/arloliu/base16384/internal/pool"
	"github.com/arloliu/base16384/section"
	"github.com/arloliu/base16384/stream"
	"golang.org/x/text/encoding/unicode"
)

// Default chunk capacities of the streaming engine.
const (
	ENCBUFSZ = stream.ENCBUFSZ
	DECBUFSZ = stream.DECBUFSZ
)

// Integrity and header flags.
const (
	// FlagNoHeader suppresses the byte-order-mark header.
	FlagNoHeader = format.FlagNoHeader
	// FlagSumCheckOnRemain appends a checksum trailer over the tail group,
	// when there is one.
	FlagSumCheckOnRemain = format.FlagSumCheckOnRemain
	// FlagDoSumCheckForcely appends a checksum trailer over the whole input.
	FlagDoSumCheckForcely = format.FlagDoSumCheckForcely
)

// utf16be converts between Go strings and the codec's code units. The codec
// handles its own header, so the BOM is never added or interpreted here.
var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// IsWordSize64 reports whether the build targets a 64-bit word size. The
// encoded form is identical on every platform.
func IsWordSize64() bool {
	return endian.Is64Bit()
}

// EncodeLen returns an upper bound on the encoded size of n raw bytes: the full
// groups, the tail group with its marker, the header when writeHead is set and
// room for a checksum trailer.
func EncodeLen(n int, writeHead bool) int {
	size := n / group.RawSize * group.EncodedSize
	if r := n % group.RawSize; r > 0 {
		size += group.EncodedTailSize(r) + section.TailMarkerSize
	}
	if writeHead {
		size += section.HeaderSize
	}

	return size + section.TrailerSize
}

// DecodeLen returns an upper bound on the decoded size of n encoded bytes.
func DecodeLen(n int) int {
	return n/group.EncodedSize*group.RawSize + group.MaxTail
}

// Encode encodes data without a header.
func Encode(data []byte) []byte {
	out, err := encodeBytes(false, data, FlagNoHeader)
	if err != nil {
		// an in-memory source and sink cannot fail
		panic(err)
	}

	return out
}

// EncodeSafe is Encode on the bounds-checked engine.
func EncodeSafe(data []byte) ([]byte, error) {
	return encodeBytes(true, data, FlagNoHeader)
}

// Decode decodes data without validating symbols. Use DecodeSafe for input of
// unknown provenance.
func Decode(data []byte) ([]byte, error) {
	return decodeBytes(false, data, 0)
}

// DecodeSafe decodes data, validating every symbol.
func DecodeSafe(data []byte) ([]byte, error) {
	return decodeBytes(true, data, 0)
}

// EncodeInto encodes src into dst and returns the number of bytes written.
// A header is written unless flags has FlagNoHeader; the checksum flags select
// the trailer. Size dst with EncodeLen.
//
// Returns an error wrapping errs.ErrBufferOverrun when dst is too small.
func EncodeInto(dst, src []byte, flags format.Flag) (int, error) {
	return encodeInto(false, dst, src, flags)
}

// EncodeIntoSafe is EncodeInto on the bounds-checked engine.
func EncodeIntoSafe(dst, src []byte, flags format.Flag) (int, error) {
	return encodeInto(true, dst, src, flags)
}

// DecodeInto decodes src into dst and returns the number of bytes written.
// flags must carry the checksum flags the text was encoded with. Size dst with
// DecodeLen.
//
// On errs.ErrChecksumFailed the decoded bytes are still in dst[:n].
func DecodeInto(dst, src []byte, flags format.Flag) (int, error) {
	return decodeInto(false, dst, src, flags)
}

// DecodeIntoSafe is DecodeInto on the bounds-checked engine.
func DecodeIntoSafe(dst, src []byte, flags format.Flag) (int, error) {
	return decodeInto(true, dst, src, flags)
}

// EncodeStream encodes src into dst with the bounds-checked engine and default
// buffers. A header is written unless flags has FlagNoHeader.
func EncodeStream(src io.Reader, dst io.Writer, flags format.Flag) (stream.Stats, error) {
	codec, err := stream.NewSafeCodec(stream.WithFlags(flags))
	if err != nil {
		return stream.Stats{}, err
	}

	return codec.Encode(src, dst, flags&FlagNoHeader == 0, 0)
}

// DecodeStream decodes src into dst with the bounds-checked engine and default
// buffers. Stats.Checksum reports the trailer verification.
func DecodeStream(src io.Reader, dst io.Writer, flags format.Flag) (stream.Stats, error) {
	codec, err := stream.NewSafeCodec(stream.WithFlags(flags))
	if err != nil {
		return stream.Stats{}, err
	}

	return codec.Decode(src, dst, 0)
}

// EncodeToString encodes data and returns the text as a Go string.
func EncodeToString(data []byte) string {
	s, err := utf16be.NewDecoder().Bytes(Encode(data))
	if err != nil {
		// every alphabet symbol and tail marker is a valid BMP character
		panic(err)
	}

	return string(s)
}

// DecodeString decodes text produced by EncodeToString, validating every
// symbol.
func DecodeString(s string) ([]byte, error) {
	units, err := utf16be.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidSymbol, err)
	}

	return DecodeSafe(units)
}

// EncodeString encodes the bytes of s.
func EncodeString(s string) string {
	return EncodeToString([]byte(s))
}

// DecodeFromString decodes text produced by EncodeString.
func DecodeFromString(s string) (string, error) {
	b, err := DecodeString(s)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// EncodeCompressed compresses data with the given algorithm, then encodes the
// result without a header. The algorithm is not recorded in the text.
func EncodeCompressed(data []byte, compressionType format.CompressionType) ([]byte, error) {
	codec, err := compress.CreateCodec(compressionType, "payload")
	if err != nil {
		return nil, err
	}

	packed, err := codec.Compress(data)
	if err != nil {
		return nil, err
	}

	return EncodeSafe(packed)
}

// DecodeCompressed reverses EncodeCompressed.
func DecodeCompressed(data []byte, compressionType format.CompressionType) ([]byte, error) {
	codec, err := compress.CreateCodec(compressionType, "payload")
	if err != nil {
		return nil, err
	}

	packed, err := DecodeSafe(data)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(packed)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func encodeBytes(safe bool, data []byte, flags format.Flag) ([]byte, error) {
	bb := pool.GetScratch(0)
	defer pool.PutScratch(bb)
	bb.Grow(EncodeLen(len(data), flags&FlagNoHeader == 0))

	if err := encodeTo(safe, bb, data, flags); err != nil {
		return nil, err
	}

	return bytes.Clone(bb.Bytes()), nil
}

func decodeBytes(safe bool, data []byte, flags format.Flag) ([]byte, error) {
	bb := pool.GetScratch(0)
	defer pool.PutScratch(bb)
	bb.Grow(DecodeLen(len(data)))

	if err := decodeTo(safe, bb, data, flags); err != nil {
		return nil, err
	}

	return bytes.Clone(bb.Bytes()), nil
}

func encodeInto(safe bool, dst, src []byte, flags format.Flag) (int, error) {
	w := &sliceWriter{buf: dst}
	err := encodeTo(safe, w, src, flags)

	return w.n, err
}

func decodeInto(safe bool, dst, src []byte, flags format.Flag) (int, error) {
	w := &sliceWriter{buf: dst}
	err := decodeTo(safe, w, src, flags)

	return w.n, err
}

func encodeTo(safe bool, w io.Writer, data []byte, flags format.Flag) error {
	codec, err := stream.CreateCodec(safe, stream.WithFlags(flags))
	if err != nil {
		return err
	}
	_, err = codec.Encode(bytes.NewReader(data), w, flags&FlagNoHeader == 0, len(data)/group.RawSize+1)

	return err
}

func decodeTo(safe bool, w io.Writer, data []byte, flags format.Flag) error {
	codec, err := stream.CreateCodec(safe, stream.WithFlags(flags))
	if err != nil {
		return err
	}
	_, err = codec.Decode(bytes.NewReader(data), w, len(data)/group.EncodedSize+1)

	return err
}

// sliceWriter writes into a fixed caller-owned buffer.
type sliceWriter struct {
	buf []byte
	n   int
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	n := copy(w.buf[w.n:], p)
	w.n += n
	if n < len(p) {
		return n, fmt.Errorf("%w: destination holds %d bytes", errs.ErrBufferOverrun, len(w.buf))
	}

	return n, nil
}
