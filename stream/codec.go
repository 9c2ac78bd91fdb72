// Package stream implements the bounded-memory streaming engine of the
// base16384 codec.
//
// Two implementations share the Codec interface:
//
//   - UncheckedCodec trusts its input. Symbols are not validated, so malformed
//     text decodes to arbitrary bytes instead of failing. Use it for input that
//     was produced by this package or validated elsewhere.
//   - SafeCodec validates every symbol and every buffer index and reports
//     errs.ErrInvalidSymbol or errs.ErrBufferOverrun. It is the right default
//     for input of unknown provenance.
//
// Both read the source in fixed-size chunks, so memory use is bounded by the
// configured buffer sizes no matter how long the stream is. Codecs are
// immutable after construction and safe for concurrent use on independent
// streams.
//
// Example:
//
//	codec, err := stream.NewSafeCodec(stream.WithSumCheckForcely())
//	if err != nil {
//	    return err
//	}
//	stats, err := codec.Encode(file, out, true, 0)
package stream

import (
	"io"

	"github.com/arloliu/base16384/format"
)

// Codec is the capability shared by the unchecked and the bounds-checked engines.
type Codec interface {
	// Encode reads src until EOF and writes its base16384 encoding to dst.
	//
	// Parameters:
	//   - src: raw byte source, read until io.EOF
	//   - dst: sink receiving UTF-16BE code units
	//   - writeHead: prefix the output with the byte-order-mark header
	//   - sizeHint: expected number of 7-byte groups, used only to size
	//     scratch buffers; 0 selects the configured capacity
	//
	// Returns:
	//   - Stats: bytes consumed and produced, and whether a trailer was written
	//   - error: wraps errs.ErrIO when src or dst fail
	Encode(src io.Reader, dst io.Writer, writeHead bool, sizeHint int) (Stats, error)

	// Decode reads base16384 text from src until EOF and writes the raw bytes to dst.
	// A leading header is stripped when present.
	//
	// Parameters:
	//   - src: encoded source, read until io.EOF
	//   - dst: raw byte sink
	//   - sizeHint: expected number of 8-byte groups, used only to size
	//     scratch buffers; 0 selects the configured capacity
	//
	// Returns:
	//   - Stats: bytes consumed and produced, and the checksum outcome
	//   - error: errs.ErrTruncatedInput, errs.ErrInvalidSymbol (safe variant),
	//     errs.ErrChecksumFailed (all output already written) or errs.ErrIO
	Decode(src io.Reader, dst io.Writer, sizeHint int) (Stats, error)
}

// Stats describes one Encode or Decode call.
type Stats struct {
	// BytesRead is the number of bytes consumed from the source.
	BytesRead int64
	// BytesWritten is the number of bytes accepted by the sink.
	BytesWritten int64
	// Checksum is ChecksumAbsent when no trailer was involved. Encode reports
	// ChecksumPassed when it wrote a trailer; Decode reports the verification result.
	Checksum format.ChecksumStatus
}

// ExpansionRatio returns BytesWritten / BytesRead, or 0 when nothing was read.
func (s Stats) ExpansionRatio() float64 {
	if s.BytesRead == 0 {
		return 0
	}

	return float64(s.BytesWritten) / float64(s.BytesRead)
}

// UncheckedCodec is the fast engine for trusted input.
type UncheckedCodec struct {
	engine
}

// SafeCodec is the bounds-checked engine for untrusted input.
type SafeCodec struct {
	engine
}

var (
	_ Codec = (*UncheckedCodec)(nil)
	_ Codec = (*SafeCodec)(nil)
)

// NewCodec creates an unchecked codec.
//
// Returns an error wrapping errs.ErrInvalidOption if an option is out of range.
func NewCodec(opts ...Option) (*UncheckedCodec, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &UncheckedCodec{engine{cfg: *cfg, blocks: uncheckedBlocks{}}}, nil
}

// NewSafeCodec creates a bounds-checked codec.
//
// Returns an error wrapping errs.ErrInvalidOption if an option is out of range.
func NewSafeCodec(opts ...Option) (*SafeCodec, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &SafeCodec{engine{cfg: *cfg, blocks: checkedBlocks{}}}, nil
}

// CreateCodec is a factory selecting the variant at runtime.
func CreateCodec(safe bool, opts ...Option) (Codec, error) {
	if safe {
		return NewSafeCodec(opts...)
	}

	return NewCodec(opts...)
}

// Encode implements Codec.
func (c *UncheckedCodec) Encode(src io.Reader, dst io.Writer, writeHead bool, sizeHint int) (Stats, error) {
	return c.encode(src, dst, writeHead, sizeHint)
}

// Decode implements Codec. Symbols outside the alphabet are not detected.
func (c *UncheckedCodec) Decode(src io.Reader, dst io.Writer, sizeHint int) (Stats, error) {
	return c.decode(src, dst, sizeHint)
}

// Encode implements Codec.
func (c *SafeCodec) Encode(src io.Reader, dst io.Writer, writeHead bool, sizeHint int) (Stats, error) {
	return c.encode(src, dst, writeHead, sizeHint)
}

// Decode implements Codec, validating every symbol.
func (c *SafeCodec) Decode(src io.Reader, dst io.Writer, sizeHint int) (Stats, error) {
	return c.decode(src, dst, sizeHint)
}

// Config returns a copy of the codec configuration.
func (e *engine) Config() *Config {
	cfg := e.cfg
	return &cfg
}
