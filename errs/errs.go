// Package errs defines the sentinel errors returned by the base16384 codec.
//
// Codec errors wrap these sentinels, so callers classify failures with
// errors.Is:
//
//	stats, err := codec.Decode(src, dst, 0)
//	switch {
//	case errors.Is(err, errs.ErrChecksumFailed):
//	    // output was written, but the trailer did not match
//	case errors.Is(err, errs.ErrInvalidSymbol):
//	    // input is not base16384 text
//	}
//
// Positional details (stream offsets, offending code units) are attached with
// fmt.Errorf and %w, never by defining new error types.
package errs

import "errors"

var (
	// ErrInvalidSymbol is returned when a decoded code unit is outside the alphabet image.
	ErrInvalidSymbol = errors.New("base16384: invalid symbol")

	// ErrTruncatedInput is returned when decoding runs out of input in the middle
	// of a group and no tail marker declares a shorter final group.
	ErrTruncatedInput = errors.New("base16384: truncated input")

	// ErrChecksumFailed is returned when the checksum trailer does not match the
	// decoded bytes. All decoded output has been written when it is returned.
	ErrChecksumFailed = errors.New("base16384: checksum mismatch")

	// ErrBufferOverrun is returned by the bounds-checked codec when a read or
	// write would exceed the capacity of a buffer.
	ErrBufferOverrun = errors.New("base16384: buffer overrun")

	// ErrIO wraps failures of the source or the sink.
	ErrIO = errors.New("base16384: i/o error")

	// ErrInvalidOption is returned when a codec option carries an unusable value.
	ErrInvalidOption = errors.New("base16384: invalid option")
)
