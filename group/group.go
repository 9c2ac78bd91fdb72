// Package group implements the base16384 group transform.
//
// A group is 7 raw bytes (56 bits) split most-significant-bit first into four
// 14-bit fields, each mapped through the alphabet and stored as a big-endian
// 16-bit code unit, giving 8 output bytes:
//
//	raw:     |   b0   |   b1   |   b2   |   b3   |   b4   |   b5   |   b6   |
//	fields:  |     s0 (14)    |     s1 (14)    |     s2 (14)    |    s3 (14)     |
//
// A final group of 1..6 bytes (the tail) is right-padded with zero bits up to
// the next multiple of 14 bits and emits TailSymbols(r) symbols. The tail
// length itself is not recoverable from the symbols; the integrity layer
// records it in a tail marker.
package group

import (
	"fmt"

	"github.com/arloliu/base16384/alphabet"
	"github.com/arloliu/base16384/endian"
	"github.com/arloliu/base16384/errs"
)

const (
	// RawSize is the number of raw bytes in a full group.
	RawSize = 7
	// Symbols is the number of symbols in a full group.
	Symbols = 4
	// EncodedSize is the number of encoded bytes in a full group.
	EncodedSize = Symbols * 2
	// MaxTail is the largest tail length.
	MaxTail = RawSize - 1
	// MaxEncodedTail is the encoded size of the largest tail.
	MaxEncodedTail = EncodedSize
)

// symbol offsets replicated into each 16-bit lane of a packed group
const packedBase = uint64(alphabet.Base)<<48 | uint64(alphabet.Base)<<32 | uint64(alphabet.Base)<<16 | uint64(alphabet.Base)

var wire = endian.GetWireEngine()

// TailSymbols returns the number of symbols a tail of r bytes encodes to,
// ceil(8r/14). It returns 0 for r outside 1..MaxTail.
func TailSymbols(r int) int {
	if r < 1 || r > MaxTail {
		return 0
	}

	return (r*8 + alphabet.Bits - 1) / alphabet.Bits
}

// EncodedTailSize returns the number of bytes a tail of r bytes encodes to.
func EncodedTailSize(r int) int {
	return TailSymbols(r) * 2
}

// EncodeGroup encodes the 7 bytes of src into the 8 bytes of dst.
func EncodeGroup(dst, src []byte) {
	_ = src[RawSize-1]
	_ = dst[EncodedSize-1]

	v := uint64(src[0])<<48 | uint64(src[1])<<40 | uint64(src[2])<<32 |
		uint64(src[3])<<24 | uint64(src[4])<<16 | uint64(src[5])<<8 | uint64(src[6])

	wire.PutUint64(dst, spread(v)+packedBase)
}

// DecodeGroup decodes the 8 bytes of src into the 7 bytes of dst.
// It returns ErrInvalidSymbol when a code unit is outside the alphabet,
// leaving dst untouched.
func DecodeGroup(dst, src []byte) error {
	_ = src[EncodedSize-1]
	_ = dst[RawSize-1]

	w := wire.Uint64(src)
	if lane := invalidLane(w); lane >= 0 {
		return invalidSymbolError(src, lane*2)
	}

	putRaw(dst, gather(w-packedBase))

	return nil
}

// decodeGroupUnchecked is DecodeGroup without symbol validation. Code units
// outside the alphabet decode to arbitrary bytes.
func decodeGroupUnchecked(dst, src []byte) {
	_ = src[EncodedSize-1]
	_ = dst[RawSize-1]

	putRaw(dst, gather(wire.Uint64(src)-packedBase))
}

// EncodeTail encodes a tail of 1..MaxTail bytes into dst and returns the
// number of bytes written, EncodedTailSize(len(src)).
func EncodeTail(dst, src []byte) int {
	r := len(src)
	k := TailSymbols(r)
	if k == 0 {
		panic(fmt.Sprintf("group: invalid tail length %d", r))
	}

	var v uint64
	for _, b := range src {
		v = v<<8 | uint64(b)
	}
	v <<= uint(k*alphabet.Bits - r*8)

	for j := range k {
		field := uint16(v>>uint((k-1-j)*alphabet.Bits)) & alphabet.Mask
		wire.PutUint16(dst[j*2:], alphabet.IndexToSymbol(field))
	}

	return k * 2
}

// DecodeTail decodes the TailSymbols(r) symbols in src into the first r bytes
// of dst without validating them.
func DecodeTail(dst, src []byte, r int) {
	v, _ := tailValue(src, r, false)
	for i := range r {
		dst[i] = byte(v >> uint((r-1-i)*8))
	}
}

// DecodeTailSafe is DecodeTail with validation: src must hold exactly
// EncodedTailSize(r) bytes, every symbol must be in the alphabet and the
// padding bits must be zero.
func DecodeTailSafe(dst, src []byte, r int) error {
	k := TailSymbols(r)
	if k == 0 {
		return fmt.Errorf("%w: tail length %d", errs.ErrTruncatedInput, r)
	}
	if len(src) != k*2 {
		return fmt.Errorf("%w: tail of %d bytes needs %d symbols, got %d bytes", errs.ErrTruncatedInput, r, k, len(src))
	}
	if len(dst) < r {
		return fmt.Errorf("%w: tail needs %d bytes, %d available", errs.ErrBufferOverrun, r, len(dst))
	}

	v, err := tailValue(src, r, true)
	if err != nil {
		return err
	}

	for i := range r {
		dst[i] = byte(v >> uint((r-1-i)*8))
	}

	return nil
}

// tailValue assembles the r tail bytes from the tail symbols, right aligned.
func tailValue(src []byte, r int, validate bool) (uint64, error) {
	k := TailSymbols(r)

	var v uint64
	for j := range k {
		s := wire.Uint16(src[j*2:])
		idx, ok := alphabet.SymbolToIndex(s)
		if validate && !ok {
			return 0, invalidSymbolError(src, j*2)
		}
		if !ok {
			idx = (s - alphabet.Base) & alphabet.Mask
		}
		v = v<<alphabet.Bits | uint64(idx)
	}

	pad := uint(k*alphabet.Bits - r*8)
	if validate && v&(1<<pad-1) != 0 {
		return 0, fmt.Errorf("%w: non-zero padding in tail", errs.ErrInvalidSymbol)
	}

	return v >> pad, nil
}

// spread moves the four 14-bit fields of a 56-bit value into the low bits of
// four 16-bit lanes.
func spread(v uint64) uint64 {
	return (v>>42&alphabet.Mask)<<48 |
		(v>>28&alphabet.Mask)<<32 |
		(v>>14&alphabet.Mask)<<16 |
		v&alphabet.Mask
}

// gather is the inverse of spread; lane bits above the low 14 are dropped.
func gather(w uint64) uint64 {
	return (w>>48&alphabet.Mask)<<42 |
		(w>>32&alphabet.Mask)<<28 |
		(w>>16&alphabet.Mask)<<14 |
		w&alphabet.Mask
}

func putRaw(dst []byte, v uint64) {
	dst[0] = byte(v >> 48)
	dst[1] = byte(v >> 40)
	dst[2] = byte(v >> 32)
	dst[3] = byte(v >> 24)
	dst[4] = byte(v >> 16)
	dst[5] = byte(v >> 8)
	dst[6] = byte(v)
}

// invalidLane returns the index of the first code unit of a packed group that
// is outside the alphabet, or -1.
func invalidLane(w uint64) int {
	for lane := range Symbols {
		if !alphabet.IsSymbol(uint16(w >> uint((Symbols-1-lane)*16))) {
			return lane
		}
	}

	return -1
}

func invalidSymbolError(src []byte, off int) error {
	return fmt.Errorf("%w: code unit %#04x at offset %d", errs.ErrInvalidSymbol, wire.Uint16(src[off:]), off)
}
