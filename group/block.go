package group

import (
	"fmt"

	"github.com/arloliu/base16384/errs"
)

// EncodedBlockSize returns the encoded size of n raw bytes, ignoring a
// trailing partial group.
func EncodedBlockSize(n int) int {
	return n / RawSize * EncodedSize
}

// DecodedBlockSize returns the decoded size of n encoded bytes, ignoring a
// trailing partial group.
func DecodedBlockSize(n int) int {
	return n / EncodedSize * RawSize
}

// EncodeBlock encodes every full group of src into dst and returns the number
// of bytes written. Trailing bytes that do not fill a group are ignored.
// dst must hold EncodedBlockSize(len(src)) bytes.
func EncodeBlock(dst, src []byte) int {
	n := EncodedBlockSize(len(src))
	dst = dst[:n]

	di := 0
	for si := 0; si+RawSize <= len(src); si += RawSize {
		EncodeGroup(dst[di:di+EncodedSize], src[si:si+RawSize])
		di += EncodedSize
	}

	return di
}

// EncodeBlockSafe is EncodeBlock returning ErrBufferOverrun instead of
// panicking when dst is too small.
func EncodeBlockSafe(dst, src []byte) (int, error) {
	need := EncodedBlockSize(len(src))
	if len(dst) < need {
		return 0, fmt.Errorf("%w: encode needs %d bytes, %d available", errs.ErrBufferOverrun, need, len(dst))
	}

	return EncodeBlock(dst, src), nil
}

// DecodeBlock decodes every full group of src into dst without validating the
// symbols and returns the number of bytes written. Trailing bytes that do not
// fill a group are ignored. dst must hold DecodedBlockSize(len(src)) bytes.
func DecodeBlock(dst, src []byte) int {
	n := DecodedBlockSize(len(src))
	dst = dst[:n]

	di := 0
	for si := 0; si+EncodedSize <= len(src); si += EncodedSize {
		decodeGroupUnchecked(dst[di:di+RawSize], src[si:si+EncodedSize])
		di += RawSize
	}

	return di
}

// DecodeBlockSafe decodes every full group of src into dst, validating each
// symbol. On an invalid symbol it returns the number of bytes decoded before
// the offending group and an error wrapping ErrInvalidSymbol whose offset is
// relative to src.
func DecodeBlockSafe(dst, src []byte) (int, error) {
	need := DecodedBlockSize(len(src))
	if len(dst) < need {
		return 0, fmt.Errorf("%w: decode needs %d bytes, %d available", errs.ErrBufferOverrun, need, len(dst))
	}

	di := 0
	for si := 0; si+EncodedSize <= len(src); si += EncodedSize {
		if lane := invalidLane(wire.Uint64(src[si:])); lane >= 0 {
			return di, invalidSymbolError(src, si+lane*2)
		}
		decodeGroupUnchecked(dst[di:di+RawSize], src[si:si+EncodedSize])
		di += RawSize
	}

	return di, nil
}
