package section

import (
	"fmt"

	"github.com/arloliu/base16384/alphabet"
	"github.com/arloliu/base16384/endian"
	"github.com/arloliu/base16384/errs"
)

// trailerValue keeps the top TrailerBits bits of a 64-bit digest.
func trailerValue(sum uint64) uint64 {
	return sum >> (64 - TrailerBits)
}

// PutTrailer writes the checksum trailer for digest sum into dst and returns
// TrailerSize.
func PutTrailer(dst []byte, sum uint64) int {
	engine := endian.GetWireEngine()
	v := trailerValue(sum)
	for j := range TrailerSymbols {
		field := uint16(v>>uint((TrailerSymbols-1-j)*alphabet.Bits)) & alphabet.Mask
		engine.PutUint16(dst[j*2:], alphabet.IndexToSymbol(field))
	}

	return TrailerSize
}

// ParseTrailer returns the 42-bit value stored in the trailer at the start of b.
func ParseTrailer(b []byte) (uint64, error) {
	if len(b) < TrailerSize {
		return 0, fmt.Errorf("%w: checksum trailer needs %d bytes, got %d", errs.ErrTruncatedInput, TrailerSize, len(b))
	}

	engine := endian.GetWireEngine()
	var v uint64
	for j := range TrailerSymbols {
		s := engine.Uint16(b[j*2:])
		idx, ok := alphabet.SymbolToIndex(s)
		if !ok {
			return 0, fmt.Errorf("%w: code unit %#04x in checksum trailer", errs.ErrInvalidSymbol, s)
		}
		v = v<<alphabet.Bits | uint64(idx)
	}

	return v, nil
}

// VerifyTrailer reports whether the trailer at the start of b matches digest sum.
func VerifyTrailer(b []byte, sum uint64) (bool, error) {
	v, err := ParseTrailer(b)
	if err != nil {
		return false, err
	}

	return v == trailerValue(sum), nil
}
