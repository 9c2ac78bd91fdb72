package section

import "github.com/arloliu/base16384/group"

const (
	// HeaderSize is the size of the byte-order-mark header.
	HeaderSize = 2
	// TailMarkerSize is the size of the tail marker code unit.
	TailMarkerSize = 2
	// TrailerSymbols is the number of symbols in a checksum trailer.
	TrailerSymbols = 3
	// TrailerSize is the size of a checksum trailer.
	TrailerSize = TrailerSymbols * 2
	// TrailerBits is the number of digest bits kept in a trailer.
	TrailerBits = 42

	// MaxMetadataSize is the largest number of bytes that can follow the last
	// full group: the longest tail, its marker and a trailer.
	MaxMetadataSize = group.MaxEncodedTail + TailMarkerSize + TrailerSize

	// tailMarkerHigh is the high byte of a tail marker code unit, ASCII '='.
	tailMarkerHigh = 0x3D
)
