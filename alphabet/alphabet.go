// Package alphabet defines the fixed bijection between 14-bit indices and the
// 16-bit code units emitted by the base16384 codec.
//
// Index i maps to the code unit Base+i, so the image is the contiguous block
// U+4E00..U+8DFF of CJK Unified Ideographs. That block is free of the UTF-16
// surrogate range (U+D800..U+DFFF), the byte-order mark (U+FEFF), control and
// ASCII characters, and the tail marker units U+3D01..U+3D06 used by the
// integrity layer, so none of those can be mistaken for a data symbol.
//
// The mapping is part of the wire format and must never change.
package alphabet

const (
	// Bits is the number of payload bits carried by one symbol.
	Bits = 14
	// Size is the number of symbols in the alphabet.
	Size = 1 << Bits
	// Mask selects the low Bits bits of an index.
	Mask = Size - 1
	// Base is the code unit of index 0.
	Base uint16 = 0x4E00
	// Last is the code unit of index Size-1.
	Last uint16 = Base + Mask
)

// table is the process-wide symbol table, built once at package
// initialization and never written afterwards.
var table = func() (t [Size]uint16) {
	for i := range t {
		t[i] = Base + uint16(i)
	}

	return t
}()

// IndexToSymbol returns the code unit for a 14-bit index.
// Bits above the low 14 are ignored.
func IndexToSymbol(i uint16) uint16 {
	return table[i&Mask]
}

// SymbolToIndex returns the index of code unit s.
// The second result is false when s is not in the alphabet.
func SymbolToIndex(s uint16) (uint16, bool) {
	if s < Base || s > Last {
		return 0, false
	}

	return s - Base, true
}

// IsSymbol reports whether s is in the alphabet image.
func IsSymbol(s uint16) bool {
	return s >= Base && s <= Last
}

// Table returns a copy of the symbol table, indexed by 14-bit index.
func Table() [Size]uint16 {
	return table
}
