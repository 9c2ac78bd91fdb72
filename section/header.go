package section

// Header is the optional stream prefix, the UTF-16BE byte-order mark U+FEFF.
var Header = [HeaderSize]byte{0xFE, 0xFF}

// PutHeader writes the header into dst and returns HeaderSize.
func PutHeader(dst []byte) int {
	return copy(dst[:HeaderSize], Header[:])
}

// HasHeader reports whether b starts with the header.
func HasHeader(b []byte) bool {
	return len(b) >= HeaderSize && b[0] == Header[0] && b[1] == Header[1]
}
