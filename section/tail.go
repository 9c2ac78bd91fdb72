package section

import (
	"fmt"

	"github.com/arloliu/base16384/group"
)

// PutTailMarker writes the marker declaring a tail of r bytes into dst and
// returns TailMarkerSize. It panics if r is not in 1..group.MaxTail.
func PutTailMarker(dst []byte, r int) int {
	if r < 1 || r > group.MaxTail {
		panic(fmt.Sprintf("section: invalid tail length %d", r))
	}
	dst[0] = tailMarkerHigh
	dst[1] = byte(r)

	return TailMarkerSize
}

// ParseTailMarker returns the tail length declared by the code unit at the
// start of b. ok is false when b does not start with a tail marker.
func ParseTailMarker(b []byte) (r int, ok bool) {
	if len(b) < TailMarkerSize || b[0] != tailMarkerHigh {
		return 0, false
	}
	r = int(b[1])
	if r < 1 || r > group.MaxTail {
		return 0, false
	}

	return r, true
}

// TailMarkerAt reports whether the code unit ending at offset end of b is a
// tail marker, and the tail length it declares.
func TailMarkerAt(b []byte, end int) (int, bool) {
	if end < TailMarkerSize || end > len(b) {
		return 0, false
	}

	return ParseTailMarker(b[end-TailMarkerSize : end])
}
