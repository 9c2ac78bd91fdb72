// Package endian provides the byte order and word size facts the codec relies on.
//
// base16384 code units are always serialized big-endian (UTF-16BE), whatever the
// host byte order is. Group and integrity code obtain the engine from here
// instead of naming binary.BigEndian directly, so the wire byte order is
// declared in one place:
//
//	engine := endian.GetWireEngine()
//	engine.PutUint16(dst, symbol)
//	dst = engine.AppendUint16(dst, symbol)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetWireEngine returns the engine used for every code unit on the wire.
func GetWireEngine() EndianEngine {
	return binary.BigEndian
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeWireOrder reports whether the host byte order equals the wire order,
// in which case code units could be reinterpreted in place without swapping.
func IsNativeWireOrder() bool {
	return CheckEndianness() == GetWireEngine()
}

// Is64Bit reports whether the build uses a 64-bit word size.
//
// The encoded output does not depend on the word size; 32-bit and 64-bit
// builds produce identical streams.
func Is64Bit() bool {
	return bits.UintSize == 64
}
