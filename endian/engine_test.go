package endian

import (
	"encoding/binary"
	"strconv"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestGetWireEngine(t *testing.T) {
	engine := GetWireEngine()
	require.Equal(t, binary.BigEndian, engine)

	buf := make([]byte, 2)
	engine.PutUint16(buf, 0x4E00)
	require.Equal(t, []byte{0x4E, 0x00}, buf)

	buf = engine.AppendUint16(buf[:0], 0x3D06)
	require.Equal(t, []byte{0x3D, 0x06}, buf)
}

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
	case 0x02:
		require.Equal(binary.LittleEndian, result)
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestIsNativeWireOrder(t *testing.T) {
	require.Equal(t, CheckEndianness() == binary.BigEndian, IsNativeWireOrder())
}

func TestIs64Bit(t *testing.T) {
	require.Equal(t, strconv.IntSize == 64, Is64Bit())
}
