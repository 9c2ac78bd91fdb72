package base16384

import (
	"bytes"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/arloliu/base16384/errs"
	"github.com/arloliu/base16384/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	goldenInput = "=xxxxxxxxxxxxxxxxxxxxxxkkkkkkkxxxx"
	goldenText  = "嵞喇濡虸氞喇濡虸氞喇濡虸氞咶箭祫棚薇濡蘀㴆"
)

func TestEncodeString_Golden(t *testing.T) {
	require.Equal(t, goldenText, EncodeString(goldenInput))
	require.Equal(t, goldenText, EncodeToString([]byte(goldenInput)))

	s, err := DecodeFromString(goldenText)
	require.NoError(t, err)
	require.Equal(t, goldenInput, s)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 300; n++ {
		data := make([]byte, n)
		rng.Read(data)

		enc := Encode(data)
		assert.LessOrEqual(t, len(enc), EncodeLen(n, false))

		safe, err := EncodeSafe(data)
		require.NoError(t, err)
		require.Equal(t, enc, safe)

		dec, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, data, dec)
		assert.LessOrEqual(t, len(dec), DecodeLen(len(enc)))

		dec, err = DecodeSafe(enc)
		require.NoError(t, err)
		require.Equal(t, data, dec)
	}
}

func TestDecodeSafe_RejectsForeignText(t *testing.T) {
	_, err := DecodeSafe([]byte{0x00, 0x41, 0x00, 0x42, 0x00, 0x43, 0x00, 0x44})
	require.ErrorIs(t, err, errs.ErrInvalidSymbol)

	_, err = DecodeString("plain ascii!")
	require.ErrorIs(t, err, errs.ErrInvalidSymbol)

	_, err = DecodeSafe([]byte{0x4E, 0x00, 0x4E})
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestEncodeLen(t *testing.T) {
	tests := []struct {
		n         int
		writeHead bool
		expected  int
	}{
		{0, false, 6},
		{0, true, 8},
		{1, false, 2 + 2 + 6},
		{7, true, 8 + 2 + 6},
		{34, false, 32 + 8 + 2 + 6},
		{70, false, 80 + 6},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, EncodeLen(tt.n, tt.writeHead), "n=%d head=%v", tt.n, tt.writeHead)
	}

	require.Equal(t, 6, DecodeLen(0))
	require.Equal(t, 13, DecodeLen(8))
	require.Equal(t, 7*10+6, DecodeLen(86))
}

func TestEncodeLen_BoundsEveryFlagCombination(t *testing.T) {
	flagSets := []format.Flag{
		0,
		FlagNoHeader,
		FlagSumCheckOnRemain,
		FlagDoSumCheckForcely | FlagNoHeader,
	}

	for _, flags := range flagSets {
		for n := 0; n < 40; n++ {
			data := bytes.Repeat([]byte{0x7f}, n)
			dst := make([]byte, EncodeLen(n, flags&FlagNoHeader == 0))

			w, err := EncodeInto(dst, data, flags)
			require.NoError(t, err, "flags=%s n=%d", flags, n)

			out := make([]byte, DecodeLen(w))
			r, err := DecodeIntoSafe(out, dst[:w], flags)
			require.NoError(t, err)
			require.Equal(t, data, out[:r])
		}
	}
}

func TestEncodeInto_BufferOverrun(t *testing.T) {
	data := []byte("abcdefghijklmn")

	n, err := EncodeIntoSafe(make([]byte, 10), data, FlagNoHeader)
	require.ErrorIs(t, err, errs.ErrBufferOverrun)
	require.Equal(t, 10, n)

	_, err = EncodeInto(make([]byte, 10), data, 0)
	require.ErrorIs(t, err, errs.ErrBufferOverrun)

	enc := Encode(data)
	_, err = DecodeInto(make([]byte, 13), enc, 0)
	require.ErrorIs(t, err, errs.ErrBufferOverrun)
}

func TestEncodeInto_Header(t *testing.T) {
	dst := make([]byte, EncodeLen(3, true))
	n, err := EncodeInto(dst, []byte("abc"), 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFE, 0xFF, 0x66, 0x58, 0x74, 0x30, 0x3D, 0x03}, dst[:n])

	n, err = EncodeInto(dst, []byte("abc"), FlagNoHeader)
	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestDecodeInto_ChecksumFailedKeepsOutput(t *testing.T) {
	data := []byte("integrity matters")
	flags := FlagDoSumCheckForcely | FlagNoHeader

	enc := make([]byte, EncodeLen(len(data), false))
	n, err := EncodeIntoSafe(enc, data, flags)
	require.NoError(t, err)
	enc = enc[:n]
	enc[1] ^= 0x02

	out := make([]byte, DecodeLen(len(enc)))
	n, err = DecodeIntoSafe(out, enc, flags)
	require.ErrorIs(t, err, errs.ErrChecksumFailed)
	require.Equal(t, len(data), n)
	require.NotEqual(t, data, out[:n])
	require.Equal(t, data[7:], out[7:n], "only the first group is affected")
}

func TestStream_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("streaming "), 10000)

	var enc bytes.Buffer
	stats, err := EncodeStream(bytes.NewReader(data), &enc, FlagSumCheckOnRemain)
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), stats.BytesRead)
	require.True(t, bytes.HasPrefix(enc.Bytes(), []byte{0xFE, 0xFF}))
	require.Equal(t, format.ChecksumPassed, stats.Checksum)

	var dec bytes.Buffer
	stats, err = DecodeStream(&enc, &dec, FlagSumCheckOnRemain)
	require.NoError(t, err)
	require.Equal(t, format.ChecksumPassed, stats.Checksum)
	require.Equal(t, data, dec.Bytes())

	_, err = EncodeStream(bytes.NewReader(data), &enc, format.Flag(0x40))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestCompressed_RoundTrip(t *testing.T) {
	data := []byte(strings.Repeat("compressible payload ", 500))
	plain := Encode(data)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			enc, err := EncodeCompressed(data, ct)
			require.NoError(t, err)
			if ct != format.CompressionNone {
				require.Less(t, len(enc), len(plain))
			}

			dec, err := DecodeCompressed(enc, ct)
			require.NoError(t, err)
			require.Equal(t, data, dec)
		})
	}

	_, err := EncodeCompressed(data, format.CompressionType(9))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestIsWordSize64(t *testing.T) {
	require.Equal(t, strconv.IntSize == 64, IsWordSize64())
}

func BenchmarkEncode(b *testing.B) {
	data := make([]byte, 64*1024)
	rand.New(rand.NewSource(2)).Read(data)

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		Encode(data)
	}
}

func BenchmarkDecodeSafe(b *testing.B) {
	data := make([]byte, 64*1024)
	rand.New(rand.NewSource(2)).Read(data)
	enc := Encode(data)

	b.SetBytes(int64(len(enc)))
	for b.Loop() {
		_, _ = DecodeSafe(enc)
	}
}
