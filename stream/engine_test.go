package stream

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/arloliu/base16384/errs"
	"github.com/stretchr/testify/require"
)

// maxReadRecorder hands out data in whatever sizes the caller asks for and
// remembers the largest request.
type maxReadRecorder struct {
	r       io.Reader
	maxRead int
}

func (m *maxReadRecorder) Read(p []byte) (int, error) {
	m.maxRead = max(m.maxRead, len(p))
	return m.r.Read(p)
}

// tricklingReader returns at most one byte per call.
type tricklingReader struct {
	data []byte
}

func (r *tricklingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[0]
	r.data = r.data[1:]

	return 1, nil
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]

	return n, nil
}

type overReportingReader struct{}

func (overReportingReader) Read(p []byte) (int, error) {
	return len(p) + 1, nil
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func TestEngine_ChunkSize(t *testing.T) {
	e := &engine{cfg: *defaultConfig()}

	require.Equal(t, ENCBUFSZ, e.encodeChunkSize(0))
	require.Equal(t, ENCBUFSZ, e.encodeChunkSize(-5))
	require.Equal(t, 7, e.encodeChunkSize(1))
	require.Equal(t, 700, e.encodeChunkSize(100))
	require.Equal(t, ENCBUFSZ, e.encodeChunkSize(1<<40))

	require.Equal(t, DECBUFSZ, e.decodeChunkSize(0))
	require.Equal(t, 8, e.decodeChunkSize(1))
	require.Equal(t, 800, e.decodeChunkSize(100))
	require.Equal(t, DECBUFSZ, e.decodeChunkSize(1<<40))
}

func TestEngine_BoundedReads(t *testing.T) {
	data := make([]byte, 100000)
	rand.New(rand.NewSource(10)).Read(data)

	for name, c := range newCodecs(t, WithEncodeBufferSize(70), WithDecodeBufferSize(64), WithSumCheckForcely()) {
		t.Run(name, func(t *testing.T) {
			src := &maxReadRecorder{r: bytes.NewReader(data)}
			var enc bytes.Buffer
			_, err := c.Encode(src, &enc, true, 0)
			require.NoError(t, err)
			require.LessOrEqual(t, src.maxRead, 70)

			src = &maxReadRecorder{r: bytes.NewReader(enc.Bytes())}
			var dec bytes.Buffer
			_, err = c.Decode(src, &dec, 0)
			require.NoError(t, err)
			require.LessOrEqual(t, src.maxRead, 64+decodeReserve)
			require.Equal(t, data, dec.Bytes())
		})
	}
}

func TestEngine_TricklingReader(t *testing.T) {
	data := bytes.Repeat([]byte("trickle"), 30)
	data = append(data, "xyz"...)

	for name, c := range newCodecs(t, WithSumCheckOnRemain(), WithDecodeBufferSize(16)) {
		t.Run(name, func(t *testing.T) {
			var enc bytes.Buffer
			_, err := c.Encode(&tricklingReader{data: data}, &enc, true, 0)
			require.NoError(t, err)

			var dec bytes.Buffer
			_, err = c.Decode(&tricklingReader{data: enc.Bytes()}, &dec, 0)
			require.NoError(t, err)
			require.Equal(t, data, dec.Bytes())
		})
	}
}

func TestEngine_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")

	for name, c := range newCodecs(t) {
		t.Run(name, func(t *testing.T) {
			_, err := c.Encode(&failingReader{data: []byte("abc"), err: boom}, io.Discard, false, 0)
			require.ErrorIs(t, err, errs.ErrIO)
			require.ErrorIs(t, err, boom)

			_, err = c.Decode(&failingReader{data: []byte{0x4E, 0x00}, err: boom}, io.Discard, 0)
			require.ErrorIs(t, err, errs.ErrIO)
			require.ErrorIs(t, err, boom)
		})
	}
}

func TestEngine_UnexpectedEOFEndsStream(t *testing.T) {
	c, err := NewCodec()
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = c.Encode(&failingReader{data: []byte("abcdefg"), err: io.ErrUnexpectedEOF}, &out, false, 0)
	require.NoError(t, err)
	require.Len(t, out.Bytes(), 8)
}

func TestEngine_WriteError(t *testing.T) {
	boom := errors.New("pipe closed")
	c, err := NewSafeCodec()
	require.NoError(t, err)

	_, err = c.Encode(bytes.NewReader([]byte("abcdefg")), failingWriter{err: boom}, false, 0)
	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorIs(t, err, boom)

	_, err = c.Decode(bytes.NewReader([]byte{0x66, 0x58, 0x74, 0x36, 0x5f, 0x95, 0x74, 0x67}), failingWriter{err: boom}, 0)
	require.ErrorIs(t, err, errs.ErrIO)

	stats, err := c.Encode(bytes.NewReader([]byte("abcdefg")), shortWriter{}, false, 0)
	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Equal(t, int64(4), stats.BytesWritten)
}

func TestEngine_OverReportingReader(t *testing.T) {
	for name, c := range newCodecs(t) {
		t.Run(name, func(t *testing.T) {
			_, err := c.Encode(overReportingReader{}, io.Discard, false, 0)
			require.ErrorIs(t, err, errs.ErrBufferOverrun)

			_, err = c.Decode(overReportingReader{}, io.Discard, 0)
			require.ErrorIs(t, err, errs.ErrBufferOverrun)
		})
	}
}

func TestEngine_NilStreams(t *testing.T) {
	c, err := NewCodec()
	require.NoError(t, err)

	_, err = c.Encode(nil, io.Discard, false, 0)
	require.ErrorIs(t, err, errs.ErrIO)
	_, err = c.Decode(bytes.NewReader(nil), nil, 0)
	require.ErrorIs(t, err, errs.ErrIO)
}

func TestEngine_ErrorOffset(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefg"), 20)
	c, err := NewSafeCodec(WithDecodeBufferSize(32))
	require.NoError(t, err)

	enc := encodeBytes(t, c, data, true)
	enc[2+8*12] = 0x00

	_, _, err = decodeBytes(t, c, enc)
	require.ErrorIs(t, err, errs.ErrInvalidSymbol)
	require.Contains(t, err.Error(), "stream offset")
}

func TestConfig_Options(t *testing.T) {
	cfg, err := newConfig(WithEncodeBufferSize(100), WithDecodeBufferSize(100), WithSumCheckOnRemain())
	require.NoError(t, err)
	require.Equal(t, 98, cfg.EncodeBufferSize())
	require.Equal(t, 96, cfg.DecodeBufferSize())
	require.True(t, cfg.Flags().OnRemain())

	cfg, err = newConfig(WithSumCheckOnRemain(), WithSumCheckForcely())
	require.NoError(t, err)
	require.True(t, cfg.Flags().Forced())
	require.False(t, cfg.Flags().OnRemain())

	invalid := []Option{
		WithEncodeBufferSize(6),
		WithEncodeBufferSize(MaxBufferSize + 1),
		WithDecodeBufferSize(7),
		WithDecodeBufferSize(-1),
		WithFlags(0x80),
	}
	for _, opt := range invalid {
		_, err := NewCodec(opt)
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	}

	_, err = NewSafeCodec(WithEncodeBufferSize(1))
	require.ErrorContains(t, err, "WithEncodeBufferSize")
}
