package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/base16384/errs"
	"github.com/arloliu/base16384/format"
	"github.com/arloliu/base16384/group"
	"github.com/arloliu/base16384/internal/hash"
	"github.com/arloliu/base16384/internal/pool"
	"github.com/arloliu/base16384/section"
)

// decodeReserve is the number of trailing encoded bytes held back until EOF,
// since they may be tail symbols, a tail marker or a trailer.
const decodeReserve = section.MaxMetadataSize

// engine is the chunked pump shared by both codec variants.
type engine struct {
	cfg    Config
	blocks blockCoder
}

// encodeChunkSize returns the raw chunk size for a call, always a positive
// multiple of 7.
func (e *engine) encodeChunkSize(sizeHint int) int {
	size := e.cfg.encodeBufferSize
	if sizeHint > 0 && sizeHint < size/group.RawSize {
		size = sizeHint * group.RawSize
	}

	return size
}

// decodeChunkSize returns the encoded chunk size for a call, always a
// positive multiple of 8.
func (e *engine) decodeChunkSize(sizeHint int) int {
	size := e.cfg.decodeBufferSize
	if sizeHint > 0 && sizeHint < size/group.EncodedSize {
		size = sizeHint * group.EncodedSize
	}

	return size
}

func (e *engine) encode(src io.Reader, dst io.Writer, writeHead bool, sizeHint int) (Stats, error) {
	var stats Stats
	if src == nil || dst == nil {
		return stats, fmt.Errorf("%w: nil source or sink", errs.ErrIO)
	}

	chunk := e.encodeChunkSize(sizeHint)

	in := pool.GetScratch(chunk)
	defer pool.PutScratch(in)
	out := pool.GetScratch(section.HeaderSize + group.EncodedBlockSize(chunk) + section.MaxMetadataSize)
	defer pool.PutScratch(out)

	inBuf, outBuf := in.B, out.B
	flags := e.cfg.flags

	var sum *hash.Checksum
	if flags.Checksummed() {
		sum = hash.New()
	}

	o := 0
	if writeHead {
		o += section.PutHeader(outBuf)
	}

	for {
		n, eof, err := readChunk(src, inBuf)
		stats.BytesRead += int64(n)
		if err != nil {
			return stats, err
		}

		full := n / group.RawSize * group.RawSize
		w, err := e.blocks.encodeBlock(outBuf[o:], inBuf[:full])
		if err != nil {
			return stats, err
		}
		o += w

		if flags.Forced() {
			_, _ = sum.Write(inBuf[:n])
		}

		if eof {
			tail := inBuf[full:n]
			o += finishEncode(outBuf[o:], tail, flags, sum)
			if flags.TrailerExpected(len(tail)) {
				stats.Checksum = format.ChecksumPassed
			}
		}

		if o > 0 {
			written, err := writeChunk(dst, outBuf[:o])
			stats.BytesWritten += int64(written)
			if err != nil {
				return stats, err
			}
			o = 0
		}

		if eof {
			return stats, nil
		}
	}
}

// finishEncode writes the tail group, its marker and the trailer when one is
// due, and returns the number of bytes written.
func finishEncode(dst, tail []byte, flags format.Flag, sum *hash.Checksum) int {
	o := 0
	if r := len(tail); r > 0 {
		o += group.EncodeTail(dst, tail)
		o += section.PutTailMarker(dst[o:], r)
	}

	if flags.TrailerExpected(len(tail)) {
		if flags.OnRemain() {
			_, _ = sum.Write(tail)
		}
		o += section.PutTrailer(dst[o:], sum.Sum64())
	}

	return o
}

func (e *engine) decode(src io.Reader, dst io.Writer, sizeHint int) (Stats, error) {
	var stats Stats
	if src == nil || dst == nil {
		return stats, fmt.Errorf("%w: nil source or sink", errs.ErrIO)
	}

	chunk := e.decodeChunkSize(sizeHint)

	in := pool.GetScratch(chunk + decodeReserve)
	defer pool.PutScratch(in)
	out := pool.GetScratch(group.DecodedBlockSize(chunk+decodeReserve) + group.MaxTail)
	defer pool.PutScratch(out)

	inBuf, outBuf := in.B, out.B
	flags := e.cfg.flags

	var sum *hash.Checksum
	if flags.Checksummed() {
		sum = hash.New()
	}

	var (
		pending int   // unprocessed bytes at the front of inBuf
		offset  int64 // stream offset of inBuf[0]
		first   = true
	)

	for {
		n, eof, err := readChunk(src, inBuf[pending:])
		stats.BytesRead += int64(n)
		if err != nil {
			return stats, err
		}
		pending += n

		start := 0
		if first {
			if section.HasHeader(inBuf[:pending]) {
				start = section.HeaderSize
			}
			first = false
		}

		if eof {
			w, status, err := e.finishDecode(outBuf, inBuf[start:pending], sum)
			stats.Checksum = status
			if w > 0 {
				written, werr := writeChunk(dst, outBuf[:w])
				stats.BytesWritten += int64(written)
				if werr != nil {
					return stats, werr
				}
			}
			if err != nil {
				return stats, fmt.Errorf("decode at stream offset %d: %w", offset+int64(start), err)
			}

			return stats, nil
		}

		if avail := pending - start - decodeReserve; avail >= group.EncodedSize {
			m := avail / group.EncodedSize * group.EncodedSize
			w, err := e.blocks.decodeBlock(outBuf, inBuf[start:start+m])
			if w > 0 {
				if flags.Forced() {
					_, _ = sum.Write(outBuf[:w])
				}
				written, werr := writeChunk(dst, outBuf[:w])
				stats.BytesWritten += int64(written)
				if werr != nil {
					return stats, werr
				}
			}
			if err != nil {
				return stats, fmt.Errorf("decode at stream offset %d: %w", offset+int64(start), err)
			}
			start += m
		}

		pending = copy(inBuf, inBuf[start:pending])
		offset += int64(start)
	}
}

// finishDecode decodes the final bytes of a stream: the last full groups, the
// tail group and the trailer. It returns the number of bytes written to dst
// and the checksum outcome. Decoded bytes are returned even when the trailer
// does not match.
func (e *engine) finishDecode(dst, rest []byte, sum *hash.Checksum) (int, format.ChecksumStatus, error) {
	flags := e.cfg.flags
	end := len(rest)
	if end%2 != 0 {
		return 0, format.ChecksumAbsent, fmt.Errorf("%w: odd number of encoded bytes", errs.ErrTruncatedInput)
	}

	var trailer []byte
	switch {
	case flags.Forced():
		if end < section.TrailerSize {
			return 0, format.ChecksumAbsent, fmt.Errorf("%w: missing checksum trailer", errs.ErrTruncatedInput)
		}
		trailer = rest[end-section.TrailerSize : end]
	case flags.OnRemain():
		if _, ok := section.TailMarkerAt(rest, end-section.TrailerSize); ok {
			trailer = rest[end-section.TrailerSize : end]
		}
	}
	end -= len(trailer)

	r, hasTail := section.TailMarkerAt(rest, end)
	if hasTail {
		end -= section.TailMarkerSize
	}

	tailSize := group.EncodedTailSize(r)
	if end < tailSize || (end-tailSize)%group.EncodedSize != 0 {
		return 0, format.ChecksumAbsent, fmt.Errorf("%w: %d encoded bytes do not form whole groups", errs.ErrTruncatedInput, end-tailSize)
	}
	groupsEnd := end - tailSize

	w, err := e.blocks.decodeBlock(dst, rest[:groupsEnd])
	if err != nil {
		return w, format.ChecksumAbsent, err
	}
	if flags.Forced() {
		_, _ = sum.Write(dst[:w])
	}

	if hasTail {
		if err := e.blocks.decodeTail(dst[w:], rest[groupsEnd:end], r); err != nil {
			return w, format.ChecksumAbsent, err
		}
		if flags.Checksummed() {
			_, _ = sum.Write(dst[w : w+r])
		}
		w += r
	}

	switch {
	case trailer != nil:
		ok, err := section.VerifyTrailer(trailer, sum.Sum64())
		if err != nil {
			return w, format.ChecksumFailed, err
		}
		if !ok {
			return w, format.ChecksumFailed, errs.ErrChecksumFailed
		}

		return w, format.ChecksumPassed, nil
	case flags.OnRemain() && hasTail:
		return w, format.ChecksumFailed, fmt.Errorf("%w: tail group without checksum trailer", errs.ErrChecksumFailed)
	default:
		return w, format.ChecksumAbsent, nil
	}
}

// readChunk fills buf from src. eof is true once src is exhausted, in which
// case n may be less than len(buf).
func readChunk(src io.Reader, buf []byte) (n int, eof bool, err error) {
	for n < len(buf) {
		nn, rerr := src.Read(buf[n:])
		if nn < 0 || nn > len(buf)-n {
			return n, false, fmt.Errorf("%w: source reported %d bytes for a %d byte read", errs.ErrBufferOverrun, nn, len(buf)-n)
		}
		n += nn
		if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
			return n, true, nil
		}
		if rerr != nil {
			return n, false, fmt.Errorf("%w: read: %w", errs.ErrIO, rerr)
		}
	}

	return n, false, nil
}

func writeChunk(dst io.Writer, p []byte) (int, error) {
	n, err := dst.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: write: %w", errs.ErrIO, err)
	}
	if n != len(p) {
		return n, fmt.Errorf("%w: write: %w", errs.ErrIO, io.ErrShortWrite)
	}

	return n, nil
}
