package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the
// built-in codecs. The backing implementation is chosen at build time:
// klauspost/compress by default, valyala/gozstd when built with cgo and the
// gozstd tag. Both produce standard zstd frames, so either side can decode
// the other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
