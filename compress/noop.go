package compress

// NoOpCompressor passes payloads through unchanged. It is the codec behind
// format.CompressionNone, so callers never special-case "no compression".
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself, not a copy.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself, not a copy.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
