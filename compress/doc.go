// Package compress provides the optional pre-compression stage that runs in
// front of the base16384 codec.
//
// The codec itself never compresses: 7 raw bytes always become 8 encoded
// bytes. When the payload is compressible, shrinking it first keeps the text
// form small. The stage is a plain block transform: the compressed bytes are
// handed to the codec unchanged, and the receiver must decompress with the
// same algorithm. Nothing in the encoded text records which one was used.
//
// Supported algorithms:
//   - None: bytes pass through unchanged
//   - Zstd: best ratio (klauspost/compress, or valyala/gozstd when built
//     with cgo and the gozstd tag)
//   - S2: fast with a good ratio
//   - LZ4: fastest decompression
//
// All codecs are stateless values safe for concurrent use.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
package compress
