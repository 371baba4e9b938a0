package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// The implementation is klauspost/compress/zstd unless the package is built
// with cgo and the gozstd tag, which switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
