// Package compress provides optional payload compression applied before
// bytewords encoding.
//
// Every payload byte becomes a word, so shrinking the payload shortens the
// phrase a person has to read or type. Compression is not recorded in the
// encoded text: producer and consumer must agree on the algorithm, the same
// way they agree on the style.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload unchanged
//   - Zstd (format.CompressionZstd): best ratio, klauspost/compress by default,
//     valyala/gozstd when built with cgo and the gozstd tag
//   - S2 (format.CompressionS2): fast, klauspost/compress/s2
//   - LZ4 (format.CompressionLZ4): block format, pierrec/lz4
//
// Small payloads such as keys or seeds rarely benefit; compression pays off
// for text or structured payloads of a few hundred bytes or more.
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and are safe for
// concurrent use.
package compress
