// Package checksum computes the integrity suffix appended to every bytewords payload.
//
// The checksum is the CRC-32 (IEEE polynomial) of the payload, serialized most
// significant byte first. It detects transcription errors; it is not a MAC.
package checksum

import (
	"bytes"
	"hash/crc32"

	"github.com/arloliu/bytewords/endian"
)

// Size is the length of a serialized checksum in bytes.
const Size = 4

var engine = endian.GetNetworkEngine()

// Value returns the CRC-32 of data as an integer.
func Value(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// Sum returns the serialized checksum of data.
func Sum(data []byte) [Size]byte {
	var sum [Size]byte
	engine.PutUint32(sum[:], Value(data))

	return sum
}

// Append appends the serialized checksum of data to dst and returns the extended slice.
//
// Passing the same slice as dst and data appends the checksum of the payload to itself.
func Append(dst, data []byte) []byte {
	return engine.AppendUint32(dst, Value(data))
}

// Verify reports whether received is the serialized checksum of body.
func Verify(body, received []byte) bool {
	sum := Sum(body)

	return bytes.Equal(sum[:], received)
}

// Split separates a checksummed buffer into its body and trailing checksum.
// ok is false when buf is shorter than Size.
func Split(buf []byte) (body, sum []byte, ok bool) {
	if len(buf) < Size {
		return nil, nil, false
	}
	n := len(buf) - Size

	return buf[:n:n], buf[n:], true
}
