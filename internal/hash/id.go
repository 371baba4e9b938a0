package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Prefix32 returns the most significant 32 bits of the xxHash64 of data.
func Prefix32(data []byte) uint32 {
	return uint32(Sum64(data) >> 32) //nolint:gosec
}
