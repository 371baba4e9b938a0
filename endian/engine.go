// Package endian provides byte order utilities for the bytewords checksum.
//
// Checksums are serialized in network byte order (most significant byte first)
// so that the encoded checksum words are identical on every host and across
// implementations. This package combines encoding/binary's ByteOrder and
// AppendByteOrder into a single EndianEngine so callers can both put and append.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian (network order) engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNetworkEngine returns the engine used for all wire-visible integers.
// It is an alias of GetBigEndianEngine.
func GetNetworkEngine() EndianEngine {
	return GetBigEndianEngine()
}
