package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)

	buf := engine.AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
}

func TestGetNetworkEngine(t *testing.T) {
	require.Equal(t, GetBigEndianEngine(), GetNetworkEngine())

	var buf [4]byte
	GetNetworkEngine().PutUint32(buf[:], 0xdeadbeef)
	require.Equal(t, [4]byte{0xde, 0xad, 0xbe, 0xef}, buf)
}
