package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Sum64([]byte(tt.data)))
			assert.Equal(t, uint32(tt.id>>32), Prefix32([]byte(tt.data)))
		})
	}
}

func randBytes(n int) []byte {
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	_, _ = seededRand.Read(b)

	return b
}

func BenchmarkSum64(b *testing.B) {
	data := randBytes(32)
	b.ResetTimer()
	for b.Loop() {
		Sum64(data)
	}
}
