// Package bytewords encodes binary data as a sequence of four-letter English
// words with an embedded CRC-32 checksum, and decodes it back.
//
// Each byte value 0-255 maps to one fixed word ("able", "acid", ... "zero").
// The first and last letters of every word are unique across the dictionary, so
// a word can also be written as its two-letter minimal form, and decoding looks
// words up in constant time through a 26x26 table instead of scanning the list.
//
// # Styles
//
//	Style     Word  Separator  Example (payload 0x00 0x01 0x02 0x80 0xff)
//	Standard  4     ' '        able acid also lava zero jade need echo taxi
//	URI       4     '-'        able-acid-also-lava-zero-jade-need-echo-taxi
//	Minimal   2     none       aeadaolazojendeoti
//
// The last four words are the big-endian CRC-32 of the payload. Decoding is
// case-insensitive and verifies the checksum; it fails as a whole, never
// returning a partial result.
//
// # Basic Usage
//
//	text := bytewords.Encode(bytewords.StyleStandard, []byte{0x00, 0x01})
//	data, err := bytewords.Decode(bytewords.StyleStandard, text)
//	if errors.Is(err, errs.ErrChecksumMismatch) {
//	    // transcription error
//	}
//
// For non-default behavior (strict separators, a custom dictionary) build a
// Codec with NewCodec and options.
package bytewords

import (
	"fmt"
	"sync"

	"github.com/arloliu/bytewords/dictionary"
	"github.com/arloliu/bytewords/endian"
	"github.com/arloliu/bytewords/errs"
	"github.com/arloliu/bytewords/format"
	"github.com/arloliu/bytewords/internal/hash"
)

// Style selects the word length and separator of an encoding.
type Style = format.Style

const (
	StyleStandard = format.StyleStandard
	StyleURI      = format.StyleURI
	StyleMinimal  = format.StyleMinimal
)

// IdentifierLength is the number of words in an Identifier.
const IdentifierLength = 4

// defaultCodecs holds one shared codec per style, built with the first call.
var defaultCodecs = sync.OnceValue(func() map[format.Style]*Codec {
	idx := dictionary.DefaultIndex()

	return map[format.Style]*Codec{
		format.StyleStandard: {style: format.StyleStandard, index: idx},
		format.StyleURI:      {style: format.StyleURI, index: idx},
		format.StyleMinimal:  {style: format.StyleMinimal, index: idx},
	}
})

func codecFor(style format.Style) (*Codec, error) {
	c, ok := defaultCodecs()[style]
	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidStyle, style)
	}

	return c, nil
}

func mustCodec(style format.Style) *Codec {
	c, err := codecFor(style)
	if err != nil {
		panic(err)
	}

	return c
}

// Encode encodes data with its checksum in the given style.
//
// It panics if style is not one of StyleStandard, StyleURI or StyleMinimal.
func Encode(style Style, data []byte) string {
	return mustCodec(style).Encode(data)
}

// Decode decodes text in the given style and verifies its checksum.
//
// Returns:
//   - []byte: The payload, without the checksum
//   - error: Wraps errs.ErrInvalidWord, errs.ErrTooShort, errs.ErrChecksumMismatch,
//     or errs.ErrInvalidStyle for an unknown style
func Decode(style Style, text string) ([]byte, error) {
	c, err := codecFor(style)
	if err != nil {
		return nil, err
	}

	return c.Decode(text)
}

// EncodeWords encodes data as words without a checksum.
//
// It panics if style is not one of StyleStandard, StyleURI or StyleMinimal.
func EncodeWords(style Style, data []byte) string {
	return mustCodec(style).EncodeWords(data)
}

// DecodeWords decodes checksum-free words produced by EncodeWords.
func DecodeWords(style Style, text string) ([]byte, error) {
	c, err := codecFor(style)
	if err != nil {
		return nil, err
	}

	return c.DecodeWords(text)
}

// Identifier returns a short fingerprint of data as IdentifierLength words,
// suitable for comparing keys by eye. It carries no checksum and cannot be
// decoded back to data.
//
// It panics if style is not one of StyleStandard, StyleURI or StyleMinimal.
func Identifier(style Style, data []byte) string {
	prefix := endian.GetNetworkEngine().AppendUint32(make([]byte, 0, IdentifierLength), hash.Prefix32(data))

	return EncodeWords(style, prefix)
}
