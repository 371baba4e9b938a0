package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/bytewords/errs"
)

type (
	Style           uint8
	CompressionType uint8
)

const (
	StyleStandard Style = 0x1 // StyleStandard joins full words with a space.
	StyleURI      Style = 0x2 // StyleURI joins full words with a hyphen.
	StyleMinimal  Style = 0x3 // StyleMinimal concatenates two-letter words.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

const (
	// FullWordLength is the length of a byteword in the standard and URI styles.
	FullWordLength = 4
	// MinimalWordLength is the length of a byteword in the minimal style.
	MinimalWordLength = 2
)

func (s Style) String() string {
	switch s {
	case StyleStandard:
		return "standard"
	case StyleURI:
		return "uri"
	case StyleMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined styles.
func (s Style) Valid() bool {
	return s >= StyleStandard && s <= StyleMinimal
}

// WordLength returns the number of letters emitted per byte.
func (s Style) WordLength() int {
	if s == StyleMinimal {
		return MinimalWordLength
	}

	return FullWordLength
}

// Separator returns the byte placed between words, and false when the style has none.
func (s Style) Separator() (byte, bool) {
	switch s {
	case StyleStandard:
		return ' ', true
	case StyleURI:
		return '-', true
	default:
		return 0, false
	}
}

// ParseStyle parses a style name, case-insensitively. "std" and "min" are
// accepted as short forms of "standard" and "minimal".
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "std":
		return StyleStandard, nil
	case "uri":
		return StyleURI, nil
	case "minimal", "min":
		return StyleMinimal, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidStyle, name)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression parses a compression name, case-insensitively.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}
