package bytewords

import (
	"fmt"

	"github.com/arloliu/bytewords/checksum"
	"github.com/arloliu/bytewords/dictionary"
	"github.com/arloliu/bytewords/errs"
	"github.com/arloliu/bytewords/format"
	"github.com/arloliu/bytewords/internal/options"
	"github.com/arloliu/bytewords/internal/pool"
)

// Codec encodes and decodes bytewords in a single style.
//
// A Codec is immutable after NewCodec returns and safe for concurrent use.
// The zero value behaves like NewCodec with no options.
type Codec struct {
	style      format.Style
	index      *dictionary.Index
	strict     bool
	allowEmpty bool
}

// Option is a functional option for configuring a Codec.
type Option = options.Option[*Codec]

// WithStyle selects the encoding style. Default is StyleStandard.
func WithStyle(style format.Style) Option {
	return options.New(func(c *Codec) error {
		if !style.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidStyle, style)
		}
		c.style = style

		return nil
	})
}

// WithStrictSeparators makes Decode require exactly one separator between
// words and none before the first or after the last word.
//
// By default a separator is consumed when present and skipped when absent,
// which accepts inputs such as "ableacid also". Minimal style has no
// separator, so the option has no effect there.
func WithStrictSeparators() Option {
	return options.NoError(func(c *Codec) {
		c.strict = true
	})
}

// WithAllowEmptyPayload makes Decode accept checksum-only input and return an
// empty payload, so that Encode(nil) round-trips.
//
// By default at least one payload byte must precede the checksum.
func WithAllowEmptyPayload() Option {
	return options.NoError(func(c *Codec) {
		c.allowEmpty = true
	})
}

// WithIndex uses a custom dictionary, built with dictionary.NewIndex.
func WithIndex(idx *dictionary.Index) Option {
	return options.New(func(c *Codec) error {
		if idx == nil {
			return fmt.Errorf("%w: nil index", errs.ErrInvalidDictionary)
		}
		c.index = idx

		return nil
	})
}

// NewCodec creates a Codec.
//
// Parameters:
//   - opts: Optional configuration (WithStyle, WithStrictSeparators, WithAllowEmptyPayload, WithIndex)
//
// Returns:
//   - *Codec: The configured codec
//   - error: ErrInvalidStyle or ErrInvalidDictionary if an option is invalid
func NewCodec(opts ...Option) (*Codec, error) {
	c := &Codec{style: format.StyleStandard}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.index == nil {
		c.index = dictionary.DefaultIndex()
	}

	return c, nil
}

// Style returns the codec's style.
func (c *Codec) Style() format.Style {
	if !c.style.Valid() {
		return format.StyleStandard
	}

	return c.style
}

// dict returns the codec's dictionary index, the default one for a zero Codec.
func (c *Codec) dict() *dictionary.Index {
	if c.index == nil {
		return dictionary.DefaultIndex()
	}

	return c.index
}

// MinDecodedLength returns the smallest number of words Decode accepts.
func (c *Codec) MinDecodedLength() int {
	if c.allowEmpty {
		return checksum.Size
	}

	return checksum.Size + 1
}

// Encode appends the checksum of data to data and encodes the result as words.
// Any byte sequence can be encoded. An empty payload decodes back only with
// WithAllowEmptyPayload.
func (c *Codec) Encode(data []byte) string {
	sum := checksum.Sum(data)

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	buf.Grow(c.encodedLen(len(data) + checksum.Size))
	c.appendWords(buf, data, true)
	c.appendWords(buf, sum[:], len(data) == 0)

	return buf.String()
}

// EncodeWords encodes data as words without a checksum.
func (c *Codec) EncodeWords(data []byte) string {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	buf.Grow(c.encodedLen(len(data)))
	c.appendWords(buf, data, true)

	return buf.String()
}

// Decode parses text, verifies its checksum and returns the payload.
//
// Decoding is all or nothing. The returned error wraps one of
// errs.ErrInvalidWord, errs.ErrMalformedSeparator, errs.ErrTooShort or
// errs.ErrChecksumMismatch.
func (c *Codec) Decode(text string) ([]byte, error) {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	if err := c.scan(buf, text); err != nil {
		return nil, err
	}

	if n := buf.Len(); n < c.MinDecodedLength() {
		return nil, fmt.Errorf("%w: %d bytes decoded, need at least %d", errs.ErrTooShort, n, c.MinDecodedLength())
	}

	body, received, _ := checksum.Split(buf.Bytes())
	if !checksum.Verify(body, received) {
		expected := checksum.Sum(body)
		return nil, fmt.Errorf("%w: expected %x, got %x", errs.ErrChecksumMismatch, expected[:], received)
	}

	out := make([]byte, len(body))
	copy(out, body)

	return out, nil
}

// DecodeWords parses text into bytes without checksum verification.
func (c *Codec) DecodeWords(text string) ([]byte, error) {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	if err := c.scan(buf, text); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// encodedLen returns the text length of n encoded bytes.
func (c *Codec) encodedLen(n int) int {
	if n == 0 {
		return 0
	}

	style := c.Style()
	size := n * style.WordLength()
	if _, ok := style.Separator(); ok {
		size += n - 1
	}

	return size
}

// appendWords writes the words for data to buf. first reports whether the
// first word of data starts the output, so no separator precedes it.
func (c *Codec) appendWords(buf *pool.ByteBuffer, data []byte, first bool) {
	style := c.Style()
	idx := c.dict()
	sep, hasSep := style.Separator()
	minimal := style == format.StyleMinimal

	for i, b := range data {
		if hasSep && (i > 0 || !first) {
			_ = buf.WriteByte(sep)
		}
		if minimal {
			_, _ = buf.WriteString(idx.MinimalWord(b))
		} else {
			_, _ = buf.WriteString(idx.Word(b))
		}
	}
}

// scan decodes fixed-width words from text into buf.
func (c *Codec) scan(buf *pool.ByteBuffer, text string) error {
	style := c.Style()
	idx := c.dict()
	wordLen := style.WordLength()
	sep, hasSep := style.Separator()
	strict := c.strict && hasSep

	buf.Grow(len(text)/wordLen + 1)

	pos := 0
	for pos < len(text) {
		if strict && text[pos] == sep {
			return fmt.Errorf("%w: unexpected %q at offset %d", errs.ErrMalformedSeparator, sep, pos)
		}

		if len(text)-pos < wordLen {
			return fmt.Errorf("%w: truncated word %q at offset %d", errs.ErrInvalidWord, text[pos:], pos)
		}

		word := text[pos : pos+wordLen]
		b, ok := idx.DecodeWord(word, wordLen)
		if !ok {
			return fmt.Errorf("%w: %q at offset %d", errs.ErrInvalidWord, word, pos)
		}
		_ = buf.WriteByte(b)
		pos += wordLen

		if !hasSep || pos == len(text) {
			continue
		}

		switch {
		case text[pos] == sep:
			pos++
			if strict && pos == len(text) {
				return fmt.Errorf("%w: trailing %q at offset %d", errs.ErrMalformedSeparator, sep, pos-1)
			}
		case strict:
			return fmt.Errorf("%w: missing %q at offset %d", errs.ErrMalformedSeparator, sep, pos)
		}
	}

	return nil
}
