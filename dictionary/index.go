package dictionary

import (
	"fmt"
	"sync"

	"github.com/arloliu/bytewords/errs"
)

// alphabet is the number of letters on each axis of the reverse lookup table.
const alphabet = 26

// noWord marks an empty cell of the lookup table.
const noWord int16 = -1

// Index maps a (first letter, last letter) pair to a byte value in O(1).
//
// An Index is immutable once built and safe for concurrent use without
// synchronization. Build one with NewIndex for a custom dictionary, or use
// DefaultIndex for the standard word list. A zero Index has no dictionary of
// its own and resolves every lookup through DefaultIndex.
type Index struct {
	words *[Size]string
	table [alphabet][alphabet]int16
}

var defaultIndex = sync.OnceValue(func() *Index {
	idx, err := NewIndex(&Words)
	if err != nil {
		panic(fmt.Sprintf("bytewords: default dictionary is invalid: %v", err))
	}

	return idx
})

// DefaultIndex returns the Index of the standard dictionary.
//
// The index is built on first use and shared for the lifetime of the process.
func DefaultIndex() *Index {
	return defaultIndex()
}

// NewIndex validates words and builds its reverse lookup table.
//
// The dictionary is referenced, not copied; it must not be modified afterwards.
//
// Returns:
//   - *Index: The lookup index for words
//   - error: ErrInvalidDictionary or ErrDictionaryCollision if words fails Validate
func NewIndex(words *[Size]string) (*Index, error) {
	if err := Validate(words); err != nil {
		return nil, err
	}

	idx := &Index{words: words}
	for x := range idx.table {
		for y := range idx.table[x] {
			idx.table[x][y] = noWord
		}
	}

	for i, w := range words {
		idx.table[w[0]-'a'][w[3]-'a'] = int16(i) //nolint:gosec
	}

	return idx, nil
}

// Validate checks that words is usable as a byteword dictionary: every entry is
// four lowercase ASCII letters and no two entries share a first/last letter pair.
// Distinct pairs imply distinct words.
func Validate(words *[Size]string) error {
	if words == nil {
		return fmt.Errorf("%w: nil word list", errs.ErrInvalidDictionary)
	}

	var seen [alphabet][alphabet]int16
	for i, w := range words {
		if len(w) != 4 {
			return fmt.Errorf("%w: word %d %q is not four letters", errs.ErrInvalidDictionary, i, w)
		}
		for j := range len(w) {
			if w[j] < 'a' || w[j] > 'z' {
				return fmt.Errorf("%w: word %d %q is not lowercase a-z", errs.ErrInvalidDictionary, i, w)
			}
		}

		x, y := w[0]-'a', w[3]-'a'
		// seen holds index+1 so the zero value means unused
		if prev := seen[x][y]; prev != 0 {
			return fmt.Errorf("%w: %q and %q", errs.ErrDictionaryCollision, words[prev-1], w)
		}
		seen[x][y] = int16(i + 1) //nolint:gosec
	}

	return nil
}

// built returns idx, or the default index when idx was never built by NewIndex.
func (idx *Index) built() *Index {
	if idx.words == nil {
		return DefaultIndex()
	}

	return idx
}

// Word returns the four-letter word for b in this index's dictionary.
func (idx *Index) Word(b byte) string {
	return idx.built().words[b]
}

// MinimalWord returns the two-letter minimal form of b in this index's dictionary.
func (idx *Index) MinimalWord(b byte) string {
	w := idx.built().words[b]

	return w[:1] + w[3:]
}

// DecodeWord resolves text to its byte value.
//
// wordLen must be 4 for full words or 2 for minimal words; only the first
// wordLen bytes of text are examined. Letters are matched case-insensitively.
//
// The first and last letters select a candidate from the lookup table. For
// full words the two middle letters must then match the candidate exactly,
// so strings that merely share the outer letters of a word are rejected.
//
// Returns:
//   - byte: The decoded value
//   - bool: false if text is not a word of this dictionary
func (idx *Index) DecodeWord(text string, wordLen int) (byte, bool) {
	if (wordLen != 4 && wordLen != 2) || len(text) < wordLen {
		return 0, false
	}
	idx = idx.built()

	x, ok := letterIndex(text[0])
	if !ok {
		return 0, false
	}
	y, ok := letterIndex(text[wordLen-1])
	if !ok {
		return 0, false
	}

	value := idx.table[x][y]
	if value == noWord {
		return 0, false
	}

	if wordLen == 4 {
		w := idx.words[value]
		if toLower(text[1]) != w[1] || toLower(text[2]) != w[2] {
			return 0, false
		}
	}

	return byte(value), true
}

// letterIndex returns the zero-based alphabet position of c, folding ASCII case.
func letterIndex(c byte) (byte, bool) {
	c = toLower(c)
	if c < 'a' || c > 'z' {
		return 0, false
	}

	return c - 'a', true
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
