package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/bytewords"
	"github.com/arloliu/bytewords/checksum"
	"github.com/arloliu/bytewords/dictionary"
	"github.com/arloliu/bytewords/errs"
	"github.com/arloliu/bytewords/format"
)

func (a *app) newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Print the dictionary: byte value, word and minimal form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for i := range dictionary.Size {
				b := byte(i)
				if _, err := fmt.Fprintf(a.out, "%3d  0x%02x  %s  %s\n", b, b, dictionary.Word(b), dictionary.MinimalWord(b)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

type wordReport struct {
	Index   int    `yaml:"index"`
	Word    string `yaml:"word"`
	Minimal string `yaml:"minimal"`
	Value   string `yaml:"value"`
}

type checksumReport struct {
	Expected string `yaml:"expected"`
	Received string `yaml:"received"`
}

type inspectReport struct {
	Style      string          `yaml:"style"`
	Words      []wordReport    `yaml:"words"`
	Payload    string          `yaml:"payload"`
	Checksum   *checksumReport `yaml:"checksum,omitempty"`
	Valid      bool            `yaml:"valid"`
	Error      string          `yaml:"error,omitempty"`
	Identifier string          `yaml:"identifier,omitempty"`
}

func (a *app) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [WORDS...]",
		Short: "Describe every word of an encoded string and check its checksum, as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, codec, _, err := a.settings()
			if err != nil {
				return err
			}

			text, err := a.readText(cfg.Style, args)
			if err != nil {
				return err
			}

			report, err := inspect(codec, cfg.Style, text)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(a.out)
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}

// inspect parses text once without trusting its checksum and reports what it
// finds. Unreadable words are returned as errors; length and checksum problems
// are reported.
func inspect(codec *bytewords.Codec, style format.Style, text string) (*inspectReport, error) {
	raw, err := codec.DecodeWords(text)
	if err != nil {
		return nil, err
	}

	report := &inspectReport{
		Style: style.String(),
		Words: make([]wordReport, 0, len(raw)),
	}

	for i, b := range raw {
		report.Words = append(report.Words, wordReport{
			Index:   i,
			Word:    dictionary.Word(b),
			Minimal: dictionary.MinimalWord(b),
			Value:   fmt.Sprintf("0x%02x", b),
		})
	}

	body, received, ok := checksum.Split(raw)
	if !ok {
		report.Payload = hex.EncodeToString(raw)
		report.Error = fmt.Sprintf("%v: need at least %d words for a checksum", errs.ErrTooShort, checksum.Size)

		return report, nil
	}

	expected := checksum.Sum(body)
	report.Payload = hex.EncodeToString(body)
	report.Checksum = &checksumReport{
		Expected: hex.EncodeToString(expected[:]),
		Received: hex.EncodeToString(received),
	}

	switch {
	case len(raw) < codec.MinDecodedLength():
		report.Error = fmt.Sprintf("%v: %d words, need at least %d", errs.ErrTooShort, len(raw), codec.MinDecodedLength())
	case !checksum.Verify(body, received):
		report.Error = fmt.Sprintf("%v: expected %x, got %x", errs.ErrChecksumMismatch, expected[:], received)
	default:
		report.Valid = true
		report.Identifier = bytewords.Identifier(style, body)
	}

	return report, nil
}
