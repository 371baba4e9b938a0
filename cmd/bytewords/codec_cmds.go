package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/arloliu/bytewords"
)

func (a *app) newEncodeCmd() *cobra.Command {
	var hexInput bool

	cmd := &cobra.Command{
		Use:   "encode [FILE|-]",
		Short: "Encode bytes from FILE or stdin as bytewords",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, codec, comp, err := a.settings()
			if err != nil {
				return err
			}

			data, err := a.readInput(args)
			if err != nil {
				return err
			}
			if hexInput {
				data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
				if err != nil {
					return oops.In("encode").Wrapf(err, "parsing hex input")
				}
			}

			packed, err := comp.Compress(data)
			if err != nil {
				return oops.In("encode").With("compress", cfg.Compression.String()).Wrapf(err, "compressing payload")
			}

			log.WithFields(logger.Fields{
				"at":         "encode",
				"style":      cfg.Style.String(),
				"inputSize":  len(data),
				"packedSize": len(packed),
			}).Debug("encoding_payload")

			_, err = fmt.Fprintln(a.out, codec.Encode(packed))

			return err
		},
	}
	cmd.Flags().BoolVar(&hexInput, "hex", false, "treat input as hexadecimal text")

	return cmd
}

func (a *app) newDecodeCmd() *cobra.Command {
	var hexOutput bool

	cmd := &cobra.Command{
		Use:   "decode [WORDS...]",
		Short: "Decode bytewords from arguments or stdin and verify the checksum",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, codec, comp, err := a.settings()
			if err != nil {
				return err
			}

			text, err := a.readText(cfg.Style, args)
			if err != nil {
				return err
			}

			packed, err := codec.Decode(text)
			if err != nil {
				log.WithError(err).WithField("style", cfg.Style.String()).Debug("decode_failed")
				return oops.In("decode").With("style", cfg.Style.String()).Wrap(err)
			}

			data, err := comp.Decompress(packed)
			if err != nil {
				return oops.In("decode").With("compress", cfg.Compression.String()).Wrapf(err, "decompressing payload")
			}

			if hexOutput {
				_, err = fmt.Fprintln(a.out, hex.EncodeToString(data))
				return err
			}
			_, err = a.out.Write(data)

			return err
		},
	}
	cmd.Flags().BoolVar(&hexOutput, "hex", false, "write output as hexadecimal text")

	return cmd
}

func (a *app) newIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify [FILE|-]",
		Short: "Print a short word fingerprint of FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := a.settings()
			if err != nil {
				return err
			}

			data, err := a.readInput(args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.out, bytewords.Identifier(cfg.Style, data))

			return err
		},
	}
}
