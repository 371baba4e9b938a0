package main

import (
	"io"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/bytewords"
	"github.com/arloliu/bytewords/compress"
	"github.com/arloliu/bytewords/internal/config"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	in      io.Reader
	out     io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), in: in, out: out}

	root := &cobra.Command{
		Use:          "bytewords",
		Short:        "Encode binary data as human-readable words with a checksum",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.Init(a.v, a.cfgFile)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.bytewords/config.yaml)")
	flags.String("style", "standard", "encoding style: standard (std), uri or minimal (min)")
	flags.String("compress", "none", "payload compression: none, zstd, s2 or lz4")
	flags.Bool("strict", false, "require exactly one separator between words when decoding")
	flags.Bool("allow-empty", false, "accept checksum-only input (an empty payload) when decoding")

	_ = a.v.BindPFlag(config.KeyStyle, flags.Lookup("style"))
	_ = a.v.BindPFlag(config.KeyCompress, flags.Lookup("compress"))
	_ = a.v.BindPFlag(config.KeyStrict, flags.Lookup("strict"))
	_ = a.v.BindPFlag(config.KeyAllowEmpty, flags.Lookup("allow-empty"))

	root.AddCommand(
		a.newEncodeCmd(),
		a.newDecodeCmd(),
		a.newIdentifyCmd(),
		a.newWordsCmd(),
		a.newInspectCmd(),
	)

	return root
}

// settings resolves the configuration and builds the codecs it selects.
func (a *app) settings() (*config.Config, *bytewords.Codec, compress.Codec, error) {
	cfg, err := config.FromViper(a.v)
	if err != nil {
		return nil, nil, nil, err
	}

	codec, err := cfg.NewCodec()
	if err != nil {
		return nil, nil, nil, oops.In("cli").Wrapf(err, "building codec")
	}

	comp, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, nil, nil, oops.In("cli").Wrapf(err, "selecting compression")
	}

	return cfg, codec, comp, nil
}

// readInput returns the contents of the file named by args, or stdin when
// args is empty or "-".
func (a *app) readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return nil, oops.In("cli").Wrapf(err, "reading stdin")
		}

		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, oops.In("cli").With("file", args[0]).Wrapf(err, "reading input file")
	}

	return data, nil
}

// readText returns args joined by the style separator, or trimmed stdin when
// no args are given. Shells split standard-style phrases into several args.
func (a *app) readText(style bytewords.Style, args []string) (string, error) {
	if len(args) > 0 {
		joiner := ""
		if sep, ok := style.Separator(); ok {
			joiner = string(sep)
		}

		return strings.Join(args, joiner), nil
	}

	data, err := io.ReadAll(a.in)
	if err != nil {
		return "", oops.In("cli").Wrapf(err, "reading stdin")
	}

	return strings.TrimSpace(string(data)), nil
}
