// Package config loads bytewords CLI settings from flags, environment and an
// optional YAML config file.
//
// Precedence, highest first: command-line flags, BYTEWORDS_* environment
// variables, $HOME/.bytewords/config.yaml, built-in defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"

	"github.com/arloliu/bytewords"
	"github.com/arloliu/bytewords/format"
)

var log = logger.GetGoI2PLogger()

const (
	// BaseDirName is the directory under the user's home holding config.yaml.
	BaseDirName = ".bytewords"
	// EnvPrefix prefixes environment overrides, e.g. BYTEWORDS_STYLE=uri.
	EnvPrefix = "BYTEWORDS"
)

// Keys understood in the config file and environment.
const (
	KeyStyle      = "style"
	KeyCompress   = "compress"
	KeyStrict     = "strict"
	KeyAllowEmpty = "allow_empty"
)

// Config holds resolved CLI settings.
type Config struct {
	Style       format.Style
	Compression format.CompressionType
	Strict      bool
	AllowEmpty  bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Style:       format.StyleStandard,
		Compression: format.CompressionNone,
	}
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyStyle, d.Style.String())
	v.SetDefault(KeyCompress, strings.ToLower(d.Compression.String()))
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyAllowEmpty, d.AllowEmpty)
}

// Init prepares v to read cfgFile, or the default config path when cfgFile
// is empty, and to honor BYTEWORDS_* environment variables.
//
// A missing default config file is not an error; a missing explicit one is.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := BaseDirPath(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			log.WithField("at", "config.Init").Debug("no_config_file")
			return nil
		}

		return oops.In("config").With("file", cfgFile).Wrapf(err, "reading config file")
	}

	log.WithField("file", v.ConfigFileUsed()).Debug("using_config_file")

	return nil
}

// FromViper resolves a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	style, err := format.ParseStyle(v.GetString(KeyStyle))
	if err != nil {
		return nil, oops.In("config").With("key", KeyStyle).Wrap(err)
	}

	compression, err := format.ParseCompression(v.GetString(KeyCompress))
	if err != nil {
		return nil, oops.In("config").With("key", KeyCompress).Wrap(err)
	}

	cfg := &Config{
		Style:       style,
		Compression: compression,
		Strict:      v.GetBool(KeyStrict),
		AllowEmpty:  v.GetBool(KeyAllowEmpty),
	}

	log.WithFields(logger.Fields{
		"at":       "config.FromViper",
		"style":    cfg.Style.String(),
		"compress": cfg.Compression.String(),
		"strict":   cfg.Strict,
	}).Debug("resolved_config")

	return cfg, nil
}

// CodecOptions translates cfg into bytewords codec options.
func (c *Config) CodecOptions() []bytewords.Option {
	opts := []bytewords.Option{bytewords.WithStyle(c.Style)}
	if c.Strict {
		opts = append(opts, bytewords.WithStrictSeparators())
	}
	if c.AllowEmpty {
		opts = append(opts, bytewords.WithAllowEmptyPayload())
	}

	return opts
}

// NewCodec builds a codec from cfg.
func (c *Config) NewCodec() (*bytewords.Codec, error) {
	return bytewords.NewCodec(c.CodecOptions()...)
}

// BaseDirPath returns $HOME/.bytewords.
func BaseDirPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, BaseDirName), nil
}
