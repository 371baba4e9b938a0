package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/bytewords/errs"
	"github.com/arloliu/bytewords/format"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, "style: minimal\ncompress: zstd\nstrict: true\nallow_empty: true\n")

	v := viper.New()
	require.NoError(t, Init(v, path))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	require.Equal(t, format.StyleMinimal, cfg.Style)
	require.Equal(t, format.CompressionZstd, cfg.Compression)
	require.True(t, cfg.Strict)
	require.True(t, cfg.AllowEmpty)
	require.Len(t, cfg.CodecOptions(), 3)
}

func TestDefaultConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, BaseDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("style: uri\n"), 0o600))

	got, err := BaseDirPath()
	require.NoError(t, err)
	require.Equal(t, dir, got)

	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	require.Equal(t, format.StyleURI, cfg.Style)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "style: minimal\n")
	t.Setenv("BYTEWORDS_STYLE", "uri")
	t.Setenv("BYTEWORDS_COMPRESS", "lz4")

	v := viper.New()
	require.NoError(t, Init(v, path))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	require.Equal(t, format.StyleURI, cfg.Style)
	require.Equal(t, format.CompressionLZ4, cfg.Compression)
}

func TestInvalidValues(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyStyle, "base58")
	_, err := FromViper(v)
	require.ErrorIs(t, err, errs.ErrInvalidStyle)

	v = viper.New()
	SetDefaults(v)
	v.Set(KeyCompress, "brotli")
	_, err = FromViper(v)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestMissingExplicitFile(t *testing.T) {
	v := viper.New()
	err := Init(v, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewCodec(t *testing.T) {
	cfg := Default()
	cfg.Style = format.StyleURI
	cfg.Strict = true

	codec, err := cfg.NewCodec()
	require.NoError(t, err)
	require.Equal(t, format.StyleURI, codec.Style())

	_, err = codec.Decode("able-tiedalso-webs-lung")
	require.ErrorIs(t, err, errs.ErrMalformedSeparator)
}
