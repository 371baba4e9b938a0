package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bytewords/errs"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestEncodeHexStdin(t *testing.T) {
	out, err := run(t, "00 01 02 80 ff\n", "encode", "--hex")
	require.NoError(t, err)
	require.Equal(t, "able acid also lava zero jade need echo taxi\n", out)

	out, err = run(t, "00010280ff", "encode", "--hex", "--style", "minimal")
	require.NoError(t, err)
	require.Equal(t, "aeadaolazojendeoti\n", out)
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00}, 0o600))

	out, err := run(t, "", "encode", "--style", "uri", path)
	require.NoError(t, err)
	require.Equal(t, "able-tied-also-webs-lung\n", out)

	_, err = run(t, "", "encode", filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}

func TestDecodeArgs(t *testing.T) {
	out, err := run(t, "", "decode", "--hex", "able", "acid", "also", "lava", "zero", "jade", "need", "echo", "taxi")
	require.NoError(t, err)
	require.Equal(t, "00010280ff\n", out)

	out, err = run(t, "", "decode", "--style", "uri", "able-tied-also-webs-lung")
	require.NoError(t, err)
	require.Equal(t, "\x00", out)
}

func TestDecodeStdin(t *testing.T) {
	out, err := run(t, "  AEADAOLAZOJENDEOTI\n", "decode", "--hex", "--style", "minimal")
	require.NoError(t, err)
	require.Equal(t, "00010280ff\n", out)
}

func TestDecodeErrors(t *testing.T) {
	_, err := run(t, "", "decode", "able acid also lava zero jade need echo tent")
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)

	_, err = run(t, "", "decode", "able")
	require.ErrorIs(t, err, errs.ErrTooShort)

	_, err = run(t, "", "decode", "--strict", "--style", "uri", "able-tiedalso-webs-lung")
	require.ErrorIs(t, err, errs.ErrMalformedSeparator)

	_, err = run(t, "", "decode", "able able able able")
	require.ErrorIs(t, err, errs.ErrTooShort)

	out, err := run(t, "", "decode", "--allow-empty", "--hex", "able able able able")
	require.NoError(t, err)
	require.Equal(t, "\n", out)

	_, err = run(t, "", "decode", "--style", "base64", "able")
	require.ErrorIs(t, err, errs.ErrInvalidStyle)
}

func TestCompressedRoundTrip(t *testing.T) {
	payload := strings.Repeat("bytewords compress me ", 40)

	for _, algo := range []string{"none", "zstd", "s2", "lz4"} {
		t.Run(algo, func(t *testing.T) {
			encoded, err := run(t, payload, "encode", "--compress", algo, "--style", "minimal")
			require.NoError(t, err)

			decoded, err := run(t, encoded, "decode", "--compress", algo, "--style", "minimal")
			require.NoError(t, err)
			require.Equal(t, payload, decoded)

			if algo != "none" {
				require.Less(t, len(encoded), len(payload))
			}
		})
	}
}

func TestIdentify(t *testing.T) {
	out, err := run(t, "test", "identify")
	require.NoError(t, err)
	require.Equal(t, "glow undo song hill\n", out)
}

func TestWords(t *testing.T) {
	out, err := run(t, "", "words")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 256)
	require.Equal(t, "  0  0x00  able  ae", lines[0])
	require.Equal(t, "255  0xff  zero  zo", lines[255])
}

func TestInspect(t *testing.T) {
	out, err := run(t, "", "inspect", "able", "acid", "also", "lava", "zero", "jade", "need", "echo", "taxi")
	require.NoError(t, err)
	require.Contains(t, out, "style: standard")
	require.Contains(t, out, "payload: 00010280ff")
	require.Contains(t, out, "expected: 6b9b33d0")
	require.Contains(t, out, "valid: true")
	require.Contains(t, out, "word: lava")

	out, err = run(t, "", "inspect", "able acid also lava zero jade need echo tent")
	require.NoError(t, err)
	require.Contains(t, out, "received: 6b9b33d1")
	require.Contains(t, out, "valid: false")
	require.Contains(t, out, "checksum mismatch")

	out, err = run(t, "", "inspect", "able acid")
	require.NoError(t, err)
	require.Contains(t, out, "valid: false")
	require.NotContains(t, out, "expected:")

	out, err = run(t, "", "inspect", "able able able able")
	require.NoError(t, err)
	require.Contains(t, out, "expected:")
	require.Contains(t, out, "00000000")
	require.Contains(t, out, "valid: false")
	require.Contains(t, out, "too short")

	out, err = run(t, "", "inspect", "--allow-empty", "able able able able")
	require.NoError(t, err)
	require.Contains(t, out, "valid: true")

	_, err = run(t, "", "inspect", "able acix")
	require.ErrorIs(t, err, errs.ErrInvalidWord)
}

func TestConfigFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bw.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style: uri\n"), 0o600))

	out, err := run(t, "00", "encode", "--hex", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "able-tied-also-webs-lung\n", out)

	// flags win over the config file
	out, err = run(t, "00", "encode", "--hex", "--config", path, "--style", "minimal")
	require.NoError(t, err)
	require.Equal(t, "aetdaowslg\n", out)
}
