package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjartek/showmebits/pkg/bittable"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, fs afero.Fs, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(fs, args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func plainTable(t *testing.T, v uint64, chunk bittable.ChunkWidth) string {
	t.Helper()
	table, err := bittable.Render(v, chunk)
	require.NoError(t, err)
	return table.String() + "\n"
}

func TestExecute_Bits(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default chunk", args: []string{"bits", "0xff"}, want: plainTable(t, 0xff, 4)},
		{name: "chunk 1", args: []string{"bits", "5", "1"}, want: plainTable(t, 5, 1)},
		{name: "chunk 2 octal input", args: []string{"bits", "0o777", "2"}, want: plainTable(t, 0o777, 2)},
		{name: "64-bit", args: []string{"bits", "0x100000000"}, want: plainTable(t, 0x100000000, 4)},
		{name: "with decimal", args: []string{"bits", "--decimal", "0x10"}, want: plainTable(t, 0x10, 4) + "decimal: 16\n"},
		{name: "decimal before command", args: []string{"--decimal", "bits", "1"}, want: plainTable(t, 1, 4) + "decimal: 1\n"},
		{name: "decimal shorthand", args: []string{"-d", "bits", "0o10", "2"}, want: plainTable(t, 8, 2) + "decimal: 8\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, afero.NewMemMapFs(), tt.args...)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestExecute_Values(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"signed", "8", "0xff"}, want: "-1\n"},
		{args: []string{"signed", "16", "0xffff"}, want: "-1\n"},
		{args: []string{"signed", "32", "0x80000000"}, want: "-2147483648\n"},
		{args: []string{"signed", "64", "42"}, want: "42\n"},
		{args: []string{"hex", "255"}, want: "0xff\n"},
		{args: []string{"hex", "4294967296"}, want: "0x100000000\n"},
		{args: []string{"decimal", "0o17"}, want: "15\n"},
		{args: []string{"octal", "255"}, want: "377\n"},
		{args: []string{"convert", "255"}, want: "0xff\n"},
		{args: []string{"convert", "--to", "octal", "0xff"}, want: "377\n"},
		{args: []string{"convert", "-t", "DECIMAL", "0xff"}, want: "255\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			res := run(t, afero.NewMemMapFs(), tt.args...)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		wantHint string
	}{
		{
			name:     "invalid chunk width",
			args:     []string{"bits", "0xff", "3"},
			wantErr:  `invalid chunk width "3"`,
			wantHint: "chunk width must be one of 1, 2 or 4",
		},
		{
			name:     "invalid bit width",
			args:     []string{"signed", "12", "1"},
			wantErr:  `invalid bit width "12"`,
			wantHint: "bit width must be one of 8, 16, 32 or 64",
		},
		{
			name:    "invalid literal",
			args:    []string{"hex", "0xzz"},
			wantErr: "invalid literal",
		},
		{
			name:    "overflow",
			args:    []string{"decimal", "0x10000000000000000"},
			wantErr: "does not fit in 64 bits",
		},
		{
			name:     "invalid format",
			args:     []string{"convert", "--to", "binary", "1"},
			wantErr:  `invalid format "binary"`,
			wantHint: "format must be one of: hex, decimal, octal",
		},
		{
			name:    "missing argument",
			args:    []string{"signed", "8"},
			wantErr: "accepts 2 arg(s), received 1",
		},
		{
			name:    "unknown command",
			args:    []string{"binary", "1"},
			wantErr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, afero.NewMemMapFs(), tt.args...)
			assert.Equal(t, 1, res.code)
			assert.Empty(t, res.stdout, "no output for a failed command")
			assert.Contains(t, res.stderr, "Error: ")
			assert.Contains(t, res.stderr, tt.wantErr)
			if tt.wantHint != "" {
				assert.Contains(t, res.stderr, "Hint: "+tt.wantHint)
			}
		})
	}
}

func TestExecute_ConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/showmebits.yaml", []byte(`
bits:
  chunk: 2
convert:
  format: decimal
output:
  indent: 2
`), 0644))

	res := run(t, fs, "--config", "/cfg/showmebits.yaml", "bits", "3")
	require.Equal(t, 0, res.code, res.stderr)
	table, err := bittable.Render(3, 2)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  "+table.Row, lines[2])

	res = run(t, fs, "--config", "/cfg/showmebits.yaml", "--indent", "0", "convert", "0xff")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "255\n", res.stdout)
}

func TestExecute_InvalidConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("bits:\n  chunk: 5\n"), 0644))

	res := run(t, fs, "--config", "/bad.yaml", "hex", "1")
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "bits.chunk 5")
}

func TestExecute_DebugLogging(t *testing.T) {
	res := run(t, afero.NewMemMapFs(), "--log-level", "debug", "hex", "0o17")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "0xf\n", res.stdout)
	assert.Contains(t, res.stderr, "Parsed literal")
	assert.Contains(t, res.stderr, "base=8")
}

func TestExecute_LogFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte("logging:\n  level: debug\n  file: /showmebits.log\n"), 0644))

	res := run(t, fs, "--config", "/cfg.yaml", "bits", "1")
	require.Equal(t, 0, res.code, res.stderr)

	content, err := afero.ReadFile(fs, "/showmebits.log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "Rendered bit table")
}

func TestExecute_Color(t *testing.T) {
	res := run(t, afero.NewMemMapFs(), "--color", "bits", "0xf0")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "\x1b[")
}

func TestExecute_IgnoresBinaryInWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	elf := []byte("\x7fELF\x02\x01\x01\x00\x00\x00\x00\x00\x00\x00\x00\x00")
	require.NoError(t, afero.WriteFile(fs, filepath.Join(wd, "showmebits"), elf, 0755))

	res := run(t, fs, "hex", "255")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "0xff\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestExecute_BuiltinsSkipBrokenConfig(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(wd, "showmebits.yaml"), []byte("bits:\n  chunk: 3\n"), 0644))

	res := run(t, fs, "help", "bits")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "binary digit groups")

	res = run(t, fs, "completion", "bash")
	require.Equal(t, 0, res.code, res.stderr)
	assert.NotEmpty(t, res.stdout)

	// real commands still see the broken file
	res = run(t, fs, "hex", "1")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "bits.chunk 3")
}

func TestExecute_ConfiguredColors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte("output:\n  color: true\n  highlight_color: \"#ff0000\"\n"), 0644))

	themed := run(t, afero.NewMemMapFs(), "--color", "bits", "0xf0")
	custom := run(t, fs, "--config", "/cfg.yaml", "bits", "0xf0")
	require.Equal(t, 0, custom.code, custom.stderr)
	assert.Contains(t, custom.stdout, "\x1b[")
	assert.NotEqual(t, themed.stdout, custom.stdout)

	bad := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(bad, "/cfg.yaml", []byte("output:\n  muted_color: grey\n"), 0644))
	res := run(t, bad, "--config", "/cfg.yaml", "bits", "1")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "output.muted_color")
}

func TestExecute_Help(t *testing.T) {
	res := run(t, afero.NewMemMapFs(), "--help")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "bits")
	assert.Contains(t, res.stdout, "signed")
}
