package config

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/codeconv/internal/constants"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()

	assert.Equal(t, DefaultIndent, config.Indent)
	assert.Empty(t, config.Java.Keywords)
	assert.Empty(t, config.JavaScript.Replacements)
	require.NoError(t, config.Validate())
}

func TestLoadFromYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    *Config
		wantErr bool
	}{
		{
			name:  "empty document keeps defaults",
			input: "",
			want:  DefaultConfig(),
		},
		{
			name:  "indent override",
			input: "indent: 2\n",
			want:  &Config{Indent: 2},
		},
		{
			name: "keyword and replacement tables",
			input: `
java:
  keywords:
    String: string
    final: ""
javascript:
  replacements:
    console.log: console.debug
    "==": "==="
`,
			want: &Config{
				Indent: DefaultIndent,
				Java: Java{Keywords: map[string]string{
					"String": "string",
					"final":  "",
				}},
				JavaScript: JavaScript{Replacements: map[string]string{
					"console.log": "console.debug",
					"==":          "===",
				}},
			},
		},
		{
			name:    "negative indent",
			input:   "indent: -1\n",
			wantErr: true,
		},
		{
			name:    "indent too large",
			input:   "indent: 17\n",
			wantErr: true,
		},
		{
			name:    "invalid keyword token",
			input:   "java:\n  keywords:\n    \"two words\": x\n",
			wantErr: true,
		},
		{
			name:  "package keyword override",
			input: "java:\n  keywords:\n    package: namespace\n",
			want: &Config{
				Indent: DefaultIndent,
				Java:   Java{Keywords: map[string]string{"package": "namespace"}},
			},
		},
		{
			name:    "java operator key never applies",
			input:   "java:\n  keywords:\n    \"==\": eq\n",
			wantErr: true,
		},
		{
			name:    "java dotted key never applies",
			input:   "java:\n  keywords:\n    System.out: Console\n",
			wantErr: true,
		},
		{
			name:    "javascript dotted key other than console.log",
			input:   "javascript:\n  replacements:\n    Math.floor: Math.trunc\n",
			wantErr: true,
		},
		{
			name:    "javascript compound operator",
			input:   "javascript:\n  replacements:\n    \"+=\": \"-=\"\n",
			wantErr: true,
		},
		{
			name:    "javascript string literal key",
			input:   "javascript:\n  replacements:\n    \"'a'\": \"'b'\"\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			input:   "indent: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadFromYAML([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(afero.NewMemMapFs(), "/nope.yml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestResolve_ExplicitPath(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/codeconv.yml", []byte("indent: 8\n"), 0o644))

	config, err := Resolve(fs, "/work/codeconv.yml")

	require.NoError(t, err)
	assert.Equal(t, 8, config.Indent)
}

func TestResolve_XDGConfigHome(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := filepath.Join(xdg.ConfigHome, constants.AppName, constants.ConfigFilename)
	require.NoError(t, afero.WriteFile(fs, path, []byte("indent: 3\n"), 0o644))

	config, err := Resolve(fs, "")

	require.NoError(t, err)
	assert.Equal(t, 3, config.Indent)
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	config, err := Resolve(afero.NewMemMapFs(), "")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	original := &Config{
		Indent: 2,
		Java:   Java{Keywords: map[string]string{"String": "string"}},
	}

	require.NoError(t, original.Write(fs, "/cfg/codeconv/config.yml", false))

	loaded, err := Load(fs, "/cfg/codeconv/config.yml")
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/config.yml", []byte("indent: 1\n"), 0o644))

	err := DefaultConfig().Write(fs, "/config.yml", false)
	require.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, DefaultConfig().Write(fs, "/config.yml", true))
	loaded, err := Load(fs, "/config.yml")
	require.NoError(t, err)
	assert.Equal(t, DefaultIndent, loaded.Indent)
}

func TestValidate_ErrorNamesTableAndKey(t *testing.T) {
	t.Parallel()

	config := &Config{
		Indent:     DefaultIndent,
		JavaScript: JavaScript{Replacements: map[string]string{"+=": "-="}},
	}

	err := config.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "javascript.replacements")
	assert.Contains(t, err.Error(), `"+="`)
}
