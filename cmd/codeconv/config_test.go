package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/codeconv/internal/config"
)

func TestConfigInitCommand(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	stdout, _, err := executeCommand(t, fs, "config", "init", "--config", "/etc/codeconv.yml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote /etc/codeconv.yml")

	loaded, err := config.Load(fs, "/etc/codeconv.yml")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)

	_, _, err = executeCommand(t, fs, "config", "init", "--config", "/etc/codeconv.yml")
	require.ErrorIs(t, err, config.ErrConfigExists)
	assert.Contains(t, err.Error(), "--force")

	_, _, err = executeCommand(t, fs, "config", "init", "--config", "/etc/codeconv.yml", "--force")
	require.NoError(t, err)
}

func TestConfigShowCommand(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c.yml", []byte("indent: 6\n"), 0o644))

	stdout, _, err := executeCommand(t, fs, "config", "show", "--config", "/c.yml")

	require.NoError(t, err)
	assert.Contains(t, stdout, "indent: 6")
}

func TestConfigShowCommand_Default(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, afero.NewMemMapFs(), "config", "show")

	require.NoError(t, err)
	assert.Equal(t, "indent: 4\n", stdout)
}
