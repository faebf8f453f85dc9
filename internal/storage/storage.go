// Package storage provides XDG-compliant storage path management for codeconv.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/codeconv/internal/constants"
)

// Manager handles storage paths with filesystem abstraction
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns the XDG data directory for codeconv, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	return m.ensureDir(filepath.Join(xdg.DataHome, constants.AppName))
}

// GetConfigDir returns the XDG config directory for codeconv, creating it if necessary
func (m *Manager) GetConfigDir() (string, error) {
	return m.ensureDir(filepath.Join(xdg.ConfigHome, constants.AppName))
}

// GetLogPath returns the full path to the codeconv log file
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.LogFilename), nil
}

// GetConfigPath returns the full path to the user config file
func (m *Manager) GetConfigPath() (string, error) {
	configDir, err := m.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, constants.ConfigFilename), nil
}

func (m *Manager) ensureDir(dir string) (string, error) {
	if err := m.fs.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return dir, nil
}
