package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/codeconv/internal/config"
	"github.com/wizzomafizzo/codeconv/internal/logging"
	"github.com/wizzomafizzo/codeconv/internal/storage"
)

// createConfigCommand creates the config command and its subcommands.
func createConfigCommand(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the converter configuration",
	}

	cmd.AddCommand(createConfigInitCommand(fs), createConfigShowCommand(fs))
	return cmd
}

func createConfigInitCommand(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: "Write the default configuration to the path given by --config, " +
			"or to the user config directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}

			path, err := configTargetPath(cmd, fs)
			if err != nil {
				return err
			}

			if err := config.DefaultConfig().Write(fs, path, force); err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}

			logging.Get(cmd.Context()).Info().Str("path", path).Msg("config written")
			_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}

func createConfigShowCommand(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd, fs)
			if err != nil {
				return err
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("failed to print config: %w", err)
			}
			return nil
		},
	}
}

func configTargetPath(cmd *cobra.Command, fs afero.Fs) (string, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return path, nil
	}

	path, err = storage.New(fs).GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}
