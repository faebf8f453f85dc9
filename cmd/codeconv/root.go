package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/codeconv/internal/config"
	"github.com/wizzomafizzo/codeconv/internal/convert"
	"github.com/wizzomafizzo/codeconv/internal/logging"
	"github.com/wizzomafizzo/codeconv/internal/record"
)

// createNewRootCommand creates the root command backed by the OS filesystem.
func createNewRootCommand() *cobra.Command {
	return createRootCommandWithFs(afero.NewOsFs())
}

// createRootCommandWithFs creates the root command. Without a subcommand it
// prints the sample record.
func createRootCommandWithFs(fs afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "codeconv",
		Short:         "Print the sample record and convert source between languages",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initLogging(cmd, fs)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return record.Run(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to converter config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("log-file", false, "Also write logs to the rotating log file")

	rootCmd.AddCommand(
		createConvertCommand(fs),
		createLanguagesCommand(fs),
		createConfigCommand(fs),
	)

	return rootCmd
}

// initLogging attaches a logger to the command context. Logs go to stderr,
// and additionally to the log file when --log-file is set.
func initLogging(cmd *cobra.Command, fs afero.Fs) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	logFile, err := cmd.Flags().GetBool("log-file")
	if err != nil {
		return fmt.Errorf("failed to get log-file flag: %w", err)
	}

	level := logging.WarnLevel
	if verbose {
		level = logging.DebugLevel
	}

	ctx, err := logging.New(cmd.Context(), fs, logging.Config{
		Writer: zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true},
		Level:  level,
		File:   logFile,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cmd.SetContext(ctx)
	return nil
}

// createRegistryFromCommand resolves the config named by --config and builds
// the converter registry from it.
func createRegistryFromCommand(cmd *cobra.Command, fs afero.Fs) (*convert.Registry, error) {
	cfg, err := loadConfigFromCommand(cmd, fs)
	if err != nil {
		return nil, err
	}
	return convert.NewRegistry(cfg), nil
}

func loadConfigFromCommand(cmd *cobra.Command, fs afero.Fs) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Resolve(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logging.Get(cmd.Context()).Debug().
		Str("path", configPath).
		Int("indent", cfg.Indent).
		Msg("config resolved")

	return cfg, nil
}
