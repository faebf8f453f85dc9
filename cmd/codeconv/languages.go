package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// createLanguagesCommand creates the languages command.
func createLanguagesCommand(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := createRegistryFromCommand(cmd, fs)
			if err != nil {
				return err
			}

			for _, c := range registry.List() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\t(%s, *%s)\n",
					c.Source(), c.Target(), c.Name(), c.Extension())
				if err != nil {
					return fmt.Errorf("failed to print languages: %w", err)
				}
			}
			return nil
		},
	}
}
