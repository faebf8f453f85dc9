package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/codeconv/internal/constants"
	"github.com/wizzomafizzo/codeconv/internal/convert"
	"github.com/wizzomafizzo/codeconv/internal/logging"
	"github.com/wizzomafizzo/codeconv/internal/prompt"
)

// defaultOutputNames are the files written by convert --save, by target language.
var defaultOutputNames = map[string]string{
	convert.LangCSharp:     constants.CSharpOutputFilename,
	convert.LangTypeScript: constants.TypeScriptOutputFilename,
}

// interactiveInput reads code from the terminal. Replaced in tests.
var interactiveInput = prompt.MultiLineInput

// createConvertCommand creates the convert command.
func createConvertCommand(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert source code between languages",
		Long: "Convert source code between languages. Reads the named file, " +
			"standard input, or an interactive prompt with --interactive.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertCommand(cmd, fs, args)
		},
	}

	cmd.Flags().StringP("from", "f", convert.LangJava, "Source language")
	cmd.Flags().StringP("to", "t", convert.LangCSharp, "Target language")
	cmd.Flags().StringP("output", "o", "", "Write converted code to this file")
	cmd.Flags().BoolP("save", "s", false, "Write converted code to the default file for the target language")
	cmd.Flags().BoolP("interactive", "i", false, "Paste code into an interactive prompt")
	cmd.MarkFlagsMutuallyExclusive("output", "save")

	return cmd
}

func runConvertCommand(cmd *cobra.Command, fs afero.Fs, args []string) error {
	opts, err := readConvertFlags(cmd)
	if err != nil {
		return err
	}
	if opts.interactive && len(args) > 0 {
		return errors.New("cannot use --interactive with a file argument")
	}

	registry, err := createRegistryFromCommand(cmd, fs)
	if err != nil {
		return err
	}

	converter, err := registry.Lookup(opts.from, opts.to)
	if err != nil {
		return fmt.Errorf("failed to find converter: %w", err)
	}

	src, err := readSource(cmd, fs, args, opts.interactive)
	if err != nil {
		return err
	}

	logger := logging.Get(cmd.Context())
	logger.Debug().
		Str("converter", converter.Name()).
		Int("bytes", len(src)).
		Msg("converting source")

	result, err := converter.Convert(src)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	outputPath := opts.output
	if opts.save {
		outputPath = defaultOutputNames[converter.Target()]
	}

	if outputPath == "" {
		if _, err := io.WriteString(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if err := afero.WriteFile(fs, outputPath, []byte(result), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		_, _ = color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", outputPath)
		logger.Info().Str("path", outputPath).Msg("converted code written")
	}

	_, _ = color.New(color.FgCyan).Fprintf(cmd.ErrOrStderr(),
		"Words in converted code: %d\n", convert.WordCount(result))
	return nil
}

type convertOptions struct {
	from        string
	to          string
	output      string
	save        bool
	interactive bool
}

func readConvertFlags(cmd *cobra.Command) (convertOptions, error) {
	var opts convertOptions
	var err error

	if opts.from, err = cmd.Flags().GetString("from"); err != nil {
		return opts, fmt.Errorf("failed to get from flag: %w", err)
	}
	if opts.to, err = cmd.Flags().GetString("to"); err != nil {
		return opts, fmt.Errorf("failed to get to flag: %w", err)
	}
	if opts.output, err = cmd.Flags().GetString("output"); err != nil {
		return opts, fmt.Errorf("failed to get output flag: %w", err)
	}
	if opts.save, err = cmd.Flags().GetBool("save"); err != nil {
		return opts, fmt.Errorf("failed to get save flag: %w", err)
	}
	if opts.interactive, err = cmd.Flags().GetBool("interactive"); err != nil {
		return opts, fmt.Errorf("failed to get interactive flag: %w", err)
	}
	return opts, nil
}

// readSource returns the code to convert from the file argument, the
// interactive prompt, or standard input, in that order of preference.
func readSource(cmd *cobra.Command, fs afero.Fs, args []string, interactive bool) (string, error) {
	switch {
	case len(args) == 1:
		data, err := afero.ReadFile(fs, args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	case interactive:
		src, err := interactiveInput(cmd.ErrOrStderr(), "Your code:")
		if err != nil {
			return "", fmt.Errorf("failed to read code: %w", err)
		}
		return src, nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}
}
