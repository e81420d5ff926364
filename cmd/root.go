package cmd

import (
	"fmt"
	"strings"

	"logfilter/pkg/config"
	"logfilter/pkg/logging"
	"logfilter/pkg/search"
	"logfilter/pkg/version"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the logfilter command. Cobra flag parsing is disabled:
// only known long flags in front of the first positional token are consumed,
// and every remaining token goes to config.New as written.
func NewRootCmd() *cobra.Command {
	var debug bool
	var logFile string

	cmd := &cobra.Command{
		Use:   "logfilter [--debug] [--log-file path] <search_query> <file_path> [output_file]",
		Short: "Logfilter copies the lines of a file that contain a query into another file",
		Long: `Logfilter reads a text file, keeps every line containing the search query
(ignoring case) and writes those lines to the output file, results.txt by default.
The output file is replaced on every run and left alone when nothing matches.

Flags are only recognized before the search query.`,
		Version:            version.Get().Version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagArgs, positional := splitLeadingFlags(cmd, args)
			if err := cmd.Flags().Parse(flagArgs); err != nil {
				return &config.ArgumentError{Message: err.Error()}
			}

			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
				return err
			}

			if err := logging.Setup(logging.Options{
				Debug:      debug,
				LogFile:    logFile,
				Output:     cmd.ErrOrStderr(),
				AppName:    cmd.Root().Name(),
				AppVersion: version.Get().Version,
			}); err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}

			cfg, err := config.New(append([]string{cmd.Root().Name()}, positional...))
			if err != nil {
				return err
			}
			_, err = search.Run(cfg, cmd.OutOrStdout(), logging.Logger)
			return err
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to a rotated file instead of stderr")

	return cmd
}

// splitLeadingFlags returns the leading "--name" or "--name=value" tokens
// that name a flag of cmd, plus the value token of non-boolean flags, and
// the tokens after them. Single-dash tokens, "--" and unknown names end the
// flag section.
func splitLeadingFlags(cmd *cobra.Command, args []string) (flagArgs, rest []string) {
	i := 0
	for i < len(args) {
		name, ok := strings.CutPrefix(args[i], "--")
		if !ok || name == "" {
			break
		}
		name, _, hasValue := strings.Cut(name, "=")
		f := cmd.Flags().Lookup(name)
		if f == nil {
			break
		}
		i++
		if !hasValue && f.Value.Type() != "bool" && i < len(args) {
			i++
		}
	}
	return args[:i], args[i:]
}
