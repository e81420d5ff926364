package cmd

import (
	"fmt"
	"io"

	"logfilter/pkg/config"
)

// Run executes the root command with args (program name excluded) and
// returns the process exit code. Failures are reported on stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if config.IsArgumentError(err) {
			_, _ = fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(stderr, "Application error: %v\n", err)
		}
		return 1
	}
	return 0
}
