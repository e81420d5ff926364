// File: pkg/config/config.go
package config

import "errors"

// DefaultOutputFile is used when no output file token is supplied.
const DefaultOutputFile = "results.txt"

// Usage is the message carried by an ArgumentError for missing tokens.
const Usage = "Not enough arguments. Usage: logfilter <search_query> <file_path> [output_file]"

// Config holds the resolved options for a single search run.
type Config struct {
	SearchQuery string // Substring to look for in each line.
	FilePath    string // Input file that is read fully into memory.
	OutputFile  string // Destination for matching lines; overwritten on every run.
	IgnoreCase  bool   // Always true; case folding is not user-configurable.
}

// ArgumentError reports a problem with the command-line tokens.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// IsArgumentError reports whether err, or any error it wraps, is an ArgumentError.
func IsArgumentError(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}

// New builds a Config from the raw token list, where args[0] is the program name.
// Only the token count is validated; empty strings and missing paths are
// left for the search engine to deal with.
func New(args []string) (Config, error) {
	if len(args) < 3 {
		return Config{}, &ArgumentError{Message: Usage}
	}

	outputFile := DefaultOutputFile
	if len(args) > 3 {
		outputFile = args[3]
	}

	return Config{
		SearchQuery: args[1],
		FilePath:    args[2],
		OutputFile:  outputFile,
		IgnoreCase:  true,
	}, nil
}
