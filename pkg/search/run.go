// File: pkg/search/run.go
package search

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"logfilter/pkg/config"

	"go.uber.org/zap"
)

// ErrInvalidUTF8 is returned when the input file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Result summarizes a completed run.
type Result struct {
	Matches    MatchSet
	TotalLines int
}

// Run reads the input file, collects matching lines and, when there is at
// least one match, overwrites the output file with them. Progress messages
// are written to out.
func Run(cfg config.Config, out io.Writer, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("inputFile", cfg.FilePath))

	contents, err := readContents(cfg.FilePath, logger)
	if err != nil {
		return Result{}, err
	}

	totalLines := CountLines(contents)
	logger.Debug("Loaded input file",
		zap.Int("sizeBytes", len(contents)),
		zap.Int("totalLines", totalLines))

	var matches MatchSet
	if cfg.IgnoreCase {
		logger.Debug("Searching case-insensitively", zap.String("query", cfg.SearchQuery))
		matches = SearchCaseInsensitive(cfg.SearchQuery, contents)
	} else {
		logger.Debug("Searching case-sensitively", zap.String("query", cfg.SearchQuery))
		matches = Search(cfg.SearchQuery, contents)
	}

	result := Result{Matches: matches, TotalLines: totalLines}

	if len(matches) == 0 {
		logger.Debug("No matching lines; output file left untouched", zap.String("outputFile", cfg.OutputFile))
		_, _ = fmt.Fprintf(out, "No matches found for '%s' in %d lines.\n", cfg.SearchQuery, totalLines)
		return result, nil
	}

	warnIfSameFile(cfg.FilePath, cfg.OutputFile, logger)

	if err := writeMatches(cfg.OutputFile, matches, logger); err != nil {
		return Result{}, err
	}

	_, _ = fmt.Fprintf(out, "Success! Found %d matching lines out of %d total lines.\n", len(matches), totalLines)
	_, _ = fmt.Fprintf(out, "Results are saved to '%s'\n", cfg.OutputFile)
	return result, nil
}

// readContents loads the whole file and checks that it is UTF-8 text.
func readContents(path string, logger *zap.Logger) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("Failed to read input file", zap.Error(err))
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	if !utf8.Valid(data) {
		logger.Debug("Input file is not valid UTF-8", zap.Int("sizeBytes", len(data)))
		return "", fmt.Errorf("failed to read input file %s: %w", path, ErrInvalidUTF8)
	}
	return string(data), nil
}

// writeMatches assembles every matched line into one buffer and writes it
// with a single call, truncating any previous content.
func writeMatches(path string, matches MatchSet, logger *zap.Logger) error {
	var buf strings.Builder
	for _, line := range matches {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		logger.Debug("Failed to write output file", zap.String("outputFile", path), zap.Error(err))
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Debug("Wrote matching lines",
		zap.String("outputFile", path),
		zap.Int("matchCount", len(matches)),
		zap.Int("sizeBytes", buf.Len()))
	return nil
}

// warnIfSameFile logs when the output would replace the input. The input has
// already been read in full, so the run still completes.
func warnIfSameFile(inputPath, outputPath string, logger *zap.Logger) {
	inInfo, err := os.Stat(inputPath)
	if err != nil {
		return
	}
	outInfo, err := os.Stat(outputPath)
	if err != nil {
		return
	}
	if os.SameFile(inInfo, outInfo) {
		absOut, _ := filepath.Abs(outputPath)
		logger.Warn("Output file is the input file; its contents will be replaced by the matches",
			zap.String("outputFile", absOut))
	}
}
