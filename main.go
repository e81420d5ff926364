package main

import (
	"log"
	"os"
	"strings"

	"logfilter/cmd"
	"logfilter/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	code := cmd.Run(os.Args[1:], os.Stdout, os.Stderr)
	syncLogger(logging.Logger)
	os.Exit(code)
}

// syncLogger flushes the logger when stderr can actually be synced.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		lowerErr := strings.ToLower(err.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
