package main

import (
	"log"
	"os"
	"strings"

	"filesbundler/cmd"
	"filesbundler/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	err := cmd.Execute()
	syncLogger(logging.Logger)
	if err != nil {
		if logging.Logger != nil {
			logging.Logger.Error("filesbundler execution failed", zap.Error(err))
		} else {
			log.Printf("filesbundler execution failed: %v", err)
		}
		os.Exit(1)
	}
}

// syncLogger flushes the logger when stderr is a terminal or a regular
// file, swallowing the spurious "invalid argument" some platforms
// return when syncing a terminal.
func syncLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
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
