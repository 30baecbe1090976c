package bundle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// writeBundle streams the kept files, in their sorted order, into the
// output file. The handle is opened once and closed on every exit path;
// a read failure aborts the run and removes the output so a partial
// bundle is never left behind.
func writeBundle(opts Options, rootDir string, kept []candidate, logger *zap.Logger) (err error) {
	outFile, createErr := os.Create(opts.Output)
	if createErr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOutputPath, createErr)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
		if err != nil {
			if rmErr := os.Remove(opts.Output); rmErr != nil {
				logger.Warn("Failed to remove incomplete output file",
					zap.String("file", opts.Output), zap.Error(rmErr))
			}
		}
	}()

	writer := bufio.NewWriter(outFile)

	if opts.Author != "" {
		if _, err = fmt.Fprintf(writer, "// Bundled by %s\n", opts.Author); err != nil {
			return fmt.Errorf("failed to write author line: %w", err)
		}
	}

	for _, c := range kept {
		if opts.Note {
			relPath, relErr := filepath.Rel(rootDir, c.path)
			if relErr != nil {
				relPath = c.path
			}
			if _, err = fmt.Fprintf(writer, "// Source Code: %s, Path: %s\n", c.name, relPath); err != nil {
				return fmt.Errorf("failed to write note line: %w", err)
			}
		}

		content, readErr := os.ReadFile(c.path)
		if readErr != nil {
			logger.Error("Failed to read source file",
				zap.String("file", c.path), zap.Error(readErr))
			err = fmt.Errorf("%w: %s: %v", ErrFileRead, c.path, readErr)
			return err
		}

		text := string(content)
		if opts.RemoveEmptyLines {
			text = stripEmptyLines(text)
		}

		if _, err = writer.WriteString(text); err != nil {
			return fmt.Errorf("failed to write content of %s: %w", c.path, err)
		}
		if err = writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write line terminator: %w", err)
		}
		logger.Debug("Bundled file", zap.String("file", c.path))
	}

	if err = writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// stripEmptyLines drops every line that is empty or whitespace-only and
// rejoins the rest with a single newline. This changes the line count;
// kept lines are untouched.
func stripEmptyLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
