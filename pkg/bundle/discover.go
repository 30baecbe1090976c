package bundle

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"filesbundler/pkg/language"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// isExcludedDir reports whether a directory name belongs to the fixed
// build-artifact denylist. Matching is on the full segment name, so a
// directory like "binary" survives.
func isExcludedDir(name string) bool {
	return name == "bin" || name == "obj" || strings.EqualFold(name, "debug")
}

// matchesAnyGlob matches the slash-normalized relative path against the
// user-supplied exclude patterns. Patterns are validated before the walk
// starts, so match errors cannot occur here.
func matchesAnyGlob(globs []string, relPath string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, relPath); ok {
			return true
		}
	}
	return false
}

// discover walks root and collects every file that survives the
// directory denylist and the exclude globs, classifying each by
// extension along the way.
func discover(root string, excludeGlobs []string, logger *zap.Logger) ([]candidate, error) {
	var found []candidate
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during discovery", zap.String("path", path), zap.Error(err))
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if path == root {
				return nil
			}
			if isExcludedDir(d.Name()) {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			if matchesAnyGlob(excludeGlobs, relPath) {
				logger.Debug("Skipping directory matching exclude pattern", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if matchesAnyGlob(excludeGlobs, relPath) {
			logger.Debug("Skipping file matching exclude pattern", zap.String("file", path))
			return nil
		}

		ext := filepath.Ext(path)
		found = append(found, candidate{
			path: path,
			name: d.Name(),
			ext:  ext,
			tag:  language.Classify(ext),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	logger.Debug("Completed discovery", zap.Int("candidates", len(found)))
	return found, nil
}
