// Package bundle implements the aggregation pipeline: discover source
// files under a root directory, filter them by language, order them
// deterministically, and write them into a single output file.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"filesbundler/pkg/language"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// Bundle runs one complete bundling pass over root with the given
// options. Selector, sort-mode, and output-path validation all happen
// before the filesystem is read; per-file warnings never abort the run,
// while a read failure aborts it and removes the partial output.
func Bundle(opts Options, root string, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var res Result

	selected, discarded, err := resolveSelector(opts, logger)
	if err != nil {
		return res, err
	}
	res.DiscardedLanguages = discarded

	mode := opts.Sort
	if mode == "" {
		mode = SortByName
	}
	if mode != SortByName && mode != SortByType {
		return res, fmt.Errorf("%w: %q", ErrInvalidSortMode, string(opts.Sort))
	}

	if err := validateOutputPath(opts.Output); err != nil {
		return res, err
	}
	for _, g := range opts.ExcludeGlobs {
		if !doublestar.ValidatePattern(g) {
			return res, fmt.Errorf("invalid exclude pattern %q", g)
		}
	}

	rootDir, err := filepath.Abs(root)
	if err != nil {
		return res, fmt.Errorf("failed to resolve root directory: %w", err)
	}

	found, err := discover(rootDir, opts.ExcludeGlobs, logger)
	if err != nil {
		return res, err
	}

	kept, skippedNoExt := filter(found, selected, logger)
	res.SkippedNoExtension = skippedNoExt
	order(kept, mode)

	if _, err := os.Stat(opts.Output); err == nil {
		if opts.ConfirmOverwrite == nil || !opts.ConfirmOverwrite(opts.Output) {
			return res, fmt.Errorf("%w: %s", ErrOutputExists, opts.Output)
		}
	}

	if err := writeBundle(opts, rootDir, kept, logger); err != nil {
		return res, err
	}

	res.FilesBundled = len(kept)
	logger.Info("Successfully bundled files",
		zap.String("outputFile", opts.Output),
		zap.Int("totalFiles", res.FilesBundled))
	return res, nil
}

// resolveSelector turns the raw selector entries into a tag set. A nil
// set means "all languages". Unrecognized entries are warned about and
// discarded; only an empty surviving set is fatal.
func resolveSelector(opts Options, logger *zap.Logger) (map[language.Tag]struct{}, int, error) {
	if opts.AllLanguages {
		return nil, 0, nil
	}

	selected := make(map[language.Tag]struct{})
	discarded := 0
	for _, entry := range opts.Languages {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		tag, ok := language.Parse(entry)
		if !ok {
			logger.Warn("Ignoring unrecognized language", zap.String("language", entry))
			discarded++
			continue
		}
		selected[tag] = struct{}{}
	}

	if len(selected) == 0 {
		return nil, discarded, ErrNoValidLanguages
	}
	return selected, discarded, nil
}

// validateOutputPath requires a non-empty path whose parent directory
// already exists.
func validateOutputPath(output string) error {
	if output == "" {
		return fmt.Errorf("%w: no output path given", ErrInvalidOutputPath)
	}
	parent := filepath.Dir(output)
	info, err := os.Stat(parent)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: parent directory %s does not exist", ErrInvalidOutputPath, parent)
	}
	return nil
}

// filter applies the language selector. selected == nil means "all
// recognized languages": unknown extensions are dropped silently. With
// an explicit set, extension-less files are excluded with a warning and
// unmatched tags are excluded silently.
func filter(found []candidate, selected map[language.Tag]struct{}, logger *zap.Logger) ([]candidate, int) {
	var kept []candidate
	skippedNoExt := 0
	for _, c := range found {
		if selected == nil {
			if c.tag != language.TagUnknown {
				kept = append(kept, c)
			}
			continue
		}
		if c.ext == "" {
			logger.Warn("Skipping file without extension", zap.String("file", c.path))
			skippedNoExt++
			continue
		}
		if _, ok := selected[c.tag]; ok {
			kept = append(kept, c)
		}
	}
	return kept, skippedNoExt
}

// order sorts candidates in place. Both modes are total: ties fall back
// to the full path so the bundle order is deterministic on every run.
func order(kept []candidate, mode SortMode) {
	switch mode {
	case SortByType:
		sort.SliceStable(kept, func(i, j int) bool {
			if kept[i].ext != kept[j].ext {
				return kept[i].ext < kept[j].ext
			}
			return kept[i].path < kept[j].path
		})
	default:
		sort.SliceStable(kept, func(i, j int) bool {
			if kept[i].name != kept[j].name {
				return kept[i].name < kept[j].name
			}
			return kept[i].path < kept[j].path
		})
	}
}
