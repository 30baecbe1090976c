package bundle

import "filesbundler/pkg/language"

// SortMode selects the ordering of files inside the bundle.
type SortMode string

const (
	SortByName SortMode = "name" // Base file name ascending (default).
	SortByType SortMode = "type" // Extension ascending, then full path.
)

// Options holds the validated configuration for one bundling run. It is
// assembled by the CLI layer (or a test) and passed by value into Bundle.
type Options struct {
	// Languages holds the raw selector entries as typed by the user.
	// AllLanguages is the "all" sentinel and overrides Languages.
	Languages    []string
	AllLanguages bool

	Output           string   // Destination path for the bundle.
	Note             bool     // Emit a provenance comment per file.
	Sort             SortMode // Empty means SortByName.
	RemoveEmptyLines bool     // Drop blank and whitespace-only lines.
	Author           string   // Written verbatim into the leading comment.
	ExcludeGlobs     []string // Extra glob patterns pruned during discovery.

	// ConfirmOverwrite decides whether an existing output file may be
	// replaced. A nil function declines.
	ConfirmOverwrite func(path string) bool
}

// Result reports the outcome of a successful run.
type Result struct {
	FilesBundled       int // Files written into the bundle.
	DiscardedLanguages int // Unrecognized selector entries that were dropped.
	SkippedNoExtension int // Extension-less files excluded in explicit-selector mode.
}

// candidate is a discovered filesystem entry, alive only for one run.
type candidate struct {
	path string // Absolute path.
	name string // Base file name.
	ext  string // Extension including the leading dot; may be empty.
	tag  language.Tag
}
