package bundle

import "errors"

// Fatal pipeline errors. Callers distinguish them with errors.Is; the
// wrapped form carries the offending value or path.
var (
	// ErrNoValidLanguages means the explicit selector had zero
	// recognized entries left after discarding bad ones.
	ErrNoValidLanguages = errors.New("no valid languages selected")

	// ErrInvalidSortMode means the sort token is neither "name" nor "type".
	ErrInvalidSortMode = errors.New("invalid sort mode")

	// ErrInvalidOutputPath means the output path is empty or its parent
	// directory does not exist.
	ErrInvalidOutputPath = errors.New("invalid output path")

	// ErrOutputExists means the output file already exists and the
	// overwrite decision declined.
	ErrOutputExists = errors.New("output file already exists")

	// ErrFileRead means a filtered-in file could not be read. The run is
	// aborted and the partial output removed.
	ErrFileRead = errors.New("failed to read source file")
)
