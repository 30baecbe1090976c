// Package language maps file extensions to programming-language tags.
package language

import (
	"sort"
	"strings"
)

// Tag identifies a programming language recognized by the bundler.
type Tag string

const (
	CSharp     Tag = "csharp"
	Java       Tag = "java"
	Python     Tag = "python"
	JavaScript Tag = "javascript"
	Ruby       Tag = "ruby"
	PHP        Tag = "php"
	Go         Tag = "go"
	Swift      Tag = "swift"
	Rust       Tag = "rust"
	CPlusPlus  Tag = "cplusplus"
	C          Tag = "c"
	Dart       Tag = "dart"

	// TagUnknown is returned for extensions absent from the table.
	// It is a value, not an error: callers filtering on "all languages"
	// skip unknown files without treating them as failures.
	TagUnknown Tag = ""
)

// extensions is the closed extension table. Keys are lowercase and
// include the leading dot. Adding a language is an edit here plus a Tag
// constant above.
var extensions = map[string]Tag{
	".cs":    CSharp,
	".java":  Java,
	".py":    Python,
	".js":    JavaScript,
	".rb":    Ruby,
	".php":   PHP,
	".go":    Go,
	".swift": Swift,
	".rs":    Rust,
	".cpp":   CPlusPlus,
	".c":     C,
	".dart":  Dart,
}

// Classify returns the Tag for a file extension (with leading dot), or
// TagUnknown when the extension is not in the table. Matching is
// case-insensitive; Classify lowercases internally so callers never
// have to.
func Classify(ext string) Tag {
	return extensions[strings.ToLower(ext)]
}

// Parse resolves a user-supplied language name ("python", "CSharp", ...)
// to its Tag. The second return value reports whether the name is
// recognized.
func Parse(name string) (Tag, bool) {
	tag := Tag(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range extensions {
		if tag == known {
			return tag, true
		}
	}
	return TagUnknown, false
}

// Tags returns every recognized tag name, sorted, for help text and the
// interactive wizard.
func Tags() []string {
	names := make([]string, 0, len(extensions))
	for _, tag := range extensions {
		names = append(names, string(tag))
	}
	sort.Strings(names)
	return names
}
