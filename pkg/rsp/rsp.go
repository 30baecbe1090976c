// Package rsp writes and expands response files: single-line argument
// files that capture a bundle invocation for reuse.
package rsp

import (
	"fmt"
	"os"
	"strings"
)

// DefaultFileName is where the interactive wizard stores its output.
const DefaultFileName = "response.rsp"

// Values are the six bundle settings the wizard collects.
type Values struct {
	Languages        string // Comma-separated language list or "all".
	Output           string
	Note             bool
	Sort             string
	RemoveEmptyLines bool
	Author           string
}

// Write serializes the values as one line of CLI arguments. Tokens
// containing whitespace are double-quoted so ExpandArgs can split the
// line back losslessly.
func Write(path string, v Values) error {
	args := []string{"-l", quote(v.Languages)}
	if v.Output != "" {
		args = append(args, "-o", quote(v.Output))
	}
	if v.Note {
		args = append(args, "-n")
	}
	if v.Sort != "" {
		args = append(args, "-s", quote(v.Sort))
	}
	if v.RemoveEmptyLines {
		args = append(args, "-r")
	}
	if v.Author != "" {
		args = append(args, "-a", quote(v.Author))
	}

	line := strings.Join(args, " ") + "\n"
	if err := os.WriteFile(path, []byte(line), 0644); err != nil {
		return fmt.Errorf("failed to write response file %s: %w", path, err)
	}
	return nil
}

// ExpandArgs replaces every argument of the form @file with the tokens
// read from that file, leaving all other arguments untouched.
func ExpandArgs(args []string) ([]string, error) {
	var expanded []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") {
			expanded = append(expanded, arg)
			continue
		}
		path := strings.TrimPrefix(arg, "@")
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read argument file %s: %w", path, err)
		}
		expanded = append(expanded, splitLine(string(content))...)
	}
	return expanded, nil
}

func quote(token string) string {
	if strings.ContainsAny(token, " \t") {
		return `"` + token + `"`
	}
	return token
}

// splitLine splits on whitespace while honoring double-quoted tokens.
func splitLine(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}
