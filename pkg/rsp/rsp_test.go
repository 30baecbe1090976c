package rsp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_FullValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "response.rsp")
	err := Write(path, Values{
		Languages:        "go,python",
		Output:           "bundle.txt",
		Note:             true,
		Sort:             "type",
		RemoveEmptyLines: true,
		Author:           "Jane Doe",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "-l go,python -o bundle.txt -n -s type -r -a \"Jane Doe\"\n", string(content))
}

func TestWrite_MinimalValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "response.rsp")
	err := Write(path, Values{Languages: "all", Output: "out.txt"})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "-l all -o out.txt\n", string(content))
}

func TestExpandArgs_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "response.rsp")
	require.NoError(t, Write(path, Values{
		Languages: "go",
		Output:    "out.txt",
		Note:      true,
		Author:    "Jane Doe",
	}))

	args, err := ExpandArgs([]string{"bundle", "@" + path})
	require.NoError(t, err)
	assert.Equal(t, []string{"bundle", "-l", "go", "-o", "out.txt", "-n", "-a", "Jane Doe"}, args)
}

func TestExpandArgs_PassesPlainArgsThrough(t *testing.T) {
	args, err := ExpandArgs([]string{"bundle", "-l", "all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bundle", "-l", "all"}, args)
}

func TestExpandArgs_MissingFile(t *testing.T) {
	_, err := ExpandArgs([]string{"@" + filepath.Join(t.TempDir(), "absent.rsp")})
	assert.Error(t, err)
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "-l go -n", []string{"-l", "go", "-n"}},
		{"quoted token", `-a "Jane Doe" -n`, []string{"-a", "Jane Doe", "-n"}},
		{"extra whitespace", "  -l \t go \n", []string{"-l", "go"}},
		{"empty", "\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLine(tt.in))
		})
	}
}
