package language

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		ext  string
		want Tag
	}{
		{".cs", CSharp},
		{".java", Java},
		{".py", Python},
		{".js", JavaScript},
		{".rb", Ruby},
		{".php", PHP},
		{".go", Go},
		{".swift", Swift},
		{".rs", Rust},
		{".cpp", CPlusPlus},
		{".c", C},
		{".dart", Dart},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ext))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Python, Classify(".PY"))
	assert.Equal(t, CSharp, Classify(".Cs"))
}

func TestClassify_UnknownExtension(t *testing.T) {
	assert.Equal(t, TagUnknown, Classify(".xyz"))
	assert.Equal(t, TagUnknown, Classify(".txt"))
	assert.Equal(t, TagUnknown, Classify(""))
}

func TestClassify_IsPure(t *testing.T) {
	first := Classify(".go")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(".go"))
	}
}

func TestParse(t *testing.T) {
	tag, ok := Parse("python")
	require.True(t, ok)
	assert.Equal(t, Python, tag)

	tag, ok = Parse("  CSharp ")
	require.True(t, ok)
	assert.Equal(t, CSharp, tag)

	_, ok = Parse("klingon")
	assert.False(t, ok)

	_, ok = Parse("")
	assert.False(t, ok)
}

func TestTags_SortedAndComplete(t *testing.T) {
	names := Tags()
	require.Len(t, names, 12)
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "go")
	assert.Contains(t, names, "cplusplus")
}
