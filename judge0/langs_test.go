package judge0_test

import (
	"testing"

	"github.com/codearena/backend/judge0"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLanguage(t *testing.T) {
	for name, want := range map[string]int{
		"c++":        54,
		"java":       62,
		"javascript": 63,
		"JavaScript": 63, // case-insensitive
		"JAVA":       62,
	} {
		id, err := judge0.ResolveLanguage(name)
		require.NoError(t, err, "language %q", name)
		assert.Equal(t, want, id, "language %q", name)
	}
}

func TestResolveLanguageUnsupported(t *testing.T) {
	_, err := judge0.ResolveLanguage("python")
	requireErrCode(t, err, judge0.ErrCodeUnsupportedLanguage)
}

func TestSupportedLanguages(t *testing.T) {
	assert.Equal(t, []string{"c++", "java", "javascript"}, judge0.SupportedLanguages())
}
