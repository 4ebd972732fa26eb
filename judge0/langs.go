package judge0

import (
	"sort"
	"strings"
)

// Judge0 language ids for the editor languages we expose.
var languageIds = map[string]int{
	"c++":        54, // C++ (GCC 9.2.0)
	"java":       62, // Java (OpenJDK 13.0.1)
	"javascript": 63, // JavaScript (Node.js 12.14.0)
}

// ResolveLanguage maps a human-readable language name to the judge's numeric
// language id. Matching is case-insensitive. Unrecognized names are a caller
// error; the submission must be rejected before any judge interaction.
func ResolveLanguage(name string) (int, error) {
	id, ok := languageIds[strings.ToLower(name)]
	if !ok {
		return 0, ErrUnsupportedLanguage(name)
	}
	return id, nil
}

// SupportedLanguages returns the recognized language names, sorted.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(languageIds))
	for name := range languageIds {
		langs = append(langs, name)
	}
	sort.Strings(langs)
	return langs
}
