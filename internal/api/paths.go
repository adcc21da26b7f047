package api

import (
	"strings"

	"github.com/tidwall/gjson"
)

// pathSeparator splits alternative gjson paths in a SourceSpec
const pathSeparator = "|"

// lookup returns the first alternative of paths that resolves to a non-empty string.
// Alternatives are split here rather than handed to gjson, where "|" is the pipe operator.
func lookup(body []byte, paths string) (string, bool) {
	if paths == "" {
		return "", false
	}

	for _, path := range strings.Split(paths, pathSeparator) {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		result := gjson.GetBytes(body, path)
		if !result.Exists() || result.Type == gjson.Null {
			continue
		}
		if value := strings.TrimSpace(result.String()); value != "" {
			return value, true
		}
	}

	return "", false
}
