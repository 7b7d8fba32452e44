package openapi

import (
	"regexp"
	"strings"
)

// pathVarRegexp matches route variables in the form {name}. A "{" always
// pairs with the next "}".
var pathVarRegexp = regexp.MustCompile(`\{([^}]+)\}`)

// ExtractPathParameters returns the placeholder names of a URL template in
// the order they appear, braces stripped. It returns nil when the template
// has no placeholders. Names are not validated; unbalanced braces yield a
// partial or empty result.
func ExtractPathParameters(url string) []string {
	matches := pathVarRegexp.FindAllStringSubmatch(url, -1)
	if len(matches) == 0 {
		return nil
	}

	params := make([]string, 0, len(matches))
	for _, m := range matches {
		params = append(params, m[1])
	}

	return params
}

// NormalizePath removes the first occurrence of the prefix segment from
// path. Only a whole segment matches, so "/api" strips "/api/users" and
// "/v1/api" but leaves "/apiary" alone. An empty prefix returns path
// unchanged and a fully stripped path becomes "/".
func NormalizePath(path, prefix string) string {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		return path
	}

	for offset := 0; offset < len(path); {
		idx := strings.Index(path[offset:], prefix)
		if idx < 0 {
			return path
		}
		idx += offset

		end := idx + len(prefix)
		if end == len(path) || path[end] == '/' {
			out := path[:idx] + path[end:]
			if out == "" {
				return "/"
			}
			return out
		}

		offset = end
	}

	return path
}
