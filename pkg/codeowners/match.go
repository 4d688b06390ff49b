package codeowners

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matches reports whether a CODEOWNERS pattern matches a changed file path,
// using gitignore-style glob semantics. Paths are relative to the repository
// root with forward slashes and no leading slash. An unparseable pattern
// never matches; no error surfaces to the caller.
func Matches(pattern, filePath string) bool {
	pattern = strings.TrimPrefix(pattern, "/")
	if pattern == "" || filePath == "" {
		return false
	}

	// A trailing slash means the directory and everything beneath it.
	if strings.HasSuffix(pattern, "/") {
		return matchesDir(strings.TrimSuffix(pattern, "/"), filePath)
	}

	// A pattern with no separator matches the base name, or any directory
	// on the way to it, at any depth.
	if !strings.Contains(pattern, "/") {
		for _, segment := range strings.Split(filePath, "/") {
			if match(pattern, segment) {
				return true
			}
		}
		return false
	}

	if match(pattern, filePath) {
		return true
	}
	// An exact literal with no trailing slash is treated as a
	// directory-or-file literal.
	if !strings.ContainsAny(pattern, "*?[\\") {
		return strings.HasPrefix(filePath, pattern+"/")
	}
	return false
}

func matchesDir(dir, filePath string) bool {
	if dir == "" {
		return false
	}
	if !strings.ContainsAny(dir, "*?[\\") {
		return filePath == dir || strings.HasPrefix(filePath, dir+"/")
	}
	return match(dir, filePath) || match(dir+"/**", filePath)
}

func match(pattern, filePath string) bool {
	ok, err := doublestar.Match(pattern, filePath)
	return err == nil && ok
}
