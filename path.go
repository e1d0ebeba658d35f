package meshcat

import "strings"

// NormalizePath returns the canonical form of a scene path: a leading
// slash, single-slash separators, and no trailing slash. The scene root
// is "/".
func NormalizePath(path string) string {
	return "/" + strings.Join(SplitPath(path), "/")
}

// SplitPath splits a scene path into its non-empty segments.
func SplitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}
