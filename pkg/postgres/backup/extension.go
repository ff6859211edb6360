package backup

import "strings"

// Extension returns the part of a file name pattern after its last dot, or the
// empty string if it has no dot.
func Extension(pattern string) string {
	idx := strings.LastIndexByte(pattern, '.')
	if idx < 0 {
		return ""
	}
	return pattern[idx+1:]
}

// SyncExtension rewrites the trailing extension of a file name pattern to
// newExt. Only the last dot separates the extension, so variable tokens and
// dotted stems are preserved. A pattern ending in a bare dot is always
// rewritten, and an empty newExt leaves no trailing dot.
func SyncExtension(text, newExt string) string {
	var name, ext string
	idx := strings.LastIndexByte(text, '.')
	if idx >= 0 {
		name = text[:idx]
		ext = text[idx+1:]
	} else {
		name = text
	}
	// {file_name}.
	isDotWithEmptyExt := ext == "" && idx >= 0
	if ext == newExt && !isDotWithEmptyExt {
		return text
	}
	if newExt != "" {
		newExt = "." + newExt
	}
	return name + newExt
}
