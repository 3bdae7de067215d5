// Package pathutil provides pure string operations on resfs paths.
//
// resfs uses the forward slash as its canonical separator regardless of the
// host platform. Functions in this package never touch the filesystem; they
// do not check that a path exists.
package pathutil

import (
	"path"
	"path/filepath"
	"strings"
)

// Separator is the canonical path separator used by resfs.
const Separator = '/'

// SplitPath splits full into its directory (with trailing slash), file name
// without extension, and extension without the leading dot. The extension is
// the text after the last '.' of the last path segment. When lowercaseExt is
// true the extension is lower-cased.
//
// SplitPath("/a/b/c.txt", true) returns ("/a/b/", "c", "txt").
func SplitPath(full string, lowercaseExt bool) (dir, name, ext string) {
	p := toSlash(full)

	slash := strings.LastIndexByte(p, Separator)
	if dot := strings.LastIndexByte(p, '.'); dot >= 0 && dot > slash {
		ext = p[dot+1:]
		if lowercaseExt {
			ext = strings.ToLower(ext)
		}
		p = p[:dot]
	}

	if slash >= 0 {
		return p[:slash+1], p[slash+1:], ext
	}
	return "", p, ext
}

// Dir returns the directory part of full, including the trailing slash.
func Dir(full string) string {
	dir, _, _ := SplitPath(full, false)
	return dir
}

// FileName returns the file name of full without directory or extension.
func FileName(full string) string {
	_, name, _ := SplitPath(full, false)
	return name
}

// Extension returns the extension of full without the leading dot.
func Extension(full string, lowercase bool) string {
	_, _, ext := SplitPath(full, lowercase)
	return ext
}

// FileNameAndExtension returns the last path segment of full.
func FileNameAndExtension(full string, lowercaseExt bool) string {
	_, name, ext := SplitPath(full, lowercaseExt)
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// ReplaceExtension returns full with its extension replaced by ext.
// ext may be given with or without the leading dot; an empty ext removes the
// extension.
func ReplaceExtension(full, ext string) string {
	if full == "" {
		return ""
	}
	dir, name, _ := SplitPath(full, false)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return dir + name
	}
	return dir + name + "." + ext
}

// HasExtension reports whether full has extension ext, compared case-insensitively.
// ext may include the leading dot.
func HasExtension(full, ext string) bool {
	return strings.EqualFold(Extension(full, false), strings.TrimPrefix(ext, "."))
}

// AddTrailingSlash returns p with exactly one trailing slash appended when p
// does not already end in one. An empty path stays empty.
func AddTrailingSlash(p string) string {
	p = toSlash(p)
	if p == "" || p[len(p)-1] == Separator {
		return p
	}
	return p + string(Separator)
}

// RemoveTrailingSlash strips all trailing slashes from p. The root path "/"
// is returned unchanged.
func RemoveTrailingSlash(p string) string {
	p = toSlash(p)
	trimmed := strings.TrimRight(p, string(Separator))
	if trimmed == "" && p != "" {
		return string(Separator)
	}
	return trimmed
}

// ParentPath returns the directory that contains p, with a trailing slash.
// It returns the empty string when p has no parent segment.
//
// ParentPath("/a/b/") returns "/a/".
func ParentPath(p string) string {
	trimmed := RemoveTrailingSlash(p)
	if trimmed == string(Separator) {
		return ""
	}
	if i := strings.LastIndexByte(trimmed, Separator); i >= 0 {
		return trimmed[:i+1]
	}
	return ""
}

// InternalPath converts the host's native separators in p to '/'.
func InternalPath(p string) string {
	if filepath.Separator == Separator {
		return p
	}
	return strings.ReplaceAll(p, string(filepath.Separator), string(Separator))
}

// NativePath converts '/' separators in p to the host's native separator.
// NativePath(InternalPath(p)) == p for any p written with native separators.
func NativePath(p string) string {
	if filepath.Separator == Separator {
		return p
	}
	return strings.ReplaceAll(p, string(Separator), string(filepath.Separator))
}

// Normalize returns the canonical form of p: backslashes become '/', repeated
// separators and "." / ".." elements are resolved lexically, and a trailing
// slash on the input is kept. The empty path stays empty.
func Normalize(p string) string {
	if p == "" {
		return ""
	}
	p = toSlash(p)
	trailing := p[len(p)-1] == Separator

	cleaned := path.Clean(p)
	if trailing && cleaned != string(Separator) {
		cleaned += string(Separator)
	}
	return cleaned
}

// Join appends name to base with a separator in between and normalizes the result.
// An empty base leaves name relative.
func Join(base, name string) string {
	return Normalize(AddTrailingSlash(base) + name)
}

// toSlash converts both separator styles to '/'. Backslashes are treated as
// separators on every platform so that paths authored on Windows resolve the
// same way everywhere.
func toSlash(p string) string {
	return strings.ReplaceAll(InternalPath(p), `\`, string(Separator))
}
