// Package pathutil holds the small, allocation-light path helpers shared
// across the core: segment-aligned prefix stripping and tilde expansion.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// RemovePrefix strips prefix from path at a segment boundary. Unlike a bare
// strings.TrimPrefix, a partial-segment match does not count: RemovePrefix
// "fo" from "foo/bar" returns "foo/bar" unchanged, while RemovePrefix "foo"
// returns "bar". The stripped suffix must be non-empty.
func RemovePrefix(prefix, path string) string {
	if prefix == "" {
		return path
	}
	if !strings.HasPrefix(path, prefix) {
		return path
	}
	rest := path[len(prefix):]
	if rest == "" {
		return path
	}
	if rest[0] != '/' {
		return path
	}
	rest = rest[1:]
	if rest == "" {
		return path
	}
	return rest
}

// ExpandTilde replaces a leading "~/" with the user's home directory. Any
// other input is returned unchanged.
func ExpandTilde(s string) string {
	if !strings.HasPrefix(s, "~/") {
		return s
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return s
	}
	return home + "/" + s[2:]
}

// StripDotSlash removes a single leading "./" segment, if present.
func StripDotSlash(s string) string {
	return strings.TrimPrefix(s, "./")
}

// ToSlash normalizes an OS path to use '/' separators, matching the
// walker's requirement that matching always operates on '/'-separated
// strings regardless of host platform.
func ToSlash(s string) string {
	return filepath.ToSlash(s)
}
